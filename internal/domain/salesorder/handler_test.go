package salesorder

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"agroconsult/internal/domain"
	"agroconsult/internal/middleware"
	"agroconsult/internal/testutil"
)

func setupTestRouter(t *testing.T, strict bool) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.OpenDB(t)
	h := NewHandler(NewService(NewRepository(db), strict))
	r := testutil.Router(t, func(api *gin.RouterGroup) {
		h.RegisterRoutes(api, middleware.RequireActor())
	})
	return r, db
}

type fixture struct {
	farm   testutil.Farm
	visit  domain.Visit
	fungi  domain.Product
	fertil domain.Product
}

func newFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	farm := testutil.CreateFarm(t, db, "A")
	return fixture{
		farm:   farm,
		visit:  testutil.CreateVisit(t, db, farm.Client.ID, farm.Property.ID, time.Now()),
		fungi:  testutil.CreateProduct(t, db, "Fungicida X"),
		fertil: testutil.CreateProduct(t, db, "Adubo Y"),
	}
}

func createOrder(t *testing.T, r *gin.Engine, body map[string]any) Row {
	t.Helper()
	rr := testutil.DoJSON(r, http.MethodPost, "/api/sales-orders", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return testutil.Decode[Row](t, rr)
}

func TestCreateSalesOrder_DefaultsAndTotal(t *testing.T) {
	r, db := setupTestRouter(t, false)
	fx := newFixture(t, db)

	row := createOrder(t, r, map[string]any{
		"client_id": fx.farm.Client.ID,
		"visit_id":  fx.visit.ID,
		"orderItems": []map[string]any{
			{"product_id": fx.fungi.ID, "quantity": "2", "unit_price": 150.25},
			{"product_id": fx.fertil.ID, "quantity": 10, "unit_price": 0},
		},
	})

	assert.Equal(t, domain.OrderQuote, row.Status)
	assert.Equal(t, testutil.Actor, row.CreatedBy)
	require.NotNil(t, row.VisitID)
	assert.Equal(t, fx.visit.ID, *row.VisitID)
	assert.Equal(t, fx.farm.Client.Name, row.Client.Name)
	assert.Equal(t, 300.5, row.Total)
	assert.Equal(t, 2, row.ItemsCount)
	require.Len(t, row.OrderItems, 2)
	assert.Equal(t, fx.fungi.ID, row.OrderItems[0].ProductID)
	assert.Equal(t, "Fungicida X", row.OrderItems[0].Product.Name)
}

func TestSalesOrderTotal_KeepsSubCentPrices(t *testing.T) {
	r, db := setupTestRouter(t, false)
	fx := newFixture(t, db)

	row := createOrder(t, r, map[string]any{
		"client_id": fx.farm.Client.ID,
		"orderItems": []map[string]any{
			{"product_id": fx.fungi.ID, "quantity": 1, "unit_price": 0.004},
			{"product_id": fx.fertil.ID, "quantity": 1.5, "unit_price": "10.333"},
		},
	})
	assert.InDelta(t, 15.5035, row.Total, 1e-9)

	rr := testutil.DoJSON(r, http.MethodGet, "/api/sales-orders/"+row.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	detail := testutil.Decode[map[string]any](t, rr)
	assert.InDelta(t, 15.5035, detail["total"], 1e-9)

	rr = testutil.DoJSON(r, http.MethodGet, "/api/sales-orders", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	list := testutil.Decode[[]map[string]any](t, rr)
	require.Len(t, list, 1)
	assert.InDelta(t, 15.5035, list[0]["total"], 1e-9)
}

func TestCreateSalesOrder_Validation(t *testing.T) {
	r, db := setupTestRouter(t, false)
	fx := newFixture(t, db)

	rr := testutil.DoJSON(r, http.MethodPost, "/api/sales-orders", map[string]any{
		"client_id":  fx.farm.Client.ID,
		"status":     "PENDENTE",
		"orderItems": []map[string]any{{"quantity": 0, "unit_price": -1}, {"product_id": fx.fungi.ID}},
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	body := testutil.Decode[struct {
		Error   string `json:"error"`
		Details struct {
			FieldErrors map[string][]string `json:"fieldErrors"`
		} `json:"details"`
	}](t, rr)
	assert.Equal(t, "Validation failed", body.Error)
	fe := body.Details.FieldErrors
	assert.Contains(t, fe["status"][0], "must be one of: COTAÇÃO, APROVADO, PEDIDO FECHADO")
	assert.Equal(t, []string{"is required"}, fe["orderItems[0].product_id"])
	assert.Equal(t, []string{"must be greater than 0"}, fe["orderItems[0].quantity"])
	assert.Equal(t, []string{"must be greater than or equal to 0"}, fe["orderItems[0].unit_price"])
	assert.Equal(t, []string{"is required"}, fe["orderItems[1].quantity"])
	assert.Equal(t, []string{"is required"}, fe["orderItems[1].unit_price"])

	rr = testutil.DoJSON(r, http.MethodPost, "/api/sales-orders", map[string]any{
		"client_id": fx.farm.Client.ID, "orderItems": []any{},
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "must contain at least 1 item(s)")
}

func TestCreateSalesOrder_MissingParents(t *testing.T) {
	r, db := setupTestRouter(t, false)
	fx := newFixture(t, db)
	items := []map[string]any{{"product_id": fx.fungi.ID, "quantity": 1, "unit_price": 1}}

	tests := []struct {
		body map[string]any
		want string
	}{
		{map[string]any{"client_id": "nope", "orderItems": items}, `{"error":"Client not found"}`},
		{map[string]any{"client_id": fx.farm.Client.ID, "visit_id": "nope", "orderItems": items}, `{"error":"Visit not found"}`},
		{map[string]any{
			"client_id":  fx.farm.Client.ID,
			"orderItems": []map[string]any{{"product_id": "nope", "quantity": 1, "unit_price": 1}},
		}, `{"error":"Product not found"}`},
	}
	for _, tt := range tests {
		rr := testutil.DoJSON(r, http.MethodPost, "/api/sales-orders", tt.body)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, tt.want, rr.Body.String())
	}

	var n int64
	require.NoError(t, db.Model(&domain.SalesOrder{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestCreateSalesOrder_VisitOfAnotherClient(t *testing.T) {
	r, db := setupTestRouter(t, false)
	fx := newFixture(t, db)
	other := testutil.CreateClient(t, db, "B")

	rr := testutil.DoJSON(r, http.MethodPost, "/api/sales-orders", map[string]any{
		"client_id":  other.ID,
		"visit_id":   fx.visit.ID,
		"orderItems": []map[string]any{{"product_id": fx.fungi.ID, "quantity": 1, "unit_price": 1}},
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Visit does not belong to client"}`, rr.Body.String())
}

func TestListSalesOrders(t *testing.T) {
	r, db := setupTestRouter(t, false)
	fx := newFixture(t, db)
	other := testutil.CreateClient(t, db, "B")

	createOrder(t, r, map[string]any{
		"client_id":  fx.farm.Client.ID,
		"visit_id":   fx.visit.ID,
		"orderItems": []map[string]any{{"product_id": fx.fungi.ID, "quantity": 3, "unit_price": 10}},
	})
	createOrder(t, r, map[string]any{
		"client_id":  other.ID,
		"status":     "APROVADO",
		"orderItems": []map[string]any{{"product_id": fx.fertil.ID, "quantity": 1, "unit_price": 5}},
	})

	rr := testutil.DoJSON(r, http.MethodGet, "/api/sales-orders?client_id="+fx.farm.Client.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	items := testutil.Decode[[]ListItem](t, rr)
	require.Len(t, items, 1)
	assert.Equal(t, 30.0, items[0].Total)
	assert.Equal(t, 1, items[0].ItemsCount)
	require.NotNil(t, items[0].Visit)
	assert.Equal(t, fx.farm.Property.Name, items[0].Visit.Property.Name)
	assert.Equal(t, string(domain.ProductFungicida), items[0].OrderItems[0].Product.Type)

	rr = testutil.DoJSON(r, http.MethodGet, "/api/sales-orders?status=APROVADO", nil)
	items = testutil.Decode[[]ListItem](t, rr)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].Visit)
	assert.Equal(t, "B", items[0].Client.Name)

	rr = testutil.DoJSON(r, http.MethodGet, "/api/sales-orders?status=PEDIDO%20FECHADO", nil)
	assert.Empty(t, testutil.Decode[[]ListItem](t, rr))
}

func TestGetSalesOrder_Detail(t *testing.T) {
	r, db := setupTestRouter(t, false)
	fx := newFixture(t, db)
	created := createOrder(t, r, map[string]any{
		"client_id":  fx.farm.Client.ID,
		"visit_id":   fx.visit.ID,
		"orderItems": []map[string]any{{"product_id": fx.fungi.ID, "quantity": 1.5, "unit_price": 20}},
	})

	rr := testutil.DoJSON(r, http.MethodGet, "/api/sales-orders/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	d := testutil.Decode[Detail](t, rr)
	assert.Equal(t, "11999990000", *d.Client.Phone)
	require.NotNil(t, d.Visit)
	assert.Equal(t, domain.VisitScheduled, d.Visit.Status)
	assert.Equal(t, "Rio Verde", *d.Visit.Property.City)
	require.Len(t, d.OrderItems, 1)
	assert.Equal(t, domain.ProductFungicida, d.OrderItems[0].Product.Type)
	assert.Equal(t, 30.0, d.Total)

	rr = testutil.DoJSON(r, http.MethodGet, "/api/sales-orders/missing", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Sales order not found"}`, rr.Body.String())
}

func TestUpdateSalesOrder_ReplacesItems(t *testing.T) {
	r, db := setupTestRouter(t, false)
	fx := newFixture(t, db)
	created := createOrder(t, r, map[string]any{
		"client_id": fx.farm.Client.ID,
		"orderItems": []map[string]any{
			{"product_id": fx.fungi.ID, "quantity": 1, "unit_price": 10},
			{"product_id": fx.fertil.ID, "quantity": 1, "unit_price": 20},
		},
	})

	rr := testutil.DoJSON(r, http.MethodPut, "/api/sales-orders/"+created.ID, map[string]any{
		"status":     "APROVADO",
		"orderItems": []map[string]any{{"product_id": fx.fertil.ID, "quantity": 4, "unit_price": 12.5}},
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	row := testutil.Decode[Row](t, rr)
	assert.Equal(t, domain.OrderApproved, row.Status)
	require.Len(t, row.OrderItems, 1)
	assert.Equal(t, fx.fertil.ID, row.OrderItems[0].ProductID)
	assert.Equal(t, 50.0, row.Total)

	var stored []domain.SalesOrderItem
	require.NoError(t, db.Where("sales_order_id = ?", created.ID).Find(&stored).Error)
	require.Len(t, stored, 1)
	assert.Equal(t, 4.0, stored[0].Quantity)
}

func TestUpdateSalesOrder_StatusOnlyKeepsItems(t *testing.T) {
	r, db := setupTestRouter(t, false)
	fx := newFixture(t, db)
	created := createOrder(t, r, map[string]any{
		"client_id":  fx.farm.Client.ID,
		"status":     "ENTREGUE",
		"orderItems": []map[string]any{{"product_id": fx.fungi.ID, "quantity": 2, "unit_price": 10}},
	})

	rr := testutil.DoJSON(r, http.MethodPut, "/api/sales-orders/"+created.ID, map[string]any{"status": "COTAÇÃO"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	row := testutil.Decode[Row](t, rr)
	assert.Equal(t, domain.OrderQuote, row.Status)
	assert.Equal(t, 1, row.ItemsCount)
	assert.Equal(t, 20.0, row.Total)
}

func TestUpdateSalesOrder_UnknownProductRollsBack(t *testing.T) {
	r, db := setupTestRouter(t, false)
	fx := newFixture(t, db)
	created := createOrder(t, r, map[string]any{
		"client_id":  fx.farm.Client.ID,
		"orderItems": []map[string]any{{"product_id": fx.fungi.ID, "quantity": 2, "unit_price": 10}},
	})

	rr := testutil.DoJSON(r, http.MethodPut, "/api/sales-orders/"+created.ID, map[string]any{
		"orderItems": []map[string]any{{"product_id": "nope", "quantity": 1, "unit_price": 1}},
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Product not found"}`, rr.Body.String())

	var n int64
	require.NoError(t, db.Model(&domain.SalesOrderItem{}).Where("sales_order_id = ?", created.ID).Count(&n).Error)
	assert.Equal(t, int64(1), n)

	rr = testutil.DoJSON(r, http.MethodPut, "/api/sales-orders/missing", map[string]any{"status": "APROVADO"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Sales order not found"}`, rr.Body.String())
}

func TestRepositoryUpdate_RollsBackOnInsertFailure(t *testing.T) {
	db := testutil.OpenDB(t)
	fx := newFixture(t, db)
	repo := NewRepository(db)
	order := &domain.SalesOrder{
		ClientID:   fx.farm.Client.ID,
		Status:     domain.OrderQuote,
		CreatedBy:  testutil.Actor,
		OrderItems: []domain.SalesOrderItem{{ProductID: fx.fungi.ID, Quantity: 1, UnitPrice: 1}},
	}
	require.NoError(t, repo.Create(t.Context(), order))

	err := repo.Update(t.Context(), order.ID, map[string]any{"status": domain.OrderApproved},
		[]domain.SalesOrderItem{{ProductID: "missing", Quantity: 1, UnitPrice: 1}})
	require.Error(t, err)

	var stored domain.SalesOrder
	require.NoError(t, db.Preload("OrderItems").First(&stored, "id = ?", order.ID).Error)
	assert.Equal(t, domain.OrderQuote, stored.Status)
	require.Len(t, stored.OrderItems, 1)
	assert.Equal(t, fx.fungi.ID, stored.OrderItems[0].ProductID)
}

func TestUpdateSalesOrder_StrictTransitions(t *testing.T) {
	r, db := setupTestRouter(t, true)
	fx := newFixture(t, db)
	created := createOrder(t, r, map[string]any{
		"client_id":  fx.farm.Client.ID,
		"orderItems": []map[string]any{{"product_id": fx.fungi.ID, "quantity": 1, "unit_price": 1}},
	})

	rr := testutil.DoJSON(r, http.MethodPut, "/api/sales-orders/"+created.ID, map[string]any{"status": "FATURADO"})
	require.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"error":"Invalid status transition","details":{"from":"COTAÇÃO","to":"FATURADO"}}`, rr.Body.String())

	for _, status := range []string{"APROVADO", "PEDIDO FECHADO", "CANCELADO"} {
		rr = testutil.DoJSON(r, http.MethodPut, "/api/sales-orders/"+created.ID, map[string]any{"status": status})
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestDeleteSalesOrder(t *testing.T) {
	r, db := setupTestRouter(t, false)
	fx := newFixture(t, db)
	created := createOrder(t, r, map[string]any{
		"client_id":  fx.farm.Client.ID,
		"orderItems": []map[string]any{{"product_id": fx.fungi.ID, "quantity": 1, "unit_price": 1}},
	})

	rr := testutil.DoJSON(r, http.MethodDelete, "/api/sales-orders/"+created.ID, nil)
	assert.JSONEq(t, `{"message":"Sales order deleted successfully"}`, rr.Body.String())

	var n int64
	require.NoError(t, db.Model(&domain.SalesOrderItem{}).Count(&n).Error)
	assert.Zero(t, n)

	rr = testutil.DoJSON(r, http.MethodDelete, "/api/sales-orders/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
