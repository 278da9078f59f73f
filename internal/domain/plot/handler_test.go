package plot

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

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.OpenDB(t)
	h := NewHandler(NewService(NewRepository(db)))
	r := testutil.Router(t, func(api *gin.RouterGroup) {
		h.RegisterRoutes(api, middleware.RequireActor())
	})
	return r, db
}

func TestCreatePlot_CoercesArea(t *testing.T) {
	r, db := setupTestRouter(t)
	farm := testutil.CreateFarm(t, db, "A")

	rr := testutil.DoJSON(r, http.MethodPost, "/api/plots", map[string]any{
		"property_id":   farm.Property.ID,
		"name":          "Talhão Norte",
		"crop":          "Milho",
		"area_hectares": "25.5",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	row := testutil.Decode[Row](t, rr)
	require.NotNil(t, row.AreaHectares)
	assert.Equal(t, 25.5, *row.AreaHectares)
	require.NotNil(t, row.Property)
	assert.Equal(t, farm.Property.ID, row.Property.ID)
	assert.Equal(t, farm.Client.ID, row.Property.Client.ID)
}

func TestCreatePlot_InvalidArea(t *testing.T) {
	r, db := setupTestRouter(t)
	farm := testutil.CreateFarm(t, db, "A")

	for body, msg := range map[string]string{
		`{"property_id":"` + farm.Property.ID + `","name":"x","area_hectares":"abc"}`: "must be a number",
		`{"property_id":"` + farm.Property.ID + `","name":"x","area_hectares":-1}`:    "must be greater than or equal to 0",
	} {
		rr := testutil.DoJSON(r, http.MethodPost, "/api/plots", body)
		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), msg)
	}
}

func TestCreatePlot_MissingProperty(t *testing.T) {
	r, _ := setupTestRouter(t)

	rr := testutil.DoJSON(r, http.MethodPost, "/api/plots", map[string]any{"property_id": "nope", "name": "x"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Property not found"}`, rr.Body.String())
}

func TestListPlots(t *testing.T) {
	r, db := setupTestRouter(t)
	a := testutil.CreateFarm(t, db, "A")
	testutil.CreateFarm(t, db, "B")
	visit := testutil.CreateVisit(t, db, a.Client.ID, a.Property.ID, time.Now())
	testutil.CreateEvaluation(t, db, visit.ID, a.Plot.ID)

	rr := testutil.DoJSON(r, http.MethodGet, "/api/plots?property_id="+a.Property.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	items := testutil.Decode[[]ListItem](t, rr)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].Count.PlotEvaluations)
	assert.Equal(t, "A", items[0].Property.Client.Name)
}

func TestGetPlot_Detail(t *testing.T) {
	r, db := setupTestRouter(t)
	farm := testutil.CreateFarm(t, db, "A")
	visit := testutil.CreateVisit(t, db, farm.Client.ID, farm.Property.ID, time.Now())
	eval := testutil.CreateEvaluation(t, db, visit.ID, farm.Plot.ID)
	require.NoError(t, db.Create(&domain.Media{PlotEvaluationID: eval.ID, Type: domain.MediaPhoto, URL: "https://cdn.example/1.jpg"}).Error)

	rr := testutil.DoJSON(r, http.MethodGet, "/api/plots/"+farm.Plot.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	d := testutil.Decode[Detail](t, rr)
	require.NotNil(t, d.Property)
	assert.Equal(t, farm.Client.ID, d.Property.Client.ID)
	require.Len(t, d.PlotEvaluations, 1)
	assert.Equal(t, visit.ID, d.PlotEvaluations[0].Visit.ID)
	assert.Equal(t, int64(1), d.PlotEvaluations[0].Count.Media)
	assert.Len(t, d.PlotEvaluations[0].Media, 1)

	rr = testutil.DoJSON(r, http.MethodGet, "/api/plots/missing", nil)
	assert.JSONEq(t, `{"error":"Plot not found"}`, rr.Body.String())
}

func TestUpdatePlot_ClearsArea(t *testing.T) {
	r, db := setupTestRouter(t)
	farm := testutil.CreateFarm(t, db, "A")

	rr := testutil.DoJSON(r, http.MethodPut, "/api/plots/"+farm.Plot.ID, map[string]any{"area_hectares": ""})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	row := testutil.Decode[Row](t, rr)
	assert.Nil(t, row.AreaHectares)
	assert.Equal(t, farm.Plot.Name, row.Name)
	require.NotNil(t, row.Crop)
}

func TestDeletePlot(t *testing.T) {
	r, db := setupTestRouter(t)
	farm := testutil.CreateFarm(t, db, "A")

	rr := testutil.DoJSON(r, http.MethodDelete, "/api/plots/"+farm.Plot.ID, nil)
	assert.JSONEq(t, `{"message":"Plot deleted successfully"}`, rr.Body.String())

	rr = testutil.DoJSON(r, http.MethodDelete, "/api/plots/"+farm.Plot.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
