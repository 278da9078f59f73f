package salesorder

import (
	"time"

	"agroconsult/internal/domain"
	"agroconsult/internal/pkg/pagination"
	"agroconsult/internal/pkg/validator"
)

func init() {
	validator.RegisterEnum("order_status", Statuses...)
}

type ItemRequest struct {
	ProductID validator.String `json:"product_id" validate:"required"`
	Quantity  validator.Number `json:"quantity" input:"required" validate:"gt=0"`
	UnitPrice validator.Number `json:"unit_price" input:"required" validate:"gte=0"`
}

type CreateRequest struct {
	ClientID   validator.String `json:"client_id" validate:"required"`
	VisitID    validator.String `json:"visit_id"`
	Status     validator.String `json:"status" validate:"omitempty,order_status"`
	OrderItems []ItemRequest    `json:"orderItems" validate:"required,min=1,dive"`
}

// UpdateRequest changes the status and, when orderItems is sent, replaces
// every item of the order.
type UpdateRequest struct {
	Status     validator.String `json:"status" input:"nonnull" validate:"omitempty,order_status"`
	OrderItems []ItemRequest    `json:"orderItems" validate:"omitempty,min=1,dive"`
}

func toItems(reqs []ItemRequest) []domain.SalesOrderItem {
	if reqs == nil {
		return nil
	}
	items := make([]domain.SalesOrderItem, 0, len(reqs))
	for i, r := range reqs {
		items = append(items, domain.SalesOrderItem{
			ProductID: r.ProductID.Value,
			Quantity:  r.Quantity.Value,
			UnitPrice: r.UnitPrice.Value,
			Position:  i,
		})
	}
	return items
}

func productIDs(reqs []ItemRequest) []string {
	seen := make(map[string]struct{}, len(reqs))
	ids := make([]string, 0, len(reqs))
	for _, r := range reqs {
		if _, ok := seen[r.ProductID.Value]; ok {
			continue
		}
		seen[r.ProductID.Value] = struct{}{}
		ids = append(ids, r.ProductID.Value)
	}
	return ids
}

type ListFilter struct {
	Status   string
	ClientID string
	Page     pagination.Params
}

type ItemWithProductRef struct {
	domain.SalesOrderItem
	Product *domain.ProductRef `json:"product"`
}

type VisitSummary struct {
	ID            string           `json:"id"`
	ScheduledDate time.Time        `json:"scheduled_date"`
	Property      *domain.NamedRef `json:"property"`
}

type ListItem struct {
	domain.SalesOrder
	Client     *domain.ClientRef    `json:"client"`
	Visit      *VisitSummary        `json:"visit"`
	OrderItems []ItemWithProductRef `json:"orderItems"`
	Totals
}

type VisitDetail struct {
	ID                string              `json:"id"`
	ScheduledDate     time.Time           `json:"scheduled_date"`
	Status            domain.VisitStatus  `json:"status"`
	DiscussionSummary *string             `json:"discussion_summary"`
	Property          *domain.PropertyRef `json:"property"`
}

type Detail struct {
	domain.SalesOrder
	Client     *domain.ClientContact   `json:"client"`
	Visit      *VisitDetail            `json:"visit"`
	OrderItems []domain.SalesOrderItem `json:"orderItems"`
	Totals
}

// Row is returned by create and update.
type Row struct {
	domain.SalesOrder
	Client     *domain.ClientRef       `json:"client"`
	OrderItems []domain.SalesOrderItem `json:"orderItems"`
	Totals
}

func itemsOf(o domain.SalesOrder) []domain.SalesOrderItem {
	if o.OrderItems == nil {
		return []domain.SalesOrderItem{}
	}
	return o.OrderItems
}

func newListItem(o domain.SalesOrder) ListItem {
	items := itemsOf(o)
	item := ListItem{
		Client:     domain.NewClientRef(o.Client),
		OrderItems: make([]ItemWithProductRef, 0, len(items)),
		Totals:     ComputeTotals(items),
	}
	for _, it := range items {
		ref := domain.NewProductRef(it.Product)
		it.Product = nil
		item.OrderItems = append(item.OrderItems, ItemWithProductRef{SalesOrderItem: it, Product: ref})
	}
	if v := o.Visit; v != nil {
		item.Visit = &VisitSummary{ID: v.ID, ScheduledDate: v.ScheduledDate, Property: domain.NewPropertyName(v.Property)}
	}

	o.Client, o.Visit, o.OrderItems = nil, nil, nil
	item.SalesOrder = o
	return item
}

func newDetail(o domain.SalesOrder) *Detail {
	items := itemsOf(o)
	d := &Detail{
		Client:     domain.NewClientContact(o.Client),
		OrderItems: items,
		Totals:     ComputeTotals(items),
	}
	if v := o.Visit; v != nil {
		d.Visit = &VisitDetail{
			ID:                v.ID,
			ScheduledDate:     v.ScheduledDate,
			Status:            v.Status,
			DiscussionSummary: v.DiscussionSummary,
			Property:          domain.NewPropertyRef(v.Property),
		}
	}

	o.Client, o.Visit, o.OrderItems = nil, nil, nil
	d.SalesOrder = o
	return d
}

func newRow(o domain.SalesOrder) *Row {
	items := itemsOf(o)
	row := &Row{
		Client:     domain.NewClientRef(o.Client),
		OrderItems: items,
		Totals:     ComputeTotals(items),
	}
	o.Client, o.Visit, o.OrderItems = nil, nil, nil
	row.SalesOrder = o
	return row
}
