package client

import (
	"time"

	"agroconsult/internal/domain"
	"agroconsult/internal/pkg/pagination"
	"agroconsult/internal/pkg/validator"
)

type CreateRequest struct {
	Name    validator.String `json:"name" validate:"required,max=200"`
	CpfCnpj validator.String `json:"cpf_cnpj" validate:"omitempty,max=32"`
	Phone   validator.String `json:"phone" validate:"omitempty,max=40"`
	Email   validator.String `json:"email" validate:"omitempty,email,max=200"`
}

func (r *CreateRequest) toModel(actor string) *domain.Client {
	return &domain.Client{
		Name:      r.Name.Value,
		CpfCnpj:   r.CpfCnpj.Ptr(),
		Phone:     r.Phone.Ptr(),
		Email:     r.Email.Ptr(),
		CreatedBy: actor,
	}
}

// UpdateRequest changes only the keys present in the body.
type UpdateRequest struct {
	Name    validator.String `json:"name" input:"nonnull" validate:"omitempty,max=200"`
	CpfCnpj validator.String `json:"cpf_cnpj" validate:"omitempty,max=32"`
	Phone   validator.String `json:"phone" validate:"omitempty,max=40"`
	Email   validator.String `json:"email" validate:"omitempty,email,max=200"`
}

func (r *UpdateRequest) changes() map[string]any {
	m := map[string]any{}
	r.Name.Patch(m, "name")
	r.CpfCnpj.Patch(m, "cpf_cnpj")
	r.Phone.Patch(m, "phone")
	r.Email.Patch(m, "email")
	return m
}

type ListFilter struct {
	Search string
	Page   pagination.Params
}

type ListCount struct {
	Visits      int64 `json:"visits"`
	SalesOrders int64 `json:"salesOrders"`
}

type ListItem struct {
	domain.Client
	Properties []domain.PropertyRef `json:"properties"`
	Count      ListCount            `json:"_count"`
}

type PropertyWithPlots struct {
	domain.Property
	Plots []domain.PlotRef `json:"plots"`
}

type VisitSummary struct {
	ID            string             `json:"id"`
	ScheduledDate time.Time          `json:"scheduled_date"`
	Status        domain.VisitStatus `json:"status"`
	Objective     *string            `json:"objective"`
	Property      *domain.NamedRef   `json:"property"`
}

type OrderCount struct {
	OrderItems int64 `json:"orderItems"`
}

type OrderSummary struct {
	ID        string             `json:"id"`
	Status    domain.OrderStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	Count     OrderCount         `json:"_count"`
}

type Detail struct {
	domain.Client
	Properties  []PropertyWithPlots `json:"properties"`
	Visits      []VisitSummary      `json:"visits"`
	SalesOrders []OrderSummary      `json:"salesOrders"`
}

func newListItem(c domain.Client, visits, orders map[string]int64) ListItem {
	props := make([]domain.PropertyRef, 0, len(c.Properties))
	for i := range c.Properties {
		props = append(props, *domain.NewPropertyRef(&c.Properties[i]))
	}

	item := ListItem{
		Properties: props,
		Count:      ListCount{Visits: visits[c.ID], SalesOrders: orders[c.ID]},
	}
	c.Properties = nil
	item.Client = c
	return item
}

func newDetail(c domain.Client, itemCounts map[string]int64) *Detail {
	d := &Detail{
		Properties:  make([]PropertyWithPlots, 0, len(c.Properties)),
		Visits:      make([]VisitSummary, 0, len(c.Visits)),
		SalesOrders: make([]OrderSummary, 0, len(c.SalesOrders)),
	}

	for _, p := range c.Properties {
		plots := domain.NewPlotRefs(p.Plots)
		p.Plots = nil
		d.Properties = append(d.Properties, PropertyWithPlots{Property: p, Plots: plots})
	}
	for _, v := range c.Visits {
		d.Visits = append(d.Visits, VisitSummary{
			ID:            v.ID,
			ScheduledDate: v.ScheduledDate,
			Status:        v.Status,
			Objective:     v.Objective,
			Property:      domain.NewPropertyName(v.Property),
		})
	}
	for _, o := range c.SalesOrders {
		d.SalesOrders = append(d.SalesOrders, OrderSummary{
			ID:        o.ID,
			Status:    o.Status,
			CreatedAt: o.CreatedAt,
			Count:     OrderCount{OrderItems: itemCounts[o.ID]},
		})
	}

	c.Properties, c.Visits, c.SalesOrders = nil, nil, nil
	d.Client = c
	return d
}
