package property

import (
	"time"

	"agroconsult/internal/domain"
	"agroconsult/internal/pkg/pagination"
	"agroconsult/internal/pkg/validator"
)

type CreateRequest struct {
	ClientID validator.String `json:"client_id" validate:"required"`
	Name     validator.String `json:"name" validate:"required,max=200"`
	City     validator.String `json:"city" validate:"omitempty,max=120"`
}

type UpdateRequest struct {
	Name validator.String `json:"name" input:"nonnull" validate:"omitempty,max=200"`
	City validator.String `json:"city" validate:"omitempty,max=120"`
}

func (r *UpdateRequest) changes() map[string]any {
	m := map[string]any{}
	r.Name.Patch(m, "name")
	r.City.Patch(m, "city")
	return m
}

type ListFilter struct {
	ClientID string
	Page     pagination.Params
}

type Count struct {
	Plots  int64 `json:"plots"`
	Visits int64 `json:"visits"`
}

// Row is a property with its owner's id and name; returned by list, create
// and update.
type Row struct {
	domain.Property
	Client *domain.ClientRef `json:"client"`
}

type ListItem struct {
	Row
	Count Count `json:"_count"`
}

type VisitSummary struct {
	ID                string             `json:"id"`
	ScheduledDate     time.Time          `json:"scheduled_date"`
	Status            domain.VisitStatus `json:"status"`
	Objective         *string            `json:"objective"`
	DiscussionSummary *string            `json:"discussion_summary"`
}

type Detail struct {
	domain.Property
	Client *domain.ClientContact `json:"client"`
	Plots  []domain.Plot         `json:"plots"`
	Visits []VisitSummary        `json:"visits"`
	Count  Count                 `json:"_count"`
}

func newRow(p domain.Property) Row {
	client := domain.NewClientRef(p.Client)
	p.Client = nil
	return Row{Property: p, Client: client}
}

func newDetail(p domain.Property) *Detail {
	d := &Detail{
		Client: domain.NewClientContact(p.Client),
		Plots:  p.Plots,
		Visits: make([]VisitSummary, 0, len(p.Visits)),
		Count:  Count{Plots: int64(len(p.Plots)), Visits: int64(len(p.Visits))},
	}
	if d.Plots == nil {
		d.Plots = []domain.Plot{}
	}
	for _, v := range p.Visits {
		d.Visits = append(d.Visits, VisitSummary{
			ID:                v.ID,
			ScheduledDate:     v.ScheduledDate,
			Status:            v.Status,
			Objective:         v.Objective,
			DiscussionSummary: v.DiscussionSummary,
		})
	}

	p.Client, p.Plots, p.Visits = nil, nil, nil
	d.Property = p
	return d
}
