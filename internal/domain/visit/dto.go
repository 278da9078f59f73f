package visit

import (
	"agroconsult/internal/domain"
	"agroconsult/internal/pkg/pagination"
	"agroconsult/internal/pkg/validator"
)

var Statuses = []string{
	string(domain.VisitScheduled),
	string(domain.VisitDone),
	string(domain.VisitCancelled),
}

func init() {
	validator.RegisterEnum("visit_status", Statuses...)
}

type CreateRequest struct {
	ClientID      validator.String `json:"client_id" validate:"required"`
	PropertyID    validator.String `json:"property_id" validate:"required"`
	ScheduledDate validator.Time   `json:"scheduled_date" validate:"required"`
	Objective     validator.String `json:"objective" validate:"omitempty,max=2000"`
}

type UpdateRequest struct {
	ScheduledDate     validator.Time   `json:"scheduled_date" input:"nonnull"`
	Objective         validator.String `json:"objective" validate:"omitempty,max=2000"`
	DiscussionSummary validator.String `json:"discussion_summary"`
	Status            validator.String `json:"status" input:"nonnull" validate:"omitempty,visit_status"`
}

func (r *UpdateRequest) changes() map[string]any {
	m := map[string]any{}
	r.ScheduledDate.Patch(m, "scheduled_date")
	r.Objective.Patch(m, "objective")
	r.DiscussionSummary.Patch(m, "discussion_summary")
	r.Status.Patch(m, "status")
	return m
}

// SummaryRequest records what was discussed during the visit.
type SummaryRequest struct {
	DiscussionSummary validator.String `json:"discussion_summary" validate:"required"`
}

type ListFilter struct {
	ClientID   string
	PropertyID string
	Status     string
	Page       pagination.Params
}

// Row is a visit with its client and property.
type Row struct {
	domain.Visit
	Client   *domain.ClientRef   `json:"client"`
	Property *domain.PropertyRef `json:"property"`
}

type ListCount struct {
	PlotEvaluations int64 `json:"plotEvaluations"`
}

type ListItem struct {
	Row
	Count ListCount `json:"_count"`
}

type PropertyWithPlots struct {
	domain.Property
	Plots []domain.PlotRef `json:"plots"`
}

type MediaCount struct {
	Media int64 `json:"media"`
}

type Evaluation struct {
	domain.PlotEvaluation
	Plot  *domain.NamedRef `json:"plot"`
	Media []domain.Media   `json:"media"`
	Count MediaCount       `json:"_count"`
}

type Detail struct {
	domain.Visit
	Client          *domain.ClientContact `json:"client"`
	Property        *PropertyWithPlots    `json:"property"`
	PlotEvaluations []Evaluation          `json:"plotEvaluations"`
}

func newRow(v domain.Visit) Row {
	client := domain.NewClientRef(v.Client)
	property := domain.NewPropertyRef(v.Property)
	v.Client, v.Property = nil, nil
	return Row{Visit: v, Client: client, Property: property}
}

func newDetail(v domain.Visit) *Detail {
	d := &Detail{
		Client:          domain.NewClientContact(v.Client),
		PlotEvaluations: make([]Evaluation, 0, len(v.PlotEvaluations)),
	}

	if v.Property != nil {
		prop := *v.Property
		plots := domain.NewPlotRefs(prop.Plots)
		prop.Plots, prop.Client, prop.Visits = nil, nil, nil
		d.Property = &PropertyWithPlots{Property: prop, Plots: plots}
	}

	for _, e := range v.PlotEvaluations {
		media := e.Media
		if media == nil {
			media = []domain.Media{}
		}
		plot := domain.NewPlotName(e.Plot)
		e.Plot, e.Media, e.Visit = nil, nil, nil
		d.PlotEvaluations = append(d.PlotEvaluations, Evaluation{
			PlotEvaluation: e,
			Plot:           plot,
			Media:          media,
			Count:          MediaCount{Media: int64(len(media))},
		})
	}

	v.Client, v.Property, v.PlotEvaluations = nil, nil, nil
	d.Visit = v
	return d
}
