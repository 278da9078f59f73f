package plot

import (
	"agroconsult/internal/domain"
	"agroconsult/internal/pkg/pagination"
	"agroconsult/internal/pkg/validator"
)

type CreateRequest struct {
	PropertyID   validator.String `json:"property_id" validate:"required"`
	Name         validator.String `json:"name" validate:"required,max=200"`
	Crop         validator.String `json:"crop" validate:"omitempty,max=120"`
	AreaHectares validator.Number `json:"area_hectares" validate:"omitempty,gte=0"`
}

type UpdateRequest struct {
	Name         validator.String `json:"name" input:"nonnull" validate:"omitempty,max=200"`
	Crop         validator.String `json:"crop" validate:"omitempty,max=120"`
	AreaHectares validator.Number `json:"area_hectares" validate:"omitempty,gte=0"`
}

func (r *UpdateRequest) changes() map[string]any {
	m := map[string]any{}
	r.Name.Patch(m, "name")
	r.Crop.Patch(m, "crop")
	r.AreaHectares.Patch(m, "area_hectares")
	return m
}

type ListFilter struct {
	PropertyID string
	Page       pagination.Params
}

type PropertySummary struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Client *domain.ClientRef `json:"client"`
}

// Row is a plot with its property and the property's owner.
type Row struct {
	domain.Plot
	Property *PropertySummary `json:"property"`
}

type ListCount struct {
	PlotEvaluations int64 `json:"plotEvaluations"`
}

type ListItem struct {
	Row
	Count ListCount `json:"_count"`
}

type PropertyWithClient struct {
	domain.Property
	Client *domain.ClientRef `json:"client"`
}

type MediaCount struct {
	Media int64 `json:"media"`
}

type Evaluation struct {
	domain.PlotEvaluation
	Visit *domain.VisitRef `json:"visit"`
	Media []domain.Media   `json:"media"`
	Count MediaCount       `json:"_count"`
}

type Detail struct {
	domain.Plot
	Property        *PropertyWithClient `json:"property"`
	PlotEvaluations []Evaluation        `json:"plotEvaluations"`
}

func newRow(p domain.Plot) Row {
	var summary *PropertySummary
	if p.Property != nil {
		summary = &PropertySummary{
			ID:     p.Property.ID,
			Name:   p.Property.Name,
			Client: domain.NewClientRef(p.Property.Client),
		}
	}
	p.Property = nil
	return Row{Plot: p, Property: summary}
}

func newDetail(p domain.Plot) *Detail {
	d := &Detail{PlotEvaluations: make([]Evaluation, 0, len(p.PlotEvaluations))}

	if p.Property != nil {
		prop := *p.Property
		client := domain.NewClientRef(prop.Client)
		prop.Client = nil
		d.Property = &PropertyWithClient{Property: prop, Client: client}
	}

	for _, e := range p.PlotEvaluations {
		media := e.Media
		if media == nil {
			media = []domain.Media{}
		}
		visit := domain.NewVisitRef(e.Visit)
		e.Visit, e.Media = nil, nil
		d.PlotEvaluations = append(d.PlotEvaluations, Evaluation{
			PlotEvaluation: e,
			Visit:          visit,
			Media:          media,
			Count:          MediaCount{Media: int64(len(media))},
		})
	}

	p.Property, p.PlotEvaluations = nil, nil
	d.Plot = p
	return d
}
