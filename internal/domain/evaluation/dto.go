package evaluation

import (
	"time"

	"agroconsult/internal/domain"
	"agroconsult/internal/pkg/pagination"
	"agroconsult/internal/pkg/validator"
)

type CreateRequest struct {
	VisitID                 validator.String `json:"visit_id" validate:"required"`
	PlotID                  validator.String `json:"plot_id" validate:"required"`
	PhenologicalStage       validator.String `json:"phenological_stage" validate:"omitempty,max=200"`
	PestOrDisease           validator.String `json:"pest_or_disease" validate:"omitempty,max=200"`
	InfestationLevel        validator.String `json:"infestation_level" validate:"omitempty,max=200"`
	Weeds                   validator.String `json:"weeds" validate:"omitempty,max=200"`
	TechnicalRecommendation validator.String `json:"technical_recommendation"`
}

func (r *CreateRequest) toModel(actor string) *domain.PlotEvaluation {
	return &domain.PlotEvaluation{
		VisitID:                 r.VisitID.Value,
		PlotID:                  r.PlotID.Value,
		PhenologicalStage:       r.PhenologicalStage.Ptr(),
		PestOrDisease:           r.PestOrDisease.Ptr(),
		InfestationLevel:        r.InfestationLevel.Ptr(),
		Weeds:                   r.Weeds.Ptr(),
		TechnicalRecommendation: r.TechnicalRecommendation.Ptr(),
		CreatedBy:               actor,
	}
}

type UpdateRequest struct {
	PhenologicalStage       validator.String `json:"phenological_stage" validate:"omitempty,max=200"`
	PestOrDisease           validator.String `json:"pest_or_disease" validate:"omitempty,max=200"`
	InfestationLevel        validator.String `json:"infestation_level" validate:"omitempty,max=200"`
	Weeds                   validator.String `json:"weeds" validate:"omitempty,max=200"`
	TechnicalRecommendation validator.String `json:"technical_recommendation"`
}

func (r *UpdateRequest) changes() map[string]any {
	m := map[string]any{}
	r.PhenologicalStage.Patch(m, "phenological_stage")
	r.PestOrDisease.Patch(m, "pest_or_disease")
	r.InfestationLevel.Patch(m, "infestation_level")
	r.Weeds.Patch(m, "weeds")
	r.TechnicalRecommendation.Patch(m, "technical_recommendation")
	return m
}

type ListFilter struct {
	VisitID string
	PlotID  string
	Page    pagination.Params
}

type VisitSummary struct {
	ID            string             `json:"id"`
	ScheduledDate time.Time          `json:"scheduled_date"`
	Status        domain.VisitStatus `json:"status"`
	Client        *domain.ClientRef  `json:"client"`
	Property      *domain.NamedRef   `json:"property"`
}

type MediaCount struct {
	Media int64 `json:"media"`
}

// Row is an evaluation with its visit, plot and media.
type Row struct {
	domain.PlotEvaluation
	Visit *VisitSummary   `json:"visit"`
	Plot  *domain.PlotRef `json:"plot"`
	Media []domain.Media  `json:"media"`
	Count MediaCount      `json:"_count"`
}

type PropertyWithPlots struct {
	domain.Property
	Plots []domain.PlotRef `json:"plots"`
}

type VisitDetail struct {
	domain.Visit
	Client   *domain.ClientContact `json:"client"`
	Property *PropertyWithPlots    `json:"property"`
}

type Detail struct {
	domain.PlotEvaluation
	Visit *VisitDetail    `json:"visit"`
	Plot  *domain.PlotRef `json:"plot"`
	Media []domain.Media  `json:"media"`
}

func mediaOf(e domain.PlotEvaluation) []domain.Media {
	if e.Media == nil {
		return []domain.Media{}
	}
	return e.Media
}

func newRow(e domain.PlotEvaluation) Row {
	row := Row{Plot: domain.NewPlotRef(e.Plot), Media: mediaOf(e)}
	row.Count.Media = int64(len(row.Media))

	if v := e.Visit; v != nil {
		row.Visit = &VisitSummary{
			ID:            v.ID,
			ScheduledDate: v.ScheduledDate,
			Status:        v.Status,
			Client:        domain.NewClientRef(v.Client),
			Property:      domain.NewPropertyName(v.Property),
		}
	}

	e.Visit, e.Plot, e.Media = nil, nil, nil
	row.PlotEvaluation = e
	return row
}

func newDetail(e domain.PlotEvaluation) *Detail {
	d := &Detail{Plot: domain.NewPlotRef(e.Plot), Media: mediaOf(e)}

	if e.Visit != nil {
		v := *e.Visit
		vd := &VisitDetail{Client: domain.NewClientContact(v.Client)}
		if v.Property != nil {
			prop := *v.Property
			plots := domain.NewPlotRefs(prop.Plots)
			prop.Plots, prop.Client, prop.Visits = nil, nil, nil
			vd.Property = &PropertyWithPlots{Property: prop, Plots: plots}
		}
		v.Client, v.Property, v.PlotEvaluations = nil, nil, nil
		vd.Visit = v
		d.Visit = vd
	}

	e.Visit, e.Plot, e.Media = nil, nil, nil
	d.PlotEvaluation = e
	return d
}
