package domain

import (
	"time"

	"gorm.io/gorm"
)

// PlotEvaluation is the technical assessment of one plot during one visit.
type PlotEvaluation struct {
	ID                      string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	VisitID                 string    `json:"visit_id" gorm:"type:varchar(36);not null;index"`
	PlotID                  string    `json:"plot_id" gorm:"type:varchar(36);not null;index"`
	PhenologicalStage       *string   `json:"phenological_stage"`
	PestOrDisease           *string   `json:"pest_or_disease"`
	InfestationLevel        *string   `json:"infestation_level"`
	Weeds                   *string   `json:"weeds"`
	TechnicalRecommendation *string   `json:"technical_recommendation" gorm:"type:text"`
	CreatedBy               string    `json:"created_by" gorm:"not null"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`

	Visit *Visit  `json:"visit,omitempty" gorm:"foreignKey:VisitID"`
	Plot  *Plot   `json:"plot,omitempty" gorm:"foreignKey:PlotID"`
	Media []Media `json:"media,omitempty" gorm:"foreignKey:PlotEvaluationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (PlotEvaluation) TableName() string { return "plot_evaluations" }

func (e *PlotEvaluation) BeforeCreate(_ *gorm.DB) error {
	e.ID = ensureID(e.ID)
	return nil
}

type MediaType string

const (
	MediaPhoto MediaType = "PHOTO"
	MediaAudio MediaType = "AUDIO"
)

// Media is a photo or audio attachment of an evaluation. Uploads happen
// outside this service; rows are only read here.
type Media struct {
	ID               string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	PlotEvaluationID string    `json:"plot_evaluation_id" gorm:"type:varchar(36);not null;index"`
	Type             MediaType `json:"type" gorm:"type:varchar(8);not null"`
	URL              string    `json:"url" gorm:"not null"`
	CreatedAt        time.Time `json:"created_at"`
}

func (Media) TableName() string { return "media" }

func (m *Media) BeforeCreate(_ *gorm.DB) error {
	m.ID = ensureID(m.ID)
	return nil
}
