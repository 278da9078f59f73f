package domain

import (
	"time"

	"gorm.io/gorm"
)

// Plot (talhão) is a subdivision of a property dedicated to one crop.
type Plot struct {
	ID           string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	PropertyID   string    `json:"property_id" gorm:"type:varchar(36);not null;index"`
	Name         string    `json:"name" gorm:"not null"`
	Crop         *string   `json:"crop"`
	AreaHectares *float64  `json:"area_hectares"`
	CreatedBy    string    `json:"created_by" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Property        *Property        `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
	PlotEvaluations []PlotEvaluation `json:"plotEvaluations,omitempty" gorm:"foreignKey:PlotID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Plot) TableName() string { return "plots" }

func (p *Plot) BeforeCreate(_ *gorm.DB) error {
	p.ID = ensureID(p.ID)
	return nil
}
