package domain

import (
	"time"

	"gorm.io/gorm"
)

type VisitStatus string

const (
	VisitScheduled VisitStatus = "AGENDADA"
	VisitDone      VisitStatus = "REALIZADA"
	VisitCancelled VisitStatus = "CANCELADA"
)

// Visit is a scheduled or completed technical visit to a property.
type Visit struct {
	ID                string      `json:"id" gorm:"type:varchar(36);primaryKey"`
	ClientID          string      `json:"client_id" gorm:"type:varchar(36);not null;index"`
	PropertyID        string      `json:"property_id" gorm:"type:varchar(36);not null;index"`
	ScheduledDate     time.Time   `json:"scheduled_date" gorm:"not null;index"`
	Objective         *string     `json:"objective" gorm:"type:text"`
	DiscussionSummary *string     `json:"discussion_summary" gorm:"type:text"`
	Status            VisitStatus `json:"status" gorm:"type:varchar(16);not null;default:AGENDADA;index"`
	CreatedBy         string      `json:"created_by" gorm:"not null"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`

	Client          *Client          `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Property        *Property        `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
	PlotEvaluations []PlotEvaluation `json:"plotEvaluations,omitempty" gorm:"foreignKey:VisitID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Visit) TableName() string { return "visits" }

func (v *Visit) BeforeCreate(_ *gorm.DB) error {
	v.ID = ensureID(v.ID)
	return nil
}
