package domain

import (
	"time"

	"gorm.io/gorm"
)

// Property is a farm owned by a client.
type Property struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	ClientID  string    `json:"client_id" gorm:"type:varchar(36);not null;index"`
	Name      string    `json:"name" gorm:"not null"`
	City      *string   `json:"city"`
	CreatedBy string    `json:"created_by" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Client *Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Plots  []Plot  `json:"plots,omitempty" gorm:"foreignKey:PropertyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Visits []Visit `json:"visits,omitempty" gorm:"foreignKey:PropertyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Property) TableName() string { return "properties" }

func (p *Property) BeforeCreate(_ *gorm.DB) error {
	p.ID = ensureID(p.ID)
	return nil
}
