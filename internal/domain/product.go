package domain

import (
	"time"

	"gorm.io/gorm"
)

// Product types offered by the catalog.
const (
	ProductInseticida   = "INSETICIDA"
	ProductFungicida    = "FUNGICIDA"
	ProductHerbicida    = "HERBICIDA"
	ProductFertilizante = "FERTILIZANTE"
	ProductSemente      = "SEMENTE"
)

type Product struct {
	ID               string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name             string    `json:"name" gorm:"not null;uniqueIndex"`
	Type             string    `json:"type" gorm:"not null;index"`
	ActiveIngredient *string   `json:"active_ingredient"`
	CreatedBy        string    `json:"created_by" gorm:"not null"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Product) TableName() string { return "products" }

func (p *Product) BeforeCreate(_ *gorm.DB) error {
	p.ID = ensureID(p.ID)
	return nil
}
