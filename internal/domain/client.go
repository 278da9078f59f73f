package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client is a grower served by the consultancy.
type Client struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	CpfCnpj   *string   `json:"cpf_cnpj" gorm:"column:cpf_cnpj;uniqueIndex"`
	Phone     *string   `json:"phone"`
	Email     *string   `json:"email"`
	CreatedBy string    `json:"created_by" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Properties  []Property   `json:"properties,omitempty" gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Visits      []Visit      `json:"visits,omitempty" gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	SalesOrders []SalesOrder `json:"salesOrders,omitempty" gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Client) TableName() string { return "clients" }

func (c *Client) BeforeCreate(_ *gorm.DB) error {
	c.ID = ensureID(c.ID)
	return nil
}

func ensureID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}
