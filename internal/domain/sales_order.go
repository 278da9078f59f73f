package domain

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderQuote     OrderStatus = "COTAÇÃO"
	OrderApproved  OrderStatus = "APROVADO"
	OrderClosed    OrderStatus = "PEDIDO FECHADO"
	OrderInvoiced  OrderStatus = "FATURADO"
	OrderDelivered OrderStatus = "ENTREGUE"
	OrderCancelled OrderStatus = "CANCELADO"
)

// SalesOrder is a quotation or order of products for a client. The total is
// never stored; it is derived from OrderItems on every read.
type SalesOrder struct {
	ID        string      `json:"id" gorm:"type:varchar(36);primaryKey"`
	ClientID  string      `json:"client_id" gorm:"type:varchar(36);not null;index"`
	VisitID   *string     `json:"visit_id" gorm:"type:varchar(36);index"`
	Status    OrderStatus `json:"status" gorm:"type:varchar(32);not null;index"`
	CreatedBy string      `json:"created_by" gorm:"not null"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`

	Client     *Client          `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Visit      *Visit           `json:"visit,omitempty" gorm:"foreignKey:VisitID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	OrderItems []SalesOrderItem `json:"orderItems,omitempty" gorm:"foreignKey:SalesOrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (SalesOrder) TableName() string { return "sales_orders" }

func (o *SalesOrder) BeforeCreate(_ *gorm.DB) error {
	o.ID = ensureID(o.ID)
	return nil
}

type SalesOrderItem struct {
	ID           string  `json:"id" gorm:"type:varchar(36);primaryKey"`
	SalesOrderID string  `json:"sales_order_id" gorm:"type:varchar(36);not null;index"`
	ProductID    string  `json:"product_id" gorm:"type:varchar(36);not null;index"`
	Quantity     float64 `json:"quantity" gorm:"not null"`
	UnitPrice    float64 `json:"unit_price" gorm:"not null"`
	// Position keeps items in the order they were submitted.
	Position     int     `json:"-" gorm:"not null;default:0"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (SalesOrderItem) TableName() string { return "sales_order_items" }

func (i *SalesOrderItem) BeforeCreate(_ *gorm.DB) error {
	i.ID = ensureID(i.ID)
	return nil
}
