// Package domain contains the purchase/sales order models.
//
// Counterparty and product details are denormalized into the order at
// creation time. Reports read these embedded snapshots, never the live
// contact/product rows, so historical documents stay accurate when the
// master records change later.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	contactdomain "github.com/shivbooks/books/internal/contact/domain"
	"github.com/shopspring/decimal"
)

// ContactSnapshot is the counterparty as it looked when the order was created.
type ContactSnapshot struct {
	ID    snowflake.ID            `json:"id"`
	Name  string                  `json:"name"`
	Type  contactdomain.ContactType `json:"type"`
	Email string                  `json:"email,omitempty"`
}

// ProductSnapshot is the product as it looked when the order was created.
type ProductSnapshot struct {
	ID            snowflake.ID    `json:"id"`
	Name          string          `json:"name"`
	SalesPrice    decimal.Decimal `json:"salesPrice"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
}

// OrderItem is one line on an order.
type OrderItem struct {
	Product   ProductSnapshot `json:"product"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Amount    decimal.Decimal `json:"amount"`
}

type PurchaseOrderStatus string

const (
	PurchaseOrderStatusDraft  PurchaseOrderStatus = "Draft"
	PurchaseOrderStatusBilled PurchaseOrderStatus = "Billed"
)

type SalesOrderStatus string

const (
	SalesOrderStatusDraft    SalesOrderStatus = "Draft"
	SalesOrderStatusInvoiced SalesOrderStatus = "Invoiced"
)

// PurchaseOrder is a purchase commitment to a vendor. Dates are stored as
// YYYY-MM-DD strings so chronological order equals lexical order.
type PurchaseOrder struct {
	ID          snowflake.ID        `gorm:"primaryKey" json:"id"`
	Vendor      ContactSnapshot     `gorm:"serializer:json" json:"vendor"`
	OrderDate   string              `gorm:"not null" json:"orderDate"`
	Items       []OrderItem         `gorm:"serializer:json" json:"items"`
	TotalAmount decimal.Decimal     `gorm:"type:decimal(20,4);not null" json:"totalAmount"`
	Status      PurchaseOrderStatus `gorm:"type:text;not null;default:'Draft'" json:"status"`
	CreatedAt   time.Time           `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time           `gorm:"not null" json:"updatedAt"`
}

// TableName sets the database table name.
func (PurchaseOrder) TableName() string { return "purchase_orders" }

// SalesOrder is the sales-side mirror of PurchaseOrder.
type SalesOrder struct {
	ID          snowflake.ID     `gorm:"primaryKey" json:"id"`
	Customer    ContactSnapshot  `gorm:"serializer:json" json:"customer"`
	OrderDate   string           `gorm:"not null" json:"orderDate"`
	Items       []OrderItem      `gorm:"serializer:json" json:"items"`
	TotalAmount decimal.Decimal  `gorm:"type:decimal(20,4);not null" json:"totalAmount"`
	Status      SalesOrderStatus `gorm:"type:text;not null;default:'Draft'" json:"status"`
	CreatedAt   time.Time        `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time        `gorm:"not null" json:"updatedAt"`
}

// TableName sets the database table name.
func (SalesOrder) TableName() string { return "sales_orders" }
