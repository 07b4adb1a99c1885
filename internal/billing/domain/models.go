// Package domain holds the billing documents derived from orders. A vendor
// bill is cut from a billed purchase order and a customer invoice from an
// invoiced sales order; both freeze the order's snapshots and total at
// derivation time.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	orderdomain "github.com/shivbooks/books/internal/order/domain"
	"github.com/shopspring/decimal"
)

type VendorBillStatus string

const (
	VendorBillStatusOpen VendorBillStatus = "Open"
	VendorBillStatusPaid VendorBillStatus = "Paid"
)

type CustomerInvoiceStatus string

const (
	CustomerInvoiceStatusOpen CustomerInvoiceStatus = "Open"
	CustomerInvoiceStatusPaid CustomerInvoiceStatus = "Paid"
)

type VendorBill struct {
	ID              snowflake.ID               `json:"id,string" gorm:"primaryKey"`
	PurchaseOrderID snowflake.ID               `json:"purchaseOrderId,string" gorm:"uniqueIndex:ux_vendor_bills_po"`
	Vendor          orderdomain.ContactSnapshot `json:"vendor" gorm:"serializer:json"`
	Items           []orderdomain.OrderItem     `json:"items" gorm:"serializer:json"`
	BillDate        string                     `json:"billDate" gorm:"type:varchar(10);index"`
	DueDate         string                     `json:"dueDate" gorm:"type:varchar(10)"`
	TotalAmount     decimal.Decimal            `json:"totalAmount" gorm:"type:decimal(20,4)"`
	Status          VendorBillStatus           `json:"status" gorm:"type:varchar(16);index"`
	CreatedAt       time.Time                  `json:"createdAt"`
	UpdatedAt       time.Time                  `json:"updatedAt"`
}

func (VendorBill) TableName() string { return "vendor_bills" }

type CustomerInvoice struct {
	ID           snowflake.ID                `json:"id,string" gorm:"primaryKey"`
	SalesOrderID snowflake.ID                `json:"salesOrderId,string" gorm:"uniqueIndex:ux_customer_invoices_so"`
	Customer     orderdomain.ContactSnapshot `json:"customer" gorm:"serializer:json"`
	Items        []orderdomain.OrderItem     `json:"items" gorm:"serializer:json"`
	InvoiceDate  string                      `json:"invoiceDate" gorm:"type:varchar(10);index"`
	DueDate      string                      `json:"dueDate" gorm:"type:varchar(10)"`
	TotalAmount  decimal.Decimal             `json:"totalAmount" gorm:"type:decimal(20,4)"`
	Status       CustomerInvoiceStatus       `json:"status" gorm:"type:varchar(16);index"`
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
}

func (CustomerInvoice) TableName() string { return "customer_invoices" }
