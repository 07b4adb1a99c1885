// Package domain holds the settlement documents. A payment settles one open
// vendor bill in full and a receipt settles one open customer invoice in
// full; partial settlement is not supported.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	orderdomain "github.com/shivbooks/books/internal/order/domain"
	"github.com/shopspring/decimal"
)

type Payment struct {
	ID           snowflake.ID                `json:"id,string" gorm:"primaryKey"`
	VendorBillID snowflake.ID                `json:"vendorBillId,string" gorm:"uniqueIndex:ux_payments_bill"`
	Vendor       orderdomain.ContactSnapshot `json:"vendor" gorm:"serializer:json"`
	PaymentDate  string                      `json:"paymentDate" gorm:"type:varchar(10);index"`
	Amount       decimal.Decimal             `json:"amount" gorm:"type:decimal(20,4)"`
	Method       string                      `json:"method,omitempty" gorm:"type:varchar(32)"`
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
}

func (Payment) TableName() string { return "payments" }

type Receipt struct {
	ID                snowflake.ID                `json:"id,string" gorm:"primaryKey"`
	CustomerInvoiceID snowflake.ID                `json:"customerInvoiceId,string" gorm:"uniqueIndex:ux_receipts_invoice"`
	Customer          orderdomain.ContactSnapshot `json:"customer" gorm:"serializer:json"`
	ReceiptDate       string                      `json:"receiptDate" gorm:"type:varchar(10);index"`
	Amount            decimal.Decimal             `json:"amount" gorm:"type:decimal(20,4)"`
	Method            string                      `json:"method,omitempty" gorm:"type:varchar(32)"`
	CreatedAt         time.Time                   `json:"createdAt"`
	UpdatedAt         time.Time                   `json:"updatedAt"`
}

func (Receipt) TableName() string { return "receipts" }
