package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	InsertVendorBill(ctx context.Context, db *gorm.DB, bill *VendorBill) error
	FindVendorBillByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*VendorBill, error)
	ListVendorBills(ctx context.Context, db *gorm.DB) ([]VendorBill, error)
	UpdateVendorBill(ctx context.Context, db *gorm.DB, bill *VendorBill) error

	InsertCustomerInvoice(ctx context.Context, db *gorm.DB, invoice *CustomerInvoice) error
	FindCustomerInvoiceByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*CustomerInvoice, error)
	ListCustomerInvoices(ctx context.Context, db *gorm.DB) ([]CustomerInvoice, error)
	UpdateCustomerInvoice(ctx context.Context, db *gorm.DB, invoice *CustomerInvoice) error
}
