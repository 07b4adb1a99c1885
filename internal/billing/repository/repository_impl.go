package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/shivbooks/books/internal/billing/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertVendorBill(ctx context.Context, db *gorm.DB, bill *domain.VendorBill) error {
	return db.WithContext(ctx).Create(bill).Error
}

func (r *repo) FindVendorBillByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.VendorBill, error) {
	var bill domain.VendorBill
	err := db.WithContext(ctx).First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *repo) ListVendorBills(ctx context.Context, db *gorm.DB) ([]domain.VendorBill, error) {
	var bills []domain.VendorBill
	err := db.WithContext(ctx).
		Model(&domain.VendorBill{}).
		Order("bill_date asc, id asc").
		Find(&bills).Error
	if err != nil {
		return nil, err
	}
	return bills, nil
}

func (r *repo) UpdateVendorBill(ctx context.Context, db *gorm.DB, bill *domain.VendorBill) error {
	return db.WithContext(ctx).Save(bill).Error
}

func (r *repo) InsertCustomerInvoice(ctx context.Context, db *gorm.DB, invoice *domain.CustomerInvoice) error {
	return db.WithContext(ctx).Create(invoice).Error
}

func (r *repo) FindCustomerInvoiceByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.CustomerInvoice, error) {
	var invoice domain.CustomerInvoice
	err := db.WithContext(ctx).First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *repo) ListCustomerInvoices(ctx context.Context, db *gorm.DB) ([]domain.CustomerInvoice, error) {
	var invoices []domain.CustomerInvoice
	err := db.WithContext(ctx).
		Model(&domain.CustomerInvoice{}).
		Order("invoice_date asc, id asc").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *repo) UpdateCustomerInvoice(ctx context.Context, db *gorm.DB, invoice *domain.CustomerInvoice) error {
	return db.WithContext(ctx).Save(invoice).Error
}
