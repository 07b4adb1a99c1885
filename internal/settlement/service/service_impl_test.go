package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	billingdomain "github.com/shivbooks/books/internal/billing/domain"
	billingrepo "github.com/shivbooks/books/internal/billing/repository"
	"github.com/shivbooks/books/internal/clock"
	orderdomain "github.com/shivbooks/books/internal/order/domain"
	"github.com/shivbooks/books/internal/settlement/domain"
	settlementrepo "github.com/shivbooks/books/internal/settlement/repository"
	pkgdb "github.com/shivbooks/books/pkg/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestSettlement(t *testing.T) (domain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	db, err := pkgdb.NewTest()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&billingdomain.VendorBill{},
		&billingdomain.CustomerInvoice{},
		&domain.Payment{},
		&domain.Receipt{},
	))

	node, err := snowflake.NewNode(3)
	require.NoError(t, err)

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clock.NewFakeClock(time.Date(2024, 4, 10, 8, 0, 0, 0, time.UTC)),
		Repo:  settlementrepo.Provide(),
		Bills: billingrepo.Provide(),
	})
	return svc, db, node
}

func seedOpenBill(t *testing.T, db *gorm.DB, node *snowflake.Node) billingdomain.VendorBill {
	t.Helper()
	now := time.Now().UTC()
	bill := billingdomain.VendorBill{
		ID:              node.Generate(),
		PurchaseOrderID: node.Generate(),
		Vendor:          orderdomain.ContactSnapshot{ID: node.Generate(), Name: "Steel Supplies"},
		BillDate:        "2024-04-01",
		DueDate:         "2024-05-01",
		TotalAmount:     decimal.NewFromInt(500),
		Status:          billingdomain.VendorBillStatusOpen,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	require.NoError(t, db.Create(&bill).Error)
	return bill
}

func seedOpenInvoice(t *testing.T, db *gorm.DB, node *snowflake.Node) billingdomain.CustomerInvoice {
	t.Helper()
	now := time.Now().UTC()
	invoice := billingdomain.CustomerInvoice{
		ID:           node.Generate(),
		SalesOrderID: node.Generate(),
		Customer:     orderdomain.ContactSnapshot{ID: node.Generate(), Name: "Acme Traders"},
		InvoiceDate:  "2024-04-02",
		DueDate:      "2024-05-02",
		TotalAmount:  decimal.NewFromInt(750),
		Status:       billingdomain.CustomerInvoiceStatusOpen,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, db.Create(&invoice).Error)
	return invoice
}

func TestCreatePaymentSettlesBillInFull(t *testing.T) {
	svc, db, node := newTestSettlement(t)
	bill := seedOpenBill(t, db, node)

	payment, err := svc.CreatePayment(context.Background(), domain.CreatePaymentRequest{
		VendorBillID: bill.ID.String(),
		Method:       "bank_transfer",
	})
	require.NoError(t, err)

	// The settlement always covers the full bill amount.
	assert.True(t, payment.Amount.Equal(bill.TotalAmount))
	assert.Equal(t, "2024-04-10", payment.PaymentDate)
	assert.Equal(t, "bank_transfer", payment.Method)

	var stored billingdomain.VendorBill
	require.NoError(t, db.First(&stored, "id = ?", bill.ID).Error)
	assert.Equal(t, billingdomain.VendorBillStatusPaid, stored.Status)
}

func TestCreatePaymentTwiceRejected(t *testing.T) {
	svc, db, node := newTestSettlement(t)
	bill := seedOpenBill(t, db, node)
	ctx := context.Background()

	_, err := svc.CreatePayment(ctx, domain.CreatePaymentRequest{VendorBillID: bill.ID.String()})
	require.NoError(t, err)

	_, err = svc.CreatePayment(ctx, domain.CreatePaymentRequest{VendorBillID: bill.ID.String()})
	assert.ErrorIs(t, err, domain.ErrAlreadyPaid)

	var count int64
	require.NoError(t, db.Model(&domain.Payment{}).Where("vendor_bill_id = ?", bill.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreatePaymentUnknownBill(t *testing.T) {
	svc, _, _ := newTestSettlement(t)

	_, err := svc.CreatePayment(context.Background(), domain.CreatePaymentRequest{VendorBillID: "123456"})
	assert.ErrorIs(t, err, billingdomain.ErrNotFound)
}

func TestCreateReceiptSettlesInvoiceInFull(t *testing.T) {
	svc, db, node := newTestSettlement(t)
	invoice := seedOpenInvoice(t, db, node)

	receipt, err := svc.CreateReceipt(context.Background(), domain.CreateReceiptRequest{
		CustomerInvoiceID: invoice.ID.String(),
		ReceiptDate:       "2024-04-12",
	})
	require.NoError(t, err)

	assert.True(t, receipt.Amount.Equal(invoice.TotalAmount))
	assert.Equal(t, "2024-04-12", receipt.ReceiptDate)

	var stored billingdomain.CustomerInvoice
	require.NoError(t, db.First(&stored, "id = ?", invoice.ID).Error)
	assert.Equal(t, billingdomain.CustomerInvoiceStatusPaid, stored.Status)
}

func TestCreateReceiptTwiceRejected(t *testing.T) {
	svc, db, node := newTestSettlement(t)
	invoice := seedOpenInvoice(t, db, node)
	ctx := context.Background()

	_, err := svc.CreateReceipt(ctx, domain.CreateReceiptRequest{CustomerInvoiceID: invoice.ID.String()})
	require.NoError(t, err)

	_, err = svc.CreateReceipt(ctx, domain.CreateReceiptRequest{CustomerInvoiceID: invoice.ID.String()})
	assert.ErrorIs(t, err, domain.ErrAlreadyPaid)
}

func TestCreateReceiptInvalidDate(t *testing.T) {
	svc, db, node := newTestSettlement(t)
	invoice := seedOpenInvoice(t, db, node)

	_, err := svc.CreateReceipt(context.Background(), domain.CreateReceiptRequest{
		CustomerInvoiceID: invoice.ID.String(),
		ReceiptDate:       "12/04/2024",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}
