package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shivbooks/books/internal/billing/domain"
	billingrepo "github.com/shivbooks/books/internal/billing/repository"
	"github.com/shivbooks/books/internal/clock"
	orderdomain "github.com/shivbooks/books/internal/order/domain"
	orderrepo "github.com/shivbooks/books/internal/order/repository"
	pkgdb "github.com/shivbooks/books/pkg/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestBilling(t *testing.T) (domain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	db, err := pkgdb.NewTest()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&orderdomain.PurchaseOrder{},
		&orderdomain.SalesOrder{},
		&domain.VendorBill{},
		&domain.CustomerInvoice{},
	))

	node, err := snowflake.NewNode(2)
	require.NoError(t, err)

	fc := clock.NewFakeClock(time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))

	svc := New(Params{
		DB:     db,
		Log:    zap.NewNop(),
		GenID:  node,
		Clock:  fc,
		Repo:   billingrepo.Provide(),
		Orders: orderrepo.Provide(),
	})
	return svc, db, node
}

func seedPurchaseOrder(t *testing.T, db *gorm.DB, node *snowflake.Node) orderdomain.PurchaseOrder {
	t.Helper()
	now := time.Now().UTC()
	po := orderdomain.PurchaseOrder{
		ID:        node.Generate(),
		Vendor:    orderdomain.ContactSnapshot{ID: node.Generate(), Name: "Steel Supplies"},
		OrderDate: "2024-03-28",
		Items: []orderdomain.OrderItem{{
			Product:   orderdomain.ProductSnapshot{ID: node.Generate(), Name: "Rod"},
			Quantity:  5,
			UnitPrice: decimal.NewFromInt(100),
			Amount:    decimal.NewFromInt(500),
		}},
		TotalAmount: decimal.NewFromInt(500),
		Status:      orderdomain.PurchaseOrderStatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, db.Create(&po).Error)
	return po
}

func seedSalesOrder(t *testing.T, db *gorm.DB, node *snowflake.Node) orderdomain.SalesOrder {
	t.Helper()
	now := time.Now().UTC()
	so := orderdomain.SalesOrder{
		ID:        node.Generate(),
		Customer:  orderdomain.ContactSnapshot{ID: node.Generate(), Name: "Acme Traders"},
		OrderDate: "2024-03-29",
		Items: []orderdomain.OrderItem{{
			Product:   orderdomain.ProductSnapshot{ID: node.Generate(), Name: "Widget"},
			Quantity:  2,
			UnitPrice: decimal.NewFromInt(250),
			Amount:    decimal.NewFromInt(500),
		}},
		TotalAmount: decimal.NewFromInt(500),
		Status:      orderdomain.SalesOrderStatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, db.Create(&so).Error)
	return so
}

func TestCreateVendorBillFromDraftOrder(t *testing.T) {
	svc, db, node := newTestBilling(t)
	po := seedPurchaseOrder(t, db, node)

	bill, err := svc.CreateVendorBill(context.Background(), domain.CreateVendorBillRequest{
		PurchaseOrderID: po.ID.String(),
	})
	require.NoError(t, err)

	assert.Equal(t, po.ID, bill.PurchaseOrderID)
	assert.Equal(t, domain.VendorBillStatusOpen, bill.Status)
	assert.True(t, bill.TotalAmount.Equal(po.TotalAmount))
	assert.Equal(t, po.Vendor.Name, bill.Vendor.Name)

	// Dates default to the clock and the standard payment terms.
	assert.Equal(t, "2024-04-01", bill.BillDate)
	assert.Equal(t, "2024-05-01", bill.DueDate)

	var stored orderdomain.PurchaseOrder
	require.NoError(t, db.First(&stored, "id = ?", po.ID).Error)
	assert.Equal(t, orderdomain.PurchaseOrderStatusBilled, stored.Status)
}

func TestCreateVendorBillTwiceRejected(t *testing.T) {
	svc, db, node := newTestBilling(t)
	po := seedPurchaseOrder(t, db, node)
	ctx := context.Background()

	_, err := svc.CreateVendorBill(ctx, domain.CreateVendorBillRequest{PurchaseOrderID: po.ID.String()})
	require.NoError(t, err)

	_, err = svc.CreateVendorBill(ctx, domain.CreateVendorBillRequest{PurchaseOrderID: po.ID.String()})
	assert.ErrorIs(t, err, domain.ErrAlreadyBilled)

	var count int64
	require.NoError(t, db.Model(&domain.VendorBill{}).Where("purchase_order_id = ?", po.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateVendorBillUnknownOrder(t *testing.T) {
	svc, _, _ := newTestBilling(t)

	_, err := svc.CreateVendorBill(context.Background(), domain.CreateVendorBillRequest{
		PurchaseOrderID: "987654",
	})
	assert.ErrorIs(t, err, orderdomain.ErrNotFound)
}

func TestCreateVendorBillInvalidDate(t *testing.T) {
	svc, db, node := newTestBilling(t)
	po := seedPurchaseOrder(t, db, node)

	_, err := svc.CreateVendorBill(context.Background(), domain.CreateVendorBillRequest{
		PurchaseOrderID: po.ID.String(),
		BillDate:        "01-04-2024",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestCreateCustomerInvoiceFromDraftOrder(t *testing.T) {
	svc, db, node := newTestBilling(t)
	so := seedSalesOrder(t, db, node)

	invoice, err := svc.CreateCustomerInvoice(context.Background(), domain.CreateCustomerInvoiceRequest{
		SalesOrderID: so.ID.String(),
		InvoiceDate:  "2024-03-30",
	})
	require.NoError(t, err)

	assert.Equal(t, so.ID, invoice.SalesOrderID)
	assert.Equal(t, domain.CustomerInvoiceStatusOpen, invoice.Status)
	assert.Equal(t, "2024-03-30", invoice.InvoiceDate)
	assert.Equal(t, "2024-04-29", invoice.DueDate)

	var stored orderdomain.SalesOrder
	require.NoError(t, db.First(&stored, "id = ?", so.ID).Error)
	assert.Equal(t, orderdomain.SalesOrderStatusInvoiced, stored.Status)
}

func TestCreateCustomerInvoiceTwiceRejected(t *testing.T) {
	svc, db, node := newTestBilling(t)
	so := seedSalesOrder(t, db, node)
	ctx := context.Background()

	_, err := svc.CreateCustomerInvoice(ctx, domain.CreateCustomerInvoiceRequest{SalesOrderID: so.ID.String()})
	require.NoError(t, err)

	_, err = svc.CreateCustomerInvoice(ctx, domain.CreateCustomerInvoiceRequest{SalesOrderID: so.ID.String()})
	assert.ErrorIs(t, err, domain.ErrAlreadyInvoiced)
}

func TestListVendorBillsEmpty(t *testing.T) {
	svc, _, _ := newTestBilling(t)

	bills, err := svc.ListVendorBills(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, bills)
	assert.Empty(t, bills)
}
