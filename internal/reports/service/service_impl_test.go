package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	billingdomain "github.com/shivbooks/books/internal/billing/domain"
	"github.com/shivbooks/books/internal/clock"
	contactdomain "github.com/shivbooks/books/internal/contact/domain"
	orderdomain "github.com/shivbooks/books/internal/order/domain"
	productdomain "github.com/shivbooks/books/internal/product/domain"
	"github.com/shivbooks/books/internal/reports/domain"
	settlementdomain "github.com/shivbooks/books/internal/settlement/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSource struct {
	contacts map[snowflake.ID]contactdomain.Contact
	products []productdomain.Product
	pos      []orderdomain.PurchaseOrder
	sos      []orderdomain.SalesOrder
	bills    []billingdomain.VendorBill
	invoices []billingdomain.CustomerInvoice
	payments []settlementdomain.Payment
	receipts []settlementdomain.Receipt
	failWith error
}

func (f *fakeSource) Contact(_ context.Context, id snowflake.ID) (*contactdomain.Contact, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if c, ok := f.contacts[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (f *fakeSource) Products(context.Context) ([]productdomain.Product, error) {
	return f.products, f.failWith
}

func (f *fakeSource) PurchaseOrders(context.Context) ([]orderdomain.PurchaseOrder, error) {
	return f.pos, f.failWith
}

func (f *fakeSource) SalesOrders(context.Context) ([]orderdomain.SalesOrder, error) {
	return f.sos, f.failWith
}

func (f *fakeSource) VendorBills(context.Context) ([]billingdomain.VendorBill, error) {
	return f.bills, f.failWith
}

func (f *fakeSource) CustomerInvoices(context.Context) ([]billingdomain.CustomerInvoice, error) {
	return f.invoices, f.failWith
}

func (f *fakeSource) Payments(context.Context) ([]settlementdomain.Payment, error) {
	return f.payments, f.failWith
}

func (f *fakeSource) Receipts(context.Context) ([]settlementdomain.Receipt, error) {
	return f.receipts, f.failWith
}

func newTestService(src domain.Source, now time.Time) domain.Service {
	return New(Params{
		Log:    zap.NewNop(),
		Clock:  clock.NewFakeClock(now),
		Source: src,
	})
}

func money(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestProfitLossLifetimeTotals(t *testing.T) {
	src := &fakeSource{
		invoices: []billingdomain.CustomerInvoice{
			{TotalAmount: money(1000), Status: billingdomain.CustomerInvoiceStatusOpen},
			{TotalAmount: money(500), Status: billingdomain.CustomerInvoiceStatusPaid},
		},
		bills: []billingdomain.VendorBill{
			{TotalAmount: money(300), Status: billingdomain.VendorBillStatusPaid},
		},
	}
	svc := newTestService(src, time.Now())

	report, err := svc.ProfitLoss(context.Background())
	require.NoError(t, err)

	// Status never filters income or expenses.
	assert.True(t, report.TotalIncome.Equal(money(1500)))
	assert.True(t, report.TotalExpenses.Equal(money(300)))
	assert.True(t, report.NetProfit.Equal(money(1200)))
}

func TestBalanceSheetIdentity(t *testing.T) {
	src := &fakeSource{
		invoices: []billingdomain.CustomerInvoice{
			{TotalAmount: money(1000), Status: billingdomain.CustomerInvoiceStatusOpen},
			{TotalAmount: money(800), Status: billingdomain.CustomerInvoiceStatusPaid},
		},
		bills: []billingdomain.VendorBill{
			{TotalAmount: money(400), Status: billingdomain.VendorBillStatusOpen},
		},
		receipts: []settlementdomain.Receipt{{Amount: money(800)}},
		payments: []settlementdomain.Payment{{Amount: money(150)}},
	}
	svc := newTestService(src, time.Now())

	report, err := svc.BalanceSheet(context.Background())
	require.NoError(t, err)

	assert.True(t, report.Assets.CashAndBank.Equal(money(650)))
	assert.True(t, report.Assets.AccountsReceivable.Equal(money(1000)))
	assert.True(t, report.Liabilities.AccountsPayable.Equal(money(400)))

	// assets.total == liabilities.total + equity.total, exactly.
	assert.True(t, report.Assets.Total.Equal(report.Liabilities.Total.Add(report.Equity.Total)))
}

func TestReportsEmptyCollectionsAllZero(t *testing.T) {
	svc := newTestService(&fakeSource{}, time.Now())
	ctx := context.Background()

	pl, err := svc.ProfitLoss(ctx)
	require.NoError(t, err)
	assert.True(t, pl.TotalIncome.IsZero())
	assert.True(t, pl.TotalExpenses.IsZero())
	assert.True(t, pl.NetProfit.IsZero())

	bs, err := svc.BalanceSheet(ctx)
	require.NoError(t, err)
	assert.True(t, bs.Assets.Total.IsZero())
	assert.True(t, bs.Liabilities.Total.IsZero())
	assert.True(t, bs.Equity.Total.IsZero())

	ds, err := svc.DashboardSummary(ctx)
	require.NoError(t, err)
	assert.True(t, ds.TotalInvoices.Last30Days.IsZero())
	assert.True(t, ds.TotalReceipts.Last24Hr.IsZero())
}

func TestPartnerLedgerScenario(t *testing.T) {
	const contactID snowflake.ID = 42
	src := &fakeSource{
		contacts: map[snowflake.ID]contactdomain.Contact{
			contactID: {ID: contactID, Name: "Acme Traders", Type: contactdomain.ContactTypeCustomer},
		},
		invoices: []billingdomain.CustomerInvoice{{
			ID:          7,
			Customer:    orderdomain.ContactSnapshot{ID: contactID},
			InvoiceDate: "2024-01-10",
			TotalAmount: money(1000),
			Status:      billingdomain.CustomerInvoiceStatusPaid,
		}},
		receipts: []settlementdomain.Receipt{{
			ID:                8,
			CustomerInvoiceID: 7,
			Customer:          orderdomain.ContactSnapshot{ID: contactID},
			ReceiptDate:       "2024-01-15",
			Amount:            money(1000),
		}},
	}
	svc := newTestService(src, time.Now())

	report, err := svc.PartnerLedger(context.Background(), contactID.String())
	require.NoError(t, err)
	require.Len(t, report.Ledger, 2)

	first := report.Ledger[0]
	assert.Equal(t, "2024-01-10", first.Date)
	assert.True(t, first.Debit.Equal(money(1000)))
	assert.True(t, first.RunningBalance.Equal(money(1000)))

	second := report.Ledger[1]
	assert.Equal(t, "2024-01-15", second.Date)
	assert.True(t, second.Credit.Equal(money(1000)))
	assert.True(t, second.RunningBalance.IsZero())
}

func TestPartnerLedgerEmptyContact(t *testing.T) {
	const contactID snowflake.ID = 42
	src := &fakeSource{
		contacts: map[snowflake.ID]contactdomain.Contact{
			contactID: {ID: contactID, Name: "No Activity"},
		},
	}
	svc := newTestService(src, time.Now())

	report, err := svc.PartnerLedger(context.Background(), contactID.String())
	require.NoError(t, err)
	assert.Empty(t, report.Ledger)
}

func TestPartnerLedgerMissingParam(t *testing.T) {
	svc := newTestService(&fakeSource{}, time.Now())

	_, err := svc.PartnerLedger(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrMissingContact)

	_, err = svc.PartnerLedger(context.Background(), "not-a-number")
	assert.ErrorIs(t, err, domain.ErrMissingContact)
}

func TestPartnerLedgerUnknownContact(t *testing.T) {
	svc := newTestService(&fakeSource{}, time.Now())

	_, err := svc.PartnerLedger(context.Background(), "12345")
	assert.ErrorIs(t, err, contactdomain.ErrNotFound)
}

func TestDashboardWindowMonotonicity(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	src := &fakeSource{
		invoices: []billingdomain.CustomerInvoice{
			{InvoiceDate: "2024-03-15", TotalAmount: money(100)},
			{InvoiceDate: "2024-03-10", TotalAmount: money(200)},
			{InvoiceDate: "2024-02-20", TotalAmount: money(300)},
			{InvoiceDate: "2023-12-01", TotalAmount: money(400)},
		},
	}
	fc := clock.NewFakeClock(now)
	svc := New(Params{Log: zap.NewNop(), Clock: fc, Source: src})

	report, err := svc.DashboardSummary(context.Background())
	require.NoError(t, err)

	inv := report.TotalInvoices
	assert.True(t, inv.Last24Hr.Equal(money(100)))
	assert.True(t, inv.Last7Days.Equal(money(300)))
	assert.True(t, inv.Last30Days.Equal(money(600)))

	assert.True(t, inv.Last24Hr.LessThanOrEqual(inv.Last7Days))
	assert.True(t, inv.Last7Days.LessThanOrEqual(inv.Last30Days))

	// Three days later the documents age out of the shorter windows.
	fc.Advance(72 * time.Hour)
	report, err = svc.DashboardSummary(context.Background())
	require.NoError(t, err)

	inv = report.TotalInvoices
	assert.True(t, inv.Last24Hr.IsZero())
	assert.True(t, inv.Last7Days.Equal(money(100)))
}

func TestReportFailureIsGeneric(t *testing.T) {
	src := &fakeSource{failWith: errors.New("connection reset")}
	svc := newTestService(src, time.Now())
	ctx := context.Background()

	_, err := svc.ProfitLoss(ctx)
	assert.ErrorIs(t, err, domain.ErrReportFailed)

	_, err = svc.BalanceSheet(ctx)
	assert.ErrorIs(t, err, domain.ErrReportFailed)

	_, err = svc.DashboardSummary(ctx)
	assert.ErrorIs(t, err, domain.ErrReportFailed)

	_, err = svc.StockAccount(ctx)
	assert.ErrorIs(t, err, domain.ErrReportFailed)
}

func TestStockAccountReplaysOrders(t *testing.T) {
	const widgetID snowflake.ID = 9
	src := &fakeSource{
		products: []productdomain.Product{{
			ID:         widgetID,
			Name:       "Widget",
			SalesPrice: money(50),
		}},
		pos: []orderdomain.PurchaseOrder{{
			Items: []orderdomain.OrderItem{{
				Product:  orderdomain.ProductSnapshot{ID: widgetID},
				Quantity: 10,
			}},
		}},
		sos: []orderdomain.SalesOrder{{
			Items: []orderdomain.OrderItem{{
				Product:  orderdomain.ProductSnapshot{ID: widgetID},
				Quantity: 4,
			}},
		}},
	}
	svc := newTestService(src, time.Now())

	rows, err := svc.StockAccount(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, int64(10), row.PurchasedQty)
	assert.Equal(t, int64(4), row.SoldQty)
	assert.Equal(t, int64(6), row.StockOnHand)
	assert.True(t, row.StockValue.Equal(money(300)))
}
