package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	billingdomain "github.com/shivbooks/books/internal/billing/domain"
	"github.com/shivbooks/books/internal/clock"
	contactdomain "github.com/shivbooks/books/internal/contact/domain"
	"github.com/shivbooks/books/internal/reports/domain"
	"github.com/shivbooks/books/internal/reports/ledger"
	settlementdomain "github.com/shivbooks/books/internal/settlement/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log    *zap.Logger
	Clock  clock.Clock
	Source domain.Source
}

type Service struct {
	log    *zap.Logger
	clock  clock.Clock
	source domain.Source
}

func New(p Params) domain.Service {
	return &Service{
		log:    p.Log.Named("reports.service"),
		clock:  p.Clock,
		source: p.Source,
	}
}

// ProfitLoss sums lifetime income and expenses over every invoice and bill,
// regardless of settlement status or date.
func (s *Service) ProfitLoss(ctx context.Context) (domain.ProfitLossReport, error) {
	invoices, err := s.source.CustomerInvoices(ctx)
	if err != nil {
		return domain.ProfitLossReport{}, s.fail("profit_loss", err)
	}
	bills, err := s.source.VendorBills(ctx)
	if err != nil {
		return domain.ProfitLossReport{}, s.fail("profit_loss", err)
	}

	income := decimal.Zero
	for _, inv := range invoices {
		income = income.Add(inv.TotalAmount)
	}
	expenses := decimal.Zero
	for _, bill := range bills {
		expenses = expenses.Add(bill.TotalAmount)
	}

	return domain.ProfitLossReport{
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetProfit:     income.Sub(expenses),
	}, nil
}

// BalanceSheet builds the statement from lifetime cash movements and open
// documents. Retained earnings is the plug that makes the statement
// balance, so assets always equal liabilities plus equity.
func (s *Service) BalanceSheet(ctx context.Context) (domain.BalanceSheetReport, error) {
	invoices, err := s.source.CustomerInvoices(ctx)
	if err != nil {
		return domain.BalanceSheetReport{}, s.fail("balance_sheet", err)
	}
	bills, err := s.source.VendorBills(ctx)
	if err != nil {
		return domain.BalanceSheetReport{}, s.fail("balance_sheet", err)
	}
	receipts, err := s.source.Receipts(ctx)
	if err != nil {
		return domain.BalanceSheetReport{}, s.fail("balance_sheet", err)
	}
	payments, err := s.source.Payments(ctx)
	if err != nil {
		return domain.BalanceSheetReport{}, s.fail("balance_sheet", err)
	}

	cash := decimal.Zero
	for _, rcpt := range receipts {
		cash = cash.Add(rcpt.Amount)
	}
	for _, pay := range payments {
		cash = cash.Sub(pay.Amount)
	}

	receivable := decimal.Zero
	for _, inv := range invoices {
		if inv.Status == billingdomain.CustomerInvoiceStatusOpen {
			receivable = receivable.Add(inv.TotalAmount)
		}
	}
	payable := decimal.Zero
	for _, bill := range bills {
		if bill.Status == billingdomain.VendorBillStatusOpen {
			payable = payable.Add(bill.TotalAmount)
		}
	}

	totalAssets := cash.Add(receivable)
	retained := totalAssets.Sub(payable)

	return domain.BalanceSheetReport{
		Assets: domain.BalanceSheetAssets{
			CashAndBank:        cash,
			AccountsReceivable: receivable,
			Total:              totalAssets,
		},
		Liabilities: domain.BalanceSheetLiabilities{
			AccountsPayable: payable,
			Total:           payable,
		},
		Equity: domain.BalanceSheetEquity{
			RetainedEarnings: retained,
			Total:            retained,
		},
	}, nil
}

// PartnerLedger reconstructs one contact's chronological statement. A
// contact with no transactions gets an empty ledger, not an error.
func (s *Service) PartnerLedger(ctx context.Context, contactID string) (domain.PartnerLedgerReport, error) {
	contactID = strings.TrimSpace(contactID)
	if contactID == "" {
		return domain.PartnerLedgerReport{}, domain.ErrMissingContact
	}
	id, err := snowflake.ParseString(contactID)
	if err != nil || id == 0 {
		return domain.PartnerLedgerReport{}, domain.ErrMissingContact
	}

	contact, err := s.source.Contact(ctx, id)
	if err != nil {
		return domain.PartnerLedgerReport{}, s.fail("partner_ledger", err)
	}
	if contact == nil {
		return domain.PartnerLedgerReport{}, contactdomain.ErrNotFound
	}

	invoices, err := s.source.CustomerInvoices(ctx)
	if err != nil {
		return domain.PartnerLedgerReport{}, s.fail("partner_ledger", err)
	}
	receipts, err := s.source.Receipts(ctx)
	if err != nil {
		return domain.PartnerLedgerReport{}, s.fail("partner_ledger", err)
	}
	bills, err := s.source.VendorBills(ctx)
	if err != nil {
		return domain.PartnerLedgerReport{}, s.fail("partner_ledger", err)
	}
	payments, err := s.source.Payments(ctx)
	if err != nil {
		return domain.PartnerLedgerReport{}, s.fail("partner_ledger", err)
	}

	entries := ledger.Fold(ledger.Project(id, invoices, receipts, bills, payments))

	return domain.PartnerLedgerReport{
		Contact: *contact,
		Ledger:  entries,
	}, nil
}

// DashboardSummary computes each metric over trailing 1, 7, and 30 day
// windows, inclusive of the window start date.
func (s *Service) DashboardSummary(ctx context.Context) (domain.DashboardSummary, error) {
	invoices, err := s.source.CustomerInvoices(ctx)
	if err != nil {
		return domain.DashboardSummary{}, s.fail("dashboard_summary", err)
	}
	bills, err := s.source.VendorBills(ctx)
	if err != nil {
		return domain.DashboardSummary{}, s.fail("dashboard_summary", err)
	}
	payments, err := s.source.Payments(ctx)
	if err != nil {
		return domain.DashboardSummary{}, s.fail("dashboard_summary", err)
	}
	receipts, err := s.source.Receipts(ctx)
	if err != nil {
		return domain.DashboardSummary{}, s.fail("dashboard_summary", err)
	}

	now := s.clock.Now()
	starts := [3]string{
		ledger.WindowStart(now, 1),
		ledger.WindowStart(now, 7),
		ledger.WindowStart(now, 30),
	}

	windows := func(sum func(start string) decimal.Decimal) domain.WindowTotals {
		return domain.WindowTotals{
			Last24Hr:   sum(starts[0]),
			Last7Days:  sum(starts[1]),
			Last30Days: sum(starts[2]),
		}
	}

	return domain.DashboardSummary{
		TotalInvoices: windows(func(start string) decimal.Decimal {
			return ledger.SumSince(start, invoices,
				func(d billingdomain.CustomerInvoice) string { return d.InvoiceDate },
				func(d billingdomain.CustomerInvoice) decimal.Decimal { return d.TotalAmount })
		}),
		TotalPurchases: windows(func(start string) decimal.Decimal {
			return ledger.SumSince(start, bills,
				func(d billingdomain.VendorBill) string { return d.BillDate },
				func(d billingdomain.VendorBill) decimal.Decimal { return d.TotalAmount })
		}),
		TotalPayments: windows(func(start string) decimal.Decimal {
			return ledger.SumSince(start, payments,
				func(d settlementdomain.Payment) string { return d.PaymentDate },
				func(d settlementdomain.Payment) decimal.Decimal { return d.Amount })
		}),
		TotalReceipts: windows(func(start string) decimal.Decimal {
			return ledger.SumSince(start, receipts,
				func(d settlementdomain.Receipt) string { return d.ReceiptDate },
				func(d settlementdomain.Receipt) decimal.Decimal { return d.Amount })
		}),
	}, nil
}

// StockAccount replays the order history per product instead of trusting
// the cached stock counter, so the report stays consistent with the
// documents it is derived from.
func (s *Service) StockAccount(ctx context.Context) ([]domain.StockAccountRow, error) {
	products, err := s.source.Products(ctx)
	if err != nil {
		return nil, s.fail("stock_account", err)
	}
	purchaseOrders, err := s.source.PurchaseOrders(ctx)
	if err != nil {
		return nil, s.fail("stock_account", err)
	}
	salesOrders, err := s.source.SalesOrders(ctx)
	if err != nil {
		return nil, s.fail("stock_account", err)
	}

	purchased := map[snowflake.ID]int64{}
	for _, po := range purchaseOrders {
		for _, item := range po.Items {
			purchased[item.Product.ID] += item.Quantity
		}
	}
	sold := map[snowflake.ID]int64{}
	for _, so := range salesOrders {
		for _, item := range so.Items {
			sold[item.Product.ID] += item.Quantity
		}
	}

	rows := make([]domain.StockAccountRow, 0, len(products))
	for _, product := range products {
		onHand := purchased[product.ID] - sold[product.ID]
		rows = append(rows, domain.StockAccountRow{
			ProductID:    product.ID,
			Name:         product.Name,
			HSNCode:      product.HSNCode,
			PurchasedQty: purchased[product.ID],
			SoldQty:      sold[product.ID],
			StockOnHand:  onHand,
			SalesPrice:   product.SalesPrice,
			StockValue:   product.SalesPrice.Mul(decimal.NewFromInt(onHand)),
		})
	}
	return rows, nil
}

// fail logs the underlying store fault and collapses it into the single
// generic report error.
func (s *Service) fail(report string, err error) error {
	s.log.Error("report aggregation failed", zap.String("report", report), zap.Error(err))
	return domain.ErrReportFailed
}
