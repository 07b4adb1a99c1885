package domain

import (
	"github.com/bwmarrin/snowflake"
	contactdomain "github.com/shivbooks/books/internal/contact/domain"
	"github.com/shivbooks/books/internal/reports/ledger"
	"github.com/shopspring/decimal"
)

type ProfitLossReport struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"`
}

type BalanceSheetAssets struct {
	CashAndBank        decimal.Decimal `json:"cashAndBank"`
	AccountsReceivable decimal.Decimal `json:"accountsReceivable"`
	Total              decimal.Decimal `json:"total"`
}

type BalanceSheetLiabilities struct {
	AccountsPayable decimal.Decimal `json:"accountsPayable"`
	Total           decimal.Decimal `json:"total"`
}

type BalanceSheetEquity struct {
	RetainedEarnings decimal.Decimal `json:"retainedEarnings"`
	Total            decimal.Decimal `json:"total"`
}

type BalanceSheetReport struct {
	Assets      BalanceSheetAssets      `json:"assets"`
	Liabilities BalanceSheetLiabilities `json:"liabilities"`
	Equity      BalanceSheetEquity      `json:"equity"`
}

type PartnerLedgerReport struct {
	Contact contactdomain.Contact `json:"contact"`
	Ledger  []ledger.Entry        `json:"ledger"`
}

// WindowTotals holds one dashboard metric summed over three trailing
// windows. Missing documents leave a window at zero, never null.
type WindowTotals struct {
	Last24Hr   decimal.Decimal `json:"last24hr"`
	Last7Days  decimal.Decimal `json:"last7days"`
	Last30Days decimal.Decimal `json:"last30days"`
}

type DashboardSummary struct {
	TotalInvoices  WindowTotals `json:"totalInvoices"`
	TotalPurchases WindowTotals `json:"totalPurchases"`
	TotalPayments  WindowTotals `json:"totalPayments"`
	TotalReceipts  WindowTotals `json:"totalReceipts"`
}

// StockAccountRow reports a product's stock position replayed from order
// history rather than the cached counter on the product row.
type StockAccountRow struct {
	ProductID    snowflake.ID    `json:"productId,string"`
	Name         string          `json:"name"`
	HSNCode      string          `json:"hsnCode,omitempty"`
	PurchasedQty int64           `json:"purchasedQty"`
	SoldQty      int64           `json:"soldQty"`
	StockOnHand  int64           `json:"stockOnHand"`
	SalesPrice   decimal.Decimal `json:"salesPrice"`
	StockValue   decimal.Decimal `json:"stockValue"`
}
