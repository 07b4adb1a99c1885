package domain

import (
	"context"
	"errors"
)

type Service interface {
	ProfitLoss(ctx context.Context) (ProfitLossReport, error)
	BalanceSheet(ctx context.Context) (BalanceSheetReport, error)
	PartnerLedger(ctx context.Context, contactID string) (PartnerLedgerReport, error)
	DashboardSummary(ctx context.Context) (DashboardSummary, error)
	StockAccount(ctx context.Context) ([]StockAccountRow, error)
}

var (
	// ErrMissingContact covers an absent or unparseable contactId parameter.
	ErrMissingContact = errors.New("missing_contact_id")
	// ErrReportFailed is the single generic fault for any store-level error
	// while aggregating; no partial report accompanies it.
	ErrReportFailed = errors.New("report_failed")
)
