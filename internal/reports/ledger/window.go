package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// WindowStart returns the inclusive lower bound for a trailing window of
// days calendar days, truncated to date-only.
func WindowStart(now time.Time, days int) string {
	return now.AddDate(0, 0, -days).Format("2006-01-02")
}

// SumSince adds up the amounts of documents dated on or after start.
// Dates compare lexically as ISO strings.
func SumSince[T any](start string, docs []T, date func(T) string, amount func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, doc := range docs {
		if date(doc) >= start {
			total = total.Add(amount(doc))
		}
	}
	return total
}
