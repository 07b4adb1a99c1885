// Package ledger reconstructs a contact's transaction ledger from the
// billing and settlement documents. Nothing here touches storage; the
// package projects documents into signed entries and folds them into a
// chronological statement with running balances.
//
// Sign convention: BalanceImpact is the delta to the business's net
// receivable position. A customer invoice raises what the customer owes
// (positive), a vendor bill raises what the business owes (negative),
// and settlements move the position back toward zero.
package ledger

import (
	"fmt"
	"sort"

	"github.com/bwmarrin/snowflake"
	billingdomain "github.com/shivbooks/books/internal/billing/domain"
	settlementdomain "github.com/shivbooks/books/internal/settlement/domain"
	"github.com/shopspring/decimal"
)

type EntryType string

const (
	EntryTypeInvoice EntryType = "Invoice"
	EntryTypeReceipt EntryType = "Receipt"
	EntryTypeBill    EntryType = "Bill"
	EntryTypePayment EntryType = "Payment"
)

// Entry is one signed, dated record of a balance-affecting event for a
// contact. RunningBalance is zero until Fold attaches it.
type Entry struct {
	Date           string          `json:"date"`
	Type           EntryType       `json:"type"`
	Ref            string          `json:"ref"`
	Description    string          `json:"description"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	BalanceImpact  decimal.Decimal `json:"balanceImpact"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// Project selects the documents belonging to contactID and converts each
// into a signed entry. Documents of other contacts never leak into the
// result. The output order follows the input collections; callers fold
// before presenting.
func Project(
	contactID snowflake.ID,
	invoices []billingdomain.CustomerInvoice,
	receipts []settlementdomain.Receipt,
	bills []billingdomain.VendorBill,
	payments []settlementdomain.Payment,
) []Entry {
	entries := []Entry{}

	for _, inv := range invoices {
		if inv.Customer.ID != contactID {
			continue
		}
		entries = append(entries, Entry{
			Date:          inv.InvoiceDate,
			Type:          EntryTypeInvoice,
			Ref:           fmt.Sprintf("INV-%d", inv.ID),
			Description:   "Customer invoice",
			Debit:         inv.TotalAmount,
			Credit:        decimal.Zero,
			BalanceImpact: inv.TotalAmount,
		})
	}

	for _, rcpt := range receipts {
		if rcpt.Customer.ID != contactID {
			continue
		}
		entries = append(entries, Entry{
			Date:          rcpt.ReceiptDate,
			Type:          EntryTypeReceipt,
			Ref:           fmt.Sprintf("RCT-%d", rcpt.ID),
			Description:   fmt.Sprintf("Receipt against INV-%d", rcpt.CustomerInvoiceID),
			Debit:         decimal.Zero,
			Credit:        rcpt.Amount,
			BalanceImpact: rcpt.Amount.Neg(),
		})
	}

	for _, bill := range bills {
		if bill.Vendor.ID != contactID {
			continue
		}
		entries = append(entries, Entry{
			Date:          bill.BillDate,
			Type:          EntryTypeBill,
			Ref:           fmt.Sprintf("BILL-%d", bill.ID),
			Description:   "Vendor bill",
			Debit:         decimal.Zero,
			Credit:        bill.TotalAmount,
			BalanceImpact: bill.TotalAmount.Neg(),
		})
	}

	for _, pay := range payments {
		if pay.Vendor.ID != contactID {
			continue
		}
		entries = append(entries, Entry{
			Date:          pay.PaymentDate,
			Type:          EntryTypePayment,
			Ref:           fmt.Sprintf("PAY-%d", pay.ID),
			Description:   fmt.Sprintf("Payment against BILL-%d", pay.VendorBillID),
			Debit:         pay.Amount,
			Credit:        decimal.Zero,
			BalanceImpact: pay.Amount,
		})
	}

	return entries
}

// Fold orders entries chronologically and attaches the running balance as
// a left-to-right cumulative sum of BalanceImpact. Dates compare lexically,
// which matches chronological order for YYYY-MM-DD strings. Entries on the
// same date keep their relative input order.
func Fold(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})

	balance := decimal.Zero
	for i := range out {
		balance = balance.Add(out[i].BalanceImpact)
		out[i].RunningBalance = balance
	}
	return out
}
