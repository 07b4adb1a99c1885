package ledger

import (
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	billingdomain "github.com/shivbooks/books/internal/billing/domain"
	orderdomain "github.com/shivbooks/books/internal/order/domain"
	settlementdomain "github.com/shivbooks/books/internal/settlement/domain"
	"github.com/shopspring/decimal"
)

const (
	customerID snowflake.ID = 100
	vendorID   snowflake.ID = 200
	otherID    snowflake.ID = 300
)

func invoice(id snowflake.ID, contact snowflake.ID, date string, total int64) billingdomain.CustomerInvoice {
	return billingdomain.CustomerInvoice{
		ID:          id,
		Customer:    orderdomain.ContactSnapshot{ID: contact},
		InvoiceDate: date,
		TotalAmount: decimal.NewFromInt(total),
	}
}

func receipt(id snowflake.ID, contact snowflake.ID, date string, amount int64) settlementdomain.Receipt {
	return settlementdomain.Receipt{
		ID:          id,
		Customer:    orderdomain.ContactSnapshot{ID: contact},
		ReceiptDate: date,
		Amount:      decimal.NewFromInt(amount),
	}
}

func bill(id snowflake.ID, contact snowflake.ID, date string, total int64) billingdomain.VendorBill {
	return billingdomain.VendorBill{
		ID:          id,
		Vendor:      orderdomain.ContactSnapshot{ID: contact},
		BillDate:    date,
		TotalAmount: decimal.NewFromInt(total),
	}
}

func payment(id snowflake.ID, contact snowflake.ID, date string, amount int64) settlementdomain.Payment {
	return settlementdomain.Payment{
		ID:          id,
		Vendor:      orderdomain.ContactSnapshot{ID: contact},
		PaymentDate: date,
		Amount:      decimal.NewFromInt(amount),
	}
}

func TestProjectSignConvention(t *testing.T) {
	entries := Project(customerID,
		[]billingdomain.CustomerInvoice{invoice(1, customerID, "2024-01-10", 1000)},
		[]settlementdomain.Receipt{receipt(2, customerID, "2024-01-15", 400)},
		nil, nil,
	)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	inv := entries[0]
	if inv.Type != EntryTypeInvoice {
		t.Fatalf("expected Invoice entry, got %s", inv.Type)
	}
	if !inv.Debit.Equal(decimal.NewFromInt(1000)) || !inv.Credit.IsZero() {
		t.Fatalf("invoice debit/credit wrong: %s/%s", inv.Debit, inv.Credit)
	}
	if !inv.BalanceImpact.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("invoice impact wrong: %s", inv.BalanceImpact)
	}

	rcpt := entries[1]
	if !rcpt.Credit.Equal(decimal.NewFromInt(400)) || !rcpt.Debit.IsZero() {
		t.Fatalf("receipt debit/credit wrong: %s/%s", rcpt.Debit, rcpt.Credit)
	}
	if !rcpt.BalanceImpact.Equal(decimal.NewFromInt(-400)) {
		t.Fatalf("receipt impact wrong: %s", rcpt.BalanceImpact)
	}
}

func TestProjectVendorSigns(t *testing.T) {
	entries := Project(vendorID,
		nil, nil,
		[]billingdomain.VendorBill{bill(3, vendorID, "2024-02-01", 500)},
		[]settlementdomain.Payment{payment(4, vendorID, "2024-02-05", 500)},
	)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	b := entries[0]
	if !b.Credit.Equal(decimal.NewFromInt(500)) || !b.Debit.IsZero() {
		t.Fatalf("bill debit/credit wrong: %s/%s", b.Debit, b.Credit)
	}
	if !b.BalanceImpact.Equal(decimal.NewFromInt(-500)) {
		t.Fatalf("bill impact wrong: %s", b.BalanceImpact)
	}

	p := entries[1]
	if !p.Debit.Equal(decimal.NewFromInt(500)) || !p.Credit.IsZero() {
		t.Fatalf("payment debit/credit wrong: %s/%s", p.Debit, p.Credit)
	}
	if !p.BalanceImpact.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("payment impact wrong: %s", p.BalanceImpact)
	}
}

func TestProjectFiltersOtherContacts(t *testing.T) {
	entries := Project(customerID,
		[]billingdomain.CustomerInvoice{
			invoice(1, customerID, "2024-01-10", 1000),
			invoice(2, otherID, "2024-01-11", 999),
		},
		[]settlementdomain.Receipt{receipt(3, otherID, "2024-01-12", 999)},
		[]billingdomain.VendorBill{bill(4, otherID, "2024-01-13", 999)},
		[]settlementdomain.Payment{payment(5, otherID, "2024-01-14", 999)},
	)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry for contact, got %d", len(entries))
	}
	if entries[0].Ref != "INV-1" {
		t.Fatalf("unexpected entry %q", entries[0].Ref)
	}
}

func TestProjectToleratesZeroAmounts(t *testing.T) {
	entries := Project(customerID,
		[]billingdomain.CustomerInvoice{{ID: 1, Customer: orderdomain.ContactSnapshot{ID: customerID}, InvoiceDate: "2024-01-01"}},
		nil, nil, nil,
	)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if !entries[0].Debit.IsZero() || !entries[0].BalanceImpact.IsZero() {
		t.Fatalf("zero-amount invoice should project as zeros")
	}
}

func TestFoldRunningBalance(t *testing.T) {
	entries := Project(customerID,
		[]billingdomain.CustomerInvoice{
			invoice(1, customerID, "2024-01-10", 1000),
			invoice(2, customerID, "2024-03-01", 250),
		},
		[]settlementdomain.Receipt{receipt(3, customerID, "2024-01-15", 1000)},
		nil, nil,
	)

	folded := Fold(entries)
	if len(folded) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(folded))
	}

	wantDates := []string{"2024-01-10", "2024-01-15", "2024-03-01"}
	wantBalances := []int64{1000, 0, 250}
	sum := decimal.Zero
	for i, e := range folded {
		if e.Date != wantDates[i] {
			t.Fatalf("entry %d date = %s, want %s", i, e.Date, wantDates[i])
		}
		if !e.RunningBalance.Equal(decimal.NewFromInt(wantBalances[i])) {
			t.Fatalf("entry %d balance = %s, want %d", i, e.RunningBalance, wantBalances[i])
		}
		sum = sum.Add(e.BalanceImpact)
	}

	// The last running balance is the sum of all impacts.
	if !folded[len(folded)-1].RunningBalance.Equal(sum) {
		t.Fatalf("final balance %s != impact sum %s", folded[len(folded)-1].RunningBalance, sum)
	}
}

func TestFoldStableOnEqualDates(t *testing.T) {
	entries := []Entry{
		{Date: "2024-01-10", Ref: "first", BalanceImpact: decimal.NewFromInt(1)},
		{Date: "2024-01-10", Ref: "second", BalanceImpact: decimal.NewFromInt(2)},
		{Date: "2024-01-10", Ref: "third", BalanceImpact: decimal.NewFromInt(3)},
	}

	folded := Fold(entries)
	for i, want := range []string{"first", "second", "third"} {
		if folded[i].Ref != want {
			t.Fatalf("entry %d ref = %s, want %s", i, folded[i].Ref, want)
		}
	}
}

func TestFoldDoesNotMutateInput(t *testing.T) {
	entries := []Entry{
		{Date: "2024-02-01", BalanceImpact: decimal.NewFromInt(5)},
		{Date: "2024-01-01", BalanceImpact: decimal.NewFromInt(7)},
	}
	_ = Fold(entries)
	if entries[0].Date != "2024-02-01" {
		t.Fatalf("input slice reordered")
	}
	if !entries[0].RunningBalance.IsZero() {
		t.Fatalf("input slice mutated")
	}
}

func TestWindowStart(t *testing.T) {
	now := time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC)
	cases := []struct {
		days int
		want string
	}{
		{1, "2024-03-14"},
		{7, "2024-03-08"},
		{30, "2024-02-14"},
	}
	for _, tc := range cases {
		if got := WindowStart(now, tc.days); got != tc.want {
			t.Fatalf("WindowStart(%d) = %s, want %s", tc.days, got, tc.want)
		}
	}
}

func TestSumSinceInclusiveLowerBound(t *testing.T) {
	docs := []settlementdomain.Receipt{
		receipt(1, customerID, "2024-03-08", 10),
		receipt(2, customerID, "2024-03-07", 20),
		receipt(3, customerID, "2024-03-15", 30),
	}

	got := SumSince("2024-03-08", docs,
		func(r settlementdomain.Receipt) string { return r.ReceiptDate },
		func(r settlementdomain.Receipt) decimal.Decimal { return r.Amount })

	if !got.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("SumSince = %s, want 40", got)
	}
}
