package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	billingdomain "github.com/shivbooks/books/internal/billing/domain"
	contactdomain "github.com/shivbooks/books/internal/contact/domain"
	orderdomain "github.com/shivbooks/books/internal/order/domain"
	productdomain "github.com/shivbooks/books/internal/product/domain"
	settlementdomain "github.com/shivbooks/books/internal/settlement/domain"
)

// Source is the document store as the report assemblers see it: typed
// collection reads, nothing else. Reports depend on this interface only,
// so tests can substitute an in-memory fake.
type Source interface {
	Contact(ctx context.Context, id snowflake.ID) (*contactdomain.Contact, error)
	Products(ctx context.Context) ([]productdomain.Product, error)
	PurchaseOrders(ctx context.Context) ([]orderdomain.PurchaseOrder, error)
	SalesOrders(ctx context.Context) ([]orderdomain.SalesOrder, error)
	VendorBills(ctx context.Context) ([]billingdomain.VendorBill, error)
	CustomerInvoices(ctx context.Context) ([]billingdomain.CustomerInvoice, error)
	Payments(ctx context.Context) ([]settlementdomain.Payment, error)
	Receipts(ctx context.Context) ([]settlementdomain.Receipt, error)
}
