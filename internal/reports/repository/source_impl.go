package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	billingdomain "github.com/shivbooks/books/internal/billing/domain"
	contactdomain "github.com/shivbooks/books/internal/contact/domain"
	orderdomain "github.com/shivbooks/books/internal/order/domain"
	productdomain "github.com/shivbooks/books/internal/product/domain"
	"github.com/shivbooks/books/internal/reports/domain"
	settlementdomain "github.com/shivbooks/books/internal/settlement/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Contacts    contactdomain.Repository
	Products    productdomain.Repository
	Orders      orderdomain.Repository
	Bills       billingdomain.Repository
	Settlements settlementdomain.Repository
}

// source reads report inputs straight through the module repositories.
// Every report request re-reads the collections it needs; nothing is
// cached between requests.
type source struct {
	db          *gorm.DB
	contacts    contactdomain.Repository
	products    productdomain.Repository
	orders      orderdomain.Repository
	bills       billingdomain.Repository
	settlements settlementdomain.Repository
}

func Provide(p Params) domain.Source {
	return &source{
		db:          p.DB,
		contacts:    p.Contacts,
		products:    p.Products,
		orders:      p.Orders,
		bills:       p.Bills,
		settlements: p.Settlements,
	}
}

func (s *source) Contact(ctx context.Context, id snowflake.ID) (*contactdomain.Contact, error) {
	return s.contacts.FindByID(ctx, s.db, id)
}

func (s *source) Products(ctx context.Context) ([]productdomain.Product, error) {
	return s.products.List(ctx, s.db)
}

func (s *source) PurchaseOrders(ctx context.Context) ([]orderdomain.PurchaseOrder, error) {
	return s.orders.ListPurchaseOrders(ctx, s.db)
}

func (s *source) SalesOrders(ctx context.Context) ([]orderdomain.SalesOrder, error) {
	return s.orders.ListSalesOrders(ctx, s.db)
}

func (s *source) VendorBills(ctx context.Context) ([]billingdomain.VendorBill, error) {
	return s.bills.ListVendorBills(ctx, s.db)
}

func (s *source) CustomerInvoices(ctx context.Context) ([]billingdomain.CustomerInvoice, error) {
	return s.bills.ListCustomerInvoices(ctx, s.db)
}

func (s *source) Payments(ctx context.Context) ([]settlementdomain.Payment, error) {
	return s.settlements.ListPayments(ctx, s.db)
}

func (s *source) Receipts(ctx context.Context) ([]settlementdomain.Receipt, error) {
	return s.settlements.ListReceipts(ctx, s.db)
}
