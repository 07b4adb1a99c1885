package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	billingdomain "github.com/shivbooks/books/internal/billing/domain"
	"github.com/shivbooks/books/internal/clock"
	contactdomain "github.com/shivbooks/books/internal/contact/domain"
	"github.com/shivbooks/books/internal/order/domain"
	productdomain "github.com/shivbooks/books/internal/product/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Clock    clock.Clock
	Repo     domain.Repository
	Contacts contactdomain.Repository
	Products productdomain.Repository
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	clock    clock.Clock
	repo     domain.Repository
	contacts contactdomain.Repository
	products productdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("order.service"),
		genID:    p.GenID,
		clock:    p.Clock,
		repo:     p.Repo,
		contacts: p.Contacts,
		products: p.Products,
	}
}

func (s *Service) CreatePurchaseOrder(ctx context.Context, req domain.CreatePurchaseOrderRequest) (domain.PurchaseOrder, error) {
	vendor, err := s.resolveContact(ctx, req.VendorID, contactdomain.ContactType.IsVendor)
	if err != nil {
		return domain.PurchaseOrder{}, err
	}

	orderDate, err := s.resolveDate(req.OrderDate)
	if err != nil {
		return domain.PurchaseOrder{}, err
	}

	items, total, err := s.resolveItems(ctx, req.Items, purchaseSide)
	if err != nil {
		return domain.PurchaseOrder{}, err
	}
	if err := checkTotal(total, req.TotalAmount); err != nil {
		return domain.PurchaseOrder{}, err
	}

	now := time.Now().UTC()
	po := domain.PurchaseOrder{
		ID:          s.genID.Generate(),
		Vendor:      vendor,
		OrderDate:   orderDate,
		Items:       items,
		TotalAmount: total,
		Status:      domain.PurchaseOrderStatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Purchased quantities enter stock together with the order row.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.InsertPurchaseOrder(ctx, tx, &po); err != nil {
			return err
		}
		return s.moveStock(ctx, tx, items, +1)
	})
	if err != nil {
		return domain.PurchaseOrder{}, err
	}
	return po, nil
}

func (s *Service) ListPurchaseOrders(ctx context.Context) ([]domain.PurchaseOrder, error) {
	orders, err := s.repo.ListPurchaseOrders(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.PurchaseOrder{}
	}
	return orders, nil
}

func (s *Service) GetPurchaseOrder(ctx context.Context, id string) (domain.PurchaseOrder, error) {
	parsed, err := parseID(id)
	if err != nil {
		return domain.PurchaseOrder{}, err
	}
	po, err := s.repo.FindPurchaseOrderByID(ctx, s.db, parsed)
	if err != nil {
		return domain.PurchaseOrder{}, err
	}
	if po == nil {
		return domain.PurchaseOrder{}, domain.ErrNotFound
	}
	return *po, nil
}

func (s *Service) UpdatePurchaseOrder(ctx context.Context, req domain.UpdatePurchaseOrderRequest) (domain.PurchaseOrder, error) {
	po, err := s.GetPurchaseOrder(ctx, req.ID)
	if err != nil {
		return domain.PurchaseOrder{}, err
	}
	if po.Status != domain.PurchaseOrderStatusDraft {
		return domain.PurchaseOrder{}, domain.ErrNotDraft
	}

	if req.OrderDate != nil {
		date, err := s.resolveDate(*req.OrderDate)
		if err != nil {
			return domain.PurchaseOrder{}, err
		}
		po.OrderDate = date
	}

	oldItems := po.Items
	if req.Items != nil {
		items, total, err := s.resolveItems(ctx, req.Items, purchaseSide)
		if err != nil {
			return domain.PurchaseOrder{}, err
		}
		if err := checkTotal(total, req.TotalAmount); err != nil {
			return domain.PurchaseOrder{}, err
		}
		po.Items = items
		po.TotalAmount = total
	}
	po.UpdatedAt = time.Now().UTC()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.UpdatePurchaseOrder(ctx, tx, &po); err != nil {
			return err
		}
		if req.Items == nil {
			return nil
		}
		if err := s.moveStock(ctx, tx, oldItems, -1); err != nil {
			return err
		}
		return s.moveStock(ctx, tx, po.Items, +1)
	})
	if err != nil {
		return domain.PurchaseOrder{}, err
	}
	return po, nil
}

// DeletePurchaseOrder removes the order, its derived vendor bills, and the
// stock the order brought in, in one transaction.
func (s *Service) DeletePurchaseOrder(ctx context.Context, id string) error {
	po, err := s.GetPurchaseOrder(ctx, id)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&billingdomain.VendorBill{}, "purchase_order_id = ?", po.ID).Error; err != nil {
			return err
		}
		if err := s.moveStock(ctx, tx, po.Items, -1); err != nil {
			return err
		}
		return s.repo.DeletePurchaseOrder(ctx, tx, po.ID)
	})
}

func (s *Service) CreateSalesOrder(ctx context.Context, req domain.CreateSalesOrderRequest) (domain.SalesOrder, error) {
	customer, err := s.resolveContact(ctx, req.CustomerID, contactdomain.ContactType.IsCustomer)
	if err != nil {
		return domain.SalesOrder{}, err
	}

	orderDate, err := s.resolveDate(req.OrderDate)
	if err != nil {
		return domain.SalesOrder{}, err
	}

	items, total, err := s.resolveItems(ctx, req.Items, salesSide)
	if err != nil {
		return domain.SalesOrder{}, err
	}
	if err := checkTotal(total, req.TotalAmount); err != nil {
		return domain.SalesOrder{}, err
	}

	now := time.Now().UTC()
	so := domain.SalesOrder{
		ID:          s.genID.Generate(),
		Customer:    customer,
		OrderDate:   orderDate,
		Items:       items,
		TotalAmount: total,
		Status:      domain.SalesOrderStatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Sold quantities leave stock together with the order row.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.InsertSalesOrder(ctx, tx, &so); err != nil {
			return err
		}
		return s.moveStock(ctx, tx, items, -1)
	})
	if err != nil {
		return domain.SalesOrder{}, err
	}
	return so, nil
}

func (s *Service) ListSalesOrders(ctx context.Context) ([]domain.SalesOrder, error) {
	orders, err := s.repo.ListSalesOrders(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.SalesOrder{}
	}
	return orders, nil
}

func (s *Service) GetSalesOrder(ctx context.Context, id string) (domain.SalesOrder, error) {
	parsed, err := parseID(id)
	if err != nil {
		return domain.SalesOrder{}, err
	}
	so, err := s.repo.FindSalesOrderByID(ctx, s.db, parsed)
	if err != nil {
		return domain.SalesOrder{}, err
	}
	if so == nil {
		return domain.SalesOrder{}, domain.ErrNotFound
	}
	return *so, nil
}

func (s *Service) UpdateSalesOrder(ctx context.Context, req domain.UpdateSalesOrderRequest) (domain.SalesOrder, error) {
	so, err := s.GetSalesOrder(ctx, req.ID)
	if err != nil {
		return domain.SalesOrder{}, err
	}
	if so.Status != domain.SalesOrderStatusDraft {
		return domain.SalesOrder{}, domain.ErrNotDraft
	}

	if req.OrderDate != nil {
		date, err := s.resolveDate(*req.OrderDate)
		if err != nil {
			return domain.SalesOrder{}, err
		}
		so.OrderDate = date
	}

	oldItems := so.Items
	if req.Items != nil {
		items, total, err := s.resolveItems(ctx, req.Items, salesSide)
		if err != nil {
			return domain.SalesOrder{}, err
		}
		if err := checkTotal(total, req.TotalAmount); err != nil {
			return domain.SalesOrder{}, err
		}
		so.Items = items
		so.TotalAmount = total
	}
	so.UpdatedAt = time.Now().UTC()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.UpdateSalesOrder(ctx, tx, &so); err != nil {
			return err
		}
		if req.Items == nil {
			return nil
		}
		if err := s.moveStock(ctx, tx, oldItems, +1); err != nil {
			return err
		}
		return s.moveStock(ctx, tx, so.Items, -1)
	})
	if err != nil {
		return domain.SalesOrder{}, err
	}
	return so, nil
}

// DeleteSalesOrder removes the order, its derived customer invoices, and
// returns the sold quantities to stock, in one transaction.
func (s *Service) DeleteSalesOrder(ctx context.Context, id string) error {
	so, err := s.GetSalesOrder(ctx, id)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&billingdomain.CustomerInvoice{}, "sales_order_id = ?", so.ID).Error; err != nil {
			return err
		}
		if err := s.moveStock(ctx, tx, so.Items, +1); err != nil {
			return err
		}
		return s.repo.DeleteSalesOrder(ctx, tx, so.ID)
	})
}

type orderSide int

const (
	purchaseSide orderSide = iota
	salesSide
)

func (s *Service) resolveContact(ctx context.Context, id string, eligible func(contactdomain.ContactType) bool) (domain.ContactSnapshot, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil || parsed == 0 {
		return domain.ContactSnapshot{}, domain.ErrInvalidContact
	}

	contact, err := s.contacts.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.ContactSnapshot{}, err
	}
	if contact == nil {
		return domain.ContactSnapshot{}, contactdomain.ErrNotFound
	}
	if !eligible(contact.Type) {
		return domain.ContactSnapshot{}, domain.ErrInvalidContact
	}

	return domain.ContactSnapshot{
		ID:    contact.ID,
		Name:  contact.Name,
		Type:  contact.Type,
		Email: contact.Email,
	}, nil
}

func (s *Service) resolveDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return s.clock.Now().Format("2006-01-02"), nil
	}
	if _, err := time.Parse("2006-01-02", raw); err != nil {
		return "", domain.ErrInvalidDate
	}
	return raw, nil
}

// resolveItems snapshots the referenced products and prices each line.
// The line amount is always recomputed server-side.
func (s *Service) resolveItems(ctx context.Context, inputs []domain.OrderItemInput, side orderSide) ([]domain.OrderItem, decimal.Decimal, error) {
	if len(inputs) == 0 {
		return nil, decimal.Zero, domain.ErrNoItems
	}

	items := make([]domain.OrderItem, 0, len(inputs))
	total := decimal.Zero
	for _, input := range inputs {
		if input.Quantity <= 0 {
			return nil, decimal.Zero, domain.ErrInvalidQuantity
		}

		productID, err := snowflake.ParseString(strings.TrimSpace(input.ProductID))
		if err != nil || productID == 0 {
			return nil, decimal.Zero, productdomain.ErrInvalidID
		}
		product, err := s.products.FindByID(ctx, s.db, productID)
		if err != nil {
			return nil, decimal.Zero, err
		}
		if product == nil {
			return nil, decimal.Zero, productdomain.ErrNotFound
		}

		unitPrice := product.PurchasePrice
		if side == salesSide {
			unitPrice = product.SalesPrice
		}
		if input.UnitPrice != nil {
			if input.UnitPrice.IsNegative() {
				return nil, decimal.Zero, productdomain.ErrInvalidPrice
			}
			unitPrice = *input.UnitPrice
		}

		amount := unitPrice.Mul(decimal.NewFromInt(input.Quantity))
		items = append(items, domain.OrderItem{
			Product: domain.ProductSnapshot{
				ID:            product.ID,
				Name:          product.Name,
				SalesPrice:    product.SalesPrice,
				PurchasePrice: product.PurchasePrice,
			},
			Quantity:  input.Quantity,
			UnitPrice: unitPrice,
			Amount:    amount,
		})
		total = total.Add(amount)
	}
	return items, total, nil
}

func (s *Service) moveStock(ctx context.Context, tx *gorm.DB, items []domain.OrderItem, direction int64) error {
	for _, item := range items {
		if err := s.products.AdjustStock(ctx, tx, item.Product.ID, direction*item.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// checkTotal enforces that a client-supplied total matches the computed one.
func checkTotal(computed decimal.Decimal, supplied *decimal.Decimal) error {
	if supplied != nil && !supplied.Equal(computed) {
		return domain.ErrTotalMismatch
	}
	return nil
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
