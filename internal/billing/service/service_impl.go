package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shivbooks/books/internal/billing/domain"
	"github.com/shivbooks/books/internal/clock"
	orderdomain "github.com/shivbooks/books/internal/order/domain"
	pkgdb "github.com/shivbooks/books/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Payment terms applied when the caller does not supply a due date.
const defaultTermDays = 30

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Clock  clock.Clock
	Repo   domain.Repository
	Orders orderdomain.Repository
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	genID  *snowflake.Node
	clock  clock.Clock
	repo   domain.Repository
	orders orderdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("billing.service"),
		genID:  p.GenID,
		clock:  p.Clock,
		repo:   p.Repo,
		orders: p.Orders,
	}
}

// CreateVendorBill derives a bill from a draft purchase order. The order is
// flipped Draft -> Billed and the bill inserted in the same transaction; a
// concurrent derivation loses the status race and gets ErrAlreadyBilled.
func (s *Service) CreateVendorBill(ctx context.Context, req domain.CreateVendorBillRequest) (domain.VendorBill, error) {
	orderID, err := parseID(req.PurchaseOrderID)
	if err != nil {
		return domain.VendorBill{}, err
	}

	po, err := s.orders.FindPurchaseOrderByID(ctx, s.db, orderID)
	if err != nil {
		return domain.VendorBill{}, err
	}
	if po == nil {
		return domain.VendorBill{}, orderdomain.ErrNotFound
	}
	if po.Status != orderdomain.PurchaseOrderStatusDraft {
		return domain.VendorBill{}, domain.ErrAlreadyBilled
	}

	billDate, dueDate, err := s.resolveDates(req.BillDate, req.DueDate)
	if err != nil {
		return domain.VendorBill{}, err
	}

	now := time.Now().UTC()
	bill := domain.VendorBill{
		ID:              s.genID.Generate(),
		PurchaseOrderID: po.ID,
		Vendor:          po.Vendor,
		Items:           po.Items,
		BillDate:        billDate,
		DueDate:         dueDate,
		TotalAmount:     po.TotalAmount,
		Status:          domain.VendorBillStatusOpen,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&orderdomain.PurchaseOrder{}).
			Where("id = ? AND status = ?", po.ID, orderdomain.PurchaseOrderStatusDraft).
			Updates(map[string]any{"status": orderdomain.PurchaseOrderStatusBilled, "updated_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return domain.ErrAlreadyBilled
		}
		return s.repo.InsertVendorBill(ctx, tx, &bill)
	})
	if err != nil {
		if pkgdb.IsDuplicateKeyErr(err) {
			return domain.VendorBill{}, domain.ErrAlreadyBilled
		}
		return domain.VendorBill{}, err
	}
	return bill, nil
}

func (s *Service) ListVendorBills(ctx context.Context) ([]domain.VendorBill, error) {
	bills, err := s.repo.ListVendorBills(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if bills == nil {
		bills = []domain.VendorBill{}
	}
	return bills, nil
}

func (s *Service) GetVendorBill(ctx context.Context, id string) (domain.VendorBill, error) {
	parsed, err := parseID(id)
	if err != nil {
		return domain.VendorBill{}, err
	}
	bill, err := s.repo.FindVendorBillByID(ctx, s.db, parsed)
	if err != nil {
		return domain.VendorBill{}, err
	}
	if bill == nil {
		return domain.VendorBill{}, domain.ErrNotFound
	}
	return *bill, nil
}

// CreateCustomerInvoice derives an invoice from a draft sales order, with the
// same status race rules as CreateVendorBill.
func (s *Service) CreateCustomerInvoice(ctx context.Context, req domain.CreateCustomerInvoiceRequest) (domain.CustomerInvoice, error) {
	orderID, err := parseID(req.SalesOrderID)
	if err != nil {
		return domain.CustomerInvoice{}, err
	}

	so, err := s.orders.FindSalesOrderByID(ctx, s.db, orderID)
	if err != nil {
		return domain.CustomerInvoice{}, err
	}
	if so == nil {
		return domain.CustomerInvoice{}, orderdomain.ErrNotFound
	}
	if so.Status != orderdomain.SalesOrderStatusDraft {
		return domain.CustomerInvoice{}, domain.ErrAlreadyInvoiced
	}

	invoiceDate, dueDate, err := s.resolveDates(req.InvoiceDate, req.DueDate)
	if err != nil {
		return domain.CustomerInvoice{}, err
	}

	now := time.Now().UTC()
	invoice := domain.CustomerInvoice{
		ID:           s.genID.Generate(),
		SalesOrderID: so.ID,
		Customer:     so.Customer,
		Items:        so.Items,
		InvoiceDate:  invoiceDate,
		DueDate:      dueDate,
		TotalAmount:  so.TotalAmount,
		Status:       domain.CustomerInvoiceStatusOpen,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&orderdomain.SalesOrder{}).
			Where("id = ? AND status = ?", so.ID, orderdomain.SalesOrderStatusDraft).
			Updates(map[string]any{"status": orderdomain.SalesOrderStatusInvoiced, "updated_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return domain.ErrAlreadyInvoiced
		}
		return s.repo.InsertCustomerInvoice(ctx, tx, &invoice)
	})
	if err != nil {
		if pkgdb.IsDuplicateKeyErr(err) {
			return domain.CustomerInvoice{}, domain.ErrAlreadyInvoiced
		}
		return domain.CustomerInvoice{}, err
	}
	return invoice, nil
}

func (s *Service) ListCustomerInvoices(ctx context.Context) ([]domain.CustomerInvoice, error) {
	invoices, err := s.repo.ListCustomerInvoices(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if invoices == nil {
		invoices = []domain.CustomerInvoice{}
	}
	return invoices, nil
}

func (s *Service) GetCustomerInvoice(ctx context.Context, id string) (domain.CustomerInvoice, error) {
	parsed, err := parseID(id)
	if err != nil {
		return domain.CustomerInvoice{}, err
	}
	invoice, err := s.repo.FindCustomerInvoiceByID(ctx, s.db, parsed)
	if err != nil {
		return domain.CustomerInvoice{}, err
	}
	if invoice == nil {
		return domain.CustomerInvoice{}, domain.ErrNotFound
	}
	return *invoice, nil
}

// resolveDates fills the document date with today and the due date with the
// default payment terms when either is omitted.
func (s *Service) resolveDates(docDate, dueDate string) (string, string, error) {
	docDate = strings.TrimSpace(docDate)
	if docDate == "" {
		docDate = s.clock.Now().Format("2006-01-02")
	}
	parsed, err := time.Parse("2006-01-02", docDate)
	if err != nil {
		return "", "", domain.ErrInvalidDate
	}

	dueDate = strings.TrimSpace(dueDate)
	if dueDate == "" {
		dueDate = parsed.AddDate(0, 0, defaultTermDays).Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", dueDate); err != nil {
		return "", "", domain.ErrInvalidDate
	}
	return docDate, dueDate, nil
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
