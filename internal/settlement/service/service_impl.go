package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	billingdomain "github.com/shivbooks/books/internal/billing/domain"
	"github.com/shivbooks/books/internal/clock"
	"github.com/shivbooks/books/internal/settlement/domain"
	pkgdb "github.com/shivbooks/books/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
	Bills billingdomain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
	bills billingdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("settlement.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
		bills: p.Bills,
	}
}

// CreatePayment settles an open vendor bill in full. The bill is flipped
// Open -> Paid and the payment inserted in the same transaction, so a
// concurrent settlement of the same bill gets ErrAlreadyPaid.
func (s *Service) CreatePayment(ctx context.Context, req domain.CreatePaymentRequest) (domain.Payment, error) {
	billID, err := parseID(req.VendorBillID)
	if err != nil {
		return domain.Payment{}, err
	}

	bill, err := s.bills.FindVendorBillByID(ctx, s.db, billID)
	if err != nil {
		return domain.Payment{}, err
	}
	if bill == nil {
		return domain.Payment{}, billingdomain.ErrNotFound
	}
	if bill.Status != billingdomain.VendorBillStatusOpen {
		return domain.Payment{}, domain.ErrAlreadyPaid
	}

	paymentDate, err := s.resolveDate(req.PaymentDate)
	if err != nil {
		return domain.Payment{}, err
	}

	now := time.Now().UTC()
	payment := domain.Payment{
		ID:           s.genID.Generate(),
		VendorBillID: bill.ID,
		Vendor:       bill.Vendor,
		PaymentDate:  paymentDate,
		Amount:       bill.TotalAmount,
		Method:       strings.TrimSpace(req.Method),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&billingdomain.VendorBill{}).
			Where("id = ? AND status = ?", bill.ID, billingdomain.VendorBillStatusOpen).
			Updates(map[string]any{"status": billingdomain.VendorBillStatusPaid, "updated_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return domain.ErrAlreadyPaid
		}
		return s.repo.InsertPayment(ctx, tx, &payment)
	})
	if err != nil {
		if pkgdb.IsDuplicateKeyErr(err) {
			return domain.Payment{}, domain.ErrAlreadyPaid
		}
		return domain.Payment{}, err
	}
	return payment, nil
}

func (s *Service) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	payments, err := s.repo.ListPayments(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if payments == nil {
		payments = []domain.Payment{}
	}
	return payments, nil
}

func (s *Service) GetPayment(ctx context.Context, id string) (domain.Payment, error) {
	parsed, err := parseID(id)
	if err != nil {
		return domain.Payment{}, err
	}
	payment, err := s.repo.FindPaymentByID(ctx, s.db, parsed)
	if err != nil {
		return domain.Payment{}, err
	}
	if payment == nil {
		return domain.Payment{}, domain.ErrNotFound
	}
	return *payment, nil
}

// CreateReceipt settles an open customer invoice in full, with the same
// status race rules as CreatePayment.
func (s *Service) CreateReceipt(ctx context.Context, req domain.CreateReceiptRequest) (domain.Receipt, error) {
	invoiceID, err := parseID(req.CustomerInvoiceID)
	if err != nil {
		return domain.Receipt{}, err
	}

	invoice, err := s.bills.FindCustomerInvoiceByID(ctx, s.db, invoiceID)
	if err != nil {
		return domain.Receipt{}, err
	}
	if invoice == nil {
		return domain.Receipt{}, billingdomain.ErrNotFound
	}
	if invoice.Status != billingdomain.CustomerInvoiceStatusOpen {
		return domain.Receipt{}, domain.ErrAlreadyPaid
	}

	receiptDate, err := s.resolveDate(req.ReceiptDate)
	if err != nil {
		return domain.Receipt{}, err
	}

	now := time.Now().UTC()
	receipt := domain.Receipt{
		ID:                s.genID.Generate(),
		CustomerInvoiceID: invoice.ID,
		Customer:          invoice.Customer,
		ReceiptDate:       receiptDate,
		Amount:            invoice.TotalAmount,
		Method:            strings.TrimSpace(req.Method),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&billingdomain.CustomerInvoice{}).
			Where("id = ? AND status = ?", invoice.ID, billingdomain.CustomerInvoiceStatusOpen).
			Updates(map[string]any{"status": billingdomain.CustomerInvoiceStatusPaid, "updated_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return domain.ErrAlreadyPaid
		}
		return s.repo.InsertReceipt(ctx, tx, &receipt)
	})
	if err != nil {
		if pkgdb.IsDuplicateKeyErr(err) {
			return domain.Receipt{}, domain.ErrAlreadyPaid
		}
		return domain.Receipt{}, err
	}
	return receipt, nil
}

func (s *Service) ListReceipts(ctx context.Context) ([]domain.Receipt, error) {
	receipts, err := s.repo.ListReceipts(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if receipts == nil {
		receipts = []domain.Receipt{}
	}
	return receipts, nil
}

func (s *Service) GetReceipt(ctx context.Context, id string) (domain.Receipt, error) {
	parsed, err := parseID(id)
	if err != nil {
		return domain.Receipt{}, err
	}
	receipt, err := s.repo.FindReceiptByID(ctx, s.db, parsed)
	if err != nil {
		return domain.Receipt{}, err
	}
	if receipt == nil {
		return domain.Receipt{}, domain.ErrNotFound
	}
	return *receipt, nil
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

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
