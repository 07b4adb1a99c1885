package domain

import (
	"context"
	"errors"
)

type CreatePaymentRequest struct {
	VendorBillID string `json:"vendorBillId"`
	PaymentDate  string `json:"paymentDate"`
	Method       string `json:"method"`
}

type CreateReceiptRequest struct {
	CustomerInvoiceID string `json:"customerInvoiceId"`
	ReceiptDate       string `json:"receiptDate"`
	Method            string `json:"method"`
}

type Service interface {
	CreatePayment(context.Context, CreatePaymentRequest) (Payment, error)
	ListPayments(context.Context) ([]Payment, error)
	GetPayment(ctx context.Context, id string) (Payment, error)

	CreateReceipt(context.Context, CreateReceiptRequest) (Receipt, error)
	ListReceipts(context.Context) ([]Receipt, error)
	GetReceipt(ctx context.Context, id string) (Receipt, error)
}

var (
	ErrInvalidID   = errors.New("invalid_id")
	ErrInvalidDate = errors.New("invalid_date")
	ErrNotFound    = errors.New("settlement_not_found")
	ErrAlreadyPaid = errors.New("document_already_paid")
)
