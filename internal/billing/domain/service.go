package domain

import (
	"context"
	"errors"
)

type CreateVendorBillRequest struct {
	PurchaseOrderID string `json:"purchaseOrderId"`
	BillDate        string `json:"billDate"`
	DueDate         string `json:"dueDate"`
}

type CreateCustomerInvoiceRequest struct {
	SalesOrderID string `json:"salesOrderId"`
	InvoiceDate  string `json:"invoiceDate"`
	DueDate      string `json:"dueDate"`
}

type Service interface {
	CreateVendorBill(context.Context, CreateVendorBillRequest) (VendorBill, error)
	ListVendorBills(context.Context) ([]VendorBill, error)
	GetVendorBill(ctx context.Context, id string) (VendorBill, error)

	CreateCustomerInvoice(context.Context, CreateCustomerInvoiceRequest) (CustomerInvoice, error)
	ListCustomerInvoices(context.Context) ([]CustomerInvoice, error)
	GetCustomerInvoice(ctx context.Context, id string) (CustomerInvoice, error)
}

var (
	ErrInvalidID       = errors.New("invalid_id")
	ErrInvalidDate     = errors.New("invalid_date")
	ErrNotFound        = errors.New("document_not_found")
	ErrAlreadyBilled   = errors.New("order_already_billed")
	ErrAlreadyInvoiced = errors.New("order_already_invoiced")
)
