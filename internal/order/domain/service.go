package domain

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// OrderItemInput is one requested order line. UnitPrice falls back to the
// product's list price for the order side when omitted.
type OrderItemInput struct {
	ProductID string           `json:"productId"`
	Quantity  int64            `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unitPrice"`
}

type CreatePurchaseOrderRequest struct {
	VendorID    string           `json:"vendorId"`
	OrderDate   string           `json:"orderDate"`
	Items       []OrderItemInput `json:"items"`
	TotalAmount *decimal.Decimal `json:"totalAmount"`
}

type CreateSalesOrderRequest struct {
	CustomerID  string           `json:"customerId"`
	OrderDate   string           `json:"orderDate"`
	Items       []OrderItemInput `json:"items"`
	TotalAmount *decimal.Decimal `json:"totalAmount"`
}

type UpdatePurchaseOrderRequest struct {
	ID          string
	OrderDate   *string          `json:"orderDate"`
	Items       []OrderItemInput `json:"items"`
	TotalAmount *decimal.Decimal `json:"totalAmount"`
}

type UpdateSalesOrderRequest struct {
	ID          string
	OrderDate   *string          `json:"orderDate"`
	Items       []OrderItemInput `json:"items"`
	TotalAmount *decimal.Decimal `json:"totalAmount"`
}

type Service interface {
	CreatePurchaseOrder(context.Context, CreatePurchaseOrderRequest) (PurchaseOrder, error)
	ListPurchaseOrders(context.Context) ([]PurchaseOrder, error)
	GetPurchaseOrder(ctx context.Context, id string) (PurchaseOrder, error)
	UpdatePurchaseOrder(context.Context, UpdatePurchaseOrderRequest) (PurchaseOrder, error)
	DeletePurchaseOrder(ctx context.Context, id string) error

	CreateSalesOrder(context.Context, CreateSalesOrderRequest) (SalesOrder, error)
	ListSalesOrders(context.Context) ([]SalesOrder, error)
	GetSalesOrder(ctx context.Context, id string) (SalesOrder, error)
	UpdateSalesOrder(context.Context, UpdateSalesOrderRequest) (SalesOrder, error)
	DeleteSalesOrder(ctx context.Context, id string) error
}

var (
	ErrInvalidID       = errors.New("invalid_id")
	ErrInvalidContact  = errors.New("invalid_contact")
	ErrInvalidDate     = errors.New("invalid_order_date")
	ErrNoItems         = errors.New("order_requires_items")
	ErrInvalidQuantity = errors.New("invalid_quantity")
	ErrTotalMismatch   = errors.New("total_amount_mismatch")
	ErrNotDraft        = errors.New("order_not_draft")
	ErrNotFound        = errors.New("order_not_found")
)
