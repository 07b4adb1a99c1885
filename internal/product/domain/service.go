package domain

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Name          string           `json:"name"`
	Category      string           `json:"category"`
	HSNCode       string           `json:"hsnCode"`
	SalesPrice    decimal.Decimal  `json:"salesPrice"`
	PurchasePrice decimal.Decimal  `json:"purchasePrice"`
	CurrentStock  *int64           `json:"currentStock"`
}

type UpdateProductRequest struct {
	ID            string
	Name          *string          `json:"name"`
	Category      *string          `json:"category"`
	HSNCode       *string          `json:"hsnCode"`
	SalesPrice    *decimal.Decimal `json:"salesPrice"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"`
	CurrentStock  *int64           `json:"currentStock"`
}

type Service interface {
	Create(context.Context, CreateProductRequest) (Product, error)
	List(context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (Product, error)
	Update(context.Context, UpdateProductRequest) (Product, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidName  = errors.New("invalid_name")
	ErrInvalidPrice = errors.New("invalid_price")
	ErrInvalidID    = errors.New("invalid_id")
	ErrNotFound     = errors.New("product_not_found")
)
