package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TaxScope restricts which document kinds a tax applies to.
type TaxScope string

const (
	TaxScopeSales    TaxScope = "Sales"
	TaxScopePurchase TaxScope = "Purchase"
	TaxScopeBoth     TaxScope = "Both"
)

func (s TaxScope) Valid() bool {
	switch s {
	case TaxScopeSales, TaxScopePurchase, TaxScopeBoth:
		return true
	default:
		return false
	}
}

type Tax struct {
	ID        snowflake.ID    `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"not null" json:"name"`
	Rate      decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"rate"`
	AppliesTo TaxScope        `gorm:"type:text;not null;default:'Both'" json:"appliesTo"`
	CreatedAt time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time       `gorm:"not null" json:"updatedAt"`
}

// TableName sets the database table name.
func (Tax) TableName() string { return "taxes" }

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, tax *Tax) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Tax, error)
	List(ctx context.Context, db *gorm.DB) ([]Tax, error)
	Update(ctx context.Context, db *gorm.DB, tax *Tax) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}

type CreateTaxRequest struct {
	Name      string          `json:"name"`
	Rate      decimal.Decimal `json:"rate"`
	AppliesTo TaxScope        `json:"appliesTo"`
}

type UpdateTaxRequest struct {
	ID        string
	Name      *string          `json:"name"`
	Rate      *decimal.Decimal `json:"rate"`
	AppliesTo *TaxScope        `json:"appliesTo"`
}

type Service interface {
	Create(context.Context, CreateTaxRequest) (Tax, error)
	List(context.Context) ([]Tax, error)
	GetByID(ctx context.Context, id string) (Tax, error)
	Update(context.Context, UpdateTaxRequest) (Tax, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidName  = errors.New("invalid_name")
	ErrInvalidRate  = errors.New("invalid_rate")
	ErrInvalidScope = errors.New("invalid_applies_to")
	ErrInvalidID    = errors.New("invalid_id")
	ErrNotFound     = errors.New("tax_not_found")
)
