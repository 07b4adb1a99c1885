package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// AccountType is the nature of a chart-of-accounts entry.
type AccountType string

const (
	AccountTypeAsset     AccountType = "Asset"
	AccountTypeLiability AccountType = "Liability"
	AccountTypeIncome    AccountType = "Income"
	AccountTypeExpense   AccountType = "Expense"
	AccountTypeEquity    AccountType = "Equity"
)

func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeIncome, AccountTypeExpense, AccountTypeEquity:
		return true
	default:
		return false
	}
}

// Account is a chart-of-accounts entry.
type Account struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"not null;uniqueIndex:ux_accounts_name" json:"name"`
	Type      AccountType  `gorm:"type:text;not null" json:"type"`
	CreatedAt time.Time    `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time    `gorm:"not null" json:"updatedAt"`
}

// TableName sets the database table name.
func (Account) TableName() string { return "accounts" }

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, account *Account) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Account, error)
	List(ctx context.Context, db *gorm.DB) ([]Account, error)
	Update(ctx context.Context, db *gorm.DB, account *Account) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}

type CreateAccountRequest struct {
	Name string      `json:"name"`
	Type AccountType `json:"type"`
}

type UpdateAccountRequest struct {
	ID   string
	Name *string      `json:"name"`
	Type *AccountType `json:"type"`
}

type Service interface {
	Create(context.Context, CreateAccountRequest) (Account, error)
	List(context.Context) ([]Account, error)
	GetByID(ctx context.Context, id string) (Account, error)
	Update(context.Context, UpdateAccountRequest) (Account, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidName = errors.New("invalid_name")
	ErrInvalidType = errors.New("invalid_type")
	ErrInvalidID   = errors.New("invalid_id")
	ErrNotFound    = errors.New("account_not_found")
)
