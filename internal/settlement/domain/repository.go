package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	InsertPayment(ctx context.Context, db *gorm.DB, payment *Payment) error
	FindPaymentByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Payment, error)
	ListPayments(ctx context.Context, db *gorm.DB) ([]Payment, error)

	InsertReceipt(ctx context.Context, db *gorm.DB, receipt *Receipt) error
	FindReceiptByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Receipt, error)
	ListReceipts(ctx context.Context, db *gorm.DB) ([]Receipt, error)
}
