package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Product struct {
	ID            snowflake.ID      `gorm:"primaryKey" json:"id"`
	Name          string            `gorm:"not null" json:"name"`
	Category      string            `json:"category,omitempty"`
	HSNCode       string            `gorm:"column:hsn_code" json:"hsnCode,omitempty"`
	SalesPrice    decimal.Decimal   `gorm:"type:decimal(20,4);not null" json:"salesPrice"`
	PurchasePrice decimal.Decimal   `gorm:"type:decimal(20,4);not null" json:"purchasePrice"`
	CurrentStock  int64             `gorm:"not null;default:0" json:"currentStock"`
	Metadata      datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt     time.Time         `gorm:"not null" json:"createdAt"`
	UpdatedAt     time.Time         `gorm:"not null" json:"updatedAt"`
}

// TableName sets the database table name.
func (Product) TableName() string { return "products" }
