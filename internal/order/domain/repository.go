package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	InsertPurchaseOrder(ctx context.Context, db *gorm.DB, po *PurchaseOrder) error
	FindPurchaseOrderByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*PurchaseOrder, error)
	ListPurchaseOrders(ctx context.Context, db *gorm.DB) ([]PurchaseOrder, error)
	UpdatePurchaseOrder(ctx context.Context, db *gorm.DB, po *PurchaseOrder) error
	DeletePurchaseOrder(ctx context.Context, db *gorm.DB, id snowflake.ID) error

	InsertSalesOrder(ctx context.Context, db *gorm.DB, so *SalesOrder) error
	FindSalesOrderByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*SalesOrder, error)
	ListSalesOrders(ctx context.Context, db *gorm.DB) ([]SalesOrder, error)
	UpdateSalesOrder(ctx context.Context, db *gorm.DB, so *SalesOrder) error
	DeleteSalesOrder(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
