package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/shivbooks/books/internal/order/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertPurchaseOrder(ctx context.Context, db *gorm.DB, po *domain.PurchaseOrder) error {
	return db.WithContext(ctx).Create(po).Error
}

func (r *repo) FindPurchaseOrderByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.PurchaseOrder, error) {
	var po domain.PurchaseOrder
	err := db.WithContext(ctx).First(&po, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &po, nil
}

func (r *repo) ListPurchaseOrders(ctx context.Context, db *gorm.DB) ([]domain.PurchaseOrder, error) {
	var orders []domain.PurchaseOrder
	err := db.WithContext(ctx).
		Model(&domain.PurchaseOrder{}).
		Order("order_date asc, id asc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repo) UpdatePurchaseOrder(ctx context.Context, db *gorm.DB, po *domain.PurchaseOrder) error {
	return db.WithContext(ctx).Save(po).Error
}

func (r *repo) DeletePurchaseOrder(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Delete(&domain.PurchaseOrder{}, "id = ?", id).Error
}

func (r *repo) InsertSalesOrder(ctx context.Context, db *gorm.DB, so *domain.SalesOrder) error {
	return db.WithContext(ctx).Create(so).Error
}

func (r *repo) FindSalesOrderByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.SalesOrder, error) {
	var so domain.SalesOrder
	err := db.WithContext(ctx).First(&so, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &so, nil
}

func (r *repo) ListSalesOrders(ctx context.Context, db *gorm.DB) ([]domain.SalesOrder, error) {
	var orders []domain.SalesOrder
	err := db.WithContext(ctx).
		Model(&domain.SalesOrder{}).
		Order("order_date asc, id asc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repo) UpdateSalesOrder(ctx context.Context, db *gorm.DB, so *domain.SalesOrder) error {
	return db.WithContext(ctx).Save(so).Error
}

func (r *repo) DeleteSalesOrder(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Delete(&domain.SalesOrder{}, "id = ?", id).Error
}
