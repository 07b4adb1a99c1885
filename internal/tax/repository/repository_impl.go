package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/shivbooks/books/internal/tax/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, tax *domain.Tax) error {
	return db.WithContext(ctx).Create(tax).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Tax, error) {
	var tax domain.Tax
	err := db.WithContext(ctx).First(&tax, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tax, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Tax, error) {
	var taxes []domain.Tax
	err := db.WithContext(ctx).
		Model(&domain.Tax{}).
		Order("created_at asc, id asc").
		Find(&taxes).Error
	if err != nil {
		return nil, err
	}
	return taxes, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, tax *domain.Tax) error {
	return db.WithContext(ctx).Save(tax).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Delete(&domain.Tax{}, "id = ?", id).Error
}
