package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, contact *Contact) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Contact, error)
	List(ctx context.Context, db *gorm.DB, filter ListContactFilter) ([]Contact, error)
	Update(ctx context.Context, db *gorm.DB, contact *Contact) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}

type ListContactFilter struct {
	Type ContactType
	Name string
}
