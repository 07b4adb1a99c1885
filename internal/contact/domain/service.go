package domain

import (
	"context"
	"errors"
)

type CreateContactRequest struct {
	Name         string      `json:"name"`
	Type         ContactType `json:"type"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address"`
	ProfileImage string      `json:"profileImage"`
}

type UpdateContactRequest struct {
	ID           string
	Name         *string      `json:"name"`
	Type         *ContactType `json:"type"`
	Email        *string      `json:"email"`
	Phone        *string      `json:"phone"`
	Address      *string      `json:"address"`
	ProfileImage *string      `json:"profileImage"`
}

type ListContactRequest struct {
	Type string
	Name string
}

type Service interface {
	Create(context.Context, CreateContactRequest) (Contact, error)
	List(context.Context, ListContactRequest) ([]Contact, error)
	GetByID(ctx context.Context, id string) (Contact, error)
	Update(context.Context, UpdateContactRequest) (Contact, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidName = errors.New("invalid_name")
	ErrInvalidType = errors.New("invalid_type")
	ErrInvalidID   = errors.New("invalid_id")
	ErrNotFound    = errors.New("contact_not_found")
)
