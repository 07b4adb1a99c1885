package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// ContactType classifies a contact as a buyer, a supplier, or both.
type ContactType string

const (
	ContactTypeCustomer ContactType = "Customer"
	ContactTypeVendor   ContactType = "Vendor"
	ContactTypeBoth     ContactType = "Both"
)

// Valid reports whether t is a known contact type.
func (t ContactType) Valid() bool {
	switch t {
	case ContactTypeCustomer, ContactTypeVendor, ContactTypeBoth:
		return true
	default:
		return false
	}
}

// IsCustomer reports whether the contact can appear on sales documents.
func (t ContactType) IsCustomer() bool {
	return t == ContactTypeCustomer || t == ContactTypeBoth
}

// IsVendor reports whether the contact can appear on purchase documents.
func (t ContactType) IsVendor() bool {
	return t == ContactTypeVendor || t == ContactTypeBoth
}

type Contact struct {
	ID           snowflake.ID      `gorm:"primaryKey" json:"id"`
	Name         string            `gorm:"not null" json:"name"`
	Type         ContactType       `gorm:"type:text;not null" json:"type"`
	Email        string            `json:"email,omitempty"`
	Phone        string            `json:"phone,omitempty"`
	Address      string            `json:"address,omitempty"`
	ProfileImage string            `json:"profileImage,omitempty"`
	Metadata     datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt    time.Time         `gorm:"not null" json:"createdAt"`
	UpdatedAt    time.Time         `gorm:"not null" json:"updatedAt"`
}

// TableName sets the database table name.
func (Contact) TableName() string { return "contacts" }
