package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/shivbooks/books/internal/contact/domain"
	contactrepo "github.com/shivbooks/books/internal/contact/repository"
	pkgdb "github.com/shivbooks/books/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestContacts(t *testing.T) domain.Service {
	t.Helper()

	db, err := pkgdb.NewTest()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Contact{}))

	node, err := snowflake.NewNode(5)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  contactrepo.Provide(),
	})
}

func TestCreateContact(t *testing.T) {
	svc := newTestContacts(t)

	contact, err := svc.Create(context.Background(), domain.CreateContactRequest{
		Name:  "  Nimesh Pathak  ",
		Type:  domain.ContactTypeCustomer,
		Email: "nimesh@example.com",
	})
	require.NoError(t, err)

	assert.NotZero(t, contact.ID)
	assert.Equal(t, "Nimesh Pathak", contact.Name)
	assert.Equal(t, domain.ContactTypeCustomer, contact.Type)
}

func TestCreateContactValidation(t *testing.T) {
	svc := newTestContacts(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateContactRequest{Type: domain.ContactTypeVendor})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Create(ctx, domain.CreateContactRequest{Name: "Azure Interior", Type: "Supplier"})
	assert.ErrorIs(t, err, domain.ErrInvalidType)
}

func TestListContactsFiltersByType(t *testing.T) {
	svc := newTestContacts(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateContactRequest{Name: "Customer One", Type: domain.ContactTypeCustomer})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateContactRequest{Name: "Vendor One", Type: domain.ContactTypeVendor})
	require.NoError(t, err)

	vendors, err := svc.List(ctx, domain.ListContactRequest{Type: "Vendor"})
	require.NoError(t, err)
	require.Len(t, vendors, 1)
	assert.Equal(t, "Vendor One", vendors[0].Name)

	all, err := svc.List(ctx, domain.ListContactRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateContactPartial(t *testing.T) {
	svc := newTestContacts(t)
	ctx := context.Background()

	contact, err := svc.Create(ctx, domain.CreateContactRequest{
		Name: "Ravi Traders",
		Type: domain.ContactTypeVendor,
	})
	require.NoError(t, err)

	phone := "+91 98765 43210"
	updated, err := svc.Update(ctx, domain.UpdateContactRequest{
		ID:    contact.ID.String(),
		Phone: &phone,
	})
	require.NoError(t, err)

	assert.Equal(t, phone, updated.Phone)
	// Untouched fields survive a partial update.
	assert.Equal(t, "Ravi Traders", updated.Name)
	assert.Equal(t, domain.ContactTypeVendor, updated.Type)
}

func TestGetContactErrors(t *testing.T) {
	svc := newTestContacts(t)
	ctx := context.Background()

	_, err := svc.GetByID(ctx, "not-a-number")
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = svc.GetByID(ctx, "987654")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteContact(t *testing.T) {
	svc := newTestContacts(t)
	ctx := context.Background()

	contact, err := svc.Create(ctx, domain.CreateContactRequest{
		Name: "Gone Soon",
		Type: domain.ContactTypeBoth,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, contact.ID.String()))

	_, err = svc.GetByID(ctx, contact.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
