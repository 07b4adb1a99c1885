// Package seed bootstraps the default chart of accounts and tax rates so a
// fresh install can record documents immediately.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	accountdomain "github.com/shivbooks/books/internal/account/domain"
	taxdomain "github.com/shivbooks/books/internal/tax/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var defaultAccounts = []struct {
	Name string
	Type accountdomain.AccountType
}{
	{"Cash", accountdomain.AccountTypeAsset},
	{"Bank", accountdomain.AccountTypeAsset},
	{"Accounts Receivable", accountdomain.AccountTypeAsset},
	{"Accounts Payable", accountdomain.AccountTypeLiability},
	{"Sales Income", accountdomain.AccountTypeIncome},
	{"Purchase Expense", accountdomain.AccountTypeExpense},
	{"Retained Earnings", accountdomain.AccountTypeEquity},
}

var defaultTaxes = []struct {
	Name string
	Rate decimal.Decimal
}{
	{"GST 5%", decimal.NewFromInt(5)},
	{"GST 18%", decimal.NewFromInt(18)},
}

// EnsureDefaults seeds the default accounts and taxes. Existing rows are
// left untouched, so the seed is safe to run on every startup.
func EnsureDefaults(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureAccounts(ctx, tx, node); err != nil {
			return err
		}
		return ensureTaxes(ctx, tx, node)
	})
}

func ensureAccounts(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	for _, seed := range defaultAccounts {
		var existing accountdomain.Account
		err := tx.WithContext(ctx).Where("name = ?", seed.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		now := time.Now().UTC()
		account := accountdomain.Account{
			ID:        node.Generate(),
			Name:      seed.Name,
			Type:      seed.Type,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tx.WithContext(ctx).Create(&account).Error; err != nil {
			return err
		}
	}
	return nil
}

func ensureTaxes(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	for _, seed := range defaultTaxes {
		var existing taxdomain.Tax
		err := tx.WithContext(ctx).Where("name = ?", seed.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		now := time.Now().UTC()
		rate := taxdomain.Tax{
			ID:        node.Generate(),
			Name:      seed.Name,
			Rate:      seed.Rate,
			AppliesTo: taxdomain.TaxScopeBoth,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tx.WithContext(ctx).Create(&rate).Error; err != nil {
			return err
		}
	}
	return nil
}
