package migration

import (
	accountdomain "github.com/shivbooks/books/internal/account/domain"
	billingdomain "github.com/shivbooks/books/internal/billing/domain"
	"github.com/shivbooks/books/internal/config"
	contactdomain "github.com/shivbooks/books/internal/contact/domain"
	orderdomain "github.com/shivbooks/books/internal/order/domain"
	productdomain "github.com/shivbooks/books/internal/product/domain"
	"github.com/shivbooks/books/internal/seed"
	settlementdomain "github.com/shivbooks/books/internal/settlement/domain"
	taxdomain "github.com/shivbooks/books/internal/tax/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// sqlite and mysql rely on gorm's schema sync; the SQL
			// migrations are written for postgres only.
			if err := conn.AutoMigrate(
				&contactdomain.Contact{},
				&productdomain.Product{},
				&taxdomain.Tax{},
				&accountdomain.Account{},
				&orderdomain.PurchaseOrder{},
				&orderdomain.SalesOrder{},
				&billingdomain.VendorBill{},
				&billingdomain.CustomerInvoice{},
				&settlementdomain.Payment{},
				&settlementdomain.Receipt{},
			); err != nil {
				return err
			}
		}

		return seed.EnsureDefaults(conn)
	}),
)
