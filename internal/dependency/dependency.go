package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sellora/storefront-manager/internal/entity"
)

type (
	// Analytics loads the read-only store data the report engine works on.
	Analytics interface {
		// GetSnapshot fetches every collection the report needs in one pass.
		GetSnapshot(ctx context.Context) (*entity.Snapshot, error)
		// GetOrders returns all orders with their line items and fulfillments.
		GetOrders(ctx context.Context) ([]entity.Order, error)
		// GetCustomers returns all registered customers.
		GetCustomers(ctx context.Context) ([]entity.Customer, error)
		// GetProducts returns all products with their variant ids.
		GetProducts(ctx context.Context) ([]entity.Product, error)
		// GetVariants returns all product variants.
		GetVariants(ctx context.Context) ([]entity.ProductVariant, error)
		// GetInventoryLinks returns the variant to inventory item mapping.
		GetInventoryLinks(ctx context.Context) ([]entity.VariantInventoryLink, error)
		// GetInventoryLevels returns per location stock rows.
		GetInventoryLevels(ctx context.Context) ([]entity.InventoryLevel, error)
	}

	Repository interface {
		Analytics() Analytics
		Now() time.Time
		Ping(ctx context.Context) error
		Close()
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}
)
