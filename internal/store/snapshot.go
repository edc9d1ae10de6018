package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sellora/storefront-manager/internal/dependency"
	"github.com/sellora/storefront-manager/internal/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type analyticsStore struct {
	*MYSQLStore
}

// Analytics returns an object implementing analytics interface
func (ms *MYSQLStore) Analytics() dependency.Analytics {
	return &analyticsStore{MYSQLStore: ms}
}

// GetSnapshot fetches all report collections concurrently and returns them
// only once every fetch has finished, so the report always works on a single
// consistent view of the data.
func (ms *MYSQLStore) GetSnapshot(ctx context.Context) (*entity.Snapshot, error) {
	snap := &entity.Snapshot{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		orders, err := ms.GetOrders(ctx)
		if err != nil {
			return fmt.Errorf("get orders: %w", err)
		}
		snap.Orders = orders
		return nil
	})
	g.Go(func() error {
		customers, err := ms.GetCustomers(ctx)
		if err != nil {
			return fmt.Errorf("get customers: %w", err)
		}
		snap.Customers = customers
		return nil
	})
	g.Go(func() error {
		products, err := ms.GetProducts(ctx)
		if err != nil {
			return fmt.Errorf("get products: %w", err)
		}
		snap.Products = products
		return nil
	})
	g.Go(func() error {
		variants, err := ms.GetVariants(ctx)
		if err != nil {
			return fmt.Errorf("get variants: %w", err)
		}
		snap.Variants = variants
		return nil
	})
	g.Go(func() error {
		links, err := ms.GetInventoryLinks(ctx)
		if err != nil {
			return fmt.Errorf("get inventory links: %w", err)
		}
		snap.InventoryLinks = links
		return nil
	})
	g.Go(func() error {
		levels, err := ms.GetInventoryLevels(ctx)
		if err != nil {
			return fmt.Errorf("get inventory levels: %w", err)
		}
		snap.InventoryLevels = levels
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

type orderRow struct {
	ID              string              `db:"id"`
	Status          string              `db:"status"`
	CreatedAt       time.Time           `db:"created_at"`
	Total           decimal.NullDecimal `db:"total"`
	ItemTotal       decimal.NullDecimal `db:"item_total"`
	ShippingTotal   decimal.NullDecimal `db:"shipping_total"`
	CurrencyCode    sql.NullString      `db:"currency_code"`
	CustomerID      sql.NullString      `db:"customer_id"`
	RegionName      sql.NullString      `db:"region_name"`
	SummaryCurrent  decimal.NullDecimal `db:"summary_current_order_total"`
	SummaryOriginal decimal.NullDecimal `db:"summary_original_order_total"`
	SummaryPaid     decimal.NullDecimal `db:"summary_paid_total"`
}

type orderItemRow struct {
	OrderID      string              `db:"order_id"`
	ProductID    sql.NullString      `db:"product_id"`
	ProductTitle sql.NullString      `db:"product_title"`
	Title        sql.NullString      `db:"title"`
	VariantID    sql.NullString      `db:"variant_id"`
	Quantity     decimal.NullDecimal `db:"quantity"`
	UnitPrice    decimal.NullDecimal `db:"unit_price"`
	Total        decimal.NullDecimal `db:"total"`
	Subtotal     decimal.NullDecimal `db:"subtotal"`
}

type fulfillmentRow struct {
	OrderID     string       `db:"order_id"`
	Status      string       `db:"status"`
	ShippedAt   sql.NullTime `db:"shipped_at"`
	DeliveredAt sql.NullTime `db:"delivered_at"`
	CanceledAt  sql.NullTime `db:"canceled_at"`
}

// money converts a nullable decimal column into the loosely typed money
// representation the report normalizer consumes.
func money(d decimal.NullDecimal) any {
	if !d.Valid {
		return nil
	}
	return d.Decimal
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}

func (ms *MYSQLStore) GetOrders(ctx context.Context) ([]entity.Order, error) {
	query := `
	SELECT
		o.id,
		o.status,
		o.created_at,
		o.total,
		o.item_total,
		o.shipping_total,
		o.currency_code,
		o.customer_id,
		r.name AS region_name,
		s.current_order_total AS summary_current_order_total,
		s.original_order_total AS summary_original_order_total,
		s.paid_total AS summary_paid_total
	FROM store_order o
	LEFT JOIN store_region r ON r.id = o.region_id
	LEFT JOIN order_summary s ON s.order_id = o.id
	ORDER BY o.created_at`

	rows, err := QueryListNamed[orderRow](ctx, ms.db, query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get orders: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	orderIDs := make([]string, 0, len(rows))
	orders := make([]entity.Order, 0, len(rows))
	index := make(map[string]int, len(rows))
	for _, row := range rows {
		o := entity.Order{
			ID:            row.ID,
			Status:        row.Status,
			CreatedAt:     row.CreatedAt,
			Total:         money(row.Total),
			ItemTotal:     money(row.ItemTotal),
			ShippingTotal: money(row.ShippingTotal),
			CurrencyCode:  row.CurrencyCode.String,
			CustomerID:    row.CustomerID.String,
		}
		if row.RegionName.Valid {
			o.Region = &entity.Region{Name: row.RegionName.String}
		}
		if row.SummaryCurrent.Valid || row.SummaryOriginal.Valid || row.SummaryPaid.Valid {
			o.Summary = &entity.OrderSummary{
				CurrentOrderTotal:  money(row.SummaryCurrent),
				OriginalOrderTotal: money(row.SummaryOriginal),
				PaidTotal:          money(row.SummaryPaid),
			}
		}
		index[row.ID] = len(orders)
		orders = append(orders, o)
		orderIDs = append(orderIDs, row.ID)
	}

	items, err := ms.getOrderItems(ctx, orderIDs)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		i, ok := index[item.OrderID]
		if !ok {
			continue
		}
		orders[i].Items = append(orders[i].Items, entity.OrderItem{
			ProductID:    item.ProductID.String,
			ProductTitle: item.ProductTitle.String,
			Title:        item.Title.String,
			VariantID:    item.VariantID.String,
			Quantity:     money(item.Quantity),
			UnitPrice:    money(item.UnitPrice),
			Total:        money(item.Total),
			Subtotal:     money(item.Subtotal),
		})
	}

	fulfillments, err := ms.getOrderFulfillments(ctx, orderIDs)
	if err != nil {
		return nil, err
	}
	for _, f := range fulfillments {
		i, ok := index[f.OrderID]
		if !ok {
			continue
		}
		orders[i].Fulfillments = append(orders[i].Fulfillments, entity.Fulfillment{
			Status:      f.Status,
			ShippedAt:   nullableTime(f.ShippedAt),
			DeliveredAt: nullableTime(f.DeliveredAt),
			CanceledAt:  nullableTime(f.CanceledAt),
		})
	}

	return orders, nil
}

func (ms *MYSQLStore) getOrderItems(ctx context.Context, orderIDs []string) ([]orderItemRow, error) {
	query := `
	SELECT order_id, product_id, product_title, title, variant_id,
		quantity, unit_price, total, subtotal
	FROM order_line_item
	WHERE order_id IN (:orderIds)
	ORDER BY id`

	items, err := QueryListNamed[orderItemRow](ctx, ms.db, query, map[string]any{
		"orderIds": orderIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get order line items: %w", err)
	}
	return items, nil
}

func (ms *MYSQLStore) getOrderFulfillments(ctx context.Context, orderIDs []string) ([]fulfillmentRow, error) {
	query := `
	SELECT order_id, status, shipped_at, delivered_at, canceled_at
	FROM order_fulfillment
	WHERE order_id IN (:orderIds)
	ORDER BY id`

	fulfillments, err := QueryListNamed[fulfillmentRow](ctx, ms.db, query, map[string]any{
		"orderIds": orderIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get order fulfillments: %w", err)
	}
	return fulfillments, nil
}

type customerRow struct {
	ID        string         `db:"id"`
	Email     sql.NullString `db:"email"`
	FirstName sql.NullString `db:"first_name"`
	LastName  sql.NullString `db:"last_name"`
	CreatedAt time.Time      `db:"created_at"`
}

func (ms *MYSQLStore) GetCustomers(ctx context.Context) ([]entity.Customer, error) {
	query := `
	SELECT id, email, first_name, last_name, created_at
	FROM customer
	ORDER BY created_at`

	rows, err := QueryListNamed[customerRow](ctx, ms.db, query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get customers: %w", err)
	}

	customers := make([]entity.Customer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, entity.Customer{
			ID:        row.ID,
			Email:     row.Email.String,
			FirstName: row.FirstName.String,
			LastName:  row.LastName.String,
			CreatedAt: row.CreatedAt,
		})
	}
	return customers, nil
}

type productRow struct {
	ID     string `db:"id"`
	Title  string `db:"title"`
	Status string `db:"status"`
}

type variantRow struct {
	ID              string         `db:"id"`
	ProductID       sql.NullString `db:"product_id"`
	ManageInventory sql.NullBool   `db:"manage_inventory"`
}

func (ms *MYSQLStore) GetProducts(ctx context.Context) ([]entity.Product, error) {
	query := `SELECT id, title, status FROM product ORDER BY id`

	rows, err := QueryListNamed[productRow](ctx, ms.db, query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get products: %w", err)
	}

	variants, err := ms.GetVariants(ctx)
	if err != nil {
		return nil, err
	}
	variantsByProduct := make(map[string][]string)
	for _, v := range variants {
		if v.ProductID == "" {
			continue
		}
		variantsByProduct[v.ProductID] = append(variantsByProduct[v.ProductID], v.ID)
	}

	products := make([]entity.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, entity.Product{
			ID:         row.ID,
			Title:      row.Title,
			Status:     row.Status,
			VariantIDs: variantsByProduct[row.ID],
		})
	}
	return products, nil
}

func (ms *MYSQLStore) GetVariants(ctx context.Context) ([]entity.ProductVariant, error) {
	query := `SELECT id, product_id, manage_inventory FROM product_variant ORDER BY id`

	rows, err := QueryListNamed[variantRow](ctx, ms.db, query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get product variants: %w", err)
	}

	variants := make([]entity.ProductVariant, 0, len(rows))
	for _, row := range rows {
		v := entity.ProductVariant{
			ID:        row.ID,
			ProductID: row.ProductID.String,
		}
		if row.ManageInventory.Valid {
			managed := row.ManageInventory.Bool
			v.ManageInventory = &managed
		}
		variants = append(variants, v)
	}
	return variants, nil
}

type inventoryLinkRow struct {
	VariantID       string `db:"variant_id"`
	InventoryItemID string `db:"inventory_item_id"`
}

func (ms *MYSQLStore) GetInventoryLinks(ctx context.Context) ([]entity.VariantInventoryLink, error) {
	query := `SELECT variant_id, inventory_item_id FROM variant_inventory_link ORDER BY variant_id`

	rows, err := QueryListNamed[inventoryLinkRow](ctx, ms.db, query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get inventory links: %w", err)
	}

	links := make([]entity.VariantInventoryLink, 0, len(rows))
	for _, row := range rows {
		links = append(links, entity.VariantInventoryLink{
			VariantID:       row.VariantID,
			InventoryItemID: row.InventoryItemID,
		})
	}
	return links, nil
}

type inventoryLevelRow struct {
	InventoryItemID  string          `db:"inventory_item_id"`
	StockedQuantity  decimal.Decimal `db:"stocked_quantity"`
	ReservedQuantity decimal.Decimal `db:"reserved_quantity"`
}

func (ms *MYSQLStore) GetInventoryLevels(ctx context.Context) ([]entity.InventoryLevel, error) {
	query := `SELECT inventory_item_id, stocked_quantity, reserved_quantity FROM inventory_level ORDER BY id`

	rows, err := QueryListNamed[inventoryLevelRow](ctx, ms.db, query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get inventory levels: %w", err)
	}

	levels := make([]entity.InventoryLevel, 0, len(rows))
	for _, row := range rows {
		levels = append(levels, entity.InventoryLevel{
			InventoryItemID:  row.InventoryItemID,
			StockedQuantity:  row.StockedQuantity.InexactFloat64(),
			ReservedQuantity: row.ReservedQuantity.InexactFloat64(),
		})
	}
	return levels, nil
}
