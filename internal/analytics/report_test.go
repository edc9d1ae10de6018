package analytics

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/sellora/storefront-manager/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportSnapshot(now time.Time) *entity.Snapshot {
	return &entity.Snapshot{
		Orders: []entity.Order{
			{
				ID:           "o1",
				Status:       "completed",
				CreatedAt:    now.Add(-2 * time.Hour),
				CurrencyCode: "usd",
				CustomerID:   "c1",
				Region:       &entity.Region{Name: "Americas"},
				Summary:      &entity.OrderSummary{CurrentOrderTotal: decimal.NewFromFloat(149.99)},
				Items: []entity.OrderItem{
					{ProductID: "p1", ProductTitle: "Jacket", Total: 149.99, Quantity: 1},
				},
				Fulfillments: []entity.Fulfillment{{Status: "shipped"}},
			},
			{
				ID:         "o2",
				Status:     entity.OrderStatusCanceled,
				CreatedAt:  now.Add(-3 * time.Hour),
				CustomerID: "c1",
				Total:      50.0,
				Region:     &entity.Region{Name: "Americas"},
			},
			{
				ID:        "o3",
				Status:    "pending",
				CreatedAt: now.AddDate(0, 0, -40),
				ItemTotal: "80",
				ShippingTotal: json.Number("20"),
			},
		},
		Customers: []entity.Customer{
			{ID: "c1", Email: "ann@example.com", FirstName: "Ann", LastName: "Lee", CreatedAt: now.AddDate(0, 0, -10)},
		},
		Products: []entity.Product{
			{ID: "p1", Title: "Jacket", Status: entity.ProductStatusPublished, VariantIDs: []string{"v1"}},
		},
		Variants:       []entity.ProductVariant{{ID: "v1", ProductID: "p1"}},
		InventoryLinks: []entity.VariantInventoryLink{{VariantID: "v1", InventoryItemID: "i1"}},
		InventoryLevels: []entity.InventoryLevel{
			{InventoryItemID: "i1", StockedQuantity: 5, ReservedQuantity: 1},
		},
	}
}

func TestBuildReport(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	report := BuildReport(reportSnapshot(now), now)

	// canceled order counted but not revenue; the 40-day-old order uses the
	// item_total + shipping_total fallback
	assert.Equal(t, 3, report.OrderStats.TotalOrders)
	assert.Equal(t, 249.99, report.OrderStats.TotalRevenue)
	assert.Equal(t, 1, report.OrderStats.CanceledOrders)
	assert.Equal(t, 1, report.OrderStats.CompletedOrders)
	assert.Equal(t, 1, report.OrderStats.PendingOrders)

	require.Len(t, report.RevenueByDay, 30)
	var seriesRevenue float64
	for _, p := range report.RevenueByDay {
		seriesRevenue += p.Revenue
	}
	// the old order is outside the series window, the canceled one excluded
	assert.Equal(t, 149.99, seriesRevenue)

	// both day series expose the same data
	assert.Equal(t, report.RevenueByDay, report.OrdersByDay)

	require.Len(t, report.TopProducts, 1)
	assert.Equal(t, "p1", report.TopProducts[0].ProductID)
	assert.Equal(t, 149.99, report.TopProducts[0].TotalRevenue)

	require.Len(t, report.TopCustomers, 1)
	assert.Equal(t, 149.99, report.TopCustomers[0].TotalSpent)
	assert.Equal(t, 1, report.TopCustomers[0].TotalOrders)

	require.Len(t, report.RevenueByRegion, 2)
	assert.Equal(t, "Americas", report.RevenueByRegion[0].Region)
	assert.Equal(t, 149.99, report.RevenueByRegion[0].Revenue)
	assert.Equal(t, "Unknown", report.RevenueByRegion[1].Region)

	// o3 carries no currency code and falls back to USD, merging with o1
	require.Len(t, report.SalesByCurrency, 1)
	assert.Equal(t, "USD", report.SalesByCurrency[0].Currency)
	assert.Equal(t, 249.99, report.SalesByCurrency[0].Total)

	// 4 available on the only variant -> low stock
	assert.Equal(t, 0, report.ProductStats.OutOfStockProducts)
	assert.Equal(t, 1, report.ProductStats.LowStockProducts)
}

func TestBuildReportDeterministic(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

	first, err := json.Marshal(BuildReport(reportSnapshot(now), now))
	require.NoError(t, err)
	second, err := json.Marshal(BuildReport(reportSnapshot(now), now))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestBuildReportEmptySnapshot(t *testing.T) {
	report := BuildReport(&entity.Snapshot{}, time.Now())
	assert.Zero(t, report.OrderStats.TotalOrders)
	assert.Zero(t, report.CustomerStats.TotalCustomers)
	assert.Len(t, report.RevenueByDay, 30)
	assert.Empty(t, report.TopProducts)
	assert.Empty(t, report.TopCustomers)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, round2(1.234))
	assert.Equal(t, 1.24, round2(1.236))
	assert.Equal(t, 0.1, round2(0.1+0.2-0.2))
	assert.Equal(t, -1.24, round2(-1.236))
}
