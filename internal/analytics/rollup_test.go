package analytics

import (
	"testing"
	"time"

	"github.com/sellora/storefront-manager/internal/entity"
	"github.com/stretchr/testify/assert"
)

var rollupNow = time.Date(2024, 5, 15, 14, 0, 0, 0, time.UTC)

func TestComputeOrderStats(t *testing.T) {
	shipped := []entity.Fulfillment{{Status: "shipped"}}
	orders := []entity.Order{
		{ID: "o1", CreatedAt: rollupNow.Add(-time.Hour), Total: 100.0, Fulfillments: shipped},
		{ID: "o2", CreatedAt: rollupNow.AddDate(0, 0, -2), Total: 200.0},
		{ID: "o3", Status: entity.OrderStatusCanceled, CreatedAt: rollupNow.Add(-time.Hour), Total: 50.0},
		{ID: "o4", CreatedAt: rollupNow.AddDate(0, -2, 0), Total: 300.0, Fulfillments: []entity.Fulfillment{{Status: "delivered"}}},
	}
	cache := BuildMetricCache(orders)

	stats := computeOrderStats(orders, cache, rollupNow)

	assert.Equal(t, 4, stats.TotalOrders)
	assert.Equal(t, 600.0, stats.TotalRevenue) // canceled 50 excluded
	assert.Equal(t, 200.0, stats.AverageOrderValue)

	// non-exclusive overlapping windows
	assert.Equal(t, 2, stats.OrdersToday) // o1 and canceled o3
	assert.Equal(t, 100.0, stats.RevenueToday)
	assert.Equal(t, 3, stats.OrdersThisWeek)
	assert.Equal(t, 300.0, stats.RevenueThisWeek)
	assert.Equal(t, 3, stats.OrdersThisMonth)
	assert.Equal(t, 300.0, stats.RevenueThisMonth)

	// exhaustive disjoint trichotomy
	assert.Equal(t, 1, stats.CanceledOrders)
	assert.Equal(t, 2, stats.CompletedOrders)
	assert.Equal(t, 1, stats.PendingOrders)
	assert.Equal(t, stats.TotalOrders, stats.PendingOrders+stats.CompletedOrders+stats.CanceledOrders)
}

func TestComputeOrderStatsEmpty(t *testing.T) {
	stats := computeOrderStats(nil, map[string]entity.OrderMetric{}, rollupNow)
	assert.Zero(t, stats.TotalOrders)
	assert.Zero(t, stats.TotalRevenue)
	assert.Zero(t, stats.AverageOrderValue)
}

func TestComputeCustomerStats(t *testing.T) {
	customers := []entity.Customer{
		{ID: "c1", CreatedAt: rollupNow.Add(-time.Hour)},
		{ID: "c2", CreatedAt: rollupNow.AddDate(0, 0, -2)},
		{ID: "c3", CreatedAt: rollupNow.AddDate(-1, 0, 0)},
	}
	// c1 has three orders, one canceled: still a returning customer because
	// the raw order count is what matters here.
	orders := []entity.Order{
		{ID: "o1", CustomerID: "c1"},
		{ID: "o2", CustomerID: "c1"},
		{ID: "o3", CustomerID: "c1", Status: entity.OrderStatusCanceled},
		{ID: "o4", CustomerID: "c2"},
		{ID: "o5"}, // no customer reference, ignored by the tally
	}

	stats := computeCustomerStats(customers, orders, rollupNow)

	assert.Equal(t, 3, stats.TotalCustomers)
	assert.Equal(t, 1, stats.NewCustomersToday)
	assert.Equal(t, 2, stats.NewCustomersThisWeek)
	assert.Equal(t, 2, stats.NewCustomersThisMonth)
	assert.Equal(t, 1, stats.ReturningCustomers)
	// 5 lifetime orders over 2 customers with at least one order
	assert.Equal(t, 2.5, stats.AverageOrdersPerCustomer)
}

func TestComputeProductStats(t *testing.T) {
	snap := &entity.Snapshot{
		Products: []entity.Product{
			{ID: "p1", Status: entity.ProductStatusPublished},
			{ID: "p2", Status: entity.ProductStatusDraft},
			{ID: "p3", Status: "proposed"},
		},
	}
	stats := computeProductStats(snap)
	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 1, stats.PublishedProducts)
	assert.Equal(t, 1, stats.DraftProducts)
	// all three products have zero variants
	assert.Equal(t, 3, stats.OutOfStockProducts)
}
