package analytics

import (
	"time"

	"github.com/sellora/storefront-manager/internal/entity"
)

// computeOrderStats produces the scalar and period-scoped order statistics.
// Canceled orders count toward total_orders and the canceled bucket but are
// excluded from every revenue figure.
func computeOrderStats(orders []entity.Order, cache map[string]entity.OrderMetric, now time.Time) entity.OrderStats {
	a := anchorsAt(now)

	var (
		totalRevenue  float64
		revenueOrders int

		ordersToday, ordersWeek, ordersMonth    int
		revenueToday, revenueWeek, revenueMonth float64

		pending, completed, canceled int
	)

	for i := range orders {
		o := &orders[i]
		m := cache[o.ID]

		if m.IsRevenue {
			totalRevenue += m.Total
			revenueOrders++
		}

		if !m.CreatedAt.Before(a.today) {
			ordersToday++
		}
		if !m.CreatedAt.Before(a.weekStart) {
			ordersWeek++
		}
		if !m.CreatedAt.Before(a.monthStart) {
			ordersMonth++
		}
		if m.IsRevenue {
			if !m.CreatedAt.Before(a.today) {
				revenueToday += m.Total
			}
			if !m.CreatedAt.Before(a.weekStart) {
				revenueWeek += m.Total
			}
			if !m.CreatedAt.Before(a.monthStart) {
				revenueMonth += m.Total
			}
		}

		// Exhaustive trichotomy: order-level cancellation first, then the
		// fulfillment classification, then everything else is pending.
		switch {
		case o.Status == entity.OrderStatusCanceled:
			canceled++
		case m.Fulfillment == entity.FulfillmentShipped || m.Fulfillment == entity.FulfillmentDelivered:
			completed++
		default:
			pending++
		}
	}

	var avgOrderValue float64
	if revenueOrders > 0 {
		avgOrderValue = totalRevenue / float64(revenueOrders)
	}

	return entity.OrderStats{
		TotalOrders:       len(orders),
		TotalRevenue:      round2(totalRevenue),
		AverageOrderValue: round2(avgOrderValue),
		OrdersToday:       ordersToday,
		RevenueToday:      round2(revenueToday),
		OrdersThisWeek:    ordersWeek,
		RevenueThisWeek:   round2(revenueWeek),
		OrdersThisMonth:   ordersMonth,
		RevenueThisMonth:  round2(revenueMonth),
		PendingOrders:     pending,
		CompletedOrders:   completed,
		CanceledOrders:    canceled,
	}
}

// computeCustomerStats counts customers by creation window and derives the
// returning-customer and per-customer order figures. Order counts here are
// raw: canceled orders still count, matching the lifetime total_orders
// numerator.
func computeCustomerStats(customers []entity.Customer, orders []entity.Order, now time.Time) entity.CustomerStats {
	a := anchorsAt(now)

	var newToday, newWeek, newMonth int
	for i := range customers {
		created := customers[i].CreatedAt
		if !created.Before(a.today) {
			newToday++
		}
		if !created.Before(a.weekStart) {
			newWeek++
		}
		if !created.Before(a.monthStart) {
			newMonth++
		}
	}

	orderCounts := make(map[string]int)
	for i := range orders {
		if id := orders[i].CustomerID; id != "" {
			orderCounts[id]++
		}
	}
	var returning int
	for _, n := range orderCounts {
		if n > 1 {
			returning++
		}
	}

	var avgOrders float64
	if len(orderCounts) > 0 {
		avgOrders = float64(len(orders)) / float64(len(orderCounts))
	}

	return entity.CustomerStats{
		TotalCustomers:           len(customers),
		NewCustomersToday:        newToday,
		NewCustomersThisWeek:     newWeek,
		NewCustomersThisMonth:    newMonth,
		ReturningCustomers:       returning,
		AverageOrdersPerCustomer: round2(avgOrders),
	}
}

// computeProductStats counts products by lifecycle status and folds in the
// stock-health classification.
func computeProductStats(snap *entity.Snapshot) entity.ProductStats {
	var published, draft int
	for i := range snap.Products {
		switch snap.Products[i].Status {
		case entity.ProductStatusPublished:
			published++
		case entity.ProductStatusDraft:
			draft++
		}
	}

	outOfStock, lowStock := classifyStock(snap.Products, snap.Variants, snap.InventoryLinks, snap.InventoryLevels)

	return entity.ProductStats{
		TotalProducts:      len(snap.Products),
		PublishedProducts:  published,
		DraftProducts:      draft,
		OutOfStockProducts: outOfStock,
		LowStockProducts:   lowStock,
	}
}
