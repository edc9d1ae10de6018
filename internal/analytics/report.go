package analytics

import (
	"math"
	"time"

	"log/slog"

	"github.com/sellora/storefront-manager/internal/entity"
)

// BuildReport runs one full aggregation over the snapshot anchored at now.
// It is a pure function of (snapshot, now): identical inputs yield identical
// reports. The metric cache is derived for every order before any aggregate
// reads it; that single barrier is the only ordering the computation needs.
func BuildReport(snap *entity.Snapshot, now time.Time) *entity.AnalyticsReport {
	started := time.Now()

	cache := BuildMetricCache(snap.Orders)

	series := dailySeries(snap.Orders, cache, now)

	report := &entity.AnalyticsReport{
		OrderStats:      computeOrderStats(snap.Orders, cache, now),
		CustomerStats:   computeCustomerStats(snap.Customers, snap.Orders, now),
		ProductStats:    computeProductStats(snap),
		RevenueByDay:    series,
		OrdersByDay:     series,
		TopProducts:     topProducts(snap, cache),
		TopCustomers:    topCustomers(snap, cache),
		RevenueByRegion: revenueByRegion(snap.Orders, cache),
		OrdersByStatus:  ordersByStatus(snap.Orders, cache),
		SalesByCurrency: salesByCurrency(snap.Orders, cache),
	}

	slog.Default().Debug("analytics report built",
		slog.Int("orders", len(snap.Orders)),
		slog.Int("customers", len(snap.Customers)),
		slog.Int("products", len(snap.Products)),
		slog.Int("variants", len(snap.Variants)),
		slog.Int("inventory_levels", len(snap.InventoryLevels)),
		slog.Duration("elapsed", time.Since(started)),
	)

	return report
}

// round2 is the single rounding step every monetary figure passes through on
// its way into the report. Internal accumulation stays at full precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
