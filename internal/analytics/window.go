package analytics

import (
	"time"

	"github.com/sellora/storefront-manager/internal/entity"
)

// seriesDays is the fixed length of the trailing daily series.
const seriesDays = 30

// anchors are the period starts every windowed stat filters against. The
// windows overlap: today's orders are a subset of this week's, which are a
// subset of this month's.
type anchors struct {
	today      time.Time
	weekStart  time.Time
	monthStart time.Time
}

func anchorsAt(now time.Time) anchors {
	return anchors{
		today:      startOfDay(now),
		weekStart:  startOfWeek(now),
		monthStart: startOfMonth(now),
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek is Monday 00:00, or 6 days back when t falls on a Sunday.
func startOfWeek(t time.Time) time.Time {
	daysBack := (int(t.Weekday()) + 6) % 7
	return startOfDay(t.AddDate(0, 0, -daysBack))
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// dailySeries builds exactly seriesDays contiguous day buckets ending at the
// day of now, oldest first. Each bucket is the half-open interval
// [dayStart, dayStart+24h) over revenue-eligible orders; orders older than
// the window are left out of the series but still count in lifetime totals.
func dailySeries(orders []entity.Order, cache map[string]entity.OrderMetric, now time.Time) []entity.TimeSeriesPoint {
	series := make([]entity.TimeSeriesPoint, 0, seriesDays)
	for i := seriesDays - 1; i >= 0; i-- {
		dayStart := startOfDay(now.AddDate(0, 0, -i))
		dayEnd := dayStart.AddDate(0, 0, 1)

		var count int
		var revenue float64
		for j := range orders {
			m := cache[orders[j].ID]
			if !m.IsRevenue {
				continue
			}
			if m.CreatedAt.Before(dayStart) || !m.CreatedAt.Before(dayEnd) {
				continue
			}
			count++
			revenue += m.Total
		}

		series = append(series, entity.TimeSeriesPoint{
			Date:    dayStart.Format("2006-01-02"),
			Orders:  count,
			Revenue: round2(revenue),
		})
	}
	return series
}
