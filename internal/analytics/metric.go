package analytics

import (
	"math"

	"github.com/sellora/storefront-manager/internal/entity"
)

// totalRule is one entry of the canonical-total precedence table. The first
// rule whose field is present (non-nil) wins.
type totalRule struct {
	name  string
	field func(o *entity.Order) any
}

var totalRules = []totalRule{
	{"summary_current_total", func(o *entity.Order) any {
		if o.Summary == nil {
			return nil
		}
		return o.Summary.CurrentOrderTotal
	}},
	{"summary_original_total", func(o *entity.Order) any {
		if o.Summary == nil {
			return nil
		}
		return o.Summary.OriginalOrderTotal
	}},
	{"total", func(o *entity.Order) any {
		return o.Total
	}},
	{"summary_paid_total", func(o *entity.Order) any {
		if o.Summary == nil {
			return nil
		}
		return o.Summary.PaidTotal
	}},
}

// canonicalTotal resolves an order's total through the precedence table,
// falling back to item_total + shipping_total, and finally to a per-item sum
// when everything above came out as exactly zero.
func canonicalTotal(o *entity.Order) float64 {
	var total float64
	matched := false
	for _, rule := range totalRules {
		if v := rule.field(o); v != nil {
			total = ToNumber(v)
			matched = true
			break
		}
	}
	if !matched {
		total = ToNumber(o.ItemTotal) + ToNumber(o.ShippingTotal)
	}
	if total == 0 && len(o.Items) > 0 {
		var sum float64
		for i := range o.Items {
			it := &o.Items[i]
			sum += math.Max(ToNumber(it.Total),
				math.Max(ToNumber(it.Subtotal), ToNumber(it.UnitPrice)*ToNumber(it.Quantity)))
		}
		total = sum
	}
	return total
}

// classifyFulfillment derives the fulfillment status of an order from its
// fulfillment sub-records. Priority: delivered > shipped > all-canceled >
// processing; no fulfillments at all means not_fulfilled.
func classifyFulfillment(fulfillments []entity.Fulfillment) entity.FulfillmentStatus {
	if len(fulfillments) == 0 {
		return entity.FulfillmentNotFulfilled
	}
	var delivered, shipped bool
	allCanceled := true
	for i := range fulfillments {
		f := &fulfillments[i]
		if f.DeliveredAt != nil || f.Status == "delivered" {
			delivered = true
		}
		if f.ShippedAt != nil || f.Status == "shipped" {
			shipped = true
		}
		if f.CanceledAt == nil && f.Status != "canceled" {
			allCanceled = false
		}
	}
	switch {
	case delivered:
		return entity.FulfillmentDelivered
	case shipped:
		return entity.FulfillmentShipped
	case allCanceled:
		return entity.FulfillmentCanceled
	default:
		return entity.FulfillmentProcessing
	}
}

// DeriveMetric computes the per-order metric record. It is a pure function
// of one order and is called exactly once per order per run.
func DeriveMetric(o *entity.Order) entity.OrderMetric {
	return entity.OrderMetric{
		Total:       canonicalTotal(o),
		Fulfillment: classifyFulfillment(o.Fulfillments),
		IsRevenue:   o.Status != entity.OrderStatusCanceled,
		CreatedAt:   parseTime(o.CreatedAt),
	}
}

// BuildMetricCache derives the metric for every order up front. Every other
// aggregate reads this mapping instead of recomputing per-order state.
func BuildMetricCache(orders []entity.Order) map[string]entity.OrderMetric {
	cache := make(map[string]entity.OrderMetric, len(orders))
	for i := range orders {
		cache[orders[i].ID] = DeriveMetric(&orders[i])
	}
	return cache
}
