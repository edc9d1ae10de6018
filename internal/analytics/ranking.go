package analytics

import (
	"sort"
	"strings"

	"github.com/sellora/storefront-manager/internal/entity"
)

// topN is the leaderboard cutoff for products and customers. Region,
// currency and status breakdowns stay unbounded.
const topN = 10

// productRef is one entry of the prebuilt variant -> product index used as
// the last resolution step for line items.
type productRef struct {
	id    string
	title string
}

func buildVariantIndex(products []entity.Product, variants []entity.ProductVariant) map[string]productRef {
	titles := make(map[string]string, len(products))
	for i := range products {
		titles[products[i].ID] = products[i].Title
	}
	index := make(map[string]productRef, len(variants))
	for i := range variants {
		v := &variants[i]
		if v.ProductID == "" {
			continue
		}
		title := titles[v.ProductID]
		if title == "" {
			title = "Unknown Product"
		}
		index[v.ID] = productRef{id: v.ProductID, title: title}
	}
	return index
}

// resolveItemProduct follows the three-way fallback chain: direct product_id,
// the inlined variant's product, then the variant index. The title mirrors
// the same precedence.
func resolveItemProduct(item *entity.OrderItem, index map[string]productRef) (productRef, bool) {
	title := item.ProductTitle
	if title == "" {
		title = item.Title
	}
	if title == "" {
		title = "Unknown Product"
	}

	if item.ProductID != "" {
		return productRef{id: item.ProductID, title: title}, true
	}
	if item.Variant != nil && item.Variant.Product != nil && item.Variant.Product.ID != "" {
		if t := item.Variant.Product.Title; t != "" {
			title = t
		}
		return productRef{id: item.Variant.Product.ID, title: title}, true
	}
	if item.VariantID != "" {
		if ref, ok := index[item.VariantID]; ok {
			return ref, true
		}
	}
	return productRef{}, false
}

// itemRevenue is the per-line-item revenue: total, else subtotal, else
// unit_price x quantity, first non-zero wins.
func itemRevenue(item *entity.OrderItem) float64 {
	if v := ToNumber(item.Total); v != 0 {
		return v
	}
	if v := ToNumber(item.Subtotal); v != 0 {
		return v
	}
	return ToNumber(item.UnitPrice) * ToNumber(item.Quantity)
}

// topProducts ranks products by line-item revenue across revenue-eligible
// orders, descending, truncated to topN.
func topProducts(snap *entity.Snapshot, cache map[string]entity.OrderMetric) []entity.TopProduct {
	index := buildVariantIndex(snap.Products, snap.Variants)

	type sale struct {
		quantity float64
		revenue  float64
		title    string
	}
	sales := make(map[string]*sale)
	var order []string

	for i := range snap.Orders {
		o := &snap.Orders[i]
		if !cache[o.ID].IsRevenue {
			continue
		}
		for j := range o.Items {
			item := &o.Items[j]
			ref, ok := resolveItemProduct(item, index)
			if !ok {
				continue
			}
			s := sales[ref.id]
			if s == nil {
				s = &sale{title: ref.title}
				sales[ref.id] = s
				order = append(order, ref.id)
			}
			s.quantity += ToNumber(item.Quantity)
			s.revenue += itemRevenue(item)
		}
	}

	ranked := make([]entity.TopProduct, 0, len(order))
	for _, id := range order {
		s := sales[id]
		ranked = append(ranked, entity.TopProduct{
			ProductID:     id,
			ProductTitle:  s.title,
			TotalQuantity: s.quantity,
			TotalRevenue:  round2(s.revenue),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalRevenue > ranked[j].TotalRevenue
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// topCustomers ranks customers by spend over revenue-eligible orders. Orders
// without a customer reference are excluded here entirely; they still count
// in the global totals.
func topCustomers(snap *entity.Snapshot, cache map[string]entity.OrderMetric) []entity.TopCustomer {
	byID := make(map[string]*entity.Customer, len(snap.Customers))
	for i := range snap.Customers {
		byID[snap.Customers[i].ID] = &snap.Customers[i]
	}

	type spend struct {
		orders int
		spent  float64
	}
	spending := make(map[string]*spend)
	var order []string

	for i := range snap.Orders {
		o := &snap.Orders[i]
		m := cache[o.ID]
		if !m.IsRevenue || o.CustomerID == "" {
			continue
		}
		s := spending[o.CustomerID]
		if s == nil {
			s = &spend{}
			spending[o.CustomerID] = s
			order = append(order, o.CustomerID)
		}
		s.orders++
		s.spent += m.Total
	}

	ranked := make([]entity.TopCustomer, 0, len(order))
	for _, id := range order {
		s := spending[id]
		c := byID[id]
		email := "Unknown"
		if c != nil && c.Email != "" {
			email = c.Email
		}
		ranked = append(ranked, entity.TopCustomer{
			CustomerID:    id,
			CustomerEmail: email,
			CustomerName:  c.DisplayName(),
			TotalOrders:   s.orders,
			TotalSpent:    round2(s.spent),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalSpent > ranked[j].TotalSpent
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// revenueByRegion groups revenue-eligible orders by region name, "Unknown"
// when the order carries no region. Unbounded, descending by revenue.
func revenueByRegion(orders []entity.Order, cache map[string]entity.OrderMetric) []entity.RegionRevenue {
	totals := make(map[string]float64)
	var order []string

	for i := range orders {
		o := &orders[i]
		m := cache[o.ID]
		if !m.IsRevenue {
			continue
		}
		name := "Unknown"
		if o.Region != nil && o.Region.Name != "" {
			name = o.Region.Name
		}
		if _, ok := totals[name]; !ok {
			order = append(order, name)
		}
		totals[name] += m.Total
	}

	result := make([]entity.RegionRevenue, 0, len(order))
	for _, name := range order {
		result = append(result, entity.RegionRevenue{Region: name, Revenue: round2(totals[name])})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Revenue > result[j].Revenue
	})
	return result
}

// ordersByStatus buckets every order into the four display statuses:
// canceled by order status, delivered/shipped by fulfillment classification,
// waiting for the rest. Descending by count.
func ordersByStatus(orders []entity.Order, cache map[string]entity.OrderMetric) []entity.StatusCount {
	counts := make(map[string]int)
	var order []string

	for i := range orders {
		o := &orders[i]
		m := cache[o.ID]
		var status string
		switch {
		case o.Status == entity.OrderStatusCanceled:
			status = "canceled"
		case m.Fulfillment == entity.FulfillmentDelivered:
			status = "delivered"
		case m.Fulfillment == entity.FulfillmentShipped:
			status = "shipped"
		default:
			status = "waiting"
		}
		if _, ok := counts[status]; !ok {
			order = append(order, status)
		}
		counts[status]++
	}

	result := make([]entity.StatusCount, 0, len(order))
	for _, status := range order {
		result = append(result, entity.StatusCount{Status: status, Count: counts[status]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}

// salesByCurrency groups revenue-eligible orders by upper-cased currency
// code, defaulting to USD when absent. Descending by total.
func salesByCurrency(orders []entity.Order, cache map[string]entity.OrderMetric) []entity.CurrencyTotal {
	totals := make(map[string]float64)
	var order []string

	for i := range orders {
		o := &orders[i]
		m := cache[o.ID]
		if !m.IsRevenue {
			continue
		}
		currency := "USD"
		if o.CurrencyCode != "" {
			currency = strings.ToUpper(o.CurrencyCode)
		}
		if _, ok := totals[currency]; !ok {
			order = append(order, currency)
		}
		totals[currency] += m.Total
	}

	result := make([]entity.CurrencyTotal, 0, len(order))
	for _, currency := range order {
		result = append(result, entity.CurrencyTotal{Currency: currency, Total: round2(totals[currency])})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Total > result[j].Total
	})
	return result
}
