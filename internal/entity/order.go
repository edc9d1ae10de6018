package entity

import "time"

// OrderStatusCanceled is the order-level lifecycle tag that excludes an order
// from every monetary aggregate.
const OrderStatusCanceled = "canceled"

// Order is one read-only order row of the analytics snapshot, with line items
// and fulfillments inlined. Monetary fields are typed any because upstream
// sources disagree on representation (plain numbers, numeric strings,
// decimals); nil means the field is absent. They are normalized through
// analytics.ToNumber and never read directly by aggregates.
type Order struct {
	ID            string        `json:"id"`
	Status        string        `json:"status"`
	CreatedAt     any           `json:"created_at"`
	Total         any           `json:"total"`
	ItemTotal     any           `json:"item_total"`
	ShippingTotal any           `json:"shipping_total"`
	CurrencyCode  string        `json:"currency_code"`
	CustomerID    string        `json:"customer_id"`
	Region        *Region       `json:"region,omitempty"`
	Summary       *OrderSummary `json:"summary,omitempty"`
	Items         []OrderItem   `json:"items"`
	Fulfillments  []Fulfillment `json:"fulfillments"`
}

// OrderSummary carries the competing precomputed totals some upstreams attach
// to an order. Any of the fields may be absent.
type OrderSummary struct {
	CurrentOrderTotal  any `json:"current_order_total"`
	OriginalOrderTotal any `json:"original_order_total"`
	PaidTotal          any `json:"paid_total"`
}

type Region struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// OrderItem references its product directly, through the inlined variant, or
// through VariantID only; resolution tries the three in that order.
type OrderItem struct {
	ProductID    string       `json:"product_id"`
	ProductTitle string       `json:"product_title"`
	Title        string       `json:"title"`
	VariantID    string       `json:"variant_id"`
	Variant      *ItemVariant `json:"variant,omitempty"`
	Quantity     any          `json:"quantity"`
	UnitPrice    any          `json:"unit_price"`
	Total        any          `json:"total"`
	Subtotal     any          `json:"subtotal"`
}

type ItemVariant struct {
	ID      string       `json:"id"`
	Product *ItemProduct `json:"product,omitempty"`
}

type ItemProduct struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Fulfillment is one fulfillment sub-record of an order. A set timestamp and
// a matching status tag are equivalent signals.
type Fulfillment struct {
	Status      string     `json:"status"`
	ShippedAt   *time.Time `json:"shipped_at"`
	DeliveredAt *time.Time `json:"delivered_at"`
	CanceledAt  *time.Time `json:"canceled_at"`
}

// FulfillmentStatus is derived from an order's fulfillment sub-records,
// independent of the order's own status field.
type FulfillmentStatus string

const (
	FulfillmentNotFulfilled FulfillmentStatus = "not_fulfilled"
	FulfillmentProcessing   FulfillmentStatus = "processing"
	FulfillmentShipped      FulfillmentStatus = "shipped"
	FulfillmentDelivered    FulfillmentStatus = "delivered"
	FulfillmentCanceled     FulfillmentStatus = "canceled"
)

// OrderMetric is the per-order derived record: canonical total, fulfillment
// classification, revenue eligibility and parsed creation time. It is
// computed once per run and reused by every aggregate. Total keeps full
// float precision; rounding happens once at report assembly.
type OrderMetric struct {
	Total       float64
	Fulfillment FulfillmentStatus
	IsRevenue   bool
	CreatedAt   time.Time
}
