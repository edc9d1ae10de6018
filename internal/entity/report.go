package entity

// AnalyticsReport is the single JSON-serializable result of one aggregation
// run. All monetary fields are rounded to 2 decimals exactly once, when they
// are placed here.
type AnalyticsReport struct {
	OrderStats      OrderStats        `json:"order_stats"`
	CustomerStats   CustomerStats     `json:"customer_stats"`
	ProductStats    ProductStats      `json:"product_stats"`
	RevenueByDay    []TimeSeriesPoint `json:"revenue_by_day"`
	OrdersByDay     []TimeSeriesPoint `json:"orders_by_day"`
	TopProducts     []TopProduct      `json:"top_products"`
	TopCustomers    []TopCustomer     `json:"top_customers"`
	RevenueByRegion []RegionRevenue   `json:"revenue_by_region"`
	OrdersByStatus  []StatusCount     `json:"orders_by_status"`
	SalesByCurrency []CurrencyTotal   `json:"sales_by_currency"`
}

type OrderStats struct {
	TotalOrders       int     `json:"total_orders"`
	TotalRevenue      float64 `json:"total_revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
	OrdersToday       int     `json:"orders_today"`
	RevenueToday      float64 `json:"revenue_today"`
	OrdersThisWeek    int     `json:"orders_this_week"`
	RevenueThisWeek   float64 `json:"revenue_this_week"`
	OrdersThisMonth   int     `json:"orders_this_month"`
	RevenueThisMonth  float64 `json:"revenue_this_month"`
	PendingOrders     int     `json:"pending_orders"`
	CompletedOrders   int     `json:"completed_orders"`
	CanceledOrders    int     `json:"canceled_orders"`
}

type CustomerStats struct {
	TotalCustomers           int     `json:"total_customers"`
	NewCustomersToday        int     `json:"new_customers_today"`
	NewCustomersThisWeek     int     `json:"new_customers_this_week"`
	NewCustomersThisMonth    int     `json:"new_customers_this_month"`
	ReturningCustomers       int     `json:"returning_customers"`
	AverageOrdersPerCustomer float64 `json:"average_orders_per_customer"`
}

type ProductStats struct {
	TotalProducts      int `json:"total_products"`
	PublishedProducts  int `json:"published_products"`
	DraftProducts      int `json:"draft_products"`
	OutOfStockProducts int `json:"out_of_stock_products"`
	LowStockProducts   int `json:"low_stock_products"`
}

// TimeSeriesPoint is one day bucket of the trailing 30-day series.
type TimeSeriesPoint struct {
	Date    string  `json:"date"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type TopProduct struct {
	ProductID     string  `json:"product_id"`
	ProductTitle  string  `json:"product_title"`
	TotalQuantity float64 `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
}

type TopCustomer struct {
	CustomerID    string  `json:"customer_id"`
	CustomerEmail string  `json:"customer_email"`
	CustomerName  string  `json:"customer_name"`
	TotalOrders   int     `json:"total_orders"`
	TotalSpent    float64 `json:"total_spent"`
}

type RegionRevenue struct {
	Region  string  `json:"region"`
	Revenue float64 `json:"revenue"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type CurrencyTotal struct {
	Currency string  `json:"currency"`
	Total    float64 `json:"total"`
}
