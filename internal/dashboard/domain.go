// internal/dashboard/domain.go
package dashboard

import (
	"time"
)

// Default truncation limits, applied only when the caller omits the
// parameter. An explicit zero is honored and yields an empty result.
const (
	DefaultRecentOrdersLimit    = 5
	DefaultPopularProductsLimit = 6
)

// LowStockThreshold is the stock level below which a product counts as low.
const LowStockThreshold = 20

// Stats is the dashboard summary over all three collections.
type Stats struct {
	TotalRevenue   RevenueStat   `json:"totalRevenue"`
	TotalOrders    OrdersStat    `json:"totalOrders"`
	TotalCustomers CustomersStat `json:"totalCustomers"`
	TotalProducts  ProductsStat  `json:"totalProducts"`
	OrdersByStatus StatusCounts  `json:"ordersByStatus"`
}

// RevenueStat carries lifetime paid revenue. Growth is derived from a
// synthetic previous-month baseline of 85% of the current month's paid
// revenue; it is a placeholder, not a historical comparison, and is kept
// as-is for parity with downstream consumers.
type RevenueStat struct {
	Value     float64 `json:"value"`
	Growth    float64 `json:"growth"`
	Formatted string  `json:"formatted"`
}

// OrdersStat carries the lifetime order count and this calendar month's.
type OrdersStat struct {
	Value     int     `json:"value"`
	Growth    float64 `json:"growth"`
	ThisMonth int     `json:"thisMonth"`
}

// CustomersStat carries the lifetime customer count and this month's joins.
type CustomersStat struct {
	Value     int     `json:"value"`
	Growth    float64 `json:"growth"`
	ThisMonth int     `json:"thisMonth"`
}

// ProductsStat carries the product count and how many are low on stock.
type ProductsStat struct {
	Value    int `json:"value"`
	LowStock int `json:"lowStock"`
}

// StatusCounts is the fixed five-bucket order status histogram. Orders with a
// status outside the enumerated set fall in no bucket.
type StatusCounts struct {
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Shipped    int `json:"shipped"`
	Delivered  int `json:"delivered"`
	Cancelled  int `json:"cancelled"`
}

// DailyPoint is one calendar day of paid-order revenue.
type DailyPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
	Label   string  `json:"label"`
}

// MonthlyPoint is one calendar month of paid-order revenue.
type MonthlyPoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// Charts bundles the time-series output: always exactly 7 daily points ending
// today and 6 monthly points ending with the current month.
type Charts struct {
	Daily   []DailyPoint   `json:"daily"`
	Monthly []MonthlyPoint `json:"monthly"`
}

// OrderSummary is the projection used by the recent-orders ranking.
type OrderSummary struct {
	ID           string    `json:"id"`
	OrderNumber  string    `json:"orderNumber"`
	CustomerName string    `json:"customerName"`
	Total        float64   `json:"total"`
	Status       string    `json:"status"`
	OrderDate    time.Time `json:"orderDate"`
	Items        int       `json:"items"`
}

// ProductSummary is the projection used by the popular-products ranking.
type ProductSummary struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Image  string  `json:"image"`
	Orders int     `json:"orders"`
	Rank   int     `json:"rank"`
	Price  float64 `json:"price"`
	Rating float64 `json:"rating"`
}
