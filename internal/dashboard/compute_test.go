// internal/dashboard/compute_test.go
package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeadmin/internal/customers"
	"storeadmin/internal/orders"
	"storeadmin/internal/products"
)

var testNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func paidOrder(id string, total float64, date time.Time) orders.Order {
	return orders.Order{
		ID:            id,
		OrderNumber:   "ORD-2025-" + id,
		CustomerName:  "Customer " + id,
		Items:         []orders.Item{{Name: "item", Quantity: 1}},
		Total:         total,
		Status:        orders.StatusPending,
		PaymentStatus: "paid",
		OrderDate:     date,
	}
}

func TestChartDataDailyBuckets(t *testing.T) {
	yesterday := testNow.AddDate(0, 0, -1)
	ords := []orders.Order{
		paidOrder("1", 10, testNow),
		paidOrder("2", 20, testNow.Add(-2*time.Hour)),
		paidOrder("3", 5, yesterday),
	}

	charts := ChartData(ords, testNow)

	require.Len(t, charts.Daily, 7)
	today := charts.Daily[6]
	assert.Equal(t, "2025-03-15", today.Date)
	assert.Equal(t, 30.0, today.Revenue)
	assert.Equal(t, 2, today.Orders)

	prev := charts.Daily[5]
	assert.Equal(t, "2025-03-14", prev.Date)
	assert.Equal(t, 5.0, prev.Revenue)
	assert.Equal(t, 1, prev.Orders)
}

func TestChartDataUnpaidOrdersExcluded(t *testing.T) {
	unpaid := paidOrder("1", 100, testNow)
	unpaid.PaymentStatus = "pending"

	charts := ChartData([]orders.Order{unpaid}, testNow)
	assert.Equal(t, 0.0, charts.Daily[6].Revenue)
	assert.Equal(t, 0, charts.Daily[6].Orders)
}

func TestChartDataFixedSeriesLengths(t *testing.T) {
	charts := ChartData(nil, testNow)

	require.Len(t, charts.Daily, 7)
	require.Len(t, charts.Monthly, 6)
	for _, d := range charts.Daily {
		assert.Zero(t, d.Revenue)
		assert.Zero(t, d.Orders)
	}
	for _, m := range charts.Monthly {
		assert.Zero(t, m.Revenue)
		assert.Zero(t, m.Orders)
	}
}

func TestChartDataMonthlyBuckets(t *testing.T) {
	ords := []orders.Order{
		paidOrder("1", 100, testNow),
		paidOrder("2", 40, time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC)),
		// Outside the six-month window.
		paidOrder("3", 999, time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC)),
	}

	charts := ChartData(ords, testNow)

	require.Len(t, charts.Monthly, 6)
	assert.Equal(t, "Oct", charts.Monthly[0].Month)
	assert.Equal(t, "Mar", charts.Monthly[5].Month)
	assert.Equal(t, 100.0, charts.Monthly[5].Revenue)

	jan := charts.Monthly[3]
	assert.Equal(t, "Jan", jan.Month)
	assert.Equal(t, 40.0, jan.Revenue)
	assert.Equal(t, 1, jan.Orders)
}

func TestComputeRevenueAndGrowth(t *testing.T) {
	ords := []orders.Order{
		paidOrder("1", 10, testNow),
		paidOrder("2", 20, testNow),
		paidOrder("3", 5, testNow.AddDate(0, 0, -1)),
	}
	unpaid := paidOrder("4", 1000, testNow)
	unpaid.PaymentStatus = "pending"
	ords = append(ords, unpaid)

	stats := Compute(nil, nil, ords, testNow)

	assert.Equal(t, 35.0, stats.TotalRevenue.Value)
	assert.Equal(t, "$35", stats.TotalRevenue.Formatted)
	// Baseline is 85% of the current month, so growth is fixed at 15/85.
	assert.InDelta(t, 17.6470588, stats.TotalRevenue.Growth, 1e-6)
	assert.Equal(t, 4, stats.TotalOrders.Value)
	assert.Equal(t, 4, stats.TotalOrders.ThisMonth)
}

func TestComputeGrowthZeroWhenNoMonthRevenue(t *testing.T) {
	ords := []orders.Order{paidOrder("1", 50, testNow.AddDate(0, -2, 0))}

	stats := Compute(nil, nil, ords, testNow)
	assert.Zero(t, stats.TotalRevenue.Growth)
	assert.Equal(t, 50.0, stats.TotalRevenue.Value)
}

func TestComputeFormattedUsesThousandsSeparators(t *testing.T) {
	ords := []orders.Order{paidOrder("1", 1235.5, testNow)}

	stats := Compute(nil, nil, ords, testNow)
	assert.Equal(t, "$1,235.5", stats.TotalRevenue.Formatted)
}

func TestComputeStatusHistogramSkipsUnknownStatuses(t *testing.T) {
	ords := []orders.Order{
		{ID: "1", Status: orders.StatusPending},
		{ID: "2", Status: orders.StatusShipped},
		{ID: "3", Status: orders.StatusShipped},
		{ID: "4", Status: "on-hold"},
	}

	stats := Compute(nil, nil, ords, testNow)
	counts := stats.OrdersByStatus
	bucketSum := counts.Pending + counts.Processing + counts.Shipped + counts.Delivered + counts.Cancelled
	assert.Equal(t, 3, bucketSum)
	assert.Less(t, bucketSum, stats.TotalOrders.Value)
}

func TestComputeLowStockCount(t *testing.T) {
	prods := []products.Product{
		{ID: "1", Stock: 5},
		{ID: "2", Stock: 19},
		{ID: "3", Stock: 20},
		{ID: "4", Stock: 100},
	}

	stats := Compute(prods, nil, nil, testNow)
	assert.Equal(t, 4, stats.TotalProducts.Value)
	assert.Equal(t, 2, stats.TotalProducts.LowStock)
}

func TestComputeCustomersThisMonth(t *testing.T) {
	custs := []customers.Customer{
		{ID: "1", JoinDate: testNow.AddDate(0, 0, -3)},
		{ID: "2", JoinDate: testNow.AddDate(0, -1, 0)},
		{ID: "3", JoinDate: testNow},
	}

	stats := Compute(nil, custs, nil, testNow)
	assert.Equal(t, 3, stats.TotalCustomers.Value)
	assert.Equal(t, 2, stats.TotalCustomers.ThisMonth)
}

func TestRecentOrdersSortsAndProjects(t *testing.T) {
	ords := []orders.Order{
		paidOrder("old", 10, testNow.AddDate(0, 0, -5)),
		paidOrder("newest", 20, testNow),
		paidOrder("mid", 30, testNow.AddDate(0, 0, -2)),
	}

	recent := RecentOrders(ords, 2)

	require.Len(t, recent, 2)
	assert.Equal(t, "newest", recent[0].ID)
	assert.Equal(t, "mid", recent[1].ID)
	assert.Equal(t, 1, recent[0].Items)
	assert.Equal(t, "ORD-2025-newest", recent[0].OrderNumber)
}

func TestRecentOrdersZeroLimitYieldsEmpty(t *testing.T) {
	ords := []orders.Order{paidOrder("1", 10, testNow)}
	assert.Empty(t, RecentOrders(ords, 0))
}

func TestRecentOrdersDoesNotMutateSnapshot(t *testing.T) {
	ords := []orders.Order{
		paidOrder("a", 10, testNow.AddDate(0, 0, -1)),
		paidOrder("b", 20, testNow),
	}
	RecentOrders(ords, 5)
	assert.Equal(t, "a", ords[0].ID)
}

func TestPopularProductsRanksByOrders(t *testing.T) {
	prods := []products.Product{
		{ID: "1", Name: "Laptop", Orders: 1250, Rank: 1, Price: 1240, Rating: 4.5},
		{ID: "2", Name: "Headphones", Orders: 312, Rank: 6, Price: 299, Rating: 4.2},
		{ID: "3", Name: "Handbag", Orders: 980, Rank: 2, Price: 899, Rating: 4.8},
	}

	popular := PopularProducts(prods, 2)

	require.Len(t, popular, 2)
	assert.Equal(t, "1", popular[0].ID)
	assert.Equal(t, "3", popular[1].ID)
	assert.Equal(t, 1240.0, popular[0].Price)
}

func TestPopularProductsZeroLimitYieldsEmpty(t *testing.T) {
	prods := []products.Product{{ID: "1", Orders: 10}}
	assert.Empty(t, PopularProducts(prods, 0))
}
