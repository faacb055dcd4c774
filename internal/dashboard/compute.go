// internal/dashboard/compute.go
package dashboard

import (
	"fmt"
	"sort"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"storeadmin/internal/customers"
	"storeadmin/internal/orders"
	"storeadmin/internal/products"
)

const paymentStatusPaid = "paid"

// Mock growth figures carried over for the order and customer tiles.
const (
	orderGrowthPlaceholder    = 12.5
	customerGrowthPlaceholder = 8.2
)

// Compute derives the dashboard summary from snapshots of all three
// collections. It is pure and read-only; calendar-month boundaries are taken
// from now, which callers inject so results are reproducible.
func Compute(prods []products.Product, custs []customers.Customer, ords []orders.Order, now time.Time) Stats {
	var totalRevenue float64
	for _, o := range ords {
		if o.PaymentStatus == paymentStatusPaid {
			totalRevenue += o.Total
		}
	}

	var monthOrders int
	var monthRevenue float64
	for _, o := range ords {
		if !sameMonth(o.OrderDate, now) {
			continue
		}
		monthOrders++
		if o.PaymentStatus == paymentStatusPaid {
			monthRevenue += o.Total
		}
	}

	var monthCustomers int
	for _, c := range custs {
		if sameMonth(c.JoinDate, now) {
			monthCustomers++
		}
	}

	// Synthetic previous-month baseline: 85% of the current month. Kept
	// verbatim from the original figures; see RevenueStat.
	previousMonthRevenue := monthRevenue * 0.85
	var revenueGrowth float64
	if previousMonthRevenue > 0 {
		revenueGrowth = (monthRevenue - previousMonthRevenue) / previousMonthRevenue * 100
	}

	var lowStock int
	for _, p := range prods {
		if p.Stock < LowStockThreshold {
			lowStock++
		}
	}

	var byStatus StatusCounts
	for _, o := range ords {
		switch o.Status {
		case orders.StatusPending:
			byStatus.Pending++
		case orders.StatusProcessing:
			byStatus.Processing++
		case orders.StatusShipped:
			byStatus.Shipped++
		case orders.StatusDelivered:
			byStatus.Delivered++
		case orders.StatusCancelled:
			byStatus.Cancelled++
		}
	}

	return Stats{
		TotalRevenue: RevenueStat{
			Value:     totalRevenue,
			Growth:    revenueGrowth,
			Formatted: formatAmount(totalRevenue),
		},
		TotalOrders: OrdersStat{
			Value:     len(ords),
			Growth:    orderGrowthPlaceholder,
			ThisMonth: monthOrders,
		},
		TotalCustomers: CustomersStat{
			Value:     len(custs),
			Growth:    customerGrowthPlaceholder,
			ThisMonth: monthCustomers,
		},
		TotalProducts: ProductsStat{
			Value:    len(prods),
			LowStock: lowStock,
		},
		OrdersByStatus: byStatus,
	}
}

// ChartData buckets paid orders into the last 7 calendar days and last 6
// calendar months, both inclusive of now. Buckets with no paid orders are
// present with zero values.
func ChartData(ords []orders.Order, now time.Time) Charts {
	daily := make([]DailyPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		var revenue float64
		var count int
		for _, o := range ords {
			if o.PaymentStatus == paymentStatusPaid && sameDay(o.OrderDate, day) {
				revenue += o.Total
				count++
			}
		}
		daily = append(daily, DailyPoint{
			Date:    day.Format("2006-01-02"),
			Revenue: revenue,
			Orders:  count,
			Label:   day.Format("Mon"),
		})
	}

	monthly := make([]MonthlyPoint, 0, 6)
	for i := 5; i >= 0; i-- {
		target := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		var revenue float64
		var count int
		for _, o := range ords {
			if o.PaymentStatus == paymentStatusPaid && sameMonth(o.OrderDate, target) {
				revenue += o.Total
				count++
			}
		}
		monthly = append(monthly, MonthlyPoint{
			Month:   target.Format("Jan"),
			Revenue: revenue,
			Orders:  count,
		})
	}

	return Charts{Daily: daily, Monthly: monthly}
}

// RecentOrders returns the newest orders, truncated to limit and projected to
// the summary shape. The input snapshot is never reordered in place.
func RecentOrders(ords []orders.Order, limit int) []OrderSummary {
	sorted := make([]orders.Order, len(ords))
	copy(sorted, ords)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].OrderDate.After(sorted[j].OrderDate) })

	if limit < len(sorted) {
		sorted = sorted[:limit]
	}
	out := make([]OrderSummary, 0, len(sorted))
	for _, o := range sorted {
		out = append(out, OrderSummary{
			ID:           o.ID,
			OrderNumber:  o.OrderNumber,
			CustomerName: o.CustomerName,
			Total:        o.Total,
			Status:       o.Status,
			OrderDate:    o.OrderDate,
			Items:        len(o.Items),
		})
	}
	return out
}

// PopularProducts returns the most-ordered products, truncated to limit and
// projected to the summary shape. The input snapshot is never reordered in
// place.
func PopularProducts(prods []products.Product, limit int) []ProductSummary {
	sorted := make([]products.Product, len(prods))
	copy(sorted, prods)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Orders > sorted[j].Orders })

	if limit < len(sorted) {
		sorted = sorted[:limit]
	}
	out := make([]ProductSummary, 0, len(sorted))
	for _, p := range sorted {
		out = append(out, ProductSummary{
			ID:     p.ID,
			Name:   p.Name,
			Image:  p.Image,
			Orders: p.Orders,
			Rank:   p.Rank,
			Price:  p.Price,
			Rating: p.Rating,
		})
	}
	return out
}

// formatAmount renders a dollar amount with thousands separators, matching
// en-US toLocaleString output (up to three fraction digits).
func formatAmount(v float64) string {
	p := message.NewPrinter(language.English)
	return fmt.Sprintf("$%s", p.Sprint(number.Decimal(v, number.MaxFractionDigits(3))))
}

// sameDay reports calendar-date equality in b's location.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// sameMonth reports (month, year) equality in b's location.
func sameMonth(a, b time.Time) bool {
	al := a.In(b.Location())
	return al.Year() == b.Year() && al.Month() == b.Month()
}
