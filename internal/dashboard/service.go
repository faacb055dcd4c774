// internal/dashboard/service.go
package dashboard

import (
	"context"
)

// Service defines the interface for the dashboard service. All operations are
// read-only aggregations over the three collections.
type Service interface {
	Stats(ctx context.Context) (*Stats, error)
	ChartData(ctx context.Context) (*Charts, error)
	RecentOrders(ctx context.Context, limit int) ([]OrderSummary, error)
	PopularProducts(ctx context.Context, limit int) ([]ProductSummary, error)
}
