// internal/dashboard/implementation.go
package dashboard

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"storeadmin/internal/customers"
	"storeadmin/internal/orders"
	"storeadmin/internal/products"
	"storeadmin/internal/store"
)

// service implements the Service interface by loading fresh snapshots of the
// collections it needs and running the pure aggregation functions over them.
type service struct {
	store  store.Store
	tracer trace.Tracer
	now    func() time.Time
}

// NewService creates a new dashboard service instance. now supplies the
// wall clock; tests pass a fixed one.
func NewService(s store.Store, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		store:  s,
		tracer: otel.Tracer("storeadmin/dashboard"),
		now:    now,
	}
}

// Stats aggregates all three collections into the dashboard summary.
func (s *service) Stats(ctx context.Context) (*Stats, error) {
	ctx, span := s.tracer.Start(ctx, "dashboard.stats")
	defer span.End()

	var prodDoc products.Document
	var custDoc customers.Document
	var ordDoc orders.Document
	s.store.Load(ctx, products.Collection, &prodDoc)
	s.store.Load(ctx, customers.Collection, &custDoc)
	s.store.Load(ctx, orders.Collection, &ordDoc)

	stats := Compute(prodDoc.Products, custDoc.Customers, ordDoc.Orders, s.now())
	span.SetAttributes(
		attribute.Int("orders.count", len(ordDoc.Orders)),
		attribute.Int("customers.count", len(custDoc.Customers)),
		attribute.Int("products.count", len(prodDoc.Products)),
	)
	return &stats, nil
}

// ChartData buckets paid orders into the daily and monthly series.
func (s *service) ChartData(ctx context.Context) (*Charts, error) {
	ctx, span := s.tracer.Start(ctx, "dashboard.chart_data")
	defer span.End()

	var ordDoc orders.Document
	s.store.Load(ctx, orders.Collection, &ordDoc)

	charts := ChartData(ordDoc.Orders, s.now())
	return &charts, nil
}

// RecentOrders returns the newest orders truncated to limit.
func (s *service) RecentOrders(ctx context.Context, limit int) ([]OrderSummary, error) {
	ctx, span := s.tracer.Start(ctx, "dashboard.recent_orders",
		trace.WithAttributes(attribute.Int("limit", limit)),
	)
	defer span.End()

	var ordDoc orders.Document
	s.store.Load(ctx, orders.Collection, &ordDoc)
	return RecentOrders(ordDoc.Orders, limit), nil
}

// PopularProducts returns the most-ordered products truncated to limit.
func (s *service) PopularProducts(ctx context.Context, limit int) ([]ProductSummary, error) {
	ctx, span := s.tracer.Start(ctx, "dashboard.popular_products",
		trace.WithAttributes(attribute.Int("limit", limit)),
	)
	defer span.End()

	var prodDoc products.Document
	s.store.Load(ctx, products.Collection, &prodDoc)
	return PopularProducts(prodDoc.Products, limit), nil
}
