// internal/orders/implementation.go
package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"storeadmin/internal/store"
)

// service implements the Service interface over a collection store.
type service struct {
	store  store.Store
	tracer trace.Tracer
	now    func() time.Time
}

// NewService creates a new orders service instance.
func NewService(s store.Store) Service {
	return &service{
		store:  s,
		tracer: otel.Tracer("storeadmin/orders"),
		now:    time.Now,
	}
}

func (s *service) snapshot(ctx context.Context) Document {
	var doc Document
	s.store.Load(ctx, Collection, &doc)
	return doc
}

// ListOrders runs the query pipeline over the current snapshot.
func (s *service) ListOrders(ctx context.Context, params ListParams) ([]Order, error) {
	ctx, span := s.tracer.Start(ctx, "orders.list",
		trace.WithAttributes(
			attribute.String("status", params.Status),
			attribute.String("sort", params.Sort),
			attribute.Int("limit", params.Limit),
		),
	)
	defer span.End()

	doc := s.snapshot(ctx)
	result := RunQuery(doc.Orders, params)
	span.SetAttributes(attribute.Int("result.count", len(result)))
	return result, nil
}

// GetOrder returns the order with the given identifier.
func (s *service) GetOrder(ctx context.Context, id string) (*Order, error) {
	doc := s.snapshot(ctx)
	for i := range doc.Orders {
		if doc.Orders[i].ID == id {
			o := doc.Orders[i]
			return &o, nil
		}
	}
	return nil, ErrNotFound
}

// CreateOrder appends a new order with a server-assigned identifier, order
// number, and order date. The number is sequential per year, derived from the
// current collection size.
func (s *service) CreateOrder(ctx context.Context, params CreateParams) (*Order, error) {
	doc := s.snapshot(ctx)
	now := s.now().UTC()

	status := params.Status
	if status == "" {
		status = StatusPending
	}
	paymentStatus := params.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = "pending"
	}

	order := Order{
		ID:            uuid.New().String(),
		OrderNumber:   fmt.Sprintf("ORD-%d-%03d", now.Year(), len(doc.Orders)+1),
		CustomerID:    params.CustomerID,
		CustomerName:  params.CustomerName,
		CustomerEmail: params.CustomerEmail,
		Items:         params.Items,
		Total:         params.Total,
		Status:        status,
		PaymentStatus: paymentStatus,
		OrderDate:     now,
	}
	doc.Orders = append(doc.Orders, order)

	if err := s.store.Save(ctx, Collection, doc); err != nil {
		return nil, fmt.Errorf("save orders: %w", err)
	}
	return &order, nil
}

// UpdateOrder merges the supplied fields into an existing order. The first
// transition to shipped or delivered stamps the corresponding date; later
// transitions leave it untouched.
func (s *service) UpdateOrder(ctx context.Context, id string, params UpdateParams) (*Order, error) {
	doc := s.snapshot(ctx)
	idx := -1
	for i := range doc.Orders {
		if doc.Orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}

	o := &doc.Orders[idx]
	if params.CustomerID != nil {
		o.CustomerID = *params.CustomerID
	}
	if params.CustomerName != nil {
		o.CustomerName = *params.CustomerName
	}
	if params.CustomerEmail != nil {
		o.CustomerEmail = *params.CustomerEmail
	}
	if params.Items != nil {
		o.Items = params.Items
	}
	if params.Total != nil {
		o.Total = *params.Total
	}
	if params.PaymentStatus != nil {
		o.PaymentStatus = *params.PaymentStatus
	}
	if params.Status != nil {
		o.Status = *params.Status
		now := s.now().UTC()
		switch *params.Status {
		case StatusShipped:
			if o.ShippedDate == nil {
				o.ShippedDate = &now
			}
		case StatusDelivered:
			if o.DeliveredDate == nil {
				o.DeliveredDate = &now
			}
		}
	}

	if err := s.store.Save(ctx, Collection, doc); err != nil {
		return nil, fmt.Errorf("save orders: %w", err)
	}
	updated := *o
	return &updated, nil
}

// DeleteOrder removes an order by identifier and returns the removed record.
func (s *service) DeleteOrder(ctx context.Context, id string) (*Order, error) {
	doc := s.snapshot(ctx)
	idx := -1
	for i := range doc.Orders {
		if doc.Orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}

	deleted := doc.Orders[idx]
	doc.Orders = append(doc.Orders[:idx], doc.Orders[idx+1:]...)

	if err := s.store.Save(ctx, Collection, doc); err != nil {
		return nil, fmt.Errorf("save orders: %w", err)
	}
	return &deleted, nil
}
