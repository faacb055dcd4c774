// internal/customers/implementation.go
package customers

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

// NewService creates a new customers service instance.
func NewService(s store.Store) Service {
	return &service{
		store:  s,
		tracer: otel.Tracer("storeadmin/customers"),
		now:    time.Now,
	}
}

func (s *service) snapshot(ctx context.Context) Document {
	var doc Document
	s.store.Load(ctx, Collection, &doc)
	return doc
}

// ListCustomers runs the query pipeline over the current snapshot.
func (s *service) ListCustomers(ctx context.Context, params ListParams) ([]Customer, error) {
	ctx, span := s.tracer.Start(ctx, "customers.list",
		trace.WithAttributes(
			attribute.String("status", params.Status),
			attribute.String("sort", params.Sort),
		),
	)
	defer span.End()

	doc := s.snapshot(ctx)
	result := RunQuery(doc.Customers, params)
	span.SetAttributes(attribute.Int("result.count", len(result)))
	return result, nil
}

// GetCustomer returns the customer with the given identifier.
func (s *service) GetCustomer(ctx context.Context, id string) (*Customer, error) {
	doc := s.snapshot(ctx)
	for i := range doc.Customers {
		if doc.Customers[i].ID == id {
			c := doc.Customers[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

// CreateCustomer appends a new customer with zeroed rollup fields, an active
// status, and a server-assigned identifier and join date.
func (s *service) CreateCustomer(ctx context.Context, params CreateParams) (*Customer, error) {
	doc := s.snapshot(ctx)
	customer := Customer{
		ID:          uuid.New().String(),
		Name:        params.Name,
		Email:       params.Email,
		Phone:       params.Phone,
		Status:      "active",
		TotalOrders: 0,
		TotalSpent:  0,
		JoinDate:    s.now().UTC(),
	}
	doc.Customers = append(doc.Customers, customer)

	if err := s.store.Save(ctx, Collection, doc); err != nil {
		return nil, fmt.Errorf("save customers: %w", err)
	}
	return &customer, nil
}

// UpdateCustomer merges the supplied fields into an existing customer.
// JoinDate is immutable; the rollup fields are taken as given.
func (s *service) UpdateCustomer(ctx context.Context, id string, params UpdateParams) (*Customer, error) {
	doc := s.snapshot(ctx)
	idx := -1
	for i := range doc.Customers {
		if doc.Customers[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}

	c := &doc.Customers[idx]
	if params.Name != nil {
		c.Name = *params.Name
	}
	if params.Email != nil {
		c.Email = *params.Email
	}
	if params.Phone != nil {
		c.Phone = *params.Phone
	}
	if params.Status != nil {
		c.Status = *params.Status
	}
	if params.TotalOrders != nil {
		c.TotalOrders = *params.TotalOrders
	}
	if params.TotalSpent != nil {
		c.TotalSpent = *params.TotalSpent
	}

	if err := s.store.Save(ctx, Collection, doc); err != nil {
		return nil, fmt.Errorf("save customers: %w", err)
	}
	updated := *c
	return &updated, nil
}

// DeleteCustomer removes a customer by identifier and returns the removed
// record.
func (s *service) DeleteCustomer(ctx context.Context, id string) (*Customer, error) {
	doc := s.snapshot(ctx)
	idx := -1
	for i := range doc.Customers {
		if doc.Customers[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}

	deleted := doc.Customers[idx]
	doc.Customers = append(doc.Customers[:idx], doc.Customers[idx+1:]...)

	if err := s.store.Save(ctx, Collection, doc); err != nil {
		return nil, fmt.Errorf("save customers: %w", err)
	}
	return &deleted, nil
}
