// internal/products/implementation.go
package products

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

// service implements the Service interface over a collection store. Each call
// loads the whole products document, works on that snapshot, and for
// mutations writes the whole document back.
type service struct {
	store  store.Store
	tracer trace.Tracer
	now    func() time.Time
}

// NewService creates a new products service instance.
func NewService(s store.Store) Service {
	return &service{
		store:  s,
		tracer: otel.Tracer("storeadmin/products"),
		now:    time.Now,
	}
}

func (s *service) snapshot(ctx context.Context) Document {
	var doc Document
	s.store.Load(ctx, Collection, &doc)
	return doc
}

// ListProducts runs the query pipeline over the current snapshot.
func (s *service) ListProducts(ctx context.Context, params ListParams) ([]Product, error) {
	ctx, span := s.tracer.Start(ctx, "products.list",
		trace.WithAttributes(
			attribute.String("category", params.Category),
			attribute.String("sort", params.Sort),
		),
	)
	defer span.End()

	doc := s.snapshot(ctx)
	result := RunQuery(doc.Products, params)
	span.SetAttributes(attribute.Int("result.count", len(result)))
	return result, nil
}

// GetProduct returns the product with the given identifier.
func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	doc := s.snapshot(ctx)
	for i := range doc.Products {
		if doc.Products[i].ID == id {
			p := doc.Products[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// CreateProduct appends a new product with a server-assigned identifier and
// timestamps.
func (s *service) CreateProduct(ctx context.Context, params CreateParams) (*Product, error) {
	doc := s.snapshot(ctx)
	now := s.now().UTC()
	product := Product{
		ID:          uuid.New().String(),
		Name:        params.Name,
		Title:       params.Title,
		Price:       params.Price,
		Image:       params.Image,
		Category:    params.Category,
		Featured:    params.Featured,
		Location:    params.Location,
		Rating:      params.Rating,
		Reviews:     params.Reviews,
		Orders:      params.Orders,
		Rank:        params.Rank,
		Stock:       params.Stock,
		Description: params.Description,
		SKU:         params.SKU,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	doc.Products = append(doc.Products, product)

	if err := s.store.Save(ctx, Collection, doc); err != nil {
		return nil, fmt.Errorf("save products: %w", err)
	}
	return &product, nil
}

// UpdateProduct merges the supplied fields into an existing product and
// refreshes its UpdatedAt timestamp. CreatedAt is never touched.
func (s *service) UpdateProduct(ctx context.Context, id string, params UpdateParams) (*Product, error) {
	doc := s.snapshot(ctx)
	idx := -1
	for i := range doc.Products {
		if doc.Products[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}

	p := &doc.Products[idx]
	applyUpdate(p, params)
	p.UpdatedAt = s.now().UTC()

	if err := s.store.Save(ctx, Collection, doc); err != nil {
		return nil, fmt.Errorf("save products: %w", err)
	}
	updated := *p
	return &updated, nil
}

func applyUpdate(p *Product, params UpdateParams) {
	if params.Name != nil {
		p.Name = *params.Name
	}
	if params.Title != nil {
		p.Title = *params.Title
	}
	if params.Price != nil {
		p.Price = *params.Price
	}
	if params.Image != nil {
		p.Image = *params.Image
	}
	if params.Category != nil {
		p.Category = *params.Category
	}
	if params.Featured != nil {
		p.Featured = *params.Featured
	}
	if params.Location != nil {
		p.Location = params.Location
	}
	if params.Rating != nil {
		p.Rating = *params.Rating
	}
	if params.Reviews != nil {
		p.Reviews = *params.Reviews
	}
	if params.Orders != nil {
		p.Orders = *params.Orders
	}
	if params.Rank != nil {
		p.Rank = *params.Rank
	}
	if params.Stock != nil {
		p.Stock = *params.Stock
	}
	if params.Description != nil {
		p.Description = *params.Description
	}
	if params.SKU != nil {
		p.SKU = *params.SKU
	}
}

// DeleteProduct removes a product by identifier and returns the removed
// record.
func (s *service) DeleteProduct(ctx context.Context, id string) (*Product, error) {
	doc := s.snapshot(ctx)
	idx := -1
	for i := range doc.Products {
		if doc.Products[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}

	deleted := doc.Products[idx]
	doc.Products = append(doc.Products[:idx], doc.Products[idx+1:]...)

	if err := s.store.Save(ctx, Collection, doc); err != nil {
		return nil, fmt.Errorf("save products: %w", err)
	}
	return &deleted, nil
}
