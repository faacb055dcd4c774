// internal/products/service.go
package products

import (
	"context"
)

// Service defines the interface for the products service.
type Service interface {
	ListProducts(ctx context.Context, params ListParams) ([]Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	CreateProduct(ctx context.Context, params CreateParams) (*Product, error)
	UpdateProduct(ctx context.Context, id string, params UpdateParams) (*Product, error)
	DeleteProduct(ctx context.Context, id string) (*Product, error)
}
