// internal/customers/service.go
package customers

import (
	"context"
)

// Service defines the interface for the customers service.
type Service interface {
	ListCustomers(ctx context.Context, params ListParams) ([]Customer, error)
	GetCustomer(ctx context.Context, id string) (*Customer, error)
	CreateCustomer(ctx context.Context, params CreateParams) (*Customer, error)
	UpdateCustomer(ctx context.Context, id string, params UpdateParams) (*Customer, error)
	DeleteCustomer(ctx context.Context, id string) (*Customer, error)
}
