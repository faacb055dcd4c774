// internal/orders/service.go
package orders

import (
	"context"
)

// Service defines the interface for the orders service.
type Service interface {
	ListOrders(ctx context.Context, params ListParams) ([]Order, error)
	GetOrder(ctx context.Context, id string) (*Order, error)
	CreateOrder(ctx context.Context, params CreateParams) (*Order, error)
	UpdateOrder(ctx context.Context, id string, params UpdateParams) (*Order, error)
	DeleteOrder(ctx context.Context, id string) (*Order, error)
}
