// internal/orders/domain.go
package orders

import (
	"errors"
	"time"
)

// Collection is the store document name for orders.
const Collection = "orders"

// ErrNotFound is returned when no order matches the requested identifier.
var ErrNotFound = errors.New("order not found")

// Order statuses counted by the dashboard histogram.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// Item is one order line.
type Item struct {
	ProductID string  `json:"productId,omitempty"`
	Name      string  `json:"name,omitempty"`
	Quantity  int     `json:"quantity,omitempty"`
	Price     float64 `json:"price,omitempty"`
}

// Order is one placed order. OrderDate is set at creation and never changes.
// ShippedDate and DeliveredDate are stamped once, the first time the status
// transitions to the corresponding value. The order number is sequential per
// year and derived from the collection size at creation time, so deleting an
// order frees its number for reuse.
type Order struct {
	ID            string     `json:"id"`
	OrderNumber   string     `json:"orderNumber"`
	CustomerID    string     `json:"customerId"`
	CustomerName  string     `json:"customerName"`
	CustomerEmail string     `json:"customerEmail"`
	Items         []Item     `json:"items"`
	Total         float64    `json:"total"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"paymentStatus"`
	OrderDate     time.Time  `json:"orderDate"`
	ShippedDate   *time.Time `json:"shippedDate,omitempty"`
	DeliveredDate *time.Time `json:"deliveredDate,omitempty"`
}

// Document is the persisted shape of the orders collection.
type Document struct {
	Orders []Order `json:"orders"`
}

// CreateParams carries the caller-supplied fields of a new order. The server
// assigns the identifier, order number, and order date; status and payment
// status default to pending when empty.
type CreateParams struct {
	CustomerID    string  `json:"customerId"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	Items         []Item  `json:"items"`
	Total         float64 `json:"total"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
}

// UpdateParams carries a partial update; nil fields are left untouched.
type UpdateParams struct {
	CustomerID    *string  `json:"customerId"`
	CustomerName  *string  `json:"customerName"`
	CustomerEmail *string  `json:"customerEmail"`
	Items         []Item   `json:"items"`
	Total         *float64 `json:"total"`
	Status        *string  `json:"status"`
	PaymentStatus *string  `json:"paymentStatus"`
}
