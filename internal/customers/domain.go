// internal/customers/domain.go
package customers

import (
	"errors"
	"time"
)

// Collection is the store document name for customers.
const Collection = "customers"

// ErrNotFound is returned when no customer matches the requested identifier.
var ErrNotFound = errors.New("customer not found")

// Customer is one storefront account. JoinDate is set at creation and never
// changes. TotalOrders and TotalSpent are rollup fields supplied by callers
// on update; they are never recomputed from the orders collection.
type Customer struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Status      string    `json:"status"`
	TotalOrders int       `json:"totalOrders"`
	TotalSpent  float64   `json:"totalSpent"`
	JoinDate    time.Time `json:"joinDate"`
}

// Document is the persisted shape of the customers collection.
type Document struct {
	Customers []Customer `json:"customers"`
}

// CreateParams carries the caller-supplied fields of a new customer. The
// server assigns the identifier and join date, zeroes both rollup fields, and
// forces status to "active".
type CreateParams struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// UpdateParams carries a partial update; nil fields are left untouched. The
// rollup fields are whatever the caller supplies.
type UpdateParams struct {
	Name        *string  `json:"name"`
	Email       *string  `json:"email"`
	Phone       *string  `json:"phone"`
	Status      *string  `json:"status"`
	TotalOrders *int     `json:"totalOrders"`
	TotalSpent  *float64 `json:"totalSpent"`
}
