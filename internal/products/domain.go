// internal/products/domain.go
package products

import (
	"errors"
	"time"
)

// Collection is the store document name for products.
const Collection = "products"

// ErrNotFound is returned when no product matches the requested identifier.
var ErrNotFound = errors.New("product not found")

// Location is an optional point of origin attached to a product.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

// Product is one catalog entry. Identifiers are opaque strings, unique within
// the collection. CreatedAt is immutable; UpdatedAt is refreshed on every
// mutation. Orders counts units sold and drives popularity ranking.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Title       string    `json:"title,omitempty"`
	Price       float64   `json:"price"`
	Image       string    `json:"image,omitempty"`
	Category    string    `json:"category"`
	Featured    bool      `json:"featured"`
	Location    *Location `json:"location,omitempty"`
	Rating      float64   `json:"rating,omitempty"`
	Reviews     int       `json:"reviews,omitempty"`
	Orders      int       `json:"orders"`
	Rank        int       `json:"rank,omitempty"`
	Stock       int       `json:"stock"`
	Description string    `json:"description,omitempty"`
	SKU         string    `json:"sku,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Document is the persisted shape of the products collection.
type Document struct {
	Products []Product `json:"products"`
}

// CreateParams carries the caller-supplied fields of a new product. The
// server assigns the identifier and both timestamps.
type CreateParams struct {
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	Featured    bool      `json:"featured"`
	Location    *Location `json:"location"`
	Rating      float64   `json:"rating"`
	Reviews     int       `json:"reviews"`
	Orders      int       `json:"orders"`
	Rank        int       `json:"rank"`
	Stock       int       `json:"stock"`
	Description string    `json:"description"`
	SKU         string    `json:"sku"`
}

// UpdateParams carries a partial update; nil fields are left untouched.
type UpdateParams struct {
	Name        *string   `json:"name"`
	Title       *string   `json:"title"`
	Price       *float64  `json:"price"`
	Image       *string   `json:"image"`
	Category    *string   `json:"category"`
	Featured    *bool     `json:"featured"`
	Location    *Location `json:"location"`
	Rating      *float64  `json:"rating"`
	Reviews     *int      `json:"reviews"`
	Orders      *int      `json:"orders"`
	Rank        *int      `json:"rank"`
	Stock       *int      `json:"stock"`
	Description *string   `json:"description"`
	SKU         *string   `json:"sku"`
}
