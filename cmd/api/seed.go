// cmd/api/seed.go
package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"storeadmin/internal/customers"
	"storeadmin/internal/orders"
	"storeadmin/internal/products"
	"storeadmin/internal/store"
)

// sampleProducts is the starter catalog written on first boot.
var sampleProducts = []products.Product{
	{
		ID:       "1",
		Name:     "Premium Laptop",
		Title:    "Premium Laptop",
		Price:    1240,
		Image:    "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=400&h=300&fit=crop",
		Category: "Electronics",
		Featured: true,
		Location: &products.Location{
			Lat:     40.7128,
			Lng:     -74.0060,
			Address: "New York, NY",
		},
		Rating:      4.5,
		Reviews:     128,
		Orders:      1250,
		Rank:        1,
		Stock:       45,
		Description: "High-performance laptop for professionals",
		SKU:         "LAP-001",
		CreatedAt:   time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2024, time.July, 31, 10, 30, 0, 0, time.UTC),
	},
	{
		ID:       "2",
		Name:     "Designer Handbag",
		Title:    "Designer Handbag",
		Price:    899,
		Image:    "https://images.unsplash.com/photo-1584917865442-de89df76afd3?w=400&h=300&fit=crop",
		Category: "Fashion",
		Featured: true,
		Location: &products.Location{
			Lat:     40.7589,
			Lng:     -73.9851,
			Address: "Manhattan, NY",
		},
		Rating:      4.8,
		Reviews:     89,
		Orders:      980,
		Rank:        2,
		Stock:       23,
		Description: "Luxury designer handbag made from premium materials",
		SKU:         "BAG-002",
		CreatedAt:   time.Date(2024, time.February, 10, 14, 20, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2024, time.July, 31, 14, 20, 0, 0, time.UTC),
	},
	{
		ID:       "3",
		Name:     "Wireless Headphones",
		Title:    "Wireless Headphones",
		Price:    299,
		Image:    "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=300&fit=crop",
		Category: "Electronics",
		Featured: false,
		Location: &products.Location{
			Lat:     40.7282,
			Lng:     -73.7949,
			Address: "Queens, NY",
		},
		Rating:      4.2,
		Reviews:     98,
		Orders:      312,
		Rank:        6,
		Stock:       89,
		Description: "Premium wireless headphones with noise cancellation",
		SKU:         "HDP-006",
		CreatedAt:   time.Date(2024, time.June, 22, 8, 20, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2024, time.July, 31, 8, 20, 0, 0, time.UTC),
	},
}

// seedData initializes empty collections: the sample catalog for products,
// empty documents for customers and orders.
func seedData(ctx context.Context, st store.Store, log *logrus.Logger) error {
	var prodDoc products.Document
	st.Load(ctx, products.Collection, &prodDoc)
	if len(prodDoc.Products) == 0 {
		prodDoc.Products = sampleProducts
		if err := st.Save(ctx, products.Collection, prodDoc); err != nil {
			return err
		}
		log.Info("seeded products collection with sample data")
	}

	var custDoc customers.Document
	st.Load(ctx, customers.Collection, &custDoc)
	if len(custDoc.Customers) == 0 {
		custDoc.Customers = []customers.Customer{}
		if err := st.Save(ctx, customers.Collection, custDoc); err != nil {
			return err
		}
	}

	var ordDoc orders.Document
	st.Load(ctx, orders.Collection, &ordDoc)
	if len(ordDoc.Orders) == 0 {
		ordDoc.Orders = []orders.Order{}
		if err := st.Save(ctx, orders.Collection, ordDoc); err != nil {
			return err
		}
	}

	return nil
}
