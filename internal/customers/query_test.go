// internal/customers/query_test.go
package customers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func sampleCustomers() []Customer {
	return []Customer{
		{ID: "1", Name: "Alice Johnson", Email: "alice@example.com", Phone: "+1-555-0101", Status: "active", TotalOrders: 12, TotalSpent: 450.50, JoinDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		{ID: "2", Name: "Bob Smith", Email: "bob@shop.org", Phone: "+1-555-0202", Status: "inactive", TotalOrders: 3, TotalSpent: 89.99, JoinDate: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)},
		{ID: "3", Name: "Carla Diaz", Email: "CARLA@Example.COM", Phone: "+44-20-7946", Status: "active", TotalOrders: 30, TotalSpent: 1200, JoinDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
	}
}

func TestRunQueryEmailSearchCaseInsensitive(t *testing.T) {
	result := RunQuery(sampleCustomers(), ListParams{Search: "example.com"})

	require.Len(t, result, 2)
	assert.Equal(t, "1", result[0].ID)
	assert.Equal(t, "3", result[1].ID)
}

func TestRunQueryPhoneSearchIsLiteral(t *testing.T) {
	customers := sampleCustomers()

	require.Len(t, RunQuery(customers, ListParams{Search: "555-0202"}), 1)
	assert.Empty(t, RunQuery(customers, ListParams{Search: "555-9999"}))
}

func TestRunQueryStatusFilter(t *testing.T) {
	result := RunQuery(sampleCustomers(), ListParams{Status: "active"})

	require.Len(t, result, 2)
	for _, c := range result {
		assert.Equal(t, "active", c.Status)
	}
}

func TestRunQuerySpentDescending(t *testing.T) {
	result := RunQuery(sampleCustomers(), ListParams{Sort: "spent_desc"})

	require.Len(t, result, 3)
	assert.Equal(t, []string{"3", "1", "2"}, []string{result[0].ID, result[1].ID, result[2].ID})
}

func TestRunQueryNewestByJoinDate(t *testing.T) {
	result := RunQuery(sampleCustomers(), ListParams{Sort: "newest"})

	require.Len(t, result, 3)
	assert.Equal(t, "2", result[0].ID)
}

func TestRunQueryAbsentSortPreservesOrder(t *testing.T) {
	customers := sampleCustomers()
	result := RunQuery(customers, ListParams{})

	require.Len(t, result, 3)
	for i := range customers {
		assert.Equal(t, customers[i].ID, result[i].ID)
	}
}

func TestRunQueryDoesNotMutateSnapshot(t *testing.T) {
	customers := sampleCustomers()
	original := make([]Customer, len(customers))
	copy(original, customers)

	RunQuery(customers, ListParams{Sort: "name_desc", Status: "active"})
	assert.Equal(t, original, customers)
}

func TestRunQueryIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		gen := rapid.Custom(func(t *rapid.T) Customer {
			return Customer{
				ID:          rapid.StringMatching(`[a-z0-9]{6}`).Draw(t, "id"),
				Name:        rapid.StringMatching(`[a-z]{1,8}`).Draw(t, "name"),
				Email:       rapid.StringMatching(`[a-z]{1,6}@[a-z]{3,6}\.com`).Draw(t, "email"),
				Phone:       rapid.StringMatching(`[0-9]{7}`).Draw(t, "phone"),
				Status:      rapid.SampledFrom([]string{"active", "inactive"}).Draw(t, "status"),
				TotalOrders: rapid.IntRange(0, 100).Draw(t, "totalOrders"),
				TotalSpent:  float64(rapid.IntRange(0, 100000).Draw(t, "totalSpent")) / 100,
			}
		})
		records := rapid.SliceOfN(gen, 0, 20).Draw(t, "records")
		params := ListParams{
			Status: rapid.SampledFrom([]string{"", "active", "inactive"}).Draw(t, "statusParam"),
			Search: rapid.StringMatching(`[a-z]{0,3}`).Draw(t, "search"),
			Sort:   rapid.SampledFrom([]string{"", "name_asc", "name_desc", "orders_desc", "spent_desc", "newest", "bogus"}).Draw(t, "sort"),
		}

		require.Equal(t, RunQuery(records, params), RunQuery(records, params))
	})
}
