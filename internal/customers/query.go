// internal/customers/query.go
package customers

import (
	"net/url"
	"sort"
	"strings"

	"storeadmin/internal/query"
)

// ListParams are the recognized query parameters for the customers collection.
type ListParams struct {
	Status string
	Search string
	Sort   string
}

// ParamsFromQuery extracts ListParams from a query string.
func ParamsFromQuery(q url.Values) ListParams {
	return ListParams{
		Status: q.Get("status"),
		Search: q.Get("search"),
		Sort:   q.Get("sort"),
	}
}

// RunQuery applies the filter-search-sort pipeline to a snapshot of the
// customers collection. It never mutates records. Name and email are matched
// case-insensitively; phone is a literal substring match on the raw search
// term. Unknown or absent sort keys preserve the snapshot's original order.
func RunQuery(records []Customer, p ListParams) []Customer {
	out := make([]Customer, 0, len(records))
	search := strings.ToLower(p.Search)
	for _, r := range records {
		if p.Status != "" && r.Status != p.Status {
			continue
		}
		if p.Search != "" &&
			!strings.Contains(strings.ToLower(r.Name), search) &&
			!strings.Contains(strings.ToLower(r.Email), search) &&
			!strings.Contains(r.Phone, p.Search) {
			continue
		}
		out = append(out, r)
	}
	sortCustomers(out, p.Sort)
	return out
}

func sortCustomers(items []Customer, key string) {
	switch key {
	case "name_asc":
		c := query.NewCollator()
		sort.SliceStable(items, func(i, j int) bool { return c.CompareString(items[i].Name, items[j].Name) < 0 })
	case "name_desc":
		c := query.NewCollator()
		sort.SliceStable(items, func(i, j int) bool { return c.CompareString(items[i].Name, items[j].Name) > 0 })
	case "orders_desc":
		sort.SliceStable(items, func(i, j int) bool { return items[i].TotalOrders > items[j].TotalOrders })
	case "spent_desc":
		sort.SliceStable(items, func(i, j int) bool { return items[i].TotalSpent > items[j].TotalSpent })
	case "newest":
		sort.SliceStable(items, func(i, j int) bool { return items[i].JoinDate.After(items[j].JoinDate) })
	}
}
