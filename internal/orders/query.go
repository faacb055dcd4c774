// internal/orders/query.go
package orders

import (
	"net/url"
	"sort"
	"strings"

	"storeadmin/internal/query"
)

// ListParams are the recognized query parameters for the orders collection.
type ListParams struct {
	Status     string
	CustomerID string
	Search     string
	Sort       string
	Limit      int
}

// ParamsFromQuery extracts ListParams from a query string. A malformed or
// non-positive limit means no truncation.
func ParamsFromQuery(q url.Values) ListParams {
	return ListParams{
		Status:     q.Get("status"),
		CustomerID: q.Get("customerId"),
		Search:     q.Get("search"),
		Sort:       q.Get("sort"),
		Limit:      query.Limit(q.Get("limit")),
	}
}

// RunQuery applies the filter-search-sort-limit pipeline to a snapshot of the
// orders collection. It never mutates records. An absent sort key defaults to
// date_desc; an unrecognized one preserves the snapshot's original order.
func RunQuery(records []Order, p ListParams) []Order {
	out := make([]Order, 0, len(records))
	search := strings.ToLower(p.Search)
	for _, r := range records {
		if p.Status != "" && r.Status != p.Status {
			continue
		}
		if p.CustomerID != "" && r.CustomerID != p.CustomerID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(r.OrderNumber), search) &&
			!strings.Contains(strings.ToLower(r.CustomerName), search) &&
			!strings.Contains(strings.ToLower(r.CustomerEmail), search) {
			continue
		}
		out = append(out, r)
	}

	sortOrders(out, p.Sort)

	if p.Limit > 0 && p.Limit < len(out) {
		out = out[:p.Limit]
	}
	return out
}

func sortOrders(items []Order, key string) {
	switch key {
	case "":
		// Default: most recent first.
		sort.SliceStable(items, func(i, j int) bool { return items[i].OrderDate.After(items[j].OrderDate) })
	case "date_desc":
		sort.SliceStable(items, func(i, j int) bool { return items[i].OrderDate.After(items[j].OrderDate) })
	case "date_asc":
		sort.SliceStable(items, func(i, j int) bool { return items[i].OrderDate.Before(items[j].OrderDate) })
	case "total_desc":
		sort.SliceStable(items, func(i, j int) bool { return items[i].Total > items[j].Total })
	case "total_asc":
		sort.SliceStable(items, func(i, j int) bool { return items[i].Total < items[j].Total })
	}
}
