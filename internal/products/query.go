// internal/products/query.go
package products

import (
	"net/url"
	"sort"
	"strings"

	"storeadmin/internal/query"
)

// CategoryAll is the sentinel category value meaning "no category filter".
const CategoryAll = "All"

// ListParams are the recognized query parameters for the products collection.
type ListParams struct {
	Category string
	Featured string
	Search   string
	MinPrice *float64
	MaxPrice *float64
	Sort     string
}

// ParamsFromQuery extracts ListParams from a query string. Malformed numeric
// values are treated as absent, never as errors.
func ParamsFromQuery(q url.Values) ListParams {
	return ListParams{
		Category: q.Get("category"),
		Featured: q.Get("featured"),
		Search:   q.Get("search"),
		MinPrice: query.Float(q.Get("minPrice")),
		MaxPrice: query.Float(q.Get("maxPrice")),
		Sort:     q.Get("sort"),
	}
}

// RunQuery applies the filter-search-range-sort pipeline to a snapshot of the
// products collection. It never mutates records; the result is always a fresh
// slice. Unknown or absent sort keys preserve the snapshot's original order.
func RunQuery(records []Product, p ListParams) []Product {
	out := make([]Product, 0, len(records))
	search := strings.ToLower(p.Search)
	for _, r := range records {
		if p.Category != "" && p.Category != CategoryAll && r.Category != p.Category {
			continue
		}
		if p.Featured == "true" && !r.Featured {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(r.Name), search) &&
			!strings.Contains(strings.ToLower(r.Category), search) &&
			!strings.Contains(strings.ToLower(r.Description), search) {
			continue
		}
		if p.MinPrice != nil && r.Price < *p.MinPrice {
			continue
		}
		if p.MaxPrice != nil && r.Price > *p.MaxPrice {
			continue
		}
		out = append(out, r)
	}
	sortProducts(out, p.Sort)
	return out
}

func sortProducts(items []Product, key string) {
	switch key {
	case "price_asc":
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	case "price_desc":
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	case "name_asc":
		c := query.NewCollator()
		sort.SliceStable(items, func(i, j int) bool { return c.CompareString(items[i].Name, items[j].Name) < 0 })
	case "name_desc":
		c := query.NewCollator()
		sort.SliceStable(items, func(i, j int) bool { return c.CompareString(items[i].Name, items[j].Name) > 0 })
	case "newest":
		sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	case "orders_desc":
		sort.SliceStable(items, func(i, j int) bool { return items[i].Orders > items[j].Orders })
	}
}
