// internal/dashboard/handler.go
package dashboard

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"storeadmin/internal/api"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts the dashboard endpoints.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/stats", h.handleStats)
	r.Get("/chart-data", h.handleChartData)
	r.Get("/recent-orders", h.handleRecentOrders)
	r.Get("/popular-products", h.handlePopularProducts)
	return r
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "Failed to fetch dashboard stats", err.Error())
		return
	}
	api.OK(w, stats)
}

func (h *Handler) handleChartData(w http.ResponseWriter, r *http.Request) {
	charts, err := h.service.ChartData(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "Failed to fetch chart data", err.Error())
		return
	}
	api.OK(w, charts)
}

func (h *Handler) handleRecentOrders(w http.ResponseWriter, r *http.Request) {
	limit := limitParam(r, DefaultRecentOrdersLimit)
	recent, err := h.service.RecentOrders(r.Context(), limit)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "Failed to fetch recent orders", err.Error())
		return
	}
	api.OK(w, recent)
}

func (h *Handler) handlePopularProducts(w http.ResponseWriter, r *http.Request) {
	limit := limitParam(r, DefaultPopularProductsLimit)
	popular, err := h.service.PopularProducts(r.Context(), limit)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "Failed to fetch popular products", err.Error())
		return
	}
	api.OK(w, popular)
}

// limitParam resolves the limit query parameter. The default applies only
// when the parameter is omitted or malformed; an explicit zero stands.
func limitParam(r *http.Request, def int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}
