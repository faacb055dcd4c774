// internal/orders/handler.go
package orders

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"storeadmin/internal/api"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts the orders endpoints.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.handleList)
	r.Post("/", h.handleCreate)
	r.Get("/{id}", h.handleGet)
	r.Put("/{id}", h.handleUpdate)
	r.Delete("/{id}", h.handleDelete)
	return r
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	params := ParamsFromQuery(r.URL.Query())
	result, err := h.service.ListOrders(r.Context(), params)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "Failed to fetch orders", err.Error())
		return
	}
	api.List(w, result, len(result))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "Order not found", "")
			return
		}
		api.Fail(w, http.StatusInternalServerError, "Failed to fetch order", err.Error())
		return
	}
	api.OK(w, order)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var params CreateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	order, err := h.service.CreateOrder(r.Context(), params)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "Failed to create order", err.Error())
		return
	}
	api.Created(w, order, "Order created successfully")
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var params UpdateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	order, err := h.service.UpdateOrder(r.Context(), chi.URLParam(r, "id"), params)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "Order not found", "")
			return
		}
		api.Fail(w, http.StatusInternalServerError, "Failed to update order", err.Error())
		return
	}
	api.OKWithMessage(w, order, "Order updated successfully")
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.DeleteOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "Order not found", "")
			return
		}
		api.Fail(w, http.StatusInternalServerError, "Failed to delete order", err.Error())
		return
	}
	api.OKWithMessage(w, order, "Order deleted successfully")
}
