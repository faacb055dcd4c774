// internal/customers/handler.go
package customers

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

// Routes mounts the customers endpoints.
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
	result, err := h.service.ListCustomers(r.Context(), params)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "Failed to fetch customers", err.Error())
		return
	}
	api.List(w, result, len(result))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	customer, err := h.service.GetCustomer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "Customer not found", "")
			return
		}
		api.Fail(w, http.StatusInternalServerError, "Failed to fetch customer", err.Error())
		return
	}
	api.OK(w, customer)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var params CreateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	customer, err := h.service.CreateCustomer(r.Context(), params)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "Failed to create customer", err.Error())
		return
	}
	api.Created(w, customer, "Customer created successfully")
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var params UpdateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	customer, err := h.service.UpdateCustomer(r.Context(), chi.URLParam(r, "id"), params)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "Customer not found", "")
			return
		}
		api.Fail(w, http.StatusInternalServerError, "Failed to update customer", err.Error())
		return
	}
	api.OKWithMessage(w, customer, "Customer updated successfully")
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	customer, err := h.service.DeleteCustomer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "Customer not found", "")
			return
		}
		api.Fail(w, http.StatusInternalServerError, "Failed to delete customer", err.Error())
		return
	}
	api.OKWithMessage(w, customer, "Customer deleted successfully")
}
