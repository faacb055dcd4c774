// internal/products/handler.go
package products

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

// Routes mounts the products endpoints.
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
	result, err := h.service.ListProducts(r.Context(), params)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "Failed to fetch products", err.Error())
		return
	}
	api.List(w, result, len(result))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "Product not found", "")
			return
		}
		api.Fail(w, http.StatusInternalServerError, "Failed to fetch product", err.Error())
		return
	}
	api.OK(w, product)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var params CreateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	product, err := h.service.CreateProduct(r.Context(), params)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "Failed to create product", err.Error())
		return
	}
	api.Created(w, product, "Product created successfully")
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var params UpdateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), chi.URLParam(r, "id"), params)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "Product not found", "")
			return
		}
		api.Fail(w, http.StatusInternalServerError, "Failed to update product", err.Error())
		return
	}
	api.OKWithMessage(w, product, "Product updated successfully")
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.DeleteProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "Product not found", "")
			return
		}
		api.Fail(w, http.StatusInternalServerError, "Failed to delete product", err.Error())
		return
	}
	api.OKWithMessage(w, product, "Product deleted successfully")
}
