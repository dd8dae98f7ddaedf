package rest

import (
	"net/http"

	"github.com/abgdnv/gocatalog/internal/service"
	"github.com/abgdnv/gocatalog/pkg/web"
)

// FindAllProducts retrieves all products with their stores.
func (h *Handler) FindAllProducts(w http.ResponseWriter, r *http.Request) {
	list, err := h.products.FindAll(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err, "Failed to fetch products")
		return
	}
	h.logger.DebugContext(r.Context(), "Successfully retrieved product list", "count", len(list))
	web.RespondJSON(w, h.logger, http.StatusOK, list)
}

// FindProductByID retrieves a product by its ID.
func (h *Handler) FindProductByID(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseUUIDParam(w, r, h.logger, "productID")
	if !ok {
		return
	}
	found, err := h.products.FindByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err, "Failed to retrieve product", "productID", id)
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, found)
}

// CreateProduct handles the creation of a new product.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var dto service.ProductCreateDto
	if !h.decodeAndValidate(w, r, &dto) {
		return
	}
	created, err := h.products.Create(r.Context(), dto)
	if err != nil {
		h.respondServiceError(w, r, err, "Failed to create product")
		return
	}
	h.logger.InfoContext(r.Context(), "Product created successfully", "productID", created.ID, "name", created.Name)
	web.RespondJSON(w, h.logger, http.StatusCreated, created)
}

// UpdateProduct overwrites the fields present in the body.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseUUIDParam(w, r, h.logger, "productID")
	if !ok {
		return
	}
	var patch service.ProductPatchDto
	if !h.decodeAndValidate(w, r, &patch) {
		return
	}
	updated, err := h.products.Update(r.Context(), id, patch)
	if err != nil {
		h.respondServiceError(w, r, err, "Failed to update product", "productID", id)
		return
	}
	h.logger.InfoContext(r.Context(), "Product updated successfully", "productID", updated.ID)
	web.RespondJSON(w, h.logger, http.StatusOK, updated)
}

// DeleteProduct deletes a product by its ID.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseUUIDParam(w, r, h.logger, "productID")
	if !ok {
		return
	}
	if err := h.products.DeleteByID(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err, "Failed to delete product", "productID", id)
		return
	}
	h.logger.InfoContext(r.Context(), "Product deleted successfully", "productID", id)
	w.WriteHeader(http.StatusNoContent)
}
