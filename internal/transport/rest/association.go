package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/abgdnv/gocatalog/internal/service"
	"github.com/abgdnv/gocatalog/pkg/web"
	"github.com/google/uuid"
)

// parseAssociationIDs reads both path ids. The product id is parsed first.
func (h *Handler) parseAssociationIDs(w http.ResponseWriter, r *http.Request) (productID, storeID uuid.UUID, ok bool) {
	productID, ok = web.ParseUUIDParam(w, r, h.logger, "productID")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	storeID, ok = web.ParseUUIDParam(w, r, h.logger, "storeID")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return productID, storeID, true
}

// AddStoreToProduct associates a store with a product and returns the product.
func (h *Handler) AddStoreToProduct(w http.ResponseWriter, r *http.Request) {
	productID, storeID, ok := h.parseAssociationIDs(w, r)
	if !ok {
		return
	}
	updated, err := h.associations.AddStoreToProduct(r.Context(), productID, storeID)
	if err != nil {
		h.respondServiceError(w, r, err, "Failed to add store to product", "productID", productID, "storeID", storeID)
		return
	}
	h.logger.InfoContext(r.Context(), "Store added to product", "productID", productID, "storeID", storeID)
	web.RespondJSON(w, h.logger, http.StatusOK, updated)
}

func (h *Handler) FindStoresFromProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := web.ParseUUIDParam(w, r, h.logger, "productID")
	if !ok {
		return
	}
	stores, err := h.associations.FindStoresFromProduct(r.Context(), productID)
	if err != nil {
		h.respondServiceError(w, r, err, "Failed to retrieve product stores", "productID", productID)
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, stores)
}

func (h *Handler) FindStoreFromProduct(w http.ResponseWriter, r *http.Request) {
	productID, storeID, ok := h.parseAssociationIDs(w, r)
	if !ok {
		return
	}
	found, err := h.associations.FindStoreFromProduct(r.Context(), productID, storeID)
	if err != nil {
		h.respondServiceError(w, r, err, "Failed to retrieve product store", "productID", productID, "storeID", storeID)
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, found)
}

// UpdateStoresFromProduct replaces the product's stores with the body's list of store references.
func (h *Handler) UpdateStoresFromProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := web.ParseUUIDParam(w, r, h.logger, "productID")
	if !ok {
		return
	}
	var refs []service.StoreRefDto
	if err := json.NewDecoder(r.Body).Decode(&refs); err != nil {
		h.logger.WarnContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	storeIDs := make([]uuid.UUID, 0, len(refs))
	for i, ref := range refs {
		if err := h.validate.Struct(ref); err != nil {
			h.respondValidationError(w, r, err, fmt.Sprintf("[%d].", i))
			return
		}
		id, err := uuid.Parse(ref.ID)
		if err != nil {
			web.RespondError(w, h.logger, http.StatusBadRequest, fmt.Sprintf("Invalid ID: %s", ref.ID))
			return
		}
		storeIDs = append(storeIDs, id)
	}

	updated, err := h.associations.UpdateStoresFromProduct(r.Context(), productID, storeIDs)
	if err != nil {
		h.respondServiceError(w, r, err, "Failed to update product stores", "productID", productID)
		return
	}
	h.logger.InfoContext(r.Context(), "Product stores replaced", "productID", productID, "count", len(updated.Stores))
	web.RespondJSON(w, h.logger, http.StatusOK, updated)
}

func (h *Handler) DeleteStoreFromProduct(w http.ResponseWriter, r *http.Request) {
	productID, storeID, ok := h.parseAssociationIDs(w, r)
	if !ok {
		return
	}
	if err := h.associations.DeleteStoreFromProduct(r.Context(), productID, storeID); err != nil {
		h.respondServiceError(w, r, err, "Failed to delete store from product", "productID", productID, "storeID", storeID)
		return
	}
	h.logger.InfoContext(r.Context(), "Store removed from product", "productID", productID, "storeID", storeID)
	w.WriteHeader(http.StatusNoContent)
}
