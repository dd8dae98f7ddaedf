package rest

import (
	"net/http"

	"github.com/abgdnv/gocatalog/internal/service"
	"github.com/abgdnv/gocatalog/pkg/web"
)

func (h *Handler) FindAllStores(w http.ResponseWriter, r *http.Request) {
	list, err := h.stores.FindAll(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err, "Failed to fetch stores")
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, list)
}

func (h *Handler) FindStoreByID(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseUUIDParam(w, r, h.logger, "storeID")
	if !ok {
		return
	}
	found, err := h.stores.FindByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err, "Failed to retrieve store", "storeID", id)
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, found)
}

func (h *Handler) CreateStore(w http.ResponseWriter, r *http.Request) {
	var dto service.StoreCreateDto
	if !h.decodeAndValidate(w, r, &dto) {
		return
	}
	created, err := h.stores.Create(r.Context(), dto)
	if err != nil {
		h.respondServiceError(w, r, err, "Failed to create store")
		return
	}
	h.logger.InfoContext(r.Context(), "Store created successfully", "storeID", created.ID, "name", created.Name)
	web.RespondJSON(w, h.logger, http.StatusCreated, created)
}

func (h *Handler) UpdateStore(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseUUIDParam(w, r, h.logger, "storeID")
	if !ok {
		return
	}
	var patch service.StorePatchDto
	if !h.decodeAndValidate(w, r, &patch) {
		return
	}
	updated, err := h.stores.Update(r.Context(), id, patch)
	if err != nil {
		h.respondServiceError(w, r, err, "Failed to update store", "storeID", id)
		return
	}
	h.logger.InfoContext(r.Context(), "Store updated successfully", "storeID", updated.ID)
	web.RespondJSON(w, h.logger, http.StatusOK, updated)
}

func (h *Handler) DeleteStore(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseUUIDParam(w, r, h.logger, "storeID")
	if !ok {
		return
	}
	if err := h.stores.DeleteByID(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err, "Failed to delete store", "storeID", id)
		return
	}
	h.logger.InfoContext(r.Context(), "Store deleted successfully", "storeID", id)
	w.WriteHeader(http.StatusNoContent)
}
