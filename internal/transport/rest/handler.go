// Package rest provides HTTP handlers for the catalog: products, stores and their associations.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	catalogerrors "github.com/abgdnv/gocatalog/internal/errors"
	"github.com/abgdnv/gocatalog/internal/service"
	"github.com/abgdnv/gocatalog/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	products     service.ProductService
	stores       service.StoreService
	associations service.AssociationService
	validate     *validator.Validate
	logger       *slog.Logger
}

// NewHandler creates a new Handler over the catalog services.
func NewHandler(products service.ProductService, stores service.StoreService, associations service.AssociationService, logger *slog.Logger) *Handler {
	return &Handler{
		products:     products,
		stores:       stores,
		associations: associations,
		validate:     validator.New(),
		logger:       logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes of the catalog.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.FindAllProducts)
			r.Post("/", h.CreateProduct)

			r.Route("/{productID}", func(r chi.Router) {
				r.Get("/", h.FindProductByID)
				r.Patch("/", h.UpdateProduct)
				r.Delete("/", h.DeleteProduct)

				r.Get("/stores", h.FindStoresFromProduct)
				r.Put("/stores", h.UpdateStoresFromProduct)
				r.Post("/stores/{storeID}", h.AddStoreToProduct)
				r.Get("/stores/{storeID}", h.FindStoreFromProduct)
				r.Delete("/stores/{storeID}", h.DeleteStoreFromProduct)
			})
		})

		r.Route("/stores", func(r chi.Router) {
			r.Get("/", h.FindAllStores)
			r.Post("/", h.CreateStore)

			r.Route("/{storeID}", func(r chi.Router) {
				r.Get("/", h.FindStoreByID)
				r.Patch("/", h.UpdateStore)
				r.Delete("/", h.DeleteStore)
			})
		})
	})

	r.Get("/healthz", h.HealthCheck)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// decodeAndValidate reads a JSON body into dst and validates it.
// On failure it writes the 400 response and returns false.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.WarnContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.respondValidationError(w, r, err, "")
		return false
	}
	return true
}

// respondValidationError writes the field errors of err, each key prefixed with prefix.
func (h *Handler) respondValidationError(w http.ResponseWriter, r *http.Request, err error, prefix string) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		errorResponse := make(map[string]string)
		for _, fieldErr := range validationErrors {
			// fieldErr.Tag() returns "required", "max", etc.
			errorResponse[prefix+fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
		}
		h.logger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
		web.RespondJSON(w, h.logger, http.StatusBadRequest, ValidationErrorResponse{ValidationErrors: errorResponse})
		return
	}
	h.logger.ErrorContext(r.Context(), "Error validating request body", "error", err)
	web.RespondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
}

// ValidationErrorResponse is the body of a 400 reply caused by field validation.
type ValidationErrorResponse struct {
	ValidationErrors map[string]string `json:"validation_errors"`
}

// respondServiceError maps a service error to its HTTP status. Business errors keep their message,
// anything else is logged and answered with failure.
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, err error, failure string, attrs ...any) {
	message, _ := catalogerrors.MessageOf(err)
	switch catalogerrors.KindOf(err) {
	case catalogerrors.KindNotFound:
		h.logger.WarnContext(r.Context(), "Resource not found", append(attrs, "error", err)...)
		web.RespondError(w, h.logger, http.StatusNotFound, message)
	case catalogerrors.KindPreconditionFailed:
		h.logger.WarnContext(r.Context(), "Precondition failed", append(attrs, "error", err)...)
		web.RespondError(w, h.logger, http.StatusPreconditionFailed, message)
	default:
		h.logger.ErrorContext(r.Context(), failure, append(attrs, "error", err)...)
		web.RespondError(w, h.logger, http.StatusInternalServerError, failure)
	}
}
