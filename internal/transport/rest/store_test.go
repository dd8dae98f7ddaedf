package rest

import (
	"errors"
	"net/http"
	"testing"

	catalogerrors "github.com/abgdnv/gocatalog/internal/errors"
	"github.com/abgdnv/gocatalog/internal/service"
	"github.com/abgdnv/gocatalog/pkg/web"
	"github.com/stretchr/testify/assert"
)

func sampleStore() *service.StoreDto {
	return &service.StoreDto{
		ID:       mockStoreID,
		Name:     "Central",
		City:     "NYC",
		Address:  "1 Main St",
		Products: []service.ProductSummaryDto{},
	}
}

func Test_StoreAPI_FindByID(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  mockStoreService
		storeID      string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - store found",
			mockService:  mockStoreService{store: sampleStore()},
			storeID:      mockStoreID,
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, sampleStore()),
		},
		{
			name:         "Error - invalid id",
			storeID:      "xyz",
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, web.ErrorResponse{Error: "Invalid ID: xyz"}),
		},
		{
			name:         "Error - store not found",
			mockService:  mockStoreService{error: catalogerrors.ErrStoreNotFound},
			storeID:      mockStoreID,
			expectedCode: http.StatusNotFound,
			expectedBody: toJSON(t, web.ErrorResponse{Error: "store not found"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			router := newTestRouter(nil, &tc.mockService, nil)

			// when
			rr := serve(router, http.MethodGet, "/api/v1/stores/"+tc.storeID, "")

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func Test_StoreAPI_Create(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  mockStoreService
		body         string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - store created",
			mockService:  mockStoreService{store: sampleStore()},
			body:         `{"name":"Central","city":"NYC","address":"1 Main St"}`,
			expectedCode: http.StatusCreated,
			expectedBody: toJSON(t, sampleStore()),
		},
		{
			name:         "Error - missing address",
			body:         `{"name":"Central","city":"NYC"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ValidationErrorResponse{ValidationErrors: map[string]string{"Address": "failed on rule: required"}}),
		},
		{
			name:         "Error - invalid city code",
			mockService:  mockStoreService{error: catalogerrors.ErrInvalidCityCode},
			body:         `{"name":"Central","city":"NY","address":"1 Main St"}`,
			expectedCode: http.StatusPreconditionFailed,
			expectedBody: toJSON(t, web.ErrorResponse{Error: "city code must be exactly 3 characters"}),
		},
		{
			name:         "Error - service error",
			mockService:  mockStoreService{error: errors.New("db down")},
			body:         `{"name":"Central","city":"NYC","address":"1 Main St"}`,
			expectedCode: http.StatusInternalServerError,
			expectedBody: toJSON(t, web.ErrorResponse{Error: "Failed to create store"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			router := newTestRouter(nil, &tc.mockService, nil)

			// when
			rr := serve(router, http.MethodPost, "/api/v1/stores", tc.body)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func Test_StoreAPI_UpdateAndDelete(t *testing.T) {
	t.Run("Success - update", func(t *testing.T) {
		router := newTestRouter(nil, &mockStoreService{store: sampleStore()}, nil)

		rr := serve(router, http.MethodPatch, "/api/v1/stores/"+mockStoreID, `{"city":"LAX"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, toJSON(t, sampleStore()), rr.Body.String())
	})

	t.Run("Success - delete", func(t *testing.T) {
		router := newTestRouter(nil, &mockStoreService{}, nil)

		rr := serve(router, http.MethodDelete, "/api/v1/stores/"+mockStoreID, "")

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("Error - delete unknown store", func(t *testing.T) {
		router := newTestRouter(nil, &mockStoreService{error: catalogerrors.ErrStoreNotFound}, nil)

		rr := serve(router, http.MethodDelete, "/api/v1/stores/"+mockStoreID, "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Success - list", func(t *testing.T) {
		router := newTestRouter(nil, &mockStoreService{stores: []service.StoreDto{*sampleStore()}}, nil)

		rr := serve(router, http.MethodGet, "/api/v1/stores", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, toJSON(t, []service.StoreDto{*sampleStore()}), rr.Body.String())
	})
}
