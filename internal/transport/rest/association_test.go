package rest

import (
	"errors"
	"net/http"
	"testing"

	catalogerrors "github.com/abgdnv/gocatalog/internal/errors"
	"github.com/abgdnv/gocatalog/internal/service"
	"github.com/abgdnv/gocatalog/pkg/web"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_AssociationAPI_AddStoreToProduct(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  mockAssociationService
		target       string
		expectedCode int
		expectedBody string
		expectCalled bool
	}{
		{
			name:         "Success - store added",
			mockService:  mockAssociationService{product: sampleProduct()},
			target:       "/api/v1/products/" + mockProductID + "/stores/" + mockStoreID,
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, sampleProduct()),
			expectCalled: true,
		},
		{
			name:         "Error - invalid product id",
			target:       "/api/v1/products/bad/stores/" + mockStoreID,
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, web.ErrorResponse{Error: "Invalid ID: bad"}),
		},
		{
			name:         "Error - invalid store id",
			target:       "/api/v1/products/" + mockProductID + "/stores/bad",
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, web.ErrorResponse{Error: "Invalid ID: bad"}),
		},
		{
			name:         "Error - store not found",
			mockService:  mockAssociationService{error: catalogerrors.ErrStoreNotFound},
			target:       "/api/v1/products/" + mockProductID + "/stores/" + mockStoreID,
			expectedCode: http.StatusNotFound,
			expectedBody: toJSON(t, web.ErrorResponse{Error: "store not found"}),
			expectCalled: true,
		},
		{
			name:         "Error - service error",
			mockService:  mockAssociationService{error: errors.New("tx failed")},
			target:       "/api/v1/products/" + mockProductID + "/stores/" + mockStoreID,
			expectedCode: http.StatusInternalServerError,
			expectedBody: toJSON(t, web.ErrorResponse{Error: "Failed to add store to product"}),
			expectCalled: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			router := newTestRouter(nil, nil, &tc.mockService)

			// when
			rr := serve(router, http.MethodPost, tc.target, "")

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			assert.Equal(t, tc.expectCalled, tc.mockService.called)
			if tc.expectCalled {
				assert.Equal(t, uuid.MustParse(mockProductID), tc.mockService.productID)
				assert.Equal(t, uuid.MustParse(mockStoreID), tc.mockService.storeID)
			}
		})
	}
}

func Test_AssociationAPI_FindStores(t *testing.T) {
	summary := service.StoreSummaryDto{ID: mockStoreID, Name: "Central", City: "NYC", Address: "1 Main St"}

	t.Run("Success - list", func(t *testing.T) {
		// given
		mock := &mockAssociationService{stores: []service.StoreSummaryDto{summary}}
		router := newTestRouter(nil, nil, mock)

		// when
		rr := serve(router, http.MethodGet, "/api/v1/products/"+mockProductID+"/stores", "")

		// then
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, toJSON(t, []service.StoreSummaryDto{summary}), rr.Body.String())
	})

	t.Run("Success - single", func(t *testing.T) {
		// given
		mock := &mockAssociationService{store: &summary}
		router := newTestRouter(nil, nil, mock)

		// when
		rr := serve(router, http.MethodGet, "/api/v1/products/"+mockProductID+"/stores/"+mockStoreID, "")

		// then
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, toJSON(t, summary), rr.Body.String())
	})

	t.Run("Error - not associated", func(t *testing.T) {
		// given
		mock := &mockAssociationService{error: catalogerrors.ErrAssociationNotFound}
		router := newTestRouter(nil, nil, mock)

		// when
		rr := serve(router, http.MethodGet, "/api/v1/products/"+mockProductID+"/stores/"+mockStoreID, "")

		// then
		assert.Equal(t, http.StatusPreconditionFailed, rr.Code)
		assert.JSONEq(t, toJSON(t, web.ErrorResponse{Error: "store is not associated with the product"}), rr.Body.String())
	})
}

func Test_AssociationAPI_UpdateStoresFromProduct(t *testing.T) {
	testCases := []struct {
		name             string
		mockService      mockAssociationService
		body             string
		expectedCode     int
		expectedBody     string
		expectedStoreIDs []uuid.UUID
	}{
		{
			name:             "Success - stores replaced in order",
			mockService:      mockAssociationService{product: sampleProduct()},
			body:             `[{"id":"` + otherStoreID + `"},{"id":"` + mockStoreID + `"}]`,
			expectedCode:     http.StatusOK,
			expectedBody:     toJSON(t, sampleProduct()),
			expectedStoreIDs: []uuid.UUID{uuid.MustParse(otherStoreID), uuid.MustParse(mockStoreID)},
		},
		{
			name:             "Success - empty list",
			mockService:      mockAssociationService{product: &service.ProductDto{ID: mockProductID, Stores: []service.StoreSummaryDto{}}},
			body:             `[]`,
			expectedCode:     http.StatusOK,
			expectedBody:     toJSON(t, service.ProductDto{ID: mockProductID, Stores: []service.StoreSummaryDto{}}),
			expectedStoreIDs: []uuid.UUID{},
		},
		{
			name:         "Error - body is not a list",
			body:         `{"id":"` + mockStoreID + `"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, web.ErrorResponse{Error: "Invalid request body"}),
		},
		{
			name:         "Error - invalid store reference",
			body:         `[{"id":"` + mockStoreID + `"},{"id":"bad"}]`,
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ValidationErrorResponse{ValidationErrors: map[string]string{"[1].ID": "failed on rule: uuid"}}),
		},
		{
			name:         "Error - missing store reference",
			body:         `[{}]`,
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ValidationErrorResponse{ValidationErrors: map[string]string{"[0].ID": "failed on rule: required"}}),
		},
		{
			name:             "Error - unknown store",
			mockService:      mockAssociationService{error: catalogerrors.ErrStoreNotFound},
			body:             `[{"id":"` + mockStoreID + `"}]`,
			expectedCode:     http.StatusNotFound,
			expectedBody:     toJSON(t, web.ErrorResponse{Error: "store not found"}),
			expectedStoreIDs: []uuid.UUID{uuid.MustParse(mockStoreID)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			router := newTestRouter(nil, nil, &tc.mockService)

			// when
			rr := serve(router, http.MethodPut, "/api/v1/products/"+mockProductID+"/stores", tc.body)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			assert.Equal(t, tc.expectedStoreIDs, tc.mockService.storeIDs)
		})
	}
}

func Test_AssociationAPI_DeleteStoreFromProduct(t *testing.T) {
	testCases := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "Success - removed", expectedCode: http.StatusNoContent},
		{name: "Error - product not found", err: catalogerrors.ErrProductNotFound, expectedCode: http.StatusNotFound},
		{name: "Error - not associated", err: catalogerrors.ErrAssociationNotFound, expectedCode: http.StatusPreconditionFailed},
		{name: "Error - service error", err: errors.New("boom"), expectedCode: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			mock := &mockAssociationService{error: tc.err}
			router := newTestRouter(nil, nil, mock)

			// when
			rr := serve(router, http.MethodDelete, "/api/v1/products/"+mockProductID+"/stores/"+mockStoreID, "")

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.True(t, mock.called)
		})
	}
}
