package service

import (
	"context"
	"testing"

	catalogerrors "github.com/abgdnv/gocatalog/internal/errors"
	"github.com/abgdnv/gocatalog/internal/store"
	"github.com/abgdnv/gocatalog/internal/store/db"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockStoreRepository is a mock implementation of the StoreRepository interface
type mockStoreRepository struct {
	stores []store.Store
	store  store.Store
	error  error

	createCalled bool
	updateCalled bool
	updatedCity  string
}

func (m *mockStoreRepository) FindByID(_ context.Context, _ uuid.UUID) (*store.Store, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &m.store, nil
}

func (m *mockStoreRepository) FindAll(_ context.Context) ([]store.Store, error) {
	return m.stores, m.error
}

func (m *mockStoreRepository) Create(_ context.Context, name, city, address string) (*store.Store, error) {
	m.createCalled = true
	return &store.Store{Store: db.Store{ID: mockStoreID, Name: name, City: city, Address: address}}, m.error
}

func (m *mockStoreRepository) Update(_ context.Context, id uuid.UUID, name, city, address string) (*store.Store, error) {
	m.updateCalled = true
	m.updatedCity = city
	return &store.Store{Store: db.Store{ID: id, Name: name, City: city, Address: address}, Products: m.store.Products}, nil
}

func (m *mockStoreRepository) DeleteByID(_ context.Context, _ uuid.UUID) error {
	return m.error
}

func Test_StoreService_Create(t *testing.T) {
	testCases := []struct {
		name        string
		city        string
		expectError error
	}{
		{name: "Success - three letters", city: "ABC"},
		{name: "Success - three multibyte characters", city: "ÑÜÉ"},
		{name: "Error - two characters", city: "AB", expectError: catalogerrors.ErrInvalidCityCode},
		{name: "Error - four characters", city: "ABCD", expectError: catalogerrors.ErrInvalidCityCode},
		{name: "Error - empty", city: "", expectError: catalogerrors.ErrInvalidCityCode},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			repo := &mockStoreRepository{}
			service := NewStoreService(repo)
			// when
			created, err := service.Create(context.Background(), StoreCreateDto{Name: "Central", City: tc.city, Address: "Main 1"})
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.False(t, repo.createCalled)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.city, created.City)
			assert.Equal(t, mockStoreID.String(), created.ID)
			assert.Equal(t, []ProductSummaryDto{}, created.Products)
		})
	}
}

func Test_StoreService_FindByID(t *testing.T) {
	testCases := []struct {
		name        string
		mockRepo    *mockStoreRepository
		expected    *StoreDto
		expectError error
	}{
		{
			name: "Success - store with products",
			mockRepo: &mockStoreRepository{store: store.Store{
				Store:    db.Store{ID: mockStoreID, Name: "Central", City: "BOG", Address: "Main 1"},
				Products: []db.Product{{ID: mockProductID, Name: "Milk", Price: 1, Type: ProductTypePerishable}},
			}},
			expected: &StoreDto{
				ID: mockStoreID.String(), Name: "Central", City: "BOG", Address: "Main 1",
				Products: []ProductSummaryDto{{ID: mockProductID.String(), Name: "Milk", Price: 1, Type: ProductTypePerishable}},
			},
		},
		{
			name:        "Error - not found",
			mockRepo:    &mockStoreRepository{error: catalogerrors.ErrStoreNotFound},
			expectError: catalogerrors.ErrStoreNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			found, err := NewStoreService(tc.mockRepo).FindByID(context.Background(), mockStoreID)
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, found)
		})
	}
}

func Test_StoreService_FindAll(t *testing.T) {
	repo := &mockStoreRepository{stores: []store.Store{{Store: db.Store{ID: mockStoreID, Name: "A", City: "AAA"}}}}
	list, err := NewStoreService(repo).FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "A", list[0].Name)
	assert.Empty(t, list[0].Products)
}

func Test_StoreService_Update(t *testing.T) {
	persisted := store.Store{Store: db.Store{ID: mockStoreID, Name: "Central", City: "BOG", Address: "Main 1"}}
	testCases := []struct {
		name         string
		mockRepo     *mockStoreRepository
		patch        StorePatchDto
		expectedCity string
		expectError  error
		expectUpdate bool
	}{
		{
			name:         "Success - city kept when absent",
			mockRepo:     &mockStoreRepository{store: persisted},
			patch:        StorePatchDto{Name: ptr("North")},
			expectedCity: "BOG",
			expectUpdate: true,
		},
		{
			name:         "Success - city overwritten",
			mockRepo:     &mockStoreRepository{store: persisted},
			patch:        StorePatchDto{City: ptr("MDE")},
			expectedCity: "MDE",
			expectUpdate: true,
		},
		{
			name:        "Error - invalid city code",
			mockRepo:    &mockStoreRepository{store: persisted},
			patch:       StorePatchDto{City: ptr("MEDE")},
			expectError: catalogerrors.ErrInvalidCityCode,
		},
		{
			name:        "Error - not found is checked first",
			mockRepo:    &mockStoreRepository{error: catalogerrors.ErrStoreNotFound},
			patch:       StorePatchDto{City: ptr("X")},
			expectError: catalogerrors.ErrStoreNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewStoreService(tc.mockRepo)
			// when
			updated, err := service.Update(context.Background(), mockStoreID, tc.patch)
			// then
			assert.Equal(t, tc.expectUpdate, tc.mockRepo.updateCalled)
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedCity, tc.mockRepo.updatedCity)
			assert.Equal(t, tc.expectedCity, updated.City)
		})
	}
}

func Test_StoreService_DeleteByID(t *testing.T) {
	assert.NoError(t, NewStoreService(&mockStoreRepository{}).DeleteByID(context.Background(), mockStoreID))
	err := NewStoreService(&mockStoreRepository{error: catalogerrors.ErrStoreNotFound}).DeleteByID(context.Background(), mockStoreID)
	assert.ErrorIs(t, err, catalogerrors.ErrStoreNotFound)
}
