package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	catalogerrors "github.com/abgdnv/gocatalog/internal/errors"
	"github.com/abgdnv/gocatalog/internal/store"
	"github.com/google/uuid"
)

// cityCodeLength is the number of characters of a city code.
const cityCodeLength = 3

// StoreService defines the methods for managing store records.
type StoreService interface {
	// FindAll returns all stores with their products.
	FindAll(ctx context.Context) ([]StoreDto, error)

	// FindByID retrieves a single store.
	// Returns ErrStoreNotFound if no store exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*StoreDto, error)

	// Create adds a new store.
	// Returns ErrInvalidCityCode unless the city code has exactly three characters.
	Create(ctx context.Context, store StoreCreateDto) (*StoreDto, error)

	// Update overwrites the fields present in patch.
	// Returns ErrStoreNotFound if the store does not exist, then ErrInvalidCityCode for a bad city code.
	Update(ctx context.Context, id uuid.UUID, patch StorePatchDto) (*StoreDto, error)

	// DeleteByID removes a store by its ID.
	// Returns ErrStoreNotFound if no store exists with the given ID.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// StoreRecordService implements StoreService.
type StoreRecordService struct {
	repository store.StoreRepository
}

func NewStoreService(repo store.StoreRepository) *StoreRecordService {
	return &StoreRecordService{
		repository: repo,
	}
}

func (s *StoreRecordService) FindAll(ctx context.Context) ([]StoreDto, error) {
	stores, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stores: %w", err)
	}
	storeDTOs := make([]StoreDto, len(stores))
	for i := range stores {
		storeDTOs[i] = *toStoreDto(&stores[i])
	}
	return storeDTOs, nil
}

func (s *StoreRecordService) FindByID(ctx context.Context, id uuid.UUID) (*StoreDto, error) {
	found, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch store by ID %s: %w", id, err)
	}
	return toStoreDto(found), nil
}

func (s *StoreRecordService) Create(ctx context.Context, dto StoreCreateDto) (*StoreDto, error) {
	if !isValidCityCode(dto.City) {
		return nil, catalogerrors.ErrInvalidCityCode
	}
	created, err := s.repository.Create(ctx, dto.Name, dto.City, dto.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	return toStoreDto(created), nil
}

func (s *StoreRecordService) Update(ctx context.Context, id uuid.UUID, patch StorePatchDto) (*StoreDto, error) {
	persisted, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch store by ID %s: %w", id, err)
	}
	if patch.City != nil && !isValidCityCode(*patch.City) {
		return nil, catalogerrors.ErrInvalidCityCode
	}

	name, city, address := persisted.Name, persisted.City, persisted.Address
	if patch.Name != nil {
		name = *patch.Name
	}
	if patch.City != nil {
		city = *patch.City
	}
	if patch.Address != nil {
		address = *patch.Address
	}

	updated, err := s.repository.Update(ctx, id, name, city, address)
	if err != nil {
		return nil, fmt.Errorf("failed to update store %s: %w", id, err)
	}
	return toStoreDto(updated), nil
}

func (s *StoreRecordService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if err := s.repository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete store %s: %w", id, err)
	}
	return nil
}

// isValidCityCode counts characters, not bytes.
func isValidCityCode(city string) bool {
	return utf8.RuneCountInString(city) == cityCodeLength
}
