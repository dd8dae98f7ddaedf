// Package service provides the catalog business logic: product and store records and their associations.
package service

import (
	"context"
	"fmt"

	catalogerrors "github.com/abgdnv/gocatalog/internal/errors"
	"github.com/abgdnv/gocatalog/internal/store"
	"github.com/google/uuid"
)

// ProductService defines the methods for managing product records.
type ProductService interface {
	// FindAll returns all products with their stores.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]ProductDto, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*ProductDto, error)

	// Create adds a new product.
	// Returns ErrInvalidProductType if the type is not Perishable or NonPerishable.
	Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error)

	// Update overwrites the fields present in patch.
	// Returns ErrProductNotFound if the product does not exist, then ErrInvalidProductType for a bad type.
	Update(ctx context.Context, id uuid.UUID, patch ProductPatchDto) (*ProductDto, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// ProductRecordService implements ProductService.
type ProductRecordService struct {
	repository store.ProductRepository
}

// NewProductService creates a new instance of ProductService with the provided repository.
func NewProductService(repo store.ProductRepository) *ProductRecordService {
	return &ProductRecordService{
		repository: repo,
	}
}

func (s *ProductRecordService) FindAll(ctx context.Context) ([]ProductDto, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	productDTOs := make([]ProductDto, len(products))
	for i := range products {
		productDTOs[i] = *toProductDto(&products[i])
	}
	return productDTOs, nil
}

func (s *ProductRecordService) FindByID(ctx context.Context, id uuid.UUID) (*ProductDto, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", id, err)
	}
	return toProductDto(product), nil
}

func (s *ProductRecordService) Create(ctx context.Context, dto ProductCreateDto) (*ProductDto, error) {
	if !isValidProductType(dto.Type) {
		return nil, catalogerrors.ErrInvalidProductType
	}
	created, err := s.repository.Create(ctx, dto.Name, dto.Price, dto.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return toProductDto(created), nil
}

func (s *ProductRecordService) Update(ctx context.Context, id uuid.UUID, patch ProductPatchDto) (*ProductDto, error) {
	persisted, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", id, err)
	}
	if patch.Type != nil && !isValidProductType(*patch.Type) {
		return nil, catalogerrors.ErrInvalidProductType
	}

	name, price, productType := persisted.Name, persisted.Price, persisted.Type
	if patch.Name != nil {
		name = *patch.Name
	}
	if patch.Price != nil {
		price = *patch.Price
	}
	if patch.Type != nil {
		productType = *patch.Type
	}

	updated, err := s.repository.Update(ctx, id, name, price, productType)
	if err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", id, err)
	}
	return toProductDto(updated), nil
}

func (s *ProductRecordService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if err := s.repository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}

func isValidProductType(t string) bool {
	return t == ProductTypePerishable || t == ProductTypeNonPerishable
}
