// Package store provides the repository contracts for products and stores and their implementations.
package store

import (
	"context"

	"github.com/abgdnv/gocatalog/internal/store/db"
	"github.com/google/uuid"
)

// Product is a product record together with its stores in association order.
type Product struct {
	db.Product
	Stores []db.Store
}

// Store is a store record together with the products associated with it, ordered by name then id.
type Store struct {
	db.Store
	Products []db.Product
}

// ProductRepository is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type ProductRepository interface {
	// FindByID retrieves a single product with its stores.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindAll returns all products ordered by name then id, each with its stores.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]Product, error)

	// Create adds a new product with no stores. The ID is generated by the store.
	Create(ctx context.Context, name string, price int64, productType string) (*Product, error)

	// Update overwrites the product's fields and keeps its stores.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id uuid.UUID, name string, price int64, productType string) (*Product, error)

	// ReplaceStores sets the product's store collection to storeIDs, in that order, atomically.
	// storeIDs must not contain duplicates.
	// Returns ErrProductNotFound if the product does not exist and ErrStoreNotFound if a store does not.
	ReplaceStores(ctx context.Context, productID uuid.UUID, storeIDs []uuid.UUID) (*Product, error)

	// DeleteByID removes a product and its associations.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// StoreRepository is an interface for store storage operations.
type StoreRepository interface {
	// FindByID retrieves a single store with its products.
	// Returns ErrStoreNotFound if no store exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*Store, error)

	// FindAll returns all stores ordered by name then id, each with its products.
	FindAll(ctx context.Context) ([]Store, error)

	// Create adds a new store. The ID is generated by the store.
	Create(ctx context.Context, name, city, address string) (*Store, error)

	// Update overwrites the store's fields and keeps its products.
	// Returns ErrStoreNotFound if no store exists with the given ID.
	Update(ctx context.Context, id uuid.UUID, name, city, address string) (*Store, error)

	// DeleteByID removes a store and its associations.
	// Returns ErrStoreNotFound if no store exists with the given ID.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
