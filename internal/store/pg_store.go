package store

import (
	"context"
	"errors"
	"fmt"

	catalogerrors "github.com/abgdnv/gocatalog/internal/errors"
	"github.com/abgdnv/gocatalog/internal/store/db"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// foreignKeyViolation is the SQLSTATE raised when a referenced row is missing.
const foreignKeyViolation = "23503"

// pgBase holds the pool and queries shared by the PostgreSQL repositories.
type pgBase struct {
	db *pgxpool.Pool
	q  *db.Queries
}

func (p *pgBase) withTransaction(ctx context.Context, fn func(qtx *db.Queries) error) error {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return catalogerrors.ErrTransactionBegin
	}
	qtx := p.q.WithTx(tx)

	err = fn(qtx)
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return catalogerrors.ErrTransactionRollback
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return catalogerrors.ErrTransactionCommit
	}

	return nil
}

// PgProductRepository implements ProductRepository using PostgreSQL as the data store.
type PgProductRepository struct {
	pgBase
}

// NewPgProductRepository creates a new instance of ProductRepository using a PostgreSQL connection pool.
func NewPgProductRepository(dbp *pgxpool.Pool) *PgProductRepository {
	return &PgProductRepository{pgBase{db: dbp, q: db.New(dbp)}}
}

// FindByID retrieves a product and its stores in one transaction.
func (p *PgProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	var product *Product
	txErr := p.withTransaction(ctx, func(qtx *db.Queries) error {
		found, err := loadProduct(ctx, qtx, id)
		product = found
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return product, nil
}

func (p *PgProductRepository) FindAll(ctx context.Context) ([]Product, error) {
	var result []Product
	txErr := p.withTransaction(ctx, func(qtx *db.Queries) error {
		products, err := qtx.FindAllProducts(ctx)
		if err != nil {
			return fmt.Errorf("failed to find all products: %w", err)
		}
		ids := make([]uuid.UUID, 0, len(products))
		for _, product := range products {
			ids = append(ids, product.ID)
		}
		rows, err := qtx.FindStoresByProductIDs(ctx, ids)
		if err != nil {
			return fmt.Errorf("failed to find product stores: %w", err)
		}
		storesByProduct := make(map[uuid.UUID][]db.Store, len(products))
		for _, row := range rows {
			storesByProduct[row.ProductID] = append(storesByProduct[row.ProductID], db.Store{
				ID:      row.ID,
				Name:    row.Name,
				City:    row.City,
				Address: row.Address,
			})
		}
		result = make([]Product, 0, len(products))
		for _, product := range products {
			result = append(result, Product{Product: product, Stores: nonNil(storesByProduct[product.ID])})
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return result, nil
}

func (p *PgProductRepository) Create(ctx context.Context, name string, price int64, productType string) (*Product, error) {
	product, err := p.q.CreateProduct(ctx, db.CreateProductParams{
		Name:  name,
		Price: price,
		Type:  productType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &Product{Product: product, Stores: []db.Store{}}, nil
}

func (p *PgProductRepository) Update(ctx context.Context, id uuid.UUID, name string, price int64, productType string) (*Product, error) {
	var product *Product
	txErr := p.withTransaction(ctx, func(qtx *db.Queries) error {
		updated, err := qtx.UpdateProduct(ctx, db.UpdateProductParams{
			ID:    id,
			Name:  name,
			Price: price,
			Type:  productType,
		})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return catalogerrors.ErrProductNotFound
			}
			return fmt.Errorf("failed to update product: %w", err)
		}
		stores, err := qtx.FindStoresByProductID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to find product stores: %w", err)
		}
		product = &Product{Product: updated, Stores: nonNil(stores)}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return product, nil
}

// ReplaceStores locks the product row, rewrites its join rows with fresh positions and reloads it.
func (p *PgProductRepository) ReplaceStores(ctx context.Context, productID uuid.UUID, storeIDs []uuid.UUID) (*Product, error) {
	var product *Product
	txErr := p.withTransaction(ctx, func(qtx *db.Queries) error {
		if _, err := qtx.LockProductByID(ctx, productID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return catalogerrors.ErrProductNotFound
			}
			return fmt.Errorf("failed to lock product: %w", err)
		}
		if err := qtx.DeleteProductStores(ctx, productID); err != nil {
			return fmt.Errorf("failed to clear product stores: %w", err)
		}
		for i, storeID := range storeIDs {
			err := qtx.InsertProductStore(ctx, db.InsertProductStoreParams{
				ProductID: productID,
				StoreID:   storeID,
				Position:  int32(i),
			})
			if err != nil {
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
					return catalogerrors.ErrStoreNotFound
				}
				return fmt.Errorf("failed to insert product store: %w", err)
			}
		}
		found, err := loadProduct(ctx, qtx, productID)
		product = found
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return product, nil
}

func (p *PgProductRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	count, err := p.q.DeleteProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete product by ID: %w", err)
	}
	if count == 0 {
		return catalogerrors.ErrProductNotFound
	}
	return nil
}

func loadProduct(ctx context.Context, qtx *db.Queries, id uuid.UUID) (*Product, error) {
	product, err := qtx.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalogerrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	stores, err := qtx.FindStoresByProductID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find product stores: %w", err)
	}
	return &Product{Product: product, Stores: nonNil(stores)}, nil
}

// PgStoreRepository implements StoreRepository using PostgreSQL as the data store.
type PgStoreRepository struct {
	pgBase
}

// NewPgStoreRepository creates a new instance of StoreRepository using a PostgreSQL connection pool.
func NewPgStoreRepository(dbp *pgxpool.Pool) *PgStoreRepository {
	return &PgStoreRepository{pgBase{db: dbp, q: db.New(dbp)}}
}

func (p *PgStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*Store, error) {
	var store *Store
	txErr := p.withTransaction(ctx, func(qtx *db.Queries) error {
		found, err := qtx.FindStoreByID(ctx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return catalogerrors.ErrStoreNotFound
			}
			return fmt.Errorf("failed to find store by ID: %w", err)
		}
		products, err := qtx.FindProductsByStoreID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to find store products: %w", err)
		}
		store = &Store{Store: found, Products: nonNil(products)}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return store, nil
}

func (p *PgStoreRepository) FindAll(ctx context.Context) ([]Store, error) {
	var result []Store
	txErr := p.withTransaction(ctx, func(qtx *db.Queries) error {
		stores, err := qtx.FindAllStores(ctx)
		if err != nil {
			return fmt.Errorf("failed to find all stores: %w", err)
		}
		ids := make([]uuid.UUID, 0, len(stores))
		for _, store := range stores {
			ids = append(ids, store.ID)
		}
		rows, err := qtx.FindProductsByStoreIDs(ctx, ids)
		if err != nil {
			return fmt.Errorf("failed to find store products: %w", err)
		}
		productsByStore := make(map[uuid.UUID][]db.Product, len(stores))
		for _, row := range rows {
			productsByStore[row.StoreID] = append(productsByStore[row.StoreID], db.Product{
				ID:    row.ID,
				Name:  row.Name,
				Price: row.Price,
				Type:  row.Type,
			})
		}
		result = make([]Store, 0, len(stores))
		for _, store := range stores {
			result = append(result, Store{Store: store, Products: nonNil(productsByStore[store.ID])})
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return result, nil
}

func (p *PgStoreRepository) Create(ctx context.Context, name, city, address string) (*Store, error) {
	store, err := p.q.CreateStore(ctx, db.CreateStoreParams{
		Name:    name,
		City:    city,
		Address: address,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	return &Store{Store: store, Products: []db.Product{}}, nil
}

func (p *PgStoreRepository) Update(ctx context.Context, id uuid.UUID, name, city, address string) (*Store, error) {
	var store *Store
	txErr := p.withTransaction(ctx, func(qtx *db.Queries) error {
		updated, err := qtx.UpdateStore(ctx, db.UpdateStoreParams{
			ID:      id,
			Name:    name,
			City:    city,
			Address: address,
		})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return catalogerrors.ErrStoreNotFound
			}
			return fmt.Errorf("failed to update store: %w", err)
		}
		products, err := qtx.FindProductsByStoreID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to find store products: %w", err)
		}
		store = &Store{Store: updated, Products: nonNil(products)}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return store, nil
}

func (p *PgStoreRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	count, err := p.q.DeleteStore(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete store by ID: %w", err)
	}
	if count == 0 {
		return catalogerrors.ErrStoreNotFound
	}
	return nil
}

// nonNil turns a nil slice into an empty one so collections always serialize as arrays.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
