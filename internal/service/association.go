package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	catalogerrors "github.com/abgdnv/gocatalog/internal/errors"
	"github.com/abgdnv/gocatalog/internal/store"
	"github.com/abgdnv/gocatalog/internal/store/db"
	"github.com/abgdnv/gocatalog/pkg/messaging"
	"github.com/abgdnv/gocatalog/pkg/messaging/events"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
)

// associationChangesMetric counts persisted association changes by action.
const associationChangesMetric = "catalog_association_changes_total"

// AssociationService manages the stores associated with a product.
type AssociationService interface {
	// AddStoreToProduct appends the store to the product's stores and returns the product.
	// The store is looked up first: ErrStoreNotFound wins over ErrProductNotFound.
	// Adding a store that is already associated returns the product unchanged.
	AddStoreToProduct(ctx context.Context, productID, storeID uuid.UUID) (*ProductDto, error)

	// FindStoresFromProduct returns the product's stores in association order.
	// Returns ErrProductNotFound if the product does not exist.
	FindStoresFromProduct(ctx context.Context, productID uuid.UUID) ([]StoreSummaryDto, error)

	// FindStoreFromProduct returns one associated store.
	// Checks, in order: ErrStoreNotFound, ErrProductNotFound, ErrAssociationNotFound.
	FindStoreFromProduct(ctx context.Context, productID, storeID uuid.UUID) (*StoreSummaryDto, error)

	// UpdateStoresFromProduct replaces the product's stores with storeIDs, in order, and returns the product.
	// The product is looked up first, then every store in input order. Repeated ids keep their first position.
	UpdateStoresFromProduct(ctx context.Context, productID uuid.UUID, storeIDs []uuid.UUID) (*ProductDto, error)

	// DeleteStoreFromProduct removes one store from the product's stores, keeping the order of the rest.
	// Checks, in order: ErrStoreNotFound, ErrProductNotFound, ErrAssociationNotFound.
	DeleteStoreFromProduct(ctx context.Context, productID, storeID uuid.UUID) error
}

// StoreAssociationService implements AssociationService on top of the product and store repositories.
type StoreAssociationService struct {
	products       store.ProductRepository
	stores         store.StoreRepository
	publisher      messaging.Publisher
	logger         *slog.Logger
	changesCounter metric.Int64Counter
	now            func() time.Time
}

// AssociationOption customizes a StoreAssociationService.
type AssociationOption func(*StoreAssociationService)

// WithMeterProvider sets the provider of the association change counter. The global provider is used otherwise.
func WithMeterProvider(mp metric.MeterProvider) AssociationOption {
	return func(s *StoreAssociationService) {
		s.changesCounter = newChangesCounter(mp)
	}
}

// NewAssociationService creates a new instance of AssociationService.
func NewAssociationService(products store.ProductRepository, stores store.StoreRepository, publisher messaging.Publisher, logger *slog.Logger, opts ...AssociationOption) *StoreAssociationService {
	s := &StoreAssociationService{
		products:  products,
		stores:    stores,
		publisher: publisher,
		logger:    logger.With("component", "association"),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.changesCounter == nil {
		s.changesCounter = newChangesCounter(otel.GetMeterProvider())
	}
	return s
}

func newChangesCounter(mp metric.MeterProvider) metric.Int64Counter {
	counter, err := mp.Meter("catalog-service").Int64Counter(associationChangesMetric,
		metric.WithDescription("Total number of persisted product/store association changes"))
	if err != nil {
		panic(fmt.Sprintf("failed to create %s counter: %v", associationChangesMetric, err))
	}
	return counter
}

func (s *StoreAssociationService) AddStoreToProduct(ctx context.Context, productID, storeID uuid.UUID) (*ProductDto, error) {
	if _, err := s.stores.FindByID(ctx, storeID); err != nil {
		return nil, fmt.Errorf("failed to fetch store %s: %w", storeID, err)
	}
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product %s: %w", productID, err)
	}

	ids := storeIDsOf(product.Stores)
	if slices.Contains(ids, storeID) {
		s.logger.DebugContext(ctx, "Store already associated with product", "productID", productID, "storeID", storeID)
		return toProductDto(product), nil
	}

	updated, err := s.products.ReplaceStores(ctx, productID, append(ids, storeID))
	if err != nil {
		return nil, fmt.Errorf("failed to add store %s to product %s: %w", storeID, productID, err)
	}
	s.changed(ctx, updated, events.ActionAdded)
	return toProductDto(updated), nil
}

func (s *StoreAssociationService) FindStoresFromProduct(ctx context.Context, productID uuid.UUID) ([]StoreSummaryDto, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product %s: %w", productID, err)
	}
	return toProductDto(product).Stores, nil
}

func (s *StoreAssociationService) FindStoreFromProduct(ctx context.Context, productID, storeID uuid.UUID) (*StoreSummaryDto, error) {
	product, index, err := s.loadMembership(ctx, productID, storeID)
	if err != nil {
		return nil, err
	}
	found := toStoreSummary(&product.Stores[index])
	return &found, nil
}

func (s *StoreAssociationService) UpdateStoresFromProduct(ctx context.Context, productID uuid.UUID, storeIDs []uuid.UUID) (*ProductDto, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, fmt.Errorf("failed to fetch product %s: %w", productID, err)
	}
	for _, storeID := range storeIDs {
		if _, err := s.stores.FindByID(ctx, storeID); err != nil {
			return nil, fmt.Errorf("failed to fetch store %s: %w", storeID, err)
		}
	}

	updated, err := s.products.ReplaceStores(ctx, productID, uniqueIDs(storeIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to replace stores of product %s: %w", productID, err)
	}
	s.changed(ctx, updated, events.ActionReplaced)
	return toProductDto(updated), nil
}

func (s *StoreAssociationService) DeleteStoreFromProduct(ctx context.Context, productID, storeID uuid.UUID) error {
	product, index, err := s.loadMembership(ctx, productID, storeID)
	if err != nil {
		return err
	}

	remaining := slices.Delete(storeIDsOf(product.Stores), index, index+1)
	updated, err := s.products.ReplaceStores(ctx, productID, remaining)
	if err != nil {
		return fmt.Errorf("failed to remove store %s from product %s: %w", storeID, productID, err)
	}
	s.changed(ctx, updated, events.ActionRemoved)
	return nil
}

// loadMembership loads the store, then the product, and returns the store's position in the product's stores.
func (s *StoreAssociationService) loadMembership(ctx context.Context, productID, storeID uuid.UUID) (*store.Product, int, error) {
	if _, err := s.stores.FindByID(ctx, storeID); err != nil {
		return nil, 0, fmt.Errorf("failed to fetch store %s: %w", storeID, err)
	}
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch product %s: %w", productID, err)
	}
	index := slices.IndexFunc(product.Stores, func(st db.Store) bool { return st.ID == storeID })
	if index < 0 {
		return nil, 0, fmt.Errorf("store %s in product %s: %w", storeID, productID, catalogerrors.ErrAssociationNotFound)
	}
	return product, index, nil
}

// changed records a persisted change. Publishing is best effort: the change is already durable.
func (s *StoreAssociationService) changed(ctx context.Context, product *store.Product, action string) {
	s.changesCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("action", action)))

	carrier := make(propagation.MapCarrier)
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	event := events.ProductStoresChangedEvent{
		Carrier:    carrier,
		ProductID:  product.ID,
		StoreIDs:   storeIDsOf(product.Stores),
		Action:     action,
		OccurredAt: s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish ProductStoresChangedEvent", "productID", product.ID, "action", action, "error", err)
	}
}

func storeIDsOf(stores []db.Store) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(stores))
	for _, st := range stores {
		ids = append(ids, st.ID)
	}
	return ids
}

// uniqueIDs drops repeated ids, keeping the first occurrence of each.
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	result := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
