package store

import (
	"context"
	"slices"
	"strings"
	"sync"

	catalogerrors "github.com/abgdnv/gocatalog/internal/errors"
	"github.com/abgdnv/gocatalog/internal/store/db"
	"github.com/google/uuid"
)

// InMemory is a catalog held in maps. Products and Stores return repository views over the same data,
// so deleting one side drops its associations like the database cascade does.
type InMemory struct {
	mu          sync.RWMutex
	products    map[uuid.UUID]db.Product
	stores      map[uuid.UUID]db.Store
	memberships map[uuid.UUID][]uuid.UUID // product id -> store ids in association order
}

func NewInMemory() *InMemory {
	return &InMemory{
		products:    make(map[uuid.UUID]db.Product),
		stores:      make(map[uuid.UUID]db.Store),
		memberships: make(map[uuid.UUID][]uuid.UUID),
	}
}

// Products returns the ProductRepository view of the catalog.
func (m *InMemory) Products() *InMemoryProducts {
	return &InMemoryProducts{m: m}
}

// Stores returns the StoreRepository view of the catalog.
func (m *InMemory) Stores() *InMemoryStores {
	return &InMemoryStores{m: m}
}

// productLocked assembles a product aggregate. The caller holds mu.
func (m *InMemory) productLocked(id uuid.UUID) (*Product, bool) {
	p, ok := m.products[id]
	if !ok {
		return nil, false
	}
	stores := make([]db.Store, 0, len(m.memberships[id]))
	for _, sid := range m.memberships[id] {
		stores = append(stores, m.stores[sid])
	}
	return &Product{Product: p, Stores: stores}, true
}

// storeLocked assembles a store aggregate. The caller holds mu.
func (m *InMemory) storeLocked(id uuid.UUID) (*Store, bool) {
	s, ok := m.stores[id]
	if !ok {
		return nil, false
	}
	products := make([]db.Product, 0)
	for pid, sids := range m.memberships {
		if slices.Contains(sids, id) {
			products = append(products, m.products[pid])
		}
	}
	slices.SortFunc(products, func(a, b db.Product) int {
		return compareByName(a.Name, b.Name, a.ID, b.ID)
	})
	return &Store{Store: s, Products: products}, true
}

func compareByName(nameA, nameB string, idA, idB uuid.UUID) int {
	if c := strings.Compare(nameA, nameB); c != 0 {
		return c
	}
	return strings.Compare(idA.String(), idB.String())
}

// InMemoryProducts implements ProductRepository over an InMemory catalog.
type InMemoryProducts struct {
	m *InMemory
}

func (r *InMemoryProducts) FindByID(_ context.Context, id uuid.UUID) (*Product, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	p, ok := r.m.productLocked(id)
	if !ok {
		return nil, catalogerrors.ErrProductNotFound
	}
	return p, nil
}

func (r *InMemoryProducts) FindAll(_ context.Context) ([]Product, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	list := make([]Product, 0, len(r.m.products))
	for id := range r.m.products {
		p, _ := r.m.productLocked(id)
		list = append(list, *p)
	}
	slices.SortFunc(list, func(a, b Product) int {
		return compareByName(a.Name, b.Name, a.ID, b.ID)
	})
	return list, nil
}

func (r *InMemoryProducts) Create(_ context.Context, name string, price int64, productType string) (*Product, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	p := db.Product{ID: uuid.New(), Name: name, Price: price, Type: productType}
	r.m.products[p.ID] = p
	return &Product{Product: p, Stores: []db.Store{}}, nil
}

func (r *InMemoryProducts) Update(_ context.Context, id uuid.UUID, name string, price int64, productType string) (*Product, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.products[id]; !ok {
		return nil, catalogerrors.ErrProductNotFound
	}
	r.m.products[id] = db.Product{ID: id, Name: name, Price: price, Type: productType}
	p, _ := r.m.productLocked(id)
	return p, nil
}

func (r *InMemoryProducts) ReplaceStores(_ context.Context, productID uuid.UUID, storeIDs []uuid.UUID) (*Product, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.products[productID]; !ok {
		return nil, catalogerrors.ErrProductNotFound
	}
	for _, sid := range storeIDs {
		if _, ok := r.m.stores[sid]; !ok {
			return nil, catalogerrors.ErrStoreNotFound
		}
	}
	r.m.memberships[productID] = slices.Clone(storeIDs)
	p, _ := r.m.productLocked(productID)
	return p, nil
}

func (r *InMemoryProducts) DeleteByID(_ context.Context, id uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.products[id]; !ok {
		return catalogerrors.ErrProductNotFound
	}
	delete(r.m.products, id)
	delete(r.m.memberships, id)
	return nil
}

// InMemoryStores implements StoreRepository over an InMemory catalog.
type InMemoryStores struct {
	m *InMemory
}

func (r *InMemoryStores) FindByID(_ context.Context, id uuid.UUID) (*Store, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	s, ok := r.m.storeLocked(id)
	if !ok {
		return nil, catalogerrors.ErrStoreNotFound
	}
	return s, nil
}

func (r *InMemoryStores) FindAll(_ context.Context) ([]Store, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	list := make([]Store, 0, len(r.m.stores))
	for id := range r.m.stores {
		s, _ := r.m.storeLocked(id)
		list = append(list, *s)
	}
	slices.SortFunc(list, func(a, b Store) int {
		return compareByName(a.Name, b.Name, a.ID, b.ID)
	})
	return list, nil
}

func (r *InMemoryStores) Create(_ context.Context, name, city, address string) (*Store, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	s := db.Store{ID: uuid.New(), Name: name, City: city, Address: address}
	r.m.stores[s.ID] = s
	return &Store{Store: s, Products: []db.Product{}}, nil
}

func (r *InMemoryStores) Update(_ context.Context, id uuid.UUID, name, city, address string) (*Store, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.stores[id]; !ok {
		return nil, catalogerrors.ErrStoreNotFound
	}
	r.m.stores[id] = db.Store{ID: id, Name: name, City: city, Address: address}
	s, _ := r.m.storeLocked(id)
	return s, nil
}

func (r *InMemoryStores) DeleteByID(_ context.Context, id uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.stores[id]; !ok {
		return catalogerrors.ErrStoreNotFound
	}
	delete(r.m.stores, id)
	for pid, sids := range r.m.memberships {
		r.m.memberships[pid] = slices.DeleteFunc(sids, func(sid uuid.UUID) bool { return sid == id })
	}
	return nil
}

var (
	_ ProductRepository = (*InMemoryProducts)(nil)
	_ StoreRepository   = (*InMemoryStores)(nil)
	_ ProductRepository = (*PgProductRepository)(nil)
	_ StoreRepository   = (*PgStoreRepository)(nil)
)
