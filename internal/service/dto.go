package service

import (
	"github.com/abgdnv/gocatalog/internal/store"
	"github.com/abgdnv/gocatalog/internal/store/db"
)

// Product types accepted by the catalog.
const (
	ProductTypePerishable    = "Perishable"
	ProductTypeNonPerishable = "NonPerishable"
)

// ProductDto represents the data transfer object for a product with its stores in association order.
type ProductDto struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Price  int64             `json:"price"`
	Type   string            `json:"type"`
	Stores []StoreSummaryDto `json:"stores"`
}

// ProductSummaryDto is a product without its stores, as listed inside a store.
type ProductSummaryDto struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Type  string `json:"type"`
}

// ProductCreateDto represents the data transfer object for creating a new product.
// The type is checked by the service so that an unknown value is a precondition failure, not a malformed request.
type ProductCreateDto struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Price int64  `json:"price" validate:"min=0"`
	Type  string `json:"type"`
}

// ProductPatchDto carries the fields to overwrite on update. Nil fields keep their persisted value.
type ProductPatchDto struct {
	Name  *string `json:"name"  validate:"omitempty,min=1,max=100"`
	Price *int64  `json:"price" validate:"omitempty,min=0"`
	Type  *string `json:"type"`
}

// StoreDto represents the data transfer object for a store with its products.
type StoreDto struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	City     string              `json:"city"`
	Address  string              `json:"address"`
	Products []ProductSummaryDto `json:"products"`
}

// StoreSummaryDto is a store without its products, as listed inside a product.
type StoreSummaryDto struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address"`
}

// StoreCreateDto represents the data transfer object for creating a new store.
type StoreCreateDto struct {
	Name    string `json:"name"    validate:"required"`
	City    string `json:"city"`
	Address string `json:"address" validate:"required"`
}

// StorePatchDto carries the fields to overwrite on update. Nil fields keep their persisted value.
type StorePatchDto struct {
	Name    *string `json:"name"    validate:"omitempty,min=1"`
	City    *string `json:"city"`
	Address *string `json:"address" validate:"omitempty,min=1"`
}

// StoreRefDto references an existing store in a replacement list.
type StoreRefDto struct {
	ID string `json:"id" validate:"required,uuid"`
}

func toProductDto(p *store.Product) *ProductDto {
	stores := make([]StoreSummaryDto, 0, len(p.Stores))
	for i := range p.Stores {
		stores = append(stores, toStoreSummary(&p.Stores[i]))
	}
	return &ProductDto{
		ID:     p.ID.String(),
		Name:   p.Name,
		Price:  p.Price,
		Type:   p.Type,
		Stores: stores,
	}
}

func toProductSummary(p *db.Product) ProductSummaryDto {
	return ProductSummaryDto{
		ID:    p.ID.String(),
		Name:  p.Name,
		Price: p.Price,
		Type:  p.Type,
	}
}

func toStoreDto(s *store.Store) *StoreDto {
	products := make([]ProductSummaryDto, 0, len(s.Products))
	for i := range s.Products {
		products = append(products, toProductSummary(&s.Products[i]))
	}
	return &StoreDto{
		ID:       s.ID.String(),
		Name:     s.Name,
		City:     s.City,
		Address:  s.Address,
		Products: products,
	}
}

func toStoreSummary(s *db.Store) StoreSummaryDto {
	return StoreSummaryDto{
		ID:      s.ID.String(),
		Name:    s.Name,
		City:    s.City,
		Address: s.Address,
	}
}
