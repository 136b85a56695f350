package ports

import (
	"context"

	"github.com/atcnextgen/catalog-api/internal/core/domain"
)

// CreateProductInput carries the fields for a new product. Price and Stock are
// pointers so that "absent" is distinguishable from zero.
type CreateProductInput struct {
	Name        string
	Price       *float64
	Stock       *int
	Description string
	Category    string
}

// UpdateProductInput is the sparse patch accepted by Update; nil fields are
// left untouched.
type UpdateProductInput struct {
	Name        *string
	Price       *float64
	Stock       *int
	Description *string
	Category    *string
}

// ListProductsInput mirrors the list query parameters before normalization.
type ListProductsInput struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Page     int
	Limit    int
}

// ProductPage is one page of list results plus pagination metadata.
type ProductPage struct {
	Products []*domain.Product
	Page     int
	Limit    int
	Total    int64
	Pages    int
}

type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	List(ctx context.Context, input ListProductsInput) (*ProductPage, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) (*domain.Product, error)
	LowStock(ctx context.Context) ([]*domain.Product, error)
	TotalValue(ctx context.Context) (*domain.InventoryStats, error)
}
