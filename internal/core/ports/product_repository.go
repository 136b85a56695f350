package ports

import (
	"context"

	"github.com/atcnextgen/catalog-api/internal/core/domain"
)

// ListProductsFilter carries all query parameters for listing products.
type ListProductsFilter struct {
	Category string   // optional: case-insensitive substring match
	MinPrice *float64 // optional: inclusive lower bound
	MaxPrice *float64 // optional: inclusive upper bound
	Page     int      // 1-based
	Limit    int      // rows per page, uncapped
}

// ProductPatch is a sparse update: only non-nil fields are applied, everything
// else is left untouched.
type ProductPatch struct {
	Name        *string
	Price       *float64
	Stock       *int
	Description *string
	Category    *string
}

// ProductRepository defines persistence operations for catalog entries.
// Implementations must keep single-record operations atomic; no multi-record
// transaction is ever required.
type ProductRepository interface {
	// Insert stores a new product and assigns a fresh unique id.
	Insert(ctx context.Context, p *domain.Product) (*domain.Product, error)
	// FindByID returns domain.ErrProductNotFound when no product matches, or
	// domain.ErrInvalidProductID when the id cannot be a valid store id.
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// List returns a page of products matching filter (newest first) and the
	// total match count before pagination.
	List(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, int64, error)
	// Update applies a sparse patch and advances the updatedAt timestamp.
	Update(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error)
	// Delete removes and returns the deleted product.
	Delete(ctx context.Context, id string) (*domain.Product, error)
	// FindLowStock returns products with stock strictly below threshold,
	// ordered ascending by stock.
	FindLowStock(ctx context.Context, threshold int) ([]*domain.Product, error)
	// Stats computes catalog totals. AveragePrice is left for the service.
	Stats(ctx context.Context) (*domain.InventoryStats, error)
}
