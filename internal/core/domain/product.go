package domain

import (
	"errors"
	"time"
)

// LowStockThreshold is the stock level below which a product is reported by
// the low-stock endpoint.
const LowStockThreshold = 10

var ErrProductNotFound = errors.New("product not found")
var ErrInvalidProductID = errors.New("invalid product id format")
var ErrNameAndPriceRequired = errors.New("name and price are required")
var ErrInvalidPrice = errors.New("price must be a non-negative number")
var ErrInvalidStock = errors.New("stock must be a non-negative integer")

// Product is a single catalog entry. IDs are assigned by the backing store and
// immutable afterwards; UpdatedAt advances on every mutation.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// InventoryStats aggregates the whole catalog. AveragePrice is
// TotalValue / TotalStock rounded to two decimals, and 0 for an empty stock.
type InventoryStats struct {
	TotalValue    float64 `json:"totalValue"`
	TotalProducts int64   `json:"totalProducts"`
	TotalStock    int64   `json:"totalStock"`
	AveragePrice  float64 `json:"averagePrice"`
}
