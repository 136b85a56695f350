package memory

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/atcnextgen/catalog-api/internal/core/domain"
	"github.com/atcnextgen/catalog-api/internal/core/ports"
)

type ProductRepository struct {
	mu       sync.RWMutex
	products []*domain.Product
	nextID   int64
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{nextID: 1}
}

func (r *ProductRepository) Insert(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *p
	stored.ID = strconv.FormatInt(r.nextID, 10)
	r.nextID++
	r.products = append(r.products, &stored)

	out := stored
	return &out, nil
}

func (r *ProductRepository) FindByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			out := *p
			return &out, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *ProductRepository) List(_ context.Context, filter ports.ListProductsFilter) ([]*domain.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		if !matches(p, filter) {
			continue
		}
		out := *p
		matched = append(matched, &out)
	}

	// Newest first, mirroring the persistent backend's sort.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	skip := (filter.Page - 1) * filter.Limit
	if skip >= len(matched) {
		return []*domain.Product{}, total, nil
	}
	end := skip + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}

func matches(p *domain.Product, f ports.ListProductsFilter) bool {
	if f.Category != "" && !strings.Contains(strings.ToLower(p.Category), strings.ToLower(f.Category)) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}

func (r *ProductRepository) Update(_ context.Context, id string, patch ports.ProductPatch) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.ID != id {
			continue
		}
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Stock != nil {
			p.Stock = *patch.Stock
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		p.UpdatedAt = time.Now().UTC()

		out := *p
		return &out, nil
	}
	return nil, domain.ErrProductNotFound
}

func (r *ProductRepository) Delete(_ context.Context, id string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			out := *p
			return &out, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *ProductRepository) FindLowStock(_ context.Context, threshold int) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	low := make([]*domain.Product, 0)
	for _, p := range r.products {
		if p.Stock < threshold {
			out := *p
			low = append(low, &out)
		}
	}

	sort.SliceStable(low, func(i, j int) bool {
		return low[i].Stock < low[j].Stock
	})
	return low, nil
}

func (r *ProductRepository) Stats(_ context.Context) (*domain.InventoryStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &domain.InventoryStats{}
	for _, p := range r.products {
		stats.TotalValue += p.Price * float64(p.Stock)
		stats.TotalStock += int64(p.Stock)
		stats.TotalProducts++
	}
	return stats, nil
}

// Count reports the number of stored products. Intended for tests.
func (r *ProductRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products)
}
