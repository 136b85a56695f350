package service

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/atcnextgen/catalog-api/internal/core/domain"
	"github.com/atcnextgen/catalog-api/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// ProductService implements catalog operations on top of a ProductRepository.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if input.Name == "" || input.Price == nil {
		return nil, domain.ErrNameAndPriceRequired
	}
	if *input.Price < 0 {
		return nil, domain.ErrInvalidPrice
	}

	stock := 0
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, domain.ErrInvalidStock
		}
		stock = *input.Stock
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:        input.Name,
		Price:       *input.Price,
		Stock:       stock,
		Description: input.Description,
		Category:    input.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Insert(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

func (s *ProductService) List(ctx context.Context, input ports.ListProductsInput) (*ports.ProductPage, error) {
	page := input.Page
	if page <= 0 {
		page = defaultPage
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	products, total, err := s.repo.List(ctx, ports.ListProductsFilter{
		Category: input.Category,
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	pages := int((total + int64(limit) - 1) / int64(limit))

	return &ports.ProductPage{
		Products: products,
		Page:     page,
		Limit:    limit,
		Total:    total,
		Pages:    pages,
	}, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Update(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	if input.Price != nil && *input.Price < 0 {
		return nil, domain.ErrInvalidPrice
	}
	if input.Stock != nil && *input.Stock < 0 {
		return nil, domain.ErrInvalidStock
	}

	updated, err := s.repo.Update(ctx, id, ports.ProductPatch{
		Name:        input.Name,
		Price:       input.Price,
		Stock:       input.Stock,
		Description: input.Description,
		Category:    input.Category,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", updated.ID).Msg("product updated")
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) (*domain.Product, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", deleted.ID).Str("name", deleted.Name).Msg("product deleted")
	return deleted, nil
}

func (s *ProductService) LowStock(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.FindLowStock(ctx, domain.LowStockThreshold)
}

func (s *ProductService) TotalValue(ctx context.Context) (*domain.InventoryStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	// Guard the division: an empty (or zero-stock) catalog has no average.
	if stats.TotalStock > 0 {
		stats.AveragePrice = math.Round(stats.TotalValue/float64(stats.TotalStock)*100) / 100
	} else {
		stats.AveragePrice = 0
	}
	return stats, nil
}
