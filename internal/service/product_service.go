package service

import (
	"context"
	"fmt"

	"github.com/jayramanidev/portfolio/internal/model"
	"github.com/jayramanidev/portfolio/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// GetAll retrieves products with pagination.
func (s *productService) GetAll(ctx context.Context, limit, offset int) ([]model.Product, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	products, err := s.productRepo.GetAll(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to get all products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().
		Int("count", len(products)).
		Int("limit", limit).
		Int("offset", offset).
		Msg("retrieved products")

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int) (*model.Product, error) {
	if id <= 0 {
		s.logger.Warn().Int("product_id", id).Msg("invalid product ID")
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// GetByCategory retrieves products belonging to a category.
func (s *productService) GetByCategory(ctx context.Context, category string) ([]model.Product, error) {
	products, err := s.productRepo.GetByCategory(ctx, category)
	if err != nil {
		s.logger.Error().Err(err).Str("category", category).Msg("failed to get products by category")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().
		Str("category", category).
		Int("count", len(products)).
		Msg("retrieved products by category")

	return products, nil
}
