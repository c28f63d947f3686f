package repository

import (
	"context"

	"github.com/jayramanidev/portfolio/internal/catalog"
	"github.com/jayramanidev/portfolio/internal/model"

	"github.com/rs/zerolog"
)

// catalogProductRepository implements ProductRepository over the immutable
// in-memory catalogue. Context arguments are kept for interface symmetry
// even though no lookup here can block.
type catalogProductRepository struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewProductRepository creates a product repository backed by the loaded
// catalogue.
func NewProductRepository(cat *catalog.Catalog, logger zerolog.Logger) ProductRepository {
	return &catalogProductRepository{
		catalog: cat,
		logger:  logger.With().Str("repository", "product").Logger(),
	}
}

// GetAll retrieves products in catalogue order with pagination.
func (r *catalogProductRepository) GetAll(_ context.Context, limit, offset int) ([]model.Product, error) {
	all := r.catalog.All()

	if offset >= len(all) {
		return []model.Product{}, nil
	}

	end := offset + limit
	if end > len(all) {
		end = len(all)
	}

	r.logger.Debug().
		Int("limit", limit).
		Int("offset", offset).
		Int("returned", end-offset).
		Msg("retrieved products")

	return all[offset:end], nil
}

// GetByID retrieves a single product by its ID.
func (r *catalogProductRepository) GetByID(_ context.Context, id int) (*model.Product, error) {
	p, ok := r.catalog.ByID(id)
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// GetByIDs retrieves multiple products by their IDs, omitting unknown IDs.
func (r *catalogProductRepository) GetByIDs(_ context.Context, ids []int) ([]model.Product, error) {
	products := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.catalog.ByID(id); ok {
			products = append(products, p)
		}
	}
	return products, nil
}

// GetByCategory retrieves products belonging to the given category.
func (r *catalogProductRepository) GetByCategory(_ context.Context, category string) ([]model.Product, error) {
	var products []model.Product
	for _, p := range r.catalog.All() {
		if p.Category == category {
			products = append(products, p)
		}
	}
	return products, nil
}
