package repository

import (
	"context"

	"github.com/jayramanidev/portfolio/internal/model"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves all products with pagination support.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns (nil, nil) when
	// the product is unknown.
	GetByID(ctx context.Context, id int) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs. Unknown IDs are
	// omitted from the result.
	GetByIDs(ctx context.Context, ids []int) ([]model.Product, error)

	// GetByCategory retrieves products belonging to the given category.
	GetByCategory(ctx context.Context, category string) ([]model.Product, error)
}
