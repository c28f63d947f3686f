package service

import (
	"context"

	"github.com/jayramanidev/portfolio/internal/model"
)

// ProductService defines operations for browsing the catalogue.
type ProductService interface {
	// GetAll retrieves products with pagination.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int) (*model.Product, error)

	// GetByCategory retrieves products belonging to a category.
	GetByCategory(ctx context.Context, category string) ([]model.Product, error)
}

// CartService defines the authoritative cart operations for one session.
// Every operation takes the session ID explicitly; the service owns no
// ambient session state.
type CartService interface {
	// Add increments the quantity for the product by 1, inserting the entry
	// if absent. Returns the new total item count.
	Add(ctx context.Context, sessionID string, productID int) (int, error)

	// Update sets the entry to quantity; quantity <= 0 removes the entry.
	// Idempotent. Returns the new total item count.
	Update(ctx context.Context, sessionID string, productID, quantity int) (int, error)

	// Remove removes the entry unconditionally; no-op if absent. Returns
	// the new total item count.
	Remove(ctx context.Context, sessionID string, productID int) (int, error)

	// Contents returns the raw cart mapping and the total item count.
	Contents(ctx context.Context, sessionID string) (map[int]int, int, error)

	// View materialises the cart: resolved lines plus derived totals.
	// Entries whose product no longer resolves are dropped silently.
	View(ctx context.Context, sessionID string) (*model.CartView, error)

	// ToggleWishlist flips wishlist membership for the product and reports
	// the new state, along with the cart count.
	ToggleWishlist(ctx context.Context, sessionID string, productID int) (bool, int, error)

	// Clear empties the session's cart.
	Clear(ctx context.Context, sessionID string) error
}

// CheckoutService defines the demo checkout flow.
type CheckoutService interface {
	// PlaceOrder validates the request, requires a non-empty cart, empties
	// it and returns a confirmation. No payment is processed.
	PlaceOrder(ctx context.Context, sessionID string, req *model.CheckoutRequest) (*model.OrderConfirmation, error)
}
