package service

import (
	"context"
	"fmt"
	"math"

	"github.com/jayramanidev/portfolio/internal/config"
	"github.com/jayramanidev/portfolio/internal/model"
	"github.com/jayramanidev/portfolio/internal/repository"
	"github.com/jayramanidev/portfolio/internal/session"

	"github.com/rs/zerolog"
)

// cartService implements CartService. Each operation is a read-modify-write
// of one session's data against the injected session store; sessions are
// independent, so there is no cross-session coordination.
type cartService struct {
	sessions    session.Store
	productRepo repository.ProductRepository
	pricing     config.PricingConfig
	logger      zerolog.Logger
}

// NewCartService creates a new cart service. Tax rate and currency come from
// configuration, not constants.
func NewCartService(
	sessions session.Store,
	productRepo repository.ProductRepository,
	pricing config.PricingConfig,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		sessions:    sessions,
		productRepo: productRepo,
		pricing:     pricing,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

// load returns the session's data, creating empty data for a fresh session.
func (s *cartService) load(ctx context.Context, sessionID string) (*session.Data, error) {
	data, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if data == nil {
		data = session.NewData()
	}
	return data, nil
}

// Add increments the product's quantity by 1, inserting the entry if absent.
func (s *cartService) Add(ctx context.Context, sessionID string, productID int) (int, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", productID).Msg("failed to resolve product")
		return 0, fmt.Errorf("failed to resolve product: %w", err)
	}
	if product == nil {
		s.logger.Warn().Int("product_id", productID).Msg("add rejected: unknown product")
		return 0, model.ErrProductNotFound
	}

	data, err := s.load(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	data.Cart[productID]++

	if err := s.sessions.Save(ctx, sessionID, data); err != nil {
		return 0, fmt.Errorf("failed to save session: %w", err)
	}

	count := data.CartCount()
	s.logger.Debug().
		Int("product_id", productID).
		Int("quantity", data.Cart[productID]).
		Int("cart_count", count).
		Msg("item added to cart")

	return count, nil
}

// Update sets the entry to quantity; quantity <= 0 removes the entry.
func (s *cartService) Update(ctx context.Context, sessionID string, productID, quantity int) (int, error) {
	data, err := s.load(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	if quantity > 0 {
		data.Cart[productID] = quantity
	} else {
		delete(data.Cart, productID)
	}

	if err := s.sessions.Save(ctx, sessionID, data); err != nil {
		return 0, fmt.Errorf("failed to save session: %w", err)
	}

	count := data.CartCount()
	s.logger.Debug().
		Int("product_id", productID).
		Int("quantity", quantity).
		Int("cart_count", count).
		Msg("cart updated")

	return count, nil
}

// Remove removes the entry unconditionally.
func (s *cartService) Remove(ctx context.Context, sessionID string, productID int) (int, error) {
	data, err := s.load(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	delete(data.Cart, productID)

	if err := s.sessions.Save(ctx, sessionID, data); err != nil {
		return 0, fmt.Errorf("failed to save session: %w", err)
	}

	count := data.CartCount()
	s.logger.Debug().
		Int("product_id", productID).
		Int("cart_count", count).
		Msg("item removed from cart")

	return count, nil
}

// Contents returns the raw cart mapping and the total item count.
func (s *cartService) Contents(ctx context.Context, sessionID string) (map[int]int, int, error) {
	data, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, 0, err
	}
	return data.Cart, data.CartCount(), nil
}

// View materialises the cart. Totals are recomputed from product price and
// quantity on every call; entries whose product no longer resolves are
// dropped and excluded from totals.
func (s *cartService) View(ctx context.Context, sessionID string) (*model.CartView, error) {
	data, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	view := &model.CartView{
		Items:    []model.CartLine{},
		Currency: s.pricing.Currency,
	}

	for productID, quantity := range data.Cart {
		product, err := s.productRepo.GetByID(ctx, productID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve product: %w", err)
		}
		if product == nil {
			// Stale entry: the product left the catalogue after it was
			// added. Dropped from the view, not from the session.
			s.logger.Debug().Int("product_id", productID).Msg("dropping stale cart entry")
			continue
		}

		line := model.CartLine{
			Product:   *product,
			Quantity:  quantity,
			LineTotal: round2(product.Price * float64(quantity)),
		}
		view.Items = append(view.Items, line)
		view.Subtotal += product.Price * float64(quantity)
		view.Count += quantity
	}

	view.Subtotal = round2(view.Subtotal)
	view.Tax = round2(view.Subtotal * s.pricing.TaxRate)
	view.Total = round2(view.Subtotal + view.Tax)

	return view, nil
}

// ToggleWishlist flips wishlist membership for the product.
func (s *cartService) ToggleWishlist(ctx context.Context, sessionID string, productID int) (bool, int, error) {
	data, err := s.load(ctx, sessionID)
	if err != nil {
		return false, 0, err
	}

	wishlisted := data.ToggleWishlist(productID)

	if err := s.sessions.Save(ctx, sessionID, data); err != nil {
		return false, 0, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Debug().
		Int("product_id", productID).
		Bool("wishlisted", wishlisted).
		Msg("wishlist toggled")

	return wishlisted, data.CartCount(), nil
}

// Clear empties the session's cart, keeping the wishlist.
func (s *cartService) Clear(ctx context.Context, sessionID string) error {
	data, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}

	data.Cart = make(map[int]int)

	if err := s.sessions.Save(ctx, sessionID, data); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Debug().Msg("cart cleared")
	return nil
}

// round2 rounds a monetary value to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
