package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/jayramanidev/portfolio/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// checkoutService implements CheckoutService. Demo mode: the order is
// acknowledged and the cart emptied, but nothing is charged or persisted.
type checkoutService struct {
	carts  CartService
	logger zerolog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(carts CartService, logger zerolog.Logger) CheckoutService {
	return &checkoutService{
		carts:  carts,
		logger: logger.With().Str("service", "checkout").Logger(),
	}
}

// PlaceOrder validates the form fields, requires a non-empty cart, empties
// the cart and returns a confirmation.
func (s *checkoutService) PlaceOrder(ctx context.Context, sessionID string, req *model.CheckoutRequest) (*model.OrderConfirmation, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, model.ErrMissingName
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		return nil, model.ErrInvalidEmail
	}

	view, err := s.carts.View(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	if len(view.Items) == 0 {
		return nil, model.ErrEmptyCart
	}

	orderNumber := newOrderNumber()

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	s.logger.Info().
		Str("order_number", orderNumber).
		Int("item_count", view.Count).
		Float64("total", view.Total).
		Msg("order placed")

	return &model.OrderConfirmation{
		OrderNumber: orderNumber,
		Total:       view.Total,
		Currency:    view.Currency,
	}, nil
}

// newOrderNumber returns an order reference like "ORD-3FA85F64".
func newOrderNumber() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "ORD-" + strings.ToUpper(id[:8])
}
