package handler

import (
	"net/http"

	"github.com/jayramanidev/portfolio/internal/model"
	"github.com/jayramanidev/portfolio/internal/service"
	"github.com/jayramanidev/portfolio/internal/session"

	"github.com/rs/zerolog"
)

// CheckoutHandler handles the demo checkout endpoint.
type CheckoutHandler struct {
	checkout service.CheckoutService
	logger   zerolog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(checkout service.CheckoutService, logger zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		logger:   logger.With().Str("handler", "checkout").Logger(),
	}
}

// Place handles POST /api/checkout with form fields name and email.
// Validation failures leave the cart untouched.
func (h *CheckoutHandler) Place(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form body", h.logger)
		return
	}

	req := &model.CheckoutRequest{
		Name:  r.PostFormValue("name"),
		Email: r.PostFormValue("email"),
	}

	order, err := h.checkout.PlaceOrder(r.Context(), session.IDFromContext(r.Context()), req)
	if err != nil {
		if domainErr := asDomainError(err); domainErr != nil {
			writeJSON(w, statusForDomainError(domainErr), model.CheckoutResponse{
				Success: false,
				Message: domainErr.Message,
			})
			return
		}
		writeError(w, http.StatusInternalServerError, "checkout failed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.CheckoutResponse{
		Success: true,
		Message: "Order placed",
		Order:   order,
	})
}
