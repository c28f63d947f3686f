package handler

import (
	"net/http"
	"strconv"

	"github.com/jayramanidev/portfolio/internal/model"
	"github.com/jayramanidev/portfolio/internal/service"
	"github.com/jayramanidev/portfolio/internal/session"

	"github.com/rs/zerolog"
)

// Cart action names accepted by the action endpoint.
const (
	actionAdd            = "add"
	actionRemove         = "remove"
	actionUpdate         = "update"
	actionGet            = "get"
	actionWishlistToggle = "wishlist_toggle"
)

// CartHandler handles cart-related HTTP requests.
type CartHandler struct {
	carts  service.CartService
	logger zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(carts service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		carts:  carts,
		logger: logger.With().Str("handler", "cart").Logger(),
	}
}

// Action handles POST /api/cart. The body is form-encoded with fields
// action, product_id and (for update) quantity. Business failures are
// reported in the response body with success=false; the HTTP status stays
// 200 so the client can always read cartCount.
func (h *CartHandler) Action(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form body", h.logger)
		return
	}

	action := r.PostFormValue("action")
	if action == "" {
		writeError(w, http.StatusBadRequest, "action is required", h.logger)
		return
	}

	productID := 0
	if raw := r.PostFormValue("product_id"); raw != "" {
		var err error
		productID, err = strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid product_id", h.logger)
			return
		}
	}

	sessionID := session.IDFromContext(r.Context())
	ctx := r.Context()

	resp := model.CartActionResponse{}

	switch action {
	case actionAdd:
		count, err := h.carts.Add(ctx, sessionID, productID)
		if err != nil {
			h.respondFailure(w, r, &resp, err)
			return
		}
		resp.Success = true
		resp.Message = "Item added to cart"
		resp.CartCount = count

	case actionRemove:
		count, err := h.carts.Remove(ctx, sessionID, productID)
		if err != nil {
			h.respondFailure(w, r, &resp, err)
			return
		}
		resp.Success = true
		resp.Message = "Item removed from cart"
		resp.CartCount = count

	case actionUpdate:
		quantity, err := strconv.Atoi(r.PostFormValue("quantity"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid quantity", h.logger)
			return
		}
		count, err := h.carts.Update(ctx, sessionID, productID, quantity)
		if err != nil {
			h.respondFailure(w, r, &resp, err)
			return
		}
		resp.Success = true
		resp.Message = "Cart updated"
		resp.CartCount = count

	case actionGet:
		cart, count, err := h.carts.Contents(ctx, sessionID)
		if err != nil {
			h.respondFailure(w, r, &resp, err)
			return
		}
		resp.Success = true
		resp.Cart = cart
		resp.CartCount = count

	case actionWishlistToggle:
		wishlisted, count, err := h.carts.ToggleWishlist(ctx, sessionID, productID)
		if err != nil {
			h.respondFailure(w, r, &resp, err)
			return
		}
		resp.Success = true
		if wishlisted {
			resp.Message = "Added to wishlist"
		} else {
			resp.Message = "Removed from wishlist"
		}
		resp.Wishlisted = &wishlisted
		resp.CartCount = count

	default:
		writeError(w, http.StatusBadRequest, "unknown action", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// View handles GET /api/cart/view: the full materialised cart with derived
// totals.
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	view, err := h.carts.View(r.Context(), session.IDFromContext(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read cart", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// respondFailure reports a business failure through the action response
// shape, keeping cartCount current so the client badge stays accurate.
func (h *CartHandler) respondFailure(w http.ResponseWriter, r *http.Request, resp *model.CartActionResponse, err error) {
	domainErr := asDomainError(err)
	if domainErr == nil {
		writeError(w, http.StatusInternalServerError, "cart operation failed", h.logger)
		return
	}

	sessionID := session.IDFromContext(r.Context())
	if _, count, countErr := h.carts.Contents(r.Context(), sessionID); countErr == nil {
		resp.CartCount = count
	}

	h.logger.Warn().
		Str("code", domainErr.Code).
		Str("message", domainErr.Message).
		Msg("cart action rejected")

	resp.Success = false
	resp.Message = domainErr.Message
	writeJSON(w, http.StatusOK, resp)
}
