package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/jayramanidev/portfolio/internal/model"
	"github.com/jayramanidev/portfolio/internal/session"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCartService is a mock implementation of service.CartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Add(ctx context.Context, sessionID string, productID int) (int, error) {
	args := m.Called(ctx, sessionID, productID)
	return args.Int(0), args.Error(1)
}

func (m *MockCartService) Update(ctx context.Context, sessionID string, productID, quantity int) (int, error) {
	args := m.Called(ctx, sessionID, productID, quantity)
	return args.Int(0), args.Error(1)
}

func (m *MockCartService) Remove(ctx context.Context, sessionID string, productID int) (int, error) {
	args := m.Called(ctx, sessionID, productID)
	return args.Int(0), args.Error(1)
}

func (m *MockCartService) Contents(ctx context.Context, sessionID string) (map[int]int, int, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).(map[int]int), args.Int(1), args.Error(2)
}

func (m *MockCartService) View(ctx context.Context, sessionID string) (*model.CartView, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartView), args.Error(1)
}

func (m *MockCartService) ToggleWishlist(ctx context.Context, sessionID string, productID int) (bool, int, error) {
	args := m.Called(ctx, sessionID, productID)
	return args.Bool(0), args.Int(1), args.Error(2)
}

func (m *MockCartService) Clear(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

const testSessionID = "test-session-id"

// newCartRequest builds a form-encoded POST /api/cart with a session ID
// already on the context, the way the session middleware would leave it.
func newCartRequest(t *testing.T, form url.Values) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req.WithContext(session.WithID(req.Context(), testSessionID))
}

func decodeActionResponse(t *testing.T, rec *httptest.ResponseRecorder) model.CartActionResponse {
	t.Helper()
	var resp model.CartActionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestCartHandler_Action_Add(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("success", func(t *testing.T) {
		mockCarts := new(MockCartService)
		mockCarts.On("Add", mock.Anything, testSessionID, 5).Return(3, nil)

		handler := NewCartHandler(mockCarts, logger)
		rec := httptest.NewRecorder()
		handler.Action(rec, newCartRequest(t, url.Values{"action": {"add"}, "product_id": {"5"}}))

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeActionResponse(t, rec)
		assert.True(t, resp.Success)
		assert.Equal(t, "Item added to cart", resp.Message)
		assert.Equal(t, 3, resp.CartCount)
		mockCarts.AssertExpectations(t)
	})

	t.Run("unknown product reports failure with current count", func(t *testing.T) {
		mockCarts := new(MockCartService)
		mockCarts.On("Add", mock.Anything, testSessionID, 99).Return(0, model.ErrProductNotFound)
		mockCarts.On("Contents", mock.Anything, testSessionID).Return(map[int]int{5: 2}, 2, nil)

		handler := NewCartHandler(mockCarts, logger)
		rec := httptest.NewRecorder()
		handler.Action(rec, newCartRequest(t, url.Values{"action": {"add"}, "product_id": {"99"}}))

		assert.Equal(t, http.StatusOK, rec.Code, "business failures stay at 200")
		resp := decodeActionResponse(t, rec)
		assert.False(t, resp.Success)
		assert.Equal(t, 2, resp.CartCount, "count must reflect the untouched cart")
		mockCarts.AssertExpectations(t)
	})
}

func TestCartHandler_Action_Update(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("success", func(t *testing.T) {
		mockCarts := new(MockCartService)
		mockCarts.On("Update", mock.Anything, testSessionID, 5, 4).Return(4, nil)

		handler := NewCartHandler(mockCarts, logger)
		rec := httptest.NewRecorder()
		handler.Action(rec, newCartRequest(t, url.Values{
			"action":     {"update"},
			"product_id": {"5"},
			"quantity":   {"4"},
		}))

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeActionResponse(t, rec)
		assert.True(t, resp.Success)
		assert.Equal(t, 4, resp.CartCount)
	})

	t.Run("malformed quantity", func(t *testing.T) {
		mockCarts := new(MockCartService)

		handler := NewCartHandler(mockCarts, logger)
		rec := httptest.NewRecorder()
		handler.Action(rec, newCartRequest(t, url.Values{
			"action":     {"update"},
			"product_id": {"5"},
			"quantity":   {"lots"},
		}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockCarts.AssertNotCalled(t, "Update")
	})
}

func TestCartHandler_Action_Remove(t *testing.T) {
	mockCarts := new(MockCartService)
	mockCarts.On("Remove", mock.Anything, testSessionID, 5).Return(0, nil)

	handler := NewCartHandler(mockCarts, zerolog.Nop())
	rec := httptest.NewRecorder()
	handler.Action(rec, newCartRequest(t, url.Values{"action": {"remove"}, "product_id": {"5"}}))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeActionResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Item removed from cart", resp.Message)
	assert.Equal(t, 0, resp.CartCount)
}

func TestCartHandler_Action_Get(t *testing.T) {
	mockCarts := new(MockCartService)
	mockCarts.On("Contents", mock.Anything, testSessionID).Return(map[int]int{5: 2, 7: 1}, 3, nil)

	handler := NewCartHandler(mockCarts, zerolog.Nop())
	rec := httptest.NewRecorder()
	handler.Action(rec, newCartRequest(t, url.Values{"action": {"get"}}))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeActionResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, map[int]int{5: 2, 7: 1}, resp.Cart)
	assert.Equal(t, 3, resp.CartCount)
}

func TestCartHandler_Action_WishlistToggle(t *testing.T) {
	mockCarts := new(MockCartService)
	mockCarts.On("ToggleWishlist", mock.Anything, testSessionID, 5).Return(true, 2, nil)

	handler := NewCartHandler(mockCarts, zerolog.Nop())
	rec := httptest.NewRecorder()
	handler.Action(rec, newCartRequest(t, url.Values{"action": {"wishlist_toggle"}, "product_id": {"5"}}))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeActionResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Added to wishlist", resp.Message)
	require.NotNil(t, resp.Wishlisted)
	assert.True(t, *resp.Wishlisted)
}

func TestCartHandler_Action_BadRequests(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name string
		form url.Values
	}{
		{name: "Missing action", form: url.Values{"product_id": {"5"}}},
		{name: "Unknown action", form: url.Values{"action": {"teleport"}, "product_id": {"5"}}},
		{name: "Malformed product_id", form: url.Values{"action": {"add"}, "product_id": {"five"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewCartHandler(new(MockCartService), logger)
			rec := httptest.NewRecorder()
			handler.Action(rec, newCartRequest(t, tt.form))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCartHandler_Action_MethodNotAllowed(t *testing.T) {
	handler := NewCartHandler(new(MockCartService), zerolog.Nop())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	handler.Action(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCartHandler_View(t *testing.T) {
	mockCarts := new(MockCartService)
	view := &model.CartView{
		Items: []model.CartLine{
			{Product: model.Product{ID: 5, Name: "Star Chart Deck", Price: 19.99}, Quantity: 2, LineTotal: 39.98},
		},
		Subtotal: 39.98,
		Tax:      3.20,
		Total:    43.18,
		Count:    2,
		Currency: "USD",
	}
	mockCarts.On("View", mock.Anything, testSessionID).Return(view, nil)

	handler := NewCartHandler(mockCarts, zerolog.Nop())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cart/view", nil)
	req = req.WithContext(session.WithID(req.Context(), testSessionID))
	handler.View(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got model.CartView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, *view, got)
}
