// Package cartclient is the storefront's cart controller. It keeps a local
// mirror of added items for instant display, dispatches actions to the cart
// endpoint, and reconciles its state from the server's responses: the
// server's view wins on every successful round trip, the mirror only
// bridges the gap in between.
package cartclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jayramanidev/portfolio/internal/model"

	"github.com/rs/zerolog"
)

// LineItem is one mirrored cart row: just enough to render a line without a
// server round trip. It is not authoritative.
type LineItem struct {
	ProductID int
	Name      string
	Price     float64
	Quantity  int
}

// Client talks to the cart endpoints of one storefront server on behalf of
// one session. The session cookie lives in the client's cookie jar.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger

	mu     sync.Mutex
	mirror []LineItem
	count  int // badge count, always the server's value
	view   ViewState
}

// New creates a cart client for the given server base URL, e.g.
// "http://localhost:8080".
func New(baseURL string, logger zerolog.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 15 * time.Second,
		},
		logger: logger.With().Str("component", "cart-client").Logger(),
	}, nil
}

// AddToCart optimistically adds one unit of the product to the local mirror
// after the server confirms the add. The badge count comes from the
// server's response, never from the mirror. On failure the mirror is left
// unchanged and the error is returned for the caller to surface.
func (c *Client) AddToCart(ctx context.Context, productID int, name string, price float64) (int, error) {
	resp, err := c.postAction(ctx, "add", productID, nil)
	if err != nil {
		return c.Count(), err
	}
	if !resp.Success {
		return c.Count(), fmt.Errorf("add rejected: %s", resp.Message)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	found := false
	for i := range c.mirror {
		if c.mirror[i].ProductID == productID {
			c.mirror[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		c.mirror = append(c.mirror, LineItem{
			ProductID: productID,
			Name:      name,
			Price:     price,
			Quantity:  1,
		})
	}

	c.count = resp.CartCount
	c.logger.Debug().
		Int("product_id", productID).
		Int("cart_count", c.count).
		Msg("item added")

	return c.count, nil
}

// RemoveFromCart removes the product. On success the mirror is filtered and
// the badge count taken from the server's response.
func (c *Client) RemoveFromCart(ctx context.Context, productID int) (int, error) {
	resp, err := c.postAction(ctx, "remove", productID, nil)
	if err != nil {
		return c.Count(), err
	}
	if !resp.Success {
		return c.Count(), fmt.Errorf("remove rejected: %s", resp.Message)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	filtered := c.mirror[:0]
	for _, item := range c.mirror {
		if item.ProductID != productID {
			filtered = append(filtered, item)
		}
	}
	c.mirror = filtered
	c.count = resp.CartCount

	return c.count, nil
}

// UpdateQuantity applies a quantity delta to the displayed quantity. A
// candidate below 1 routes to remove; otherwise the new quantity is sent to
// the server and the whole view is refreshed so totals stay consistent with
// the server's arithmetic.
func (c *Client) UpdateQuantity(ctx context.Context, productID, delta int) error {
	c.mu.Lock()
	current := 0
	for _, item := range c.mirror {
		if item.ProductID == productID {
			current = item.Quantity
			break
		}
	}
	c.mu.Unlock()

	candidate := current + delta
	if candidate < 1 {
		_, err := c.RemoveFromCart(ctx, productID)
		return err
	}

	resp, err := c.postAction(ctx, "update", productID, &candidate)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("update rejected: %s", resp.Message)
	}

	return c.Refresh(ctx)
}

// Refresh fetches the server's materialised view and replaces the mirror
// wholesale; this is the reconciliation step that discards any local drift,
// including writes from other tabs on the same session. On failure the
// previous mirror and view are retained and the state becomes StateError.
func (c *Client) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.view = ViewState{State: StateLoading, View: c.view.View}
	c.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/cart/view", nil)
	if err != nil {
		return c.failRefresh(fmt.Errorf("failed to build request: %w", err))
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return c.failRefresh(fmt.Errorf("view request failed: %w", err))
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return c.failRefresh(fmt.Errorf("unexpected status %d from view endpoint", httpResp.StatusCode))
	}

	var view model.CartView
	if err := json.NewDecoder(httpResp.Body).Decode(&view); err != nil {
		return c.failRefresh(fmt.Errorf("failed to decode view: %w", err))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Server view wins: rebuild the mirror from the confirmed lines.
	c.mirror = c.mirror[:0]
	for _, line := range view.Items {
		c.mirror = append(c.mirror, LineItem{
			ProductID: line.ID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
		})
	}
	c.count = view.Count
	c.view = ViewState{State: StateReady, View: &view}

	c.logger.Debug().
		Int("lines", len(c.mirror)).
		Int("cart_count", c.count).
		Msg("view reconciled from server")

	return nil
}

// Items returns a copy of the local mirror.
func (c *Client) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]LineItem, len(c.mirror))
	copy(out, c.mirror)
	return out
}

// Count returns the displayed badge count: the last count confirmed by the
// server.
func (c *Client) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// View returns the current view state.
func (c *Client) View() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

func (c *Client) failRefresh(err error) error {
	c.mu.Lock()
	c.view = ViewState{State: StateError, View: c.view.View, Err: err}
	c.mu.Unlock()

	c.logger.Warn().Err(err).Msg("view refresh failed")
	return err
}

// postAction sends one form-encoded cart action and decodes the response.
// Quantity is only included when non-nil.
func (c *Client) postAction(ctx context.Context, action string, productID int, quantity *int) (*model.CartActionResponse, error) {
	form := url.Values{}
	form.Set("action", action)
	form.Set("product_id", strconv.Itoa(productID))
	if quantity != nil {
		form.Set("quantity", strconv.Itoa(*quantity))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/cart", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cart action failed: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from cart endpoint", httpResp.StatusCode)
	}

	var resp model.CartActionResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &resp, nil
}
