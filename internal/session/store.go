package session

import (
	"context"
)

// Data is everything a browsing session owns: the cart mapping
// (product ID -> quantity) and the wishlist. It carries no identity or
// auth state.
type Data struct {
	Cart     map[int]int `json:"cart"`
	Wishlist []int       `json:"wishlist,omitempty"`
}

// NewData returns empty session data.
func NewData() *Data {
	return &Data{Cart: make(map[int]int)}
}

// CartCount returns the total item count: the sum of all quantities.
func (d *Data) CartCount() int {
	count := 0
	for _, qty := range d.Cart {
		count += qty
	}
	return count
}

// HasWishlisted reports whether the product is on the wishlist.
func (d *Data) HasWishlisted(productID int) bool {
	for _, id := range d.Wishlist {
		if id == productID {
			return true
		}
	}
	return false
}

// ToggleWishlist adds the product to the wishlist if absent, removes it if
// present, and reports the new membership state.
func (d *Data) ToggleWishlist(productID int) bool {
	for i, id := range d.Wishlist {
		if id == productID {
			d.Wishlist = append(d.Wishlist[:i], d.Wishlist[i+1:]...)
			return false
		}
	}
	d.Wishlist = append(d.Wishlist, productID)
	return true
}

// Clone returns a deep copy, so callers and the store never alias the same
// cart map.
func (d *Data) Clone() *Data {
	out := &Data{Cart: make(map[int]int, len(d.Cart))}
	for id, qty := range d.Cart {
		out.Cart[id] = qty
	}
	if len(d.Wishlist) > 0 {
		out.Wishlist = append([]int(nil), d.Wishlist...)
	}
	return out
}

// Store defines how session data is stored and retrieved. Every cart
// operation receives an explicit store handle; there is no ambient global
// session state.
type Store interface {
	// Get returns the session data, or (nil, nil) when the session is
	// unknown or expired.
	Get(ctx context.Context, sessionID string) (*Data, error)

	// Save stores the session data and resets its expiry.
	Save(ctx context.Context, sessionID string, data *Data) error

	// Delete removes the session data. Deleting an absent session is not
	// an error.
	Delete(ctx context.Context, sessionID string) error
}
