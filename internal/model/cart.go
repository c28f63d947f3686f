package model

// CartLine is one materialised cart row: the resolved product plus the
// quantity held in the session.
type CartLine struct {
	Product
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

// CartView is the server-computed view of one session's cart. Subtotal, tax,
// total and count are derived on every read, never stored. Entries whose
// product no longer resolves in the catalogue are excluded.
type CartView struct {
	Items    []CartLine `json:"items"`
	Subtotal float64    `json:"subtotal"`
	Tax      float64    `json:"tax"`
	Total    float64    `json:"total"`
	Count    int        `json:"count"`
	Currency string     `json:"currency"`
}

// CartActionResponse is the wire shape returned by the cart action endpoint.
// Cart is only populated for the "get" action, Wishlisted only for
// "wishlist_toggle".
type CartActionResponse struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	CartCount  int         `json:"cartCount"`
	Cart       map[int]int `json:"cart,omitempty"`
	Wishlisted *bool       `json:"wishlisted,omitempty"`
}
