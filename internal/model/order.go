package model

// CheckoutRequest carries the checkout form fields. Demo mode: no payment
// details are collected or processed.
type CheckoutRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderConfirmation is returned once a checkout succeeds. The cart is
// emptied as part of placing the order.
type OrderConfirmation struct {
	OrderNumber string  `json:"orderNumber"`
	Total       float64 `json:"total"`
	Currency    string  `json:"currency"`
}

// CheckoutResponse is the wire shape of the checkout endpoint.
type CheckoutResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Order   *OrderConfirmation `json:"order,omitempty"`
}

// ContactRequest carries the contact form fields.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
