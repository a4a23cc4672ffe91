package domain

import (
	"strings"
	"time"
)

// PaymentMethod selects how a created order gets settled.
type PaymentMethod string

const (
	// PaymentTransfer is a manual bank transfer confirmed by the customer.
	PaymentTransfer PaymentMethod = "transfer"
	// PaymentGateway is a hosted payment page the customer is redirected to.
	PaymentGateway PaymentMethod = "gateway"
)

// ParsePaymentMethod validates a payment method string.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch PaymentMethod(strings.ToLower(strings.TrimSpace(s))) {
	case PaymentTransfer:
		return PaymentTransfer, true
	case PaymentGateway:
		return PaymentGateway, true
	}
	return "", false
}

// CustomerDetails carries the checkout form fields. All are required;
// validation happens in the checkout package before any network call.
type CustomerDetails struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

// OrderSnapshot is the ephemeral, session-local copy of a created order.
// It exists only to render confirmation views after a redirect; the
// authoritative order lives in the external backend.
type OrderSnapshot struct {
	OrderID         string          `json:"orderId"`
	TotalAmount     int64           `json:"totalAmount"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	CustomerDetails CustomerDetails `json:"customerDetails"`
	Items           []CartItem      `json:"items"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// OrderSummary is an admin-facing order list entry as returned by the
// backend's order listing.
type OrderSummary struct {
	ID              string          `json:"id"`
	CustomerDetails CustomerDetails `json:"customerDetails"`
	TotalAmount     int64           `json:"totalAmount"`
	PaymentStatus   string          `json:"paymentStatus"`
	PaymentMethod   string          `json:"paymentMethod"`
	Status          string          `json:"status,omitempty"`
	Items           []CartItem      `json:"items"`
	CreatedAt       string          `json:"createdAt"`
}
