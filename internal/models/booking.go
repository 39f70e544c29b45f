package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

// Booking represents a checkout-time snapshot of selected cart items plus
// customer and payment state. TotalAmount is always server-computed; a
// client-supplied total is never stored.
type Booking struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	CartItemIDs     []string      `json:"cartItemIds"`
	Travelers       int           `json:"travelers"`
	StartDate       string        `json:"startDate"`
	TotalAmount     int           `json:"totalAmount"` // Whole USD
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	StripeSessionID *string       `json:"stripeSessionId"`
	Paid            bool          `json:"paid"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// BookingCreateRequest represents the checkout submission. CartItemIDs is the
// set of cart item ids the customer claims; ids that do not belong to the
// caller's session are discarded during reconciliation.
type BookingCreateRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	CartItemIDs []string `json:"cartItemIds"`
	Travelers   int      `json:"travelers"`
	StartDate   string   `json:"startDate"`
}

var bookingEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validate validates the checkout submission
func (req *BookingCreateRequest) Validate() error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !bookingEmailRegex.MatchString(req.Email) {
		return fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}
	if req.Travelers < 1 {
		return fmt.Errorf("%w: travelers must be at least 1", ErrInvalidInput)
	}
	if len(req.CartItemIDs) == 0 {
		return fmt.Errorf("%w: no cart items selected", ErrInvalidInput)
	}
	return nil
}
