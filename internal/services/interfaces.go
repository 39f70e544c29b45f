package services

import "tour-booking-platform/internal/models"

// CatalogStore provides read access to the experience catalog
type CatalogStore interface {
	List(typeFilter string) []*models.Experience
	GetByID(id string) (*models.Experience, error)
}

// CartStore provides session-scoped cart operations
type CartStore interface {
	Items(sessionID string) []*models.CartItem
	Add(sessionID string, req *models.CartItemCreateRequest) (*models.CartItem, error)
	UpdateQuantity(sessionID, itemID string, quantity int) (*models.CartItem, error)
	Remove(sessionID, itemID string) bool
	Clear(sessionID string)
}

// BookingLedger provides booking persistence and payment-state transitions
type BookingLedger interface {
	Create(req *models.BookingCreateRequest, totalAmount int) (*models.Booking, error)
	GetByID(id string) (*models.Booking, error)
	SetPaymentSession(id, stripeSessionID string) (*models.Booking, error)
	SetPaid(id, stripeSessionID string, paid bool) (*models.Booking, error)
}

// PaymentService creates hosted-checkout sessions and parses webhook events
type PaymentService interface {
	CreateCheckoutSession(bookingID string, lines []CheckoutLineItem) (*CheckoutSession, error)
	ConstructEvent(payload []byte, sigHeader string) (*WebhookEvent, error)
}
