package repositories

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"tour-booking-platform/internal/models"
)

// BookingRepository is the in-memory booking ledger. Bookings are created at
// checkout, updated when a payment session is attached and again when the
// payment confirmation arrives; they are never deleted.
type BookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]*models.Booking
}

// NewBookingRepository creates an empty booking ledger
func NewBookingRepository() *BookingRepository {
	return &BookingRepository{bookings: make(map[string]*models.Booking)}
}

// Create stores a new pending booking. totalAmount must be the reconciled
// server-computed total; no client-supplied amount ever reaches this method.
func (r *BookingRepository) Create(req *models.BookingCreateRequest, totalAmount int) (*models.Booking, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:            uuid.New().String(),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		CartItemIDs:   append([]string(nil), req.CartItemIDs...),
		Travelers:     req.Travelers,
		StartDate:     req.StartDate,
		TotalAmount:   totalAmount,
		PaymentStatus: models.PaymentPending,
		Paid:          false,
		CreatedAt:     time.Now(),
	}

	r.mu.Lock()
	r.bookings[booking.ID] = booking
	r.mu.Unlock()

	result := *booking
	return &result, nil
}

// GetByID returns the booking with the given id
func (r *BookingRepository) GetByID(id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, models.ErrBookingNotFound
	}
	result := *booking
	return &result, nil
}

// SetPaymentSession attaches the payment provider's session id to a booking,
// leaving the paid state untouched.
func (r *BookingRepository) SetPaymentSession(id, stripeSessionID string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, models.ErrBookingNotFound
	}
	booking.StripeSessionID = &stripeSessionID

	result := *booking
	return &result, nil
}

// SetPaid records the payment confirmation. The operation is idempotent:
// replaying a confirmation leaves the booking in the same state. A session id
// that differs from the one stored at session creation is logged as an
// anomaly; the event's value wins.
func (r *BookingRepository) SetPaid(id, stripeSessionID string, paid bool) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, models.ErrBookingNotFound
	}

	if booking.StripeSessionID != nil && *booking.StripeSessionID != stripeSessionID {
		log.Printf("booking %s: payment confirmation session %s does not match stored session %s",
			id, stripeSessionID, *booking.StripeSessionID)
	}

	booking.StripeSessionID = &stripeSessionID
	booking.Paid = paid
	if paid {
		booking.PaymentStatus = models.PaymentCompleted
	} else {
		booking.PaymentStatus = models.PaymentPending
	}

	result := *booking
	return &result, nil
}
