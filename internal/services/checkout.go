package services

import (
	"fmt"

	"tour-booking-platform/internal/models"
)

// CheckoutService recalculates authoritative pricing for a set of claimed
// cart items and turns the result into a booking. It is the only component
// allowed to read a price for money computation, and it reads it from the
// catalog, never from the cart item's display snapshot or the request body.
type CheckoutService struct {
	catalog  CatalogStore
	carts    CartStore
	bookings BookingLedger
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(catalog CatalogStore, carts CartStore, bookings BookingLedger) *CheckoutService {
	return &CheckoutService{
		catalog:  catalog,
		carts:    carts,
		bookings: bookings,
	}
}

// ReconciledLine is one validated cart item with its catalog-derived amount
type ReconciledLine struct {
	Item       *models.CartItem
	Experience *models.Experience
	Amount     int // Experience.Price × Item.Quantity, whole USD
}

// ReconcileResult is the outcome of pricing reconciliation
type ReconcileResult struct {
	Lines       []ReconciledLine
	TotalAmount int
}

// Reconcile validates the claimed cart item ids against the session's own
// cart and recomputes every line amount from the catalog. Claimed ids that do
// not belong to the session are dropped silently. The call fails atomically:
// either every validated item resolves to a catalog experience or no result
// is produced.
func (s *CheckoutService) Reconcile(sessionID string, claimedIDs []string) (*ReconcileResult, error) {
	claimed := make(map[string]bool, len(claimedIDs))
	for _, id := range claimedIDs {
		claimed[id] = true
	}

	var validated []*models.CartItem
	for _, item := range s.carts.Items(sessionID) {
		if claimed[item.ID] {
			validated = append(validated, item)
		}
	}
	if len(validated) == 0 {
		return nil, models.ErrNoValidItems
	}

	result := &ReconcileResult{Lines: make([]ReconciledLine, 0, len(validated))}
	for _, item := range validated {
		exp, err := s.catalog.GetByID(item.ExperienceID)
		if err != nil {
			return nil, &models.ExperienceNotFoundError{ID: item.ExperienceID}
		}

		amount := exp.Price * item.Quantity
		result.Lines = append(result.Lines, ReconciledLine{
			Item:       item,
			Experience: exp,
			Amount:     amount,
		})
		result.TotalAmount += amount
	}
	return result, nil
}

// CreateBooking reconciles the claimed items and stores a pending booking
// with the server-computed total.
func (s *CheckoutService) CreateBooking(sessionID string, req *models.BookingCreateRequest) (*models.Booking, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	result, err := s.Reconcile(sessionID, req.CartItemIDs)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookings.Create(req, result.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return booking, nil
}

// LineItems converts a reconcile result into payment-provider line items.
// Unit amounts come from the catalog price converted to cents.
func (r *ReconcileResult) LineItems() []CheckoutLineItem {
	lines := make([]CheckoutLineItem, 0, len(r.Lines))
	for _, line := range r.Lines {
		var images []string
		if line.Experience.ImageURL != "" {
			images = []string{line.Experience.ImageURL}
		}
		lines = append(lines, CheckoutLineItem{
			Name:       line.Experience.Title,
			UnitAmount: line.Experience.Price * 100,
			Quantity:   line.Item.Quantity,
			Images:     images,
		})
	}
	return lines
}
