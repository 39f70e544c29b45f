package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tour-booking-platform/internal/models"
)

func bookingRequest() *models.BookingCreateRequest {
	return &models.BookingCreateRequest{
		Name:        "Jane Traveler",
		Email:       "jane@example.com",
		Phone:       "+15551234567",
		CartItemIDs: []string{"item-1", "item-2"},
		Travelers:   2,
		StartDate:   "2026-11-15",
	}
}

func TestBookingRepository_Create(t *testing.T) {
	repo := NewBookingRepository()

	booking, err := repo.Create(bookingRequest(), 7000)
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, 7000, booking.TotalAmount)
	assert.Equal(t, models.PaymentPending, booking.PaymentStatus)
	assert.False(t, booking.Paid)
	assert.Nil(t, booking.StripeSessionID)

	stored, err := repo.GetByID(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, stored.ID)
}

func TestBookingRepository_CreateRejectsInvalidRequest(t *testing.T) {
	repo := NewBookingRepository()

	req := bookingRequest()
	req.Travelers = 0
	_, err := repo.Create(req, 1200)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestBookingRepository_GetByIDNotFound(t *testing.T) {
	repo := NewBookingRepository()

	_, err := repo.GetByID("missing")
	assert.ErrorIs(t, err, models.ErrBookingNotFound)
}

func TestBookingRepository_SetPaymentSession(t *testing.T) {
	repo := NewBookingRepository()
	booking, err := repo.Create(bookingRequest(), 1200)
	require.NoError(t, err)

	updated, err := repo.SetPaymentSession(booking.ID, "cs_test_123")
	require.NoError(t, err)

	require.NotNil(t, updated.StripeSessionID)
	assert.Equal(t, "cs_test_123", *updated.StripeSessionID)
	assert.False(t, updated.Paid, "attaching a payment session must not mark the booking paid")
	assert.Equal(t, models.PaymentPending, updated.PaymentStatus)

	_, err = repo.SetPaymentSession("missing", "cs_test_123")
	assert.ErrorIs(t, err, models.ErrBookingNotFound)
}

func TestBookingRepository_SetPaidIsIdempotent(t *testing.T) {
	repo := NewBookingRepository()
	booking, err := repo.Create(bookingRequest(), 1200)
	require.NoError(t, err)
	_, err = repo.SetPaymentSession(booking.ID, "cs_test_123")
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		updated, err := repo.SetPaid(booking.ID, "cs_test_123", true)
		require.NoError(t, err)
		assert.True(t, updated.Paid)
		assert.Equal(t, models.PaymentCompleted, updated.PaymentStatus)
	}
}

func TestBookingRepository_SetPaidSessionMismatch(t *testing.T) {
	repo := NewBookingRepository()
	booking, err := repo.Create(bookingRequest(), 1200)
	require.NoError(t, err)
	_, err = repo.SetPaymentSession(booking.ID, "cs_test_original")
	require.NoError(t, err)

	// A mismatching session id is logged as an anomaly but the confirmation
	// still applies; the event's value wins.
	updated, err := repo.SetPaid(booking.ID, "cs_test_other", true)
	require.NoError(t, err)
	assert.True(t, updated.Paid)
	require.NotNil(t, updated.StripeSessionID)
	assert.Equal(t, "cs_test_other", *updated.StripeSessionID)

	_, err = repo.SetPaid("missing", "cs_test_123", true)
	assert.ErrorIs(t, err, models.ErrBookingNotFound)
}
