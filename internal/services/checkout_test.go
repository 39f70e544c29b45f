package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tour-booking-platform/internal/models"
	"tour-booking-platform/internal/repositories"
)

func newCheckoutFixture() (*CheckoutService, *repositories.CatalogRepository, *repositories.CartRepository, *repositories.BookingRepository) {
	catalog := repositories.NewCatalogRepository()
	carts := repositories.NewCartRepository()
	bookings := repositories.NewBookingRepository()
	return NewCheckoutService(catalog, carts, bookings), catalog, carts, bookings
}

func checkoutRequest(cartItemIDs ...string) *models.BookingCreateRequest {
	return &models.BookingCreateRequest{
		Name:        "Jane Traveler",
		Email:       "jane@example.com",
		Phone:       "+15551234567",
		CartItemIDs: cartItemIDs,
		Travelers:   2,
		StartDate:   "2026-11-15",
	}
}

func TestCheckoutService_ReconcileUsesCatalogPrice(t *testing.T) {
	svc, catalog, carts, _ := newCheckoutFixture()
	nileCruise := catalog.List("")[0] // catalog price 3500

	// The stored cart price is forged to 1; it must not influence the total.
	item, err := carts.Add("session-1", &models.CartItemCreateRequest{
		ExperienceID: nileCruise.ID,
		Title:        nileCruise.Title,
		Price:        1,
		Type:         nileCruise.Type,
		Quantity:     2,
	})
	require.NoError(t, err)

	result, err := svc.Reconcile("session-1", []string{item.ID})
	require.NoError(t, err)

	assert.Equal(t, 7000, result.TotalAmount)
	require.Len(t, result.Lines, 1)
	assert.Equal(t, 7000, result.Lines[0].Amount)
}

func TestCheckoutService_ReconcileDropsForeignIDs(t *testing.T) {
	svc, catalog, carts, _ := newCheckoutFixture()
	abuSimbel := catalog.List("")[1] // catalog price 1200

	item, err := carts.Add("session-1", &models.CartItemCreateRequest{
		ExperienceID: abuSimbel.ID,
		Title:        abuSimbel.Title,
		Price:        abuSimbel.Price,
		Type:         abuSimbel.Type,
		Quantity:     1,
	})
	require.NoError(t, err)

	// Ids not present in the session's cart are excluded silently.
	result, err := svc.Reconcile("session-1", []string{item.ID, "forged-id"})
	require.NoError(t, err)
	require.Len(t, result.Lines, 1)
	assert.Equal(t, 1200, result.TotalAmount)

	// Nothing valid left over fails the reconciliation.
	_, err = svc.Reconcile("session-1", []string{"forged-id"})
	assert.ErrorIs(t, err, models.ErrNoValidItems)

	_, err = svc.Reconcile("empty-session", []string{item.ID})
	assert.ErrorIs(t, err, models.ErrNoValidItems)
}

func TestCheckoutService_ReconcileMissingExperienceFailsAtomically(t *testing.T) {
	svc, catalog, carts, _ := newCheckoutFixture()
	gourmet := catalog.List("")[4]

	good, err := carts.Add("session-1", &models.CartItemCreateRequest{
		ExperienceID: gourmet.ID,
		Title:        gourmet.Title,
		Price:        gourmet.Price,
		Type:         gourmet.Type,
		Quantity:     1,
	})
	require.NoError(t, err)

	ghost, err := carts.Add("session-1", &models.CartItemCreateRequest{
		ExperienceID: "retired-experience",
		Title:        "Retired Experience",
		Price:        100,
		Type:         models.ExperienceTour,
		Quantity:     1,
	})
	require.NoError(t, err)

	_, err = svc.Reconcile("session-1", []string{good.ID, ghost.ID})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrExperienceNotFound)

	var notFound *models.ExperienceNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "retired-experience", notFound.ID)
}

func TestCheckoutService_CreateBookingEndToEnd(t *testing.T) {
	svc, catalog, carts, _ := newCheckoutFixture()
	abuSimbel := catalog.List("")[1] // catalog price 1200

	add := func(quantity int) *models.CartItem {
		item, err := carts.Add("session-1", &models.CartItemCreateRequest{
			ExperienceID: abuSimbel.ID,
			Title:        abuSimbel.Title,
			Price:        abuSimbel.Price,
			Type:         abuSimbel.Type,
			Quantity:     quantity,
		})
		require.NoError(t, err)
		return item
	}

	add(1)
	item := add(2)

	items := carts.Items("session-1")
	require.Len(t, items, 1)
	require.Equal(t, 3, items[0].Quantity)

	booking, err := svc.CreateBooking("session-1", checkoutRequest(item.ID))
	require.NoError(t, err)

	assert.Equal(t, 3600, booking.TotalAmount)
	assert.Equal(t, models.PaymentPending, booking.PaymentStatus)
	assert.False(t, booking.Paid)
}

func TestCheckoutService_CreateBookingFailureCreatesNothing(t *testing.T) {
	svc, _, carts, bookings := newCheckoutFixture()

	ghost, err := carts.Add("session-1", &models.CartItemCreateRequest{
		ExperienceID: "retired-experience",
		Title:        "Retired Experience",
		Price:        100,
		Type:         models.ExperienceTour,
		Quantity:     1,
	})
	require.NoError(t, err)

	_, err = svc.CreateBooking("session-1", checkoutRequest(ghost.ID))
	assert.ErrorIs(t, err, models.ErrExperienceNotFound)

	// No partial booking may exist after a failed reconciliation.
	_, err = bookings.GetByID(ghost.ID)
	assert.ErrorIs(t, err, models.ErrBookingNotFound)
}

func TestCheckoutService_CreateBookingValidatesRequest(t *testing.T) {
	svc, _, _, _ := newCheckoutFixture()

	req := checkoutRequest("item-1")
	req.Email = "nope"
	_, err := svc.CreateBooking("session-1", req)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestReconcileResult_LineItems(t *testing.T) {
	svc, catalog, carts, _ := newCheckoutFixture()
	nileCruise := catalog.List("")[0]

	item, err := carts.Add("session-1", &models.CartItemCreateRequest{
		ExperienceID: nileCruise.ID,
		Title:        nileCruise.Title,
		Price:        1, // forged snapshot
		Type:         nileCruise.Type,
		Quantity:     2,
	})
	require.NoError(t, err)

	result, err := svc.Reconcile("session-1", []string{item.ID})
	require.NoError(t, err)

	lines := result.LineItems()
	require.Len(t, lines, 1)
	assert.Equal(t, nileCruise.Title, lines[0].Name)
	assert.Equal(t, 350000, lines[0].UnitAmount, "unit amount must be the catalog price in cents")
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, []string{nileCruise.ImageURL}, lines[0].Images)
}
