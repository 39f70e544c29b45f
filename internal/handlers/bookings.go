package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tour-booking-platform/internal/middleware"
	"tour-booking-platform/internal/models"
	"tour-booking-platform/internal/services"
)

// BookingHandler handles checkout submissions and booking lookups
type BookingHandler struct {
	checkout *services.CheckoutService
	bookings services.BookingLedger
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(checkout *services.CheckoutService, bookings services.BookingLedger) *BookingHandler {
	return &BookingHandler{checkout: checkout, bookings: bookings}
}

// Create creates a booking from the claimed cart item ids. The total is
// recomputed from the catalog; any amount in the request body is ignored.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	cartID := middleware.CartIDFromContext(r.Context())

	var req models.BookingCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid booking data")
		return
	}

	booking, err := h.checkout.CreateBooking(cartID, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNoValidItems):
			writeError(w, http.StatusBadRequest, "No valid cart items")
		case errors.Is(err, models.ErrExperienceNotFound):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, models.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "Invalid booking data")
		default:
			writeError(w, http.StatusInternalServerError, "Failed to create booking")
		}
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

// Get returns one booking by id
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	booking, err := h.bookings.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrBookingNotFound) {
			writeError(w, http.StatusNotFound, "Booking not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch booking")
		return
	}
	writeJSON(w, http.StatusOK, booking)
}
