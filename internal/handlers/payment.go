package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"tour-booking-platform/internal/middleware"
	"tour-booking-platform/internal/models"
	"tour-booking-platform/internal/services"
)

// PaymentHandler creates hosted checkout sessions for bookings and
// reconciles asynchronous payment confirmations.
type PaymentHandler struct {
	checkout *services.CheckoutService
	bookings services.BookingLedger
	payments services.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(checkout *services.CheckoutService, bookings services.BookingLedger, payments services.PaymentService) *PaymentHandler {
	return &PaymentHandler{checkout: checkout, bookings: bookings, payments: payments}
}

// CheckoutSessionRequest is the payload for creating a payment session
type CheckoutSessionRequest struct {
	BookingID   string   `json:"bookingId"`
	CartItemIDs []string `json:"cartItemIds"`
}

// CreateCheckoutSession creates an external payment session for a booking.
// Line items are rebuilt from catalog prices; nothing price-shaped from the
// request body reaches the provider. On provider failure the booking stays
// pending and the call is retryable.
func (h *PaymentHandler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	cartID := middleware.CartIDFromContext(r.Context())

	var req CheckoutSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request data")
		return
	}
	if req.BookingID == "" || len(req.CartItemIDs) == 0 {
		writeError(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	if _, err := h.bookings.GetByID(req.BookingID); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	result, err := h.checkout.Reconcile(cartID, req.CartItemIDs)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNoValidItems):
			writeError(w, http.StatusBadRequest, "No valid cart items found")
		case errors.Is(err, models.ErrExperienceNotFound):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "Failed to create checkout session")
		}
		return
	}

	session, err := h.payments.CreateCheckoutSession(req.BookingID, result.LineItems())
	if err != nil {
		log.Printf("checkout session creation failed for booking %s: %v", req.BookingID, err)
		writeError(w, http.StatusInternalServerError, "Failed to create checkout session")
		return
	}

	if _, err := h.bookings.SetPaymentSession(req.BookingID, session.ID); err != nil {
		log.Printf("failed to attach payment session to booking %s: %v", req.BookingID, err)
		writeError(w, http.StatusInternalServerError, "Failed to create checkout session")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"sessionId": session.ID,
		"url":       session.URL,
	})
}

// Webhook receives asynchronous payment confirmations. The raw body is
// verified against the signature header before any field is trusted, and
// internal errors are never echoed to the unauthenticated caller.
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	signature := r.Header.Get("Stripe-Signature")
	if signature == "" {
		writeError(w, http.StatusBadRequest, "Missing signature")
		return
	}

	payload, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Webhook error")
		return
	}

	event, err := h.payments.ConstructEvent(payload, signature)
	if err != nil {
		log.Printf("webhook rejected: %v", err)
		writeError(w, http.StatusBadRequest, "Webhook error")
		return
	}

	if event.Type == "checkout.session.completed" {
		session, err := event.Session()
		if err != nil {
			log.Printf("webhook event %s: %v", event.ID, err)
			writeError(w, http.StatusBadRequest, "Webhook error")
			return
		}

		if bookingID := session.Metadata["bookingId"]; bookingID != "" {
			if _, err := h.bookings.SetPaid(bookingID, session.ID, true); err != nil {
				// A confirmation for an unknown booking is an anomaly, not a
				// retryable failure; acknowledge so the provider stops resending.
				log.Printf("webhook event %s: booking %s: %v", event.ID, bookingID, err)
			}
		}
	}

	writeJSON(w, http.StatusOK, map[string]bool{"received": true})
}
