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

// CartHandler handles shopping cart requests. Every operation is scoped to
// the cart id established by the session middleware.
type CartHandler struct {
	carts services.CartStore
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts services.CartStore) *CartHandler {
	return &CartHandler{carts: carts}
}

// List returns the session's cart items
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	cartID := middleware.CartIDFromContext(r.Context())
	writeJSON(w, http.StatusOK, h.carts.Items(cartID))
}

// Add adds an item to the session's cart
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	cartID := middleware.CartIDFromContext(r.Context())

	var req models.CartItemCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid cart item data")
		return
	}

	item, err := h.carts.Add(cartID, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid cart item data")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// UpdateQuantity sets the quantity of a cart item
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	cartID := middleware.CartIDFromContext(r.Context())
	itemID := chi.URLParam(r, "id")

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid quantity")
		return
	}

	item, err := h.carts.UpdateQuantity(cartID, itemID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "Invalid quantity")
		case errors.Is(err, models.ErrCartItemNotFound):
			writeError(w, http.StatusNotFound, "Cart item not found")
		default:
			writeError(w, http.StatusInternalServerError, "Failed to update cart item")
		}
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Remove deletes a cart item
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	cartID := middleware.CartIDFromContext(r.Context())
	itemID := chi.URLParam(r, "id")

	if !h.carts.Remove(cartID, itemID) {
		writeError(w, http.StatusNotFound, "Cart item not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Clear discards the session's whole cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	cartID := middleware.CartIDFromContext(r.Context())
	h.carts.Clear(cartID)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
