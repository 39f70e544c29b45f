package models

import (
	"fmt"
	"strings"
)

// CartItem represents a quantity of one experience held in a session's cart.
//
// Title, Price, ImageURL and Type are a display snapshot taken when the item
// was added; they are never re-synced and Price in particular is display-only,
// not trust-bearing. Booking totals are always recomputed from the catalog.
type CartItem struct {
	ID           string         `json:"id"`
	ExperienceID string         `json:"experienceId"`
	Title        string         `json:"title"`
	Price        int            `json:"price"`
	ImageURL     string         `json:"imageUrl"`
	Type         ExperienceType `json:"type"`
	Quantity     int            `json:"quantity"`
}

// CartItemCreateRequest represents the payload for adding an item to a cart.
// Quantity defaults to 1 when absent or non-positive.
type CartItemCreateRequest struct {
	ExperienceID string         `json:"experienceId"`
	Title        string         `json:"title"`
	Price        int            `json:"price"`
	ImageURL     string         `json:"imageUrl"`
	Type         ExperienceType `json:"type"`
	Quantity     int            `json:"quantity"`
}

// Validate validates the add-to-cart payload
func (req *CartItemCreateRequest) Validate() error {
	if strings.TrimSpace(req.ExperienceID) == "" {
		return fmt.Errorf("%w: experience id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidInput)
	}
	if !req.Type.IsValid() {
		return fmt.Errorf("%w: unknown experience type %q", ErrInvalidInput, req.Type)
	}
	return nil
}

// NormalizedQuantity returns the requested quantity, defaulting to 1 when the
// client omitted it or sent a non-positive value.
func (req *CartItemCreateRequest) NormalizedQuantity() int {
	if req.Quantity < 1 {
		return 1
	}
	return req.Quantity
}
