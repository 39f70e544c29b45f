package models

import (
	"errors"
	"fmt"
)

// Common errors used throughout the application
var (
	ErrExperienceNotFound = errors.New("experience not found")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrNoValidItems       = errors.New("no valid cart items")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidSignature   = errors.New("invalid webhook signature")
)

// ExperienceNotFoundError reports which experience id was missing while
// recalculating a booking total.
type ExperienceNotFoundError struct {
	ID string
}

func (e *ExperienceNotFoundError) Error() string {
	return fmt.Sprintf("experience %s not found", e.ID)
}

func (e *ExperienceNotFoundError) Unwrap() error {
	return ErrExperienceNotFound
}
