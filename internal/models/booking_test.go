package models

import (
	"errors"
	"testing"
)

func TestBookingCreateRequest_Validate(t *testing.T) {
	valid := BookingCreateRequest{
		Name:        "John Doe",
		Email:       "john@example.com",
		Phone:       "+254700000000",
		CartItemIDs: []string{"item-1"},
		Travelers:   2,
		StartDate:   "2026-10-01",
	}

	tests := []struct {
		name    string
		mutate  func(req *BookingCreateRequest)
		wantErr bool
	}{
		{
			name:    "valid request",
			mutate:  func(req *BookingCreateRequest) {},
			wantErr: false,
		},
		{
			name:    "empty name",
			mutate:  func(req *BookingCreateRequest) { req.Name = "  " },
			wantErr: true,
		},
		{
			name:    "invalid email",
			mutate:  func(req *BookingCreateRequest) { req.Email = "not-an-email" },
			wantErr: true,
		},
		{
			name:    "zero travelers",
			mutate:  func(req *BookingCreateRequest) { req.Travelers = 0 },
			wantErr: true,
		},
		{
			name:    "no cart items",
			mutate:  func(req *BookingCreateRequest) { req.CartItemIDs = nil },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			req.CartItemIDs = append([]string(nil), valid.CartItemIDs...)
			tt.mutate(&req)

			err := req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Validate() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestExperienceNotFoundError(t *testing.T) {
	err := &ExperienceNotFoundError{ID: "exp-42"}

	if !errors.Is(err, ErrExperienceNotFound) {
		t.Error("ExperienceNotFoundError should unwrap to ErrExperienceNotFound")
	}
	if err.Error() != "experience exp-42 not found" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
}
