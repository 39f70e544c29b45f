package models

// ExperienceType represents the kind of catalog entry
type ExperienceType string

const (
	ExperienceTour    ExperienceType = "tour"
	ExperienceTrip    ExperienceType = "trip"
	ExperiencePackage ExperienceType = "package"
)

// IsValid reports whether the experience type is one of the known kinds
func (t ExperienceType) IsValid() bool {
	switch t {
	case ExperienceTour, ExperienceTrip, ExperiencePackage:
		return true
	}
	return false
}

// ItineraryDay represents one day of an experience itinerary
type ItineraryDay struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Experience represents a purchasable catalog entry. Experiences are seeded
// once at startup and never mutated afterwards; its Price is the only value
// trusted when computing booking totals.
type Experience struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Type        ExperienceType `json:"type"`
	Price       int            `json:"price"`    // whole USD per guest
	Duration    int            `json:"duration"` // days
	Location    string         `json:"location"`
	ImageURL    string         `json:"imageUrl"`
	Images      []string       `json:"images"`
	MaxGuests   int            `json:"maxGuests"`
	Highlights  []string       `json:"highlights"`
	Itinerary   []ItineraryDay `json:"itinerary"`
}
