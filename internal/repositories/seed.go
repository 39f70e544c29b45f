package repositories

import "tour-booking-platform/internal/models"

// seedExperiences returns the launch catalog. Prices are whole USD per guest.
func seedExperiences() []*models.Experience {
	return []*models.Experience{
		{
			Title:       "Luxury Nile Cruise",
			Description: "Experience the timeless beauty of the Nile aboard a luxurious traditional dahabiya. This exclusive journey takes you through ancient Egypt's most magnificent temples and archaeological sites while enjoying world-class service and amenities.",
			Type:        models.ExperienceTour,
			Price:       3500,
			Duration:    7,
			Location:    "Luxor to Aswan",
			ImageURL:    "/assets/tour1.png",
			Images:      []string{"/assets/tour1.png", "/assets/tour2.png", "/assets/tour3.png"},
			MaxGuests:   12,
			Highlights: []string{
				"Private Egyptologist guide throughout the journey",
				"Luxury accommodation aboard traditional dahabiya",
				"All meals including gourmet dining experiences",
				"Entrance fees to all archaeological sites",
				"Traditional Egyptian entertainment",
				"Airport transfers in luxury vehicles",
			},
			Itinerary: []models.ItineraryDay{
				{Day: 1, Title: "Arrival in Luxor", Description: "Welcome aboard and evening cruise"},
				{Day: 2, Title: "Valley of the Kings", Description: "Visit tombs and Hatshepsut Temple"},
				{Day: 3, Title: "Edfu Temple", Description: "Explore the best-preserved temple in Egypt"},
				{Day: 4, Title: "Kom Ombo", Description: "Visit the unique double temple"},
				{Day: 5, Title: "Aswan Sights", Description: "Philae Temple and the High Dam"},
				{Day: 6, Title: "Abu Simbel", Description: "Optional excursion to Ramses II temples"},
				{Day: 7, Title: "Departure", Description: "Farewell breakfast and transfer"},
			},
		},
		{
			Title:       "Abu Simbel Adventure",
			Description: "Exclusive private tour to the magnificent Abu Simbel temples, one of Egypt's most iconic archaeological wonders.",
			Type:        models.ExperienceTrip,
			Price:       1200,
			Duration:    2,
			Location:    "Abu Simbel",
			ImageURL:    "/assets/tour2.png",
			Images:      []string{"/assets/tour2.png", "/assets/tour3.png"},
			MaxGuests:   8,
			Highlights: []string{
				"Private transportation to Abu Simbel",
				"Expert guide with archaeological expertise",
				"Premium hotel accommodation",
				"All entrance fees included",
			},
			Itinerary: []models.ItineraryDay{
				{Day: 1, Title: "Journey to Abu Simbel", Description: "Travel and temple exploration"},
				{Day: 2, Title: "Return Journey", Description: "Morning visit and return"},
			},
		},
		{
			Title:       "Pyramids & Sphinx Experience",
			Description: "VIP access to the Great Pyramids of Giza and the Sphinx with private Egyptologist guide and exclusive sunrise viewing.",
			Type:        models.ExperienceTrip,
			Price:       850,
			Duration:    1,
			Location:    "Cairo",
			ImageURL:    "/assets/tour3.png",
			Images:      []string{"/assets/tour3.png", "/assets/tour1.png"},
			MaxGuests:   10,
			Highlights: []string{
				"Sunrise access to Giza Plateau",
				"Private Egyptologist guide",
				"Luxury transportation",
				"Photography opportunities",
			},
			Itinerary: []models.ItineraryDay{
				{Day: 1, Title: "Pyramids Exploration", Description: "Full day exploring the wonders"},
			},
		},
		{
			Title:       "Premium Cairo Package",
			Description: "Complete Cairo experience with luxury accommodations, private tours of pyramids, museums, and Islamic Cairo.",
			Type:        models.ExperiencePackage,
			Price:       4200,
			Duration:    5,
			Location:    "Cairo",
			ImageURL:    "/assets/tour4.png",
			Images:      []string{"/assets/tour4.png", "/assets/tour3.png", "/assets/tour1.png"},
			MaxGuests:   12,
			Highlights: []string{
				"5-star luxury hotel accommodation",
				"Private tours of all major sites",
				"Egyptian Museum VIP access",
				"Traditional Egyptian dinners",
				"All transfers and entrance fees",
			},
			Itinerary: []models.ItineraryDay{
				{Day: 1, Title: "Arrival & Pyramids", Description: "Check-in and pyramid visit"},
				{Day: 2, Title: "Egyptian Museum", Description: "Full day at the museum"},
				{Day: 3, Title: "Islamic Cairo", Description: "Historic mosques and bazaars"},
				{Day: 4, Title: "Saqqara & Memphis", Description: "Ancient capital exploration"},
				{Day: 5, Title: "Departure", Description: "Final breakfast and transfer"},
			},
		},
		{
			Title:       "Gourmet Nile Dining",
			Description: "Exquisite culinary journey featuring traditional Egyptian cuisine and international dishes on a luxury Nile cruise.",
			Type:        models.ExperienceTour,
			Price:       450,
			Duration:    1,
			Location:    "Cairo",
			ImageURL:    "/assets/tour5.png",
			Images:      []string{"/assets/tour5.png"},
			MaxGuests:   20,
			Highlights: []string{
				"Multi-course gourmet dinner",
				"Traditional Egyptian dishes",
				"Live entertainment",
				"Nile cruise experience",
			},
			Itinerary: []models.ItineraryDay{
				{Day: 1, Title: "Evening Dinner Cruise", Description: "Luxury dining on the Nile"},
			},
		},
		{
			Title:       "Grand Egypt Discovery",
			Description: "The ultimate 14-day luxury journey covering Cairo, Luxor, Aswan, and Abu Simbel with 5-star accommodations throughout.",
			Type:        models.ExperiencePackage,
			Price:       8500,
			Duration:    14,
			Location:    "Multiple Cities",
			ImageURL:    "/assets/tour1.png",
			Images:      []string{"/assets/tour1.png", "/assets/tour2.png", "/assets/tour3.png", "/assets/tour4.png"},
			MaxGuests:   16,
			Highlights: []string{
				"Comprehensive Egypt experience",
				"All 5-star accommodations",
				"Private Egyptologist guides",
				"Domestic flights included",
				"All meals and transfers",
				"Exclusive site access",
			},
			Itinerary: []models.ItineraryDay{
				{Day: 1, Title: "Cairo Arrival", Description: "Welcome to Egypt"},
				{Day: 2, Title: "Pyramids & Sphinx", Description: "Giza Plateau exploration"},
				{Day: 3, Title: "Egyptian Museum", Description: "Treasures of ancient Egypt"},
				{Day: 4, Title: "Flight to Luxor", Description: "Karnak Temple visit"},
				{Day: 5, Title: "Valley of the Kings", Description: "Royal tombs exploration"},
				{Day: 6, Title: "Nile Cruise Begins", Description: "Board luxury cruise"},
				{Day: 7, Title: "Edfu Temple", Description: "Temple of Horus"},
				{Day: 8, Title: "Kom Ombo", Description: "Double temple visit"},
				{Day: 9, Title: "Aswan Arrival", Description: "Philae Temple"},
				{Day: 10, Title: "Abu Simbel", Description: "Ramses II temples"},
				{Day: 11, Title: "Aswan Exploration", Description: "Nubian village visit"},
				{Day: 12, Title: "Flight to Cairo", Description: "Islamic Cairo tour"},
				{Day: 13, Title: "Free Day", Description: "Shopping and leisure"},
				{Day: 14, Title: "Departure", Description: "Farewell Egypt"},
			},
		},
	}
}
