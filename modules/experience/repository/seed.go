package repository

import (
	"time"

	"localxp-api/modules/experience/entity"
)

func hoursFrom(now time.Time, h float64) time.Time {
	return now.Add(time.Duration(h * float64(time.Hour)))
}

func ptr[T any](v T) *T {
	return &v
}

// SeedExperiences returns the built-in regional catalog. Start dates are
// offsets from now so the time-window collections are never empty.
func SeedExperiences(now time.Time) []entity.Experience {
	at := func(h float64) time.Time { return hoursFrom(now, h) }

	return []entity.Experience{
		{
			ID:             "1",
			Title:          "Waterloo Farmers' Market Food Tour",
			Description:    "Explore the vibrant Waterloo Market with a local foodie guide. Sample the best regional specialties and meet local producers.",
			Image:          "https://images.unsplash.com/photo-1519389950473-47ba0277781c",
			Price:          45,
			Duration:       "2 hours",
			Location:       "St. Jacobs Farmers' Market",
			City:           "Waterloo",
			Region:         "Waterloo Region",
			Country:        "Canada",
			Coordinates:    &entity.Coordinates{Lat: 43.5143, Lng: -80.5519},
			Rating:         4.8,
			ReviewCount:    124,
			Categories:     []string{"Food & Drink", "Tours", "Local Culture"},
			Provider:       "KW Local Tours",
			AvailableTimes: []string{"10:00 AM", "1:00 PM", "4:00 PM"},
			StartDate:      at(2),
			EndDate:        at(4),
			Trending:       true,
			Languages:      []string{"English", "French"},
			ActivityType:   []string{"Guided Tour", "Tasting"},
			AccessibilityFeatures: &entity.Accessibility{
				Mobility:          []string{"Wheelchair accessible", "Step-free access"},
				Communication:     []string{"Written materials"},
				Sensory:           []string{},
				FreeForAssistants: true,
			},
			RecommendationScore: ptr(0.92),
			Source:              entity.SourceStatic,
		},
		{
			ID:                 "2",
			Title:              "Craft Beer Tasting Experience",
			Description:        "Visit three of Kitchener's most innovative craft breweries. Learn about the brewing process and enjoy generous samples.",
			Image:              "https://images.unsplash.com/photo-1605810230434-7631ac76ec81",
			Price:              65,
			Duration:           "3 hours",
			Location:           "Downtown Kitchener",
			City:               "Kitchener",
			Region:             "Waterloo Region",
			Country:            "Canada",
			Coordinates:        &entity.Coordinates{Lat: 43.4516, Lng: -80.4925},
			Rating:             4.9,
			ReviewCount:        86,
			Categories:         []string{"Food & Drink", "Music & Nightlife"},
			Provider:           "Brew Tours KW",
			AvailableTimes:     []string{"2:00 PM", "6:00 PM"},
			StartDate:          at(6),
			EndDate:            at(9),
			FlashDeal:          true,
			FlashDealEndTime:   ptr(at(3)),
			DiscountPercentage: ptr(15.0),
			Languages:          []string{"English"},
			ActivityType:       []string{"Tasting", "Guided Tour"},
			AccessibilityFeatures: &entity.Accessibility{
				Mobility:      []string{},
				Communication: []string{"Written materials"},
				Sensory:       []string{"Loud environment"},
			},
			RecommendationScore: ptr(0.81),
			Source:              entity.SourceStatic,
		},
		{
			ID:             "3",
			Title:          "Pottery Workshop with Local Artist",
			Description:    "Create your own ceramic masterpiece under the guidance of a professional potter. All materials provided.",
			Image:          "https://images.unsplash.com/photo-1501854140801-50d01698950b",
			Price:          85,
			Duration:       "2.5 hours",
			Location:       "Clay & Glass Gallery",
			City:           "Waterloo",
			Region:         "Waterloo Region",
			Country:        "Canada",
			Coordinates:    &entity.Coordinates{Lat: 43.4643, Lng: -80.5204},
			Rating:         4.7,
			ReviewCount:    53,
			Categories:     []string{"Festivals & Culture", "Workshops & Community"},
			Provider:       "Waterloo Arts Collective",
			AvailableTimes: []string{"11:00 AM", "3:00 PM"},
			StartDate:      at(24),
			EndDate:        at(26.5),
			HiddenGem:      true,
			Languages:      []string{"English", "Spanish"},
			ActivityType:   []string{"Workshop", "Hands-on Class"},
			AccessibilityFeatures: &entity.Accessibility{
				Mobility:          []string{"Wheelchair accessible"},
				Communication:     []string{"Sign language on request"},
				Sensory:           []string{"Quiet space available"},
				FreeForAssistants: true,
			},
			RecommendationScore: ptr(0.74),
			Source:              entity.SourceStatic,
		},
		{
			ID:             "4",
			Title:          "Grand River Kayaking Adventure",
			Description:    "Paddle down the scenic Grand River with experienced guides. Perfect for beginners and intermediate kayakers.",
			Image:          "https://images.unsplash.com/photo-1470071459604-3b5ec3a7fe05",
			Price:          75,
			Duration:       "3 hours",
			Location:       "Cambridge Riverside Park",
			City:           "Cambridge",
			Region:         "Waterloo Region",
			Country:        "Canada",
			Coordinates:    &entity.Coordinates{Lat: 43.3784, Lng: -80.3170},
			Rating:         4.9,
			ReviewCount:    108,
			Categories:     []string{"Adventure & Outdoor", "Sports"},
			Provider:       "Grand River Experiences",
			AvailableTimes: []string{"9:00 AM", "1:00 PM"},
			StartDate:      at(5),
			EndDate:        at(8),
			Trending:       true,
			Languages:      []string{"English"},
			ActivityType:   []string{"Outdoor Adventure", "Guided Tour"},
			AccessibilityFeatures: &entity.Accessibility{
				Mobility:      []string{},
				Communication: []string{},
				Sensory:       []string{},
			},
			RecommendationScore: ptr(0.88),
			Source:              entity.SourceStatic,
		},
		{
			ID:             "5",
			Title:          "Live Jazz at The Jazz Room",
			Description:    "Enjoy a night of world-class jazz music at Waterloo's premier jazz venue, featuring both local and international artists.",
			Image:          "https://images.unsplash.com/photo-1506744038136-46273834b3fb",
			Price:          30,
			Duration:       "2.5 hours",
			Location:       "The Jazz Room",
			City:           "Waterloo",
			Region:         "Waterloo Region",
			Country:        "Canada",
			Coordinates:    &entity.Coordinates{Lat: 43.4655, Lng: -80.5225},
			Rating:         4.6,
			ReviewCount:    97,
			Categories:     []string{"Music & Nightlife", "Festivals & Culture"},
			Provider:       "KW Jazz Festival",
			AvailableTimes: []string{"8:00 PM", "10:30 PM"},
			StartDate:      at(10),
			EndDate:        at(12.5),
			SoldOut:        true,
			Languages:      []string{"English"},
			ActivityType:   []string{"Live Performance"},
			AccessibilityFeatures: &entity.Accessibility{
				Mobility:      []string{"Step-free access"},
				Communication: []string{},
				Sensory:       []string{"Loud environment", "Dim lighting"},
			},
			RecommendationScore: ptr(0.67),
			Source:              entity.SourceStatic,
		},
		{
			ID:             "6",
			Title:          "Forest Bathing & Meditation",
			Description:    "Experience the Japanese practice of shinrin-yoku (forest bathing) guided by a certified forest therapy guide.",
			Image:          "https://images.unsplash.com/photo-1470071459604-3b5ec3a7fe05",
			Price:          40,
			Duration:       "2 hours",
			Location:       "Huron Natural Area",
			City:           "Kitchener",
			Region:         "Waterloo Region",
			Country:        "Canada",
			Coordinates:    &entity.Coordinates{Lat: 43.4076, Lng: -80.4736},
			Rating:         4.8,
			ReviewCount:    45,
			Categories:     []string{"Adventure & Outdoor", "Wellness"},
			Provider:       "Mindful KW",
			AvailableTimes: []string{"8:00 AM", "4:00 PM"},
			StartDate:      at(27),
			EndDate:        at(29),
			HiddenGem:      true,
			Languages:      []string{"English", "Japanese"},
			ActivityType:   []string{"Wellness Session", "Outdoor Adventure"},
			AccessibilityFeatures: &entity.Accessibility{
				Mobility:      []string{},
				Communication: []string{"Written materials"},
				Sensory:       []string{"Quiet space available"},
			},
			RecommendationScore: ptr(0.79),
			Source:              entity.SourceStatic,
		},
		{
			ID:             "7",
			Title:          "Historical Walking Tour of Downtown Guelph",
			Description:    "Discover the fascinating history of Guelph's downtown core and the surrounding heritage district.",
			Image:          "https://images.unsplash.com/photo-1506744038136-46273834b3fb",
			Price:          25,
			Duration:       "1.5 hours",
			Location:       "Downtown Guelph",
			City:           "Guelph",
			Region:         "Wellington County",
			Country:        "Canada",
			Coordinates:    &entity.Coordinates{Lat: 43.5448, Lng: -80.2482},
			Rating:         4.5,
			ReviewCount:    62,
			Categories:     []string{"Tours", "Local Culture", "Festivals & Culture"},
			Provider:       "Guelph Heritage Society",
			AvailableTimes: []string{"10:00 AM", "2:00 PM", "5:00 PM"},
			StartDate:      at(3),
			EndDate:        at(4.5),
			Trending:       true,
			Languages:      []string{"English", "French"},
			ActivityType:   []string{"Guided Tour"},
			AccessibilityFeatures: &entity.Accessibility{
				Mobility:          []string{"Wheelchair accessible", "Step-free access"},
				Communication:     []string{"Audio guide"},
				Sensory:           []string{},
				FreeForAssistants: true,
			},
			RecommendationScore: ptr(0.71),
			Source:              entity.SourceStatic,
		},
		{
			ID:                 "8",
			Title:              "Salsa Dance Class for Beginners",
			Description:        "Learn the fundamentals of salsa dancing in this fun, high-energy class suitable for complete beginners.",
			Image:              "https://images.unsplash.com/photo-1605810230434-7631ac76ec81",
			Price:              20,
			Duration:           "1 hour",
			Location:           "KW Latin Dance Studio",
			City:               "Waterloo",
			Region:             "Waterloo Region",
			Country:            "Canada",
			Coordinates:        &entity.Coordinates{Lat: 43.4668, Lng: -80.5164},
			Rating:             4.9,
			ReviewCount:        79,
			Categories:         []string{"Music & Nightlife", "Workshops & Community"},
			Provider:           "Salsa KW",
			AvailableTimes:     []string{"6:00 PM", "8:00 PM"},
			StartDate:          at(8),
			EndDate:            at(9),
			FlashDeal:          true,
			FlashDealEndTime:   ptr(at(4)),
			DiscountPercentage: ptr(20.0),
			Languages:          []string{"English", "Spanish"},
			ActivityType:       []string{"Hands-on Class"},
			AccessibilityFeatures: &entity.Accessibility{
				Mobility:      []string{"Step-free access"},
				Communication: []string{},
				Sensory:       []string{"Loud environment"},
			},
			RecommendationScore: ptr(0.84),
			Source:              entity.SourceStatic,
		},
		{
			ID:             "9",
			Title:          "Cambridge Butterfly Conservatory Tour",
			Description:    "Explore the magical world of butterflies with a guided tour through this tropical paradise.",
			Image:          "https://images.unsplash.com/photo-1555320138-087de9e27314",
			Price:          35,
			Duration:       "1.5 hours",
			Location:       "Cambridge Butterfly Conservatory",
			City:           "Cambridge",
			Region:         "Waterloo Region",
			Country:        "Canada",
			Coordinates:    &entity.Coordinates{Lat: 43.3930, Lng: -80.3593},
			Rating:         4.7,
			ReviewCount:    112,
			Categories:     []string{"Adventure & Outdoor", "Family-Friendly"},
			Provider:       "Cambridge Nature Tours",
			AvailableTimes: []string{"11:00 AM", "2:00 PM", "4:00 PM"},
			StartDate:      at(25),
			EndDate:        at(26.5),
			HiddenGem:      true,
			Languages:      []string{"English", "French"},
			ActivityType:   []string{"Guided Tour", "Family Activity"},
			AccessibilityFeatures: &entity.Accessibility{
				Mobility:          []string{"Wheelchair accessible", "Step-free access"},
				Communication:     []string{"Audio guide", "Written materials"},
				Sensory:           []string{"Quiet space available"},
				FreeForAssistants: true,
			},
			RecommendationScore: ptr(0.86),
			Source:              entity.SourceStatic,
		},
		{
			ID:             "10",
			Title:          "Guelph Craft Distillery Tasting",
			Description:    "Sample premium craft spirits at this award-winning distillery, with a behind-the-scenes tour of the production process.",
			Image:          "https://images.unsplash.com/photo-1550985543-1d83b30e5ed9",
			Price:          50,
			Duration:       "2 hours",
			Location:       "Dixon's Distilled Spirits",
			City:           "Guelph",
			Region:         "Wellington County",
			Country:        "Canada",
			Coordinates:    &entity.Coordinates{Lat: 43.5591, Lng: -80.2720},
			Rating:         4.8,
			ReviewCount:    67,
			Categories:     []string{"Food & Drink", "Tours"},
			Provider:       "Guelph Spirit Tours",
			AvailableTimes: []string{"3:00 PM", "7:00 PM"},
			StartDate:      at(6),
			EndDate:        at(8),
			Trending:       true,
			Languages:      []string{"English"},
			ActivityType:   []string{"Tasting", "Guided Tour"},
			AccessibilityFeatures: &entity.Accessibility{
				Mobility:      []string{"Step-free access"},
				Communication: []string{},
				Sensory:       []string{},
			},
			RecommendationScore: ptr(0.77),
			Source:              entity.SourceStatic,
		},
		{
			ID:                 "11",
			Title:              "Kitchener Street Food Night Market",
			Description:        "Experience the best street food vendors from across the region at this vibrant night market.",
			Image:              "https://images.unsplash.com/photo-1533900298318-6b8da08a523e",
			Price:              15,
			Duration:           "3 hours",
			Location:           "Victoria Park",
			City:               "Kitchener",
			Region:             "Waterloo Region",
			Country:            "Canada",
			Coordinates:        &entity.Coordinates{Lat: 43.4479, Lng: -80.4989},
			Rating:             4.9,
			ReviewCount:        192,
			Categories:         []string{"Food & Drink", "Festivals & Culture", "Music & Nightlife"},
			Provider:           "KW Foodie Events",
			AvailableTimes:     []string{"6:00 PM", "7:00 PM", "8:00 PM"},
			StartDate:          at(30),
			EndDate:            at(33),
			Trending:           true,
			FlashDeal:          true,
			FlashDealEndTime:   ptr(at(20)),
			DiscountPercentage: ptr(10.0),
			Languages:          []string{"English", "Spanish", "Punjabi"},
			ActivityType:       []string{"Festival", "Tasting"},
			AccessibilityFeatures: &entity.Accessibility{
				Mobility:          []string{"Wheelchair accessible"},
				Communication:     []string{},
				Sensory:           []string{"Loud environment"},
				FreeForAssistants: true,
			},
			RecommendationScore: ptr(0.95),
			Source:              entity.SourceStatic,
		},
		{
			ID:             "12",
			Title:          "Waterloo Region Tech Hub Tour",
			Description:    "Go behind the scenes at some of the region's most innovative tech companies and startups.",
			Image:          "https://images.unsplash.com/photo-1519389950473-47ba0277781c",
			Price:          40,
			Duration:       "2.5 hours",
			Location:       "Various Locations",
			City:           "Waterloo",
			Region:         "Waterloo Region",
			Country:        "Canada",
			Coordinates:    &entity.Coordinates{Lat: 43.4723, Lng: -80.5449},
			Rating:         4.5,
			ReviewCount:    48,
			Categories:     []string{"Tours", "Workshops & Community"},
			Provider:       "Waterloo Tech Tours",
			AvailableTimes: []string{"10:00 AM", "2:00 PM"},
			StartDate:      at(48),
			EndDate:        at(50.5),
			HiddenGem:      true,
			Languages:      []string{"English", "Mandarin"},
			ActivityType:   []string{"Guided Tour"},
			AccessibilityFeatures: &entity.Accessibility{
				Mobility:      []string{"Wheelchair accessible"},
				Communication: []string{"Written materials"},
				Sensory:       []string{},
			},
			Source: entity.SourceStatic,
		},
	}
}
