package service

import (
	"reflect"
	"testing"
	"time"

	"localxp-api/modules/experience/entity"
	"localxp-api/modules/experience/repository"
)

func TestFilter_EmptyCriteriaReturnsCatalog(t *testing.T) {
	t.Parallel()

	catalog := repository.SeedExperiences(testNow)
	got := Filter(catalog, FilterCriteria{TimeFrame: TimeFrameAll}, testNow)

	if !reflect.DeepEqual(ids(got), ids(catalog)) {
		t.Fatalf("expected full catalog in order, got %v", ids(got))
	}
}

func TestFilter_FoodAndDrinkToday(t *testing.T) {
	t.Parallel()

	market := newExperience("market", startsIn(2*time.Hour), priced(45), categories("Food & Drink"))
	catalog := []entity.Experience{market}

	included := Filter(catalog, FilterCriteria{
		Interests: []string{"Food & Drink"},
		TimeFrame: TimeFrameToday,
		MaxPrice:  floatPtr(50),
	}, testNow)
	if len(included) != 1 || included[0].ID != "market" {
		t.Fatalf("expected market to match, got %v", ids(included))
	}

	excluded := Filter(catalog, FilterCriteria{
		Interests: []string{"Music"},
		TimeFrame: TimeFrameToday,
		MaxPrice:  floatPtr(50),
	}, testNow)
	if len(excluded) != 0 {
		t.Fatalf("expected no match for Music, got %v", ids(excluded))
	}
}

func TestFilter_Facets(t *testing.T) {
	t.Parallel()

	catalog := []entity.Experience{
		newExperience("a", inCity("Waterloo"), priced(20), startsIn(time.Hour), categories("Food & Drink"),
			func(e *entity.Experience) {
				e.Trending = true
				e.Languages = []string{"English", "French"}
				e.ActivityType = []string{"Tasting"}
				e.AccessibilityFeatures = &entity.Accessibility{
					Mobility:          []string{"Wheelchair accessible"},
					Sensory:           []string{"Quiet space available"},
					FreeForAssistants: true,
				}
			}),
		newExperience("b", inCity("Kitchener"), priced(80), startsIn(30*time.Hour), categories("Sports"),
			func(e *entity.Experience) {
				e.HiddenGem = true
				e.Languages = []string{"Spanish"}
				e.ActivityType = []string{"Outdoor Adventure"}
			}),
		newExperience("c", inCity("Guelph"), priced(60), startsIn(72*time.Hour), categories("Tours", "Local Culture"),
			flashDeal(10, time.Hour)),
	}

	tests := []struct {
		name     string
		criteria FilterCriteria
		want     []string
	}{
		{"interests", FilterCriteria{Interests: []string{"Sports", "Tours"}}, []string{"b", "c"}},
		{"today", FilterCriteria{TimeFrame: TimeFrameToday}, []string{"a"}},
		{"next 48 hours", FilterCriteria{TimeFrame: TimeFrameNext48Hours}, []string{"a", "b"}},
		{"unknown time frame is all", FilterCriteria{TimeFrame: "someday"}, []string{"a", "b", "c"}},
		{"cities", FilterCriteria{Cities: []string{"Guelph", "Kitchener"}}, []string{"b", "c"}},
		{"location fallback", FilterCriteria{Location: "Guelph"}, []string{"c"}},
		{"cities win over location", FilterCriteria{Cities: []string{"Waterloo"}, Location: "Guelph"}, []string{"a"}},
		{"trending only", FilterCriteria{TrendingOnly: true}, []string{"a"}},
		{"hidden gem only", FilterCriteria{HiddenGemOnly: true}, []string{"b"}},
		{"flash deal only", FilterCriteria{FlashDealOnly: true}, []string{"c"}},
		{"max price", FilterCriteria{MaxPrice: floatPtr(60)}, []string{"a", "c"}},
		{"max price zero", FilterCriteria{MaxPrice: floatPtr(0)}, []string{}},
		{"negative max price", FilterCriteria{MaxPrice: floatPtr(-1)}, []string{}},
		{"time of day", FilterCriteria{TimesOfDay: []TimeOfDay{Morning}}, []string{"a", "c"}},
		{"time of day evening", FilterCriteria{TimesOfDay: []TimeOfDay{Evening}}, []string{}},
		// c has no languages, so the facet does not constrain it.
		{"languages", FilterCriteria{Languages: []string{"French"}}, []string{"a", "c"}},
		{"activity types", FilterCriteria{ActivityTypes: []string{"Outdoor Adventure"}}, []string{"b", "c"}},
		{"accessibility mobility", FilterCriteria{Accessibility: &AccessibilityCriteria{Mobility: []string{"Wheelchair accessible"}}}, []string{"a"}},
		{"accessibility assistants", FilterCriteria{Accessibility: &AccessibilityCriteria{FreeForAssistants: true}}, []string{"a"}},
		{"accessibility empty", FilterCriteria{Accessibility: &AccessibilityCriteria{}}, []string{"a", "b", "c"}},
		{"accessibility anded", FilterCriteria{Accessibility: &AccessibilityCriteria{
			Mobility: []string{"Wheelchair accessible"},
			Sensory:  []string{"Loud environment"},
		}}, []string{}},
		{"query", FilterCriteria{Query: "guelph"}, []string{"c"}},
		{"combined", FilterCriteria{
			Interests: []string{"Food & Drink", "Sports"},
			TimeFrame: TimeFrameNext48Hours,
			MaxPrice:  floatPtr(50),
		}, []string{"a"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ids(Filter(catalog, tc.criteria, testNow))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	t.Parallel()

	catalog := repository.SeedExperiences(testNow)
	criteria := FilterCriteria{
		Interests: []string{"Food & Drink", "Tours"},
		TimeFrame: TimeFrameNext48Hours,
		MaxPrice:  floatPtr(60),
	}

	first := Filter(catalog, criteria, testNow)
	second := Filter(catalog, criteria, testNow)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %v and %v", ids(first), ids(second))
	}
}

func TestMatchesQuery(t *testing.T) {
	t.Parallel()

	exp := newExperience("q", categories("Food & Drink"), func(e *entity.Experience) {
		e.Title = "Craft Beer Tasting"
		e.Description = "Three breweries"
		e.Location = "Downtown Kitchener"
		e.Provider = "Brew Tours KW"
	})

	tests := map[string]bool{
		"":           true,
		"BEER":       true,
		"breweries":  true,
		"downtown":   true,
		"waterloo":   true,
		"food & dr":  true,
		"brew tours": true,
		"kayak":      false,
	}
	for q, want := range tests {
		if got := MatchesQuery(exp, q); got != want {
			t.Fatalf("MatchesQuery(%q) = %v, want %v", q, got, want)
		}
	}
}
