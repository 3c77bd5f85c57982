package service

import (
	"time"

	"localxp-api/modules/experience/entity"
)

var (
	eastern = time.FixedZone("EDT", -4*60*60)
	testNow = time.Date(2025, 6, 14, 9, 0, 0, 0, eastern)
)

type option func(*entity.Experience)

func newExperience(id string, opts ...option) entity.Experience {
	e := entity.Experience{
		ID:         id,
		Title:      "Experience " + id,
		Price:      10,
		City:       "Waterloo",
		Rating:     4,
		Categories: []string{"Tours"},
		StartDate:  testNow.Add(time.Hour),
		EndDate:    testNow.Add(2 * time.Hour),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func startsIn(d time.Duration) option {
	return func(e *entity.Experience) {
		e.StartDate = testNow.Add(d)
		e.EndDate = e.StartDate.Add(time.Hour)
	}
}

func inCity(city string) option { return func(e *entity.Experience) { e.City = city } }

func priced(p float64) option { return func(e *entity.Experience) { e.Price = p } }

func categories(c ...string) option { return func(e *entity.Experience) { e.Categories = c } }

func score(s float64) option { return func(e *entity.Experience) { e.RecommendationScore = &s } }

func flashDeal(discount float64, endsIn time.Duration) option {
	return func(e *entity.Experience) {
		end := testNow.Add(endsIn)
		e.FlashDeal = true
		e.DiscountPercentage = &discount
		e.FlashDealEndTime = &end
	}
}

func ids(records []entity.Experience) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func floatPtr(v float64) *float64 { return &v }

func catalogOf(records ...entity.Experience) []entity.Experience { return records }

type rec = entity.Experience
