package service

import (
	"strings"
	"time"

	"localxp-api/modules/experience/entity"
)

type AccessibilityCriteria struct {
	Mobility          []string
	Communication     []string
	Sensory           []string
	FreeForAssistants bool
}

// FilterCriteria holds every facet. The zero value of a field leaves that
// facet unconstrained.
type FilterCriteria struct {
	Interests     []string
	TimeFrame     TimeFrame
	Cities        []string
	TrendingOnly  bool
	HiddenGemOnly bool
	FlashDealOnly bool
	MaxPrice      *float64
	TimesOfDay    []TimeOfDay
	Languages     []string
	ActivityTypes []string
	Accessibility *AccessibilityCriteria
	Location      string
	Query         string
}

type predicate func(entity.Experience) bool

// Filter returns the experiences matching every active facet, in input order.
func Filter(records []entity.Experience, criteria FilterCriteria, now time.Time) []entity.Experience {
	preds := criteria.predicates(now)
	out := make([]entity.Experience, 0, len(records))
	for _, exp := range records {
		if matchAll(exp, preds) {
			out = append(out, exp)
		}
	}
	return out
}

func matchAll(exp entity.Experience, preds []predicate) bool {
	for _, p := range preds {
		if !p(exp) {
			return false
		}
	}
	return true
}

// predicates builds only the active facets, so an empty criteria matches everything.
func (c FilterCriteria) predicates(now time.Time) []predicate {
	var preds []predicate

	if len(c.Interests) > 0 {
		preds = append(preds, func(e entity.Experience) bool { return intersects(e.Categories, c.Interests) })
	}
	if c.TimeFrame == TimeFrameToday || c.TimeFrame == TimeFrameNext48Hours {
		preds = append(preds, func(e entity.Experience) bool { return matchesTimeFrame(e, c.TimeFrame, now) })
	}
	switch {
	case len(c.Cities) > 0:
		preds = append(preds, func(e entity.Experience) bool { return contains(c.Cities, e.City) })
	case c.Location != "":
		preds = append(preds, func(e entity.Experience) bool { return e.City == c.Location })
	}
	if c.TrendingOnly {
		preds = append(preds, func(e entity.Experience) bool { return e.Trending })
	}
	if c.HiddenGemOnly {
		preds = append(preds, func(e entity.Experience) bool { return e.HiddenGem })
	}
	if c.FlashDealOnly {
		preds = append(preds, func(e entity.Experience) bool { return e.FlashDeal })
	}
	if c.MaxPrice != nil {
		limit := *c.MaxPrice
		preds = append(preds, func(e entity.Experience) bool { return e.Price <= limit })
	}
	if len(c.TimesOfDay) > 0 {
		loc := now.Location()
		preds = append(preds, func(e entity.Experience) bool {
			tod := TimeOfDayOf(e.StartDate, loc)
			for _, want := range c.TimesOfDay {
				if tod == want {
					return true
				}
			}
			return false
		})
	}
	if len(c.Languages) > 0 {
		preds = append(preds, func(e entity.Experience) bool { return looseIntersects(e.Languages, c.Languages) })
	}
	if len(c.ActivityTypes) > 0 {
		preds = append(preds, func(e entity.Experience) bool { return looseIntersects(e.ActivityType, c.ActivityTypes) })
	}
	if c.Accessibility != nil {
		preds = append(preds, c.Accessibility.predicate())
	}
	if q := strings.TrimSpace(c.Query); q != "" {
		preds = append(preds, func(e entity.Experience) bool { return MatchesQuery(e, q) })
	}
	return preds
}

func (a AccessibilityCriteria) predicate() predicate {
	return func(e entity.Experience) bool {
		features := e.AccessibilityFeatures
		if features == nil {
			features = &entity.Accessibility{}
		}
		if len(a.Mobility) > 0 && !intersects(features.Mobility, a.Mobility) {
			return false
		}
		if len(a.Communication) > 0 && !intersects(features.Communication, a.Communication) {
			return false
		}
		if len(a.Sensory) > 0 && !intersects(features.Sensory, a.Sensory) {
			return false
		}
		if a.FreeForAssistants && !features.FreeForAssistants {
			return false
		}
		return true
	}
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func intersects(have, want []string) bool {
	for _, h := range have {
		if contains(want, h) {
			return true
		}
	}
	return false
}

// looseIntersects treats an empty side as a match.
func looseIntersects(have, want []string) bool {
	if len(have) == 0 || len(want) == 0 {
		return true
	}
	return intersects(have, want)
}
