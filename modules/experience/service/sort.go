package service

import (
	"sort"

	"localxp-api/modules/experience/entity"
)

type SortOption string

const (
	SortPriceAsc   SortOption = "price-asc"
	SortPriceDesc  SortOption = "price-desc"
	SortRatingDesc SortOption = "rating-desc"
	SortTimeAsc    SortOption = "time-asc"
)

// SortExperiences returns a stably sorted copy. Prices compare by display
// price. An unknown option keeps the input order.
func SortExperiences(records []entity.Experience, option SortOption) []entity.Experience {
	out := make([]entity.Experience, len(records))
	copy(out, records)

	var less func(a, b entity.Experience) bool
	switch option {
	case SortPriceAsc:
		less = func(a, b entity.Experience) bool { return DisplayPrice(a) < DisplayPrice(b) }
	case SortPriceDesc:
		less = func(a, b entity.Experience) bool { return DisplayPrice(a) > DisplayPrice(b) }
	case SortRatingDesc:
		less = func(a, b entity.Experience) bool { return a.Rating > b.Rating }
	case SortTimeAsc:
		less = func(a, b entity.Experience) bool { return a.StartDate.Before(b.StartDate) }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
