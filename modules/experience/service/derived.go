package service

import (
	"time"

	"localxp-api/modules/experience/entity"
)

// Trending returns trending experiences starting within the next 48 hours.
func Trending(records []entity.Experience, now time.Time) []entity.Experience {
	return selectWhere(records, func(e entity.Experience) bool {
		return e.Trending && IsAvailableWithin48Hours(e, now)
	})
}

func HiddenGems(records []entity.Experience, now time.Time) []entity.Experience {
	return selectWhere(records, func(e entity.Experience) bool {
		return e.HiddenGem && IsAvailableWithin48Hours(e, now)
	})
}

// FlashDeals drops a deal as soon as its countdown has expired, even if the
// experience itself is still upcoming.
func FlashDeals(records []entity.Experience, now time.Time) []entity.Experience {
	return selectWhere(records, func(e entity.Experience) bool {
		if !e.FlashDeal || e.FlashDealEndTime == nil {
			return false
		}
		return e.FlashDealEndTime.After(now) && IsAvailableWithin48Hours(e, now)
	})
}

func selectWhere(records []entity.Experience, keep predicate) []entity.Experience {
	out := make([]entity.Experience, 0)
	for _, exp := range records {
		if keep(exp) {
			out = append(out, exp)
		}
	}
	return out
}
