package service

import (
	"time"

	"localxp-api/core/constants"
	"localxp-api/modules/experience/entity"
)

type TimeFrame string

const (
	TimeFrameToday       TimeFrame = "today"
	TimeFrameNext48Hours TimeFrame = "next48hours"
	TimeFrameAll         TimeFrame = "all"
)

type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

// IsAvailableToday reports whether exp starts on now's calendar day, in now's location.
func IsAvailableToday(exp entity.Experience, now time.Time) bool {
	start := exp.StartDate.In(now.Location())
	y, m, d := now.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	dayEnd := time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), now.Location())
	return !start.Before(dayStart) && !start.After(dayEnd)
}

// IsAvailableWithin48Hours reports whether now <= startDate <= now+48h.
func IsAvailableWithin48Hours(exp entity.Experience, now time.Time) bool {
	limit := now.Add(constants.AvailabilityWindow)
	return !exp.StartDate.Before(now) && !exp.StartDate.After(limit)
}

// TimeOfDayOf buckets the local hour of t: before 12 morning, before 17 afternoon, else evening.
func TimeOfDayOf(t time.Time, loc *time.Location) TimeOfDay {
	if loc != nil {
		t = t.In(loc)
	}
	switch h := t.Hour(); {
	case h < 12:
		return Morning
	case h < 17:
		return Afternoon
	default:
		return Evening
	}
}

func matchesTimeFrame(exp entity.Experience, frame TimeFrame, now time.Time) bool {
	switch frame {
	case TimeFrameToday:
		return IsAvailableToday(exp, now)
	case TimeFrameNext48Hours:
		return IsAvailableWithin48Hours(exp, now)
	default:
		return true
	}
}
