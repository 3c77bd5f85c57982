package service

import (
	"reflect"
	"testing"
	"time"
)

func TestSortExperiences(t *testing.T) {
	t.Parallel()

	catalog := catalogOf(
		newExperience("a", priced(30), startsIn(5*time.Hour), func(e *rec) { e.Rating = 4.5 }),
		newExperience("b", priced(50), flashDeal(50, time.Hour), startsIn(2*time.Hour), func(e *rec) { e.Rating = 4.9 }),
		newExperience("c", priced(25), startsIn(9*time.Hour), func(e *rec) { e.Rating = 4.5 }),
		newExperience("d", priced(30), startsIn(time.Hour), func(e *rec) { e.Rating = 4.8 }),
	)

	tests := []struct {
		option SortOption
		want   []string
	}{
		// b displays at 25 and ties with c; ties keep catalog order.
		{SortPriceAsc, []string{"b", "c", "a", "d"}},
		{SortPriceDesc, []string{"a", "d", "b", "c"}},
		{SortRatingDesc, []string{"b", "d", "a", "c"}},
		{SortTimeAsc, []string{"d", "b", "a", "c"}},
		{"", []string{"a", "b", "c", "d"}},
		{"popularity", []string{"a", "b", "c", "d"}},
	}

	for _, tc := range tests {
		got := ids(SortExperiences(catalog, tc.option))
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%q: got %v, want %v", tc.option, got, tc.want)
		}
	}

	if ids(catalog)[0] != "a" {
		t.Fatalf("sorting must not reorder the input")
	}
}
