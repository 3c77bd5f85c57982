package service

import (
	"math"
	"reflect"
	"testing"
	"time"

	"localxp-api/modules/experience/repository"
)

func TestDerivedCollections_Seed(t *testing.T) {
	t.Parallel()

	catalog := repository.SeedExperiences(testNow)

	if got := ids(Trending(catalog, testNow)); !reflect.DeepEqual(got, []string{"1", "4", "7", "10", "11"}) {
		t.Fatalf("trending: got %v", got)
	}
	if got := ids(HiddenGems(catalog, testNow)); !reflect.DeepEqual(got, []string{"3", "6", "9", "12"}) {
		t.Fatalf("hidden gems: got %v", got)
	}
	if got := ids(FlashDeals(catalog, testNow)); !reflect.DeepEqual(got, []string{"2", "8", "11"}) {
		t.Fatalf("flash deals: got %v", got)
	}
}

func TestFlashDeals_ExpiredCountdown(t *testing.T) {
	t.Parallel()

	catalog := repository.SeedExperiences(testNow)
	later := testNow.Add(3*time.Hour + 30*time.Minute)

	// Deal 2 ended at +3h although the tasting itself starts at +6h.
	got := FlashDeals(catalog, later)
	if !reflect.DeepEqual(ids(got), []string{"8", "11"}) {
		t.Fatalf("expected [8 11], got %v", ids(got))
	}
	for _, exp := range got {
		if !exp.FlashDealEndTime.After(later) {
			t.Fatalf("%s: deal already expired", exp.ID)
		}
		if !IsAvailableWithin48Hours(exp, later) {
			t.Fatalf("%s: not within 48 hours", exp.ID)
		}
	}
}

func TestFlashDeals_EventOutsideWindow(t *testing.T) {
	t.Parallel()

	far := newExperience("far", startsIn(72*time.Hour), flashDeal(25, 2*time.Hour))
	if got := FlashDeals(catalogOf(far), testNow); len(got) != 0 {
		t.Fatalf("expected no deals, got %v", ids(got))
	}
}

func TestDisplayPrice(t *testing.T) {
	t.Parallel()

	deal := newExperience("deal", priced(65), flashDeal(15, time.Hour))
	if got := DisplayPrice(deal); math.Abs(got-55.25) > 1e-9 {
		t.Fatalf("expected 55.25, got %v", got)
	}

	zero := newExperience("zero", priced(40), flashDeal(0, time.Hour))
	if got := DisplayPrice(zero); got != 40 {
		t.Fatalf("zero discount must keep price, got %v", got)
	}

	for _, exp := range repository.SeedExperiences(testNow) {
		display := DisplayPrice(exp)
		if display > exp.Price {
			t.Fatalf("%s: display price %v above list price %v", exp.ID, display, exp.Price)
		}
		active := exp.FlashDeal && exp.DiscountPercentage != nil && *exp.DiscountPercentage > 0
		if (display == exp.Price) == active {
			t.Fatalf("%s: equality with list price must hold iff no active deal", exp.ID)
		}
		if HasActiveDiscount(exp) != active {
			t.Fatalf("%s: HasActiveDiscount mismatch", exp.ID)
		}
	}
}
