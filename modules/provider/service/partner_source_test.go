package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"localxp-api/core/clock"
	"localxp-api/modules/provider/entity"
)

type fakePartnerRepo struct {
	rows  []entity.PartnerExperience
	err   error
	city  string
	since time.Time
}

func (f *fakePartnerRepo) ListUpcoming(ctx context.Context, city string, since time.Time) ([]entity.PartnerExperience, error) {
	f.city, f.since = city, since
	return f.rows, f.err
}

func TestPartnerSource_Fetch(t *testing.T) {
	t.Parallel()

	repo := &fakePartnerRepo{rows: []entity.PartnerExperience{{
		ID:         "9",
		Title:      "Bakery Tour",
		City:       "Waterloo",
		Categories: []string{"Food & Drink"},
		StartsAt:   testNow.Add(time.Hour),
		EndsAt:     testNow.Add(3 * time.Hour),
	}}}

	got, err := NewPartnerSource(repo, clock.NewFixed(testNow)).Fetch(context.Background(), "Waterloo")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(got) != 1 || got[0].ID != "partner-9" {
		t.Fatalf("unexpected records %+v", got)
	}
	if repo.city != "Waterloo" || !repo.since.Equal(testNow) {
		t.Fatalf("unexpected query args city=%q since=%v", repo.city, repo.since)
	}
}

func TestPartnerSource_Error(t *testing.T) {
	t.Parallel()

	repo := &fakePartnerRepo{err: errors.New("connection refused")}
	if _, err := NewPartnerSource(repo, clock.NewFixed(testNow)).Fetch(context.Background(), ""); err == nil {
		t.Fatalf("expected repository error")
	}
}
