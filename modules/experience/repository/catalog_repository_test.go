package repository

import (
	"errors"
	"testing"
	"time"

	"localxp-api/core/clock"
	"localxp-api/modules/experience/entity"
)

var testNow = time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)

func newSeeded(t *testing.T) *CatalogRepository {
	t.Helper()
	repo := NewCatalogRepository(clock.NewFixed(testNow))
	if err := repo.ReplaceAll(SeedExperiences(testNow)); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	return repo
}

func TestSeedExperiences_Valid(t *testing.T) {
	t.Parallel()

	seed := SeedExperiences(testNow)
	if len(seed) != 12 {
		t.Fatalf("expected 12 seed experiences, got %d", len(seed))
	}
	for _, exp := range seed {
		if err := exp.Validate(); err != nil {
			t.Fatalf("seed record invalid: %v", err)
		}
	}
}

func TestCatalogRepository_GetByID(t *testing.T) {
	t.Parallel()

	repo := newSeeded(t)

	exp, ok := repo.GetByID("2")
	if !ok {
		t.Fatalf("expected experience 2 to exist")
	}
	if exp.Title != "Craft Beer Tasting Experience" {
		t.Fatalf("unexpected title %q", exp.Title)
	}

	if _, ok := repo.GetByID("does-not-exist"); ok {
		t.Fatalf("expected unknown id to be not found")
	}
}

func TestCatalogRepository_GetAllReturnsCopy(t *testing.T) {
	t.Parallel()

	repo := newSeeded(t)
	all := repo.GetAll()
	all[0].Title = "mutated"

	again := repo.GetAll()
	if again[0].Title == "mutated" {
		t.Fatalf("GetAll must not expose the internal slice")
	}
	for i, exp := range again {
		if want := SeedExperiences(testNow)[i].ID; exp.ID != want {
			t.Fatalf("position %d: expected id %s, got %s", i, want, exp.ID)
		}
	}
}

func TestCatalogRepository_ReplaceAll(t *testing.T) {
	t.Parallel()

	valid := SeedExperiences(testNow)[:2]

	badDeal := SeedExperiences(testNow)[0]
	badDeal.FlashDeal = true

	badDates := SeedExperiences(testNow)[0]
	badDates.EndDate = badDates.StartDate.Add(-time.Hour)

	noCategories := SeedExperiences(testNow)[0]
	noCategories.Categories = nil

	tests := []struct {
		name    string
		records []entity.Experience
		wantErr error
	}{
		{name: "valid set", records: valid},
		{name: "empty set", records: []entity.Experience{}},
		{name: "duplicate id", records: []entity.Experience{valid[0], valid[0]}, wantErr: ErrDuplicateID},
		{name: "flash deal without discount", records: []entity.Experience{badDeal}, wantErr: ErrInvalidExperience},
		{name: "end before start", records: []entity.Experience{badDates}, wantErr: ErrInvalidExperience},
		{name: "no categories", records: []entity.Experience{noCategories}, wantErr: ErrInvalidExperience},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := newSeeded(t)
			before := repo.Version()

			err := repo.ReplaceAll(tc.records)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				if repo.Len() != 12 || repo.Version() != before {
					t.Fatalf("failed replace must keep the previous snapshot")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if repo.Len() != len(tc.records) {
				t.Fatalf("expected %d records, got %d", len(tc.records), repo.Len())
			}
			if repo.Version() != before+1 {
				t.Fatalf("expected version %d, got %d", before+1, repo.Version())
			}
			if !repo.UpdatedAt().Equal(testNow) {
				t.Fatalf("expected updatedAt %v, got %v", testNow, repo.UpdatedAt())
			}
		})
	}
}
