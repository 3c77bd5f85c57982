package service

import (
	"context"
	"sync"
	"time"

	"localxp-api/modules/experience/entity"
)

var (
	eastern = time.FixedZone("EDT", -4*60*60)
	testNow = time.Date(2025, 6, 14, 9, 0, 0, 0, eastern)
)

type fakeSource struct {
	mu      sync.Mutex
	name    string
	records []entity.Experience
	err     error
	calls   int
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Fetch(ctx context.Context, location string) ([]entity.Experience, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func (f *fakeSource) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func record(id string) entity.Experience {
	return entity.Experience{
		ID:         id,
		Title:      "Experience " + id,
		City:       "Waterloo",
		Categories: []string{"Tours"},
		StartDate:  testNow.Add(time.Hour),
		EndDate:    testNow.Add(2 * time.Hour),
	}
}
