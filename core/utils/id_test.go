package utils

import (
	"strings"
	"testing"
)

func TestGenerateTicketID(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateTicketID()
		if len(id) != TicketIDLength {
			t.Fatalf("expected length %d, got %q", TicketIDLength, id)
		}
		if id != strings.ToUpper(id) {
			t.Fatalf("expected upper-case id, got %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate ticket id %q", id)
		}
		seen[id] = true
	}
}

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Wheelchair accessible": "wheelchair-accessible",
		"Food & Drink":          "food-and-drink",
		"Kitchener-Waterloo":    "kitchener-waterloo",
	}
	for in, want := range tests {
		if got := Slug(in); got != want {
			t.Fatalf("Slug(%q) = %q, want %q", in, got, want)
		}
	}
}
