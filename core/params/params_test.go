package params

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"localxp-api/core/constants"

	"github.com/labstack/echo/v4"
)

func contextFor(target string) echo.Context {
	e := echo.New()
	return e.NewContext(httptest.NewRequest(http.MethodGet, target, nil), httptest.NewRecorder())
}

func TestNewQueryParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		target   string
		wantPage int
		wantSize int
	}{
		{"/x", 1, constants.DefaultPageSize},
		{"/x?page=3&page_size=5", 3, 5},
		{"/x?page=-1&page_size=abc", 1, constants.DefaultPageSize},
		{"/x?page_size=1000", 1, constants.MaxPageSize},
	}
	for _, tc := range tests {
		qp := NewQueryParams(contextFor(tc.target))
		if qp.PageNumber != tc.wantPage || qp.PageSize != tc.wantSize {
			t.Fatalf("%s: got page=%d size=%d", tc.target, qp.PageNumber, qp.PageSize)
		}
	}
}

func TestList(t *testing.T) {
	t.Parallel()

	got := List(contextFor("/x?cities=Waterloo,%20Guelph&cities=Cambridge&cities=,"), "cities")
	want := []string{"Waterloo", "Guelph", "Cambridge"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if List(contextFor("/x"), "cities") != nil {
		t.Fatalf("expected nil for an absent parameter")
	}
}

func TestScalars(t *testing.T) {
	t.Parallel()

	c := contextFor("/x?trending_only=true&max_price=42.5&guests=3&bad=maybe")

	if v, err := Bool(c, "trending_only"); err != nil || !v {
		t.Fatalf("Bool: %v %v", v, err)
	}
	if v, err := Bool(c, "missing"); err != nil || v {
		t.Fatalf("Bool absent: %v %v", v, err)
	}
	if _, err := Bool(c, "bad"); err == nil {
		t.Fatalf("expected error for a non-boolean")
	}

	if v, err := Float(c, "max_price"); err != nil || v == nil || *v != 42.5 {
		t.Fatalf("Float: %v %v", v, err)
	}
	if v, err := Float(c, "missing"); err != nil || v != nil {
		t.Fatalf("Float absent: %v %v", v, err)
	}
	if _, err := Float(c, "bad"); err == nil {
		t.Fatalf("expected error for a non-number")
	}

	if v, err := Int(c, "guests", 1); err != nil || v != 3 {
		t.Fatalf("Int: %v %v", v, err)
	}
	if v, err := Int(c, "missing", 7); err != nil || v != 7 {
		t.Fatalf("Int default: %v %v", v, err)
	}
}
