package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"localxp-api/core/clock"
	"localxp-api/core/errors"
	"localxp-api/core/validator"
	"localxp-api/modules/booking/dto"
	"localxp-api/modules/booking/repository"
	"localxp-api/modules/booking/service"
	expRepository "localxp-api/modules/experience/repository"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
)

type envelope[T any] struct {
	Code errors.ErrorCode `json:"code"`
	Data T                `json:"data"`
}

func newServer(t *testing.T) *echo.Echo {
	t.Helper()

	now := time.Date(2025, 6, 14, 9, 0, 0, 0, time.FixedZone("EDT", -4*60*60))
	catalog := expRepository.NewCatalogRepository(clock.NewFixed(now))
	if err := catalog.ReplaceAll(expRepository.SeedExperiences(now)); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	svc := service.NewBookingService(repository.NewBookingRepository(), catalog, service.NewStubGateway(), clock.NewFixed(now), nil, 0.10)

	e := echo.New()
	e.Validator = validator.EchoValidator{}
	ctrl := NewBookingController(svc)
	e.POST("/bookings", ctrl.CreateBooking)
	e.GET("/bookings", ctrl.ListBookings)
	e.GET("/bookings/quote", ctrl.Quote)
	e.GET("/bookings/:id", ctrl.GetBooking)
	return e
}

func do(e *echo.Echo, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var out envelope[T]
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
	return out
}

func TestBookingController_Flow(t *testing.T) {
	t.Parallel()

	e := newServer(t)

	rec := do(e, http.MethodPost, "/bookings",
		`{"experience_id":"2","selected_time":"6:00 PM","payment_method":"card","guests":2}`,
		map[string]string{"Idempotency-Key": "abc"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decode[dto.BookingResponse](t, rec)
	if created.Data.Total != 121.55 || created.Data.Status != "confirmed" || created.Data.TicketID == "" {
		t.Fatalf("unexpected booking %+v", created.Data)
	}

	rec = do(e, http.MethodGet, "/bookings/"+created.Data.ID, "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := decode[dto.BookingResponse](t, rec); got.Data.TicketID != created.Data.TicketID {
		t.Fatalf("expected ticket %s, got %s", created.Data.TicketID, got.Data.TicketID)
	}

	rec = do(e, http.MethodGet, "/bookings", "", nil)
	if list := decode[[]dto.BookingResponse](t, rec); len(list.Data) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(list.Data))
	}

	rec = do(e, http.MethodGet, "/bookings/quote?experience_id=11&guests=4", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	quote := decode[dto.QuoteResponse](t, rec)
	if quote.Data.UnitPrice != 13.5 || quote.Data.Subtotal != 54 || quote.Data.Total != 59.4 {
		t.Fatalf("unexpected quote %+v", quote.Data)
	}
}

func TestBookingController_Errors(t *testing.T) {
	t.Parallel()

	e := newServer(t)

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
		wantCode   errors.ErrorCode
	}{
		{
			name:       "unsupported payment method",
			method:     http.MethodPost,
			target:     "/bookings",
			body:       `{"experience_id":"1","selected_time":"1:00 PM","payment_method":"cash"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   errors.ErrInvalidInput,
		},
		{
			name:       "malformed body",
			method:     http.MethodPost,
			target:     "/bookings",
			body:       `{"experience_id":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   errors.ErrInvalidRequestData,
		},
		{
			name:       "sold out",
			method:     http.MethodPost,
			target:     "/bookings",
			body:       `{"experience_id":"5","selected_time":"8:00 PM","payment_method":"card"}`,
			wantStatus: http.StatusConflict,
			wantCode:   errors.ErrSoldOut,
		},
		{
			name:       "declined",
			method:     http.MethodPost,
			target:     "/bookings",
			body:       `{"experience_id":"1","selected_time":"1:00 PM","payment_method":"card","payment_token":"` + service.DeclinedPaymentToken + `"}`,
			wantStatus: http.StatusPaymentRequired,
			wantCode:   errors.ErrPaymentDeclined,
		},
		{
			name:       "unknown experience",
			method:     http.MethodPost,
			target:     "/bookings",
			body:       `{"experience_id":"404","selected_time":"1:00 PM","payment_method":"card"}`,
			wantStatus: http.StatusNotFound,
			wantCode:   errors.ErrNotFound,
		},
		{
			name:       "quote without experience",
			method:     http.MethodGet,
			target:     "/bookings/quote",
			wantStatus: http.StatusBadRequest,
			wantCode:   errors.ErrInvalidInput,
		},
		{
			name:       "quote with bad guests",
			method:     http.MethodGet,
			target:     "/bookings/quote?experience_id=1&guests=zero",
			wantStatus: http.StatusBadRequest,
			wantCode:   errors.ErrInvalidInput,
		},
		{
			name:       "invalid booking id",
			method:     http.MethodGet,
			target:     "/bookings/not-a-uuid",
			wantStatus: http.StatusBadRequest,
			wantCode:   errors.ErrInvalidInput,
		},
		{
			name:       "unknown booking",
			method:     http.MethodGet,
			target:     "/bookings/7f0c2f9e-7a51-4d4e-9d55-0c0f2b8f6a11",
			wantStatus: http.StatusNotFound,
			wantCode:   errors.ErrNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(e, tc.method, tc.target, tc.body, nil)
			if rec.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tc.wantStatus, rec.Code, rec.Body.String())
			}
			if got := decode[any](t, rec); got.Code != tc.wantCode {
				t.Fatalf("expected code %s, got %s", tc.wantCode, got.Code)
			}
		})
	}
}
