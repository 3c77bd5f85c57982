package repository

import (
	"context"
	"errors"
	"sync"

	"localxp-api/modules/booking/entity"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrIdempotencyConflict = errors.New("idempotency key already used")
	ErrIdempotencyInFlight = errors.New("idempotency key is being processed")
)

// BookingRepositoryInterface defines booking storage operations
type BookingRepositoryInterface interface {
	Reserve(ctx context.Context, key, experienceID string) (*entity.Booking, error)
	Release(ctx context.Context, key string) error
	Create(ctx context.Context, booking entity.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	List(ctx context.Context) ([]entity.Booking, error)
}

// keyEntry holds an idempotency key. bookingID stays uuid.Nil while the key
// is reserved and payment has not finished.
type keyEntry struct {
	experienceID string
	bookingID    uuid.UUID
}

// BookingRepository keeps bookings in process memory; they are lost on restart.
type BookingRepository struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]entity.Booking
	byKey map[string]keyEntry
	order []uuid.UUID
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{
		byID:  make(map[uuid.UUID]entity.Booking),
		byKey: make(map[string]keyEntry),
	}
}

// Reserve claims key for experienceID before any payment is taken. An unused
// key returns (nil, nil). A key already confirmed for the same experience
// returns that booking.
func (r *BookingRepository) Reserve(ctx context.Context, key, experienceID string) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.byKey[key]
	if !ok {
		r.byKey[key] = keyEntry{experienceID: experienceID}
		return nil, nil
	}
	if entry.experienceID != experienceID {
		return nil, ErrIdempotencyConflict
	}
	if entry.bookingID == uuid.Nil {
		return nil, ErrIdempotencyInFlight
	}
	booking := r.byID[entry.bookingID]
	return &booking, nil
}

// Release frees a reservation that never became a booking.
func (r *BookingRepository) Release(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry, ok := r.byKey[key]; ok && entry.bookingID == uuid.Nil {
		delete(r.byKey, key)
	}
	return nil
}

// Create stores a booking and binds its idempotency key, confirming a
// reservation made by Reserve.
func (r *BookingRepository) Create(ctx context.Context, booking entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if key := booking.IdempotencyKey; key != "" {
		entry, exists := r.byKey[key]
		if exists && (entry.bookingID != uuid.Nil || entry.experienceID != booking.ExperienceID) {
			return ErrIdempotencyConflict
		}
		r.byKey[key] = keyEntry{experienceID: booking.ExperienceID, bookingID: booking.ID}
	}
	r.byID[booking.ID] = booking
	r.order = append(r.order, booking.ID)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.byID[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return &booking, nil
}

// List returns every booking, newest first.
func (r *BookingRepository) List(ctx context.Context) ([]entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Booking, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, r.byID[r.order[i]])
	}
	return out, nil
}
