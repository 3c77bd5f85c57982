package service

import (
	"context"
	stderrors "errors"
	"slices"

	"localxp-api/core/clock"
	"localxp-api/core/constants"
	"localxp-api/core/errors"
	"localxp-api/core/logger"
	"localxp-api/core/metrics"
	"localxp-api/core/utils"
	"localxp-api/modules/booking/dto"
	"localxp-api/modules/booking/entity"
	"localxp-api/modules/booking/repository"
	expEntity "localxp-api/modules/experience/entity"
	"localxp-api/modules/experience/mapper"
	expRepository "localxp-api/modules/experience/repository"
	expService "localxp-api/modules/experience/service"

	"github.com/google/uuid"
)

// Quote is the price breakdown of a booking before payment.
type Quote struct {
	ExperienceID      string
	Guests            int
	UnitPrice         float64
	OriginalUnitPrice *float64
	Subtotal          float64
	ServiceFee        float64
	Total             float64
	SoldOut           bool
	AvailableTimes    []string
}

type BookingServiceInterface interface {
	Quote(ctx context.Context, experienceID string, guests int) (*Quote, *errors.AppError)
	Create(ctx context.Context, req *dto.CreateBookingRequest, idempotencyKey string) (*entity.Booking, *errors.AppError)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, *errors.AppError)
	List(ctx context.Context) ([]entity.Booking, *errors.AppError)
}

type BookingService struct {
	repo    repository.BookingRepositoryInterface
	catalog expRepository.CatalogRepositoryInterface
	gateway PaymentGateway
	clock   clock.Clock
	metrics *metrics.Metrics
	feeRate float64
}

func NewBookingService(
	repo repository.BookingRepositoryInterface,
	catalog expRepository.CatalogRepositoryInterface,
	gateway PaymentGateway,
	clk clock.Clock,
	m *metrics.Metrics,
	feeRate float64,
) *BookingService {
	if feeRate < 0 {
		feeRate = constants.DefaultServiceFeeRate
	}
	return &BookingService{
		repo:    repo,
		catalog: catalog,
		gateway: gateway,
		clock:   clk,
		metrics: m,
		feeRate: feeRate,
	}
}

func (s *BookingService) Quote(ctx context.Context, experienceID string, guests int) (*Quote, *errors.AppError) {
	exp, ok := s.catalog.GetByID(experienceID)
	if !ok {
		return nil, errors.NewAppError(errors.ErrNotFound, "Experience not found", nil)
	}
	if guests <= 0 {
		guests = 1
	}
	return s.quote(exp, guests), nil
}

// quote prices guests at the display price; the fee is a share of the subtotal.
func (s *BookingService) quote(exp expEntity.Experience, guests int) *Quote {
	unit := mapper.RoundCents(expService.DisplayPrice(exp))
	subtotal := mapper.RoundCents(unit * float64(guests))
	fee := mapper.RoundCents(subtotal * s.feeRate)

	q := &Quote{
		ExperienceID:   exp.ID,
		Guests:         guests,
		UnitPrice:      unit,
		Subtotal:       subtotal,
		ServiceFee:     fee,
		Total:          mapper.RoundCents(subtotal + fee),
		SoldOut:        exp.SoldOut,
		AvailableTimes: exp.AvailableTimes,
	}
	if expService.HasActiveDiscount(exp) {
		original := exp.Price
		q.OriginalUnitPrice = &original
	}
	return q
}

// Create confirms a booking after charging the stub gateway. The idempotency
// key is reserved before the charge, so concurrent requests sharing a key
// charge at most once. A repeated key returns the booking created the first
// time.
func (s *BookingService) Create(ctx context.Context, req *dto.CreateBookingRequest, idempotencyKey string) (*entity.Booking, *errors.AppError) {
	logger.Info("BookingService:Create:Start", "experience_id", req.ExperienceID, "guests", req.Guests)

	if idempotencyKey == "" {
		return s.create(ctx, req, "")
	}

	existing, err := s.repo.Reserve(ctx, idempotencyKey, req.ExperienceID)
	switch {
	case stderrors.Is(err, repository.ErrIdempotencyConflict):
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Idempotency key was used for another booking", err)
	case stderrors.Is(err, repository.ErrIdempotencyInFlight):
		logger.Warn("BookingService:Create:InFlight", "experience_id", req.ExperienceID)
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "A booking with this idempotency key is already in progress", err)
	case err != nil:
		logger.Error("BookingService:Create:Reserve:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to reserve idempotency key", err)
	case existing != nil:
		logger.Info("BookingService:Create:Replay", "booking_id", existing.ID)
		return existing, nil
	}

	booking, appErr := s.create(ctx, req, idempotencyKey)
	if appErr != nil {
		if err := s.repo.Release(context.WithoutCancel(ctx), idempotencyKey); err != nil {
			logger.Error("BookingService:Create:Release:Error", "error", err)
		}
	}
	return booking, appErr
}

func (s *BookingService) create(ctx context.Context, req *dto.CreateBookingRequest, idempotencyKey string) (*entity.Booking, *errors.AppError) {
	exp, ok := s.catalog.GetByID(req.ExperienceID)
	if !ok {
		s.metrics.ObserveBooking("rejected")
		return nil, errors.NewAppError(errors.ErrNotFound, "Experience not found", nil)
	}
	if exp.SoldOut {
		s.metrics.ObserveBooking("rejected")
		return nil, errors.NewAppError(errors.ErrSoldOut, "This experience is sold out", nil)
	}
	if len(exp.AvailableTimes) > 0 && !slices.Contains(exp.AvailableTimes, req.SelectedTime) {
		s.metrics.ObserveBooking("rejected")
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Selected time is not offered for this experience", nil)
	}

	guests := req.Guests
	if guests <= 0 {
		guests = 1
	}
	q := s.quote(exp, guests)
	method := entity.PaymentMethod(req.PaymentMethod)

	ref, err := s.gateway.Charge(ctx, method, req.PaymentToken, q.Total)
	if err != nil {
		if stderrors.Is(err, ErrPaymentDeclined) {
			logger.Warn("BookingService:Create:PaymentDeclined", "experience_id", exp.ID, "method", string(method))
			s.metrics.ObserveBooking("declined")
			return nil, errors.NewAppError(errors.ErrPaymentDeclined, "Payment was declined", err)
		}
		logger.Error("BookingService:Create:Charge:Error", "error", err)
		s.metrics.ObserveBooking("error")
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Payment could not be processed", err)
	}

	booking := entity.Booking{
		ID:               uuid.New(),
		TicketID:         utils.GenerateTicketID(),
		IdempotencyKey:   idempotencyKey,
		ExperienceID:     exp.ID,
		ExperienceTitle:  exp.Title,
		Location:         exp.Location,
		StartDate:        exp.StartDate,
		SelectedTime:     req.SelectedTime,
		Guests:           guests,
		PaymentMethod:    method,
		PaymentReference: ref,
		UnitPrice:        q.UnitPrice,
		Subtotal:         q.Subtotal,
		ServiceFee:       q.ServiceFee,
		Total:            q.Total,
		Status:           entity.BookingStatusConfirmed,
		CreatedAt:        s.clock.Now(),
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		if stderrors.Is(err, repository.ErrIdempotencyConflict) {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "Idempotency key was used for another booking", err)
		}
		logger.Error("BookingService:Create:Repository:Error", "error", err)
		s.metrics.ObserveBooking("error")
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to save booking", err)
	}

	s.metrics.ObserveBooking("confirmed")
	logger.Info("BookingService:Create:Success", "booking_id", booking.ID, "ticket_id", booking.TicketID, "total", booking.Total)
	return &booking, nil
}

func (s *BookingService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, *errors.AppError) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, repository.ErrBookingNotFound) {
			return nil, errors.NewAppError(errors.ErrNotFound, "Booking not found", err)
		}
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get booking", err)
	}
	return booking, nil
}

func (s *BookingService) List(ctx context.Context) ([]entity.Booking, *errors.AppError) {
	bookings, err := s.repo.List(ctx)
	if err != nil {
		logger.Error("BookingService:List:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list bookings", err)
	}
	return bookings, nil
}
