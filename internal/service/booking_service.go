package service

import (
	"context"
	"time"

	"shareit/internal/database"
	"shareit/internal/domain"
	"shareit/internal/events"
	"shareit/internal/models"

	"github.com/rs/zerolog"
)

// BookingService drives the booking lifecycle: creation, the approval
// state machine and the temporal bucket listings.
type BookingService struct {
	repo     domain.Repository
	eventBus domain.EventPublisher
	logger   *zerolog.Logger
	now      func() time.Time
}

func NewBookingService(repo domain.Repository, eventBus domain.EventPublisher, logger *zerolog.Logger) *BookingService {
	return &BookingService{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
		now:      time.Now,
	}
}

// Create validates and persists a new booking in WAITING status. Checks run
// in a fixed order and the first failing one aborts the call: period shape,
// period against now, requester, item, availability, ownership.
func (s *BookingService) Create(ctx context.Context, requesterID, itemID int64, start, end time.Time) (*models.Booking, error) {
	now := s.now()

	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return nil, ErrInvalidPeriod
	}
	if start.Before(now) || !end.After(now) {
		return nil, ErrInvalidPeriod
	}

	booker, err := s.repo.GetUser(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.Available {
		return nil, ErrItemUnavailable
	}
	// An owner never books their own item; reported as absence so the
	// response does not differ from a missing item.
	if item.OwnerID == requesterID {
		return nil, database.ErrItemNotFound
	}

	booking := &models.Booking{
		ItemID:     item.ID,
		ItemName:   item.Name,
		BookerID:   booker.ID,
		BookerName: booker.Name,
		Start:      start,
		End:        end,
		Status:     models.StatusWaiting,
	}
	if err := s.repo.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(events.EventBookingCreated, booking, requesterID)
	s.logger.Info().
		Int64("booking_id", booking.ID).
		Int64("item_id", item.ID).
		Int64("booker_id", booker.ID).
		Msg("booking created")

	return booking, nil
}

// SetApproval applies the owner's decision to a WAITING booking. The
// status write is guarded by the booking version, so two concurrent
// decisions cannot both succeed.
func (s *BookingService) SetApproval(ctx context.Context, actorID, bookingID int64, approved bool) (*models.Booking, error) {
	booking, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if models.LockedStatuses[booking.Status] {
		return nil, ErrAlreadyApproved
	}

	item, err := s.repo.GetItem(ctx, booking.ItemID)
	if err != nil {
		return nil, err
	}
	// Non-owners learn nothing about the booking, not even that it exists.
	if item.OwnerID != actorID {
		return nil, database.ErrBookingNotFound
	}

	status := models.StatusRejected
	eventType := events.EventBookingRejected
	if approved {
		status = models.StatusApproved
		eventType = events.EventBookingApproved
	}

	if err := s.repo.UpdateBookingStatusWithVersion(ctx, bookingID, booking.Version, status); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	s.publish(eventType, updated, actorID)
	s.logger.Info().
		Int64("booking_id", bookingID).
		Int64("actor_id", actorID).
		Str("status", status).
		Msg("booking status updated")

	return updated, nil
}

// GetByID returns a booking to its booker or to the item's owner. Anyone
// else gets the same absence error as for a missing booking.
func (s *BookingService) GetByID(ctx context.Context, viewerID, bookingID int64) (*models.Booking, error) {
	booking, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.BookerID == viewerID {
		return booking, nil
	}

	item, err := s.repo.GetItem(ctx, booking.ItemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != viewerID {
		return nil, database.ErrBookingNotFound
	}
	return booking, nil
}

// ListByBooker lists the user's own bookings filtered by a state bucket.
func (s *BookingService) ListByBooker(ctx context.Context, bookerID int64, state string, from, size int) ([]*models.Booking, error) {
	limit, offset, bucket, err := s.checkListing(ctx, bookerID, state, from, size)
	if err != nil {
		return nil, err
	}

	now := s.now()
	switch bucket {
	case models.StateAll:
		return s.repo.GetBookingsByBooker(ctx, bookerID, limit, offset)
	case models.StateCurrent:
		return s.repo.GetCurrentBookingsByBooker(ctx, bookerID, now, limit, offset)
	case models.StatePast:
		return s.repo.GetPastBookingsByBooker(ctx, bookerID, now, limit, offset)
	case models.StateFuture:
		return s.repo.GetFutureBookingsByBooker(ctx, bookerID, now, limit, offset)
	case models.StateWaiting:
		return s.repo.GetBookingsByBookerAndStatus(ctx, bookerID, models.StatusWaiting, limit, offset)
	case models.StateRejected:
		return s.repo.GetBookingsByBookerAndStatus(ctx, bookerID, models.StatusRejected, limit, offset)
	default:
		return nil, ErrUnknownState
	}
}

// ListByOwner lists bookings of all items the user owns, filtered by a
// state bucket.
func (s *BookingService) ListByOwner(ctx context.Context, ownerID int64, state string, from, size int) ([]*models.Booking, error) {
	limit, offset, bucket, err := s.checkListing(ctx, ownerID, state, from, size)
	if err != nil {
		return nil, err
	}

	now := s.now()
	switch bucket {
	case models.StateAll:
		return s.repo.GetBookingsByOwner(ctx, ownerID, limit, offset)
	case models.StateCurrent:
		return s.repo.GetCurrentBookingsByOwner(ctx, ownerID, now, limit, offset)
	case models.StatePast:
		return s.repo.GetPastBookingsByOwner(ctx, ownerID, now, limit, offset)
	case models.StateFuture:
		return s.repo.GetFutureBookingsByOwner(ctx, ownerID, now, limit, offset)
	case models.StateWaiting:
		return s.repo.GetBookingsByOwnerAndStatus(ctx, ownerID, models.StatusWaiting, limit, offset)
	case models.StateRejected:
		return s.repo.GetBookingsByOwnerAndStatus(ctx, ownerID, models.StatusRejected, limit, offset)
	default:
		return nil, ErrUnknownState
	}
}

// checkListing verifies the subject exists before any store query runs,
// then validates the state token and the page window. The page offset is a
// zero-based index in units of size.
func (s *BookingService) checkListing(ctx context.Context, subjectID int64, state string, from, size int) (limit, offset int, bucket string, err error) {
	exists, err := s.repo.UserExists(ctx, subjectID)
	if err != nil {
		return 0, 0, "", err
	}
	if !exists {
		return 0, 0, "", database.ErrUserNotFound
	}

	bucket, ok := models.ParseState(state)
	if !ok {
		return 0, 0, "", ErrUnknownState
	}

	if from < 0 || size <= 0 {
		return 0, 0, "", ErrInvalidPagination
	}
	return size, (from / size) * size, bucket, nil
}

func (s *BookingService) publish(eventType string, booking *models.Booking, actorID int64) {
	if s.eventBus == nil {
		return
	}

	payload := events.BookingEventPayload{
		BookingID: booking.ID,
		ItemID:    booking.ItemID,
		ItemName:  booking.ItemName,
		BookerID:  booking.BookerID,
		Status:    booking.Status,
		Start:     booking.Start,
		End:       booking.End,
		ActorID:   actorID,
	}

	if err := s.eventBus.PublishJSON(eventType, payload); err != nil {
		s.logger.Error().Err(err).Str("event_type", eventType).Int64("booking_id", booking.ID).Msg("publish event error")
	}
}
