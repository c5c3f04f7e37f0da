package service

import (
	"context"
	"time"

	"shareit/internal/models"

	"github.com/stretchr/testify/mock"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	return m.Called(ctx, b).Error(0)
}
func (m *mockRepo) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}
func (m *mockRepo) UpdateBookingStatusWithVersion(ctx context.Context, id, v int64, s string) error {
	return m.Called(ctx, id, v, s).Error(0)
}
func (m *mockRepo) GetBookingsByBooker(ctx context.Context, id int64, limit, offset int) ([]*models.Booking, error) {
	return bookingsResult(m.Called(ctx, id, limit, offset))
}
func (m *mockRepo) GetCurrentBookingsByBooker(ctx context.Context, id int64, now time.Time, limit, offset int) ([]*models.Booking, error) {
	return bookingsResult(m.Called(ctx, id, now, limit, offset))
}
func (m *mockRepo) GetPastBookingsByBooker(ctx context.Context, id int64, now time.Time, limit, offset int) ([]*models.Booking, error) {
	return bookingsResult(m.Called(ctx, id, now, limit, offset))
}
func (m *mockRepo) GetFutureBookingsByBooker(ctx context.Context, id int64, now time.Time, limit, offset int) ([]*models.Booking, error) {
	return bookingsResult(m.Called(ctx, id, now, limit, offset))
}
func (m *mockRepo) GetBookingsByBookerAndStatus(ctx context.Context, id int64, status string, limit, offset int) ([]*models.Booking, error) {
	return bookingsResult(m.Called(ctx, id, status, limit, offset))
}
func (m *mockRepo) GetBookingsByOwner(ctx context.Context, id int64, limit, offset int) ([]*models.Booking, error) {
	return bookingsResult(m.Called(ctx, id, limit, offset))
}
func (m *mockRepo) GetCurrentBookingsByOwner(ctx context.Context, id int64, now time.Time, limit, offset int) ([]*models.Booking, error) {
	return bookingsResult(m.Called(ctx, id, now, limit, offset))
}
func (m *mockRepo) GetPastBookingsByOwner(ctx context.Context, id int64, now time.Time, limit, offset int) ([]*models.Booking, error) {
	return bookingsResult(m.Called(ctx, id, now, limit, offset))
}
func (m *mockRepo) GetFutureBookingsByOwner(ctx context.Context, id int64, now time.Time, limit, offset int) ([]*models.Booking, error) {
	return bookingsResult(m.Called(ctx, id, now, limit, offset))
}
func (m *mockRepo) GetBookingsByOwnerAndStatus(ctx context.Context, id int64, status string, limit, offset int) ([]*models.Booking, error) {
	return bookingsResult(m.Called(ctx, id, status, limit, offset))
}
func (m *mockRepo) HasCompletedBooking(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	args := m.Called(ctx, itemID, bookerID, now)
	return args.Bool(0), args.Error(1)
}
func (m *mockRepo) GetLastBooking(ctx context.Context, itemID int64, now time.Time) (*models.BookingShort, error) {
	args := m.Called(ctx, itemID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingShort), args.Error(1)
}
func (m *mockRepo) GetNextBooking(ctx context.Context, itemID int64, now time.Time) (*models.BookingShort, error) {
	args := m.Called(ctx, itemID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingShort), args.Error(1)
}

func (m *mockRepo) CreateUser(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}
func (m *mockRepo) GetUser(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *mockRepo) UserExists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *mockRepo) UpdateUser(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}
func (m *mockRepo) DeleteUser(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockRepo) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *mockRepo) CreateItem(ctx context.Context, i *models.Item) error {
	return m.Called(ctx, i).Error(0)
}
func (m *mockRepo) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}
func (m *mockRepo) UpdateItem(ctx context.Context, i *models.Item) error {
	return m.Called(ctx, i).Error(0)
}
func (m *mockRepo) DeleteItem(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockRepo) GetItemsByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]*models.Item, error) {
	return itemsResult(m.Called(ctx, ownerID, limit, offset))
}
func (m *mockRepo) SearchItems(ctx context.Context, text string, limit, offset int) ([]*models.Item, error) {
	return itemsResult(m.Called(ctx, text, limit, offset))
}
func (m *mockRepo) GetItemsByRequest(ctx context.Context, requestID int64) ([]*models.Item, error) {
	return itemsResult(m.Called(ctx, requestID))
}

func (m *mockRepo) CreateComment(ctx context.Context, c *models.Comment) error {
	return m.Called(ctx, c).Error(0)
}
func (m *mockRepo) GetCommentsByItem(ctx context.Context, itemID int64) ([]models.Comment, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *mockRepo) CreateRequest(ctx context.Context, r *models.ItemRequest) error {
	return m.Called(ctx, r).Error(0)
}
func (m *mockRepo) GetRequest(ctx context.Context, id int64) (*models.ItemRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ItemRequest), args.Error(1)
}
func (m *mockRepo) GetRequestsByRequestor(ctx context.Context, id int64) ([]*models.ItemRequest, error) {
	return requestsResult(m.Called(ctx, id))
}
func (m *mockRepo) GetRequestsFromOthers(ctx context.Context, id int64, limit, offset int) ([]*models.ItemRequest, error) {
	return requestsResult(m.Called(ctx, id, limit, offset))
}

func bookingsResult(args mock.Arguments) ([]*models.Booking, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Booking), args.Error(1)
}

func itemsResult(args mock.Arguments) ([]*models.Item, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Item), args.Error(1)
}

func requestsResult(args mock.Arguments) ([]*models.ItemRequest, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ItemRequest), args.Error(1)
}

type mockEventBus struct {
	mock.Mock
}

func (m *mockEventBus) PublishJSON(eventType string, payload interface{}) error {
	return m.Called(eventType, payload).Error(0)
}
