package domain

import (
	"context"
	"time"

	"shareit/internal/models"
)

type Repository interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, id int64) (*models.Booking, error)
	UpdateBookingStatusWithVersion(ctx context.Context, id, fromVersion int64, status string) error
	GetBookingsByBooker(ctx context.Context, bookerID int64, limit, offset int) ([]*models.Booking, error)
	GetCurrentBookingsByBooker(ctx context.Context, bookerID int64, now time.Time, limit, offset int) ([]*models.Booking, error)
	GetPastBookingsByBooker(ctx context.Context, bookerID int64, now time.Time, limit, offset int) ([]*models.Booking, error)
	GetFutureBookingsByBooker(ctx context.Context, bookerID int64, now time.Time, limit, offset int) ([]*models.Booking, error)
	GetBookingsByBookerAndStatus(ctx context.Context, bookerID int64, status string, limit, offset int) ([]*models.Booking, error)
	GetBookingsByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]*models.Booking, error)
	GetCurrentBookingsByOwner(ctx context.Context, ownerID int64, now time.Time, limit, offset int) ([]*models.Booking, error)
	GetPastBookingsByOwner(ctx context.Context, ownerID int64, now time.Time, limit, offset int) ([]*models.Booking, error)
	GetFutureBookingsByOwner(ctx context.Context, ownerID int64, now time.Time, limit, offset int) ([]*models.Booking, error)
	GetBookingsByOwnerAndStatus(ctx context.Context, ownerID int64, status string, limit, offset int) ([]*models.Booking, error)
	HasCompletedBooking(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error)
	GetLastBooking(ctx context.Context, itemID int64, now time.Time) (*models.BookingShort, error)
	GetNextBooking(ctx context.Context, itemID int64, now time.Time) (*models.BookingShort, error)

	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id int64) (*models.User, error)
	UserExists(ctx context.Context, id int64) (bool, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id int64) error
	GetAllUsers(ctx context.Context) ([]*models.User, error)

	CreateItem(ctx context.Context, item *models.Item) error
	GetItem(ctx context.Context, id int64) (*models.Item, error)
	UpdateItem(ctx context.Context, item *models.Item) error
	DeleteItem(ctx context.Context, id int64) error
	GetItemsByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]*models.Item, error)
	SearchItems(ctx context.Context, text string, limit, offset int) ([]*models.Item, error)
	GetItemsByRequest(ctx context.Context, requestID int64) ([]*models.Item, error)

	CreateComment(ctx context.Context, comment *models.Comment) error
	GetCommentsByItem(ctx context.Context, itemID int64) ([]models.Comment, error)

	CreateRequest(ctx context.Context, request *models.ItemRequest) error
	GetRequest(ctx context.Context, id int64) (*models.ItemRequest, error)
	GetRequestsByRequestor(ctx context.Context, requestorID int64) ([]*models.ItemRequest, error)
	GetRequestsFromOthers(ctx context.Context, userID int64, limit, offset int) ([]*models.ItemRequest, error)
}

type EventPublisher interface {
	PublishJSON(eventType string, payload interface{}) error
}

// RateLimiter counts requests per user inside a sliding window.
type RateLimiter interface {
	Allow(ctx context.Context, userID int64, limit int, window time.Duration) (bool, error)
}

type BookingService interface {
	Create(ctx context.Context, requesterID, itemID int64, start, end time.Time) (*models.Booking, error)
	SetApproval(ctx context.Context, actorID, bookingID int64, approved bool) (*models.Booking, error)
	GetByID(ctx context.Context, viewerID, bookingID int64) (*models.Booking, error)
	ListByBooker(ctx context.Context, bookerID int64, state string, from, size int) ([]*models.Booking, error)
	ListByOwner(ctx context.Context, ownerID int64, state string, from, size int) ([]*models.Booking, error)
}

type UserService interface {
	Create(ctx context.Context, name, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, id int64, name, email string) (*models.User, error)
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]*models.User, error)
}

type ItemService interface {
	Create(ctx context.Context, ownerID int64, item *models.Item) (*models.Item, error)
	Update(ctx context.Context, actorID, itemID int64, name, description string, available *bool) (*models.Item, error)
	Delete(ctx context.Context, actorID, itemID int64) error
	GetByID(ctx context.Context, viewerID, itemID int64) (*models.ItemDetails, error)
	GetByOwner(ctx context.Context, ownerID int64, from, size int) ([]*models.ItemDetails, error)
	Search(ctx context.Context, text string, from, size int) ([]*models.Item, error)
	AddComment(ctx context.Context, itemID, authorID int64, text string) (*models.Comment, error)
}

type RequestService interface {
	Create(ctx context.Context, requestorID int64, description string) (*models.ItemRequest, error)
	GetByID(ctx context.Context, viewerID, requestID int64) (*models.ItemRequestDetails, error)
	ListOwn(ctx context.Context, requestorID int64) ([]*models.ItemRequestDetails, error)
	ListOthers(ctx context.Context, userID int64, from, size int) ([]*models.ItemRequest, error)
}
