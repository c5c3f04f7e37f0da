package service

import (
	"context"
	"io"
	"testing"
	"time"

	"shareit/internal/database"
	"shareit/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newItemService(now time.Time) (*ItemService, *mockRepo) {
	repo := new(mockRepo)
	logger := zerolog.New(io.Discard)
	svc := NewItemService(repo, &logger)
	svc.now = func() time.Time { return now }
	return svc, repo
}

func TestItemServiceCreate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	owner := &models.User{ID: 1, Name: "Owner"}

	t.Run("Success", func(t *testing.T) {
		svc, repo := newItemService(now)
		repo.On("GetUser", ctx, int64(1)).Return(owner, nil).Once()
		repo.On("CreateItem", ctx, mock.AnythingOfType("*models.Item")).Return(nil).Once()

		item, err := svc.Create(ctx, 1, &models.Item{Name: "Drill", Description: "hammer drill", Available: true})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), item.OwnerID)
		repo.AssertExpectations(t)
	})

	t.Run("BlankName", func(t *testing.T) {
		svc, repo := newItemService(now)

		_, err := svc.Create(ctx, 1, &models.Item{Name: "   "})
		assert.ErrorIs(t, err, ErrEmptyText)
		repo.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
	})

	t.Run("UnknownRequest", func(t *testing.T) {
		svc, repo := newItemService(now)
		repo.On("GetUser", ctx, int64(1)).Return(owner, nil).Once()
		repo.On("GetRequest", ctx, int64(7)).Return(nil, database.ErrRequestNotFound).Once()

		_, err := svc.Create(ctx, 1, &models.Item{Name: "Drill", RequestID: 7})
		assert.ErrorIs(t, err, database.ErrRequestNotFound)
	})
}

func TestItemServiceUpdate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	actor := &models.User{ID: 1}
	item := &models.Item{ID: 5, Name: "Drill", Description: "old", Available: true, OwnerID: 1}

	t.Run("PatchSemantics", func(t *testing.T) {
		svc, repo := newItemService(now)
		fresh := *item
		repo.On("GetUser", ctx, int64(1)).Return(actor, nil).Once()
		repo.On("GetItem", ctx, int64(5)).Return(&fresh, nil).Once()
		repo.On("UpdateItem", ctx, mock.Anything).Return(nil).Once()

		available := false
		updated, err := svc.Update(ctx, 1, 5, "", "new description", &available)
		assert.NoError(t, err)
		assert.Equal(t, "Drill", updated.Name)
		assert.Equal(t, "new description", updated.Description)
		assert.False(t, updated.Available)
	})

	t.Run("NonOwner", func(t *testing.T) {
		svc, repo := newItemService(now)
		stranger := &models.User{ID: 3}
		repo.On("GetUser", ctx, int64(3)).Return(stranger, nil).Once()
		repo.On("GetItem", ctx, int64(5)).Return(item, nil).Once()

		_, err := svc.Update(ctx, 3, 5, "Stolen", "", nil)
		assert.ErrorIs(t, err, database.ErrItemNotFound)
		repo.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything)
	})
}

func TestItemServiceDelete(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	item := &models.Item{ID: 5, Name: "Drill", OwnerID: 1}

	t.Run("Owner", func(t *testing.T) {
		svc, repo := newItemService(now)
		repo.On("GetItem", ctx, int64(5)).Return(item, nil).Once()
		repo.On("DeleteItem", ctx, int64(5)).Return(nil).Once()

		assert.NoError(t, svc.Delete(ctx, 1, 5))
		repo.AssertExpectations(t)
	})

	t.Run("NonOwner", func(t *testing.T) {
		svc, repo := newItemService(now)
		repo.On("GetItem", ctx, int64(5)).Return(item, nil).Once()

		err := svc.Delete(ctx, 3, 5)
		assert.ErrorIs(t, err, database.ErrItemNotFound)
		repo.AssertNotCalled(t, "DeleteItem", mock.Anything, mock.Anything)
	})
}

func TestItemServiceGetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	item := &models.Item{ID: 5, Name: "Drill", OwnerID: 1}
	comments := []models.Comment{{ID: 1, Text: "solid"}}
	last := &models.BookingShort{ID: 10, BookerID: 2}
	next := &models.BookingShort{ID: 11, BookerID: 3}

	t.Run("OwnerSeesBookings", func(t *testing.T) {
		svc, repo := newItemService(now)
		repo.On("GetItem", ctx, int64(5)).Return(item, nil).Once()
		repo.On("GetLastBooking", ctx, int64(5), now).Return(last, nil).Once()
		repo.On("GetNextBooking", ctx, int64(5), now).Return(next, nil).Once()
		repo.On("GetCommentsByItem", ctx, int64(5)).Return(comments, nil).Once()

		details, err := svc.GetByID(ctx, 1, 5)
		assert.NoError(t, err)
		assert.Equal(t, last, details.LastBooking)
		assert.Equal(t, next, details.NextBooking)
		assert.Equal(t, comments, details.Comments)
	})

	t.Run("NonOwnerSeesNoBookings", func(t *testing.T) {
		svc, repo := newItemService(now)
		repo.On("GetItem", ctx, int64(5)).Return(item, nil).Once()
		repo.On("GetCommentsByItem", ctx, int64(5)).Return(comments, nil).Once()

		details, err := svc.GetByID(ctx, 2, 5)
		assert.NoError(t, err)
		assert.Nil(t, details.LastBooking)
		assert.Nil(t, details.NextBooking)
		repo.AssertNotCalled(t, "GetLastBooking", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestItemServiceSearch(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("BlankTextYieldsEmpty", func(t *testing.T) {
		svc, repo := newItemService(now)

		items, err := svc.Search(ctx, "   ", 0, 20)
		assert.NoError(t, err)
		assert.Empty(t, items)
		repo.AssertNotCalled(t, "SearchItems", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("LowercasesQuery", func(t *testing.T) {
		svc, repo := newItemService(now)
		found := []*models.Item{{ID: 5, Name: "Drill"}}
		repo.On("SearchItems", ctx, "drill", 20, 0).Return(found, nil).Once()

		items, err := svc.Search(ctx, "DrIlL", 0, 20)
		assert.NoError(t, err)
		assert.Equal(t, found, items)
		repo.AssertExpectations(t)
	})

	t.Run("InvalidPagination", func(t *testing.T) {
		svc, _ := newItemService(now)
		_, err := svc.Search(ctx, "drill", -1, 20)
		assert.ErrorIs(t, err, ErrInvalidPagination)
	})
}

func TestItemServiceAddComment(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	author := &models.User{ID: 2, Name: "Renter"}
	item := &models.Item{ID: 5, Name: "Drill", OwnerID: 1}

	t.Run("Success", func(t *testing.T) {
		svc, repo := newItemService(now)
		repo.On("GetUser", ctx, int64(2)).Return(author, nil).Once()
		repo.On("GetItem", ctx, int64(5)).Return(item, nil).Once()
		repo.On("HasCompletedBooking", ctx, int64(5), int64(2), now).Return(true, nil).Once()
		repo.On("CreateComment", ctx, mock.AnythingOfType("*models.Comment")).Return(nil).Once()

		comment, err := svc.AddComment(ctx, 5, 2, "great drill")
		assert.NoError(t, err)
		assert.Equal(t, "Renter", comment.AuthorName)
		repo.AssertExpectations(t)
	})

	t.Run("NoCompletedBooking", func(t *testing.T) {
		svc, repo := newItemService(now)
		repo.On("GetUser", ctx, int64(2)).Return(author, nil).Once()
		repo.On("GetItem", ctx, int64(5)).Return(item, nil).Once()
		repo.On("HasCompletedBooking", ctx, int64(5), int64(2), now).Return(false, nil).Once()

		_, err := svc.AddComment(ctx, 5, 2, "great drill")
		assert.ErrorIs(t, err, ErrNoCompletedBooking)
		repo.AssertNotCalled(t, "CreateComment", mock.Anything, mock.Anything)
	})

	t.Run("BlankText", func(t *testing.T) {
		svc, repo := newItemService(now)

		_, err := svc.AddComment(ctx, 5, 2, "  ")
		assert.ErrorIs(t, err, ErrEmptyText)
		repo.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
	})
}
