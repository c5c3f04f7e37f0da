package service

import (
	"context"
	"io"
	"testing"

	"shareit/internal/database"
	"shareit/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRequestService(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.New(io.Discard)
	requestor := &models.User{ID: 2, Name: "Renter"}

	t.Run("Create", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewRequestService(repo, &logger)
		repo.On("GetUser", ctx, int64(2)).Return(requestor, nil).Once()
		repo.On("CreateRequest", ctx, mock.AnythingOfType("*models.ItemRequest")).Return(nil).Once()

		request, err := svc.Create(ctx, 2, "  need a ladder ")
		assert.NoError(t, err)
		assert.Equal(t, int64(2), request.RequestorID)
		assert.Equal(t, "need a ladder", request.Description)
		repo.AssertExpectations(t)
	})

	t.Run("CreateBlankDescription", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewRequestService(repo, &logger)

		_, err := svc.Create(ctx, 2, "   ")
		assert.ErrorIs(t, err, ErrEmptyText)
		repo.AssertNotCalled(t, "CreateRequest", mock.Anything, mock.Anything)
	})

	t.Run("GetByIDWithItems", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewRequestService(repo, &logger)
		request := &models.ItemRequest{ID: 7, RequestorID: 2, Description: "need a ladder"}
		items := []*models.Item{{ID: 5, Name: "Ladder", RequestID: 7}}

		repo.On("GetUser", ctx, int64(3)).Return(&models.User{ID: 3}, nil).Once()
		repo.On("GetRequest", ctx, int64(7)).Return(request, nil).Once()
		repo.On("GetItemsByRequest", ctx, int64(7)).Return(items, nil).Once()

		details, err := svc.GetByID(ctx, 3, 7)
		assert.NoError(t, err)
		assert.Len(t, details.Items, 1)
		assert.Equal(t, "Ladder", details.Items[0].Name)
	})

	t.Run("GetByIDUnknownViewer", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewRequestService(repo, &logger)
		repo.On("GetUser", ctx, int64(99)).Return(nil, database.ErrUserNotFound).Once()

		_, err := svc.GetByID(ctx, 99, 7)
		assert.ErrorIs(t, err, database.ErrUserNotFound)
		repo.AssertNotCalled(t, "GetRequest", mock.Anything, mock.Anything)
	})

	t.Run("ListOwn", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewRequestService(repo, &logger)
		requests := []*models.ItemRequest{{ID: 7, RequestorID: 2}, {ID: 8, RequestorID: 2}}

		repo.On("GetUser", ctx, int64(2)).Return(requestor, nil).Once()
		repo.On("GetRequestsByRequestor", ctx, int64(2)).Return(requests, nil).Once()
		repo.On("GetItemsByRequest", ctx, int64(7)).Return([]*models.Item{}, nil).Once()
		repo.On("GetItemsByRequest", ctx, int64(8)).Return([]*models.Item{}, nil).Once()

		details, err := svc.ListOwn(ctx, 2)
		assert.NoError(t, err)
		assert.Len(t, details, 2)
		repo.AssertExpectations(t)
	})

	t.Run("ListOthers", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewRequestService(repo, &logger)
		requests := []*models.ItemRequest{{ID: 9, RequestorID: 5}}

		repo.On("GetUser", ctx, int64(2)).Return(requestor, nil).Once()
		repo.On("GetRequestsFromOthers", ctx, int64(2), 10, 0).Return(requests, nil).Once()

		got, err := svc.ListOthers(ctx, 2, 0, 10)
		assert.NoError(t, err)
		assert.Equal(t, requests, got)
	})

	t.Run("ListOthersInvalidPagination", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewRequestService(repo, &logger)
		repo.On("GetUser", ctx, int64(2)).Return(requestor, nil).Once()

		_, err := svc.ListOthers(ctx, 2, 0, 0)
		assert.ErrorIs(t, err, ErrInvalidPagination)
	})
}
