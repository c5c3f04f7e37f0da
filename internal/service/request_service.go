package service

import (
	"context"
	"strings"

	"shareit/internal/domain"
	"shareit/internal/models"

	"github.com/rs/zerolog"
)

type RequestService struct {
	repo   domain.Repository
	logger *zerolog.Logger
}

func NewRequestService(repo domain.Repository, logger *zerolog.Logger) *RequestService {
	return &RequestService{repo: repo, logger: logger}
}

func (s *RequestService) Create(ctx context.Context, requestorID int64, description string) (*models.ItemRequest, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyText
	}

	requestor, err := s.repo.GetUser(ctx, requestorID)
	if err != nil {
		return nil, err
	}

	request := &models.ItemRequest{RequestorID: requestor.ID, Description: description}
	if err := s.repo.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("request_id", request.ID).Int64("requestor_id", requestorID).Msg("item request created")
	return request, nil
}

func (s *RequestService) GetByID(ctx context.Context, viewerID, requestID int64) (*models.ItemRequestDetails, error) {
	if _, err := s.repo.GetUser(ctx, viewerID); err != nil {
		return nil, err
	}

	request, err := s.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, request)
}

// ListOwn lists the user's requests together with the items already
// listed in response, newest first.
func (s *RequestService) ListOwn(ctx context.Context, requestorID int64) ([]*models.ItemRequestDetails, error) {
	if _, err := s.repo.GetUser(ctx, requestorID); err != nil {
		return nil, err
	}

	requests, err := s.repo.GetRequestsByRequestor(ctx, requestorID)
	if err != nil {
		return nil, err
	}

	result := make([]*models.ItemRequestDetails, 0, len(requests))
	for _, request := range requests {
		details, err := s.withItems(ctx, request)
		if err != nil {
			return nil, err
		}
		result = append(result, details)
	}
	return result, nil
}

func (s *RequestService) ListOthers(ctx context.Context, userID int64, from, size int) ([]*models.ItemRequest, error) {
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	if from < 0 || size <= 0 {
		return nil, ErrInvalidPagination
	}

	return s.repo.GetRequestsFromOthers(ctx, userID, size, (from/size)*size)
}

func (s *RequestService) withItems(ctx context.Context, request *models.ItemRequest) (*models.ItemRequestDetails, error) {
	items, err := s.repo.GetItemsByRequest(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	details := &models.ItemRequestDetails{ItemRequest: *request, Items: make([]models.Item, 0, len(items))}
	for _, item := range items {
		details.Items = append(details.Items, *item)
	}
	return details, nil
}
