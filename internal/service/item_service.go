package service

import (
	"context"
	"strings"
	"time"

	"shareit/internal/database"
	"shareit/internal/domain"
	"shareit/internal/models"

	"github.com/rs/zerolog"
)

type ItemService struct {
	repo   domain.Repository
	logger *zerolog.Logger
	now    func() time.Time
}

func NewItemService(repo domain.Repository, logger *zerolog.Logger) *ItemService {
	return &ItemService{repo: repo, logger: logger, now: time.Now}
}

func (s *ItemService) Create(ctx context.Context, ownerID int64, item *models.Item) (*models.Item, error) {
	if strings.TrimSpace(item.Name) == "" {
		return nil, ErrEmptyText
	}

	owner, err := s.repo.GetUser(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	item.OwnerID = owner.ID

	// A listing may answer an existing item request.
	if item.RequestID != 0 {
		if _, err := s.repo.GetRequest(ctx, item.RequestID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("item_id", item.ID).Int64("owner_id", ownerID).Msg("item created")
	return item, nil
}

// Update patches item fields. Only the owner may update; everyone else is
// told the item does not exist.
func (s *ItemService) Update(ctx context.Context, actorID, itemID int64, name, description string, available *bool) (*models.Item, error) {
	if _, err := s.repo.GetUser(ctx, actorID); err != nil {
		return nil, err
	}

	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != actorID {
		return nil, database.ErrItemNotFound
	}

	if trimmed := strings.TrimSpace(name); trimmed != "" {
		item.Name = trimmed
	}
	if trimmed := strings.TrimSpace(description); trimmed != "" {
		item.Description = trimmed
	}
	if available != nil {
		item.Available = *available
	}

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an item. Owner-only, with the same absence semantics as
// Update.
func (s *ItemService) Delete(ctx context.Context, actorID, itemID int64) error {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return err
	}
	if item.OwnerID != actorID {
		return database.ErrItemNotFound
	}

	if err := s.repo.DeleteItem(ctx, itemID); err != nil {
		return err
	}

	s.logger.Info().Int64("item_id", itemID).Int64("owner_id", actorID).Msg("item deleted")
	return nil
}

// GetByID returns the item with its comments. The owner additionally sees
// the last and next approved booking.
func (s *ItemService) GetByID(ctx context.Context, viewerID, itemID int64) (*models.ItemDetails, error) {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	details := &models.ItemDetails{Item: *item}

	if item.OwnerID == viewerID {
		if err := s.attachBookings(ctx, details); err != nil {
			return nil, err
		}
	}

	comments, err := s.repo.GetCommentsByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	details.Comments = comments

	return details, nil
}

func (s *ItemService) GetByOwner(ctx context.Context, ownerID int64, from, size int) ([]*models.ItemDetails, error) {
	if _, err := s.repo.GetUser(ctx, ownerID); err != nil {
		return nil, err
	}
	if from < 0 || size <= 0 {
		return nil, ErrInvalidPagination
	}

	items, err := s.repo.GetItemsByOwner(ctx, ownerID, size, (from/size)*size)
	if err != nil {
		return nil, err
	}

	result := make([]*models.ItemDetails, 0, len(items))
	for _, item := range items {
		details := &models.ItemDetails{Item: *item}
		if err := s.attachBookings(ctx, details); err != nil {
			return nil, err
		}
		comments, err := s.repo.GetCommentsByItem(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		details.Comments = comments
		result = append(result, details)
	}
	return result, nil
}

// Search does a plain lowercase substring match over available items.
// Blank text yields an empty result, not an error.
func (s *ItemService) Search(ctx context.Context, text string, from, size int) ([]*models.Item, error) {
	if from < 0 || size <= 0 {
		return nil, ErrInvalidPagination
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return []*models.Item{}, nil
	}

	return s.repo.SearchItems(ctx, strings.ToLower(text), size, (from/size)*size)
}

// AddComment lets a renter review an item after at least one of their
// bookings of it has ended.
func (s *ItemService) AddComment(ctx context.Context, itemID, authorID int64, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	author, err := s.repo.GetUser(ctx, authorID)
	if err != nil {
		return nil, err
	}
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	completed, err := s.repo.HasCompletedBooking(ctx, item.ID, author.ID, s.now())
	if err != nil {
		return nil, err
	}
	if !completed {
		return nil, ErrNoCompletedBooking
	}

	comment := &models.Comment{
		ItemID:     item.ID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Text:       text,
	}
	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("item_id", itemID).Int64("author_id", authorID).Msg("comment created")
	return comment, nil
}

func (s *ItemService) attachBookings(ctx context.Context, details *models.ItemDetails) error {
	now := s.now()

	last, err := s.repo.GetLastBooking(ctx, details.ID, now)
	if err != nil {
		return err
	}
	next, err := s.repo.GetNextBooking(ctx, details.ID, now)
	if err != nil {
		return err
	}

	details.LastBooking = last
	details.NextBooking = next
	return nil
}
