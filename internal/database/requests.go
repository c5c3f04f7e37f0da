package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"shareit/internal/models"
)

func (db *DB) CreateRequest(ctx context.Context, request *models.ItemRequest) error {
	query := `INSERT INTO requests (requestor_id, description, created_at) VALUES (?, ?, ?)`
	now := time.Now()
	result, err := db.ExecContext(ctx, query, request.RequestorID, request.Description, now)
	if err != nil {
		return fmt.Errorf("failed to create item request: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	request.ID = id
	request.CreatedAt = now
	return nil
}

func (db *DB) GetRequest(ctx context.Context, id int64) (*models.ItemRequest, error) {
	query := `SELECT id, requestor_id, description, created_at FROM requests WHERE id = ?`

	var request models.ItemRequest
	err := db.QueryRowContext(ctx, query, id).Scan(
		&request.ID, &request.RequestorID, &request.Description, &request.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item request: %w", err)
	}
	return &request, nil
}

func (db *DB) GetRequestsByRequestor(ctx context.Context, requestorID int64) ([]*models.ItemRequest, error) {
	query := `SELECT id, requestor_id, description, created_at
              FROM requests WHERE requestor_id = ? ORDER BY created_at DESC`
	return db.queryRequests(ctx, query, requestorID)
}

// GetRequestsFromOthers lists item requests posted by other users, newest
// first, for browsing what could be fulfilled.
func (db *DB) GetRequestsFromOthers(ctx context.Context, userID int64, limit, offset int) ([]*models.ItemRequest, error) {
	query := `SELECT id, requestor_id, description, created_at
              FROM requests WHERE requestor_id != ? ORDER BY created_at DESC LIMIT ? OFFSET ?`
	return db.queryRequests(ctx, query, userID, limit, offset)
}

func (db *DB) queryRequests(ctx context.Context, query string, args ...any) ([]*models.ItemRequest, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query item requests: %w", err)
	}
	defer rows.Close()

	var requests []*models.ItemRequest
	for rows.Next() {
		r := &models.ItemRequest{}
		if err := rows.Scan(&r.ID, &r.RequestorID, &r.Description, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan item request: %w", err)
		}
		requests = append(requests, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate item requests: %w", err)
	}
	return requests, nil
}
