package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"shareit/internal/models"
)

const bookingColumns = `b.id, b.item_id, i.name, b.booker_id, u.name, b.start_at, b.end_at,
                 b.status, b.created_at, b.updated_at, b.version
          FROM bookings b
          JOIN items i ON i.id = b.item_id
          JOIN users u ON u.id = b.booker_id`

func (db *DB) CreateBooking(ctx context.Context, booking *models.Booking) error {
	query := `INSERT INTO bookings (item_id, booker_id, start_at, end_at, status, created_at, updated_at, version)
              VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	now := time.Now()
	result, err := db.ExecContext(ctx, query,
		booking.ItemID,
		booking.BookerID,
		booking.Start,
		booking.End,
		booking.Status,
		now,
		now,
		1,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	booking.ID = id
	booking.CreatedAt = now
	booking.UpdatedAt = now
	booking.Version = 1

	return nil
}

func (db *DB) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` WHERE b.id = ?`
	booking, err := db.scanBooking(db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return booking, nil
}

// UpdateBookingStatusWithVersion transitions a booking status only when the
// caller still holds the latest version. A lost race surfaces as
// ErrConcurrentModification, never as a silent overwrite.
func (db *DB) UpdateBookingStatusWithVersion(ctx context.Context, id, fromVersion int64, status string) error {
	query := `UPDATE bookings SET status = ?, version = version + 1, updated_at = ? WHERE id = ? AND version = ?`
	result, err := db.ExecContext(ctx, query, status, time.Now(), id, fromVersion)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrConcurrentModification
	}
	return nil
}

// Booker-side bucket queries. All are ordered by start descending and
// paginated with a row offset computed by the caller.

func (db *DB) GetBookingsByBooker(ctx context.Context, bookerID int64, limit, offset int) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + `
          WHERE b.booker_id = ? ORDER BY b.start_at DESC LIMIT ? OFFSET ?`
	return db.queryBookings(ctx, query, bookerID, limit, offset)
}

func (db *DB) GetCurrentBookingsByBooker(ctx context.Context, bookerID int64, now time.Time, limit, offset int) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + `
          WHERE b.booker_id = ? AND b.start_at <= ? AND b.end_at > ?
          ORDER BY b.start_at DESC LIMIT ? OFFSET ?`
	return db.queryBookings(ctx, query, bookerID, now, now, limit, offset)
}

func (db *DB) GetPastBookingsByBooker(ctx context.Context, bookerID int64, now time.Time, limit, offset int) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + `
          WHERE b.booker_id = ? AND b.end_at < ?
          ORDER BY b.start_at DESC LIMIT ? OFFSET ?`
	return db.queryBookings(ctx, query, bookerID, now, limit, offset)
}

func (db *DB) GetFutureBookingsByBooker(ctx context.Context, bookerID int64, now time.Time, limit, offset int) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + `
          WHERE b.booker_id = ? AND b.start_at > ?
          ORDER BY b.start_at DESC LIMIT ? OFFSET ?`
	return db.queryBookings(ctx, query, bookerID, now, limit, offset)
}

func (db *DB) GetBookingsByBookerAndStatus(ctx context.Context, bookerID int64, status string, limit, offset int) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + `
          WHERE b.booker_id = ? AND b.status = ?
          ORDER BY b.start_at DESC LIMIT ? OFFSET ?`
	return db.queryBookings(ctx, query, bookerID, status, limit, offset)
}

// Owner-side bucket queries, keyed by the owner of the booked item.

func (db *DB) GetBookingsByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + `
          WHERE i.owner_id = ? ORDER BY b.start_at DESC LIMIT ? OFFSET ?`
	return db.queryBookings(ctx, query, ownerID, limit, offset)
}

func (db *DB) GetCurrentBookingsByOwner(ctx context.Context, ownerID int64, now time.Time, limit, offset int) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + `
          WHERE i.owner_id = ? AND b.start_at <= ? AND b.end_at > ?
          ORDER BY b.start_at DESC LIMIT ? OFFSET ?`
	return db.queryBookings(ctx, query, ownerID, now, now, limit, offset)
}

func (db *DB) GetPastBookingsByOwner(ctx context.Context, ownerID int64, now time.Time, limit, offset int) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + `
          WHERE i.owner_id = ? AND b.end_at < ?
          ORDER BY b.start_at DESC LIMIT ? OFFSET ?`
	return db.queryBookings(ctx, query, ownerID, now, limit, offset)
}

func (db *DB) GetFutureBookingsByOwner(ctx context.Context, ownerID int64, now time.Time, limit, offset int) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + `
          WHERE i.owner_id = ? AND b.start_at > ?
          ORDER BY b.start_at DESC LIMIT ? OFFSET ?`
	return db.queryBookings(ctx, query, ownerID, now, limit, offset)
}

func (db *DB) GetBookingsByOwnerAndStatus(ctx context.Context, ownerID int64, status string, limit, offset int) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + `
          WHERE i.owner_id = ? AND b.status = ?
          ORDER BY b.start_at DESC LIMIT ? OFFSET ?`
	return db.queryBookings(ctx, query, ownerID, status, limit, offset)
}

// HasCompletedBooking reports whether the user had a booking of the item
// that already ended. Gates comment creation.
func (db *DB) HasCompletedBooking(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE item_id = ? AND booker_id = ? AND end_at < ?`
	var count int
	err := db.QueryRowContext(ctx, query, itemID, bookerID, now).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check completed bookings: %w", err)
	}
	return count > 0, nil
}

// GetLastBooking returns the latest approved booking of the item that has
// already started, nil when there is none.
func (db *DB) GetLastBooking(ctx context.Context, itemID int64, now time.Time) (*models.BookingShort, error) {
	query := `SELECT id, booker_id, start_at, end_at FROM bookings
              WHERE item_id = ? AND start_at <= ? AND status = ?
              ORDER BY start_at DESC LIMIT 1`
	return db.scanBookingShort(db.QueryRowContext(ctx, query, itemID, now, models.StatusApproved))
}

// GetNextBooking returns the earliest approved booking of the item that
// starts in the future, nil when there is none.
func (db *DB) GetNextBooking(ctx context.Context, itemID int64, now time.Time) (*models.BookingShort, error) {
	query := `SELECT id, booker_id, start_at, end_at FROM bookings
              WHERE item_id = ? AND start_at > ? AND status = ?
              ORDER BY start_at ASC LIMIT 1`
	return db.scanBookingShort(db.QueryRowContext(ctx, query, itemID, now, models.StatusApproved))
}

func (db *DB) queryBookings(ctx context.Context, query string, args ...any) ([]*models.Booking, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		b := &models.Booking{}
		err := rows.Scan(
			&b.ID, &b.ItemID, &b.ItemName, &b.BookerID, &b.BookerName,
			&b.Start, &b.End, &b.Status, &b.CreatedAt, &b.UpdatedAt, &b.Version,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookings: %w", err)
	}
	return bookings, nil
}

func (db *DB) scanBooking(row *sql.Row) (*models.Booking, error) {
	b := &models.Booking{}
	err := row.Scan(
		&b.ID, &b.ItemID, &b.ItemName, &b.BookerID, &b.BookerName,
		&b.Start, &b.End, &b.Status, &b.CreatedAt, &b.UpdatedAt, &b.Version,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (db *DB) scanBookingShort(row *sql.Row) (*models.BookingShort, error) {
	b := &models.BookingShort{}
	err := row.Scan(&b.ID, &b.BookerID, &b.Start, &b.End)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan booking summary: %w", err)
	}
	return b, nil
}
