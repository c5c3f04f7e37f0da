package models

import "time"

type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
	OwnerID     int64     `json:"owner_id"`
	RequestID   int64     `json:"request_id,omitempty"` // originating item request, 0 when listed directly
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemDetails is an item enriched for a single-item view: comments for
// everyone, last/next approved booking for the owner only.
type ItemDetails struct {
	Item
	LastBooking *BookingShort `json:"last_booking,omitempty"`
	NextBooking *BookingShort `json:"next_booking,omitempty"`
	Comments    []Comment     `json:"comments"`
}
