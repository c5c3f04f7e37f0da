package models

import "time"

// ItemRequest is a wish for an item that does not exist in the catalog yet.
// Other users fulfil it by listing an item with a matching request_id.
type ItemRequest struct {
	ID          int64     `json:"id"`
	RequestorID int64     `json:"requestor_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ItemRequestDetails carries the items already listed in response to a request.
type ItemRequestDetails struct {
	ItemRequest
	Items []Item `json:"items"`
}
