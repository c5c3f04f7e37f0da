package api

import (
	"net/http"
	"time"

	"shareit/internal/models"
)

type createBookingRequest struct {
	ItemID int64     `json:"item_id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

type entityRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// bookingResponse is the wire shape of a booking: item and booker are
// folded into short references instead of flat id columns.
type bookingResponse struct {
	ID     int64     `json:"id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
	Item   entityRef `json:"item"`
	Booker entityRef `json:"booker"`
}

func toBookingResponse(b *models.Booking) bookingResponse {
	return bookingResponse{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: b.Status,
		Item:   entityRef{ID: b.ItemID, Name: b.ItemName},
		Booker: entityRef{ID: b.BookerID, Name: b.BookerName},
	}
}

func toBookingResponses(bookings []*models.Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	return out
}

func (s *HTTPServer) handleBookings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.createBooking(w, r)
	case http.MethodGet:
		s.listBookingsByBooker(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *HTTPServer) createBooking(w http.ResponseWriter, r *http.Request) {
	actorID, err := userID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req createBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	booking, err := s.bookings.Create(r.Context(), actorID, req.ItemID, req.Start, req.End)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBookingResponse(booking))
}

func (s *HTTPServer) listBookingsByBooker(w http.ResponseWriter, r *http.Request) {
	actorID, err := userID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	state := r.URL.Query().Get("state")
	if state == "" {
		state = models.StateAll
	}
	from, size, err := pageWindow(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	bookings, err := s.bookings.ListByBooker(r.Context(), actorID, state, from, size)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookingResponses(bookings))
}

func (s *HTTPServer) handleBookingsOwner(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	actorID, err := userID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	state := r.URL.Query().Get("state")
	if state == "" {
		state = models.StateAll
	}
	from, size, err := pageWindow(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	bookings, err := s.bookings.ListByOwner(r.Context(), actorID, state, from, size)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookingResponses(bookings))
}

func (s *HTTPServer) handleBookingByID(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := pathID(r, "/bookings/")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}

	actorID, err := userID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	switch r.Method {
	case http.MethodGet:
		booking, err := s.bookings.GetByID(r.Context(), actorID, bookingID)
		if err != nil {
			s.writeDomainError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toBookingResponse(booking))

	case http.MethodPatch:
		approvedParam := r.URL.Query().Get("approved")
		if approvedParam != "true" && approvedParam != "false" {
			writeError(w, http.StatusBadRequest, "approved parameter must be true or false")
			return
		}

		booking, err := s.bookings.SetApproval(r.Context(), actorID, bookingID, approvedParam == "true")
		if err != nil {
			s.writeDomainError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toBookingResponse(booking))

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
