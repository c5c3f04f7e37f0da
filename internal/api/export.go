package api

import (
	"fmt"
	"net/http"

	"shareit/internal/models"

	"github.com/xuri/excelize/v2"
)

// handleBookingsExport renders the owner-side booking report as an xlsx
// workbook. Accepts the same state filter as the owner listing.
func (s *HTTPServer) handleBookingsExport(w http.ResponseWriter, r *http.Request) {
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

	file, err := buildBookingsWorkbook(bookings)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to build export workbook")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="bookings.xlsx"`)
	w.WriteHeader(http.StatusOK)
	if _, err := file.WriteTo(w); err != nil {
		s.logger.Error().Err(err).Msg("failed to stream export workbook")
	}
}

func buildBookingsWorkbook(bookings []*models.Booking) (*excelize.File, error) {
	const sheet = "Bookings"

	file := excelize.NewFile()
	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headers := []string{"ID", "Item", "Booker", "Start", "End", "Status"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, b := range bookings {
		values := []interface{}{
			b.ID,
			b.ItemName,
			b.BookerName,
			b.Start.Format("2006-01-02 15:04:05"),
			b.End.Format("2006-01-02 15:04:05"),
			b.Status,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return file, nil
}
