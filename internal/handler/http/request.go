package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tapteam/tap-server/internal/service"
	"github.com/tapteam/tap-server/internal/utils"
	"github.com/tapteam/tap-server/models"
)

// idFromRequest parses the {id} route parameter. Non-numeric values are
// reported as ErrInvalidID.
func idFromRequest(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// pageFromRequest reads the "page" and "results_per_page" query parameters.
// Absent or malformed values fall back to the defaults; the service layer
// applies the hard cap.
func pageFromRequest(r *http.Request) service.Page {
	query := r.URL.Query()

	page := service.Page{Number: 1}
	if number, err := strconv.Atoi(query.Get("page")); err == nil {
		page.Number = number
	}
	if perPage, err := strconv.Atoi(query.Get("results_per_page")); err == nil {
		page.ResultsPerPage = perPage
	}

	return page
}

// writeList writes the standard collection envelope.
func writeList(w http.ResponseWriter, objects any, total int64, page service.Page) {
	page = page.Normalize()
	_, _ = utils.WriteJSON(w, models.ListResponse{
		NumResults: total,
		Objects:    objects,
		Page:       page.Number,
		TotalPages: page.TotalPages(total),
	}, http.StatusOK)
}

// writeJSONError writes a JSON error body with the given status.
func writeJSONError(w http.ResponseWriter, message string, status int) (int, error) {
	return utils.WriteJSON(w, models.ErrorResponse{Message: message}, status)
}
