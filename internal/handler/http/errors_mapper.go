package http

import (
	"errors"
	"net/http"

	"github.com/tapteam/tap-server/internal/service"
	"github.com/tapteam/tap-server/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON: http.StatusBadRequest,

	// a non-numeric id never names a record, so it reads as 404 rather
	// than a malformed request
	ErrInvalidID: http.StatusNotFound,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrUserDisabled:        http.StatusUnauthorized,

	store.ErrUsernameAlreadyExists:    http.StatusConflict,
	store.ErrAssociationAlreadyExists: http.StatusConflict,
	store.ErrSessionNotFound:          http.StatusUnauthorized,
	store.ErrRecordNotFound:           http.StatusNotFound,
	store.ErrInvalidReference:         http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to its HTTP status and writes a JSON error body.
// Internal failures are masked behind the generic status text so that
// driver-level details never reach the client.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}

	_, _ = writeJSONError(w, message, status)
}
