package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tapteam/tap-server/internal/service"
	"github.com/tapteam/tap-server/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{service.ErrInvalidDataProvided, http.StatusBadRequest},
		{service.ErrUserDisabled, http.StatusUnauthorized},
		{store.ErrUsernameAlreadyExists, http.StatusConflict},
		{store.ErrAssociationAlreadyExists, http.StatusConflict},
		{store.ErrRecordNotFound, http.StatusNotFound},
		{store.ErrSessionNotFound, http.StatusUnauthorized},
		{store.ErrInvalidReference, http.StatusBadRequest},
		{ErrInvalidJSON, http.StatusBadRequest},
		{ErrInvalidID, http.StatusNotFound},
		{errors.New("driver: bad connection"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, statusFromError(tt.err), tt.err.Error())
	}
}

func TestStatusFromError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("opportunity lookup failed: %w", store.ErrRecordNotFound)
	assert.Equal(t, http.StatusNotFound, statusFromError(wrapped))
}
