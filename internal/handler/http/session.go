package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tapteam/tap-server/internal/logger"
	"github.com/tapteam/tap-server/internal/service"
	"github.com/tapteam/tap-server/internal/store"
	"github.com/tapteam/tap-server/internal/utils"
	"github.com/tapteam/tap-server/models"
)

// createSession is the login endpoint.
//
// The request body may carry either a username/password pair or a raw
// user_id. Credentials are exchanged for the matching user's id before
// validation: a pair that matches no account is stripped silently, which
// leaves the payload without a user id and fails validation with 400 — the
// response never distinguishes a wrong username from a wrong password.
//
// On success the session is persisted, the session cookie is set, and the
// created session (with the sanitized user embedded) is echoed back with 201.
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var payload models.SessionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	var user models.User
	switch {
	case payload.Username != "" || payload.Password != "":
		matched, err := h.services.Auth.Authenticate(ctx, payload.Username, payload.Password)
		switch {
		case err == nil:
			user = matched
		case errors.Is(err, store.ErrNoUserWasFound):
			// no match: drop the credentials and fall through to the
			// user_id check below
		case errors.Is(err, service.ErrUserDisabled):
			log.Warn().Str("username", payload.Username).Msg("login on disabled account rejected")
			writeError(w, err)
			return
		default:
			log.Err(err).Msg("credential exchange failed")
			writeError(w, err)
			return
		}
	case payload.UserID != 0:
		found, err := h.services.Users.Get(ctx, payload.UserID)
		if err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				writeError(w, service.ErrInvalidDataProvided)
				return
			}
			log.Err(err).Msg("session owner lookup failed")
			writeError(w, err)
			return
		}
		user = found
	}

	if user.ID == 0 {
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	session, err := h.services.Auth.OpenSession(ctx, user)
	if err != nil {
		log.Err(err).Msg("session creation failed")
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:  h.sessionCookie,
		Value: session.Token,
		Path:  "/",
	})

	_, _ = utils.WriteJSON(w, session, http.StatusCreated)
}
