package http

import (
	"net/http"

	"github.com/tapteam/tap-server/internal/logger"
	"github.com/tapteam/tap-server/internal/utils"
	"github.com/tapteam/tap-server/models"
)

// withSession resolves the session cookie, if any, to its owning user and
// stores that user in the request context as the principal.
//
// Every request re-evaluates the cookie from scratch; there is no cached
// login state on the server side. A missing, stale, or forged cookie simply
// leaves the request without a principal — rejection is requireAuth's job,
// not this middleware's, because the login route must stay reachable.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(h.sessionCookie)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		user, err := h.services.Auth.SessionUser(ctx, cookie.Value)
		if err != nil {
			log.Debug().Err(err).Msg("session cookie did not resolve to a user")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(ctx, user)))
	})
}

// requireAuth is the authentication gate: requests without a resolved
// principal are rejected with 401 and a JSON body naming the reason.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.PrincipalFromContext(r.Context()); !ok {
			log := logger.FromRequest(r)
			log.Warn().Str("uri", r.RequestURI).Msg("unauthenticated request rejected")

			_, _ = utils.WriteJSON(w, models.ErrorResponse{Message: "Not authenticated"}, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
