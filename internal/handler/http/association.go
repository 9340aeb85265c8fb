package http

import (
	"encoding/json"
	"net/http"

	"github.com/tapteam/tap-server/internal/logger"
	"github.com/tapteam/tap-server/internal/utils"
	"github.com/tapteam/tap-server/models"
)

// createAssociation records the logged-in user's relationship with an
// opportunity. The user id always comes from the principal, so one user
// cannot write another user's history.
func (h *Handler) createAssociation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var association models.Association
	if err := json.NewDecoder(r.Body).Decode(&association); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	if principal, ok := utils.PrincipalFromContext(ctx); ok {
		association.UserID = principal.ID
	}

	created, err := h.services.Associations.Create(ctx, association)
	if err != nil {
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}
