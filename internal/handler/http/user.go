package http

import (
	"encoding/json"
	"net/http"

	"github.com/tapteam/tap-server/internal/logger"
	"github.com/tapteam/tap-server/internal/utils"
	"github.com/tapteam/tap-server/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	created, err := h.services.Users.Create(ctx, user)
	if err != nil {
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, created.Public(), http.StatusCreated)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	user, err := h.services.Users.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, user.Public(), http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	page := pageFromRequest(r)

	users, total, err := h.services.Users.List(r.Context(), page)
	if err != nil {
		writeError(w, err)
		return
	}

	// stored digests never leave the transport layer
	public := make([]models.User, 0, len(users))
	for _, user := range users {
		public = append(public, user.Public())
	}

	writeList(w, public, total, page)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	log := logger.FromRequest(r)

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	updated, err := h.services.Users.Update(r.Context(), id, update)
	if err != nil {
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, updated.Public(), http.StatusOK)
}
