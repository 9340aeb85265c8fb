package http

import (
	"encoding/json"
	"net/http"

	"github.com/tapteam/tap-server/internal/logger"
	"github.com/tapteam/tap-server/internal/utils"
	"github.com/tapteam/tap-server/models"
)

func (h *Handler) createProvider(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var provider models.Provider
	if err := json.NewDecoder(r.Body).Decode(&provider); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	// the contributor is always the logged-in user, never the payload
	if principal, ok := utils.PrincipalFromContext(ctx); ok {
		provider.Contributor = principal.ID
	}

	created, err := h.services.Providers.Create(ctx, provider)
	if err != nil {
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getProvider(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	provider, err := h.services.Providers.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, provider, http.StatusOK)
}

func (h *Handler) listProviders(w http.ResponseWriter, r *http.Request) {
	page := pageFromRequest(r)

	providers, total, err := h.services.Providers.List(r.Context(), page)
	if err != nil {
		writeError(w, err)
		return
	}

	writeList(w, providers, total, page)
}

func (h *Handler) updateProvider(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	log := logger.FromRequest(r)

	var update models.ProviderUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	updated, err := h.services.Providers.Update(r.Context(), id, update)
	if err != nil {
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteProvider(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.services.Providers.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
