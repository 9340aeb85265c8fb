package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tapteam/tap-server/internal/logger"
	"github.com/tapteam/tap-server/internal/utils"
	"github.com/tapteam/tap-server/models"
)

func (h *Handler) createOpportunity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var opportunity models.Opportunity
	if err := json.NewDecoder(r.Body).Decode(&opportunity); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	// the contributor is always the logged-in user, never the payload
	if principal, ok := utils.PrincipalFromContext(ctx); ok {
		opportunity.Contributor = principal.ID
	}

	created, err := h.services.Opportunities.Create(ctx, opportunity)
	if err != nil {
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getOpportunity(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	opportunity, err := h.services.Opportunities.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, opportunity, http.StatusOK)
}

func (h *Handler) listOpportunities(w http.ResponseWriter, r *http.Request) {
	page := pageFromRequest(r)

	opportunities, total, err := h.services.Opportunities.List(r.Context(), page)
	if err != nil {
		writeError(w, err)
		return
	}

	writeList(w, opportunities, total, page)
}

func (h *Handler) updateOpportunity(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	log := logger.FromRequest(r)

	var update models.OpportunityUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	updated, err := h.services.Opportunities.Update(r.Context(), id, update)
	if err != nil {
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteOpportunity(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.services.Opportunities.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) linkProvider(w http.ResponseWriter, r *http.Request) {
	opportunityID, providerID, err := linkIDsFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.services.Opportunities.LinkProvider(r.Context(), opportunityID, providerID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) unlinkProvider(w http.ResponseWriter, r *http.Request) {
	opportunityID, providerID, err := linkIDsFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.services.Opportunities.UnlinkProvider(r.Context(), opportunityID, providerID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// linkIDsFromRequest parses the {id} and {providerID} route parameters of
// the provider link endpoints.
func linkIDsFromRequest(r *http.Request) (opportunityID, providerID int64, err error) {
	opportunityID, err = idFromRequest(r)
	if err != nil {
		return 0, 0, err
	}

	providerID, err = strconv.ParseInt(chi.URLParam(r, "providerID"), 10, 64)
	if err != nil || providerID < 1 {
		return 0, 0, ErrInvalidID
	}

	return opportunityID, providerID, nil
}
