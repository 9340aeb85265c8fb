package service

import (
	"context"
	"fmt"

	"github.com/tapteam/tap-server/internal/logger"
	"github.com/tapteam/tap-server/internal/store"
	"github.com/tapteam/tap-server/internal/utils"
	"github.com/tapteam/tap-server/models"
)

// opportunityService is the concrete implementation of OpportunityService.
//
// Unlike the other services it keeps the whole Storages set rather than a
// single repository: opportunity creation writes the record and the
// contributor's initial association in one transaction.
type opportunityService struct {
	storages *store.Storages
	logger   *logger.Logger
}

// NewOpportunityService constructs an OpportunityService over storages.
func NewOpportunityService(storages *store.Storages, logger *logger.Logger) OpportunityService {
	return &opportunityService{
		storages: storages,
		logger:   logger,
	}
}

// Create persists a new opportunity. Name and contributor are required;
// status defaults to "current", amount_per defaults to "onetime", and the
// trail is generated server-side.
//
// The contributor is recorded as "associated" with the new opportunity in
// the same transaction, so the record and its first relationship appear
// atomically.
func (o *opportunityService) Create(ctx context.Context, opportunity models.Opportunity) (models.Opportunity, error) {
	log := logger.FromContext(ctx)

	if opportunity.Name == "" || opportunity.Contributor == 0 {
		log.Error().Str("name", opportunity.Name).Msg("opportunity create payload incomplete")
		return models.Opportunity{}, ErrInvalidDataProvided
	}

	if opportunity.Status == "" {
		opportunity.Status = models.StatusCurrent
	}
	if !opportunity.ValidStatus() {
		log.Error().Str("status", opportunity.Status).Msg("unknown opportunity status")
		return models.Opportunity{}, ErrInvalidDataProvided
	}

	if opportunity.AmountPer == "" {
		opportunity.AmountPer = models.AmountPerOnetime
	}
	if !opportunity.ValidAmountPer() {
		log.Error().Str("amount_per", opportunity.AmountPer).Msg("unknown amount_per unit")
		return models.Opportunity{}, ErrInvalidDataProvided
	}

	opportunity.Trail = utils.NewToken()

	var created models.Opportunity
	err := o.storages.WithTx(ctx, func(tx *store.Storages) error {
		var err error
		created, err = tx.OpportunityRepository.CreateOpportunity(ctx, opportunity)
		if err != nil {
			return err
		}

		association, err := tx.AssociationRepository.CreateAssociation(ctx, models.Association{
			OpportunityID: created.ID,
			UserID:        created.Contributor,
			Type:          models.AssociationAssociated,
		})
		if err != nil {
			return err
		}

		created.Associations = []models.Association{association}
		return nil
	})
	if err != nil {
		log.Err(err).Str("name", opportunity.Name).Msg("opportunity create failed")
		return models.Opportunity{}, fmt.Errorf("opportunity create failed: %w", err)
	}

	log.Info().Int64("id", created.ID).Str("name", created.Name).Msg("opportunity created")
	return created, nil
}

// Get returns the opportunity with the given id, including its linked
// providers and associations, or store.ErrRecordNotFound.
func (o *opportunityService) Get(ctx context.Context, id int64) (models.Opportunity, error) {
	opportunity, err := o.storages.OpportunityRepository.GetOpportunity(ctx, id)
	if err != nil {
		return models.Opportunity{}, fmt.Errorf("opportunity lookup failed: %w", err)
	}
	return opportunity, nil
}

// List returns one page of opportunities and the total record count.
func (o *opportunityService) List(ctx context.Context, page Page) ([]models.Opportunity, int64, error) {
	page = page.Normalize()

	opportunities, total, err := o.storages.OpportunityRepository.ListOpportunities(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("opportunity list failed: %w", err)
	}
	return opportunities, total, nil
}

// Update applies a partial update to the opportunity with the given id.
// Supplied status and amount_per values must be known.
func (o *opportunityService) Update(ctx context.Context, id int64, update models.OpportunityUpdate) (models.Opportunity, error) {
	log := logger.FromContext(ctx)

	if update.Name != nil && *update.Name == "" {
		return models.Opportunity{}, ErrInvalidDataProvided
	}
	if update.Status != nil {
		probe := models.Opportunity{Status: *update.Status}
		if !probe.ValidStatus() {
			log.Error().Str("status", *update.Status).Msg("unknown opportunity status")
			return models.Opportunity{}, ErrInvalidDataProvided
		}
	}
	if update.AmountPer != nil {
		probe := models.Opportunity{AmountPer: *update.AmountPer}
		if !probe.ValidAmountPer() {
			log.Error().Str("amount_per", *update.AmountPer).Msg("unknown amount_per unit")
			return models.Opportunity{}, ErrInvalidDataProvided
		}
	}

	updated, err := o.storages.OpportunityRepository.UpdateOpportunity(ctx, id, update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("opportunity update failed")
		return models.Opportunity{}, fmt.Errorf("opportunity update failed: %w", err)
	}

	log.Info().Int64("id", updated.ID).Msg("opportunity updated")
	return updated, nil
}

// Delete removes the opportunity with the given id. Provider links and
// associations are removed with it by the schema's cascade rules.
func (o *opportunityService) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := o.storages.OpportunityRepository.DeleteOpportunity(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("opportunity delete failed")
		return fmt.Errorf("opportunity delete failed: %w", err)
	}

	log.Info().Int64("id", id).Msg("opportunity deleted")
	return nil
}

// LinkProvider attaches a provider to an opportunity. Linking an already
// linked pair is a no-op; either id naming a missing row yields
// store.ErrInvalidReference.
func (o *opportunityService) LinkProvider(ctx context.Context, opportunityID, providerID int64) error {
	if err := o.storages.OpportunityRepository.LinkProvider(ctx, opportunityID, providerID); err != nil {
		return fmt.Errorf("provider link failed: %w", err)
	}
	return nil
}

// UnlinkProvider detaches a provider from an opportunity. Removing a link
// that does not exist is a no-op.
func (o *opportunityService) UnlinkProvider(ctx context.Context, opportunityID, providerID int64) error {
	if err := o.storages.OpportunityRepository.UnlinkProvider(ctx, opportunityID, providerID); err != nil {
		return fmt.Errorf("provider unlink failed: %w", err)
	}
	return nil
}
