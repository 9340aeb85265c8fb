package service

import (
	"context"
	"fmt"

	"github.com/tapteam/tap-server/internal/logger"
	"github.com/tapteam/tap-server/internal/store"
	"github.com/tapteam/tap-server/internal/utils"
	"github.com/tapteam/tap-server/models"
)

// providerService is the concrete implementation of ProviderService.
type providerService struct {
	providerRepository store.ProviderRepository
	logger             *logger.Logger
}

// NewProviderService constructs a ProviderService bound to the provider
// repository.
func NewProviderService(storages *store.Storages, logger *logger.Logger) ProviderService {
	return &providerService{
		providerRepository: storages.ProviderRepository,
		logger:             logger,
	}
}

// Create persists a new provider. Name and contributor are required; the
// status defaults to "current" and the trail is generated server-side.
func (p *providerService) Create(ctx context.Context, provider models.Provider) (models.Provider, error) {
	log := logger.FromContext(ctx)

	if provider.Name == "" || provider.Contributor == 0 {
		log.Error().Str("name", provider.Name).Msg("provider create payload incomplete")
		return models.Provider{}, ErrInvalidDataProvided
	}

	if provider.Status == "" {
		provider.Status = models.StatusCurrent
	}
	if !provider.ValidStatus() {
		log.Error().Str("status", provider.Status).Msg("unknown provider status")
		return models.Provider{}, ErrInvalidDataProvided
	}

	provider.Trail = utils.NewToken()

	created, err := p.providerRepository.CreateProvider(ctx, provider)
	if err != nil {
		log.Err(err).Str("name", provider.Name).Msg("provider create failed")
		return models.Provider{}, fmt.Errorf("provider create failed: %w", err)
	}

	log.Info().Int64("id", created.ID).Str("name", created.Name).Msg("provider created")
	return created, nil
}

// Get returns the provider with the given id, or store.ErrRecordNotFound.
func (p *providerService) Get(ctx context.Context, id int64) (models.Provider, error) {
	provider, err := p.providerRepository.GetProvider(ctx, id)
	if err != nil {
		return models.Provider{}, fmt.Errorf("provider lookup failed: %w", err)
	}
	return provider, nil
}

// List returns one page of providers and the total record count.
func (p *providerService) List(ctx context.Context, page Page) ([]models.Provider, int64, error) {
	page = page.Normalize()

	providers, total, err := p.providerRepository.ListProviders(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("provider list failed: %w", err)
	}
	return providers, total, nil
}

// Update applies a partial update to the provider with the given id.
// A supplied status must be a known value.
func (p *providerService) Update(ctx context.Context, id int64, update models.ProviderUpdate) (models.Provider, error) {
	log := logger.FromContext(ctx)

	if update.Name != nil && *update.Name == "" {
		return models.Provider{}, ErrInvalidDataProvided
	}
	if update.Status != nil {
		probe := models.Provider{Status: *update.Status}
		if !probe.ValidStatus() {
			log.Error().Str("status", *update.Status).Msg("unknown provider status")
			return models.Provider{}, ErrInvalidDataProvided
		}
	}

	updated, err := p.providerRepository.UpdateProvider(ctx, id, update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("provider update failed")
		return models.Provider{}, fmt.Errorf("provider update failed: %w", err)
	}

	log.Info().Int64("id", updated.ID).Msg("provider updated")
	return updated, nil
}

// Delete removes the provider with the given id, or returns
// store.ErrRecordNotFound when no such row exists.
func (p *providerService) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := p.providerRepository.DeleteProvider(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("provider delete failed")
		return fmt.Errorf("provider delete failed: %w", err)
	}

	log.Info().Int64("id", id).Msg("provider deleted")
	return nil
}
