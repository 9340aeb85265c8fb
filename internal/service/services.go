// SPDX-License-Identifier: Apache-2.0

// Package service implements the application's business rules on top of the
// store layer: credential verification, session issuance, validation and
// defaulting of inbound records, and the transactional composition of
// multi-row writes.
package service

import (
	"github.com/tapteam/tap-server/internal/config"
	"github.com/tapteam/tap-server/internal/logger"
	"github.com/tapteam/tap-server/internal/store"
)

// Services aggregates every service the transport layer depends on.
type Services struct {
	Auth          AuthService
	Users         UserService
	Opportunities OpportunityService
	Providers     ProviderService
	Associations  AssociationService
}

// NewServices wires all services to the given storages and configuration.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		Auth:          NewAuthService(storages, cfg.App, logger),
		Users:         NewUserService(storages, cfg.App, logger),
		Opportunities: NewOpportunityService(storages, logger),
		Providers:     NewProviderService(storages, logger),
		Associations:  NewAssociationService(storages, logger),
	}
}
