package service

import (
	"context"
	"fmt"

	"github.com/tapteam/tap-server/internal/config"
	"github.com/tapteam/tap-server/internal/logger"
	"github.com/tapteam/tap-server/internal/store"
	"github.com/tapteam/tap-server/internal/utils"
	"github.com/tapteam/tap-server/models"
)

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository store.UserRepository
	secret         string
	logger         *logger.Logger
}

// NewUserService constructs a UserService bound to the user repository.
// The hashing secret from cfg is used to digest plaintext passwords on
// create and update.
func NewUserService(storages *store.Storages, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: storages.UserRepository,
		secret:         cfg.Secret,
		logger:         logger,
	}
}

// Create registers a new account. Username and password are required; the
// plaintext password is replaced with its digest before the record is
// persisted. Accounts start enabled and default to the contributor role.
func (u *userService) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Username == "" || user.Password == "" {
		log.Error().Str("username", user.Username).Msg("user create payload missing credentials")
		return models.User{}, ErrInvalidDataProvided
	}

	if user.Type == "" {
		user.Type = models.UserTypeContributor
	}
	if !user.ValidType() {
		log.Error().Str("type", user.Type).Msg("unknown user type")
		return models.User{}, ErrInvalidDataProvided
	}

	user.Enabled = true
	user.Password = utils.HashPassword(user.Password, u.secret)

	created, err := u.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user create failed")
		return models.User{}, fmt.Errorf("user create failed: %w", err)
	}

	log.Info().Int64("id", created.ID).Str("username", created.Username).Msg("user created")
	return created, nil
}

// Get returns the user with the given id, or store.ErrRecordNotFound.
func (u *userService) Get(ctx context.Context, id int64) (models.User, error) {
	user, err := u.userRepository.GetUser(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}
	return user, nil
}

// List returns one page of users and the total record count.
func (u *userService) List(ctx context.Context, page Page) ([]models.User, int64, error) {
	page = page.Normalize()

	users, total, err := u.userRepository.ListUsers(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("user list failed: %w", err)
	}
	return users, total, nil
}

// Update applies a partial update to the user with the given id. A supplied
// password is hashed before storage; a supplied type must be a known role.
func (u *userService) Update(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.Type != nil {
		probe := models.User{Type: *update.Type}
		if !probe.ValidType() {
			log.Error().Str("type", *update.Type).Msg("unknown user type")
			return models.User{}, ErrInvalidDataProvided
		}
	}

	if update.Password != nil {
		if *update.Password == "" {
			return models.User{}, ErrInvalidDataProvided
		}
		digest := utils.HashPassword(*update.Password, u.secret)
		update.Password = &digest
	}

	updated, err := u.userRepository.UpdateUser(ctx, id, update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	log.Info().Int64("id", updated.ID).Msg("user updated")
	return updated, nil
}
