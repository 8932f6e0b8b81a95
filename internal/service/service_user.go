package service

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/MKhiriev/go-api-starter/internal/logger"
	"github.com/MKhiriev/go-api-starter/internal/store"
	"github.com/MKhiriev/go-api-starter/internal/validators"
	"github.com/MKhiriev/go-api-starter/models"
	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	hashCost       int

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, hashCost int, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		hashCost:       bcryptCost(hashCost),
		logger:         logger,
	}
}

func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting user: %w", err)
	}

	return user.Sanitized(), nil
}

// ListUsers returns one page of users. The page limit falls back to
// [models.DefaultPageLimit] and is capped at [models.MaxPageLimit].
func (s *userService) ListUsers(ctx context.Context, req models.ListUsersRequest) (models.UsersPage, error) {
	req = req.Normalize()

	users, err := s.userRepository.ListUsers(ctx, req)
	if err != nil {
		return models.UsersPage{}, fmt.Errorf("error listing users: %w", err)
	}

	for i := range users {
		users[i] = users[i].Sanitized()
	}

	return models.UsersPage{
		Users:  users,
		Limit:  req.Limit,
		Offset: req.Offset,
	}, nil
}

// UpdateUser validates only the fields present in update. A new password is
// hashed before it reaches the repository.
func (s *userService) UpdateUser(ctx context.Context, callerID, userID int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if callerID != userID {
		log.Warn().Int64("caller_id", callerID).Int64("user_id", userID).Msg("attempt to update another user")
		return models.User{}, ErrForbidden
	}

	if update.IsEmpty() {
		return models.User{}, ErrNothingToUpdate
	}

	if err := s.validator.Validate(ctx, update, slices.Sorted(maps.Keys(update.Fields()))...); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if update.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), s.hashCost)
		if err != nil {
			log.Err(err).Str("func", "*userService.UpdateUser").Msg("error hashing password")
			return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
		}
		hashed := string(hash)
		update.PasswordHash = &hashed
		update.Password = nil
	}

	user, err := s.userRepository.UpdateUser(ctx, userID, update)
	if err != nil {
		return models.User{}, fmt.Errorf("error updating user: %w", err)
	}

	return user.Sanitized(), nil
}

func (s *userService) DeleteUser(ctx context.Context, callerID, userID int64) error {
	if callerID != userID {
		logger.FromContext(ctx).Warn().Int64("caller_id", callerID).Int64("user_id", userID).Msg("attempt to delete another user")
		return ErrForbidden
	}

	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	return nil
}
