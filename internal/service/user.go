package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/rs/zerolog"
)

// UserStore is the persistence the user service needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Create(ctx context.Context, u model.NewUser) (*model.User, error)
}

type UserService struct {
	base
	users UserStore
}

func NewUserService(logger *zerolog.Logger, users UserStore) *UserService {
	return &UserService{base: newBase(logger), users: users}
}

// GetByEmail returns the user registered under email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, s.fail(ctx, "get_user_by_email", err)
	}
	return user, nil
}

// GetByID returns the user with id.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "get_user_by_id", err)
	}
	return user, nil
}

// Create registers a user. A duplicate email surfaces as the store's
// unique violation.
func (s *UserService) Create(ctx context.Context, u model.NewUser) (*model.User, error) {
	user, err := s.users.Create(ctx, u)
	if err != nil {
		return nil, s.fail(ctx, "create_user", err)
	}

	s.log(ctx).Info().Int64("user_id", user.ID).Msg("user created")
	return user, nil
}
