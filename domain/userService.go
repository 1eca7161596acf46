package domain

import (
	"context"
	"log/slog"
)

type UserService struct {
	store UserStore
	log   *slog.Logger
}

type UserStore interface {
	GetUserRole(ctx context.Context, username string) (User, error)
}

func NewUserService(store UserStore, log *slog.Logger) *UserService {
	return &UserService{
		store: store,
		log:   log,
	}
}

// GetUserRole resolves a user with its role by username. Classified
// failures (bad input, not found) pass through untouched, anything else
// becomes a generic internal error.
func (s *UserService) GetUserRole(ctx context.Context, username string) (User, error) {
	const op = "UserService.GetUserRole"
	user, err := s.store.GetUserRole(ctx, username)
	if err != nil {
		s.log.Error(op, "error", err)
		if cerr, ok := AsClassified(err); ok {
			return User{}, cerr
		}
		return User{}, Classify("Internal server error", CodeInternal)
	}
	return user, nil
}
