package domain

import (
	"context"
	"log/slog"
)

type PlayerService struct {
	store PlayerStore
	log   *slog.Logger
}

type PlayerStore interface {
	GetPlayers(ctx context.Context) ([]Player, error)
	GetLeaderBoard(ctx context.Context) ([]Player, error)
	AddPlayer(ctx context.Context, name string, score int) (Player, error)
	UpdatePlayer(ctx context.Context, id PlayerID, name string, score int) (Player, error)
	DeletePlayer(ctx context.Context, id PlayerID) error
}

func NewPlayerService(store PlayerStore, log *slog.Logger) *PlayerService {
	return &PlayerService{
		store: store,
		log:   log,
	}
}

// GetPlayers returns every player ordered by score. Any store failure,
// classified or not, is flattened to a generic internal error here.
func (s *PlayerService) GetPlayers(ctx context.Context) ([]Player, error) {
	const op = "PlayerService.GetPlayers"
	players, err := s.store.GetPlayers(ctx)
	if err != nil {
		s.log.Error(op, "error", err)
		return nil, Classify("Internal server error", CodeInternal)
	}
	return players, nil
}

// GetLeaderBoard returns the top players. Failures flatten the same way
// as GetPlayers.
func (s *PlayerService) GetLeaderBoard(ctx context.Context) ([]Player, error) {
	const op = "PlayerService.GetLeaderBoard"
	players, err := s.store.GetLeaderBoard(ctx)
	if err != nil {
		s.log.Error(op, "error", err)
		return nil, Classify("Internal server error", CodeInternal)
	}
	return players, nil
}

func (s *PlayerService) AddPlayer(ctx context.Context, name string, score int) (Player, error) {
	const op = "PlayerService.AddPlayer"
	if msgs := ValidatePlayerInput(PlayerInput{Name: &name, Score: &score}); len(msgs) > 0 {
		s.log.Debug(op, "validation", msgs)
		return Player{}, Classify("Validation failed", CodeBadUserInput, msgs...)
	}
	player, err := s.store.AddPlayer(ctx, name, score)
	if err != nil {
		s.log.Error(op, "error", err)
		if cerr, ok := AsClassified(err); ok {
			return Player{}, cerr
		}
		return Player{}, Classify("Internal server error", CodeInternal)
	}
	return player, nil
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, id PlayerID, name string, score int) (Player, error) {
	const op = "PlayerService.UpdatePlayer"
	rawID := int64(id)
	if msgs := ValidatePlayerInput(PlayerInput{Name: &name, Score: &score, ID: &rawID}); len(msgs) > 0 {
		s.log.Debug(op, "validation", msgs)
		return Player{}, Classify("Validation failed", CodeBadUserInput, msgs...)
	}
	player, err := s.store.UpdatePlayer(ctx, id, name, score)
	if err != nil {
		s.log.Error(op, "error", err)
		if cerr, ok := AsClassified(err); ok {
			return Player{}, cerr
		}
		return Player{}, Classify("Internal server error", CodeInternal)
	}
	return player, nil
}

// DeletePlayer reports true when the row was removed. Deleting an already
// deleted id surfaces NOT_FOUND, never a false success.
func (s *PlayerService) DeletePlayer(ctx context.Context, id PlayerID) (bool, error) {
	const op = "PlayerService.DeletePlayer"
	rawID := int64(id)
	if msgs := ValidatePlayerInput(PlayerInput{ID: &rawID}); len(msgs) > 0 {
		s.log.Debug(op, "validation", msgs)
		return false, Classify("Validation failed", CodeBadUserInput, msgs...)
	}
	if err := s.store.DeletePlayer(ctx, id); err != nil {
		s.log.Error(op, "error", err)
		if cerr, ok := AsClassified(err); ok {
			return false, cerr
		}
		return false, Classify("Internal server error", CodeInternal)
	}
	return true, nil
}
