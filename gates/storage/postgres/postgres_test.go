package storage

import (
	"app/domain"
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// fakeDB stands in for *sqlx.DB, handing every statement to a
// test-provided function and recording the generated SQL.
type fakeDB struct {
	getFn    func(dest interface{}, query string, args ...interface{}) error
	selectFn func(dest interface{}, query string, args ...interface{}) error
	execFn   func(query string, args ...interface{}) (sql.Result, error)
	queries  []string
	lastArgs []interface{}
	calls    int
}

func (f *fakeDB) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	f.calls++
	f.queries = append(f.queries, query)
	f.lastArgs = args
	return f.getFn(dest, query, args...)
}

func (f *fakeDB) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	f.calls++
	f.queries = append(f.queries, query)
	f.lastArgs = args
	return f.selectFn(dest, query, args...)
}

func (f *fakeDB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	f.calls++
	f.queries = append(f.queries, query)
	f.lastArgs = args
	return f.execFn(query, args...)
}

type fakeResult struct {
	affected int64
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.affected, nil }

type StoreSuite struct {
	suite.Suite
	db      *fakeDB
	store   *Store
	ctx     context.Context
	testNow time.Time
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.db = &fakeDB{}
	s.store = NewDB(s.db, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.ctx = context.Background()
	s.testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (s *StoreSuite) requireClassified(err error) *domain.Error {
	s.Require().Error(err)
	cerr, ok := domain.AsClassified(err)
	s.Require().True(ok)
	return cerr
}

func (s *StoreSuite) TestGetPlayers() {
	s.db.selectFn = func(dest interface{}, query string, args ...interface{}) error {
		rows := dest.(*[]player)
		*rows = append(*rows,
			player{ID: 1, Name: "Charlie", Score: 150, LastUpdated: sql.NullTime{Time: s.testNow, Valid: true}, UserID: sql.NullInt64{Int64: 2, Valid: true}},
			player{ID: 2, Name: "Dana", Score: 90},
		)
		return nil
	}

	players, err := s.store.GetPlayers(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(players, 2)
	s.Contains(s.db.queries[0], "FROM players")
	s.Contains(s.db.queries[0], "ORDER BY score DESC")
	s.NotContains(s.db.queries[0], "LIMIT")

	s.Equal(domain.PlayerID(1), players[0].ID)
	s.Equal("Charlie", players[0].Name)
	s.Equal("", players[0].Title)
	s.Require().NotNil(players[0].LastUpdated)
	s.Equal("2025-03-01T12:00:00Z", *players[0].LastUpdated)
	s.Require().NotNil(players[0].UserID)
	s.Equal(domain.UserID(2), *players[0].UserID)

	// row without a written timestamp maps to an explicit absent value
	s.Nil(players[1].LastUpdated)
	s.Nil(players[1].UserID)
}

func (s *StoreSuite) TestGetPlayersStoreFailure() {
	s.db.selectFn = func(dest interface{}, query string, args ...interface{}) error {
		return errors.New("driver: bad connection")
	}

	_, err := s.store.GetPlayers(s.ctx)

	cerr := s.requireClassified(err)
	s.Equal(domain.CodeInternal, cerr.Code)
	s.Equal("Failed to load getPlayers", cerr.Message)
}

func (s *StoreSuite) TestGetLeaderBoard() {
	s.db.selectFn = func(dest interface{}, query string, args ...interface{}) error {
		return nil
	}

	players, err := s.store.GetLeaderBoard(s.ctx)

	s.Require().NoError(err)
	s.Empty(players)
	s.Contains(s.db.queries[0], "ORDER BY score DESC")
	s.Contains(s.db.queries[0], "LIMIT 10")
}

func (s *StoreSuite) TestGetLeaderBoardStoreFailure() {
	s.db.selectFn = func(dest interface{}, query string, args ...interface{}) error {
		return errors.New("driver: bad connection")
	}

	_, err := s.store.GetLeaderBoard(s.ctx)

	cerr := s.requireClassified(err)
	s.Equal("Failed to load leaderboard", cerr.Message)
}

func (s *StoreSuite) TestAddPlayer() {
	s.db.getFn = func(dest interface{}, query string, args ...interface{}) error {
		row := dest.(*player)
		*row = player{
			ID:          1,
			Name:        "Charlie",
			Title:       sql.NullString{String: "", Valid: true},
			Score:       150,
			LastUpdated: sql.NullTime{Time: s.testNow, Valid: true},
			UserID:      sql.NullInt64{Int64: 2, Valid: true},
		}
		return nil
	}

	created, err := s.store.AddPlayer(s.ctx, "Charlie", 150)

	s.Require().NoError(err)
	s.Contains(s.db.queries[0], "INSERT INTO players")
	s.Contains(s.db.queries[0], "RETURNING")
	// fixed default owner, empty title
	s.Equal([]interface{}{"Charlie", "", 150, defaultOwnerID}, s.db.lastArgs)

	s.Equal(domain.PlayerID(1), created.ID)
	s.Equal("Charlie", created.Name)
	s.Equal("", created.Title)
	s.Equal(150, created.Score)
}

func (s *StoreSuite) TestAddPlayerStoreFailure() {
	s.db.getFn = func(dest interface{}, query string, args ...interface{}) error {
		return errors.New("pq: value violates constraint")
	}

	_, err := s.store.AddPlayer(s.ctx, "Charlie", 150)

	cerr := s.requireClassified(err)
	s.Equal(domain.CodeInternal, cerr.Code)
	s.Equal("Failed to add player", cerr.Message)
}

func (s *StoreSuite) TestUpdatePlayer() {
	s.db.getFn = func(dest interface{}, query string, args ...interface{}) error {
		row := dest.(*player)
		*row = player{ID: 1, Name: "NewName", Score: 200, LastUpdated: sql.NullTime{Time: s.testNow, Valid: true}}
		return nil
	}

	updated, err := s.store.UpdatePlayer(s.ctx, 1, "NewName", 200)

	s.Require().NoError(err)
	s.Contains(s.db.queries[0], "UPDATE players")
	s.Contains(s.db.queries[0], "last_updated = NOW()")
	s.Equal("NewName", updated.Name)
	s.Equal(200, updated.Score)
}

func (s *StoreSuite) TestUpdatePlayerNotFound() {
	s.db.getFn = func(dest interface{}, query string, args ...interface{}) error {
		return sql.ErrNoRows
	}

	_, err := s.store.UpdatePlayer(s.ctx, 1, "NewName", 200)

	cerr := s.requireClassified(err)
	s.Equal(domain.CodeNotFound, cerr.Code)
	s.Equal("Player not found", cerr.Message)
}

func (s *StoreSuite) TestUpdatePlayerStoreFailure() {
	s.db.getFn = func(dest interface{}, query string, args ...interface{}) error {
		return errors.New("driver: bad connection")
	}

	_, err := s.store.UpdatePlayer(s.ctx, 1, "NewName", 200)

	cerr := s.requireClassified(err)
	s.Equal("Failed to update player", cerr.Message)
}

func (s *StoreSuite) TestDeletePlayer() {
	s.db.execFn = func(query string, args ...interface{}) (sql.Result, error) {
		return fakeResult{affected: 1}, nil
	}

	err := s.store.DeletePlayer(s.ctx, 1)

	s.NoError(err)
	s.Contains(s.db.queries[0], "DELETE FROM players")
}

func (s *StoreSuite) TestDeletePlayerNotFound() {
	s.db.execFn = func(query string, args ...interface{}) (sql.Result, error) {
		return fakeResult{affected: 0}, nil
	}

	err := s.store.DeletePlayer(s.ctx, 1)

	cerr := s.requireClassified(err)
	s.Equal(domain.CodeNotFound, cerr.Code)
	s.Equal("Player not found", cerr.Message)
}

func (s *StoreSuite) TestDeletePlayerStoreFailure() {
	s.db.execFn = func(query string, args ...interface{}) (sql.Result, error) {
		return nil, errors.New("driver: bad connection")
	}

	err := s.store.DeletePlayer(s.ctx, 1)

	cerr := s.requireClassified(err)
	s.Equal("Failed to delete player", cerr.Message)
}

func (s *StoreSuite) TestGetUserRoleEmptyUsername() {
	_, err := s.store.GetUserRole(s.ctx, "")

	cerr := s.requireClassified(err)
	s.Equal(domain.CodeBadUserInput, cerr.Code)
	s.Equal("Invalid username input", cerr.Message)
	s.Zero(s.db.calls, "store must not be queried for an empty username")
}

func (s *StoreSuite) TestGetUserRoleNotFound() {
	s.db.getFn = func(dest interface{}, query string, args ...interface{}) error {
		return sql.ErrNoRows
	}

	_, err := s.store.GetUserRole(s.ctx, "missing")

	cerr := s.requireClassified(err)
	s.Equal(domain.CodeNotFound, cerr.Code)
	s.Equal("User not found", cerr.Message)
}

func (s *StoreSuite) TestGetUserRole() {
	s.db.getFn = func(dest interface{}, query string, args ...interface{}) error {
		row := dest.(*userRole)
		*row = userRole{ID: 1, Username: "alice", RoleID: 2, RoleName: "admin"}
		return nil
	}

	user, err := s.store.GetUserRole(s.ctx, "alice")

	s.Require().NoError(err)
	s.Contains(s.db.queries[0], "JOIN user_roles")
	s.Contains(s.db.queries[0], "JOIN roles")
	s.Equal(domain.User{
		ID:       1,
		Username: "alice",
		Role:     domain.Role{ID: 2, Name: "admin"},
	}, user)
}

func (s *StoreSuite) TestGetUserRoleStoreFailure() {
	s.db.getFn = func(dest interface{}, query string, args ...interface{}) error {
		return errors.New("driver: bad connection")
	}

	_, err := s.store.GetUserRole(s.ctx, "alice")

	cerr := s.requireClassified(err)
	s.Equal(domain.CodeInternal, cerr.Code)
	s.Equal("Internal server error", cerr.Message)
}
