package storage

import (
	"app/domain"
	"context"
	"database/sql"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/bool64/sqluct"
)

// db is the slice of sqlx the store actually uses, *sqlx.DB satisfies it.
type db interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

type Store struct {
	db  db
	sq  sq.StatementBuilderType
	sm  sqluct.Mapper
	log *slog.Logger
}

// every new player belongs to the service user until ownership transfer exists
const defaultOwnerID = 2

type player struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	Title       sql.NullString `db:"title"`
	Score       int            `db:"score"`
	LastUpdated sql.NullTime   `db:"last_updated"`
	UserID      sql.NullInt64  `db:"user_id"`
}

type userRole struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
	RoleID   int64  `db:"role_id"`
	RoleName string `db:"role_name"`
}

func toDomain(row player) domain.Player {
	p := domain.Player{
		ID:    domain.PlayerID(row.ID),
		Name:  row.Name,
		Title: row.Title.String,
		Score: row.Score,
	}
	if row.LastUpdated.Valid {
		ts := row.LastUpdated.Time.UTC().Format(time.RFC3339)
		p.LastUpdated = &ts
	}
	if row.UserID.Valid {
		uid := domain.UserID(row.UserID.Int64)
		p.UserID = &uid
	}
	return p
}

func toDomainAll(rows []player) []domain.Player {
	players := make([]domain.Player, 0, len(rows))
	for _, row := range rows {
		players = append(players, toDomain(row))
	}
	return players
}

func userToDomain(row userRole) domain.User {
	return domain.User{
		ID:       domain.UserID(row.ID),
		Username: row.Username,
		Role: domain.Role{
			ID:   domain.RoleID(row.RoleID),
			Name: row.RoleName,
		},
	}
}
