package storage

import (
	"app/domain"
	"context"
	"database/sql"
	"errors"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/bool64/sqluct"
)

func NewDB(db db, log *slog.Logger) *Store {
	return &Store{
		db:  db,
		sm:  sqluct.Mapper{Dialect: sqluct.DialectPostgres},
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		log: log,
	}
}

// GetPlayers returns every player, best score first.
func (p *Store) GetPlayers(ctx context.Context) ([]domain.Player, error) {
	const op = "storage.Postgres.GetPlayers"
	query := p.sm.Select(p.sq.Select(), &player{}).
		From("players").
		OrderBy("score DESC")
	qry, args, err := query.ToSql()
	if err != nil {
		p.log.Error(op, "error", err)
		return nil, domain.Classify("Failed to load getPlayers", domain.CodeInternal)
	}
	p.log.Debug(op, "qry", qry, "args", args)
	var rows []player
	if err := p.db.SelectContext(ctx, &rows, qry, args...); err != nil {
		p.log.Error(op, "error", err)
		return nil, domain.Classify("Failed to load getPlayers", domain.CodeInternal)
	}
	return toDomainAll(rows), nil
}

// GetLeaderBoard returns the top 10 players by score.
func (p *Store) GetLeaderBoard(ctx context.Context) ([]domain.Player, error) {
	const op = "storage.Postgres.GetLeaderBoard"
	query := p.sm.Select(p.sq.Select(), &player{}).
		From("players").
		OrderBy("score DESC").
		Limit(10)
	qry, args, err := query.ToSql()
	if err != nil {
		p.log.Error(op, "error", err)
		return nil, domain.Classify("Failed to load leaderboard", domain.CodeInternal)
	}
	p.log.Debug(op, "qry", qry, "args", args)
	var rows []player
	if err := p.db.SelectContext(ctx, &rows, qry, args...); err != nil {
		p.log.Error(op, "error", err)
		return nil, domain.Classify("Failed to load leaderboard", domain.CodeInternal)
	}
	return toDomainAll(rows), nil
}

func (p *Store) AddPlayer(ctx context.Context, name string, score int) (domain.Player, error) {
	const op = "storage.Postgres.AddPlayer"
	query := p.sq.Insert("players").
		Columns("name", "title", "score", "user_id").
		Values(name, "", score, defaultOwnerID).
		Suffix("RETURNING id, name, title, score, last_updated, user_id")
	qry, args, err := query.ToSql()
	if err != nil {
		p.log.Error(op, "error", err)
		return domain.Player{}, domain.Classify("Failed to add player", domain.CodeInternal)
	}
	p.log.Debug(op, "qry", qry, "args", args)
	var row player
	if err := p.db.GetContext(ctx, &row, qry, args...); err != nil {
		p.log.Error(op, "error", err)
		if _, ok := domain.AsClassified(err); ok {
			return domain.Player{}, err
		}
		return domain.Player{}, domain.Classify("Failed to add player", domain.CodeInternal)
	}
	return toDomain(row), nil
}

func (p *Store) UpdatePlayer(ctx context.Context, id domain.PlayerID, name string, score int) (domain.Player, error) {
	const op = "storage.Postgres.UpdatePlayer"
	query := p.sq.Update("players").
		Set("name", name).
		Set("score", score).
		Set("last_updated", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, title, score, last_updated, user_id")
	qry, args, err := query.ToSql()
	if err != nil {
		p.log.Error(op, "error", err)
		return domain.Player{}, domain.Classify("Failed to update player", domain.CodeInternal)
	}
	p.log.Debug(op, "qry", qry, "args", args)
	var row player
	err = p.db.GetContext(ctx, &row, qry, args...)
	if errors.Is(err, sql.ErrNoRows) {
		p.log.Debug(op, "id", id, "result", "no such player")
		return domain.Player{}, domain.Classify("Player not found", domain.CodeNotFound)
	}
	if err != nil {
		p.log.Error(op, "error", err)
		if _, ok := domain.AsClassified(err); ok {
			return domain.Player{}, err
		}
		return domain.Player{}, domain.Classify("Failed to update player", domain.CodeInternal)
	}
	return toDomain(row), nil
}

func (p *Store) DeletePlayer(ctx context.Context, id domain.PlayerID) error {
	const op = "storage.Postgres.DeletePlayer"
	query := p.sq.Delete("players").Where(sq.Eq{"id": id})
	qry, args, err := query.ToSql()
	if err != nil {
		p.log.Error(op, "error", err)
		return domain.Classify("Failed to delete player", domain.CodeInternal)
	}
	p.log.Debug(op, "qry", qry, "args", args)
	res, err := p.db.ExecContext(ctx, qry, args...)
	if err != nil {
		p.log.Error(op, "error", err)
		if _, ok := domain.AsClassified(err); ok {
			return err
		}
		return domain.Classify("Failed to delete player", domain.CodeInternal)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		p.log.Error(op, "error", err)
		return domain.Classify("Failed to delete player", domain.CodeInternal)
	}
	if affected == 0 {
		p.log.Debug(op, "id", id, "result", "no such player")
		return domain.Classify("Player not found", domain.CodeNotFound)
	}
	return nil
}

// GetUserRole joins users, user_roles and roles on username. A missing
// user is a controlled NOT_FOUND outcome, not a store fault.
func (p *Store) GetUserRole(ctx context.Context, username string) (domain.User, error) {
	const op = "storage.Postgres.GetUserRole"
	if username == "" {
		p.log.Debug(op, "result", "empty username")
		return domain.User{}, domain.Classify("Invalid username input", domain.CodeBadUserInput)
	}
	query := p.sq.Select("users.id", "users.username", "roles.id AS role_id", "roles.name AS role_name").
		From("users").
		Join("user_roles ON users.id = user_roles.user_id").
		Join("roles ON user_roles.role_id = roles.id").
		Where(sq.Eq{"users.username": username})
	qry, args, err := query.ToSql()
	if err != nil {
		p.log.Error(op, "error", err)
		return domain.User{}, domain.Classify("Internal server error", domain.CodeInternal)
	}
	p.log.Debug(op, "qry", qry, "args", args)
	var row userRole
	err = p.db.GetContext(ctx, &row, qry, args...)
	if errors.Is(err, sql.ErrNoRows) {
		p.log.Debug(op, "username", username, "result", "no such user")
		return domain.User{}, domain.Classify("User not found", domain.CodeNotFound)
	}
	if err != nil {
		p.log.Error(op, "error", err)
		if _, ok := domain.AsClassified(err); ok {
			return domain.User{}, err
		}
		return domain.User{}, domain.Classify("Internal server error", domain.CodeInternal)
	}
	return userToDomain(row), nil
}
