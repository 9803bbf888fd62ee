package xpgx

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool executes squirrel builders against pgx, scanning rows into structs.
// Getx expects exactly one row, Selectx a slice destination.
type Pool interface {
	Getx(ctx context.Context, dest any, query sq.Sqlizer) error
	Selectx(ctx context.Context, dest any, query sq.Sqlizer) error
	Execx(ctx context.Context, query sq.Sqlizer) (pgconn.CommandTag, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Close()
}

type pool struct {
	db *pgxpool.Pool
}

func NewPool(db *pgxpool.Pool) Pool {
	return &pool{db: db}
}

func (p *pool) Getx(ctx context.Context, dest any, query sq.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	return pgxscan.Get(ctx, p.db, dest, sql, args...)
}

func (p *pool) Selectx(ctx context.Context, dest any, query sq.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	return pgxscan.Select(ctx, p.db, dest, sql, args...)
}

func (p *pool) Execx(ctx context.Context, query sq.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("failed to build query: %w", err)
	}

	return p.db.Exec(ctx, sql, args...)
}

func (p *pool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return p.db.Exec(ctx, sql, args...)
}

func (p *pool) Close() { p.db.Close() }
