package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func selectQuery(table string, columns ...string) (string, []any, error) {
	return psql.Select(columns...).From(table).ToSql()
}

func insertQuery[T any](table string, columns []string, items []T, values func(T) []any) (string, []any, error) {
	stmt := psql.Insert(table).Columns(columns...)
	for _, item := range items {
		stmt = stmt.Values(values(item)...)
	}

	return stmt.ToSql()
}

// list reads every row of table into T, matching columns to db tags.
func list[T any](ctx context.Context, db *pgxpool.Pool, table string, columns ...string) ([]T, error) {
	sqlQuery, args, err := selectQuery(table, columns...)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", table, err)
	}

	return items, nil
}

// insert writes all items with a single statement, so a step either lands
// completely or not at all.
func insert[T any](
	ctx context.Context,
	db *pgxpool.Pool,
	table string,
	columns []string,
	items []T,
	values func(T) []any,
) error {
	if len(items) == 0 {
		return nil
	}

	sqlQuery, args, err := insertQuery(table, columns, items, values)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}

	return nil
}
