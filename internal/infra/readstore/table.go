package readstore

import (
	"context"
	"strconv"

	"flightdeals/internal/infra"
	"flightdeals/internal/infra/sqlc"
	"flightdeals/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

// table is a queries.Source over one relation. from may be a parenthesized
// subquery with an alias.
type table[T any] struct {
	db      sqlc.DBTX
	name    string
	from    string
	columns string
	scan    func(pgx.Rows) (T, error)
}

func (t *table[T]) CountSQL(preds []queries.Predicate) (string, []any) {
	var a Args
	return "SELECT count(*) FROM " + t.from + BuildWhere(preds, &a), a.Values()
}

func (t *table[T]) SelectSQL(preds []queries.Predicate, sort queries.Sort, limit, offset int) (string, []any) {
	var a Args
	where := BuildWhere(preds, &a)
	sql := "SELECT " + t.columns + " FROM " + t.from + where + OrderBy(sort) +
		" LIMIT " + a.add(int64(limit)) + " OFFSET " + a.add(int64(offset))
	return sql, a.Values()
}

func (t *table[T]) Count(ctx context.Context, preds []queries.Predicate) (int, error) {
	sql, args := t.CountSQL(preds)
	var n int64
	if err := t.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count "+t.name, err)
	}
	return int(n), nil
}

func (t *table[T]) Select(ctx context.Context, preds []queries.Predicate, sort queries.Sort, limit, offset int) ([]T, error) {
	sql, args := t.SelectSQL(preds, sort, limit, offset)
	rows, err := t.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to select "+t.name, err)
	}
	defer rows.Close()

	out := make([]T, 0, limit)
	for rows.Next() {
		item, err := t.scan(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan "+t.name+" row "+strconv.Itoa(len(out)), err, infra.KindDBFailure)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate "+t.name, err)
	}
	return out, nil
}
