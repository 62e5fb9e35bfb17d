package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/myantech/erp-api/models"
)

// psql renders every statement with PostgreSQL $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListQuery orders by the business key and passes limit and offset as
// bind parameters.
func buildListQuery[T any](t Table[T], page models.Page) (string, []any, error) {
	query, args, err := psql.
		Select(t.Columns...).
		From(t.Name).
		OrderBy(t.KeyColumn + " ASC").
		Suffix("LIMIT ? OFFSET ?", page.Limit, page.Offset).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFilteredQuery[T any](t Table[T], filter string) (string, []any, error) {
	pred, ok := t.Filters[filter]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q on %s", ErrUnknownFilter, filter, t.Name)
	}

	query, args, err := psql.
		Select(t.Columns...).
		From(t.Name).
		Where(pred).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildGetByKeyQuery picks the lowest id when several rows share a key.
func buildGetByKeyQuery[T any](t Table[T], key string) (string, []any, error) {
	query, args, err := psql.
		Select(t.Columns...).
		From(t.Name).
		Where(sq.Eq{t.KeyColumn: key}).
		OrderBy(t.IDColumn + " ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertQuery[T any](t Table[T], item T) (string, []any, error) {
	query, args, err := psql.
		Insert(t.Name).
		Columns(t.InsertColumns...).
		Values(t.InsertValues(item)...).
		Suffix("RETURNING " + t.IDColumn).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpdateQuery[T any](t Table[T], item T) (string, []any, error) {
	values := t.UpdateValues(item)
	if len(values) != len(t.UpdateColumns) {
		return "", nil, fmt.Errorf("%w: %s has %d update columns but %d values",
			ErrBuildingSQLQuery, t.Name, len(t.UpdateColumns), len(values))
	}

	builder := psql.Update(t.Name)
	for i, col := range t.UpdateColumns {
		builder = builder.Set(col, values[i])
	}

	query, args, err := builder.Where(sq.Eq{t.IDColumn: t.ID(item)}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteQuery[T any](t Table[T], id int64) (string, []any, error) {
	query, args, err := psql.
		Delete(t.Name).
		Where(sq.Eq{t.IDColumn: id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
