package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/myantech/erp-api/internal/logger"
	"github.com/myantech/erp-api/models"
)

// resourceRepository implements [ResourceRepository] for any entity that
// has a [Table] descriptor. Each method issues exactly one statement and
// releases its rows before returning.
type resourceRepository[T any] struct {
	db                 Querier
	table              Table[T]
	errorClassificator ErrorClassificator
}

// NewResourceRepository constructs a repository for table backed by db.
func NewResourceRepository[T any](db Querier, table Table[T], classifier ErrorClassificator) ResourceRepository[T] {
	return newResourceRepository(db, table, classifier)
}

func newResourceRepository[T any](db Querier, table Table[T], classifier ErrorClassificator) *resourceRepository[T] {
	if classifier == nil {
		classifier = NewPostgresErrorClassifier()
	}
	return &resourceRepository[T]{
		db:                 db,
		table:              table,
		errorClassificator: classifier,
	}
}

func (r *resourceRepository[T]) List(ctx context.Context, page models.Page) ([]T, error) {
	query, args, err := buildListQuery(r.table, page)
	if err != nil {
		r.logFault(ctx, err, "List", "failed to create query")
		return nil, err
	}

	return r.queryAll(ctx, "List", query, args)
}

func (r *resourceRepository[T]) ListFiltered(ctx context.Context, filter string) ([]T, error) {
	query, args, err := buildFilteredQuery(r.table, filter)
	if err != nil {
		r.logFault(ctx, err, "ListFiltered", "failed to create query")
		return nil, err
	}

	return r.queryAll(ctx, "ListFiltered", query, args)
}

func (r *resourceRepository[T]) GetByKey(ctx context.Context, key string) (T, error) {
	var item T

	query, args, err := buildGetByKeyQuery(r.table, key)
	if err != nil {
		r.logFault(ctx, err, "GetByKey", "failed to create query")
		return item, err
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(r.table.Scan(&item)...)
	if errors.Is(err, sql.ErrNoRows) {
		return item, fmt.Errorf("%w: %s %s=%q", ErrNotFound, r.table.Name, r.table.KeyColumn, key)
	}
	if err != nil {
		r.logFault(ctx, err, "GetByKey", "failed to query row by key")
		return item, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

func (r *resourceRepository[T]) Create(ctx context.Context, item T) (int64, error) {
	query, args, err := buildInsertQuery(r.table, item)
	if err != nil {
		r.logFault(ctx, err, "Create", "failed to create query")
		return 0, err
	}

	var id int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		r.logFault(ctx, err, "Create", "failed to insert row")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return id, nil
}

func (r *resourceRepository[T]) Update(ctx context.Context, item T) error {
	query, args, err := buildUpdateQuery(r.table, item)
	if err != nil {
		r.logFault(ctx, err, "Update", "failed to create query")
		return err
	}

	return r.execAffectingOne(ctx, "Update", r.table.ID(item), query, args)
}

func (r *resourceRepository[T]) Delete(ctx context.Context, id int64) error {
	query, args, err := buildDeleteQuery(r.table, id)
	if err != nil {
		r.logFault(ctx, err, "Delete", "failed to create query")
		return err
	}

	return r.execAffectingOne(ctx, "Delete", id, query, args)
}

func (r *resourceRepository[T]) queryAll(ctx context.Context, op, query string, args []any) ([]T, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logFault(ctx, err, op, "failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		var item T
		if err = rows.Scan(r.table.Scan(&item)...); err != nil {
			r.logFault(ctx, err, op, "failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		r.logFault(ctx, err, op, "error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// execAffectingOne runs an UPDATE or DELETE and reports [ErrNotFound] when
// no row was touched.
func (r *resourceRepository[T]) execAffectingOne(ctx context.Context, op string, id int64, query string, args []any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logFault(ctx, err, op, "failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logFault(ctx, err, op, "failed to get rows affected")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		logger.FromContext(ctx).Debug().
			Str("func", r.funcName(op)).
			Int64(r.table.IDColumn, id).
			Msg("no rows affected")
		return fmt.Errorf("%w: %s %s=%d", ErrNotFound, r.table.Name, r.table.IDColumn, id)
	}

	return nil
}

func (r *resourceRepository[T]) logFault(ctx context.Context, err error, op, msg string) {
	logger.FromContext(ctx).Err(err).
		Str("func", r.funcName(op)).
		Str("table", r.table.Name).
		Str("pg_code", postgresError(err)).
		Stringer("classification", r.errorClassificator.Classify(err)).
		Msg(msg)
}

func (r *resourceRepository[T]) funcName(op string) string {
	return "resourceRepository." + op
}
