package store

import (
	"context"
	"database/sql"

	"github.com/myantech/erp-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Querier is the single storage collaborator every repository talks to.
// *sql.DB, *sql.Conn and *sql.Tx satisfy it.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// ResourceRepository is the CRUD surface shared by every entity table.
type ResourceRepository[T any] interface {
	// List returns one page ordered by the table's business key.
	List(ctx context.Context, page models.Page) ([]T, error)
	// ListFiltered returns the rows matching a named filter, unordered.
	ListFiltered(ctx context.Context, filter string) ([]T, error)
	// GetByKey returns the lowest-id row whose business key equals key.
	GetByKey(ctx context.Context, key string) (T, error)
	// Create inserts item and returns the assigned identifier.
	Create(ctx context.Context, item T) (int64, error)
	// Update overwrites every updatable column of the row with item's id.
	Update(ctx context.Context, item T) error
	// Delete removes the row with the given id.
	Delete(ctx context.Context, id int64) error
}

// UserRepository adds credential lookup to the users table.
type UserRepository interface {
	ResourceRepository[models.User]
	// FindByUsername returns the user with its password hash populated.
	FindByUsername(ctx context.Context, username string) (models.User, error)
}

// ErrorClassificator decides whether a failed database operation is
// worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
