package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/myantech/erp-api/internal/logger"
	"github.com/myantech/erp-api/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// Generic CRUD goes through the embedded resource repository; credential
// lookup selects the password hash as well.
type userRepository struct {
	*resourceRepository[models.User]
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db Querier, classifier ErrorClassificator) UserRepository {
	return &userRepository{
		resourceRepository: newResourceRepository(db, UsersTable, classifier),
	}
}

// FindByUsername returns the user whose username matches, including the
// password hash. Zero rows yields [ErrNotFound].
func (r *userRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select("user_id", "username", "role", "password_hash", "created_at").
		From(UsersTable.Name).
		Where(sq.Eq{"username": username}).
		OrderBy("user_id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindByUsername").Msg("failed to create query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var u models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&u.UserID, &u.Username, &u.Role, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, fmt.Errorf("%w: user %q", ErrNotFound, username)
	}
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.FindByUsername").
			Str("pg_code", postgresError(err)).
			Msg("failed to query user by username")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return u, nil
}
