package service

import (
	"context"

	"github.com/myantech/erp-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ResourceService exposes CRUD on one entity type. Every error it returns
// is one of ErrNotFound, ErrStorageFailure or ErrInvalidDataProvided.
type ResourceService[T any] interface {
	List(ctx context.Context, page models.Page) ([]T, error)
	ListFiltered(ctx context.Context, filter string) ([]T, error)
	GetByKey(ctx context.Context, key string) (T, error)
	Create(ctx context.Context, item T) (int64, error)
	Update(ctx context.Context, item T) error
	Delete(ctx context.Context, id int64) error
}

// AuthService verifies credentials and issues tokens.
type AuthService interface {
	// Login checks a username and password and returns the matching principal.
	Login(ctx context.Context, req models.LoginRequest) (models.Principal, error)
	// CreateToken issues a signed token for principal.
	CreateToken(ctx context.Context, principal models.Principal) (models.Token, error)
	// VerifyCredential turns a raw token into a principal. Every failure
	// wraps authz.ErrUnauthenticated.
	VerifyCredential(ctx context.Context, raw string) (models.Principal, error)
	// HashPassword returns the bcrypt hash of password.
	HashPassword(password string) (string, error)
}
