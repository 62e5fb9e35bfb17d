package service

import (
	"context"
	"errors"

	"github.com/myantech/erp-api/internal/logger"
	"github.com/myantech/erp-api/internal/store"
	"github.com/myantech/erp-api/internal/utils"
	"github.com/myantech/erp-api/models"
)

// resourceService adapts a store.ResourceRepository to [ResourceService].
// It is the boundary where storage errors stop carrying detail.
type resourceService[T any] struct {
	repository store.ResourceRepository[T]
	entity     string
}

// NewResourceService returns a [ResourceService] over repository. entity
// names the type in log lines.
func NewResourceService[T any](repository store.ResourceRepository[T], entity string) ResourceService[T] {
	return &resourceService[T]{repository: repository, entity: entity}
}

func (s *resourceService[T]) List(ctx context.Context, page models.Page) ([]T, error) {
	items, err := s.repository.List(ctx, page)
	if err != nil {
		return nil, s.flatten(ctx, "List", err)
	}
	return items, nil
}

func (s *resourceService[T]) ListFiltered(ctx context.Context, filter string) ([]T, error) {
	items, err := s.repository.ListFiltered(ctx, filter)
	if err != nil {
		return nil, s.flatten(ctx, "ListFiltered", err)
	}
	return items, nil
}

func (s *resourceService[T]) GetByKey(ctx context.Context, key string) (T, error) {
	item, err := s.repository.GetByKey(ctx, key)
	if err != nil {
		var zero T
		return zero, s.flatten(ctx, "GetByKey", err)
	}
	return item, nil
}

func (s *resourceService[T]) Create(ctx context.Context, item T) (int64, error) {
	id, err := s.repository.Create(ctx, item)
	if err != nil {
		return 0, s.flatten(ctx, "Create", err)
	}

	s.audit(ctx, "Create", id)
	return id, nil
}

func (s *resourceService[T]) Update(ctx context.Context, item T) error {
	if err := s.repository.Update(ctx, item); err != nil {
		return s.flatten(ctx, "Update", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", s.funcName("Update")).
		Str("actor", actor(ctx)).
		Msg(s.entity + " updated")
	return nil
}

func (s *resourceService[T]) Delete(ctx context.Context, id int64) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return s.flatten(ctx, "Delete", err)
	}

	s.audit(ctx, "Delete", id)
	return nil
}

// flatten maps a repository error onto the service taxonomy. Anything that
// is not a missing row or an unknown filter becomes ErrStorageFailure.
func (s *resourceService[T]) flatten(ctx context.Context, op string, err error) error {
	log := logger.FromContext(ctx)

	switch {
	case errors.Is(err, store.ErrNotFound):
		log.Debug().Str("func", s.funcName(op)).Err(err).Msg(s.entity + " not found")
		return ErrNotFound
	case errors.Is(err, store.ErrUnknownFilter):
		log.Debug().Str("func", s.funcName(op)).Err(err).Msg("unknown filter requested")
		return ErrInvalidDataProvided
	default:
		log.Err(err).
			Str("func", s.funcName(op)).
			Str("actor", actor(ctx)).
			Bool("constraint_violation", store.IsConstraintViolation(err)).
			Msg("storage failure")
		return ErrStorageFailure
	}
}

func (s *resourceService[T]) audit(ctx context.Context, op string, id int64) {
	logger.FromContext(ctx).Info().
		Str("func", s.funcName(op)).
		Str("actor", actor(ctx)).
		Int64("id", id).
		Msg(s.entity + " " + op)
}

func (s *resourceService[T]) funcName(op string) string {
	return "resourceService[" + s.entity + "]." + op
}

// actor names the principal on whose behalf ctx runs.
func actor(ctx context.Context) string {
	p, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		return "anonymous"
	}
	return p.Username
}
