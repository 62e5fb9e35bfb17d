// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/myantech/erp-api/internal/mock"
	"github.com/myantech/erp-api/internal/store"
	"github.com/myantech/erp-api/internal/utils"
	"github.com/myantech/erp-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func newDriverService(t *testing.T) (ResourceService[models.Driver], *mock.MockResourceRepository[models.Driver]) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockResourceRepository[models.Driver](ctrl)
	return NewResourceService[models.Driver](repo, "Driver"), repo
}

func TestResourceService_PassesPageThrough(t *testing.T) {
	svc, repo := newDriverService(t)
	ctx := context.Background()

	repo.EXPECT().List(ctx, models.Page{Limit: 10, Offset: 5}).Return([]models.Driver{{DriverID: 1}}, nil)

	got, err := svc.List(ctx, models.Page{Limit: 10, Offset: 5})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestResourceService_FlattensErrors(t *testing.T) {
	notNull := fmt.Errorf("%w: %w", store.ErrExecutingQuery, &pgconn.PgError{Code: pgerrcode.NotNullViolation})

	tests := []struct {
		name    string
		repoErr error
		want    error
	}{
		{"not found", fmt.Errorf("%w: drivers", store.ErrNotFound), ErrNotFound},
		{"unknown filter", store.ErrUnknownFilter, ErrInvalidDataProvided},
		{"constraint violation", notNull, ErrStorageFailure},
		{"connectivity", errors.New("dial tcp: connection refused"), ErrStorageFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newDriverService(t)
			ctx := context.Background()

			repo.EXPECT().Create(ctx, gomock.Any()).Return(int64(0), tt.repoErr)

			_, err := svc.Create(ctx, models.Driver{})
			assert.ErrorIs(t, err, tt.want)
			// nothing from the driver leaks past the service
			assert.Equal(t, tt.want, err)
		})
	}
}

func TestResourceService_GetByKeyNotFound(t *testing.T) {
	svc, repo := newDriverService(t)
	ctx := context.Background()

	repo.EXPECT().GetByKey(ctx, "Nobody").Return(models.Driver{}, store.ErrNotFound)

	_, err := svc.GetByKey(ctx, "Nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResourceService_UpdateAndDelete(t *testing.T) {
	svc, repo := newDriverService(t)
	ctx := utils.WithPrincipal(context.Background(), models.Principal{UserID: 1, Username: "root", Role: models.RoleAdmin})
	d := models.Driver{DriverID: 3, DriverName: strPtr("Aung"), ContactNumber: strPtr("0911")}

	gomock.InOrder(
		repo.EXPECT().Update(ctx, d).Return(nil),
		repo.EXPECT().Delete(ctx, int64(3)).Return(nil),
		repo.EXPECT().Delete(ctx, int64(3)).Return(store.ErrNotFound),
	)

	require.NoError(t, svc.Update(ctx, d))
	require.NoError(t, svc.Delete(ctx, 3))
	assert.ErrorIs(t, svc.Delete(ctx, 3), ErrNotFound)
}

func TestResourceService_ListFiltered(t *testing.T) {
	svc, repo := newDriverService(t)
	ctx := context.Background()

	repo.EXPECT().ListFiltered(ctx, store.FilterAvailable).Return([]models.Driver{}, nil)

	got, err := svc.ListFiltered(ctx, store.FilterAvailable)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestActor(t *testing.T) {
	assert.Equal(t, "anonymous", actor(context.Background()))

	ctx := utils.WithPrincipal(context.Background(), models.Principal{Username: "root"})
	assert.Equal(t, "root", actor(ctx))
}
