//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"campfinder/internal/infra"
	"campfinder/internal/infra/repository"
	sqlc "campfinder/internal/infra/sqlc/generated"
	"campfinder/tests/common/builder"
	repositorymock "campfinder/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "duplicate email", returnErr: &pgconn.PgError{Code: "23505"}, expectKind: infra.KindDuplicateKey},
		{name: "database error", returnErr: errors.New("boom"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
			mockDB := &mockDBTX{}

			u, err := builder.NewUserBuilder().WithEmail("ranger@example.com").BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().CreateUser(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateUserParams) (uuid.UUID, error) {
					assert.Equal(t, "ranger@example.com", arg.Email)
					assert.Equal(t, "user", arg.Role)
					if tc.returnErr != nil {
						return uuid.Nil, tc.returnErr
					}
					return arg.ID, nil
				})

			id, err := repository.NewUserRepository(mockQueries).Create(ctx, mockDB, u)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, u.ID(), id)
		})
	}
}

func TestUserRepository_UpdateLastLogin(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name      string
		mockError error
		wantError bool
	}{
		{name: "success"},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().UpdateUserLastLogin(ctx, mockDB, userID).Return(tt.mockError)

			err := repository.NewUserRepository(mockQueries).UpdateLastLogin(ctx, mockDB, userID)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		affected   int64
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "user vanished", affected: 0, expectKind: infra.KindNotFound},
		{name: "email taken", returnErr: &pgconn.PgError{Code: "23505"}, expectKind: infra.KindDuplicateKey},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			u, err := builder.NewUserBuilder().BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().UpdateUserProfile(ctx, mockDB, sqlc.UpdateUserProfileParams{
				ID:    u.ID(),
				Name:  u.Name().Value(),
				Email: u.Email().Value(),
			}).Return(tc.affected, tc.returnErr)

			err = repository.NewUserRepository(mockQueries).UpdateProfile(ctx, mockDB, u)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind))
		})
	}
}
