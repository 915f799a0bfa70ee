//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"campfinder/internal/domain/user"
	reqdto "campfinder/internal/handler/dto/request"
	"campfinder/internal/infra"
	sqlc "campfinder/internal/infra/sqlc/generated"
	"campfinder/internal/pkg/clock"
	"campfinder/internal/pkg/errs"
	"campfinder/internal/pkg/jwt"
	"campfinder/internal/pkg/password"
	"campfinder/internal/usecase/commands"
	"campfinder/internal/usecase/shared"
	"campfinder/tests/common/builder"
	queriesmock "campfinder/tests/mock/queries"
	sharedmock "campfinder/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	password.Cost = bcrypt.MinCost
}

type authFixture struct {
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	reads     *sharedmock.MockCommandReads
	users     *sharedmock.MockUserRepository
	readStore *queriesmock.MockUserReadStore
	jwt       *jwt.Service
	auth      commands.AuthCommands
	user      commands.UserCommands
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &authFixture{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		reads:     sharedmock.NewMockCommandReads(ctrl),
		users:     sharedmock.NewMockUserRepository(ctrl),
		readStore: queriesmock.NewMockUserReadStore(ctrl),
		jwt:       jwt.NewService("unit-test-secret", 15*time.Minute, time.Hour),
	}
	f.auth = commands.NewAuthCommands(f.uow, f.readStore, f.jwt)
	f.user = commands.NewUserCommands(f.uow, clock.NewMockClock(time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)))

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Users().Return(f.users).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	return f
}

func hashed(t *testing.T, plain string) string {
	t.Helper()
	h, err := password.HashPassword(plain)
	require.NoError(t, err)
	return h
}

// =============================================================================
// Register
// =============================================================================

func TestAuthCommands_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success: new account is a plain user with tokens", func(t *testing.T) {
		f := newAuthFixture(t)
		req := builder.NewAuthBuilder().WithEmail("New.Camper@Example.com").BuildRegisterDTO()

		f.reads.EXPECT().UserByEmail(gomock.Any(), "new.camper@example.com").Return(nil, notFoundErr())
		f.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, u *user.User) (uuid.UUID, error) {
				assert.Equal(t, user.RoleUser, u.Role())
				assert.NotEqual(t, req.Password, u.PasswordHash())
				assert.NoError(t, password.ComparePassword(u.PasswordHash(), req.Password))
				return u.ID(), nil
			})

		result, err := f.auth.Register(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, user.RoleUser, result.Role)
		claims, err := f.jwt.ValidateToken(result.TokenPair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, result.UserID, claims.UserID)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	t.Run("error: email already registered", func(t *testing.T) {
		f := newAuthFixture(t)
		req := builder.NewAuthBuilder().BuildRegisterDTO()
		f.reads.EXPECT().UserByEmail(gomock.Any(), req.Email).Return(builder.NewUserBuilder().BuildSnapshot(), nil)

		_, err := f.auth.Register(ctx, req)

		assert.ErrorIs(t, err, commands.ErrEmailTaken)
		assert.Equal(t, errs.ErrConflict, errs.Kind(err))
	})

	t.Run("error: concurrent registration hits the unique index", func(t *testing.T) {
		f := newAuthFixture(t)
		req := builder.NewAuthBuilder().BuildRegisterDTO()
		f.reads.EXPECT().UserByEmail(gomock.Any(), req.Email).Return(nil, notFoundErr())
		f.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("failed to create user", errors.New("dup"), infra.KindDuplicateKey))

		_, err := f.auth.Register(ctx, req)

		assert.ErrorIs(t, err, commands.ErrEmailTaken)
	})

	t.Run("error: password too short", func(t *testing.T) {
		f := newAuthFixture(t)
		req := builder.NewAuthBuilder().WithPassword("12345").BuildRegisterDTO()

		_, err := f.auth.Register(ctx, req)

		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
		assert.Equal(t, errs.ErrValidation, errs.Kind(err))
	})
}

// =============================================================================
// Login
// =============================================================================

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()
	req := builder.NewAuthBuilder().BuildDTO()

	t.Run("success: tokens issued and last login recorded", func(t *testing.T) {
		f := newAuthFixture(t)
		view := builder.NewUserBuilder().WithRole("admin").BuildReadModel()

		f.readStore.EXPECT().FindByEmail(gomock.Any(), req.Email).Return(view, hashed(t, req.Password), nil)
		f.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), view.ID).Return(nil)

		result, err := f.auth.Login(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, view.ID, result.UserID)
		assert.Equal(t, user.RoleAdmin, result.Role)
		claims, err := f.jwt.ValidateToken(result.TokenPair.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeRefresh, claims.TokenType)
	})

	t.Run("success: last login failure is tolerated", func(t *testing.T) {
		f := newAuthFixture(t)
		view := builder.NewUserBuilder().BuildReadModel()

		f.readStore.EXPECT().FindByEmail(gomock.Any(), req.Email).Return(view, hashed(t, req.Password), nil)
		f.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), view.ID).Return(errors.New("timeout"))

		_, err := f.auth.Login(ctx, req)

		require.NoError(t, err)
	})

	t.Run("error: wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		view := builder.NewUserBuilder().BuildReadModel()
		f.readStore.EXPECT().FindByEmail(gomock.Any(), req.Email).Return(view, hashed(t, "another-password"), nil)

		_, err := f.auth.Login(ctx, req)

		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("error: unknown email looks like a wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		f.readStore.EXPECT().FindByEmail(gomock.Any(), req.Email).Return(nil, "", notFoundErr())

		_, err := f.auth.Login(ctx, req)

		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
		assert.Nil(t, errs.Kind(err))
	})

	t.Run("error: inactive user", func(t *testing.T) {
		f := newAuthFixture(t)
		view := builder.NewUserBuilder().AsInactive().BuildReadModel()
		f.readStore.EXPECT().FindByEmail(gomock.Any(), req.Email).Return(view, hashed(t, req.Password), nil)

		_, err := f.auth.Login(ctx, req)

		assert.ErrorIs(t, err, commands.ErrUserInactive)
	})
}

// =============================================================================
// RefreshToken
// =============================================================================

func TestAuthCommands_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("success: role is re-read from the store", func(t *testing.T) {
		f := newAuthFixture(t)
		view := builder.NewUserBuilder().WithRole("admin").BuildReadModel()
		refresh, err := f.jwt.GenerateRefreshToken(view.ID, user.RoleUser)
		require.NoError(t, err)

		f.readStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		pair, err := f.auth.RefreshToken(ctx, refresh)

		require.NoError(t, err)
		claims, err := f.jwt.ValidateToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("error: access token is not accepted", func(t *testing.T) {
		f := newAuthFixture(t)
		access, err := f.jwt.GenerateAccessToken(uuid.New(), user.RoleUser)
		require.NoError(t, err)

		_, err = f.auth.RefreshToken(ctx, access)

		assert.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("error: garbage token", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.auth.RefreshToken(ctx, "not-a-jwt")

		assert.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("error: user deleted since the token was issued", func(t *testing.T) {
		f := newAuthFixture(t)
		id := uuid.New()
		refresh, err := f.jwt.GenerateRefreshToken(id, user.RoleUser)
		require.NoError(t, err)
		f.readStore.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFoundErr())

		_, err = f.auth.RefreshToken(ctx, refresh)

		assert.ErrorIs(t, err, commands.ErrUserNotFound)
	})
}

// =============================================================================
// UserCommands
// =============================================================================

func TestUserCommands_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("name changes, role stays", func(t *testing.T) {
		f := newAuthFixture(t)
		snap := builder.NewUserBuilder().WithRole("admin").BuildSnapshot()
		newName := "Renamed Camper"

		f.reads.EXPECT().UserByID(gomock.Any(), snap.ID).Return(snap, nil)
		f.users.EXPECT().UpdateProfile(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, u *user.User) error {
				assert.Equal(t, newName, u.Name().Value())
				assert.Equal(t, snap.Email, u.Email().Value())
				assert.Equal(t, user.RoleAdmin, u.Role())
				return nil
			})

		err := f.user.UpdateProfile(ctx, snap.ID, reqdto.UpdateProfileRequest{Name: &newName})

		require.NoError(t, err)
	})

	t.Run("error: email belongs to someone else", func(t *testing.T) {
		f := newAuthFixture(t)
		snap := builder.NewUserBuilder().BuildSnapshot()
		other := builder.NewUserBuilder().WithEmail("taken@example.com").BuildSnapshot()
		email := "taken@example.com"

		f.reads.EXPECT().UserByID(gomock.Any(), snap.ID).Return(snap, nil)
		f.reads.EXPECT().UserByEmail(gomock.Any(), email).Return(other, nil)

		err := f.user.UpdateProfile(ctx, snap.ID, reqdto.UpdateProfileRequest{Email: &email})

		assert.ErrorIs(t, err, commands.ErrEmailTaken)
	})

	t.Run("error: invalid email", func(t *testing.T) {
		f := newAuthFixture(t)
		snap := builder.NewUserBuilder().BuildSnapshot()
		email := "not-an-email"
		f.reads.EXPECT().UserByID(gomock.Any(), snap.ID).Return(snap, nil)

		err := f.user.UpdateProfile(ctx, snap.ID, reqdto.UpdateProfileRequest{Email: &email})

		assert.ErrorIs(t, err, user.ErrInvalidEmail)
		assert.Equal(t, errs.ErrValidation, errs.Kind(err))
	})
}

func TestUserCommands_CreateAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("admin role is assigned", func(t *testing.T) {
		f := newAuthFixture(t)
		f.reads.EXPECT().UserByEmail(gomock.Any(), "ops@example.com").Return(nil, notFoundErr())
		f.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, u *user.User) (uuid.UUID, error) {
				assert.True(t, u.IsAdmin())
				return u.ID(), nil
			})

		id, err := f.user.CreateAdmin(ctx, "Ops", "ops@example.com", "s3cret-pass")

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})

	t.Run("error: invalid input", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.user.CreateAdmin(ctx, "", "ops@example.com", "s3cret-pass")

		assert.Equal(t, errs.ErrValidation, errs.Kind(err))
	})
}
