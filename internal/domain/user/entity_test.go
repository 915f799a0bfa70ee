//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"campfinder/internal/domain/user"
	"campfinder/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("success: defaults", func(t *testing.T) {

		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		name, _ := user.NewName("Test Camper")
		email, _ := user.NewEmail("test@example.com")
		expected := user.NewUser(name, email, "hashed_password", user.RoleUser)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.False(t, actual.IsAdmin())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("name", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "max length multibyte name ok",
				mutate: func(b *builder.UserBuilder) { b.WithName(strings.Repeat("é", user.MaxNameLength)) },
			},
			{
				name:   "too long",
				mutate: func(b *builder.UserBuilder) { b.WithName(strings.Repeat("a", user.MaxNameLength+1)) },
				errIs:  user.ErrNameTooLong,
			},
			{
				name:   "whitespace only",
				mutate: func(b *builder.UserBuilder) { b.WithName("  ") },
				errIs:  user.ErrEmptyName,
			},
		})
	})

	t.Run("email", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid address ok",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "empty",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "malformed",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing @",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("role", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "user ok",
				mutate: func(b *builder.UserBuilder) { b.WithRole("user") },
			},
			{
				name:   "admin ok",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "unknown role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("operator") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "empty role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("profile update keeps role", func(t *testing.T) {
		u, err := builder.NewUserBuilder().WithRole("admin").BuildDomain()
		require.NoError(t, err)

		name, _ := user.NewName("Renamed")
		email, _ := user.NewEmail("RENAMED@example.com")
		now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
		u.UpdateProfile(name, email, now)

		assert.Equal(t, "Renamed", u.Name().Value())
		assert.Equal(t, "renamed@example.com", u.Email().Value())
		assert.Equal(t, user.RoleAdmin, u.Role())
		assert.Equal(t, now, u.UpdatedAt())
	})

	t.Run("password strength", func(t *testing.T) {
		_, err := user.NewPassword("12345")
		require.ErrorIs(t, err, user.ErrPasswordTooWeak)

		_, err = user.NewPassword("123456")
		require.NoError(t, err)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
