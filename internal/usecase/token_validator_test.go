//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"campfinder/internal/domain/user"
	"campfinder/internal/pkg/jwt"
	"campfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator_ValidateToken(t *testing.T) {
	svc := jwt.NewService("validator-secret", 15*time.Minute, time.Hour)
	validator := usecase.NewTokenValidator(svc)
	userID := uuid.New()

	t.Run("access token yields user and role", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		id, role, err := validator.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, userID, id)
		assert.Equal(t, user.RoleAdmin, role)
	})

	t.Run("refresh token is rejected", func(t *testing.T) {
		token, err := svc.GenerateRefreshToken(userID, user.RoleUser)
		require.NoError(t, err)

		_, _, err = validator.ValidateToken(token)

		assert.ErrorIs(t, err, usecase.ErrNotAccessToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.NewService("validator-secret", -time.Minute, time.Hour)
		token, err := expired.GenerateAccessToken(userID, user.RoleUser)
		require.NoError(t, err)

		_, _, err = validator.ValidateToken(token)

		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("foreign signature", func(t *testing.T) {
		other := jwt.NewService("someone-else", time.Minute, time.Hour)
		token, err := other.GenerateAccessToken(userID, user.RoleUser)
		require.NoError(t, err)

		_, _, err = validator.ValidateToken(token)

		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
