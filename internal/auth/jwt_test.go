package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"ht5play/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestProvider(t *testing.T, ttl time.Duration) *JWTProvider {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	return NewJWTProvider(config.AuthConfig{
		Secret:            "test-secret",
		AdminEmail:        "admin@ht5play.com",
		AdminPasswordHash: string(hash),
		TokenTTL:          ttl,
	})
}

func TestJWTProvider_LoginAndValidate(t *testing.T) {
	ctx := context.Background()
	provider := newTestProvider(t, time.Hour)

	token, err := provider.Login(ctx, "Admin@HT5Play.com", "correct horse")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := provider.Validate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "admin@ht5play.com", identity.Email)
	assert.True(t, identity.Admin)
}

func TestJWTProvider_LoginRejections(t *testing.T) {
	ctx := context.Background()
	provider := newTestProvider(t, time.Hour)

	t.Run("wrong email", func(t *testing.T) {
		_, err := provider.Login(ctx, "intruder@ht5play.com", "correct horse")
		assert.True(t, errors.Is(err, ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := provider.Login(ctx, "admin@ht5play.com", "wrong horse")
		assert.True(t, errors.Is(err, ErrInvalidCredentials))
	})
}

func TestJWTProvider_ValidateRejections(t *testing.T) {
	ctx := context.Background()
	provider := newTestProvider(t, time.Hour)

	t.Run("garbage token", func(t *testing.T) {
		_, err := provider.Validate(ctx, "not-a-token")
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := newTestProvider(t, time.Hour)
		other.secret = []byte("different-secret")

		token, err := other.Login(ctx, "admin@ht5play.com", "correct horse")
		require.NoError(t, err)

		_, err = provider.Validate(ctx, token)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("expired token", func(t *testing.T) {
		short := newTestProvider(t, -time.Minute)

		token, err := short.Login(ctx, "admin@ht5play.com", "correct horse")
		require.NoError(t, err)

		_, err = short.Validate(ctx, token)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})
}
