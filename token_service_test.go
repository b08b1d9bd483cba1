package accounts_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	accounts "github.com/goliatone/go-accounts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTokenService() *accounts.TokenService {
	return accounts.NewTokenService(
		[]byte("test-signing-key"),
		24,
		"go-accounts",
		[]string{"api"},
		nil,
	)
}

func TestTokenService(t *testing.T) {
	t.Run("round-trips the subject id", func(t *testing.T) {
		sut := makeTokenService()
		subject := uuid.New().String()

		token, err := sut.Sign(subject)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		got, err := sut.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, subject, got)
	})

	t.Run("rejects an empty subject", func(t *testing.T) {
		sut := makeTokenService()

		_, err := sut.Sign("")

		require.Error(t, err)
	})

	t.Run("rejects a token signed with a different key", func(t *testing.T) {
		other := accounts.NewTokenService([]byte("other-key"), 24, "go-accounts", []string{"api"}, nil)
		token, err := other.Sign(uuid.New().String())
		require.NoError(t, err)

		sut := makeTokenService()

		_, err = sut.Verify(token)

		require.Error(t, err)
		assert.True(t, accounts.IsMalformedError(err))
	})

	t.Run("rejects a tampered token", func(t *testing.T) {
		sut := makeTokenService()
		token, err := sut.Sign(uuid.New().String())
		require.NoError(t, err)

		_, err = sut.Verify(token + "x")

		require.Error(t, err)
		assert.True(t, accounts.IsMalformedError(err))
	})

	t.Run("rejects garbage input", func(t *testing.T) {
		sut := makeTokenService()

		_, err := sut.Verify("not a token")

		require.Error(t, err)
		assert.True(t, accounts.IsMalformedError(err))
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := accounts.NewTokenService([]byte("test-signing-key"), -1, "go-accounts", []string{"api"}, nil)
		token, err := expired.Sign(uuid.New().String())
		require.NoError(t, err)

		sut := makeTokenService()

		_, err = sut.Verify(token)

		require.Error(t, err)
		assert.True(t, accounts.IsTokenExpiredError(err))
	})

	t.Run("rejects a mismatched issuer", func(t *testing.T) {
		other := accounts.NewTokenService([]byte("test-signing-key"), 24, "someone-else", []string{"api"}, nil)
		token, err := other.Sign(uuid.New().String())
		require.NoError(t, err)

		sut := makeTokenService()

		_, err = sut.Verify(token)

		require.Error(t, err)
	})

	t.Run("rejects a token signed with the wrong method", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			Issuer:    "go-accounts",
			Audience:  jwt.ClaimStrings{"api"},
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		sut := makeTokenService()

		_, err = sut.Verify(token)

		require.Error(t, err)
	})
}
