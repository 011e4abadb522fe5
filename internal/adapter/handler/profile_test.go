package handler

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileToken_RoundTrip(t *testing.T) {
	id := uuid.NewString()

	token, err := signProfileToken(id, []byte("secret"), time.Now())
	require.NoError(t, err)

	got, err := parseProfileToken(token, []byte("secret"))
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestProfileToken_Rejects(t *testing.T) {
	id := uuid.NewString()

	valid, err := signProfileToken(id, []byte("secret"), time.Now())
	require.NoError(t, err)

	expired, err := signProfileToken(id, []byte("secret"), time.Now().Add(-2*profileCookieTTL))
	require.NoError(t, err)

	notAUUID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "../admin",
		Issuer:  profileIssuer,
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	otherIssuer, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: id,
		Issuer:  "someone-else",
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := map[string]struct {
		token  string
		secret string
	}{
		"wrong secret": {valid, "other"},
		"expired":      {expired, "secret"},
		"bad subject":  {notAUUID, "secret"},
		"wrong issuer": {otherIssuer, "secret"},
		"garbage":      {"not-a-token", "secret"},
		"bare uuid":    {id, "secret"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parseProfileToken(tt.token, []byte(tt.secret))
			assert.Error(t, err)
		})
	}
}
