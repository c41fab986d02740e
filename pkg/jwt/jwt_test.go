package jwt

import (
	"testing"
	"time"

	"easymed-booking/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *JWTService {
	return NewJWTService(config.JWTConfig{Secret: "test-secret", ClientExpiry: time.Hour})
}

func TestClientToken_RoundTrip(t *testing.T) {
	s := newService()
	clientID := uuid.New()

	token, tokenID, err := s.GenerateClientToken(clientID)
	require.NoError(t, err)
	require.NotEmpty(t, tokenID)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, clientID, claims.ClientID)
	assert.Equal(t, tokenID, claims.TokenID)
	assert.Equal(t, ClientToken, claims.TokenType)
	assert.Equal(t, time.Hour, s.GetClientExpiry())
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := newService().GenerateClientToken(uuid.New())
	require.NoError(t, err)

	other := NewJWTService(config.JWTConfig{Secret: "other", ClientExpiry: time.Hour})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	s := newService()
	token, _, err := s.GenerateClientToken(uuid.New())
	require.NoError(t, err)

	s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = s.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := newService().ValidateToken("not.a.token")
	assert.Error(t, err)
}
