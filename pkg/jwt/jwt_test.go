package jwt

import (
	"testing"
	"time"

	"analytics-srv/pkg/scope"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNew_ShortSecret(t *testing.T) {
	_, err := New(Config{SecretKey: "short"})
	assert.Error(t, err)
}

func TestCreateAndVerify(t *testing.T) {
	m, err := New(Config{SecretKey: testSecret, Issuer: "analytics-srv", TTL: time.Hour})
	require.NoError(t, err)

	token, err := m.CreateToken(scope.Payload{UserID: "u-1", Username: "ana", Role: "admin"})
	require.NoError(t, err)

	p, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", p.UserID)
	assert.Equal(t, "ana", p.Username)
	assert.Equal(t, "admin", p.Role)
	assert.Equal(t, "analytics-srv", p.Issuer)
	assert.NotEmpty(t, p.Id)
	assert.Greater(t, p.ExpiresAt, p.IssuedAt)
}

func TestVerify_Rejects(t *testing.T) {
	m, err := New(Config{SecretKey: testSecret, Issuer: "analytics-srv"})
	require.NoError(t, err)
	other, err := New(Config{SecretKey: testSecret + "x", Issuer: "analytics-srv"})
	require.NoError(t, err)

	foreign, err := other.CreateToken(scope.Payload{UserID: "u-1"})
	require.NoError(t, err)
	_, err = m.Verify(foreign)
	assert.Error(t, err)

	_, err = m.Verify("not-a-token")
	assert.Error(t, err)

	expired, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   "u-1",
			Issuer:    "analytics-srv",
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = m.Verify(expired)
	assert.Error(t, err)

	_, err = m.CreateToken(scope.Payload{})
	assert.Error(t, err)
}
