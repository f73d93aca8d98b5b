package auth

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJwtKey = []byte("test-signing-key")

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT("siti@samira.travel", "Siti", "uuid-1", testJwtKey)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token, testJwtKey)
	require.NoError(t, err)
	assert.Equal(t, "siti@samira.travel", claims.Email)
	assert.Equal(t, "Siti", claims.Nama)
	assert.Equal(t, "uuid-1", claims.UUID)
}

func TestValidateJWTWrongKey(t *testing.T) {
	token, err := GenerateJWT("siti@samira.travel", "Siti", "uuid-1", testJwtKey)
	require.NoError(t, err)

	_, err = ValidateJWT(token, []byte("another-key"))
	assert.Error(t, err)
}

func TestValidateJWTExpired(t *testing.T) {
	claims := &JwtClaims{
		Email: "siti@samira.travel",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testJwtKey)
	require.NoError(t, err)

	_, err = ValidateJWT(token, testJwtKey)
	assert.Error(t, err)
}

func TestValidateJWTGarbage(t *testing.T) {
	_, err := ValidateJWT("not-a-token", testJwtKey)
	assert.Error(t, err)
}

func TestTokenCookieLifetimeMatchesToken(t *testing.T) {
	cookie := NewTokenCookie("some-token", true)
	assert.Equal(t, TokenCookieName, cookie.Name)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, int(TokenDuration/time.Second), cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
}

func TestClearTokenCookieExpires(t *testing.T) {
	cookie := ClearTokenCookie(true)
	assert.Equal(t, TokenCookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
