// Package auth issues and checks the session tokens that gate the back
// office. The token is an HS256 JWT carried in the authToken cookie; its
// presence and validity is the only signal the session gate consults.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenDuration matches the cookie lifetime: a week, never refreshed.
// After that the token silently expires and the next guarded request is
// treated as unauthenticated.
const TokenDuration = 7 * 24 * time.Hour

type JwtClaims struct {
	Email string `json:"email,omitempty"`
	Nama  string `json:"nama,omitempty"`
	UUID  string `json:"uuid,omitempty"`
	jwt.RegisteredClaims
}

type claimsKeyType string

var CtxJwtClaimsKey claimsKeyType = "jwtClaims"

func GenerateJWT(email string, nama string, uuid string, jwtKey []byte) (string, error) {
	expirationTime := time.Now().Add(TokenDuration)

	claims := &JwtClaims{
		Email:            email,
		Nama:             nama,
		UUID:             uuid,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expirationTime)},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

func ValidateJWT(tokenStr string, jwtKey []byte) (*JwtClaims, error) {
	claims := &JwtClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrSignatureInvalid) {
			return nil, errors.New("invalid token signature")
		}
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
