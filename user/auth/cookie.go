package auth

import (
	"net/http"
	"time"
)

// TokenCookieName is the single persisted session entry.
const TokenCookieName = "authToken"

// NewTokenCookie builds the session cookie written on login.
func NewTokenCookie(token string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(TokenDuration),
		MaxAge:   int(TokenDuration / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// ClearTokenCookie builds the expired cookie written on logout.
func ClearTokenCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}
