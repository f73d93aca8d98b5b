package auth

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5/request"
)

// GetSessionMiddleware resolves the caller's session on every request.
// The authToken cookie is checked first, then a bearer header (used by
// the terminal client). A missing, expired or otherwise invalid token
// all land in the same place: nil claims in the context — the gate does
// not distinguish "expired" from "never logged in".
func GetSessionMiddleware(jwtKey []byte) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), nil)))
				return
			}

			claims, err := ValidateJWT(token, jwtKey)
			if err != nil {
				next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), nil)))
				return
			}

			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		}
		return http.HandlerFunc(hfn)
	}
}

func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(TokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	token, err := request.BearerExtractor{}.ExtractToken(r)
	if err != nil {
		return ""
	}
	return token
}

func withClaims(ctx context.Context, claims *JwtClaims) context.Context {
	return context.WithValue(ctx, CtxJwtClaimsKey, claims)
}

// ClaimsFromContext returns the session claims, or nil when the caller
// is unauthenticated.
func ClaimsFromContext(ctx context.Context) *JwtClaims {
	claims, ok := ctx.Value(CtxJwtClaimsKey).(*JwtClaims)
	if !ok {
		return nil
	}
	return claims
}
