package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
)

type contextKey struct{}

var sellerIDKey contextKey

// WithSellerID returns a context carrying the authenticated seller id.
func WithSellerID(ctx context.Context, sellerID string) context.Context {
	return context.WithValue(ctx, sellerIDKey, sellerID)
}

// SellerIDFrom returns the authenticated seller id threaded through the
// request context by Middleware.
func SellerIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(sellerIDKey).(string)
	return id
}

// Middleware returns a chi middleware that validates the Bearer token and
// stores the seller id in the request context. Every seller-scoped query
// reads its seller id from there, never from the request body.
func Middleware(jwtKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenString := strings.TrimPrefix(header, "Bearer ")
			if tokenString == "" || tokenString == header {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}

			claims := &jwt.StandardClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
				return jwtKey, nil
			})
			if err != nil || !token.Valid || claims.Subject == "" {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSellerID(r.Context(), claims.Subject)))
		})
	}
}
