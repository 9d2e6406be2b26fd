package middleware

import (
	"context"
	"net/http"

	"github.com/coletaops/coleta/api/internal/model"
)

// TokenVerifier defines the interface for bearer token validation
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

// Auth returns a middleware that guards a handler behind bearer token
// authentication. The Authorization header carries the raw token with no
// scheme prefix; that is the published contract and is preserved as-is.
func Auth(verifier TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := r.Header.Get("Authorization")
			if tok == "" {
				model.NewUnauthorizedError("missing authorization token").WriteJSON(w)
				return
			}

			userID, err := verifier.Verify(tok)
			if err != nil {
				model.NewUnauthorizedError("invalid or expired token").WriteJSON(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID extracts the authenticated user id from context. It returns 0
// when the request did not pass through Auth.
func GetUserID(ctx context.Context) int64 {
	if id, ok := ctx.Value(UserIDKey).(int64); ok {
		return id
	}
	return 0
}
