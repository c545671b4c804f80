package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/aliyacapital/seriesdash/internal/errors"
	"github.com/aliyacapital/seriesdash/internal/services"
)

type ctxKey int

const claimsKey ctxKey = 1

func ClaimsFromContext(ctx context.Context) (Claims, bool) {
	c, ok := ctx.Value(claimsKey).(Claims)
	return c, ok
}

func WithClaims(ctx context.Context, c Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

// EmailFromContext returns the signed-in user's email, or "".
func EmailFromContext(ctx context.Context) string {
	c, _ := ClaimsFromContext(ctx)
	return c.Email
}

// Middleware requires a valid bearer token and a live session.
func Middleware(j JWT, prefs services.PreferencesService, log *zap.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := bearerToken(r.Header.Get("Authorization"))
			if tok == "" {
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			claims, err := j.Verify(tok)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid token")
				return
			}
			if err := prefs.CheckSession(r.Context(), claims.Email); err != nil {
				switch {
				case errors.Is(err, errors.ErrSessionExpired):
					writeError(w, http.StatusUnauthorized, "session expired, please sign in again")
				case errors.Is(err, errors.ErrUnauthorized):
					writeError(w, http.StatusUnauthorized, "not signed in")
				default:
					log.Error("session check failed", zap.String("email", claims.Email), zap.Error(err))
					writeError(w, http.StatusInternalServerError, "session check failed")
				}
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// DevMiddleware signs every request in as email. It is used when auth is
// disabled for local development.
func DevMiddleware(email string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), Claims{Email: email})))
		})
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func bearerToken(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	parts := strings.SplitN(v, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
