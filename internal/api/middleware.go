package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"wardrobe-api/internal/api/handlers"
	"wardrobe-api/internal/apperrors"
	"wardrobe-api/internal/auth"
	"wardrobe-api/internal/services"
)

// requestLogger observes every request and forwards it, logging method, path,
// status and duration once the handler returns.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// recoverer converts handler panics into the uniform 500 JSON response.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				log.Error().Interface("panic", rvr).Str("path", r.URL.Path).Msg("Recovered from panic")
				handlers.RespondError(w, fmt.Errorf("internal server error"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// bearerAuth returns the guard protecting gated routes. It requires an
// "Authorization: Bearer <token>" header whose token verifies and whose
// username still resolves to a stored user, then attaches the claims to the
// request context. Any failure short-circuits with an authentication error;
// the wrapped cause stays server-side.
func bearerAuth(tokens *auth.TokenManager, users services.UserServiceProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				handlers.RespondError(w, fmt.Errorf("%w: missing bearer token", apperrors.ErrAuthentication))
				return
			}

			claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				handlers.RespondError(w, fmt.Errorf("%w: %v", apperrors.ErrAuthentication, err))
				return
			}

			if _, err := users.GetUserByUsername(claims.Username); err != nil {
				handlers.RespondError(w, fmt.Errorf("%w: token subject no longer exists", apperrors.ErrAuthentication))
				return
			}

			ctx := context.WithValue(r.Context(), auth.ClaimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
