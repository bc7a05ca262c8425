package middleware

import (
	"errors"
	"net/http"

	"github.com/hongminglow/library-be/internal/auth"
	"github.com/hongminglow/library-be/internal/http/respond"
	"github.com/hongminglow/library-be/internal/models"
)

// Middleware decorates a handler.
type Middleware func(http.Handler) http.Handler

// Chain applies mws so that the first one runs outermost.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// Authenticate rejects requests without a valid bearer token and stores the caller in the context.
func Authenticate(tokens *auth.TokenManager) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, err := tokens.Authenticate(r.Header.Get("Authorization"))
			if err != nil {
				respond.Error(w, http.StatusUnauthorized, authMessage(err))
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithCaller(r.Context(), caller)))
		})
	}
}

// RequirePermission lets the request through only if the authenticated caller holds perm.
// It must run after Authenticate.
func RequirePermission(perm models.Permission) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, ok := auth.CallerFrom(r.Context())
			if !ok {
				respond.Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if !caller.Can(perm) {
				respond.Error(w, http.StatusForbidden, "Forbidden: insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func authMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrMissingCredential):
		return "Missing Authorization header"
	case errors.Is(err, auth.ErrMalformedCredential):
		return "Invalid Authorization format"
	default:
		return "Invalid or expired token"
	}
}
