package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/library-be/internal/auth"
	"github.com/hongminglow/library-be/internal/models"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if caller, ok := auth.CallerFrom(r.Context()); ok {
			w.Header().Set("X-Caller", caller.Email)
		}
		w.WriteHeader(http.StatusTeapot)
	})
}

func serve(h http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/books", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate(t *testing.T) {
	tokens := auth.NewTokenManager("secret", "library-test", time.Hour)
	token, err := tokens.Generate(models.User{ID: 3, Email: "c@example.com"})
	require.NoError(t, err)
	h := Chain(okHandler(), Authenticate(tokens))

	cases := []struct {
		header string
		status int
		body   string
	}{
		{"", http.StatusUnauthorized, `{"error":"Missing Authorization header"}`},
		{"Token abc", http.StatusUnauthorized, `{"error":"Invalid Authorization format"}`},
		{"Bearer abc", http.StatusUnauthorized, `{"error":"Invalid or expired token"}`},
	}
	for _, tc := range cases {
		rec := serve(h, tc.header)
		assert.Equal(t, tc.status, rec.Code, tc.header)
		assert.JSONEq(t, tc.body, rec.Body.String(), tc.header)
	}

	rec := serve(h, "Bearer "+token)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "c@example.com", rec.Header().Get("X-Caller"))
}

func TestRequirePermission(t *testing.T) {
	tokens := auth.NewTokenManager("secret", "library-test", time.Hour)
	gated := Chain(okHandler(), Authenticate(tokens), RequirePermission(models.CanCreateBook))

	plain, err := tokens.Generate(models.User{ID: 1, Email: "plain@example.com"})
	require.NoError(t, err)
	privileged, err := tokens.Generate(models.User{ID: 2, Email: "admin@example.com", Permissions: models.Permissions{CanCreateBook: true}})
	require.NoError(t, err)

	rec := serve(gated, "Bearer "+plain)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Forbidden: insufficient permissions"}`, rec.Body.String())

	rec = serve(gated, "Bearer "+privileged)
	assert.Equal(t, http.StatusTeapot, rec.Code)

	rec = serve(Chain(okHandler(), RequirePermission(models.CanCreateBook)), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestLoggingRequestID(t *testing.T) {
	h := Chain(okHandler(), Logging(slog.New(slog.NewTextHandler(io.Discard, nil))))

	rec := serve(h, "")
	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err)

	inbound := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, inbound)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, inbound, rec.Header().Get(RequestIDHeader))
}

func TestCORS(t *testing.T) {
	h := CORS([]string{"https://app.example.com"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/books", nil)
	req.Header.Set("Origin", "https://APP.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://APP.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
