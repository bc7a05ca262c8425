package auth

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hongminglow/library-be/internal/models"
)

var (
	// ErrMissingCredential means no Authorization header was sent.
	ErrMissingCredential = errors.New("missing authorization header")
	// ErrMalformedCredential means the header is not of the form "Bearer <token>".
	ErrMalformedCredential = errors.New("invalid authorization format")
	// ErrInvalidCredential covers bad signatures, expired tokens and unreadable claims.
	ErrInvalidCredential = errors.New("invalid or expired token")
)

// Claims is the JWT payload issued at login. The embedded permissions are trusted
// until the token expires; they are not re-read from the user record.
type Claims struct {
	Email       string             `json:"email"`
	Permissions models.Permissions `json:"permissions"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies signed JWTs for authenticated users.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager creates a manager with the provided secret, issuer, and lifetime.
func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Generate issues a signed JWT carrying the user's id, email and permissions.
func (t *TokenManager) Generate(user models.User) (string, error) {
	now := t.now()
	claims := Claims{
		Email:       user.Email,
		Permissions: user.Permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse verifies the token and returns the caller it was issued to.
func (t *TokenManager) Parse(raw string) (Caller, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return Caller{}, ErrInvalidCredential
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return Caller{}, ErrInvalidCredential
	}
	return Caller{ID: id, Email: claims.Email, Permissions: claims.Permissions}, nil
}

// Authenticate extracts the bearer token from an Authorization header value and verifies it.
func (t *TokenManager) Authenticate(header string) (Caller, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return Caller{}, ErrMissingCredential
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return Caller{}, ErrMalformedCredential
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return Caller{}, ErrMalformedCredential
	}
	return t.Parse(token)
}
