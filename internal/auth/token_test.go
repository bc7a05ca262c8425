package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/library-be/internal/models"
)

func testUser() models.User {
	return models.User{
		ID:          42,
		Name:        "Reader",
		Email:       "reader@example.com",
		Permissions: models.Permissions{CanCreateBook: true},
	}
}

func TestGenerateAndParseRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", "library-test", time.Hour)

	token, err := tm.Generate(testUser())
	require.NoError(t, err)

	caller, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), caller.ID)
	assert.Equal(t, "reader@example.com", caller.Email)
	assert.Equal(t, models.Permissions{CanCreateBook: true}, caller.Permissions)
	assert.True(t, caller.Can(models.CanCreateBook))
	assert.False(t, caller.Can(models.CanDeleteBook))
}

func TestParseRejectsWrongSecretAndIssuer(t *testing.T) {
	issuer := NewTokenManager("secret", "library-test", time.Hour)
	token, err := issuer.Generate(testUser())
	require.NoError(t, err)

	_, err = NewTokenManager("other-secret", "library-test", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = NewTokenManager("secret", "someone-else", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = issuer.Parse("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	tm := NewTokenManager("secret", "library-test", time.Minute)
	tm.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := tm.Generate(testUser())
	require.NoError(t, err)

	tm.now = time.Now
	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestParseRejectsOtherSigningMethods(t *testing.T) {
	tm := NewTokenManager("secret", "library-test", time.Hour)
	claims := jwt.MapClaims{
		"iss": "library-test",
		"sub": "1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestAuthenticateHeaderShapes(t *testing.T) {
	tm := NewTokenManager("secret", "library-test", time.Hour)
	token, err := tm.Generate(testUser())
	require.NoError(t, err)

	_, err = tm.Authenticate("")
	assert.ErrorIs(t, err, ErrMissingCredential)

	for _, header := range []string{token, "Basic abc", "Bearer", "Bearer    "} {
		_, err = tm.Authenticate(header)
		assert.ErrorIs(t, err, ErrMalformedCredential, header)
	}

	_, err = tm.Authenticate("Bearer garbage")
	assert.ErrorIs(t, err, ErrInvalidCredential)

	caller, err := tm.Authenticate("bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), caller.ID)
}

func TestHasher(t *testing.T) {
	h := NewHasher(0)

	hash, err := h.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, h.Compare(hash, "secret123"))
	assert.False(t, h.Compare(hash, "secret124"))

	h.CompareDummy("anything")
}
