package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }

func TestTokenService_IssueVerify(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), 0)
	tok, err := svc.Issue(42, "alice")
	require.NoError(t, err)

	id, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id.UserID)
	assert.Equal(t, "alice", id.Username)
}

func TestTokenService_ExpiryIsSevenDays(t *testing.T) {
	issued := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := NewTokenService([]byte("s"), 0).WithClock(fixedClock(issued))
	tok, err := svc.Issue(1, "bob")
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)
	assert.Equal(t, issued.Add(DefaultTTL), claims.ExpiresAt.Time.UTC())
	assert.Equal(t, issued, claims.IssuedAt.Time.UTC())

	// за минуту до истечения, валиден
	svc.WithClock(fixedClock(issued.Add(DefaultTTL - time.Minute)))
	_, err = svc.Verify(tok)
	assert.NoError(t, err)

	// после истечения, ErrInvalidOrExpired, хотя подпись верна
	svc.WithClock(fixedClock(issued.Add(DefaultTTL + time.Second)))
	_, err = svc.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidOrExpired)
}

func TestTokenService_Rejects(t *testing.T) {
	svc := NewTokenService([]byte("secret-A"), time.Hour)
	other := NewTokenService([]byte("secret-B"), time.Hour)
	tok, err := svc.Issue(5, "eve")
	require.NoError(t, err)

	// чужая подпись
	_, err = other.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidOrExpired)

	// мусор и пустая строка
	for _, bad := range []string{"", "garbage", "a.b.c"} {
		_, err = svc.Verify(bad)
		assert.ErrorIs(t, err, ErrInvalidOrExpired)
	}

	// подменённый payload
	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	forged := parts[0] + "." + parts[1] + "x." + parts[2]
	_, err = svc.Verify(forged)
	assert.ErrorIs(t, err, ErrInvalidOrExpired)

	// alg=none
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		UserID:           5,
	})
	none, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.Verify(none)
	assert.ErrorIs(t, err, ErrInvalidOrExpired)
}

func TestTokenService_MissingExpiryRejected(t *testing.T) {
	secret := []byte("s")
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: 9, Username: "x"})
	tok, err := raw.SignedString(secret)
	require.NoError(t, err)

	_, err = NewTokenService(secret, 0).Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidOrExpired)
}
