package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medscope/symptom-checker/internal/models"
)

var testUser = &models.User{
	ID:    "8f14e45f-ea3b-4c1b-9c15-04b1f0a0a3a1",
	Name:  "testuser",
	Email: "test@example.com",
}

func TestMaker_GenerateAndParse(t *testing.T) {
	maker := NewMaker("access-secret", time.Hour)

	tokenStr, err := maker.GenerateToken(testUser)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	claims, err := maker.ParseToken(tokenStr)
	require.NoError(t, err)

	assert.Equal(t, testUser.ID, claims.UserID)
	assert.Equal(t, testUser.Name, claims.Name)
	assert.Equal(t, testUser.Email, claims.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
	assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, 5*time.Second)
}

func TestMaker_ExpiredToken(t *testing.T) {
	maker := NewMaker("access-secret", -time.Minute)

	tokenStr, err := maker.GenerateToken(testUser)
	require.NoError(t, err)

	claims, err := maker.ParseToken(tokenStr)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMaker_TamperedToken(t *testing.T) {
	maker := NewMaker("access-secret", time.Hour)

	tokenStr, err := maker.GenerateToken(testUser)
	require.NoError(t, err)

	tampered := tokenStr[:len(tokenStr)-2] + "xx"

	claims, err := maker.ParseToken(tampered)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// Токен, подписанный access-ключом, не должен проходить проверку
// refresh-ключом и наоборот.
func TestMaker_KeySpacesAreIsolated(t *testing.T) {
	accessMaker := NewMaker("access-secret", time.Hour)
	refreshMaker := NewMaker("refresh-secret", 365*24*time.Hour)

	accessToken, err := accessMaker.GenerateToken(testUser)
	require.NoError(t, err)
	refreshToken, err := refreshMaker.GenerateToken(testUser)
	require.NoError(t, err)

	_, err = refreshMaker.ParseToken(accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = accessMaker.ParseToken(refreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMaker_GarbageToken(t *testing.T) {
	maker := NewMaker("access-secret", time.Hour)

	for _, tokenStr := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := maker.ParseToken(tokenStr)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
