package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportshub/internal/model"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret")
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, "a@x.com", model.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.WithinDuration(t, time.Now().Add(TokenExpiry), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_TokensDifferAcrossIssuance(t *testing.T) {
	svc := NewJWTService("test-secret")
	userID := uuid.New()

	first, err := svc.GenerateToken(userID, "a@x.com", model.RoleStudent)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond) // IssuedAt has second resolution
	second, err := svc.GenerateToken(userID, "a@x.com", model.RoleStudent)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	_, err = svc.ValidateToken(first)
	assert.NoError(t, err)
	_, err = svc.ValidateToken(second)
	assert.NoError(t, err)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").GenerateToken(uuid.New(), "a@x.com", model.RoleAdmin)
	require.NoError(t, err)

	_, err = NewJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	secret := "test-secret"
	claims := &Claims{
		UserID: uuid.New(),
		Email:  "a@x.com",
		Role:   model.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewJWTService(secret).ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := NewJWTService("test-secret")
	token, err := svc.GenerateToken(uuid.New(), "a@x.com", model.RoleStudent)
	require.NoError(t, err)

	last := "x"
	if token[len(token)-1] == 'x' {
		last = "y"
	}
	tampered := token[:len(token)-1] + last
	_, err = svc.ValidateToken(tampered)
	assert.Error(t, err)
}
