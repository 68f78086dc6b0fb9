package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"luctreports_backend/internals/configs"
	userModel "luctreports_backend/internals/features/users/user/model"
)

// AccessTokenTTL matches the SPA session length.
const AccessTokenTTL = 24 * time.Hour

// GenerateAccessToken issues the bearer token the frontend stores at login.
// Claims carry the identity the role middleware needs.
func GenerateAccessToken(user *userModel.UserModel) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", errors.New("JWT secret is not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     user.Role,
		"jti":      uuid.NewString(),
		"iat":      now.Unix(),
		"exp":      now.Add(AccessTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// TokenExpiry reads exp from an already-verified token string. Used when
// blacklisting on logout so the row can be reaped once the token is dead.
func TokenExpiry(tokenString string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	_, _, err := parser.ParseUnverified(tokenString, claims)
	if err != nil {
		return time.Now().Add(AccessTokenTTL)
	}
	if exp, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(exp), 0)
	}
	return time.Now().Add(AccessTokenTTL)
}
