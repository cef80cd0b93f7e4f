// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"churchhub_backend/internals/configs"
	userModel "churchhub_backend/internals/features/users/user/model"
)

var ErrMissingSecret = errors.New("JWT_SECRET is not configured")

// IssueToken signs an HS256 access token carrying the user id and current role.
// The role claim is informational; the auth middleware re-reads it from the DB.
func IssueToken(user *userModel.UserModel, now time.Time) (string, time.Time, error) {
	if configs.JWTSecret == "" {
		return "", time.Time{}, ErrMissingSecret
	}
	ttl := configs.TokenTTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	exp := now.Add(ttl)

	claims := jwt.MapClaims{
		"id":   user.ID.String(),
		"nome": user.Nome,
		"role": user.Role(),
		"iat":  now.Unix(),
		"exp":  exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// TokenExpiry returns the exp of a token signed by us. Used on logout so the
// blacklist row lives exactly as long as the token would.
func TokenExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTSecret), nil
	}); err != nil {
		return time.Time{}, err
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, errors.New("token has no exp")
	}
	return time.Unix(int64(exp), 0), nil
}
