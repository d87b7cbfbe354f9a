package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/config"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/errors"
)

// Claims is the access token payload.
type Claims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

// JWTService issues and validates HS256 access tokens.
type JWTService struct {
	secret []byte
	expiry time.Duration
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	days := cfg.AccessExpDays
	if days <= 0 {
		days = 30
	}
	return &JWTService{
		secret: []byte(cfg.Secret),
		expiry: time.Duration(days) * 24 * time.Hour,
	}
}

func (s *JWTService) Issue(userID uint) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid or expired token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.NewUnauthorizedError("invalid or expired token")
	}
	return claims, nil
}
