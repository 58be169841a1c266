package utils

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims identify the authenticated actor behind the session cookie.
type Claims struct {
	ActorID         uint   `json:"actor_id"`
	Role            string `json:"role"`
	EstablishmentID uint   `json:"establishment_id"`
	jwt.RegisteredClaims
}

func JWTSecret() string {
	return EnvOrDefault("JWT_SECRET", "")
}

// GenerateToken issues a signed session token for an admin or tenant.
func GenerateToken(actorID uint, role string, establishmentID uint, ttl time.Duration) (string, error) {
	secret := JWTSecret()
	if secret == "" {
		return "", errors.New("JWT_SECRET is not set")
	}
	claims := Claims{
		ActorID:         actorID,
		Role:            role,
		EstablishmentID: establishmentID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
			ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(JWTSecret()), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
