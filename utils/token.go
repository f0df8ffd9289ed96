package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers malformed, unsigned and expired tokens alike.
var ErrInvalidToken = errors.New("invalid or expired token")

// GenerateToken signs a token embedding the user id, valid for 7 days
// unless JWT_EXPIRY overrides it.
func GenerateToken(userID int) (string, error) {
	expiry, err := time.ParseDuration(getEnv("JWT_EXPIRY", "168h"))
	if err != nil {
		expiry = 168 * time.Hour
	}

	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(expiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(getEnv("JWT_SECRET", "secret")))
}

// VerifyToken returns the embedded user id, or ErrInvalidToken. It never
// panics and never surfaces parser internals.
func VerifyToken(tokenString string) (int, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(getEnv("JWT_SECRET", "secret")), nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, ErrInvalidToken
	}

	return int(id), nil
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
