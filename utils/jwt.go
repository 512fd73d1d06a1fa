package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		// Default untuk development, set JWT_SECRET di production
		secret = "RestoOrderDevSecret"
	}
	jwtSecret = []byte(secret)
}

type CustomerClaims struct {
	CustomerID uint `json:"customer_id"`
	jwt.RegisteredClaims
}

// GenerateToken membuat token sesi untuk customer yang berhasil login.
func GenerateToken(customerID uint) (string, error) {
	claims := &CustomerClaims{
		CustomerID: customerID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "RestoOrderAPI",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ParseToken(tokenString string) (*CustomerClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomerClaims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(*CustomerClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
