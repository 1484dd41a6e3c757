package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// jwtSecretKey signs and verifies tokens. Overridable via the JWT_SECRET
// environment variable; the fallback is for local development only.
var jwtSecretKey = []byte(Getenv("JWT_SECRET", "rei-do-lanche-dev-secret-change-me"))

// AccessTokenTTL is long-lived on purpose: a POS terminal logs in once at
// open and keeps the token for the whole business day.
const AccessTokenTTL = 24 * time.Hour

// Claims defines the JWT claims carried by terminal tokens.
type Claims struct {
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	jwt.RegisteredClaims
}

// GenerateAccessToken creates a new JWT access token for a store account.
func GenerateAccessToken(accountID, accountName string) (string, error) {
	expirationTime := time.Now().Add(AccessTokenTTL)
	claims := &Claims{
		AccountID:   accountID,
		AccountName: accountName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "rei-do-lanche-backend",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtSecretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token string and returns its
// claims if the token is valid.
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecretKey, nil
	})

	if err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
