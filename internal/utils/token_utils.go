package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateCallerToken signs an HS256 token whose subject is the caller
// identity accepted by the API.
func GenerateCallerToken(callerID, secret, issuer string, ttl time.Duration) (string, error) {
	if callerID == "" {
		return "", errors.New("caller identity cannot be empty")
	}
	if secret == "" {
		return "", errors.New("signing secret cannot be empty")
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   callerID,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
