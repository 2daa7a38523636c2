// Package auth issues and verifies the admin tokens checked at the request
// boundary. The allow-list itself lives in the server configuration; this
// package only deals with the tokens carrying the email claim.
package auth

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/adventures/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims extends the registered JWT claims with the admin's email.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// GenerateToken signs an HS256 token carrying the email claim.
func GenerateToken(email string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Email: email,
	})

	return token.SignedString(secretKey)
}

// EmailFromToken verifies the token and returns the email claim.
func EmailFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Email, nil
}
