// Package jwt verifies access tokens issued by the auth service.
package jwt

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

// RoleDriver is the role claim carried by driver tokens
const RoleDriver = "driver"

var (
	ErrMissingSubject = errors.New("token has no user_id claim")
	ErrMissingRole    = errors.New("token has no role claim")
)

// Claims are the fields this service reads from an access token
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// ValidateToken checks the HMAC signature, expiry and issuer and returns the claims.
// An empty issuer skips the issuer check.
func ValidateToken(tokenString, secret, issuer string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if issuer != "" && !claims.VerifyIssuer(issuer, true) {
		return nil, fmt.Errorf("unexpected issuer %q", claims.Issuer)
	}
	if claims.UserID == "" {
		return nil, ErrMissingSubject
	}
	if claims.Role == "" {
		return nil, ErrMissingRole
	}
	return claims, nil
}
