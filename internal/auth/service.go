package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents JWT token claims issued by the identity provider
type AuthClaims struct {
	Email string `json:"email,omitempty" example:"jane@example.com"`
	jwt.RegisteredClaims
}

// UserID returns the subject of the token
func (c *AuthClaims) UserID() string {
	return c.Subject
}

// TokenService validates platform user tokens
type TokenService struct {
	secret []byte
	issuer string
}

// NewTokenService creates a token service signing with the given HMAC secret
func NewTokenService(secret string) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("JWT secret is required")
	}
	return &TokenService{secret: []byte(secret), issuer: "app-builder-backend"}, nil
}

// GenerateJWT issues a token for the given user. Used by local tooling and tests.
func (s *TokenService) GenerateJWT(userID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *TokenService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}
	return claims, nil
}
