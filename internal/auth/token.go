package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	// ErrInvalidCredential covers malformed tokens and bad signatures.
	ErrInvalidCredential = errors.New("invalid credential")
	// ErrExpiredCredential covers tokens past their expiry.
	ErrExpiredCredential = errors.New("expired credential")
)

// TokenIssuer signs and verifies bearer tokens with a shared secret.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

type claims struct {
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// Issue creates a signed token carrying the user id as subject.
func (t *TokenIssuer) Issue(userID, username string) (string, error) {
	now := time.Now()
	c := claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(t.secret)
}

// Verify checks signature and expiry and returns the user id. Malformed
// input never panics; failures come back as tagged errors.
func (t *TokenIssuer) Verify(token string) (string, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidCredential
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredCredential
		}
		return "", ErrInvalidCredential
	}
	if !parsed.Valid || c.Subject == "" {
		return "", ErrInvalidCredential
	}
	return c.Subject, nil
}
