package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL is the fixed validity window of issued tokens.
const TokenTTL = time.Hour

var (
	// ErrMissingToken is returned when no token was presented at all.
	ErrMissingToken = errors.New("missing bearer token")
	// ErrInvalidToken is returned for malformed tokens and signature mismatches.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned for structurally valid tokens past their expiry.
	ErrExpiredToken = errors.New("token expired")
)

// Claims are the signed assertions embedded in a token at issuance.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Principal is the identity derived from a verified token. It lives for the
// duration of one request and is never persisted.
type Principal struct {
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Issue signs a token carrying the email claim, valid for ttl from now.
// This is the only place the secret is used for writing.
func Issue(email string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
	})
	return token.SignedString(secret)
}

// Verify checks the token's signature and expiry against the secret and
// returns the Principal embedded at issuance. It is a pure function of
// token, secret, and the current time.
func Verify(tokenString string, secret []byte) (*Principal, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	p := &Principal{Email: claims.Email}
	if claims.IssuedAt != nil {
		p.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		p.ExpiresAt = claims.ExpiresAt.Time
	}
	return p, nil
}
