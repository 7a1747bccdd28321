package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// default lifetime of an issued token
const DefaultTokenTTL = 7 * 24 * time.Hour

// decode failure kinds. Handlers collapse all three into one
// client-visible outcome; the distinction exists for server-side logs.
var (
	ErrMalformed        = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrExpired          = errors.New("token expired")
)

// Codec signs and verifies identity tokens with a single server-wide
// secret. The secret and clock are fixed at construction so the codec
// is testable with fixed secrets and fixed timestamps.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// creates a token codec. The secret must be non-empty; an empty secret
// is a configuration error, not a downgrade to unsigned tokens.
func NewCodec(secret string, ttl time.Duration) (*Codec, error) {
	return NewCodecWithClock(secret, ttl, time.Now)
}

// creates a token codec with an injected clock, used by tests to pin
// issuance and verification times
func NewCodecWithClock(secret string, ttl time.Duration, now func() time.Time) (*Codec, error) {
	if secret == "" {
		return nil, fmt.Errorf("token secret must not be empty")
	}

	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	return &Codec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}, nil
}

// creates a signed token for the user, valid for the codec's TTL
func (c *Codec) Encode(userID, email string) (string, error) {
	if userID == "" || email == "" {
		return "", fmt.Errorf("token claims require a user id and email")
	}

	now := c.now()

	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// validates a token and returns its claims. Claims are never trusted
// before the signature verifies.
func (c *Codec) Decode(tokenString string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)

	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		return c.secret, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		default:
			return nil, ErrMalformed
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrMalformed
	}

	// a verified token without a subject is still unusable downstream
	if claims.UserID == "" || claims.Email == "" {
		return nil, ErrMalformed
	}

	return claims, nil
}
