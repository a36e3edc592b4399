package session

import (
	"errors"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
)

// TTL is fixed: a token expires exactly 24 hours after issuance and
// expiry is the only invalidation path (no server-side revocation).
const TTL = 24 * time.Hour

var (
	ErrMalformed        = errors.New("malformed token")
	ErrExpired          = errors.New("token expired")
	ErrInvalidSignature = errors.New("invalid token signature")
)

// Codec issues and verifies signed session tokens. Both operations are
// pure computations over the secret, no I/O.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret), ttl: TTL}
}

// Issue signs the caller-supplied payload as-is. The payload is not
// schema-checked; authenticating the caller is the login surface's job.
func (c *Codec) Issue(payload map[string]any) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	now := time.Now().UTC()
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(c.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify returns the decoded payload, without the reserved iat/exp
// fields, so that a round trip through Issue yields the input claims.
func (c *Codec) Verify(raw string) (map[string]any, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if method, ok := t.Method.(*jwt.SigningMethodHMAC); !ok || method.Alg() != "HS256" {
			return nil, ErrInvalidSignature
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, classify(err)
	}
	if !token.Valid {
		return nil, ErrInvalidSignature
	}

	delete(claims, "iat")
	delete(claims, "exp")
	return map[string]any(claims), nil
}

func classify(err error) error {
	var vErr *jwt.ValidationError
	if !errors.As(err, &vErr) {
		return ErrMalformed
	}
	switch {
	case vErr.Errors&jwt.ValidationErrorMalformed != 0:
		return ErrMalformed
	case vErr.Errors&jwt.ValidationErrorExpired != 0:
		return ErrExpired
	default:
		return ErrInvalidSignature
	}
}
