package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for every verification failure: bad signature,
// expired, malformed, or missing subject. Callers must not be able to tell
// these apart.
var ErrInvalidToken = errors.New("could not validate credentials")

// DefaultTTL is used when Generate is called with a zero ttl.
const DefaultTTL = 15 * time.Minute

// Claims represents the JWT payload: subject (username), issued-at, expiry.
type Claims struct {
	jwt.RegisteredClaims
}

// Manager handles JWT issuance and verification.
type Manager struct {
	secret []byte
	method jwt.SigningMethod
}

// NewManager creates a JWT manager. Algorithm must be one of HS256, HS384,
// HS512; anything else falls back to HS256.
func NewManager(secret, algorithm string) *Manager {
	var method jwt.SigningMethod
	switch algorithm {
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		method = jwt.SigningMethodHS256
	}

	return &Manager{
		secret: []byte(secret),
		method: method,
	}
}

// Generate issues a signed access token with the username as subject.
// A zero ttl falls back to DefaultTTL.
func (m *Manager) Generate(username string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	t := jwt.NewWithClaims(m.method, claims)
	return t.SignedString(m.secret)
}

// Verify checks signature and expiry together and returns the subject
// username. Every failure collapses into ErrInvalidToken.
func (m *Manager) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})

	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
