// internal/session/session.go
//
// Game session credentials. A credential is an opaque HS256 JWT binding a
// client to one game ID; it is issued once when a game is created and
// verified on every subsequent game request. Handlers only ever see the
// resolved game ID, never the token internals.

package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers malformed, tampered, and expired credentials.
var ErrInvalidToken = errors.New("invalid or expired game token")

// Issuer signs and verifies game session tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer constructs an Issuer. ttl should match the game store's expiry so
// a live game always has a verifiable credential.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for gameID.
func (i *Issuer) Issue(gameID string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"gameId": gameID,
		"iat":    now.Unix(),
		"exp":    now.Add(i.ttl).Unix(),
	})
	return t.SignedString(i.secret)
}

// Verify parses and validates a token, returning the bound game ID.
func (i *Issuer) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid {
		return "", ErrInvalidToken
	}
	id, _ := claims["gameId"].(string)
	if id == "" {
		return "", ErrInvalidToken
	}
	return id, nil
}
