package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session tokens are HS256 JWTs that wrap a random server-held session id.
// The signature stops a client from minting or altering a token, but the
// token alone never authorizes anything: the middleware resolves the sid
// against the sessions table and takes the identity from there, so a
// deleted or expired row ends the session even while the token is fresh.

// ErrInvalidToken is returned when a session token fails signature or
// claim validation.
var ErrInvalidToken = errors.New("invalid session token")

// NewSessionID returns a 64-character hex session id from 32 bytes of
// cryptographically secure random data.
func NewSessionID() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// NewSessionToken signs a token carrying the session id, the user id and
// the session's absolute expiry.
func NewSessionToken(secret, sid string, userID uint64, exp time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"sub": userID,
		"exp": exp.Unix(),
		"iat": time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseSessionToken verifies the signature and expiry of raw and returns
// the embedded session id.
func ParseSessionToken(secret, raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", ErrInvalidToken
	}
	return sid, nil
}
