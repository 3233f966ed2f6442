// Package auth issues and checks the tokens that name a calculator session.
//
// A token carries only the session ID. Deleting a session revokes every
// token issued for it, even ones that have not expired yet.
package auth

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("authorization token required")
	ErrRevokedToken = fmt.Errorf("%w: session has ended", ErrInvalidToken)
)

// JWTManager signs session tokens and tracks sessions whose tokens were revoked.
type JWTManager struct {
	secretKey []byte
	ttl       time.Duration

	mu sync.Mutex
	// revoked maps session ID to the time its last token expires.
	revoked map[string]time.Time
}

// Claims are the JWT claims of a session token.
type Claims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// NewJWTManager creates a manager whose tokens live for ttl.
func NewJWTManager(secretKey string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		revoked:   make(map[string]time.Time),
	}
}

// Generate signs a token for sessionID.
func (m *JWTManager) Generate(sessionID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Validate parses a token and returns its claims. Tokens of revoked
// sessions fail with ErrRevokedToken.
func (m *JWTManager) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.SessionID == "" {
		return nil, ErrInvalidToken
	}
	if m.isRevoked(claims.SessionID) {
		return nil, ErrRevokedToken
	}
	return claims, nil
}

// Revoke rejects every token issued so far for sessionID.
func (m *JWTManager) Revoke(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	// Entries past their expiry guard nothing; any token they covered is expired.
	for id, until := range m.revoked {
		if now.After(until) {
			delete(m.revoked, id)
		}
	}
	m.revoked[sessionID] = now.Add(m.ttl)
}

func (m *JWTManager) isRevoked(sessionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.revoked[sessionID]
	return ok
}
