// Package session issues and verifies the signed bearer tokens that scope
// every request to an authenticated account.
//
// Tokens carry identity and the aggregate balances surfaced on login; game
// state is never frozen into a token and is always read live from storage.
package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/duongpm13/cat-battle/internal/platform/errors"
)

// ErrTokenInvalid indicates a bearer token failed verification.
var ErrTokenInvalid = apperrors.New(apperrors.CodeSessionInvalid, "session token is invalid")

// Identity is the verified account identity embedded in a session token.
type Identity struct {
	AccountID   string
	TelegramID  string
	DisplayName string
	Ton         float64
	Bnb         float64
	Plays       int64
}

// Claims is the JWT claims payload for a session token.
type Claims struct {
	jwt.RegisteredClaims
	AccountID   string  `json:"account_id"`
	TelegramID  string  `json:"telegram_id"`
	DisplayName string  `json:"display_name"`
	Ton         float64 `json:"ton"`
	Bnb         float64 `json:"bnb"`
	Plays       int64   `json:"plays"`
}

// Identity projects the claims back into the identity they were issued for.
func (c Claims) Identity() Identity {
	return Identity{
		AccountID:   c.AccountID,
		TelegramID:  c.TelegramID,
		DisplayName: c.DisplayName,
		Ton:         c.Ton,
		Bnb:         c.Bnb,
		Plays:       c.Plays,
	}
}

// Manager signs and verifies session tokens with a shared HMAC secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewManager builds a session manager. The secret is required and the TTL
// must be positive; now defaults to the real clock.
func NewManager(secret string, ttl time.Duration, now func() time.Time) (*Manager, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, fmt.Errorf("session secret is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	if now == nil {
		now = time.Now
	}
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}, nil
}

// Issue signs a session token for an authenticated identity.
func (m *Manager) Issue(identity Identity) (string, error) {
	if strings.TrimSpace(identity.AccountID) == "" {
		return "", fmt.Errorf("account id is required")
	}
	now := m.now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.AccountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		AccountID:   identity.AccountID,
		TelegramID:  identity.TelegramID,
		DisplayName: identity.DisplayName,
		Ton:         identity.Ton,
		Bnb:         identity.Bnb,
		Plays:       identity.Plays,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses a bearer token and returns its claims.
func (m *Manager) Verify(token string) (Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Claims{}, ErrTokenInvalid
	}
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return Claims{}, apperrors.Wrap(apperrors.CodeSessionInvalid, "session token is invalid", err)
	}
	if strings.TrimSpace(claims.AccountID) == "" {
		return Claims{}, ErrTokenInvalid
	}
	return claims, nil
}
