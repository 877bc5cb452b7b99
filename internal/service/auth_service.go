//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"crypto/ed25519"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mr-tron/base58"
)

const (
	nonceTTL      = 5 * time.Minute
	sessionTTL    = 24 * time.Hour
	loginIssuer   = "launchpad"
	messagePrefix = "launchpad login: "
)

// AuthService issues wallet-bound sessions. A client requests a nonce for
// its wallet, signs the login message with the wallet's ed25519 key, and
// exchanges the signature for a JWT.
type AuthService interface {
	Nonce(ctx context.Context, wallet string) (string, error)
	Login(ctx context.Context, wallet, signature string) (string, error)
	ValidateToken(token string) (string, error)
}

type nonceEntry struct {
	nonce     string
	expiresAt time.Time
}

type authService struct {
	secret []byte

	mu     sync.Mutex
	nonces map[string]nonceEntry
}

// NewAuthService creates an auth service signing sessions with secret. An
// empty secret leaves auth configured-off: endpoints report unavailable
// instead of issuing unverifiable tokens.
func NewAuthService(secret string) AuthService {
	return &authService{
		secret: []byte(secret),
		nonces: make(map[string]nonceEntry),
	}
}

// LoginMessage returns the exact text a wallet must sign for the nonce.
func LoginMessage(nonce string) string {
	return messagePrefix + nonce
}

// Nonce issues a fresh single-use nonce for the wallet, replacing any
// previous one.
func (s *authService) Nonce(ctx context.Context, wallet string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrUnavailable
	}
	if !isValidWallet(wallet) {
		return "", ErrInvalid
	}

	nonce := uuid.NewString()
	now := time.Now()

	s.mu.Lock()
	s.pruneLocked(now)
	s.nonces[wallet] = nonceEntry{nonce: nonce, expiresAt: now.Add(nonceTTL)}
	s.mu.Unlock()

	return nonce, nil
}

// Login verifies the base58 ed25519 signature over the wallet's pending
// login message and returns a session token. The nonce is consumed whether
// or not verification succeeds.
func (s *authService) Login(ctx context.Context, wallet, signature string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrUnavailable
	}
	if !isValidWallet(wallet) {
		return "", ErrInvalid
	}

	now := time.Now()

	s.mu.Lock()
	entry, ok := s.nonces[wallet]
	delete(s.nonces, wallet)
	s.mu.Unlock()

	if !ok || now.After(entry.expiresAt) {
		return "", ErrUnauthorized
	}

	sig, err := base58.Decode(signature)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return "", ErrUnauthorized
	}
	pub, err := base58.Decode(wallet)
	if err != nil || len(pub) != ed25519.PublicKeySize {
		return "", ErrInvalid
	}
	if !ed25519.Verify(ed25519.PublicKey(pub), []byte(LoginMessage(entry.nonce)), sig) {
		return "", ErrUnauthorized
	}

	claims := jwt.RegisteredClaims{
		Issuer:    loginIssuer,
		Subject:   wallet,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// ValidateToken parses a session token and returns the wallet it is bound
// to.
func (s *authService) ValidateToken(token string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrUnavailable
	}

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(loginIssuer))
	if err != nil || !parsed.Valid {
		return "", ErrUnauthorized
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrUnauthorized
	}
	return claims.Subject, nil
}

// pruneLocked drops expired nonces; the caller holds the mutex.
func (s *authService) pruneLocked(now time.Time) {
	for wallet, entry := range s.nonces {
		if now.After(entry.expiresAt) {
			delete(s.nonces, wallet)
		}
	}
}
