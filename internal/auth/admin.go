// Package auth implements the platform's single-passphrase admin model: the
// shared passphrase is verified against a bcrypt hash and exchanged for a
// short-lived session token guarding the admin routes. There are no user
// accounts or roles.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/config"
)

// ErrInvalidPassphrase is returned when the login passphrase does not match.
var ErrInvalidPassphrase = errors.New("invalid passphrase")

// ErrNotConfigured is returned when no passphrase is configured at all;
// admin access stays locked rather than falling open.
var ErrNotConfigured = errors.New("admin access is not configured")

// AdminAuth verifies the shared passphrase and issues/validates session
// tokens.
type AdminAuth struct {
	passphrase     string
	passphraseHash string
	secret         []byte
	ttl            time.Duration
}

// NewAdminAuth builds the auth component from config. When no token secret
// is configured a random per-process secret is generated, which invalidates
// sessions on restart but never disables signing.
func NewAdminAuth(cfg config.AdminConfig) *AdminAuth {
	secret := cfg.TokenSecret
	if secret == "" {
		secret = uuid.NewString()
	}
	ttl := time.Duration(cfg.TokenTTL) * time.Minute
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &AdminAuth{
		passphrase:     cfg.Passphrase,
		passphraseHash: cfg.PassphraseHash,
		secret:         []byte(secret),
		ttl:            ttl,
	}
}

// Login checks the passphrase and returns a signed session token.
func (a *AdminAuth) Login(passphrase string) (string, error) {
	switch {
	case a.passphraseHash != "":
		if err := bcrypt.CompareHashAndPassword([]byte(a.passphraseHash), []byte(passphrase)); err != nil {
			return "", ErrInvalidPassphrase
		}
	case a.passphrase != "":
		if subtle.ConstantTimeCompare([]byte(a.passphrase), []byte(passphrase)) != 1 {
			return "", ErrInvalidPassphrase
		}
	default:
		return "", ErrNotConfigured
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a session token.
func (a *AdminAuth) Validate(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return errors.New("invalid session token")
	}
	return nil
}

// Middleware guards admin routes with a Bearer session token.
func (a *AdminAuth) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == "" || tokenString == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    http.StatusUnauthorized,
				"message": "missing admin session token",
			})
			return
		}

		if err := a.Validate(tokenString); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    http.StatusUnauthorized,
				"message": "invalid or expired admin session",
			})
			return
		}

		c.Next()
	}
}
