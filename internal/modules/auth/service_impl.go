package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when the admin password does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Config holds the admin gate settings. Exactly one of PasswordHash
// (bcrypt) or Password (plaintext, dev only) must be set.
type Config struct {
	PasswordHash string
	Password     string
	JWTSecret    string
	TokenTTL     time.Duration
}

type service struct {
	cfg Config
}

// NewService creates a new admin auth service.
func NewService(cfg Config) Service {
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	return &service{cfg: cfg}
}

func (s *service) Login(ctx context.Context, password string) (string, error) {
	if !s.passwordMatches(password) {
		return "", ErrInvalidCredentials
	}

	claims := &jwt.StandardClaims{
		Subject:   "admin",
		ExpiresAt: time.Now().Add(s.cfg.TokenTTL).Unix(),
		IssuedAt:  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *service) passwordMatches(password string) bool {
	if s.cfg.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(password)) == nil
	}
	if s.cfg.Password != "" {
		return subtle.ConstantTimeCompare([]byte(s.cfg.Password), []byte(password)) == 1
	}
	return false
}

func (s *service) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if raw == "" || raw == r.Header.Get("Authorization") {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		claims := &jwt.StandardClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(s.cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid || claims.Subject != "admin" {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
