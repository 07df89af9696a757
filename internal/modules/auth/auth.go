package auth

import (
	"context"
	"net/http"
)

// Service defines the interface for the admin password gate.
type Service interface {
	// Login checks the admin password and returns a signed session token.
	Login(ctx context.Context, password string) (string, error)

	// RequireAdmin is chi middleware that rejects requests without a valid
	// admin session token.
	RequireAdmin(next http.Handler) http.Handler
}
