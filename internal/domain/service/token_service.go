package service

import (
	"time"

	"fieldops/internal/domain/entity"
)

// Claims are the identity fields carried by a backend access token.
type Claims struct {
	Subject   string
	Role      entity.Role
	Email     string
	Name      string
	City      *string
	ExpiresAt time.Time
}

// TokenInspector reads the claims of an access token.
// Signatures are not checked; the backend verifies the token on every call.
type TokenInspector interface {
	Inspect(token string) (*Claims, error)
}
