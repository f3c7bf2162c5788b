// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"fieldops/internal/domain/entity"
)

// Session is an authenticated client. ID is the credential the client
// presents; Token is the backend access token forwarded on its behalf.
type Session struct {
	ID        string      `json:"id"`
	Token     string      `json:"token"`
	User      entity.User `json:"user"`
	CreatedAt time.Time   `json:"createdAt"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// Expired reports whether the session is no longer usable at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Identity is what a client learns about itself after login.
type Identity struct {
	User  entity.User   `json:"user"`
	Views []entity.View `json:"views"`
}

// AuthUsecase opens and closes sessions against the backend.
type AuthUsecase interface {
	// Login exchanges credentials for a session.
	Login(ctx context.Context, email, password string) (*Session, error)
	// Authenticate returns the live session with the given ID.
	Authenticate(ctx context.Context, sessionID string) (*Session, error)
	// Logout ends the session and releases everything held for it.
	Logout(ctx context.Context, sessionID string) error
	// Identity describes the session's user and the views it may open.
	Identity(session *Session) Identity
}
