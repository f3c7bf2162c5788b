// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"fieldops/config"
	deliverycontext "fieldops/internal/delivery/context"
	domainerrors "fieldops/internal/domain/errors"
	"fieldops/internal/domain/service"
	"fieldops/internal/errors"
	"fieldops/internal/usecase"

	"github.com/google/uuid"
)

const sessionKeyPrefix = "session/"

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

// authService implements the AuthUsecase interface.
type authService struct {
	auth      service.AuthGateway
	inspector service.TokenInspector
	store     service.KVStore
	state     usecase.StateUsecase
	capture   usecase.CaptureUsecase
	ttl       time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	auth service.AuthGateway,
	inspector service.TokenInspector,
	store service.KVStore,
	state usecase.StateUsecase,
	captureUC usecase.CaptureUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	ttl := time.Duration(0)
	if cfg.Capture != nil {
		ttl = cfg.Capture.SessionTTL
	}

	return &authService{
		auth:      auth,
		inspector: inspector,
		store:     store,
		state:     state,
		capture:   captureUC,
		ttl:       ttl,
		logger:    logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login exchanges credentials for a backend token and stores a session for it.
func (srv *authService) Login(ctx context.Context, email, password string) (*usecase.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and password are required")
	}

	token, err := srv.auth.Login(ctx, email, password)
	if err != nil {
		var backendErr *domainerrors.BackendError
		if errors.As(err, &backendErr) && backendErr.Status() == http.StatusUnauthorized {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, err
	}

	claims, err := srv.inspector.Inspect(token)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	if !claims.ExpiresAt.IsZero() && !now.Before(claims.ExpiresAt) {
		return nil, domainerrors.ErrUnauthorized.WithDetails("token already expired")
	}

	session := &usecase.Session{
		ID:        uuid.New().String(),
		Token:     token,
		CreatedAt: now,
		ExpiresAt: claims.ExpiresAt,
	}
	session.User.ID = claims.Subject
	session.User.Email = claims.Email
	session.User.Name = claims.Name
	session.User.Role = claims.Role
	session.User.AssignedCity = claims.City

	if session.ExpiresAt.IsZero() && srv.ttl > 0 {
		session.ExpiresAt = now.Add(srv.ttl)
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := srv.store.Set(ctx, sessionKey(session.ID), data); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Session opened",
		slog.String("user_id", session.User.ID),
		slog.String("role", session.User.Role.String()),
	)

	return session, nil
}

// Authenticate loads a session, discarding it when expired.
func (srv *authService) Authenticate(ctx context.Context, sessionID string) (*usecase.Session, error) {
	if sessionID == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	data, ok, err := srv.store.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domainerrors.ErrUnauthorized.WithDetails("unknown session")
	}

	var session usecase.Session
	if err := json.Unmarshal(data, &session); err != nil {
		srv.log(ctx).Warn("Discarding unreadable session", slog.String("error", err.Error()))
		if err := srv.store.Clear(ctx, sessionKey(sessionID)); err != nil {
			srv.log(ctx).Warn("Failed to clear unreadable session", slog.String("error", err.Error()))
		}

		return nil, domainerrors.ErrUnauthorized.WithDetails("unknown session")
	}

	if session.Expired(srv.now()) {
		srv.release(ctx, sessionID)

		return nil, domainerrors.ErrUnauthorized.WithDetails("session expired")
	}

	return &session, nil
}

// Logout clears the session and whatever was held for it.
func (srv *authService) Logout(ctx context.Context, sessionID string) error {
	if err := srv.store.Clear(ctx, sessionKey(sessionID)); err != nil {
		return err
	}

	srv.state.Drop(sessionID)
	srv.capture.End(sessionID)
	srv.log(ctx).Info("Session closed")

	return nil
}

func (srv *authService) release(ctx context.Context, sessionID string) {
	if err := srv.store.Clear(ctx, sessionKey(sessionID)); err != nil {
		srv.log(ctx).Warn("Failed to clear expired session", slog.String("error", err.Error()))
	}

	srv.state.Drop(sessionID)
	srv.capture.End(sessionID)
}

// Identity describes the session's user and the views it may open.
func (srv *authService) Identity(session *usecase.Session) usecase.Identity {
	return usecase.Identity{
		User:  session.User,
		Views: session.User.Role.Views(),
	}
}
