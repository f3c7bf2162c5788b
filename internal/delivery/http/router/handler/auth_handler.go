package handler

import (
	"log/slog"
	"net/http"
	"time"

	"fieldops/internal/delivery/http/middleware"
	"fieldops/internal/delivery/http/response"
	"fieldops/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves login, logout and identity.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the session credential and the caller's identity
type LoginResponse struct {
	SessionID string           `json:"sessionId"`
	ExpiresAt *time.Time       `json:"expiresAt,omitempty"`
	Identity  usecase.Identity `json:"identity"`
}

// Login exchanges credentials for a session
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	session, err := h.authUC.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := LoginResponse{
		SessionID: session.ID,
		Identity:  h.authUC.Identity(session),
	}
	if !session.ExpiresAt.IsZero() {
		expiresAt := session.ExpiresAt
		resp.ExpiresAt = &expiresAt
	}

	return response.Success(c, http.StatusOK, resp)
}

// Logout ends the bearer session; unknown sessions are ignored
func (h *AuthHandler) Logout(c echo.Context) error {
	sessionID, ok := middleware.BearerToken(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing or malformed")
	}

	if err := h.authUC.Logout(c.Request().Context(), sessionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Logged out"})
}

// Me returns the identity and allowed views of the caller
func (h *AuthHandler) Me(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Session not found in context")
	}

	return response.Success(c, http.StatusOK, h.authUC.Identity(session))
}
