package middleware

import (
	"slices"
	"strings"

	deliverycontext "fieldops/internal/delivery/context"
	"fieldops/internal/delivery/http/response"
	"fieldops/internal/domain/entity"
	domainerrors "fieldops/internal/domain/errors"
	"fieldops/internal/domain/service"
	"fieldops/internal/usecase"

	"github.com/labstack/echo/v4"
)

const sessionContextKey = "session"

// AuthMiddleware resolves the bearer session of a request and guards routes by role.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// BearerToken extracts the credential of an Authorization header.
func BearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", false
	}

	return strings.TrimSpace(token), true
}

// Authenticate loads the session named by the bearer token. The backend
// token of the session is forwarded on every backend call of the request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID, ok := BearerToken(c)
		if !ok {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Authorization header is missing or malformed")
		}

		ctx := c.Request().Context()
		session, err := m.authUC.Authenticate(ctx, sessionID)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		ctx = deliverycontext.WithCaller(ctx, deliverycontext.Caller{
			SessionID: session.ID,
			UserID:    session.User.ID,
			Role:      session.User.Role.String(),
			City:      session.User.City(),
		})

		c.Set(sessionContextKey, session)
		c.SetRequest(c.Request().WithContext(service.WithAccessToken(ctx, session.Token)))

		return next(c)
	}
}

// RequireRole admits sessions whose user has one of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := GetSession(c)
			if !ok {
				return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Session not found in context")
			}

			if !slices.Contains(roles, session.User.Role) {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Permission denied for role "+session.User.Role.String())
			}

			return next(c)
		}
	}
}

// GetSession returns the session set by Authenticate.
func GetSession(c echo.Context) (*usecase.Session, bool) {
	session, ok := c.Get(sessionContextKey).(*usecase.Session)

	return session, ok && session != nil
}
