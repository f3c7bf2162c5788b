package backend

import (
	"strings"
	"time"

	"fieldops/internal/domain/entity"
	domainerrors "fieldops/internal/domain/errors"
	"fieldops/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
)

// accessClaims mirrors the claims the backend puts in its access tokens.
type accessClaims struct {
	Role         string  `json:"role"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	AssignedCity *string `json:"assignedCity,omitempty"`
	jwt.RegisteredClaims
}

type claimsInspector struct {
	parser *jwt.Parser
}

// NewTokenInspector creates an inspector that decodes access tokens without
// checking their signature.
func NewTokenInspector() service.TokenInspector {
	return &claimsInspector{parser: jwt.NewParser()}
}

// Inspect extracts the subject and role of token.
func (i *claimsInspector) Inspect(token string) (*service.Claims, error) {
	var claims accessClaims
	if _, _, err := i.parser.ParseUnverified(strings.TrimSpace(token), &claims); err != nil {
		return nil, domainerrors.ErrUnauthorized.WithDetails("malformed access token")
	}

	if claims.Subject == "" {
		return nil, domainerrors.ErrUnauthorized.WithDetails("access token has no subject")
	}

	role := entity.Role(strings.ToUpper(claims.Role))
	if !role.IsValid() {
		return nil, domainerrors.ErrUnauthorized.WithDetails("access token has an unknown role")
	}

	out := &service.Claims{
		Subject: claims.Subject,
		Role:    role,
		Email:   claims.Email,
		Name:    claims.Name,
		City:    claims.AssignedCity,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	return out, nil
}

// Expired reports whether the claims carry an expiry before now.
func Expired(c *service.Claims, now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}
