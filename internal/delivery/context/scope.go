// Package context carries the request-scoped values shared by the delivery
// layer and the services: the request ID, a logger bound to it and the
// signed-in caller.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type scopeKey int

const (
	requestIDKey scopeKey = iota
	loggerKey
	callerKey
)

// HeaderXRequestID is read from incoming requests and echoed on responses.
const HeaderXRequestID = "X-Request-Id"

const echoRequestIDKey = "request_id"

// Caller is the signed-in user behind a request.
type Caller struct {
	SessionID string
	UserID    string
	Role      string
	City      string
}

// LogAttrs returns the caller as logger arguments. City is left out for
// unscoped users.
func (c Caller) LogAttrs() []any {
	attrs := []any{
		slog.String("session_id", c.SessionID),
		slog.String("user_id", c.UserID),
		slog.String("role", c.Role),
	}
	if c.City != "" {
		attrs = append(attrs, slog.String("city", c.City))
	}

	return attrs
}

// SetRequestID stores the request ID on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestID returns the request ID of c, falling back to the response
// header when no middleware stored one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return c.Response().Header().Get(HeaderXRequestID)
}

// WithRequestID returns ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns the request ID of ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithLogger returns ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request logger of ctx, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request logger of ctx, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithCaller returns ctx carrying caller. When ctx already has a request
// logger, the logger is rebound with the caller's attributes so every later
// log line of the request names the session.
func WithCaller(ctx context.Context, caller Caller) context.Context {
	ctx = context.WithValue(ctx, callerKey, caller)
	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(caller.LogAttrs()...))
	}

	return ctx
}

// GetCaller returns the caller of ctx and whether the request was authenticated.
func GetCaller(ctx context.Context) (Caller, bool) {
	caller, ok := ctx.Value(callerKey).(Caller)

	return caller, ok
}
