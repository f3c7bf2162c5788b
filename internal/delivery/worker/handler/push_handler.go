package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"fieldops/config"
	deliverycontext "fieldops/internal/delivery/context"
	"fieldops/internal/domain/constants"
	domainerrors "fieldops/internal/domain/errors"
	"fieldops/internal/domain/service"
	"fieldops/internal/errors"
	"fieldops/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// tokenVerifier checks the OIDC token of a push request.
type tokenVerifier func(req *http.Request) error

// PushHandler counts submitted records towards the monthly goals
type PushHandler struct {
	verifyPushAuth bool
	verify         tokenVerifier
	logger         *slog.Logger
	progressUC     usecase.ProgressUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	ProgressUC usecase.ProgressUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google pushes carry an OIDC token outside development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	audience := ""
	if params.Config.Worker != nil {
		audience = params.Config.Worker.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verify: func(req *http.Request) error {
			return verifyPubSubToken(req, audience)
		},
		logger:     params.Logger,
		progressUC: params.ProgressUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Other event types share the topic; acknowledge and skip them
	if eventType := pushMsg.Message.Attributes["event_type"]; eventType != "" && eventType != constants.EventRecordSubmitted {
		h.logger.Debug("[Worker] Skipping event", slog.String("event_type", eventType))

		return c.NoContent(http.StatusOK)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.RecordSubmittedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse record event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing record event",
		slog.String("record_id", event.RecordID),
		slog.String("city", event.City),
		slog.String("month", event.Month),
	)

	if err := h.processRecord(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process record event",
			slog.String("record_id", event.RecordID),
			slog.Any("error", err),
			slog.Bool("retryable", errors.IsTemporary(err)),
		)
		// 503 makes Pub/Sub redeliver; 200 drops events that can never succeed
		if errors.IsTemporary(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Record event processed successfully",
		slog.String("record_id", event.RecordID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.RecordSubmittedEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	// From RequestIDMiddleware via X-Request-Id header
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processRecord adds the record to the tallies and classifies failures.
func (h *PushHandler) processRecord(ctx context.Context, event *service.RecordSubmittedEvent) error {
	progress, err := h.progressUC.RecordSubmitted(ctx, event)
	if err != nil {
		if errors.Is(err, domainerrors.ErrValidationFailed) {
			return err
		}

		return errors.Temporary(err)
	}

	if len(progress) == 0 {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] No goal for record month",
			slog.String("city", event.City),
			slog.String("month", event.Month),
		)
	}

	return nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests.
// An empty audience is derived from the URL of the request.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request, audience string) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
