package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "fieldops/internal/delivery/context"
	"fieldops/internal/domain/entity"
	domainerrors "fieldops/internal/domain/errors"
	"fieldops/internal/domain/report"
	"fieldops/internal/domain/service"
	mockUC "fieldops/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUC.MockProgressUsecase) {
	t.Helper()

	progressUC := mockUC.NewMockProgressUsecase(t)

	return &PushHandler{
		verify:     func(req *http.Request) error { return verifyPubSubToken(req, "") },
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		progressUC: progressUC,
	}, progressUC
}

func pushBody(t *testing.T, event any, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/test/subscriptions/fieldworker"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func push(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

var submitted = service.RecordSubmittedEvent{
	RecordID:    "rec-1",
	OperatorID:  "op-1",
	City:        "Campinas",
	Month:       "2025-03",
	ServiceType: "MOWING",
	Area:        1200,
	SubmittedAt: "2025-03-10T08:30:00Z",
}

func TestPushHandler_HandlePush(t *testing.T) {
	t.Run("counts the record", func(t *testing.T) {
		h, progressUC := newTestPushHandler(t)
		progressUC.EXPECT().RecordSubmitted(mock.Anything, mock.MatchedBy(func(e *service.RecordSubmittedEvent) bool {
			return e.RecordID == "rec-1" && e.City == "Campinas" && e.Area == 1200
		})).Return([]report.Progress{{
			Goal:     entity.Goal{City: "Campinas", Month: entity.YearMonth{Year: 2025, Month: time.March}, TargetArea: 5000},
			Realized: 1200,
			Target:   5000,
			Percent:  24,
		}}, nil)

		rec := push(h, pushBody(t, submitted, map[string]string{"event_type": "record.submitted"}))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("request id from attributes reaches the usecase", func(t *testing.T) {
		h, progressUC := newTestPushHandler(t)
		progressUC.EXPECT().RecordSubmitted(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "req-7" &&
				deliverycontext.GetLogger(ctx) != nil
		}), mock.Anything).Return(nil, nil)

		event := submitted
		event.RequestID = "req-from-event"
		rec := push(h, pushBody(t, event, map[string]string{"request_id": "req-7"}))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid events are dropped", func(t *testing.T) {
		h, progressUC := newTestPushHandler(t)
		progressUC.EXPECT().RecordSubmitted(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrValidationFailed.WithDetails("event needs a record id and a city"))

		event := submitted
		event.City = ""
		rec := push(h, pushBody(t, event, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("store failures are redelivered", func(t *testing.T) {
		h, progressUC := newTestPushHandler(t)
		progressUC.EXPECT().RecordSubmitted(mock.Anything, mock.Anything).
			Return(nil, domainerrors.NewStoreError(errors.New("connection refused"), "tally is unwritable"))

		rec := push(h, pushBody(t, submitted, nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("other event types are acknowledged", func(t *testing.T) {
		h, _ := newTestPushHandler(t)

		rec := push(h, pushBody(t, submitted, map[string]string{"event_type": "record.deleted"}))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("undecodable data is rejected", func(t *testing.T) {
		h, _ := newTestPushHandler(t)

		rec := push(h, `{"message":{"data":"%%%","messageId":"msg-2"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non json payload is rejected", func(t *testing.T) {
		h, _ := newTestPushHandler(t)
		body := `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("not json")) + `"}}`

		rec := push(h, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unverified push is unauthorized", func(t *testing.T) {
		h, _ := newTestPushHandler(t)
		h.verifyPushAuth = true

		rec := push(h, pushBody(t, submitted, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("verified push is processed", func(t *testing.T) {
		h, progressUC := newTestPushHandler(t)
		h.verifyPushAuth = true
		h.verify = func(*http.Request) error { return nil }
		progressUC.EXPECT().RecordSubmitted(mock.Anything, mock.Anything).Return(nil, nil)

		rec := push(h, pushBody(t, submitted, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestVerifyPubSubToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		errMsg string
	}{
		{name: "missing header", header: "", errMsg: "missing authorization header"},
		{name: "wrong scheme", header: "Basic abc", errMsg: "invalid authorization header format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/push", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			err := verifyPubSubToken(req, "https://worker.example.com/push")

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
