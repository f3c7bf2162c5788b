package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fieldops/config"
	"fieldops/internal/capture"
	delmiddleware "fieldops/internal/delivery/http/middleware"
	"fieldops/internal/delivery/http/router"
	"fieldops/internal/delivery/http/router/handler"
	"fieldops/internal/domain/entity"
	domainerrors "fieldops/internal/domain/errors"
	"fieldops/internal/domain/report"
	"fieldops/internal/domain/service"
	mockUC "fieldops/internal/mocks/usecase"
	"fieldops/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	operatorToken = "op-session"
	fiscalToken   = "fiscal-session"
	adminToken    = "admin-session"
)

type staticLocations []entity.Location

func (s staticLocations) Locations(context.Context) ([]entity.Location, error) {
	return s, nil
}

type testAPI struct {
	e       *echo.Echo
	auth    *mockUC.MockAuthUsecase
	capture *mockUC.MockCaptureUsecase
	report  *mockUC.MockReportUsecase
	goal    *mockUC.MockGoalUsecase
	admin   *mockUC.MockAdminUsecase
	backup  *mockUC.MockBackupUsecase
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *errorBody      `json:"error"`
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "10MB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	api := &testAPI{
		auth:    mockUC.NewMockAuthUsecase(t),
		capture: mockUC.NewMockCaptureUsecase(t),
		report:  mockUC.NewMockReportUsecase(t),
		goal:    mockUC.NewMockGoalUsecase(t),
		admin:   mockUC.NewMockAdminUsecase(t),
		backup:  mockUC.NewMockBackupUsecase(t),
	}

	api.e = NewEcho(cfg, logger, router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: api.auth, Logger: logger}),
		CaptureHandler: handler.NewCaptureHandler(handler.CaptureHandlerParams{CaptureUC: api.capture, Logger: logger}),
		ReportHandler:  handler.NewReportHandler(handler.ReportHandlerParams{ReportUC: api.report, Logger: logger}),
		GoalHandler:    handler.NewGoalHandler(handler.GoalHandlerParams{GoalUC: api.goal, Logger: logger}),
		AdminHandler:   handler.NewAdminHandler(handler.AdminHandlerParams{AdminUC: api.admin, BackupUC: api.backup, Logger: logger}),
		AuthMiddleware: delmiddleware.NewAuthMiddleware(api.auth),
	})

	return api
}

func testSession(token string, role entity.Role, city string) *usecase.Session {
	user := entity.User{ID: "user-" + token, Email: token + "@example.com", Name: token, Role: role}
	if city != "" {
		user.AssignedCity = &city
	}

	return &usecase.Session{ID: token, Token: "backend-" + token, User: user}
}

// signIn makes token resolve to a session of the given role.
func (a *testAPI) signIn(token string, role entity.Role, city string) *usecase.Session {
	session := testSession(token, role, city)
	a.auth.EXPECT().Authenticate(mock.Anything, token).Return(session, nil)

	return session
}

func (a *testAPI) do(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	return rec
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(httptest.NewRequest(http.MethodGet, "/health", nil), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestAuthRoutes(t *testing.T) {
	t.Run("login returns the session and identity", func(t *testing.T) {
		api := newTestAPI(t)
		session := testSession(operatorToken, entity.RoleOperator, "Campinas")
		session.ExpiresAt = time.Date(2025, time.March, 31, 20, 0, 0, 0, time.UTC)

		api.auth.EXPECT().Login(mock.Anything, "op@example.com", "secret").Return(session, nil)
		api.auth.EXPECT().Identity(session).Return(usecase.Identity{User: session.User, Views: entity.RoleOperator.Views()})

		rec := api.do(jsonRequest(http.MethodPost, "/api/v1/auth/login", `{"email":"op@example.com","password":"secret"}`), "")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp handler.LoginResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &resp))
		assert.Equal(t, operatorToken, resp.SessionID)
		require.NotNil(t, resp.ExpiresAt)
		assert.True(t, resp.ExpiresAt.Equal(session.ExpiresAt))
		assert.Equal(t, entity.RoleOperator, resp.Identity.User.Role)
	})

	t.Run("login validates the body", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(jsonRequest(http.MethodPost, "/api/v1/auth/login", `{"email":"not-an-email"}`), "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Message, "email")
	})

	t.Run("bad credentials map to 401", func(t *testing.T) {
		api := newTestAPI(t)
		api.auth.EXPECT().Login(mock.Anything, "op@example.com", "wrong").Return(nil, domainerrors.ErrInvalidCredentials)

		rec := api.do(jsonRequest(http.MethodPost, "/api/v1/auth/login", `{"email":"op@example.com","password":"wrong"}`), "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("logout ends the bearer session", func(t *testing.T) {
		api := newTestAPI(t)
		api.auth.EXPECT().Logout(mock.Anything, operatorToken).Return(nil)

		rec := api.do(httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil), operatorToken)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("me requires a session", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil), "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("expired session is rejected", func(t *testing.T) {
		api := newTestAPI(t)
		api.auth.EXPECT().Authenticate(mock.Anything, "stale").Return(nil, domainerrors.ErrUnauthorized.WithDetails("session expired"))

		rec := api.do(httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil), "stale")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
		assert.Nil(t, env.Error.Details)
	})
}

func TestRoleGuards(t *testing.T) {
	tests := []struct {
		name   string
		role   entity.Role
		method string
		target string
	}{
		{name: "fiscal cannot capture", role: entity.RoleFiscal, method: http.MethodGet, target: "/api/v1/capture"},
		{name: "admin cannot capture", role: entity.RoleAdmin, method: http.MethodPost, target: "/api/v1/capture"},
		{name: "operator cannot read reports", role: entity.RoleOperator, method: http.MethodGet, target: "/api/v1/reports/records"},
		{name: "fiscal cannot administer", role: entity.RoleFiscal, method: http.MethodGet, target: "/api/v1/admin/users"},
		{name: "operator cannot back up", role: entity.RoleOperator, method: http.MethodGet, target: "/api/v1/admin/backup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			api.signIn("token", tt.role, "Campinas")

			rec := api.do(httptest.NewRequest(tt.method, tt.target, nil), "token")

			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, "FORBIDDEN", decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestCaptureRoutes(t *testing.T) {
	locations := staticLocations{
		{ID: "loc-1", City: "Campinas", Name: "Praça Central", Area: 1200},
		{ID: "loc-2", City: "Santos", Name: "Orla", Area: 800},
	}

	newWorkflow := func(session *usecase.Session) *capture.Workflow {
		return capture.New(capture.Options{
			Operator:  session.User,
			DeviceID:  session.ID,
			Locations: locations,
		})
	}

	t.Run("select city advances the workflow", func(t *testing.T) {
		api := newTestAPI(t)
		session := api.signIn(operatorToken, entity.RoleOperator, "")
		w := newWorkflow(session)
		api.capture.EXPECT().Workflow(mock.Anything, session).Return(w, nil)

		rec := api.do(jsonRequest(http.MethodPost, "/api/v1/capture/city", `{"city":"Santos"}`), operatorToken)

		require.Equal(t, http.StatusOK, rec.Code)
		var snapshot capture.Snapshot
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &snapshot))
		assert.Equal(t, capture.StateServiceSelect, snapshot.State)
		assert.Equal(t, "Santos", snapshot.City)
	})

	t.Run("unknown city is a validation error", func(t *testing.T) {
		api := newTestAPI(t)
		session := api.signIn(operatorToken, entity.RoleOperator, "")
		api.capture.EXPECT().Workflow(mock.Anything, session).Return(newWorkflow(session), nil)

		rec := api.do(jsonRequest(http.MethodPost, "/api/v1/capture/city", `{"city":"Recife"}`), operatorToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, "unknown city: Recife", env.Error.Details)
	})

	t.Run("out of order action conflicts", func(t *testing.T) {
		api := newTestAPI(t)
		session := api.signIn(operatorToken, entity.RoleOperator, "")
		api.capture.EXPECT().Workflow(mock.Anything, session).Return(newWorkflow(session), nil)

		rec := api.do(jsonRequest(http.MethodPost, "/api/v1/capture/service", `{"serviceType":"MOWING"}`), operatorToken)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "INVALID_TRANSITION", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("start returns a fresh snapshot", func(t *testing.T) {
		api := newTestAPI(t)
		session := api.signIn(operatorToken, entity.RoleOperator, "Campinas")
		api.capture.EXPECT().Start(mock.Anything, session).Return(capture.Snapshot{ID: "wf-1", State: capture.StateServiceSelect}, nil)

		rec := api.do(httptest.NewRequest(http.MethodPost, "/api/v1/capture", nil), operatorToken)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"state":"SERVICE_SELECT"`)
	})

	t.Run("invalid phase is rejected before the workflow", func(t *testing.T) {
		api := newTestAPI(t)
		api.signIn(operatorToken, entity.RoleOperator, "Campinas")

		rec := api.do(httptest.NewRequest(http.MethodPost, "/api/v1/capture/camera/DURING", nil), operatorToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_PHASE", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("photo upload is passed to the draft", func(t *testing.T) {
		api := newTestAPI(t)
		session := api.signIn(operatorToken, entity.RoleOperator, "Campinas")
		data := []byte{0xff, 0xd8, 0xff, 0xd9}

		api.capture.EXPECT().AddPhoto(mock.Anything, session, entity.PhaseBefore, mock.MatchedBy(func(u usecase.PhotoUpload) bool {
			return bytes.Equal(u.Data, data)
		})).Return(1, nil)
		api.capture.EXPECT().Workflow(mock.Anything, session).Return(newWorkflow(session), nil)

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, err := writer.CreateFormFile("photo", "before.jpg")
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/capture/photos/BEFORE", body)
		req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
		rec := api.do(req, operatorToken)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp handler.PhotoCountResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &resp))
		assert.Equal(t, 1, resp.Count)
	})

	t.Run("photo upload requires the form field", func(t *testing.T) {
		api := newTestAPI(t)
		api.signIn(operatorToken, entity.RoleOperator, "Campinas")

		rec := api.do(jsonRequest(http.MethodPost, "/api/v1/capture/photos/AFTER", `{}`), operatorToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("position fixes are fed to the device", func(t *testing.T) {
		api := newTestAPI(t)
		session := api.signIn(operatorToken, entity.RoleOperator, "Campinas")
		api.capture.EXPECT().ReportPosition(session, mock.MatchedBy(func(fix service.PositionUpdate) bool {
			return fix.Coordinate.Latitude == -22.9 && fix.Coordinate.Longitude == -47.06 && fix.Accuracy == 12
		})).Return(1)

		rec := api.do(jsonRequest(http.MethodPost, "/api/v1/capture/position", `{"latitude":-22.9,"longitude":-47.06,"accuracy":12}`), operatorToken)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"delivered":1`)
	})

	t.Run("out of range position is rejected", func(t *testing.T) {
		api := newTestAPI(t)
		api.signIn(operatorToken, entity.RoleOperator, "Campinas")

		rec := api.do(jsonRequest(http.MethodPost, "/api/v1/capture/position", `{"latitude":95,"longitude":0}`), operatorToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("position errors end tracking", func(t *testing.T) {
		api := newTestAPI(t)
		session := api.signIn(operatorToken, entity.RoleOperator, "Campinas")
		api.capture.EXPECT().ReportPositionError(session, service.AcquireDenied, "user refused").Return()

		rec := api.do(jsonRequest(http.MethodPost, "/api/v1/capture/position/error", `{"status":"DENIED","reason":"user refused"}`), operatorToken)

		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("submit returns the created record", func(t *testing.T) {
		api := newTestAPI(t)
		session := api.signIn(operatorToken, entity.RoleOperator, "Campinas")
		api.capture.EXPECT().Submit(mock.Anything, session).Return(&entity.ServiceRecord{ID: "rec-1", LocationCity: "Campinas"}, nil)

		rec := api.do(httptest.NewRequest(http.MethodPost, "/api/v1/capture/submit", nil), operatorToken)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"rec-1"`)
	})

	t.Run("catalog is open to every role", func(t *testing.T) {
		api := newTestAPI(t)
		session := api.signIn(fiscalToken, entity.RoleFiscal, "Campinas")
		api.capture.EXPECT().ServiceTypes().Return(entity.ServiceTypes())
		api.capture.EXPECT().Cities(mock.Anything, session).Return([]string{"Campinas"}, nil)

		rec := api.do(httptest.NewRequest(http.MethodGet, "/api/v1/catalog/service-types", nil), fiscalToken)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "PRESSURE_WASHING")

		rec = api.do(httptest.NewRequest(http.MethodGet, "/api/v1/catalog/cities", nil), fiscalToken)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `["Campinas"]`, string(decodeEnvelope(t, rec).Data))
	})
}

func TestReportRoutes(t *testing.T) {
	t.Run("records parses the filters", func(t *testing.T) {
		api := newTestAPI(t)
		session := api.signIn(fiscalToken, entity.RoleFiscal, "Campinas")

		api.report.EXPECT().Records(mock.Anything, session, mock.MatchedBy(func(q usecase.RecordQuery) bool {
			return q.Start != nil && q.Start.Day() == 1 && q.End == nil &&
				assert.ObjectsAreEqual([]entity.ServiceType{entity.ServiceMowing, entity.ServiceWeeding, entity.ServicePruning}, q.ServiceTypes) &&
				q.City == "Campinas"
		})).Return(&usecase.RecordReport{TotalArea: 1200}, nil)

		rec := api.do(httptest.NewRequest(http.MethodGet,
			"/api/v1/reports/records?start=2025-03-01&serviceType=MOWING,WEEDING&serviceType=PRUNING&city=Campinas", nil), fiscalToken)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"totalArea":1200`)
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		api := newTestAPI(t)
		api.signIn(fiscalToken, entity.RoleFiscal, "Campinas")

		rec := api.do(httptest.NewRequest(http.MethodGet, "/api/v1/reports/records?end=31/03/2025", nil), fiscalToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_FILTER", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("export downloads the artifact", func(t *testing.T) {
		api := newTestAPI(t)
		session := api.signIn(adminToken, entity.RoleAdmin, "")

		api.report.EXPECT().Export(mock.Anything, session, mock.MatchedBy(func(req usecase.ExportRequest) bool {
			return req.Format == usecase.ExportSpreadsheet && !req.All && len(req.RecordIDs) == 2
		})).Return(&service.Artifact{
			Key:         "exports/2025/03/abc.xlsx",
			Name:        "records-20250331-1745.xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        []byte("xlsx"),
		}, nil)

		rec := api.do(jsonRequest(http.MethodPost, "/api/v1/reports/exports", `{"format":"spreadsheet","recordIds":["r-1","r-2"]}`), adminToken)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, `attachment; filename="records-20250331-1745.xlsx"`, rec.Header().Get(echo.HeaderContentDisposition))
		assert.Equal(t, "exports/2025/03/abc.xlsx", rec.Header().Get(handler.ArtifactKeyHeader))
		assert.Equal(t, "xlsx", rec.Body.String())
	})

	t.Run("export requires a known format", func(t *testing.T) {
		api := newTestAPI(t)
		api.signIn(adminToken, entity.RoleAdmin, "")

		rec := api.do(jsonRequest(http.MethodPost, "/api/v1/reports/exports", `{"format":"csv","all":true}`), adminToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("empty selection surfaces the usecase error", func(t *testing.T) {
		api := newTestAPI(t)
		api.signIn(adminToken, entity.RoleAdmin, "")
		api.report.EXPECT().Export(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrValidationFailed.WithDetails("no records selected"))

		rec := api.do(jsonRequest(http.MethodPost, "/api/v1/reports/exports", `{"format":"photos"}`), adminToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "no records selected", decodeEnvelope(t, rec).Error.Details)
	})

	t.Run("artifact download keeps the nested key", func(t *testing.T) {
		api := newTestAPI(t)
		api.signIn(fiscalToken, entity.RoleFiscal, "Campinas")
		api.report.EXPECT().Artifact(mock.Anything, "exports/2025/03/abc.pdf").Return([]byte("%PDF"), nil)

		rec := api.do(httptest.NewRequest(http.MethodGet, "/api/v1/reports/artifacts/exports/2025/03/abc.pdf", nil), fiscalToken)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, `attachment; filename="abc.pdf"`, rec.Header().Get(echo.HeaderContentDisposition))
	})

	t.Run("missing artifact is 404", func(t *testing.T) {
		api := newTestAPI(t)
		api.signIn(fiscalToken, entity.RoleFiscal, "Campinas")
		api.report.EXPECT().Artifact(mock.Anything, "exports/missing.pdf").Return(nil, domainerrors.ErrNotFound)

		rec := api.do(httptest.NewRequest(http.MethodGet, "/api/v1/reports/artifacts/exports/missing.pdf", nil), fiscalToken)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGoalRoutes(t *testing.T) {
	march := entity.YearMonth{Year: 2025, Month: time.March}

	t.Run("progress is open to operators", func(t *testing.T) {
		api := newTestAPI(t)
		session := api.signIn(operatorToken, entity.RoleOperator, "Campinas")
		api.goal.EXPECT().Progress(mock.Anything, session).Return([]report.Progress{
			{Goal: entity.Goal{City: "Campinas", Month: march, TargetArea: 1000}, Realized: 250, Target: 1000, Percent: 25},
		}, nil)

		rec := api.do(httptest.NewRequest(http.MethodGet, "/api/v1/goals/progress", nil), operatorToken)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"2025-03"`)
	})

	t.Run("create parses the month", func(t *testing.T) {
		api := newTestAPI(t)
		api.signIn(adminToken, entity.RoleAdmin, "")
		id := uuid.New()
		api.goal.EXPECT().Create(mock.Anything, usecase.GoalInput{City: "Campinas", Month: march, TargetArea: 5000}).
			Return(&entity.Goal{ID: id, City: "Campinas", Month: march, TargetArea: 5000}, nil)

		rec := api.do(jsonRequest(http.MethodPost, "/api/v1/admin/goals", `{"city":"Campinas","month":"2025-03","targetArea":5000}`), adminToken)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(decodeEnvelope(t, rec).Data), id.String())
	})

	t.Run("malformed month is a binding error", func(t *testing.T) {
		api := newTestAPI(t)
		api.signIn(adminToken, entity.RoleAdmin, "")

		rec := api.do(jsonRequest(http.MethodPost, "/api/v1/admin/goals", `{"city":"Campinas","month":"March","targetArea":5000}`), adminToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("negative target is rejected", func(t *testing.T) {
		api := newTestAPI(t)
		api.signIn(adminToken, entity.RoleAdmin, "")

		rec := api.do(jsonRequest(http.MethodPost, "/api/v1/admin/goals", `{"city":"Campinas","month":"2025-03","targetArea":-1}`), adminToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("delete requires a uuid", func(t *testing.T) {
		api := newTestAPI(t)
		api.signIn(adminToken, entity.RoleAdmin, "")

		rec := api.do(httptest.NewRequest(http.MethodDelete, "/api/v1/admin/goals/42", nil), adminToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("delete removes the goal", func(t *testing.T) {
		api := newTestAPI(t)
		api.signIn(adminToken, entity.RoleAdmin, "")
		id := uuid.New()
		api.goal.EXPECT().Delete(mock.Anything, id).Return(nil)

		rec := api.do(httptest.NewRequest(http.MethodDelete, "/api/v1/admin/goals/"+id.String(), nil), adminToken)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestAdminRoutes(t *testing.T) {
	t.Run("geojson uses its media type", func(t *testing.T) {
		api := newTestAPI(t)
		session := api.signIn(adminToken, entity.RoleAdmin, "")
		api.admin.EXPECT().LocationsGeoJSON(mock.Anything, session).Return([]byte(`{"type":"FeatureCollection","features":[]}`), nil)

		rec := api.do(httptest.NewRequest(http.MethodGet, "/api/v1/admin/locations.geojson", nil), adminToken)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/geo+json", rec.Header().Get(echo.HeaderContentType))
		assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, rec.Body.String())
	})

	t.Run("create location forwards the input", func(t *testing.T) {
		api := newTestAPI(t)
		session := api.signIn(adminToken, entity.RoleAdmin, "")
		api.admin.EXPECT().CreateLocation(mock.Anything, session, usecase.LocationInput{
			City: "Campinas", Name: "Praça Central", Area: 1200,
			Coordinate: &entity.Coordinate{Latitude: -22.9056, Longitude: -47.0608},
		}).Return(&entity.Location{ID: "loc-9", City: "Campinas", Name: "Praça Central", Area: 1200}, nil)

		rec := api.do(jsonRequest(http.MethodPost, "/api/v1/admin/locations",
			`{"city":"Campinas","name":"Praça Central","area":1200,"coordinate":{"latitude":-22.9056,"longitude":-47.0608}}`), adminToken)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("deleting oneself is forbidden", func(t *testing.T) {
		api := newTestAPI(t)
		session := api.signIn(adminToken, entity.RoleAdmin, "")
		api.admin.EXPECT().DeleteUser(mock.Anything, session, session.User.ID).
			Return(domainerrors.ErrForbidden.WithDetails("cannot delete the signed-in user"))

		rec := api.do(httptest.NewRequest(http.MethodDelete, "/api/v1/admin/users/"+session.User.ID, nil), adminToken)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Nil(t, decodeEnvelope(t, rec).Error.Details)
	})

	t.Run("backup downloads a json file", func(t *testing.T) {
		api := newTestAPI(t)
		session := api.signIn(adminToken, entity.RoleAdmin, "")
		api.backup.EXPECT().Export(mock.Anything, session).Return([]byte(`{"users":[]}`), nil)

		rec := api.do(httptest.NewRequest(http.MethodGet, "/api/v1/admin/backup", nil), adminToken)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Regexp(t, `^attachment; filename="fieldops-backup-\d{8}-\d{4}\.json"$`, rec.Header().Get(echo.HeaderContentDisposition))
		assert.Equal(t, `{"users":[]}`, rec.Body.String())
	})

	t.Run("restore accepts a raw body", func(t *testing.T) {
		api := newTestAPI(t)
		session := api.signIn(adminToken, entity.RoleAdmin, "")
		api.backup.EXPECT().Restore(mock.Anything, session, []byte(`{"users":[]}`)).
			Return(domainerrors.ErrRestoreInvalid.WithDetails("missing collection locations"))

		rec := api.do(jsonRequest(http.MethodPost, "/api/v1/admin/restore", `{"users":[]}`), adminToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "RESTORE_INVALID", env.Error.Code)
		assert.Equal(t, "missing collection locations", env.Error.Details)
	})

	t.Run("restore accepts a multipart upload", func(t *testing.T) {
		api := newTestAPI(t)
		session := api.signIn(adminToken, entity.RoleAdmin, "")
		content := []byte(`{"users":[],"locations":[],"records":[],"goals":[]}`)
		api.backup.EXPECT().Restore(mock.Anything, session, content).Return(nil)

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, err := writer.CreateFormFile("backup", "backup.json")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/restore", body)
		req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
		rec := api.do(req, adminToken)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unexpected errors become 500", func(t *testing.T) {
		api := newTestAPI(t)
		session := api.signIn(adminToken, entity.RoleAdmin, "")
		api.admin.EXPECT().ListUsers(mock.Anything, session).Return(nil, io.ErrUnexpectedEOF)

		rec := api.do(httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil), adminToken)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_ERROR", decodeEnvelope(t, rec).Error.Code)
	})
}
