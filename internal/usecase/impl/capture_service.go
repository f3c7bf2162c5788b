package impl

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"fieldops/config"
	"fieldops/internal/capture"
	deliverycontext "fieldops/internal/delivery/context"
	"fieldops/internal/domain/entity"
	domainerrors "fieldops/internal/domain/errors"
	"fieldops/internal/domain/geo"
	"fieldops/internal/domain/service"
	"fieldops/internal/usecase"

	"go.uber.org/fx"
)

// CaptureServiceParams holds dependencies for the capture service, injected by Fx
type CaptureServiceParams struct {
	fx.In

	Config      *config.Config
	Registry    *capture.Registry
	Backend     service.Backend
	Camera      service.Camera
	Geolocation service.Geolocation
	Feed        service.PositionFeed
	State       usecase.StateUsecase
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// captureService implements the CaptureUsecase interface.
type captureService struct {
	registry    *capture.Registry
	backend     service.Backend
	camera      service.Camera
	geolocation service.Geolocation
	feed        service.PositionFeed
	state       usecase.StateUsecase
	publisher   service.EventPublisher
	matcher     geo.Matcher
	logger      *slog.Logger
	now         func() time.Time
}

// NewCaptureService is the constructor for captureService.
func NewCaptureService(params CaptureServiceParams) usecase.CaptureUsecase {
	radius := 0.0
	if params.Config.Geo != nil {
		radius = params.Config.Geo.MatchRadiusMeters
	}

	return &captureService{
		registry:    params.Registry,
		backend:     params.Backend,
		camera:      params.Camera,
		geolocation: params.Geolocation,
		feed:        params.Feed,
		state:       params.State,
		publisher:   params.Publisher,
		matcher:     geo.NewMatcher(radius),
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *captureService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// sessionLocations serves the cached locations of one session to a workflow.
type sessionLocations struct {
	state   usecase.StateUsecase
	session *usecase.Session
}

func (s sessionLocations) Locations(ctx context.Context) ([]entity.Location, error) {
	return s.state.Locations(ctx, s.session)
}

func (srv *captureService) newWorkflow(session *usecase.Session) *capture.Workflow {
	return capture.New(capture.Options{
		Operator:    session.User,
		DeviceID:    session.ID,
		Gateway:     srv.backend,
		Locations:   sessionLocations{state: srv.state, session: session},
		Camera:      srv.camera,
		Geolocation: srv.geolocation,
		Matcher:     srv.matcher,
		OnSubmitted: srv.onSubmitted(session),
		Logger:      srv.logger,
		Now:         srv.now,
	})
}

// Start discards any workflow of the session and begins a new one.
func (srv *captureService) Start(ctx context.Context, session *usecase.Session) (capture.Snapshot, error) {
	w := srv.newWorkflow(session)
	srv.registry.Put(session.ID, w)

	srv.log(ctx).Info("[Capture] Workflow started",
		slog.String("workflow_id", w.ID()),
		slog.String("entry", w.Entry().String()),
	)

	return w.Snapshot(), nil
}

// Workflow returns the session's workflow, starting one when missing.
func (srv *captureService) Workflow(_ context.Context, session *usecase.Session) (*capture.Workflow, error) {
	if w, ok := srv.registry.Get(session.ID); ok {
		return w, nil
	}

	w := srv.newWorkflow(session)
	srv.registry.Put(session.ID, w)

	return w, nil
}

// ReportPosition feeds a position fix of the session's device.
func (srv *captureService) ReportPosition(session *usecase.Session, fix service.PositionUpdate) int {
	if fix.Timestamp.IsZero() {
		fix.Timestamp = srv.now()
	}

	return srv.feed.Publish(session.ID, fix)
}

// ReportPositionError ends the session's position subscriptions with an error.
func (srv *captureService) ReportPositionError(session *usecase.Session, status service.AcquireStatus, reason string) {
	srv.feed.Fail(session.ID, &service.DeviceError{Status: status, Reason: reason})
}

// AddPhoto stores an uploaded image in the draft.
func (srv *captureService) AddPhoto(ctx context.Context, session *usecase.Session, phase entity.Phase, upload usecase.PhotoUpload) (int, error) {
	if len(upload.Data) == 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("photo is empty")
	}

	contentType := upload.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(upload.Data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return 0, domainerrors.ErrValidationFailed.WithDetails("photo must be an image, got " + contentType)
	}

	w, err := srv.Workflow(ctx, session)
	if err != nil {
		return 0, err
	}

	return w.AddPhoto(ctx, phase, capture.Photo{ContentType: contentType, Data: upload.Data})
}

// Submit runs the submission of the session's workflow.
func (srv *captureService) Submit(ctx context.Context, session *usecase.Session) (*entity.ServiceRecord, error) {
	w, err := srv.Workflow(ctx, session)
	if err != nil {
		return nil, err
	}

	return w.Submit(ctx)
}

// onSubmitted refreshes the session's cache and publishes the event. Both
// are best effort: the record is already stored.
func (srv *captureService) onSubmitted(session *usecase.Session) capture.SubmittedFunc {
	return func(ctx context.Context, record entity.ServiceRecord) {
		logger := srv.log(ctx)

		if err := srv.state.Refresh(ctx, session, usecase.CollectionLocations, usecase.CollectionRecords); err != nil {
			logger.Warn("[Capture] Failed to refresh after submission", slog.Any("error", err))
		}

		if srv.publisher == nil {
			return
		}

		event := &service.RecordSubmittedEvent{
			RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
			RecordID:    record.ID,
			OperatorID:  record.OperatorID,
			City:        record.LocationCity,
			Month:       entity.YearMonthOf(record.StartTime).String(),
			ServiceType: record.ServiceType.String(),
			Area:        record.Area(),
			SubmittedAt: srv.now().UTC().Format(time.RFC3339),
		}

		if err := srv.publisher.PublishRecordSubmitted(ctx, event); err != nil {
			logger.Warn("[Capture] Failed to publish submission",
				slog.String("record_id", record.ID),
				slog.Any("error", err),
			)
		}
	}
}

// End drops the session's workflow and releases its devices.
func (srv *captureService) End(sessionID string) {
	srv.registry.Remove(sessionID)
}

// ServiceTypes is the catalog the operator chooses from.
func (srv *captureService) ServiceTypes() []entity.ServiceType {
	return entity.ServiceTypes()
}

// Cities lists the cities the session's user may select.
func (srv *captureService) Cities(ctx context.Context, session *usecase.Session) ([]string, error) {
	if city := session.User.City(); city != "" {
		return []string{city}, nil
	}

	locations, err := srv.state.Locations(ctx, session)
	if err != nil {
		return nil, err
	}

	return entity.Cities(locations), nil
}
