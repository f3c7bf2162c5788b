package capture

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	deliverycontext "fieldops/internal/delivery/context"
	"fieldops/internal/domain/entity"
	domainerrors "fieldops/internal/domain/errors"
	"fieldops/internal/domain/geo"
	"fieldops/internal/domain/service"
	"fieldops/internal/errors"

	"github.com/google/uuid"
)

// SubmittedFunc is called after a record and all its photos were accepted.
type SubmittedFunc func(ctx context.Context, record entity.ServiceRecord)

// Options configure a workflow.
type Options struct {
	Operator      entity.User
	DeviceID      string
	Gateway       Gateway
	Locations     LocationSource
	Camera        service.Camera
	CameraCascade []service.CameraConstraint
	Geolocation   service.Geolocation
	Matcher       geo.Matcher
	OnSubmitted   SubmittedFunc
	Logger        *slog.Logger
	Now           func() time.Time
}

// Workflow holds one draft record across the capture steps. It is safe for
// concurrent use; the draft itself has a single owner.
type Workflow struct {
	id   string
	opts Options

	mu         sync.Mutex
	state      State
	draft      Draft
	camera     *CameraSession
	tracker    *tracker
	candidates []entity.Location
	lastErr    error
	outcome    State
	lastRecord *entity.ServiceRecord
}

// New starts a workflow at its entry state.
func New(opts Options) *Workflow {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	if opts.Matcher.Radius <= 0 {
		opts.Matcher = geo.NewMatcher(0)
	}

	if len(opts.CameraCascade) == 0 {
		opts.CameraCascade = DefaultCameraCascade()
	}

	w := &Workflow{
		id:   uuid.New().String(),
		opts: opts,
	}
	w.reset()

	return w
}

// ID identifies the workflow instance.
func (w *Workflow) ID() string {
	return w.id
}

// Entry is the state the workflow starts from and returns to.
func (w *Workflow) Entry() State {
	if w.opts.Operator.City() != "" {
		return StateServiceSelect
	}

	return StateCitySelect
}

func (w *Workflow) reset() {
	w.state = w.Entry()
	w.draft = Draft{City: w.opts.Operator.City()}
	w.candidates = nil
	w.lastErr = nil
}

func (w *Workflow) logger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, w.opts.Logger).With(
		slog.String("workflow_id", w.id),
		slog.String("operator_id", w.opts.Operator.ID),
	)
}

func (w *Workflow) transition(ctx context.Context, to State) {
	w.logger(ctx).Debug("[Capture] Transition",
		slog.String("from", w.state.String()),
		slog.String("to", to.String()),
	)
	w.state = to
}

func (w *Workflow) require(action string, allowed ...State) error {
	for _, s := range allowed {
		if w.state == s {
			return nil
		}
	}

	return invalidTransition(action, w.state)
}

// releaseDevices stops tracking and closes the camera.
func (w *Workflow) releaseDevices() {
	w.stopTracking()
	w.closeCamera()
}

func (w *Workflow) stopTracking() {
	if w.tracker != nil {
		if err := w.tracker.stop(); err != nil {
			w.opts.Logger.Warn("[Capture] Failed to stop position tracking",
				slog.String("workflow_id", w.id),
				slog.Any("error", err),
			)
		}
		w.tracker = nil
	}
}

func (w *Workflow) closeCamera() {
	if w.camera != nil {
		if err := w.camera.Close(); err != nil {
			w.opts.Logger.Warn("[Capture] Failed to release camera",
				slog.String("workflow_id", w.id),
				slog.Any("error", err),
			)
		}
		w.camera = nil
	}
}

// SelectCity chooses the city among the cities of the known locations.
func (w *Workflow) SelectCity(ctx context.Context, city string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.require("select city", StateCitySelect); err != nil {
		return err
	}

	city = strings.TrimSpace(city)
	if city == "" {
		return validationError("city is required")
	}

	locations, err := w.locations(ctx)
	if err != nil {
		return err
	}

	known := false
	for _, c := range entity.Cities(locations) {
		if c == city {
			known = true
			break
		}
	}

	if !known {
		return validationError("unknown city: " + city)
	}

	w.draft.City = city
	w.transition(ctx, StateServiceSelect)

	return nil
}

// SelectService chooses the service type from the catalog.
func (w *Workflow) SelectService(ctx context.Context, serviceType entity.ServiceType) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.require("select service", StateServiceSelect); err != nil {
		return err
	}

	if !serviceType.IsValid() {
		return validationError("unknown service type: " + serviceType.String())
	}

	w.draft.ServiceType = serviceType
	w.transition(ctx, StateLocationSelect)

	return nil
}

func (w *Workflow) locations(ctx context.Context) ([]entity.Location, error) {
	if w.opts.Locations == nil {
		return nil, nil
	}

	locations, err := w.opts.Locations.Locations(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return locations, nil
}

// cityCandidates returns the locations of the draft city.
func (w *Workflow) cityCandidates(ctx context.Context) ([]entity.Location, error) {
	locations, err := w.locations(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entity.Location, 0, len(locations))
	for _, l := range locations {
		if l.City == w.draft.City {
			out = append(out, l)
		}
	}

	return out, nil
}

// StartTracking subscribes to position updates and matches every fix against
// the locations of the city. A refused subscription is returned as a device
// error; manual selection, search and creation stay available.
func (w *Workflow) StartTracking(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.require("start tracking", StateLocationSelect); err != nil {
		return err
	}

	w.stopTracking()

	if w.opts.Geolocation == nil {
		return deviceAppError(service.AcquireUnavailable, "no position source")
	}

	candidates, err := w.cityCandidates(ctx)
	if err != nil {
		return err
	}
	w.candidates = candidates

	acq := w.opts.Geolocation.Subscribe(ctx, w.opts.DeviceID, true)
	if !acq.OK() {
		w.logger(ctx).Info("[Capture] Position unavailable",
			slog.String("status", string(acq.Status)),
			slog.String("reason", acq.Reason),
		)

		return deviceAppError(acq.Status, acq.Reason)
	}

	// The tracker outlives the request that started it.
	w.tracker = startTracker(context.WithoutCancel(ctx), acq.Resource, w.opts.Matcher, candidates)

	return nil
}

// StopTracking ends the position subscription, if any.
func (w *Workflow) StopTracking() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.stopTracking()
}

// CurrentMatch returns the latest tracking result.
func (w *Workflow) CurrentMatch() TrackingStatus {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.trackingStatus()
}

func (w *Workflow) trackingStatus() TrackingStatus {
	if w.tracker == nil {
		return TrackingStatus{}
	}

	return w.tracker.snapshot()
}

// ConfirmMatch accepts the location found by tracking.
func (w *Workflow) ConfirmMatch(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.require("confirm match", StateLocationSelect); err != nil {
		return err
	}

	status := w.trackingStatus()
	if status.Match == nil {
		return validationError("no location matched the current position")
	}

	w.stopTracking()
	w.draft.setLocation(status.Match.Location, true)
	w.transition(ctx, StatePhotoBefore)

	return nil
}

// SelectLocation picks a known location of the city by ID.
func (w *Workflow) SelectLocation(ctx context.Context, id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.require("select location", StateLocationSelect); err != nil {
		return err
	}

	candidates, err := w.cityCandidates(ctx)
	if err != nil {
		return err
	}

	for _, l := range candidates {
		if l.ID == id {
			w.stopTracking()
			w.draft.setLocation(l, false)
			w.transition(ctx, StatePhotoBefore)

			return nil
		}
	}

	return domainerrors.ErrNotFound.WithDetails("location " + id + " is not in " + w.draft.City)
}

// CreateLocation names a location that is not known yet. It is created on
// the backend when the record is submitted.
func (w *Workflow) CreateLocation(ctx context.Context, name string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.require("create location", StateLocationSelect); err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return validationError("location name is required")
	}

	w.stopTracking()
	w.draft.clearLocation()
	w.draft.LocationName = name
	w.draft.LocationCity = w.draft.City
	w.transition(ctx, StatePhotoBefore)

	return nil
}

// SearchLocations returns the locations of the city whose name contains
// query, ignoring case. An empty query returns every location of the city.
func (w *Workflow) SearchLocations(ctx context.Context, query string) ([]entity.Location, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.draft.City == "" {
		return nil, invalidTransition("search locations", w.state)
	}

	candidates, err := w.cityCandidates(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return candidates, nil
	}

	out := make([]entity.Location, 0)
	for _, l := range candidates {
		if strings.Contains(strings.ToLower(l.Name), query) {
			out = append(out, l)
		}
	}

	return out, nil
}

func phaseState(phase entity.Phase) State {
	if phase == entity.PhaseAfter {
		return StatePhotoAfter
	}

	return StatePhotoBefore
}

// AddPhoto appends an uploaded image to the photos of phase.
func (w *Workflow) AddPhoto(ctx context.Context, phase entity.Phase, photo Photo) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.require("add "+phase.String()+" photo", phaseState(phase)); err != nil {
		return 0, err
	}

	if len(photo.Data) == 0 {
		return 0, validationError("photo is empty")
	}

	if photo.ContentType == "" {
		photo.ContentType = "image/jpeg"
	}

	photos := w.draft.photos(phase)
	*photos = append(*photos, photo)

	return len(*photos), nil
}

// RemovePhoto deletes the photo at index from phase.
func (w *Workflow) RemovePhoto(ctx context.Context, phase entity.Phase, index int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.require("remove "+phase.String()+" photo", phaseState(phase)); err != nil {
		return err
	}

	photos := w.draft.photos(phase)
	if index < 0 || index >= len(*photos) {
		return domainerrors.ErrNotFound.WithDetails("no photo at that position")
	}

	*photos = append((*photos)[:index], (*photos)[index+1:]...)

	return nil
}

// Photo returns the photo at index of phase.
func (w *Workflow) Photo(phase entity.Phase, index int) (Photo, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	photos := *w.draft.photos(phase)
	if index < 0 || index >= len(photos) {
		return Photo{}, false
	}

	return photos[index], true
}

// OpenCamera acquires a camera for the current photo step. An already open
// camera is kept.
func (w *Workflow) OpenCamera(ctx context.Context, phase entity.Phase) (service.CameraConstraint, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.require("open camera", phaseState(phase)); err != nil {
		return service.CameraConstraint{}, err
	}

	if w.camera != nil {
		return w.camera.Constraint(), nil
	}

	session, err := AcquireCamera(ctx, w.opts.Camera, w.opts.CameraCascade)
	if err != nil {
		w.logger(ctx).Info("[Capture] Camera unavailable", slog.Any("error", err))
		return service.CameraConstraint{}, err
	}

	w.camera = session

	return session.Constraint(), nil
}

// Shutter captures a frame into the photos of phase. Without an open camera
// the frame is taken with a camera acquired for this shot only. A capture
// failure closes the camera.
func (w *Workflow) Shutter(ctx context.Context, phase entity.Phase) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.require("capture "+phase.String()+" photo", phaseState(phase)); err != nil {
		return 0, err
	}

	var (
		photo Photo
		err   error
	)

	if w.camera != nil {
		photo, err = w.camera.Capture(ctx)
		if err != nil {
			w.closeCamera()
		}
	} else {
		err = WithCamera(ctx, w.opts.Camera, w.opts.CameraCascade, func(s *CameraSession) error {
			var captureErr error
			photo, captureErr = s.Capture(ctx)

			return captureErr
		})
	}

	if err != nil {
		if _, ok := domainerrors.AsAppError(err); ok {
			return 0, err
		}

		return 0, deviceAppError(service.AcquireFailed, err.Error())
	}

	photos := w.draft.photos(phase)
	*photos = append(*photos, photo)

	return len(*photos), nil
}

// CloseCamera releases the camera, if open.
func (w *Workflow) CloseCamera() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.closeCamera()
}

// FinishPhotos freezes the photos of phase and moves on. Finishing the
// before photos stamps the start time.
func (w *Workflow) FinishPhotos(ctx context.Context, phase entity.Phase) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.require("finish "+phase.String()+" photos", phaseState(phase)); err != nil {
		return err
	}

	if len(*w.draft.photos(phase)) == 0 {
		return validationError("at least one " + strings.ToLower(phase.String()) + " photo is required")
	}

	w.closeCamera()

	if phase == entity.PhaseBefore {
		w.draft.StartTime = w.opts.Now()
		w.transition(ctx, StatePhotoAfter)

		return nil
	}

	w.transition(ctx, StateConfirm)

	return nil
}

// Back returns to the previous step, releasing the devices of the step it leaves.
func (w *Workflow) Back(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var to State

	switch w.state {
	case StateServiceSelect:
		if w.Entry() == StateServiceSelect {
			return invalidTransition("back", w.state)
		}
		w.draft.City = ""
		to = StateCitySelect
	case StateLocationSelect:
		w.stopTracking()
		w.draft.ServiceType = ""
		to = StateServiceSelect
	case StatePhotoBefore:
		w.closeCamera()
		w.draft.clearLocation()
		to = StateLocationSelect
	case StatePhotoAfter:
		w.closeCamera()
		w.draft.StartTime = time.Time{}
		to = StatePhotoBefore
	case StateConfirm:
		if w.draft.Progress.Started() {
			return invalidTransition("back after a partial submission", w.state)
		}
		to = StatePhotoAfter
	case StateSubmitFailed:
		to = StateConfirm
	default:
		return invalidTransition("back", w.state)
	}

	w.transition(ctx, to)

	return nil
}

// Cancel discards the draft and returns to the entry state.
func (w *Workflow) Cancel(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state == StateSubmitting {
		return invalidTransition("cancel", w.state)
	}

	w.releaseDevices()
	w.transition(ctx, StateCancelled)
	w.outcome = StateCancelled
	w.lastRecord = nil
	w.reset()

	return nil
}

// Close releases the devices without touching the draft.
func (w *Workflow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.releaseDevices()
}

// checkComplete rejects drafts that may not be submitted.
func (d *Draft) checkComplete() error {
	switch {
	case !d.ServiceType.IsValid():
		return validationError("service type is required")
	case strings.TrimSpace(d.LocationName) == "":
		return validationError("location name is required")
	case len(d.BeforePhotos) == 0:
		return validationError("at least one before photo is required")
	case len(d.AfterPhotos) == 0:
		return validationError("at least one after photo is required")
	default:
		return nil
	}
}

// Submit runs the submission saga. The lock is released while the backend is
// called; other actions are refused until the saga ends. On failure the draft
// and the completed steps are kept so a retry resumes where it stopped.
func (w *Workflow) Submit(ctx context.Context) (*entity.ServiceRecord, error) {
	w.mu.Lock()
	if err := w.require("submit", StateConfirm, StateSubmitFailed); err != nil {
		w.mu.Unlock()
		return nil, err
	}

	if err := w.draft.checkComplete(); err != nil {
		w.mu.Unlock()
		return nil, err
	}

	w.releaseDevices()
	w.draft.EndTime = w.opts.Now()
	w.transition(ctx, StateSubmitting)
	draft := w.draft.clone()
	w.mu.Unlock()

	saga := &submission{gateway: w.opts.Gateway, locations: w.opts.Locations, operator: w.opts.Operator}
	record, err := saga.run(ctx, &draft)

	w.mu.Lock()
	if err != nil {
		w.draft = draft
		w.lastErr = err
		w.transition(ctx, StateSubmitFailed)
		w.mu.Unlock()

		w.logger(ctx).Warn("[Capture] Submission failed",
			slog.String("record_id", draft.Progress.RecordID),
			slog.Any("error", err),
		)

		return nil, err
	}

	w.transition(ctx, StateSubmitted)
	w.outcome = StateSubmitted
	w.lastRecord = record
	w.reset()
	w.mu.Unlock()

	w.logger(ctx).Info("[Capture] Record submitted",
		slog.String("record_id", record.ID),
		slog.String("city", record.LocationCity),
	)

	if w.opts.OnSubmitted != nil {
		w.opts.OnSubmitted(ctx, *record)
	}

	return record, nil
}

// LocationChoice is the resolved location of the draft.
type LocationChoice struct {
	ID      *string  `json:"id,omitempty"`
	Name    string   `json:"name"`
	City    string   `json:"city"`
	Area    *float64 `json:"area,omitempty"`
	GPSUsed bool     `json:"gpsUsed"`
}

// Snapshot is a read-only view of the workflow.
type Snapshot struct {
	ID           string                  `json:"id"`
	State        State                   `json:"state"`
	Entry        State                   `json:"entry"`
	City         string                  `json:"city,omitempty"`
	ServiceType  entity.ServiceType      `json:"serviceType,omitempty"`
	Location     *LocationChoice         `json:"location,omitempty"`
	BeforePhotos int                     `json:"beforePhotos"`
	AfterPhotos  int                     `json:"afterPhotos"`
	StartTime    *time.Time              `json:"startTime,omitempty"`
	CameraOpen   bool                    `json:"cameraOpen"`
	Tracking     TrackingStatus          `json:"tracking"`
	Progress     *Progress               `json:"progress,omitempty"`
	LastError    *domainerrors.ErrorInfo `json:"lastError,omitempty"`
	Outcome      State                   `json:"outcome,omitempty"`
	LastRecord   *entity.ServiceRecord   `json:"lastRecord,omitempty"`
}

// Snapshot returns the current state of the workflow.
func (w *Workflow) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	s := Snapshot{
		ID:           w.id,
		State:        w.state,
		Entry:        w.Entry(),
		City:         w.draft.City,
		ServiceType:  w.draft.ServiceType,
		BeforePhotos: len(w.draft.BeforePhotos),
		AfterPhotos:  len(w.draft.AfterPhotos),
		CameraOpen:   w.camera != nil,
		Tracking:     w.trackingStatus(),
		Outcome:      w.outcome,
		LastRecord:   w.lastRecord,
	}

	if w.draft.LocationName != "" {
		s.Location = &LocationChoice{
			ID:      w.draft.LocationID,
			Name:    w.draft.LocationName,
			City:    w.draft.LocationCity,
			Area:    w.draft.LocationArea,
			GPSUsed: w.draft.GPSUsed,
		}
	}

	if !w.draft.StartTime.IsZero() {
		start := w.draft.StartTime
		s.StartTime = &start
	}

	if w.draft.Progress.Started() {
		progress := w.draft.Progress
		s.Progress = &progress
	}

	if w.lastErr != nil {
		info := domainerrors.Info(w.lastErr)
		s.LastError = &info
	}

	return s
}
