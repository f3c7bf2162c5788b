package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"fieldops/internal/capture"
	"fieldops/internal/delivery/http/middleware"
	"fieldops/internal/delivery/http/response"
	"fieldops/internal/domain/entity"
	"fieldops/internal/domain/service"
	"fieldops/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const photoFormField = "photo"

// CaptureHandlerParams holds dependencies for CaptureHandler, injected by Fx.
type CaptureHandlerParams struct {
	fx.In

	CaptureUC usecase.CaptureUsecase
	Logger    *slog.Logger
}

// CaptureHandler drives the capture workflow of the calling operator.
type CaptureHandler struct {
	captureUC usecase.CaptureUsecase
	logger    *slog.Logger
}

// NewCaptureHandler is the constructor for CaptureHandler
func NewCaptureHandler(params CaptureHandlerParams) *CaptureHandler {
	return &CaptureHandler{
		captureUC: params.CaptureUC,
		logger:    params.Logger,
	}
}

// SelectCityRequest represents the request body for choosing a city
type SelectCityRequest struct {
	City string `json:"city" validate:"required"`
}

// SelectServiceRequest represents the request body for choosing a service type
type SelectServiceRequest struct {
	ServiceType entity.ServiceType `json:"serviceType" validate:"required"`
}

// PositionFixRequest represents a position reported by the client device
type PositionFixRequest struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Accuracy  float64 `json:"accuracy" validate:"gte=0"`
}

// PositionErrorRequest represents a refused or failed position request of the client device
type PositionErrorRequest struct {
	Status string `json:"status" validate:"required,oneof=DENIED UNAVAILABLE FAILED"`
	Reason string `json:"reason"`
}

// SelectLocationRequest represents the request body for choosing a known location
type SelectLocationRequest struct {
	LocationID string `json:"locationId" validate:"required"`
}

// CreateLocationRequest represents the request body for naming a new location
type CreateLocationRequest struct {
	Name string `json:"name" validate:"required"`
}

// CameraResponse describes an opened camera
type CameraResponse struct {
	Facing   service.FacingMode `json:"facing"`
	Exact    bool               `json:"exact"`
	Snapshot capture.Snapshot   `json:"snapshot"`
}

// PhotoCountResponse reports the number of photos of a phase after a change
type PhotoCountResponse struct {
	Count    int              `json:"count"`
	Snapshot capture.Snapshot `json:"snapshot"`
}

// workflow resolves the session and its workflow.
func (h *CaptureHandler) workflow(c echo.Context) (*capture.Workflow, error) {
	session, ok := middleware.GetSession(c)
	if !ok {
		return nil, response.Unauthorized(c, "UNAUTHORIZED", "Session not found in context")
	}

	w, err := h.captureUC.Workflow(c.Request().Context(), session)
	if err != nil {
		return nil, response.HandleAppError(c, err)
	}

	return w, nil
}

// act runs one workflow action and answers with the resulting snapshot.
func (h *CaptureHandler) act(c echo.Context, action func(ctx context.Context, w *capture.Workflow) error) error {
	w, err := h.workflow(c)
	if w == nil {
		return err
	}

	if err := action(c.Request().Context(), w); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, w.Snapshot())
}

func phaseParam(c echo.Context) (entity.Phase, bool) {
	return entity.ParsePhase(c.Param("phase"))
}

// Start discards the current workflow and begins a new one
func (h *CaptureHandler) Start(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Session not found in context")
	}

	snapshot, err := h.captureUC.Start(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, snapshot)
}

// Get returns the current workflow snapshot
func (h *CaptureHandler) Get(c echo.Context) error {
	return h.act(c, func(context.Context, *capture.Workflow) error { return nil })
}

// SelectCity chooses the city of the draft
func (h *CaptureHandler) SelectCity(c echo.Context) error {
	var req SelectCityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid city input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	return h.act(c, func(ctx context.Context, w *capture.Workflow) error {
		return w.SelectCity(ctx, req.City)
	})
}

// SelectService chooses the service type of the draft
func (h *CaptureHandler) SelectService(c echo.Context) error {
	var req SelectServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	return h.act(c, func(ctx context.Context, w *capture.Workflow) error {
		return w.SelectService(ctx, req.ServiceType)
	})
}

// StartTracking begins GPS matching for the location step
func (h *CaptureHandler) StartTracking(c echo.Context) error {
	return h.act(c, func(ctx context.Context, w *capture.Workflow) error {
		return w.StartTracking(ctx)
	})
}

// StopTracking ends GPS matching
func (h *CaptureHandler) StopTracking(c echo.Context) error {
	return h.act(c, func(_ context.Context, w *capture.Workflow) error {
		w.StopTracking()
		return nil
	})
}

// Tracking returns the latest tracking result for polling clients
func (h *CaptureHandler) Tracking(c echo.Context) error {
	w, err := h.workflow(c)
	if w == nil {
		return err
	}

	return response.Success(c, http.StatusOK, w.CurrentMatch())
}

// ReportFix feeds a position fix of the calling device
func (h *CaptureHandler) ReportFix(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Session not found in context")
	}

	var req PositionFixRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid position input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	delivered := h.captureUC.ReportPosition(session, service.PositionUpdate{
		Coordinate: entity.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude},
		Accuracy:   req.Accuracy,
	})

	return response.Success(c, http.StatusAccepted, map[string]int{"delivered": delivered})
}

// ReportPositionError ends position tracking with the reported device error
func (h *CaptureHandler) ReportPositionError(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Session not found in context")
	}

	var req PositionErrorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid position error input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	h.captureUC.ReportPositionError(session, service.AcquireStatus(req.Status), req.Reason)

	return response.Success(c, http.StatusAccepted, map[string]string{"message": "Position error recorded"})
}

// ConfirmMatch accepts the location found by tracking
func (h *CaptureHandler) ConfirmMatch(c echo.Context) error {
	return h.act(c, func(ctx context.Context, w *capture.Workflow) error {
		return w.ConfirmMatch(ctx)
	})
}

// SelectLocation picks a known location by ID
func (h *CaptureHandler) SelectLocation(c echo.Context) error {
	var req SelectLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	return h.act(c, func(ctx context.Context, w *capture.Workflow) error {
		return w.SelectLocation(ctx, req.LocationID)
	})
}

// CreateLocation names a location that is not known yet
func (h *CaptureHandler) CreateLocation(c echo.Context) error {
	var req CreateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	return h.act(c, func(ctx context.Context, w *capture.Workflow) error {
		return w.CreateLocation(ctx, req.Name)
	})
}

// SearchLocations lists the city's locations whose name contains q
func (h *CaptureHandler) SearchLocations(c echo.Context) error {
	w, err := h.workflow(c)
	if w == nil {
		return err
	}

	locations, err := w.SearchLocations(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, locations)
}

// UploadPhoto adds an uploaded image to the photos of a phase
func (h *CaptureHandler) UploadPhoto(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Session not found in context")
	}

	phase, ok := phaseParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_PHASE", "Phase must be BEFORE or AFTER")
	}

	fileHeader, err := c.FormFile(photoFormField)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Multipart field \""+photoFormField+"\" is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Uploaded photo cannot be read")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Uploaded photo cannot be read")
	}

	count, err := h.captureUC.AddPhoto(c.Request().Context(), session, phase, usecase.PhotoUpload{
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Data:        data,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	w, err := h.workflow(c)
	if w == nil {
		return err
	}

	return response.Success(c, http.StatusCreated, PhotoCountResponse{Count: count, Snapshot: w.Snapshot()})
}

// GetPhoto serves a draft photo for preview
func (h *CaptureHandler) GetPhoto(c echo.Context) error {
	phase, ok := phaseParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_PHASE", "Phase must be BEFORE or AFTER")
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INDEX", "Photo index must be a number")
	}

	w, err := h.workflow(c)
	if w == nil {
		return err
	}

	photo, ok := w.Photo(phase, index)
	if !ok {
		return response.NotFound(c, "NOT_FOUND", "No photo at that position")
	}

	return c.Blob(http.StatusOK, photo.ContentType, photo.Data)
}

// RemovePhoto deletes a photo of a phase
func (h *CaptureHandler) RemovePhoto(c echo.Context) error {
	phase, ok := phaseParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_PHASE", "Phase must be BEFORE or AFTER")
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INDEX", "Photo index must be a number")
	}

	return h.act(c, func(ctx context.Context, w *capture.Workflow) error {
		return w.RemovePhoto(ctx, phase, index)
	})
}

// OpenCamera acquires a camera for the photo step
func (h *CaptureHandler) OpenCamera(c echo.Context) error {
	phase, ok := phaseParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_PHASE", "Phase must be BEFORE or AFTER")
	}

	w, err := h.workflow(c)
	if w == nil {
		return err
	}

	constraint, err := w.OpenCamera(c.Request().Context(), phase)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CameraResponse{
		Facing:   constraint.Facing,
		Exact:    constraint.Exact,
		Snapshot: w.Snapshot(),
	})
}

// Shutter captures a frame from the open camera
func (h *CaptureHandler) Shutter(c echo.Context) error {
	phase, ok := phaseParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_PHASE", "Phase must be BEFORE or AFTER")
	}

	w, err := h.workflow(c)
	if w == nil {
		return err
	}

	count, err := w.Shutter(c.Request().Context(), phase)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, PhotoCountResponse{Count: count, Snapshot: w.Snapshot()})
}

// CloseCamera releases the open camera
func (h *CaptureHandler) CloseCamera(c echo.Context) error {
	return h.act(c, func(_ context.Context, w *capture.Workflow) error {
		w.CloseCamera()
		return nil
	})
}

// FinishPhotos moves on from a photo step
func (h *CaptureHandler) FinishPhotos(c echo.Context) error {
	phase, ok := phaseParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_PHASE", "Phase must be BEFORE or AFTER")
	}

	return h.act(c, func(ctx context.Context, w *capture.Workflow) error {
		return w.FinishPhotos(ctx, phase)
	})
}

// Back returns to the previous step
func (h *CaptureHandler) Back(c echo.Context) error {
	return h.act(c, func(ctx context.Context, w *capture.Workflow) error {
		return w.Back(ctx)
	})
}

// Cancel discards the draft
func (h *CaptureHandler) Cancel(c echo.Context) error {
	return h.act(c, func(ctx context.Context, w *capture.Workflow) error {
		return w.Cancel(ctx)
	})
}

// Submit sends the draft to the backend
func (h *CaptureHandler) Submit(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Session not found in context")
	}

	record, err := h.captureUC.Submit(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, record)
}

// ServiceTypes lists the service catalog
func (h *CaptureHandler) ServiceTypes(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.captureUC.ServiceTypes())
}

// Cities lists the cities the caller may select
func (h *CaptureHandler) Cities(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Session not found in context")
	}

	cities, err := h.captureUC.Cities(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cities)
}
