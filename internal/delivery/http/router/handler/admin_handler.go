package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"fieldops/internal/delivery/http/middleware"
	"fieldops/internal/delivery/http/response"
	"fieldops/internal/domain/service"
	"fieldops/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	backupFormField   = "backup"
	backupTimeLayout  = "20060102-1504"
	geoJSONMediaType  = "application/geo+json"
	maxBackupBodySize = 64 << 20
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC  usecase.AdminUsecase
	BackupUC usecase.BackupUsecase
	Logger   *slog.Logger
}

// AdminHandler manages users and locations and runs backups.
type AdminHandler struct {
	adminUC  usecase.AdminUsecase
	backupUC usecase.BackupUsecase
	logger   *slog.Logger
	now      func() time.Time
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC:  params.AdminUC,
		backupUC: params.BackupUC,
		logger:   params.Logger,
		now:      time.Now,
	}
}

// ListLocations returns every location
func (h *AdminHandler) ListLocations(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Session not found in context")
	}

	locations, err := h.adminUC.ListLocations(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, locations)
}

// LocationsGeoJSON returns the located locations as a FeatureCollection
func (h *AdminHandler) LocationsGeoJSON(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Session not found in context")
	}

	data, err := h.adminUC.LocationsGeoJSON(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, geoJSONMediaType, data)
}

// CreateLocation adds a location
func (h *AdminHandler) CreateLocation(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Session not found in context")
	}

	var input usecase.LocationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	location, err := h.adminUC.CreateLocation(c.Request().Context(), session, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, location)
}

// UpdateLocation replaces the fields of a location
func (h *AdminHandler) UpdateLocation(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Session not found in context")
	}

	var input usecase.LocationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	location, err := h.adminUC.UpdateLocation(c.Request().Context(), session, c.Param("id"), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location)
}

// DeleteLocation removes a location
func (h *AdminHandler) DeleteLocation(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Session not found in context")
	}

	if err := h.adminUC.DeleteLocation(c.Request().Context(), session, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListUsers returns every user
func (h *AdminHandler) ListUsers(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Session not found in context")
	}

	users, err := h.adminUC.ListUsers(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

// CreateUser adds a user
func (h *AdminHandler) CreateUser(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Session not found in context")
	}

	var input service.UserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	user, err := h.adminUC.CreateUser(c.Request().Context(), session, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, user)
}

// UpdateUser replaces the fields of a user
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Session not found in context")
	}

	var input service.UserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	user, err := h.adminUC.UpdateUser(c.Request().Context(), session, c.Param("id"), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// DeleteUser removes a user other than the caller
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Session not found in context")
	}

	if err := h.adminUC.DeleteUser(c.Request().Context(), session, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Backup downloads the cached collections and the goals as a JSON file
func (h *AdminHandler) Backup(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Session not found in context")
	}

	data, err := h.backupUC.Export(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	name := "fieldops-backup-" + h.now().Format(backupTimeLayout) + ".json"

	return response.Attachment(c, name, echo.MIMEApplicationJSON, data)
}

// Restore replaces the cached collections and the goals with an uploaded
// backup, sent either as multipart field "backup" or as the raw body.
func (h *AdminHandler) Restore(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Session not found in context")
	}

	data, err := h.readBackup(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Backup file cannot be read")
	}

	if err := h.backupUC.Restore(c.Request().Context(), session, data); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Backup restored"})
}

func (h *AdminHandler) readBackup(c echo.Context) ([]byte, error) {
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		fileHeader, err := c.FormFile(backupFormField)
		if err != nil {
			return nil, err
		}

		file, err := fileHeader.Open()
		if err != nil {
			return nil, err
		}
		defer file.Close()

		return io.ReadAll(io.LimitReader(file, maxBackupBodySize))
	}

	return io.ReadAll(io.LimitReader(c.Request().Body, maxBackupBodySize))
}
