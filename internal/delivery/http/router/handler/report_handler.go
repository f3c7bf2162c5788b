package handler

import (
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"fieldops/internal/delivery/http/middleware"
	"fieldops/internal/delivery/http/response"
	"fieldops/internal/domain/entity"
	"fieldops/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const dateLayout = "2006-01-02"

// ArtifactKeyHeader carries the storage key of a generated export.
const ArtifactKeyHeader = "X-Artifact-Key"

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// ReportHandler serves filtered record lists and their exports.
type ReportHandler struct {
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// ExportRequestBody represents the request body for an export
type ExportRequestBody struct {
	Start        string               `json:"start"`
	End          string               `json:"end"`
	ServiceTypes []entity.ServiceType `json:"serviceTypes"`
	City         string               `json:"city"`
	RecordIDs    []string             `json:"recordIds"`
	All          bool                 `json:"all"`
	Format       usecase.ExportFormat `json:"format" validate:"required,oneof=spreadsheet photos"`
}

// parseDate parses an optional YYYY-MM-DD day in local time.
func parseDate(value string) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}

	t, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return nil, false
	}

	return &t, true
}

// buildQuery assembles a record query from raw filter values.
func buildQuery(start, end string, serviceTypes []entity.ServiceType, city string) (usecase.RecordQuery, string) {
	from, ok := parseDate(start)
	if !ok {
		return usecase.RecordQuery{}, "start must be a YYYY-MM-DD date"
	}

	to, ok := parseDate(end)
	if !ok {
		return usecase.RecordQuery{}, "end must be a YYYY-MM-DD date"
	}

	return usecase.RecordQuery{
		Start:        from,
		End:          to,
		ServiceTypes: serviceTypes,
		City:         strings.TrimSpace(city),
	}, ""
}

// serviceTypesParam reads repeated or comma separated serviceType values.
func serviceTypesParam(c echo.Context) []entity.ServiceType {
	var types []entity.ServiceType
	for _, raw := range c.QueryParams()["serviceType"] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				types = append(types, entity.ServiceType(part))
			}
		}
	}

	return types
}

// Records lists the records matching the query filters
func (h *ReportHandler) Records(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Session not found in context")
	}

	query, problem := buildQuery(c.QueryParam("start"), c.QueryParam("end"), serviceTypesParam(c), c.QueryParam("city"))
	if problem != "" {
		return response.BadRequest(c, "INVALID_FILTER", problem)
	}

	result, err := h.reportUC.Records(c.Request().Context(), session, query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Export renders the selected records and returns the file
func (h *ReportHandler) Export(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Session not found in context")
	}

	var req ExportRequestBody
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid export input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	query, problem := buildQuery(req.Start, req.End, req.ServiceTypes, req.City)
	if problem != "" {
		return response.BadRequest(c, "INVALID_FILTER", problem)
	}

	artifact, err := h.reportUC.Export(c.Request().Context(), session, usecase.ExportRequest{
		Query:     query,
		RecordIDs: req.RecordIDs,
		All:       req.All,
		Format:    req.Format,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(ArtifactKeyHeader, artifact.Key)

	return response.Attachment(c, artifact.Name, artifact.ContentType, artifact.Data)
}

// Artifact downloads a previously generated export
func (h *ReportHandler) Artifact(c echo.Context) error {
	key := strings.TrimPrefix(c.Param("*"), "/")
	if key == "" {
		return response.BadRequest(c, "INVALID_KEY", "Artifact key is required")
	}

	data, err := h.reportUC.Artifact(c.Request().Context(), key)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	return response.Attachment(c, path.Base(key), contentType, data)
}
