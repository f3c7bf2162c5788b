package handler

import (
	"log/slog"
	"net/http"

	"fieldops/internal/delivery/http/middleware"
	"fieldops/internal/delivery/http/response"
	"fieldops/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GoalHandlerParams holds dependencies for GoalHandler, injected by Fx.
type GoalHandlerParams struct {
	fx.In

	GoalUC usecase.GoalUsecase
	Logger *slog.Logger
}

// GoalHandler manages monthly goals and reports their progress.
type GoalHandler struct {
	goalUC usecase.GoalUsecase
	logger *slog.Logger
}

// NewGoalHandler is the constructor for GoalHandler
func NewGoalHandler(params GoalHandlerParams) *GoalHandler {
	return &GoalHandler{
		goalUC: params.GoalUC,
		logger: params.Logger,
	}
}

func (h *GoalHandler) bindGoal(c echo.Context) (usecase.GoalInput, error) {
	var input usecase.GoalInput
	if err := c.Bind(&input); err != nil {
		return input, response.BindingError(c, "INVALID_INPUT", "Invalid goal input")
	}

	if err := c.Validate(&input); err != nil {
		return input, response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	return input, nil
}

func goalID(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	return id, err == nil
}

// Progress returns the progress of the goals visible to the caller
func (h *GoalHandler) Progress(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Session not found in context")
	}

	progress, err := h.goalUC.Progress(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, progress)
}

// List returns every goal
func (h *GoalHandler) List(c echo.Context) error {
	goals, err := h.goalUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, goals)
}

// Create adds a goal
func (h *GoalHandler) Create(c echo.Context) error {
	input, err := h.bindGoal(c)
	if err != nil || c.Response().Committed {
		return err
	}

	goal, err := h.goalUC.Create(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, goal)
}

// Update replaces the fields of a goal
func (h *GoalHandler) Update(c echo.Context) error {
	id, ok := goalID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Goal ID must be a UUID")
	}

	input, err := h.bindGoal(c)
	if err != nil || c.Response().Committed {
		return err
	}

	goal, err := h.goalUC.Update(c.Request().Context(), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, goal)
}

// Delete removes a goal
func (h *GoalHandler) Delete(c echo.Context) error {
	id, ok := goalID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Goal ID must be a UUID")
	}

	if err := h.goalUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
