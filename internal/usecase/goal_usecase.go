package usecase

import (
	"context"

	"fieldops/internal/domain/entity"
	"fieldops/internal/domain/report"

	"github.com/google/uuid"
)

// GoalInput carries the writable fields of a goal.
type GoalInput struct {
	City       string           `json:"city" validate:"required"`
	Month      entity.YearMonth `json:"month"`
	TargetArea float64          `json:"targetArea" validate:"gte=0"`
}

// GoalUsecase manages monthly area goals and their progress.
type GoalUsecase interface {
	List(ctx context.Context) ([]entity.Goal, error)
	Create(ctx context.Context, input GoalInput) (*entity.Goal, error)
	Update(ctx context.Context, id uuid.UUID, input GoalInput) (*entity.Goal, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Progress returns the progress of the goals visible to the session's user.
	Progress(ctx context.Context, session *Session) ([]report.Progress, error)
	// Replace swaps the whole goal set.
	Replace(ctx context.Context, goals []entity.Goal) error
}
