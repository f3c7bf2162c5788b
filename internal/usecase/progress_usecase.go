package usecase

import (
	"context"

	"fieldops/internal/domain/report"
	"fieldops/internal/domain/service"
)

// ProgressUsecase keeps goal progress current as records are submitted.
type ProgressUsecase interface {
	// RecordSubmitted counts the record towards its (city, month) and returns
	// the progress of every goal of that month. Redelivered events count once.
	RecordSubmitted(ctx context.Context, event *service.RecordSubmittedEvent) ([]report.Progress, error)
}
