package usecase

import (
	"context"

	"fieldops/internal/capture"
	"fieldops/internal/domain/entity"
	"fieldops/internal/domain/service"
)

// PhotoUpload is an image sent by the client for one phase.
type PhotoUpload struct {
	ContentType string
	Data        []byte
}

// CaptureUsecase drives the capture workflow of an operator session.
type CaptureUsecase interface {
	// Start discards any workflow of the session and begins a new one.
	Start(ctx context.Context, session *Session) (capture.Snapshot, error)
	// Workflow returns the session's workflow, starting one when missing.
	Workflow(ctx context.Context, session *Session) (*capture.Workflow, error)
	// ReportPosition feeds a position fix of the session's device.
	ReportPosition(session *Session, fix service.PositionUpdate) int
	// ReportPositionError ends the session's position subscriptions with an error.
	ReportPositionError(session *Session, status service.AcquireStatus, reason string)
	// AddPhoto stores an uploaded image in the draft.
	AddPhoto(ctx context.Context, session *Session, phase entity.Phase, upload PhotoUpload) (int, error)
	// Submit runs the submission and refreshes the session's cached records.
	Submit(ctx context.Context, session *Session) (*entity.ServiceRecord, error)
	// End drops the session's workflow and releases its devices.
	End(sessionID string)
	// ServiceTypes is the catalog the operator chooses from.
	ServiceTypes() []entity.ServiceType
	// Cities lists the cities the session's user may select.
	Cities(ctx context.Context, session *Session) ([]string, error)
}
