package usecase

import (
	"context"
	"time"

	"fieldops/internal/domain/entity"
	"fieldops/internal/domain/service"
)

// RecordQuery filters the records of a report.
type RecordQuery struct {
	Start        *time.Time
	End          *time.Time
	ServiceTypes []entity.ServiceType
	City         string
}

// RecordReport is a filtered record list.
type RecordReport struct {
	Records   []entity.ServiceRecord `json:"records"`
	TotalArea float64                `json:"totalArea"`
}

// ExportFormat selects the renderer of an export.
type ExportFormat string

const (
	ExportSpreadsheet ExportFormat = "spreadsheet"
	ExportPhotos      ExportFormat = "photos"
)

// ExportRequest names the filtered records to export. With All set every
// record of the filter is exported, otherwise only RecordIDs.
type ExportRequest struct {
	Query     RecordQuery
	RecordIDs []string
	All       bool
	Format    ExportFormat
}

// ReportUsecase filters records and renders exports.
type ReportUsecase interface {
	Records(ctx context.Context, session *Session, query RecordQuery) (*RecordReport, error)
	// Export renders the selected records and saves the artifact.
	Export(ctx context.Context, session *Session, req ExportRequest) (*service.Artifact, error)
	// Artifact returns a previously saved export.
	Artifact(ctx context.Context, key string) ([]byte, error)
}
