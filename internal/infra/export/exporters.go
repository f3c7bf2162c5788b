package export

import (
	"context"
	"log/slog"

	"fieldops/config"
	"fieldops/internal/domain/entity"
	"fieldops/internal/domain/service"
)

type spreadsheetExporter struct {
	renderer *SpreadsheetRenderer
}

// NewSpreadsheetExporter exposes the spreadsheet renderer as a RecordRenderer.
func NewSpreadsheetExporter() service.RecordRenderer {
	return &spreadsheetExporter{renderer: NewSpreadsheetRenderer()}
}

func (e *spreadsheetExporter) Render(_ context.Context, records []entity.ServiceRecord) ([]byte, error) {
	return e.renderer.Render(records)
}

func (e *spreadsheetExporter) ContentType() string { return SpreadsheetContentType }

func (e *spreadsheetExporter) Extension() string { return ".xlsx" }

type photoDocumentExporter struct {
	renderer *PhotoDocumentRenderer
	resolver PhotoResolver
}

// NewPhotoDocumentExporter exposes the photo document renderer as a
// RecordRenderer that resolves photos through the backend.
func NewPhotoDocumentExporter(cfg *config.Config, qr service.QRCodeService, photos service.PhotoGateway, logger *slog.Logger) service.RecordRenderer {
	return &photoDocumentExporter{
		renderer: NewPhotoDocumentRenderer(cfg, qr, logger),
		resolver: NewPhotoResolver(photos),
	}
}

func (e *photoDocumentExporter) Render(ctx context.Context, records []entity.ServiceRecord) ([]byte, error) {
	return e.renderer.Render(ctx, records, e.resolver)
}

func (e *photoDocumentExporter) ContentType() string { return PDFContentType }

func (e *photoDocumentExporter) Extension() string { return ".pdf" }
