package service

import (
	"context"

	"fieldops/internal/domain/entity"
)

// RecordRenderer renders records into a downloadable document.
type RecordRenderer interface {
	Render(ctx context.Context, records []entity.ServiceRecord) ([]byte, error)
	// ContentType is the media type of the rendered document.
	ContentType() string
	// Extension is the file extension of the rendered document, with the dot.
	Extension() string
}
