package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"fieldops/config"
	"fieldops/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

// recordScheme prefixes record QR contents when no record base URL is configured.
const recordScheme = "fieldops:record:"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	recordBaseURL        string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, recordBaseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		recordBaseURL:        strings.TrimSpace(recordBaseURL),
	}
}

// NewFromConfig creates the QR code service from the qrcode and export sections.
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	var baseURL string
	if cfg.Export != nil {
		baseURL = cfg.Export.RecordBaseURL
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, baseURL)
}

func (s *qrcodeService) content(recordID string) string {
	if s.recordBaseURL == "" {
		return recordScheme + recordID
	}

	return s.recordBaseURL + url.PathEscape(recordID)
}

// GenerateRecordQR generates a PNG QR code pointing at a record
func (s *qrcodeService) GenerateRecordQR(recordID string) ([]byte, error) {
	if strings.TrimSpace(recordID) == "" {
		return nil, fmt.Errorf("record ID is required")
	}

	// Generate QR code
	qrCode, err := qrcode.New(s.content(recordID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseRecordQR parses QR code content and returns the record ID
func (s *qrcodeService) ParseRecordQR(content string) (string, error) {
	content = strings.TrimSpace(content)

	var escaped string
	switch {
	case strings.HasPrefix(content, recordScheme):
		escaped = strings.TrimPrefix(content, recordScheme)
	case s.recordBaseURL != "" && strings.HasPrefix(content, s.recordBaseURL):
		escaped = strings.TrimPrefix(content, s.recordBaseURL)
	default:
		return "", fmt.Errorf("invalid record QR code: %q", content)
	}

	recordID, err := url.PathUnescape(escaped)
	if err != nil {
		return "", fmt.Errorf("failed to parse record ID: %w", err)
	}

	if recordID == "" || strings.Contains(recordID, "/") {
		return "", fmt.Errorf("invalid record ID: %q", recordID)
	}

	return recordID, nil
}
