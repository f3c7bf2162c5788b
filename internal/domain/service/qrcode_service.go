package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateRecordQR generates a PNG QR code pointing at a record
	GenerateRecordQR(recordID string) ([]byte, error)

	// ParseRecordQR parses QR code content and returns the record ID
	ParseRecordQR(content string) (string, error)
}
