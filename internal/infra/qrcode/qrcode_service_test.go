package qrcode

import (
	"testing"

	"fieldops/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "")
			assert.NotNil(t, service)
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	cfg := &config.Config{
		QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"},
		Export: &config.ExportConfig{RecordBaseURL: "https://ops.example.com/records/"},
	}

	service := NewFromConfig(cfg)
	recordID, err := service.ParseRecordQR("https://ops.example.com/records/rec-9")
	require.NoError(t, err)
	assert.Equal(t, "rec-9", recordID)
}

func TestQRCodeService_GenerateRecordQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://ops.example.com/records/")

	qrBytes, err := service.GenerateRecordQR("rec-1")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])

	_, err = service.GenerateRecordQR(" ")
	assert.Error(t, err)
}

func TestQRCodeService_GenerateRecordQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", "")

			qrBytes, err := service.GenerateRecordQR("rec-1")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseRecordQR(t *testing.T) {
	withBase := NewQRCodeService(256, "M", "https://ops.example.com/records/")
	withoutBase := NewQRCodeService(256, "M", "")

	tests := []struct {
		name    string
		service interface {
			ParseRecordQR(string) (string, error)
		}
		content string
		want    string
		wantErr string
	}{
		{"record URL", withBase, "https://ops.example.com/records/rec%201", "rec 1", ""},
		{"scheme without base", withoutBase, "fieldops:record:rec-1", "rec-1", ""},
		{"scheme accepted with base", withBase, "fieldops:record:rec-2", "rec-2", ""},
		{"foreign URL", withBase, "https://evil.example.com/records/rec-1", "", "invalid record QR code"},
		{"URL without base", withoutBase, "https://ops.example.com/records/rec-1", "", "invalid record QR code"},
		{"nested path", withBase, "https://ops.example.com/records/a/b", "", "invalid record ID"},
		{"empty ID", withoutBase, "fieldops:record:", "", "invalid record ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.service.ParseRecordQR(tt.content)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
