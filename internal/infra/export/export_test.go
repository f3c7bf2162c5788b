package export

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"fieldops/config"
	"fieldops/internal/domain/entity"
	domainerrors "fieldops/internal/domain/errors"
	mockSvc "fieldops/internal/mocks/service"
	"fieldops/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func ptr[T any](v T) *T { return &v }

func pngPhoto(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		for y := range h {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func testRecords() []entity.ServiceRecord {
	start := time.Date(2024, time.February, 15, 9, 30, 0, 0, time.UTC)

	return []entity.ServiceRecord{
		{
			ID: "rec-1", OperatorName: "Ana", ServiceType: entity.ServiceMowing,
			LocationName: "Praça Central", LocationCity: "Campinas", LocationArea: ptr(1200.5),
			StartTime: start, EndTime: start.Add(time.Hour),
		},
		{
			ID: "rec-2", OperatorName: "Bruno", ServiceType: entity.ServiceSweeping,
			LocationName: "Rua Nova", LocationCity: "Campinas",
			StartTime: start.Add(-24 * time.Hour),
		},
	}
}

func TestSpreadsheetRenderer_Render(t *testing.T) {
	data, err := NewSpreadsheetRenderer().Render(testRecords())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 5, "header, two records, blank, total")

	assert.Equal(t, []string{"City", "Date", "Service", "Location", "Area (m²)"}, rows[0])
	assert.Equal(t, "Campinas", rows[1][0])
	assert.Equal(t, "15/02/2024 09:30", rows[1][1])
	assert.Equal(t, "MOWING", rows[1][2])
	assert.Equal(t, "Praça Central", rows[1][3])
	assert.Empty(t, rows[3])
	assert.Equal(t, "Total", rows[4][0])

	total, err := f.GetCellValue(sheetName, "E5", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "1200.5", total, "a missing area counts as zero")

	styleID, err := f.GetCellStyle(sheetName, "A5")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)
}

func TestSpreadsheetRenderer_Empty(t *testing.T) {
	data, err := NewSpreadsheetRenderer().Render(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Total", rows[2][0])
}

func TestNormalizePhoto(t *testing.T) {
	t.Run("scales wide photos down", func(t *testing.T) {
		img, err := NormalizePhoto(pngPhoto(t, 400, 200), 100)
		require.NoError(t, err)
		assert.Equal(t, 100, img.Width)
		assert.Equal(t, 50, img.Height)

		decoded, err := jpeg.Decode(bytes.NewReader(img.Data))
		require.NoError(t, err)
		assert.Equal(t, 100, decoded.Bounds().Dx())
	})

	t.Run("keeps narrow photos", func(t *testing.T) {
		img, err := NormalizePhoto(pngPhoto(t, 60, 80), 100)
		require.NoError(t, err)
		assert.Equal(t, 60, img.Width)
		assert.Equal(t, 80, img.Height)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := NormalizePhoto([]byte("not an image"), 100)
		assert.Error(t, err)
	})
}

func TestPhotoResolver(t *testing.T) {
	ctx := context.Background()
	photo := pngPhoto(t, 4, 4)

	t.Run("inline photos are decoded without fetching", func(t *testing.T) {
		backend := mockSvc.NewMockBackend(t)

		data, err := NewPhotoResolver(backend).Resolve(ctx, entity.PhotoRef(util.EncodeDataURL("image/png", photo)))
		require.NoError(t, err)
		assert.Equal(t, photo, data)
	})

	t.Run("remote photos are fetched", func(t *testing.T) {
		backend := mockSvc.NewMockBackend(t)
		backend.EXPECT().FetchPhoto(mock.Anything, entity.PhotoRef("/uploads/a.png")).Return(photo, nil).Once()

		data, err := NewPhotoResolver(backend).Resolve(ctx, "/uploads/a.png")
		require.NoError(t, err)
		assert.Equal(t, photo, data)
	})

	t.Run("fetch failures are typed", func(t *testing.T) {
		backend := mockSvc.NewMockBackend(t)
		backend.EXPECT().FetchPhoto(mock.Anything, entity.PhotoRef("/uploads/gone.png")).
			Return(nil, domainerrors.NewBackendError(404, "")).Once()

		_, err := NewPhotoResolver(backend).Resolve(ctx, "/uploads/gone.png")
		assert.ErrorIs(t, err, domainerrors.ErrPhotoFetchFailed)
		assert.Contains(t, err.Error(), "/uploads/gone.png")
	})

	t.Run("broken inline photos are typed", func(t *testing.T) {
		_, err := NewPhotoResolver(mockSvc.NewMockBackend(t)).Resolve(ctx, "data:image/png;base64,@@")
		assert.ErrorIs(t, err, domainerrors.ErrPhotoFetchFailed)
	})
}

type resolverFunc func(ctx context.Context, ref entity.PhotoRef) ([]byte, error)

func (f resolverFunc) Resolve(ctx context.Context, ref entity.PhotoRef) ([]byte, error) {
	return f(ctx, ref)
}

func newDocRenderer(qr bool) *PhotoDocumentRenderer {
	cfg := &config.Config{Export: &config.ExportConfig{PhotoMaxWidth: 64}}
	if !qr {
		return NewPhotoDocumentRenderer(cfg, nil, nil)
	}

	cfg.Export.RecordBaseURL = "https://ops.example.com/records/"

	return NewPhotoDocumentRenderer(cfg, fakeQR{}, nil)
}

type fakeQR struct{}

func (fakeQR) GenerateRecordQR(string) ([]byte, error) { return qrPNG, nil }

func (fakeQR) ParseRecordQR(string) (string, error) { return "", errors.New("unused") }

var qrPNG = func() []byte {
	var buf bytes.Buffer
	_ = png.Encode(&buf, image.NewGray(image.Rect(0, 0, 21, 21)))
	return buf.Bytes()
}()

func TestPhotoDocumentRenderer_Render(t *testing.T) {
	photo := pngPhoto(t, 120, 90)
	records := testRecords()
	records[0].BeforePhotos = []entity.PhotoRef{"/b1", "/b2", "/b3"}
	records[0].AfterPhotos = []entity.PhotoRef{"/a1"}

	var fetched atomic.Int32
	resolver := resolverFunc(func(_ context.Context, _ entity.PhotoRef) ([]byte, error) {
		fetched.Add(1)
		return photo, nil
	})

	data, err := newDocRenderer(true).Render(context.Background(), records, resolver)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Equal(t, int32(4), fetched.Load())
}

func TestPhotoDocumentRenderer_OverflowAddsPages(t *testing.T) {
	photo := pngPhoto(t, 60, 90)
	records := testRecords()[:1]
	for range 10 {
		records[0].BeforePhotos = append(records[0].BeforePhotos, "/p")
	}

	resolver := resolverFunc(func(context.Context, entity.PhotoRef) ([]byte, error) { return photo, nil })

	data, err := newDocRenderer(false).Render(context.Background(), records, resolver)
	require.NoError(t, err)
	assert.Greater(t, bytes.Count(data, []byte("/Type /Page\n")), 1, "five tall rows cannot fit one page")
}

func TestPhotoDocumentRenderer_FetchFailureAborts(t *testing.T) {
	photo := pngPhoto(t, 10, 10)
	records := testRecords()
	records[0].BeforePhotos = []entity.PhotoRef{"/ok", "/missing"}
	records[1].AfterPhotos = []entity.PhotoRef{"/ok"}

	resolver := resolverFunc(func(_ context.Context, ref entity.PhotoRef) ([]byte, error) {
		if ref == "/missing" {
			return nil, domainerrors.ErrPhotoFetchFailed.WithDetails("/missing: not found")
		}
		return photo, nil
	})

	data, err := newDocRenderer(false).Render(context.Background(), records, resolver)
	assert.Nil(t, data)
	assert.ErrorIs(t, err, domainerrors.ErrPhotoFetchFailed)
}

func TestPhotoDocumentRenderer_UndecodablePhotoAborts(t *testing.T) {
	records := testRecords()[:1]
	records[0].AfterPhotos = []entity.PhotoRef{"/corrupt"}

	resolver := resolverFunc(func(context.Context, entity.PhotoRef) ([]byte, error) { return []byte("corrupt"), nil })

	_, err := newDocRenderer(false).Render(context.Background(), records, resolver)
	require.ErrorIs(t, err, domainerrors.ErrPhotoFetchFailed)
	assert.Contains(t, err.Error(), "record rec-1, photo 1")
}

func TestPhotoDocumentRenderer_QRFailureIsLogged(t *testing.T) {
	qr := mockSvc.NewMockQRCodeService(t)
	qr.EXPECT().GenerateRecordQR("rec-1").Return(nil, errors.New("encoder down"))

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	cfg := &config.Config{Export: &config.ExportConfig{RecordBaseURL: "https://ops.example.com/records/"}}
	resolver := resolverFunc(func(context.Context, entity.PhotoRef) ([]byte, error) { return nil, nil })

	data, err := NewPhotoDocumentRenderer(cfg, qr, logger).Render(context.Background(), testRecords()[:1], resolver)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Contains(t, logs.String(), `"record_id":"rec-1"`)
	assert.Contains(t, logs.String(), "encoder down")
}

func TestPhotoDocumentRenderer_NoRecords(t *testing.T) {
	data, err := newDocRenderer(false).Render(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestExporters(t *testing.T) {
	sheet := NewSpreadsheetExporter()
	assert.Equal(t, SpreadsheetContentType, sheet.ContentType())
	assert.Equal(t, ".xlsx", sheet.Extension())

	data, err := sheet.Render(context.Background(), testRecords())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("PK")), "xlsx is a zip archive")

	backend := mockSvc.NewMockBackend(t)
	backend.EXPECT().FetchPhoto(mock.Anything, entity.PhotoRef("/uploads/a.png")).Return(pngPhoto(t, 8, 8), nil).Once()

	records := testRecords()[:1]
	records[0].BeforePhotos = []entity.PhotoRef{"/uploads/a.png"}

	doc := NewPhotoDocumentExporter(&config.Config{}, nil, backend, nil)
	assert.Equal(t, PDFContentType, doc.ContentType())
	assert.Equal(t, ".pdf", doc.Extension())

	data, err = doc.Render(context.Background(), records)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}
