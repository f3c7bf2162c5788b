package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"fieldops/config"
	"fieldops/internal/domain/entity"
	domainerrors "fieldops/internal/domain/errors"
	"fieldops/internal/domain/service"
	"fieldops/internal/errors"

	"github.com/go-pdf/fpdf"
	"golang.org/x/sync/errgroup"
)

const (
	// PDFContentType is the media type of rendered photo documents.
	PDFContentType = "application/pdf"

	pageMargin    = 15.0
	gridGap       = 6.0
	maxCellHeight = 95.0
	qrSize        = 28.0
	lineHeight    = 6.0

	defaultFetchConcurrency = 4
)

// PhotoDocumentRenderer renders records and their photos as a PDF.
type PhotoDocumentRenderer struct {
	qr            service.QRCodeService
	photoMaxWidth int
	concurrency   int
	logger        *slog.Logger
}

// NewPhotoDocumentRenderer creates the renderer. qr may be nil, in which
// case pages carry no record QR code.
func NewPhotoDocumentRenderer(cfg *config.Config, qr service.QRCodeService, logger *slog.Logger) *PhotoDocumentRenderer {
	if logger == nil {
		logger = slog.Default()
	}

	r := &PhotoDocumentRenderer{qr: qr, concurrency: defaultFetchConcurrency, logger: logger}
	if cfg.Export != nil {
		r.photoMaxWidth = cfg.Export.PhotoMaxWidth
		if cfg.Export.RecordBaseURL == "" {
			r.qr = nil
		}
	}

	return r
}

// recordPhotos holds the normalized photos of one record.
type recordPhotos struct {
	before []PlacedImage
	after  []PlacedImage
}

// Render resolves every photo first and aborts on the first photo that
// cannot be fetched or decoded; pages are only composed once all photos are
// placeable.
func (r *PhotoDocumentRenderer) Render(ctx context.Context, records []entity.ServiceRecord, resolver PhotoResolver) ([]byte, error) {
	photos, err := r.resolveAll(ctx, records, resolver)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.SetTitle("Service records", true)
	pdf.SetCreator("fieldops", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	doc := &photoDoc{pdf: pdf, tr: tr}
	for i, rec := range records {
		if err := doc.record(rec, photos[i], r.recordQR(ctx, rec.ID)); err != nil {
			return nil, err
		}
	}

	if len(records) == 0 {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, lineHeight, tr("No records selected."), "", 1, "L", false, 0, "")
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, errors.Wrap(err, "render pdf")
	}

	return out.Bytes(), nil
}

// recordQR returns the record's QR image, or nil when none can be drawn. A
// failed code leaves the page without it rather than failing the export.
func (r *PhotoDocumentRenderer) recordQR(ctx context.Context, recordID string) []byte {
	if r.qr == nil || recordID == "" {
		return nil
	}

	png, err := r.qr.GenerateRecordQR(recordID)
	if err != nil {
		r.logger.WarnContext(ctx, "[Export] Record QR code skipped",
			slog.String("record_id", recordID),
			slog.Any("error", err),
		)

		return nil
	}

	return png
}

func (r *PhotoDocumentRenderer) resolveAll(ctx context.Context, records []entity.ServiceRecord, resolver PhotoResolver) ([]recordPhotos, error) {
	out := make([]recordPhotos, len(records))
	for i, rec := range records {
		out[i] = recordPhotos{
			before: make([]PlacedImage, len(rec.BeforePhotos)),
			after:  make([]PlacedImage, len(rec.AfterPhotos)),
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.concurrency, 1))

	schedule := func(rec entity.ServiceRecord, refs []entity.PhotoRef, dst []PlacedImage) {
		for j, ref := range refs {
			g.Go(func() error {
				raw, err := resolver.Resolve(gctx, ref)
				if err != nil {
					return err
				}

				img, err := NormalizePhoto(raw, r.photoMaxWidth)
				if err != nil {
					return domainerrors.ErrPhotoFetchFailed.WithDetails(
						fmt.Sprintf("record %s, photo %d: %s", rec.ID, j+1, err.Error()))
				}
				dst[j] = img

				return nil
			})
		}
	}

	for i, rec := range records {
		schedule(rec, rec.BeforePhotos, out[i].before)
		schedule(rec, rec.AfterPhotos, out[i].after)
	}

	if err := g.Wait(); err != nil {
		if _, ok := domainerrors.AsAppError(err); ok {
			return nil, err
		}

		return nil, domainerrors.ErrPhotoFetchFailed.WithDetails(err.Error())
	}

	return out, nil
}

type photoDoc struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	images int
}

func (d *photoDoc) record(rec entity.ServiceRecord, photos recordPhotos, qrPNG []byte) error {
	pdf := d.pdf
	pdf.AddPage()

	left, top, right, _ := pdf.GetMargins()
	pageW, _ := pdf.GetPageSize()
	textW := pageW - left - right

	if qrPNG != nil {
		name := d.register(qrPNG, "PNG")
		pdf.ImageOptions(name, pageW-right-qrSize, top, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		textW -= qrSize + gridGap
	}

	pdf.SetFont("Helvetica", "B", 14)
	pdf.MultiCell(textW, 7, d.tr(rec.LocationName), "", "L", false)

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range summaryLines(rec) {
		pdf.SetX(left)
		pdf.CellFormat(textW, lineHeight, d.tr(line), "", 1, "L", false, 0, "")
	}

	if qrPNG != nil && pdf.GetY() < top+qrSize {
		pdf.SetY(top + qrSize)
	}
	pdf.Ln(4)

	d.grid("Before", photos.before)
	d.grid("After", photos.after)

	return errors.WithStack(pdf.Error())
}

func summaryLines(rec entity.ServiceRecord) []string {
	period := rec.StartTime.Format(dateTimeLayout)
	if !rec.EndTime.IsZero() {
		period += " - " + rec.EndTime.Format(dateTimeLayout)
	}

	gps := "no"
	if rec.GPSUsed {
		gps = "yes"
	}

	return []string{
		"City: " + rec.LocationCity,
		"Date: " + period,
		"Service: " + rec.ServiceType.String(),
		"Area: " + strconv.FormatFloat(rec.Area(), 'f', 2, 64) + " m²",
		"Operator: " + strings.TrimSpace(rec.OperatorName),
		"Location by GPS: " + gps,
	}
}

// grid places images two per row, starting a new page when a row does not
// fit in the remaining space.
func (d *photoDoc) grid(title string, images []PlacedImage) {
	pdf := d.pdf
	left, top, right, bottom := pdf.GetMargins()
	pageW, pageH := pdf.GetPageSize()
	colW := (pageW - left - right - gridGap) / 2

	if pdf.GetY()+lineHeight+lineHeight > pageH-bottom {
		pdf.AddPage()
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetX(left)
	pdf.CellFormat(0, 8, d.tr(title), "B", 1, "L", false, 0, "")
	pdf.Ln(2)

	if len(images) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, lineHeight, d.tr("No photos."), "", 1, "L", false, 0, "")
		pdf.Ln(2)

		return
	}

	for i := 0; i < len(images); i += 2 {
		row := images[i:min(i+2, len(images))]

		rowH := 0.0
		sizes := make([][2]float64, len(row))
		for j, img := range row {
			w, h := fit(img, colW, maxCellHeight)
			sizes[j] = [2]float64{w, h}
			rowH = max(rowH, h)
		}

		if pdf.GetY()+rowH > pageH-bottom {
			pdf.AddPage()
			pdf.SetY(top)
		}

		y := pdf.GetY()
		for j, img := range row {
			name := d.register(img.Data, "JPG")
			x := left + float64(j)*(colW+gridGap) + (colW-sizes[j][0])/2
			pdf.ImageOptions(name, x, y, sizes[j][0], sizes[j][1], false, fpdf.ImageOptions{ImageType: "JPG"}, 0, "")
		}

		pdf.SetY(y + rowH + gridGap)
	}
}

// fit scales an image to maxW wide, shrinking further when taller than maxH.
func fit(img PlacedImage, maxW, maxH float64) (float64, float64) {
	if img.Width <= 0 || img.Height <= 0 {
		return maxW, maxW
	}

	w := maxW
	h := w * float64(img.Height) / float64(img.Width)
	if h > maxH {
		h = maxH
		w = h * float64(img.Width) / float64(img.Height)
	}

	return w, h
}

func (d *photoDoc) register(data []byte, imageType string) string {
	d.images++
	name := "img" + strconv.Itoa(d.images)
	d.pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: imageType}, bytes.NewReader(data))

	return name
}
