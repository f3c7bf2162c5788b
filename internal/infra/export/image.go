package export

import (
	"bytes"
	"image"
	"image/jpeg"

	// Registered decoders for photos taken by field clients.
	_ "image/png"

	"fieldops/internal/errors"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

const jpegQuality = 85

// PlacedImage is a photo normalized for placement in a document.
type PlacedImage struct {
	Data   []byte
	Width  int
	Height int
}

// decodeImage decodes jpeg and png photos, falling back to webp.
func decodeImage(raw []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err == nil {
		return img, nil
	}

	if decoded, webpErr := webp.Decode(bytes.NewReader(raw)); webpErr == nil {
		return decoded, nil
	}

	return nil, errors.Wrap(err, "decode image")
}

// NormalizePhoto decodes raw, scales it down to maxWidth pixels wide when it
// is wider, and re-encodes it as JPEG.
func NormalizePhoto(raw []byte, maxWidth int) (PlacedImage, error) {
	img, err := decodeImage(raw)
	if err != nil {
		return PlacedImage{}, err
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return PlacedImage{}, errors.New("image has no pixels")
	}

	if maxWidth > 0 && bounds.Dx() > maxWidth {
		height := max(bounds.Dy()*maxWidth/bounds.Dx(), 1)
		scaled := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
		xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, xdraw.Over, nil)
		img = scaled
	}

	var out bytes.Buffer
	if err := jpeg.Encode(&out, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return PlacedImage{}, errors.Wrap(err, "encode jpeg")
	}

	b := img.Bounds()

	return PlacedImage{Data: out.Bytes(), Width: b.Dx(), Height: b.Dy()}, nil
}
