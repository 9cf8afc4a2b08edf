package acquire

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// preparePage enhances a page image for recognition and encodes it as PNG.
// Grayscale plus a contrast and sharpen pass noticeably improves OCR on
// low-quality scans.
func preparePage(img image.Image) ([]byte, error) {
	out := imaging.Grayscale(img)
	out = imaging.AdjustContrast(out, 30)
	out = imaging.Sharpen(out, 1.5)

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("encoding PNG: %w", err)
	}
	return buf.Bytes(), nil
}
