//go:build !ocr

package acquire

import "errors"

// ErrOCRNotEnabled is returned when tesseract support was not compiled in.
var ErrOCRNotEnabled = errors.New("tesseract support not compiled in, rebuild with -tags ocr")

// Tesseract is a stub used when the ocr build tag is absent.
type Tesseract struct{}

// NewTesseract always fails without the ocr build tag
func NewTesseract(lang string) (*Tesseract, error) {
	return nil, ErrOCRNotEnabled
}

// Recognize always fails without the ocr build tag
func (t *Tesseract) Recognize(png []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// Close is a no-op for the stub
func (t *Tesseract) Close() error {
	return nil
}
