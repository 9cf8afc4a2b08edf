//go:build ocr

package acquire

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract implements the Engine interface using a local tesseract
// installation via gosseract. Requires building with -tags ocr.
type Tesseract struct {
	client *gosseract.Client
}

// NewTesseract creates a new Tesseract Engine instance
func NewTesseract(lang string) (*Tesseract, error) {
	client := gosseract.NewClient()
	if lang != "" {
		if err := client.SetLanguage(lang); err != nil {
			client.Close()
			return nil, fmt.Errorf("setting tesseract language: %w", err)
		}
	}
	return &Tesseract{client: client}, nil
}

// Recognize runs OCR over one PNG page
func (t *Tesseract) Recognize(png []byte) (string, error) {
	if err := t.client.SetImageFromBytes(png); err != nil {
		return "", fmt.Errorf("loading image: %w", err)
	}
	text, err := t.client.Text()
	if err != nil {
		return "", fmt.Errorf("running tesseract: %w", err)
	}
	return text, nil
}

// Close closes the tesseract client
func (t *Tesseract) Close() error {
	return t.client.Close()
}
