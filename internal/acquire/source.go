package acquire

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Text is the raw text pulled out of one uploaded document.
type Text struct {
	Content string
	OCRUsed bool
}

// Engine transcribes a rendered page image (PNG) into plain text.
type Engine interface {
	Recognize(png []byte) (string, error)
	// Close closes the engine and releases resources
	Close() error
}

// Extractor turns an uploaded file into plain text.
type Extractor interface {
	ExtractText(data []byte, contentType string) (Text, error)
}

// ErrOCRDisabled is returned for image inputs when no engine is configured.
var ErrOCRDisabled = errors.New("no ocr engine configured")

// Options configures a DocumentExtractor.
type Options struct {
	// Engine handles the OCR fallback. Nil disables OCR entirely: image
	// uploads fail and PDFs rely on their text layer alone.
	Engine Engine
	// MinTextChars is the minimum usable text-layer length. Shorter output
	// is treated as a scanned PDF and routed through OCR.
	MinTextChars int
}

const defaultMinTextChars = 40

// DocumentExtractor extracts text from PDFs and scanned images. The PDF
// text layer is always tried first; OCR is the fallback, never the default.
type DocumentExtractor struct {
	engine       Engine
	minTextChars int
}

// NewDocumentExtractor creates a new DocumentExtractor instance
func NewDocumentExtractor(opts Options) *DocumentExtractor {
	min := opts.MinTextChars
	if min <= 0 {
		min = defaultMinTextChars
	}
	return &DocumentExtractor{
		engine:       opts.Engine,
		minTextChars: min,
	}
}

// ExtractText pulls the text out of one document.
func (e *DocumentExtractor) ExtractText(data []byte, contentType string) (Text, error) {
	mimeType := normalizeContentType(contentType)

	if mimeType == "application/pdf" {
		text, err := pdfText(data)
		if len(strings.TrimSpace(text)) >= e.minTextChars {
			return Text{Content: text}, nil
		}
		if e.engine == nil {
			if err != nil && strings.TrimSpace(text) == "" {
				return Text{}, fmt.Errorf("reading pdf text: %w", err)
			}
			return Text{Content: text}, nil
		}
		return e.recognizePDF(data)
	}

	// Images always go through OCR.
	if e.engine == nil {
		return Text{}, ErrOCRDisabled
	}
	return e.recognizeImage(data, mimeType)
}

func (e *DocumentExtractor) recognizePDF(data []byte) (Text, error) {
	pages, err := renderPages(data)
	if err != nil {
		return Text{}, err
	}

	var b strings.Builder
	for n, img := range pages {
		png, err := preparePage(img)
		if err != nil {
			return Text{}, fmt.Errorf("preparing page %d: %w", n+1, err)
		}
		text, err := e.engine.Recognize(png)
		if err != nil {
			return Text{}, fmt.Errorf("recognizing page %d: %w", n+1, err)
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(text)
	}
	return Text{Content: b.String(), OCRUsed: true}, nil
}

func (e *DocumentExtractor) recognizeImage(data []byte, mimeType string) (Text, error) {
	img, err := decodeImage(data, mimeType)
	if err != nil {
		return Text{}, err
	}
	png, err := preparePage(img)
	if err != nil {
		return Text{}, fmt.Errorf("preparing image: %w", err)
	}
	text, err := e.engine.Recognize(png)
	if err != nil {
		return Text{}, fmt.Errorf("recognizing image: %w", err)
	}
	return Text{Content: text, OCRUsed: true}, nil
}

// contentTypes maps upload extensions to the MIME types the extractor
// understands.
var contentTypes = map[string]string{
	".pdf":  "application/pdf",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".heic": "image/heic",
	".heif": "image/heif",
}

// ContentTypeFor maps a file name to its MIME type, or "" when the
// extension is not a supported document type.
func ContentTypeFor(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return contentTypes[ext]
}

// IsSupported reports whether the file name carries a supported extension.
func IsSupported(filename string) bool {
	return ContentTypeFor(filename) != ""
}

func normalizeContentType(contentType string) string {
	mimeType := strings.ToLower(strings.TrimSpace(contentType))
	if mimeType == "" {
		mimeType = "application/pdf" // default
	}
	return mimeType
}
