package batch

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"
)

// Upload is one file received from the client, either a document or a
// zip archive of documents.
type Upload struct {
	Name string
	Data []byte
}

// IsZip reports whether the upload looks like a zip archive.
func (u Upload) IsZip() bool {
	return strings.EqualFold(path.Ext(u.Name), ".zip")
}

// expandZip flattens a zip archive into its member files. Directory
// entries and macOS resource junk are skipped; nested directories are
// flattened to their base names.
func expandZip(u Upload) ([]Upload, error) {
	reader, err := zip.NewReader(bytes.NewReader(u.Data), int64(len(u.Data)))
	if err != nil {
		return nil, fmt.Errorf("opening zip %s: %w", u.Name, err)
	}

	uploads := make([]Upload, 0, len(reader.File))
	for _, f := range reader.File {
		if f.FileInfo().IsDir() {
			continue
		}
		name := path.Base(f.Name)
		if strings.HasPrefix(f.Name, "__MACOSX/") || strings.HasPrefix(name, ".") {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening zip member %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading zip member %s: %w", f.Name, err)
		}

		uploads = append(uploads, Upload{Name: name, Data: data})
	}
	return uploads, nil
}
