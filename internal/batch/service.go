package batch

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"invoicesheet/internal/acquire"
	"invoicesheet/internal/extract"
	"invoicesheet/internal/report"
)

// IDGenerator generates unique IDs for batches
type IDGenerator interface {
	Generate() string
}

// TimeSource provides the current time
type TimeSource interface {
	Now() time.Time
}

// defaultIDGenerator generates UUID batch IDs
type defaultIDGenerator struct{}

func (g *defaultIDGenerator) Generate() string {
	return uuid.NewString()
}

// defaultTimeSource provides the current time
type defaultTimeSource struct{}

func (t *defaultTimeSource) Now() time.Time {
	return time.Now()
}

// Service handles batch processing operations
type Service struct {
	db          DB
	extractor   acquire.Extractor
	storage     Storage
	idGenerator IDGenerator
	timeSource  TimeSource
}

// NewService creates a new Service with default ID generator and time source
func NewService(db DB, extractor acquire.Extractor, storage Storage) *Service {
	return &Service{
		db:          db,
		extractor:   extractor,
		storage:     storage,
		idGenerator: &defaultIDGenerator{},
		timeSource:  &defaultTimeSource{},
	}
}

// NewServiceWithDeps creates a new Service with custom dependencies for testing
func NewServiceWithDeps(db DB, extractor acquire.Extractor, storage Storage, idGen IDGenerator, timeSrc TimeSource) *Service {
	return &Service{
		db:          db,
		extractor:   extractor,
		storage:     storage,
		idGenerator: idGen,
		timeSource:  timeSrc,
	}
}

// ProcessBatch runs the whole pipeline for one upload: expand zips,
// extract text and rows per document, build the workbook, persist it.
// A document that fails never aborts the batch; its failure is recorded
// and the remaining documents still go through.
func (s *Service) ProcessBatch(uploads []Upload) (*Batch, error) {
	id := s.idGenerator.Generate()
	now := s.timeSource.Now()

	docs, statuses := s.expandUploads(uploads)
	if len(docs) == 0 && len(statuses) == 0 {
		return nil, fmt.Errorf("no supported documents in upload")
	}

	results := make([]extract.DocumentResult, 0, len(docs))
	for _, doc := range docs {
		rows, status := s.processDocument(doc)
		statuses = append(statuses, status)
		result := extract.DocumentResult{SourceFile: doc.Name, Rows: rows}
		if status.Error != "" {
			result.Err = fmt.Errorf("%s", status.Error)
			result.Rows = nil
		}
		results = append(results, result)
	}

	table := extract.BuildTable(results)

	workbook, err := report.WriteWorkbook(table)
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}

	filename := fmt.Sprintf("%s_invoice_output_%s.xlsx", id, now.Format("20060102_150405"))
	savedPath, err := s.storage.Save(filename, workbook)
	if err != nil {
		return nil, fmt.Errorf("saving workbook: %w", err)
	}

	batch := &Batch{
		ID:        id,
		CreatedAt: now,
		Documents: statuses,
		RowCount:  len(table.Rows),
		Workbook:  savedPath,
	}

	if err := s.db.SaveBatch(batch); err != nil {
		// Clean up file if database save fails
		s.storage.Delete(savedPath)
		return nil, fmt.Errorf("saving batch to database: %w", err)
	}

	return batch, nil
}

// expandUploads flattens zip archives and drops unsupported file types,
// recording a status for anything that cannot be processed.
func (s *Service) expandUploads(uploads []Upload) ([]Upload, []DocumentStatus) {
	docs := make([]Upload, 0, len(uploads))
	statuses := make([]DocumentStatus, 0)

	flat := make([]Upload, 0, len(uploads))
	for _, u := range uploads {
		if u.IsZip() {
			members, err := expandZip(u)
			if err != nil {
				slog.Error("Failed to expand zip", "file", u.Name, "error", err)
				statuses = append(statuses, DocumentStatus{File: u.Name, Error: err.Error()})
				continue
			}
			flat = append(flat, members...)
			continue
		}
		flat = append(flat, u)
	}

	for _, u := range flat {
		if !acquire.IsSupported(u.Name) {
			statuses = append(statuses, DocumentStatus{File: u.Name, Error: "unsupported file type"})
			continue
		}
		docs = append(docs, u)
	}
	return docs, statuses
}

// processDocument extracts the rows of one document.
func (s *Service) processDocument(doc Upload) ([]extract.Row, DocumentStatus) {
	status := DocumentStatus{File: doc.Name}

	text, err := s.extractor.ExtractText(doc.Data, acquire.ContentTypeFor(doc.Name))
	if err != nil {
		slog.Error("Failed to extract text",
			"file", doc.Name,
			"file_size", len(doc.Data),
			"error", err,
		)
		status.Error = err.Error()
		return nil, status
	}
	status.OCRUsed = text.OCRUsed

	rows, err := extract.ParseDocument(extract.RawDocument{
		SourceFile: doc.Name,
		Text:       text.Content,
		OCRUsed:    text.OCRUsed,
	})
	if err != nil {
		slog.Warn("No rows extracted", "file", doc.Name, "ocr_used", text.OCRUsed, "error", err)
		status.Error = err.Error()
		return nil, status
	}

	status.Rows = len(rows)
	return rows, status
}

// GetBatch retrieves a batch by ID
func (s *Service) GetBatch(id string) (*Batch, error) {
	batch, err := s.db.GetBatch(id)
	if err != nil {
		return nil, fmt.Errorf("getting batch: %w", err)
	}
	return batch, nil
}

// ListBatches returns all batches
func (s *Service) ListBatches() ([]*Batch, error) {
	batches, err := s.db.ListBatches()
	if err != nil {
		return nil, fmt.Errorf("listing batches: %w", err)
	}
	return batches, nil
}

// GetWorkbook retrieves the workbook file for a batch
func (s *Service) GetWorkbook(id string) ([]byte, string, error) {
	batch, err := s.db.GetBatch(id)
	if err != nil {
		return nil, "", fmt.Errorf("getting batch: %w", err)
	}

	data, err := s.storage.Get(batch.Workbook)
	if err != nil {
		return nil, "", fmt.Errorf("getting workbook file: %w", err)
	}

	return data, batch.Workbook, nil
}
