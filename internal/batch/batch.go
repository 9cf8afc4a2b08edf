package batch

import "time"

// DocumentStatus records the outcome for one document in a batch.
type DocumentStatus struct {
	File    string `json:"file"`
	Rows    int    `json:"rows"`
	OCRUsed bool   `json:"ocr_used,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Batch represents one processed upload batch and its workbook
type Batch struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Documents []DocumentStatus `json:"documents"`
	RowCount  int              `json:"row_count"`
	Workbook  string           `json:"workbook"` // stored workbook filename
}
