package dto

import "time"

// ExportFormat names a supported export artifact type.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatPDF  ExportFormat = "pdf"
	ExportFormatXLSX ExportFormat = "xlsx"
	ExportFormatJSON ExportFormat = "json"
)

// ExportResult points at a generated artifact.
type ExportResult struct {
	Filename  string       `json:"filename"`
	Format    ExportFormat `json:"format"`
	URL       string       `json:"url"`
	ExpiresAt time.Time    `json:"expires_at"`
}
