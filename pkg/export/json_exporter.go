package export

import (
	"encoding/json"
	"fmt"
)

// JSONExporter renders arbitrary snapshots as indented JSON.
type JSONExporter struct{}

// NewJSONExporter constructs a JSON exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// ContentType implements Renderer.
func (e *JSONExporter) ContentType() string { return "application/json" }

// Extension implements Renderer.
func (e *JSONExporter) Extension() string { return "json" }

// Render encodes the dataset as an array of header-keyed objects.
func (e *JSONExporter) Render(data Dataset) ([]byte, error) {
	if err := validate("json", data); err != nil {
		return nil, err
	}
	records := make([]map[string]string, 0, len(data.Rows))
	for _, row := range data.Rows {
		record := make(map[string]string, len(data.Headers))
		for i, h := range data.Headers {
			record[h] = cell(row, i)
		}
		records = append(records, record)
	}
	return e.RenderValue(records)
}

// RenderValue encodes any snapshot value.
func (e *JSONExporter) RenderValue(v any) ([]byte, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render json: %w", err)
	}
	return out, nil
}
