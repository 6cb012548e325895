package export

import "fmt"

// Dataset is tabular export content. Rows are positional and match Headers.
type Dataset struct {
	Title   string
	Sheet   string
	Headers []string
	Rows    [][]string
}

// Renderer turns a dataset into a downloadable artifact.
type Renderer interface {
	Render(data Dataset) ([]byte, error)
	ContentType() string
	Extension() string
}

func validate(kind string, data Dataset) error {
	if len(data.Headers) == 0 {
		return fmt.Errorf("%s requires at least one header", kind)
	}
	for i, row := range data.Rows {
		if len(row) > len(data.Headers) {
			return fmt.Errorf("%s row %d has %d cells for %d headers", kind, i, len(row), len(data.Headers))
		}
	}
	return nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
