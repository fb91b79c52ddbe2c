package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter writes a single suggestion as an object and several as a report
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format implements Formatter
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render implements Formatter
func (f *JSONFormatter) Render(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if len(report.Results) == 1 {
		return enc.Encode(report.Results[0])
	}
	return enc.Encode(report)
}
