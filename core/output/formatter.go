// Package output renders suggestions for humans and machines.
package output

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"margin-suggest/core/types"
	apperrors "margin-suggest/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal report
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report, suitable for listings and notes
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the report to w
	Render(w io.Writer, report *Report) error
}

// Report is everything a formatter needs for one run
type Report struct {
	Results  []*types.Suggestions `json:"results"`
	Metadata Metadata             `json:"metadata"`
}

// Metadata contains execution context
type Metadata struct {
	Version  string `json:"version"`
	Duration string `json:"duration,omitempty"`
	Count    int    `json:"count"`
}

// NewReport wraps results with their metadata
func NewReport(version string, results ...*types.Suggestions) *Report {
	return &Report{
		Results:  results,
		Metadata: Metadata{Version: version, Count: len(results)},
	}
}

// Registry manages formatter registration
type Registry struct {
	mu         sync.RWMutex
	formatters map[Format]Formatter
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[Format]Formatter)}
}

// DefaultRegistry returns a registry holding the cli, json and markdown formatters
func DefaultRegistry(opts Options) *Registry {
	r := NewRegistry()
	_ = r.Register(NewCLIFormatter(opts))
	_ = r.Register(NewJSONFormatter())
	_ = r.Register(NewMarkdownFormatter(opts))
	return r
}

// Register adds a formatter to the registry
func (r *Registry) Register(f Formatter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.formatters[f.Format()]; exists {
		return fmt.Errorf("formatter %q already registered", f.Format())
	}
	r.formatters[f.Format()] = f
	return nil
}

// Get returns a formatter for a format type
func (r *Registry) Get(format Format) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.formatters[format]
	if !ok {
		return nil, apperrors.NotFound("output format", string(format))
	}
	return f, nil
}

// Formats lists the registered formats, sorted
func (r *Registry) Formats() []Format {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Format, 0, len(r.formatters))
	for f := range r.formatters {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Options tunes the human-readable formatters
type Options struct {
	ShowDetails bool
	NoColor     bool

	// Verbose adds the input hash, timestamp and category benchmarks to CLI output
	Verbose bool
}
