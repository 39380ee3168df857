package presentation

import (
	"encoding/json"
	"io"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatCandidates formats a list of candidates as JSON
func (f *Formatter) FormatCandidates(candidates []CandidateDTO) error {
	return f.encode(candidates)
}

// FormatResult formats a create or delete outcome as JSON
func (f *Formatter) FormatResult(result ResultDTO) error {
	return f.encode(result)
}

func (f *Formatter) encode(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}
