// Package output renders resolution and search results.
//
// Text output mirrors what a shell user expects: resolved values as indented
// JSON, paths one per line, and matches as "path: value" with the value in
// compact JSON. JSON and YAML output wrap the same data in machine readable
// documents.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/ebar/internal/query"
	"github.com/jacoelho/ebar/internal/viewpath"
)

// Printer writes results to a writer in a fixed format.
type Printer struct {
	writer io.Writer
	format Format
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{
		writer: w,
		format: format,
	}
}

// Format returns the format the printer was created with.
func (p *Printer) Format() Format {
	return p.format
}

type matchRecord struct {
	Path     string `json:"path" yaml:"path"`
	JSONPath string `json:"jsonpath" yaml:"jsonpath"`
	Value    any    `json:"value" yaml:"value"`
}

// Value writes a single document value.
func (p *Printer) Value(v any) error {
	switch p.format {
	case FormatYAML:
		return p.writeYAML(v)
	case FormatJSON, FormatText:
		fallthrough
	default:
		return p.writeJSON(v, true)
	}
}

// Values writes the nodes selected by a JSONPath expression. Text output
// writes each value on its own, JSON and YAML output write a single list.
func (p *Printer) Values(values []any) error {
	switch p.format {
	case FormatJSON:
		return p.writeJSON(nonNil(values), true)
	case FormatYAML:
		return p.writeYAML(nonNil(values))
	case FormatText:
		fallthrough
	default:
		for _, v := range values {
			if err := p.writeJSON(v, true); err != nil {
				return err
			}
		}
		return nil
	}
}

// Paths writes the paths found by a value search.
func (p *Printer) Paths(paths []*viewpath.Path) error {
	texts := make([]string, len(paths))
	for i, path := range paths {
		texts[i] = path.String()
	}
	return p.Lines(texts)
}

// Lines writes one string per line, or a list of strings for JSON and YAML.
func (p *Printer) Lines(texts []string) error {
	if texts == nil {
		texts = []string{}
	}

	switch p.format {
	case FormatJSON:
		return p.writeJSON(texts, true)
	case FormatYAML:
		return p.writeYAML(texts)
	case FormatText:
		fallthrough
	default:
		for _, text := range texts {
			if _, err := fmt.Fprintln(p.writer, text); err != nil {
				return err
			}
		}
		return nil
	}
}

// Matches writes the path and value of each match.
func (p *Printer) Matches(matches []query.Match) error {
	records := make([]matchRecord, len(matches))
	for i, m := range matches {
		records[i] = matchRecord{
			Path:     m.Path.String(),
			JSONPath: m.Path.JSONPath(),
			Value:    m.Value,
		}
	}

	switch p.format {
	case FormatJSON:
		return p.writeJSON(records, true)
	case FormatYAML:
		return p.writeYAML(records)
	case FormatText:
		fallthrough
	default:
		for _, r := range records {
			value, err := marshalJSON(r.Value, false)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(p.writer, "%s: %s\n", r.Path, value); err != nil {
				return err
			}
		}
		return nil
	}
}

// NotFound reports that a search for target matched nothing. Structured
// formats write an empty list so the output stays parseable.
func (p *Printer) NotFound(target string) error {
	switch p.format {
	case FormatJSON:
		return p.writeJSON([]any{}, false)
	case FormatYAML:
		_, err := fmt.Fprintln(p.writer, "[]")
		return err
	case FormatText:
		fallthrough
	default:
		_, err := fmt.Fprintf(p.writer, "%s is not found\n", target)
		return err
	}
}

func (p *Printer) writeJSON(v any, indent bool) error {
	data, err := marshalJSON(v, indent)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = p.writer.Write(data)
	return err
}

func (p *Printer) writeYAML(v any) error {
	data, err := yaml.Marshal(yamlValue(v))
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	_, err = p.writer.Write(data)
	return err
}

// marshalJSON encodes v without HTML escaping, so values print as written.
func marshalJSON(v any, indent bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func nonNil(values []any) []any {
	if values == nil {
		return []any{}
	}
	return values
}
