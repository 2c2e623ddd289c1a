// Package document decodes JSON and YAML documents into a value tree and
// exposes the navigation queries the query engine relies on.
//
// A decoded document is built from nil, bool, string, json.Number (JSON) or
// Go numeric kinds (YAML), []any and map[string]any.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/ebar/internal/pathing"
)

var (
	// ErrDecode indicates the document bytes are not valid for the format.
	ErrDecode = errors.New("decode document")

	// ErrUnsupportedFormat indicates an unknown format name.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

// Decode parses data as a single document. FormatAuto decodes valid JSON as
// JSON and anything else as YAML.
func Decode(data []byte, format Format) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: document is empty", ErrDecode)
	}

	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	case FormatAuto:
		if json.Valid(data) {
			return decodeJSON(data)
		}
		return decodeYAML(data)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, int(format))
}

// ReadFile expands path (see pathing.Expand) and decodes the file. With
// FormatAuto the extension decides first.
func ReadFile(path string, format Format) (any, error) {
	return ReadFileIn("", path, format)
}

// ReadFileIn is ReadFile with relative paths resolved against baseDir.
// An empty baseDir leaves them relative to the working directory.
func ReadFileIn(baseDir, path string, format Format) (any, error) {
	expanded, err := pathing.Resolve(path, baseDir)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", expanded, err)
	}

	if format == FormatAuto {
		format = FormatFromPath(expanded)
	}

	doc, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", expanded, err)
	}
	return doc, nil
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after top-level value", ErrDecode)
	}

	return v, nil
}

func decodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return normalize(v), nil
}

// normalize rewrites YAML mappings to map[string]any so every object has
// string member names.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			t[k] = normalize(child)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, child := range t {
			out[fmt.Sprint(k)] = normalize(child)
		}
		return out
	case []any:
		for i, child := range t {
			t[i] = normalize(child)
		}
		return t
	}
	return v
}
