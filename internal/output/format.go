package output

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedFormat indicates an unknown output format name.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Format represents the rendering used for results.
type Format int

const (
	FormatText Format = iota
	FormatJSON
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "text"
	}
}

// ParseFormat accepts "text", "json", "yaml" and "yml", case-insensitively.
// The empty string selects text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatText, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}
