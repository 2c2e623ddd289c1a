package output

import (
	"encoding/json"
)

// yamlValue rewrites json.Number leaves into Go numbers so YAML output
// carries numbers instead of quoted strings. Match records are rewritten
// field by field for the same reason.
func yamlValue(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case []any:
		out := make([]any, len(t))
		for i, elem := range t {
			out[i] = yamlValue(elem)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, elem := range t {
			out[k] = yamlValue(elem)
		}
		return out
	case []matchRecord:
		out := make([]matchRecord, len(t))
		for i, r := range t {
			r.Value = yamlValue(r.Value)
			out[i] = r
		}
		return out
	default:
		return v
	}
}
