package query

import (
	"errors"
	"fmt"

	"github.com/theory/jsonpath"

	"github.com/jacoelho/ebar/internal/viewpath"
)

// ErrInvalidJSONPath indicates an RFC 9535 JSONPath expression failed to parse.
var ErrInvalidJSONPath = errors.New("invalid JSONPath")

// SelectJSONPath evaluates a standard JSONPath expression (e.g. "$.a[0]",
// "$..name") against doc and returns every selected node in document order.
// An empty result is not an error.
func SelectJSONPath(doc any, expr string) ([]any, error) {
	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidJSONPath, expr, err)
	}
	return path.Select(doc), nil
}

// SelectViewPath evaluates the JSONPath rendering of a view path. It agrees
// with SearchPath for paths made of fields and non-negative indexes; coalesce
// groups select every present alternative.
func SelectViewPath(doc any, path *viewpath.Path) ([]any, error) {
	return SelectJSONPath(doc, path.JSONPath())
}
