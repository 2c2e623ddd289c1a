package viewpath

import (
	"errors"
	"fmt"
)

// ErrInvalidPath indicates a view path could not be parsed.
var ErrInvalidPath = errors.New("invalid path")

func pathError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidPath, fmt.Sprintf(format, args...))
}
