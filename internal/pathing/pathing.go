package pathing

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUndefinedVariable indicates a path referenced an unset environment variable.
var ErrUndefinedVariable = errors.New("undefined variable")

// NormalizeInputPath trims path-like input from arguments.
func NormalizeInputPath(path string) string {
	return strings.TrimSpace(path)
}

// IsAbsoluteLike reports whether the path should be treated as absolute
// regardless of host OS path semantics.
func IsAbsoluteLike(path string) bool {
	path = NormalizeInputPath(path)
	if path == "" {
		return false
	}
	if filepath.IsAbs(path) {
		return true
	}
	if strings.HasPrefix(path, `\\`) || strings.HasPrefix(path, `//`) {
		return true
	}
	if strings.HasPrefix(path, "/") {
		return true
	}
	if len(path) >= 3 && isASCIIAlpha(path[0]) && path[1] == ':' && (path[2] == '\\' || path[2] == '/') {
		return true
	}

	return false
}

// Expand resolves a leading `~` to the home directory and substitutes
// `$VAR` and `${VAR}` references. Unset variables are an error.
func Expand(path string) (string, error) {
	return expand(path, os.LookupEnv, os.UserHomeDir)
}

func expand(path string, lookup func(string) (string, bool), home func() (string, error)) (string, error) {
	path = NormalizeInputPath(path)

	var missing []string
	path = os.Expand(path, func(name string) string {
		value, ok := lookup(name)
		if !ok {
			missing = append(missing, name)
		}
		return value
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %s", ErrUndefinedVariable, strings.Join(missing, ", "))
	}

	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		dir, err := home()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = dir + path[1:]
	}

	return path, nil
}

// Resolve expands path and joins it to baseDir unless it is absolute-like.
func Resolve(path string, baseDir string) (string, error) {
	expanded, err := Expand(path)
	if err != nil {
		return "", err
	}
	if expanded == "" || IsAbsoluteLike(expanded) || NormalizeInputPath(baseDir) == "" {
		return expanded, nil
	}

	return filepath.Join(baseDir, expanded), nil
}

func isASCIIAlpha(char byte) bool {
	return (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z')
}
