package query

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/jacoelho/ebar/internal/document"
	"github.com/jacoelho/ebar/internal/viewpath"
)

// ErrInvalidPattern indicates a regular expression failed to compile.
var ErrInvalidPattern = errors.New("invalid pattern")

// Predicate decides whether the canonical text of a scalar matches.
type Predicate func(text string) bool

// Match is a path to a matching scalar and the scalar itself.
type Match struct {
	Path  *viewpath.Path
	Value any
}

// FindBy walks doc depth first and returns every scalar accepted by pred,
// together with its path from doc. Nulls never match. It returns nil when
// nothing matched.
//
// Array elements are visited in index order and object members in sorted
// name order, but callers should treat the result as a set.
func FindBy(doc any, pred Predicate) []Match {
	if elems, ok := document.Elements(doc); ok {
		var found []Match
		for i, elem := range elems {
			for _, m := range FindBy(elem, pred) {
				m.Path.PushFront(viewpath.IndexSegment(i))
				found = append(found, m)
			}
		}
		return found
	}

	if document.KindOf(doc) == document.KindObject {
		var found []Match
		for name, member := range document.Members(doc) {
			matches := FindBy(member, pred)
			if matches == nil {
				continue
			}
			segment := viewpath.NameSegment(name)
			for _, m := range matches {
				m.Path.PushFront(segment)
				found = append(found, m)
			}
		}
		return found
	}

	text, ok := document.Scalar(doc)
	if !ok || !pred(text) {
		return nil
	}
	return []Match{{Path: viewpath.Root(), Value: doc}}
}

// FindValue returns the paths of every scalar whose canonical text equals
// expected: "true"/"false" for booleans, numbers as decoded, strings without
// quotes.
func FindValue(doc any, expected string) []*viewpath.Path {
	matches := FindBy(doc, func(text string) bool {
		return text == expected
	})
	if matches == nil {
		return nil
	}

	paths := make([]*viewpath.Path, len(matches))
	for i, m := range matches {
		paths[i] = m.Path
	}
	return paths
}

// FindRegex returns every scalar whose canonical text contains a match of re.
func FindRegex(doc any, re *regexp.Regexp) []Match {
	return FindBy(doc, re.MatchString)
}

// FindPattern compiles pattern and calls FindRegex.
func FindPattern(doc any, pattern string) ([]Match, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPattern, pattern, err)
	}
	return FindRegex(doc, re), nil
}
