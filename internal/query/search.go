package query

import (
	"github.com/jacoelho/ebar/internal/document"
	"github.com/jacoelho/ebar/internal/viewpath"
)

// SearchPath applies each segment of path in turn, starting at doc.
// It stops at the first segment that does not resolve.
func SearchPath(doc any, path *viewpath.Path) (any, bool) {
	current := doc
	for _, segment := range path.All() {
		next, ok := SearchSegment(current, segment)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// SearchSegment applies one segment to value.
//
// Fields and coalesce groups only match objects, indexes only match arrays.
// Indexes are plain offsets: negative values never resolve.
func SearchSegment(value any, segment viewpath.Segment) (any, bool) {
	switch segment.Kind() {
	case viewpath.KindField:
		f, _ := segment.Field()
		return document.Member(value, f.Name)
	case viewpath.KindIndex:
		i, _ := segment.Index()
		elems, ok := document.Elements(value)
		if !ok || i < 0 || i >= len(elems) {
			return nil, false
		}
		return elems[i], true
	case viewpath.KindCoalesce:
		for _, f := range segment.Fields() {
			if v, ok := document.Member(value, f.Name); ok {
				return v, true
			}
		}
	}
	return nil, false
}
