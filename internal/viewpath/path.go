package viewpath

import (
	"iter"
	"strings"

	"github.com/jacoelho/ebar/internal/deque"
)

// Path is an ordered sequence of segments with cheap insertion at both ends.
// The zero value is the root path.
//
// Paths returned by Parse share string storage with the parsed text; Clone
// produces a path that owns all of its data.
type Path struct {
	segments deque.Deque[Segment]
}

// Root returns the empty path, which addresses the whole document.
func Root() *Path {
	return &Path{}
}

func New(segments ...Segment) *Path {
	return &Path{segments: *deque.From(segments...)}
}

func FromField(field Field) *Path {
	return New(FieldSegment(field))
}

// FromName builds a single field path from raw text, see NewField.
func FromName(text string) *Path {
	return New(NameSegment(text))
}

func FromIndex(i int) *Path {
	return New(IndexSegment(i))
}

func (p *Path) IsRoot() bool {
	return p.segments.IsEmpty()
}

func (p *Path) Len() int {
	return p.segments.Len()
}

func (p *Path) Get(i int) (Segment, bool) {
	return p.segments.Get(i)
}

// Set replaces the segment at position i. It reports false when i is out of range.
func (p *Path) Set(i int, segment Segment) bool {
	ref := p.segments.Ref(i)
	if ref == nil {
		return false
	}
	*ref = segment
	return true
}

func (p *Path) PushBack(segment Segment) {
	p.segments.PushBack(segment)
}

func (p *Path) PopBack() (Segment, bool) {
	return p.segments.PopBack()
}

func (p *Path) PushFront(segment Segment) {
	p.segments.PushFront(segment)
}

func (p *Path) PopFront() (Segment, bool) {
	return p.segments.PopFront()
}

// Extend appends the segments of other in order.
func (p *Path) Extend(other *Path) {
	for _, s := range other.All() {
		p.segments.PushBack(s)
	}
}

// StartsWith reports whether every segment of prefix equals the segment at the
// same position of p. The root path is a prefix of every path.
func (p *Path) StartsWith(prefix *Path) bool {
	if prefix.Len() > p.Len() {
		return false
	}
	for i, s := range prefix.All() {
		own, _ := p.segments.Get(i)
		if !own.Equal(s) {
			return false
		}
	}
	return true
}

// All yields segments front to back.
func (p *Path) All() iter.Seq2[int, Segment] {
	return p.segments.All()
}

func (p *Path) Segments() []Segment {
	return p.segments.ToSlice()
}

// Clone returns a deep copy that shares no storage with p or its source text.
func (p *Path) Clone() *Path {
	c := &Path{segments: *p.segments.Clone()}
	for i := range c.Len() {
		ref := c.segments.Ref(i)
		*ref = ref.Clone()
	}
	return c
}

func (p *Path) Equal(other *Path) bool {
	if p.Len() != other.Len() {
		return false
	}
	return p.StartsWith(other)
}

// Compare orders paths segment by segment; a proper prefix sorts first.
func (p *Path) Compare(other *Path) int {
	n := min(p.Len(), other.Len())
	for i := range n {
		a, _ := p.segments.Get(i)
		b, _ := other.segments.Get(i)
		if c := a.Compare(b); c != 0 {
			return c
		}
	}
	switch {
	case p.Len() < other.Len():
		return -1
	case p.Len() > other.Len():
		return 1
	}
	return 0
}

// String renders the canonical form of the path. A dot is written after a
// segment only when the next segment is a field or a coalesce group; indexes
// are always bracketed. The root path renders as the empty string.
func (p *Path) String() string {
	var b strings.Builder
	n := p.Len()
	for i, s := range p.All() {
		if s.IsIndex() {
			b.WriteByte('[')
			b.WriteString(s.String())
			b.WriteByte(']')
		} else {
			b.WriteString(s.String())
		}

		if i+1 < n {
			next, _ := p.segments.Get(i + 1)
			if next.IsField() || next.IsCoalesce() {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// MarshalText encodes the path as its canonical string.
func (p *Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses text into p. The result owns its data.
func (p *Path) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = *parsed
	return nil
}
