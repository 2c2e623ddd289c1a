package viewpath

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Segment.
type Kind uint8

const (
	KindField Kind = iota + 1
	KindIndex
	KindCoalesce
)

func (k Kind) String() string {
	switch k {
	case KindField:
		return "field"
	case KindIndex:
		return "index"
	case KindCoalesce:
		return "coalesce"
	default:
		return "invalid"
	}
}

// Segment is one step of a Path: a field, an array index or a coalesce group.
type Segment struct {
	kind   Kind
	field  Field
	index  int
	fields []Field
}

func FieldSegment(field Field) Segment {
	return Segment{kind: KindField, field: field}
}

// NameSegment builds a field segment from raw path text, see NewField.
func NameSegment(text string) Segment {
	return FieldSegment(NewField(text))
}

func IndexSegment(i int) Segment {
	return Segment{kind: KindIndex, index: i}
}

// CoalesceSegment builds a coalesce group. Alternatives keep their order:
// the first one present on an object wins.
func CoalesceSegment(first Field, rest ...Field) Segment {
	fields := make([]Field, 0, len(rest)+1)
	fields = append(fields, first)
	fields = append(fields, rest...)
	return Segment{kind: KindCoalesce, fields: fields}
}

func (s Segment) Kind() Kind {
	return s.kind
}

func (s Segment) IsField() bool {
	return s.kind == KindField
}

func (s Segment) IsIndex() bool {
	return s.kind == KindIndex
}

func (s Segment) IsCoalesce() bool {
	return s.kind == KindCoalesce
}

func (s Segment) Field() (Field, bool) {
	return s.field, s.kind == KindField
}

func (s Segment) Index() (int, bool) {
	return s.index, s.kind == KindIndex
}

// Fields returns the alternatives of a coalesce segment, nil for other kinds.
// The returned slice must not be modified.
func (s Segment) Fields() []Field {
	if s.kind != KindCoalesce {
		return nil
	}
	return s.fields
}

func (s Segment) String() string {
	switch s.kind {
	case KindIndex:
		return strconv.Itoa(s.index)
	case KindField:
		return s.field.String()
	case KindCoalesce:
		names := make([]string, len(s.fields))
		for i, f := range s.fields {
			names[i] = f.String()
		}
		return "(" + strings.Join(names, " | ") + ")"
	default:
		return ""
	}
}

func (s Segment) Equal(other Segment) bool {
	if s.kind != other.kind {
		return false
	}

	switch s.kind {
	case KindField:
		return s.field == other.field
	case KindIndex:
		return s.index == other.index
	case KindCoalesce:
		return slices.Equal(s.fields, other.fields)
	}
	return true
}

// Compare orders segments by kind (field, index, coalesce), then by payload.
func (s Segment) Compare(other Segment) int {
	if c := cmp.Compare(s.kind, other.kind); c != 0 {
		return c
	}

	switch s.kind {
	case KindField:
		return s.field.Compare(other.field)
	case KindIndex:
		return cmp.Compare(s.index, other.index)
	case KindCoalesce:
		return slices.CompareFunc(s.fields, other.fields, Field.Compare)
	}
	return 0
}

// Clone returns a segment that shares no storage with s.
func (s Segment) Clone() Segment {
	switch s.kind {
	case KindField:
		return FieldSegment(s.field.Clone())
	case KindCoalesce:
		fields := make([]Field, len(s.fields))
		for i, f := range s.fields {
			fields[i] = f.Clone()
		}
		return Segment{kind: KindCoalesce, fields: fields}
	}
	return s
}
