package viewpath

import (
	"fmt"
	"strconv"
	"strings"
)

// JSONPath renders p as an RFC 9535 normalized path, e.g. `$['a'][0]`.
//
// A coalesce group renders as a name union `['a','b']`, which selects every
// present alternative rather than the first one. Negative indexes keep their
// sign, which JSONPath counts from the end of the array.
func (p *Path) JSONPath() string {
	var b strings.Builder
	b.WriteByte('$')
	for _, s := range p.All() {
		b.WriteByte('[')
		switch s.Kind() {
		case KindIndex:
			i, _ := s.Index()
			b.WriteString(strconv.Itoa(i))
		case KindField:
			f, _ := s.Field()
			writeNameSelector(&b, f.Name)
		case KindCoalesce:
			for i, f := range s.Fields() {
				if i > 0 {
					b.WriteByte(',')
				}
				writeNameSelector(&b, f.Name)
			}
		}
		b.WriteByte(']')
	}
	return b.String()
}

func writeNameSelector(b *strings.Builder, name string) {
	b.WriteByte('\'')
	for _, r := range name {
		switch r {
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
}
