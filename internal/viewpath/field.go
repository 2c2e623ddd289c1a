package viewpath

import (
	"cmp"
	"regexp"
	"strings"
)

// A valid field name contains ASCII letters, digits and underscores.
// It may start with digits but must not consist of digits only.
var validFieldName = regexp.MustCompile(`^[0-9]*[a-zA-Z_][0-9a-zA-Z_]*$`)

// IsValidFieldName reports whether name can be written without quotes.
func IsValidFieldName(name string) bool {
	return validFieldName.MatchString(name)
}

// Field is a single member name within a path.
type Field struct {
	Name string
	// RequiresQuoting caches whether Name is rendered inside double quotes.
	RequiresQuoting bool
}

// NewField builds a field from raw path text.
//
// Text wrapped in double quotes has exactly one leading and trailing quote
// removed and always renders quoted. Otherwise quoting is required when the
// text is not a valid bare identifier. Escape sequences are kept verbatim.
func NewField(text string) Field {
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		return Field{
			Name:            text[1 : len(text)-1],
			RequiresQuoting: true,
		}
	}

	return Field{
		Name:            text,
		RequiresQuoting: !IsValidFieldName(text),
	}
}

func (f Field) String() string {
	if f.RequiresQuoting {
		return `"` + f.Name + `"`
	}
	return f.Name
}

// Clone detaches the name from the text it was parsed from.
func (f Field) Clone() Field {
	return Field{
		Name:            strings.Clone(f.Name),
		RequiresQuoting: f.RequiresQuoting,
	}
}

// Compare orders fields by name, then unquoted before quoted.
func (f Field) Compare(other Field) int {
	if c := strings.Compare(f.Name, other.Name); c != 0 {
		return c
	}
	return cmp.Compare(boolRank(f.RequiresQuoting), boolRank(other.RequiresQuoting))
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
