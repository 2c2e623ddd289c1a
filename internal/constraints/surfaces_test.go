package constraints

import (
	"testing"

	"github.com/jacoelho/ebar/internal/document"
	"github.com/jacoelho/ebar/internal/query"
	"github.com/jacoelho/ebar/internal/viewpath"
)

const sampleDocument = `
service:
  name: api
  ports: [8080, 8443]
  "display name": Public API
  owners:
    - {id: 1, email: a@example.com}
    - {uuid: u-2, email: b@example.com, active: true}
  limits: {rps: 1.5, burst: 10}
`

// Every path the search engine reports must resolve to the same value through
// view path resolution and through its JSONPath rendering.
func TestSearchPathsResolveOnEverySurface(t *testing.T) {
	t.Parallel()

	doc, err := document.Decode([]byte(sampleDocument), document.FormatYAML)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	matches := query.FindBy(doc, func(string) bool { return true })
	if len(matches) != 11 {
		t.Fatalf("FindBy() found %d scalars, want 11", len(matches))
	}

	for _, m := range matches {
		t.Run(m.Path.String(), func(t *testing.T) {
			t.Parallel()

			parsed, err := viewpath.Parse(m.Path.String())
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", m.Path.String(), err)
			}
			if !parsed.Equal(m.Path) {
				t.Fatalf("Parse(%q) = %v, want the reported path", m.Path.String(), parsed)
			}

			got, ok := query.SearchPath(doc, parsed)
			if !ok {
				t.Fatalf("SearchPath(%q) not found", m.Path.String())
			}
			if got != m.Value {
				t.Fatalf("SearchPath(%q) = %v, want %v", m.Path.String(), got, m.Value)
			}

			selected, err := query.SelectViewPath(doc, parsed)
			if err != nil {
				t.Fatalf("SelectViewPath(%q) error = %v", m.Path.JSONPath(), err)
			}
			if len(selected) != 1 || selected[0] != m.Value {
				t.Fatalf("SelectViewPath(%q) = %v, want [%v]", m.Path.JSONPath(), selected, m.Value)
			}
		})
	}
}
