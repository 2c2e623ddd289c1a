package query

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacoelho/ebar/internal/document"
	"github.com/jacoelho/ebar/internal/viewpath"
)

func mustDecode(t *testing.T, data string) any {
	t.Helper()
	doc, err := document.Decode([]byte(data), document.FormatAuto)
	require.NoError(t, err)
	return doc
}

func TestSearchPath(t *testing.T) {
	t.Parallel()

	doc := mustDecode(t, `{
		"a": {"b": [1, 2, 3]},
		"x": {"y": 7},
		"both": {"x": 1, "y": 2},
		"list": [[10, 11], {"k": "v"}],
		"n": null,
		"weird key": {"1": "one"}
	}`)

	tests := []struct {
		name   string
		path   string
		want   any
		wantOK bool
	}{
		{name: "root", path: "", want: doc, wantOK: true},
		{name: "nested index", path: "a.b[1]", want: json.Number("2"), wantOK: true},
		{name: "index out of range", path: "a.b[5]", wantOK: false},
		{name: "missing member", path: "a.x", wantOK: false},
		{name: "negative index", path: "a.b[-1]", wantOK: false},
		{name: "negative index beyond", path: "a.b[-4]", wantOK: false},
		{name: "coalesce second", path: "x.(missing | y)", want: json.Number("7"), wantOK: true},
		{name: "coalesce first wins", path: "both.(x | y)", want: json.Number("1"), wantOK: true},
		{name: "coalesce none", path: "both.(p | q)", wantOK: false},
		{name: "index on object", path: "a[0]", wantOK: false},
		{name: "field on array", path: "a.b.c", wantOK: false},
		{name: "coalesce on array", path: "a.b.(c)", wantOK: false},
		{name: "field on scalar", path: "a.b[0].c", wantOK: false},
		{name: "nested arrays", path: "list[0][1]", want: json.Number("11"), wantOK: true},
		{name: "object in array", path: "list[1].k", want: "v", wantOK: true},
		{name: "null value", path: "n", want: nil, wantOK: true},
		{name: "through null", path: "n.a", wantOK: false},
		{name: "quoted names", path: `"weird key"."1"`, want: "one", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := SearchPath(doc, viewpath.MustParse(tt.path))
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestSearchPath_Coalesce(t *testing.T) {
	t.Parallel()

	path := viewpath.MustParse("(x|y)")

	got, ok := SearchPath(mustDecode(t, `{"y": 7}`), path)
	require.True(t, ok)
	assert.Equal(t, json.Number("7"), got)

	got, ok = SearchPath(mustDecode(t, `{"x": 1, "y": 2}`), path)
	require.True(t, ok)
	assert.Equal(t, json.Number("1"), got)
}

func TestSearchPath_RootScalar(t *testing.T) {
	t.Parallel()

	got, ok := SearchPath("just text", viewpath.Root())
	require.True(t, ok)
	assert.Equal(t, "just text", got)

	_, ok = SearchPath("just text", viewpath.FromIndex(0))
	assert.False(t, ok)
}

func TestSearchSegment(t *testing.T) {
	t.Parallel()

	obj := map[string]any{"a": 1}
	arr := []any{"first"}

	v, ok := SearchSegment(obj, viewpath.NameSegment("a"))
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = SearchSegment(arr, viewpath.IndexSegment(0))
	assert.True(t, ok)
	assert.Equal(t, "first", v)

	_, ok = SearchSegment(arr, viewpath.Segment{})
	assert.False(t, ok, "zero segment never resolves")
}
