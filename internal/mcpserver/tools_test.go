package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacoelho/ebar/internal/document"
)

const testDocument = `{
  "users": [
    {"id": 7, "name": "ann", "tags": ["admin", "ops"]},
    {"uuid": "u-2", "name": "bob <b>", "active": true}
  ],
  "count": 2
}`

const testDocumentYAML = `users:
  - id: 7
    name: ann
  - uuid: u-2
    name: bob
`

func newTestToolset() *toolset {
	return newToolset(Options{Format: document.FormatAuto})
}

func errorText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.NotNil(t, result)
	require.True(t, result.IsError)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return text.Text
}

func TestResolveTool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     resolveInput
		wantFound bool
		wantValue string
		wantPath  string
	}{
		{
			name:      "field and index",
			input:     resolveInput{Document: testDocument, Path: "users[0].name"},
			wantFound: true,
			wantValue: `"ann"`,
			wantPath:  "users[0].name",
		},
		{
			name:      "coalesce",
			input:     resolveInput{Document: testDocument, Path: "users[1].(id|uuid)"},
			wantFound: true,
			wantValue: `"u-2"`,
			wantPath:  "users[1].(id | uuid)",
		},
		{
			name:      "composite value",
			input:     resolveInput{Document: testDocument, Path: "users[0].tags"},
			wantFound: true,
			wantValue: `["admin","ops"]`,
			wantPath:  "users[0].tags",
		},
		{
			name:      "html is not escaped",
			input:     resolveInput{Document: testDocument, Path: "users[1].name"},
			wantFound: true,
			wantValue: `"bob <b>"`,
			wantPath:  "users[1].name",
		},
		{
			name:     "not found",
			input:    resolveInput{Document: testDocument, Path: "users[5]"},
			wantPath: "users[5]",
		},
		{
			name:     "negative index",
			input:    resolveInput{Document: testDocument, Path: "users[-1]"},
			wantPath: "users[-1]",
		},
		{
			name:      "yaml document",
			input:     resolveInput{Document: testDocumentYAML, Format: "yaml", Path: "users[1].uuid"},
			wantFound: true,
			wantValue: `"u-2"`,
			wantPath:  "users[1].uuid",
		},
		{
			name:      "root",
			input:     resolveInput{Document: `[1, 2]`},
			wantFound: true,
			wantValue: `[1,2]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, output, err := newTestToolset().handleResolve(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			assert.Nil(t, result)
			assert.Equal(t, tt.wantFound, output.Found)
			assert.Equal(t, tt.wantValue, output.Value)
			assert.Equal(t, tt.wantPath, output.Path)
		})
	}
}

func TestResolveTool_JSONPath(t *testing.T) {
	t.Parallel()

	_, output, err := newTestToolset().handleResolve(context.Background(), &mcp.CallToolRequest{}, resolveInput{
		Document: testDocument,
		JSONPath: "$.users[*].name",
	})
	require.NoError(t, err)
	assert.True(t, output.Found)
	assert.Equal(t, []string{`"ann"`, `"bob <b>"`}, output.Values)
}

func TestResolveTool_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   resolveInput
		wantErr string
	}{
		{name: "missing document", input: resolveInput{Path: "a"}, wantErr: "document is required"},
		{name: "bad path", input: resolveInput{Document: testDocument, Path: "a[x]"}, wantErr: "invalid path"},
		{name: "bad jsonpath", input: resolveInput{Document: testDocument, JSONPath: "users"}, wantErr: "invalid JSONPath"},
		{name: "both queries", input: resolveInput{Document: testDocument, Path: "a", JSONPath: "$.a"}, wantErr: "only one"},
		{name: "bad format", input: resolveInput{Document: testDocument, Format: "toml"}, wantErr: "unsupported document format"},
		{name: "bad json", input: resolveInput{Document: `{"a":`, Format: "json"}, wantErr: "decode document"},
		{name: "too large", input: resolveInput{Document: strings.Repeat(" ", maxDocumentSize+1)}, wantErr: "exceeds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, _, err := newTestToolset().handleResolve(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			assert.Contains(t, errorText(t, result), tt.wantErr)
		})
	}
}

func TestFindTool(t *testing.T) {
	t.Parallel()

	t.Run("target", func(t *testing.T) {
		t.Parallel()

		result, output, err := newTestToolset().handleFind(context.Background(), &mcp.CallToolRequest{}, findInput{
			Document: `{"a": [1, {"b": 1}], "c": "1"}`,
			Target:   ptr("1"),
		})
		require.NoError(t, err)
		assert.Nil(t, result)
		assert.Equal(t, 3, output.Count)

		paths := make([]string, 0, len(output.Matches))
		for _, m := range output.Matches {
			paths = append(paths, m.Path)
		}
		assert.ElementsMatch(t, []string{"a[0]", "a[1].b", "c"}, paths)
	})

	t.Run("regex", func(t *testing.T) {
		t.Parallel()

		_, output, err := newTestToolset().handleFind(context.Background(), &mcp.CallToolRequest{}, findInput{
			Document: `{"a": "hello", "b": "yellow", "c": "nope"}`,
			Regex:    ptr("l+o"),
		})
		require.NoError(t, err)
		require.Equal(t, 2, output.Count)
		assert.Equal(t, findMatch{Path: "a", JSONPath: "$['a']", Value: `"hello"`}, output.Matches[0])
		assert.Equal(t, findMatch{Path: "b", JSONPath: "$['b']", Value: `"yellow"`}, output.Matches[1])
	})

	t.Run("empty target", func(t *testing.T) {
		t.Parallel()

		result, output, err := newTestToolset().handleFind(context.Background(), &mcp.CallToolRequest{}, findInput{
			Document: `{"a": "", "b": "x", "c": null, "d": [""]}`,
			Target:   ptr(""),
		})
		require.NoError(t, err)
		assert.Nil(t, result)
		require.Equal(t, 2, output.Count)
		assert.Equal(t, "a", output.Matches[0].Path)
		assert.Equal(t, "d[0]", output.Matches[1].Path)
	})

	t.Run("nothing found", func(t *testing.T) {
		t.Parallel()

		result, output, err := newTestToolset().handleFind(context.Background(), &mcp.CallToolRequest{}, findInput{
			Document: testDocument,
			Target:   ptr("missing"),
		})
		require.NoError(t, err)
		assert.Nil(t, result)
		assert.Zero(t, output.Count)
		assert.Nil(t, output.Matches)
	})
}

func ptr(s string) *string {
	return &s
}

func TestFindTool_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   findInput
		wantErr string
	}{
		{name: "neither", input: findInput{Document: testDocument}, wantErr: "exactly one"},
		{name: "both", input: findInput{Document: testDocument, Target: ptr("a"), Regex: ptr("a")}, wantErr: "exactly one"},
		{name: "bad regex", input: findInput{Document: testDocument, Regex: ptr("(")}, wantErr: "invalid pattern"},
		{name: "missing document", input: findInput{Target: ptr("a")}, wantErr: "document is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, _, err := newTestToolset().handleFind(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			assert.Contains(t, errorText(t, result), tt.wantErr)
		})
	}
}

func TestFormatPathTool(t *testing.T) {
	t.Parallel()

	result, output, err := newTestToolset().handleFormatPath(context.Background(), &mcp.CallToolRequest{}, formatPathInput{
		Path: ` .a[0] . ( x|"y z" ) `,
	})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, `a[0].(x | "y z")`, output.Canonical)
	assert.Equal(t, `$['a'][0]['x','y z']`, output.JSONPath)
	assert.False(t, output.Root)
	assert.Equal(t, []pathSegment{
		{Kind: "field", Text: "a"},
		{Kind: "index", Text: "0"},
		{Kind: "coalesce", Text: `(x | "y z")`},
	}, output.Segments)

	_, root, err := newTestToolset().handleFormatPath(context.Background(), &mcp.CallToolRequest{}, formatPathInput{})
	require.NoError(t, err)
	assert.True(t, root.Root)
	assert.Equal(t, "$", root.JSONPath)
	assert.Empty(t, root.Segments)

	result, _, err = newTestToolset().handleFormatPath(context.Background(), &mcp.CallToolRequest{}, formatPathInput{Path: `a."b`})
	require.NoError(t, err)
	assert.Contains(t, errorText(t, result), "unterminated")
}
