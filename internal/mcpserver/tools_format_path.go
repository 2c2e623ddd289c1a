package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jacoelho/ebar/internal/viewpath"
)

type formatPathInput struct {
	Path string `json:"path" jsonschema:"View path to parse"`
}

type pathSegment struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

type formatPathOutput struct {
	Canonical string        `json:"canonical"`
	JSONPath  string        `json:"jsonpath"`
	Root      bool          `json:"root"`
	Segments  []pathSegment `json:"segments,omitempty"`
}

func (ts *toolset) handleFormatPath(_ context.Context, _ *mcp.CallToolRequest, input formatPathInput) (*mcp.CallToolResult, formatPathOutput, error) {
	path, err := viewpath.Parse(input.Path)
	if err != nil {
		return errResult(err), formatPathOutput{}, nil
	}

	output := formatPathOutput{
		Canonical: path.String(),
		JSONPath:  path.JSONPath(),
		Root:      path.IsRoot(),
	}
	for _, seg := range path.All() {
		output.Segments = append(output.Segments, pathSegment{
			Kind: seg.Kind().String(),
			Text: seg.String(),
		})
	}
	return nil, output, nil
}
