package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jacoelho/ebar/internal/query"
	"github.com/jacoelho/ebar/internal/viewpath"
)

type resolveInput struct {
	Document string `json:"document"           jsonschema:"Inline JSON or YAML document"`
	Format   string `json:"format,omitempty"   jsonschema:"Document format: auto, json or yaml. Defaults to the server setting"`
	Path     string `json:"path,omitempty"     jsonschema:"View path to resolve, e.g. items[0].(id | uuid)"`
	JSONPath string `json:"jsonpath,omitempty" jsonschema:"RFC 9535 JSONPath expression, used instead of path"`
}

type resolveOutput struct {
	Found    bool     `json:"found"`
	Path     string   `json:"path,omitempty"`
	JSONPath string   `json:"jsonpath,omitempty"`
	Value    string   `json:"value,omitempty"`
	Values   []string `json:"values,omitempty"`
}

func (ts *toolset) handleResolve(_ context.Context, _ *mcp.CallToolRequest, input resolveInput) (*mcp.CallToolResult, resolveOutput, error) {
	if input.Path != "" && input.JSONPath != "" {
		return errResult(errors.New("set only one of path or jsonpath")), resolveOutput{}, nil
	}

	doc, err := decodeDocument(input.Document, input.Format, ts.format)
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}

	if input.JSONPath != "" {
		return ts.resolveJSONPath(doc, input.JSONPath)
	}

	path, err := viewpath.Parse(input.Path)
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}

	output := resolveOutput{
		Path:     path.String(),
		JSONPath: path.JSONPath(),
	}

	value, ok := query.SearchPath(doc, path)
	ts.logger.Debug("resolve", "path", output.Path, "found", ok)
	if !ok {
		return nil, output, nil
	}

	text, err := jsonText(value)
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}
	output.Found = true
	output.Value = text
	return nil, output, nil
}

func (ts *toolset) resolveJSONPath(doc any, expr string) (*mcp.CallToolResult, resolveOutput, error) {
	values, err := query.SelectJSONPath(doc, expr)
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}
	ts.logger.Debug("resolve jsonpath", "jsonpath", expr, "count", len(values))

	output := resolveOutput{
		Found:    len(values) > 0,
		JSONPath: expr,
	}
	for _, v := range values {
		text, err := jsonText(v)
		if err != nil {
			return errResult(err), resolveOutput{}, nil
		}
		output.Values = append(output.Values, text)
	}
	return nil, output, nil
}
