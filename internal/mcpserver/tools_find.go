package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jacoelho/ebar/internal/query"
)

type findInput struct {
	Document string  `json:"document"         jsonschema:"Inline JSON or YAML document"`
	Format   string  `json:"format,omitempty" jsonschema:"Document format: auto, json or yaml. Defaults to the server setting"`
	Target   *string `json:"target,omitempty" jsonschema:"Exact scalar text to find. An empty string finds empty string scalars"`
	Regex    *string `json:"regex,omitempty"  jsonschema:"Regular expression matched anywhere in the scalar text"`
}

type findMatch struct {
	Path     string `json:"path"`
	JSONPath string `json:"jsonpath"`
	Value    string `json:"value"`
}

type findOutput struct {
	Count   int         `json:"count"`
	Matches []findMatch `json:"matches,omitempty"`
}

func (ts *toolset) handleFind(_ context.Context, _ *mcp.CallToolRequest, input findInput) (*mcp.CallToolResult, findOutput, error) {
	if (input.Target == nil) == (input.Regex == nil) {
		return errResult(errors.New("set exactly one of target or regex")), findOutput{}, nil
	}

	doc, err := decodeDocument(input.Document, input.Format, ts.format)
	if err != nil {
		return errResult(err), findOutput{}, nil
	}

	var matches []query.Match
	if input.Regex != nil {
		matches, err = query.FindPattern(doc, *input.Regex)
		if err != nil {
			return errResult(err), findOutput{}, nil
		}
		ts.logger.Debug("find", "regex", *input.Regex, "count", len(matches))
	} else {
		target := *input.Target
		matches = query.FindBy(doc, func(text string) bool {
			return text == target
		})
		ts.logger.Debug("find", "target", target, "count", len(matches))
	}

	output := findOutput{Count: len(matches)}
	if len(matches) > 0 {
		output.Matches = make([]findMatch, 0, len(matches))
	}
	for _, m := range matches {
		text, err := jsonText(m.Value)
		if err != nil {
			return errResult(err), findOutput{}, nil
		}
		output.Matches = append(output.Matches, findMatch{
			Path:     m.Path.String(),
			JSONPath: m.Path.JSONPath(),
			Value:    text,
		})
	}
	return nil, output, nil
}
