// Package mcpserver exposes view path resolution and document search as MCP
// (Model Context Protocol) tools over stdio.
package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jacoelho/ebar/internal/document"
)

const serverInstructions = `ebar MCP server: resolves view paths against JSON or YAML documents and searches documents for values.

View paths address a value step by step: fields (a.b), quoted fields ("first name"), indexes ([0]) and coalesce groups ((id | uuid)), where the first present member wins. Example: items[0].(id | uuid).

Tools:
- resolve: follow a view path (or an RFC 9535 JSONPath) through an inline document
- find: list the paths of every scalar equal to a target or matching a regular expression
- format_path: parse a view path and return its canonical and JSONPath forms

Values are returned as JSON text.`

// Options configure the server.
type Options struct {
	Version string
	// Format is used for documents whose tool call leaves format empty.
	Format document.Format
	Logger *slog.Logger
}

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	server := newServer(opts)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func newServer(opts Options) *mcp.Server {
	version := opts.Version
	if version == "" {
		version = "dev"
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "ebar", Version: version},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server, newToolset(opts))
	return server
}

// toolset carries the defaults shared by every tool handler.
type toolset struct {
	format document.Format
	logger *slog.Logger
}

func newToolset(opts Options) *toolset {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &toolset{
		format: opts.Format,
		logger: logger,
	}
}

func registerAllTools(server *mcp.Server, tools *toolset) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve",
		Description: "Resolve a view path such as a.b[0] or (id | uuid).name against an inline JSON or YAML document and return the value as JSON text. Set jsonpath instead of path to evaluate an RFC 9535 JSONPath expression, which may select several values. Without path or jsonpath the whole document is returned. A path that does not resolve is not an error: found is false.",
	}, tools.handleResolve)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find",
		Description: "Search an inline JSON or YAML document for scalars. Set exactly one of target (exact text: true/false for booleans, numbers in canonical decimal form such as 1.5 or 100, strings without quotes) or regex (matches anywhere in the text). Returns every matching view path with its JSONPath and value. Nulls never match.",
	}, tools.handleFind)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "format_path",
		Description: "Parse a view path and return its canonical form, its RFC 9535 JSONPath rendering and its segments. Use it to check path syntax before calling resolve.",
	}, tools.handleFormatPath)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}

// jsonText renders a document value for a tool response.
func jsonText(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encode value: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
