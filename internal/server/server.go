package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/dejo1307/objcskel/internal/engine"
	"github.com/dejo1307/objcskel/internal/renderers/symbolmap"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server and connects it to the summarize engine.
type Server struct {
	mcp *mcp.Server
	eng *engine.Engine
}

// New creates a new MCP server wired to the given engine.
func New(eng *engine.Engine) (*Server, error) {
	s := &Server{
		eng: eng,
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "objcskel",
		Version: "0.1.0",
	}, nil)

	s.mcp = mcpServer
	s.registerTools()

	return s, nil
}

// Run starts the MCP server on the stdio transport.
func (s *Server) Run(ctx context.Context) error {
	log.Println("[server] starting MCP server on stdio transport")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// summarizeArgs are the arguments for the summarize_objc tool.
type summarizeArgs struct {
	Path string `json:"path" jsonschema:"Path to the Objective-C source or header file"`
}

// symbolMapArgs are the arguments for the objc_symbol_map tool.
type symbolMapArgs struct {
	Path              string `json:"path" jsonschema:"Path to the Objective-C source or header file"`
	IncludeProperties *bool  `json:"include_properties,omitempty" jsonschema:"List @property declarations as symbols (defaults to the configured map.include_properties)"`
}

// showSymbolArgs are the arguments for the show_symbol tool.
type showSymbolArgs struct {
	Path         string `json:"path" jsonschema:"Path to the Objective-C source or header file"`
	Name         string `json:"name" jsonschema:"Symbol name to look up (substring match)"`
	ContextLines int    `json:"context_lines,omitempty" jsonschema:"Number of source lines to show around the symbol (default 30)"`
}

// registerTools adds MCP tools for outline and symbol map generation.
func (s *Server) registerTools() {
	// Tool: summarize_objc
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "summarize_objc",
		Description: "Summarize an Objective-C file: interfaces, implementations, protocols, categories, properties and method signatures with line numbers, method bodies omitted.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args summarizeArgs) (*mcp.CallToolResult, any, error) {
		if args.Path == "" {
			return errorResult("path is required"), nil, nil
		}
		out, err := s.eng.Outline(ctx, args.Path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return errorResult(fmt.Sprintf("Error: File not found: %s", args.Path)), nil, nil
			}
			return errorResult(fmt.Sprintf("summarize failed: %v", err)), nil, nil
		}
		return textResult(string(out)), nil, nil
	})

	// Tool: objc_symbol_map
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "objc_symbol_map",
		Description: "List the symbols of an Objective-C file (blocks and methods, optionally properties) as JSON sorted by line. A missing file yields an empty symbol list.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args symbolMapArgs) (*mcp.CallToolResult, any, error) {
		if args.Path == "" {
			return errorResult("path is required"), nil, nil
		}
		var out []byte
		var err error
		if args.IncludeProperties != nil {
			out, err = s.eng.SymbolMapWithProperties(ctx, args.Path, *args.IncludeProperties)
		} else {
			out, err = s.eng.SymbolMap(ctx, args.Path)
		}
		if err != nil {
			return errorResult(fmt.Sprintf("symbol map failed: %v", err)), nil, nil
		}
		return textResult(string(out)), nil, nil
	})

	// Tool: show_symbol
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "show_symbol",
		Description: "Show the source around a symbol of an Objective-C file, including the method body the summary omits.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args showSymbolArgs) (*mcp.CallToolResult, any, error) {
		if args.Path == "" || args.Name == "" {
			return errorResult("path and name are required"), nil, nil
		}

		file, err := s.eng.Load(ctx, args.Path, false)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return errorResult(fmt.Sprintf("Error: File not found: %s", args.Path)), nil, nil
			}
			return errorResult(fmt.Sprintf("show_symbol failed: %v", err)), nil, nil
		}

		results := symbolmap.Build(file, true).Query("", args.Name)
		if len(results) == 0 {
			return errorResult(fmt.Sprintf("No symbols matching %q", args.Name)), nil, nil
		}

		contextLines := args.ContextLines
		if contextLines <= 0 {
			contextLines = 30
		}

		// Limit to 5 results
		if len(results) > 5 {
			results = results[:5]
		}

		var sb strings.Builder
		for i, sym := range results {
			if i > 0 {
				sb.WriteString("\n---\n\n")
			}

			sb.WriteString(fmt.Sprintf("### %s\n", sym.Name))
			sb.WriteString(fmt.Sprintf("Kind: %s  Line: %d\n\n", sym.Type, sym.Line))

			source, err := readSourceWindow(args.Path, sym.Line, contextLines)
			if err != nil {
				sb.WriteString(fmt.Sprintf("_Could not read source: %v_\n", err))
				continue
			}

			sb.WriteString(fmt.Sprintf("```objc\n%s```\n", source))
		}

		return textResult(sb.String()), nil, nil
	})
}

// readSourceWindow reads lines from a file centered around the given line number.
func readSourceWindow(absFile string, centerLine, contextLines int) (string, error) {
	data, err := os.ReadFile(absFile)
	if err != nil {
		return "", err
	}

	lines := strings.Split(engine.Decode(data), "\n")
	startLine := centerLine - contextLines/2
	if startLine < 1 {
		startLine = 1
	}
	endLine := centerLine + contextLines/2
	if endLine > len(lines) {
		endLine = len(lines)
	}

	var sb strings.Builder
	for i := startLine; i <= endLine; i++ {
		sb.WriteString(fmt.Sprintf("%4d│ %s\n", i, strings.TrimSuffix(lines[i-1], "\r")))
	}
	return sb.String(), nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: msg},
		},
		IsError: true,
	}
}
