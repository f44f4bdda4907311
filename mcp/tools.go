package mcp

import (
	"context"
	"fmt"

	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"

	"github.com/viant/tally-mcp/internal/conv"
	mcpctx "github.com/viant/tally-mcp/mcp/context"
	"github.com/viant/tally-mcp/mcp/matcher"
	"github.com/viant/tally-mcp/mcp/tool"
	"github.com/viant/tally-mcp/tally/errs"
)

// registerTools builds an entry for every catalog tool enabled by config.Tools
// ("*", prefixes, "!prefix" exclusions).
func (s *Service) registerTools() {
	for _, definition := range tool.Catalog() {
		if !matcher.Any(s.config.Tools, definition.Name.String()) {
			continue
		}
		s.tools.Set(definition.Name.String(), s.toolEntry(definition))
	}
}

func (s *Service) toolEntry(definition *tool.Definition) *serverproto.ToolEntry {
	return &serverproto.ToolEntry{
		Metadata: definition.Metadata(),
		Handler: func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
			output, err := s.ExecuteTool(ctx, definition.Name.String(), request.Params.Arguments)
			res := &mcpschema.CallToolResult{}
			if err != nil {
				res.IsError = conv.Pointer(true)
				res.Content = append(res.Content, mcpschema.CallToolResultContentElem{Type: "text", Text: err.Error()})
				return res, nil
			}
			res.Content = append(res.Content, mcpschema.CallToolResultContentElem{Type: "text", Text: output})
			return res, nil
		},
	}
}

// Tools returns the enabled tool entries sorted by name.
func (s *Service) Tools() serverproto.Tools {
	entries := s.tools.List()
	result := make(serverproto.Tools, 0, len(entries))
	result = append(result, entries...)
	return result
}

// LookupTool returns the enabled entry for name. Alternative spellings such as
// "tally/listDaos" or "list_daos" are accepted.
func (s *Service) LookupTool(name string) (*serverproto.ToolEntry, error) {
	if entry, ok := s.tools.Lookup(name); ok {
		return entry, nil
	}
	if entry, ok := s.tools.Lookup(tool.Canonical(name).String()); ok {
		return entry, nil
	}
	return nil, fmt.Errorf("unknown tool: %v", name)
}

// MatchTools returns the enabled entries matching pattern ("*", prefix or exact).
func (s *Service) MatchTools(pattern string) serverproto.Tools {
	var result serverproto.Tools
	for _, entry := range s.Tools() {
		if matcher.Match(pattern, entry.Metadata.Name) {
			result = append(result, entry)
		}
	}
	return result
}

// ExecuteTool runs an enabled tool with an untyped argument bag and returns
// its text output.
func (s *Service) ExecuteTool(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	if _, ok := mcpctx.RequestID(ctx); !ok {
		ctx = mcpctx.WithRequestID(ctx, "")
	}
	if _, ok := s.tools.Lookup(name); !ok {
		return "", errs.NewUnknownTool(name)
	}
	return s.dispatcher.Execute(ctx, name, args)
}
