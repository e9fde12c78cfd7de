package mcp

import (
	"context"
	"fmt"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/bank-support-mcp/internal/logging"
	"github.com/roivaz/bank-support-mcp/internal/mcp/tools"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// Server is the tool registry bound to an MCP server. The same Server backs
// both the stdio and the SSE transports.
type Server struct {
	MCP      *server.MCPServer
	Sessions *SessionManager
	log      logging.Logger
}

func New(cfg Config) (*Server, error) {
	log := cfg.Logger.WithName("mcp")
	sessions := NewSessionManager()

	mcpServer := server.NewMCPServer(
		cfg.Name,
		cfg.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithHooks(sessions.Hooks(log)),
		server.WithToolHandlerMiddleware(instrument(log, cfg.Observer)),
	)

	toolDefinitions := tools.Definitions()

	names := make([]string, 0, len(cfg.ToolAdapters))
	for name := range cfg.ToolAdapters {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		tool, ok := toolDefinitions[name]
		if !ok {
			return nil, fmt.Errorf("no definition for tool %q", name)
		}
		adapter := cfg.ToolAdapters[name]
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
		log.Debug("registered tool", "tool", name)
	}

	return &Server{
		MCP:      mcpServer,
		Sessions: sessions,
		log:      log,
	}, nil
}
