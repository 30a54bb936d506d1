package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/betahubio/betahub-mcp/auth"
	"github.com/betahubio/betahub-mcp/config"
	"github.com/betahubio/betahub-mcp/tools"
)

// Server represents the MCP server for BetaHub
type Server struct {
	server *server.MCPServer
}

// NewServer creates a new MCP server instance bound to the session and
// toolset established at startup
func NewServer(session *auth.Session, ts *tools.Toolset) *Server {
	s := server.NewMCPServer(config.ServerName, config.ServerVersion)

	s.AddTools(InitTools(session, ts)...)

	return &Server{
		server: s,
	}
}

// Run starts the MCP server on the stdio transport
func (s *Server) Run() error {
	return server.ServeStdio(s.server)
}

func newServerTool(tool mcp.Tool, handler server.ToolHandlerFunc) server.ServerTool {
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}
