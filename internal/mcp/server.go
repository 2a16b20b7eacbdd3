package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"ragview/internal/api"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the scraping backend as tools.
type Server struct {
	client *api.Client
	mcp    *server.MCPServer
}

// NewServer creates a new MCP server backed by the given API client.
func NewServer(client *api.Client) *Server {
	s := &Server{client: client}

	s.mcp = server.NewMCPServer(
		"ragview",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(scrapePageTool, s.handleScrapePage)
	s.mcp.AddTool(askQuestionTool, s.handleAskQuestion)
	s.mcp.AddTool(indexURLTool, s.handleIndexURL)
	s.mcp.AddTool(listSourcesTool, s.handleListSources)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
