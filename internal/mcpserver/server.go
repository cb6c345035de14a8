// Package mcpserver exposes the experiment catalog as MCP (Model Context
// Protocol) tools over stdio, so IDE assistants can browse, read, and search
// the written content.
package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/vishesh-baghel/portfolio-sub000/internal/apperr"
	"github.com/vishesh-baghel/portfolio-sub000/internal/catalog"
	"github.com/vishesh-baghel/portfolio-sub000/internal/search"
)

// Server wraps the MCP server with the catalog tools.
type Server struct {
	mcp *server.MCPServer
	svc *catalog.Service
}

// New creates an MCP server with the three catalog tools registered.
func New(svc *catalog.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"portfolio-experiments",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("listExperiments",
		mcp.WithDescription("List experiment write-ups, grouped by category. "+
			"Pass a category to narrow the listing."),
		mcp.WithString("category",
			mcp.Description("Category filter: all, getting-started, ai-agents, backend-database, typescript-patterns")),
	), s.listExperiments)

	s.mcp.AddTool(mcp.NewTool("getExperiment",
		mcp.WithDescription("Read the full content of one experiment write-up by slug."),
		mcp.WithString("slug", mcp.Required(),
			mcp.Description("Experiment slug as shown by listExperiments")),
		mcp.WithBoolean("includeMetadata",
			mcp.Description("Prepend the metadata block (OSS project, PR, tags, date)"),
			mcp.DefaultBool(true)),
	), s.getExperiment)

	s.mcp.AddTool(mcp.NewTool("searchExperiments",
		mcp.WithDescription("Search experiment write-ups by free text and rank by relevance."),
		mcp.WithString("query", mcp.Required(),
			mcp.Description("Free-text search query")),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of results (1-10)"),
			mcp.DefaultNumber(search.DefaultMaxResults),
			mcp.Min(1), mcp.Max(10)),
		mcp.WithArray("categories",
			mcp.Description("Optional list of categories to search within"),
			mcp.Items(map[string]any{"type": "string"})),
	), s.searchExperiments)

	// Resource: document format contract.
	s.mcp.AddResource(
		mcp.NewResource("experiments://document-format", "Experiment Document Format",
			mcp.WithResourceDescription("Canonical Markdown format of the experiment corpus."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readDocumentFormatResource,
	)

	return s
}

func (s *Server) readDocumentFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "experiments://document-format",
			MIMEType: "text/markdown",
			Text:     DocumentFormatContract,
		},
	}, nil
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) listExperiments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := req.GetString("category", "all")
	return mcp.NewToolResultText(s.svc.List(category)), nil
}

func (s *Server) getExperiment(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug, err := req.RequireString("slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	includeMetadata := req.GetBool("includeMetadata", true)

	content, err := s.svc.Get(slug, includeMetadata)
	if err != nil {
		// Not-found and validation messages are the deliverable; anything
		// else is wrapped so the host never sees an unexpected error shape.
		if errors.Is(err, apperr.ErrNotFound) || errors.Is(err, apperr.ErrValidation) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("operation failed: %v", err)), nil
	}
	return mcp.NewToolResultText(content), nil
}

func (s *Server) searchExperiments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	maxResults := req.GetInt("maxResults", search.DefaultMaxResults)
	if maxResults < 1 {
		maxResults = 1
	}
	if maxResults > 10 {
		maxResults = 10
	}
	categories := req.GetStringSlice("categories", nil)

	return mcp.NewToolResultText(s.svc.Search(query, maxResults, categories)), nil
}
