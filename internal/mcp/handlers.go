package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"ragview/internal/api"
	"ragview/internal/render"
)

// handleScrapePage scrapes a page through the backend and returns it as text.
func (s *Server) handleScrapePage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pageURL, err := request.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: url"), nil
	}
	pageURL = strings.TrimSpace(pageURL)
	if pageURL == "" {
		return mcp.NewToolResultError("url must not be empty"), nil
	}

	res, err := s.client.Scrape(ctx, pageURL)
	if err != nil {
		return mcp.NewToolResultError(backendError("scrape failed", err)), nil
	}

	return mcp.NewToolResultText(render.ScrapeText(res)), nil
}

// handleAskQuestion runs a query over the indexed pages.
func (s *Server) handleAskQuestion(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: question"), nil
	}
	question = strings.TrimSpace(question)
	if question == "" {
		return mcp.NewToolResultError("question must not be empty"), nil
	}

	nResults := request.GetInt("n_results", 5)
	if nResults <= 0 {
		nResults = 5
	}

	res, err := s.client.Query(ctx, question, nResults)
	if err != nil {
		return mcp.NewToolResultError(backendError("query failed", err)), nil
	}

	return mcp.NewToolResultText(render.AnswerText(res)), nil
}

// handleIndexURL scrapes and indexes a page.
func (s *Server) handleIndexURL(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pageURL, err := request.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: url"), nil
	}
	pageURL = strings.TrimSpace(pageURL)
	if pageURL == "" {
		return mcp.NewToolResultError("url must not be empty"), nil
	}

	res, err := s.client.ScrapeAndIndex(ctx, pageURL)
	if err != nil {
		return mcp.NewToolResultError(backendError("indexing failed", err)), nil
	}

	title := res.Title
	if title == "" {
		title = res.URL
	}
	return mcp.NewToolResultText(fmt.Sprintf(
		"Indexed %q: %d chunks added.", title, res.ChunksIndexed,
	)), nil
}

// handleListSources lists the URLs currently in the index.
func (s *Server) handleListSources(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sources, err := s.client.IndexedSources(ctx)
	if err != nil {
		return mcp.NewToolResultError(backendError("listing sources failed", err)), nil
	}

	if len(sources) == 0 {
		return mcp.NewToolResultText("No sources indexed yet. Use index_url to add a page."), nil
	}

	return mcp.NewToolResultText(render.SourcesText(sources)), nil
}

// backendError turns a client error into a tool error message, pointing
// at the backend URL when it is simply not running.
func backendError(prefix string, err error) string {
	if api.IsUnreachable(err) {
		return fmt.Sprintf("%s: backend is not reachable. Start it and try again.", prefix)
	}
	return fmt.Sprintf("%s: %v", prefix, err)
}
