// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes the field-notes feed for LLM integration via stdio transport.
// Every tool is read-only against the upstream table; the only state they
// touch is the session's facet and pagination state, the same surface the
// page UI drives.
package mcpserver

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/laguz/internal/feed"
	"github.com/starford/laguz/internal/models"
)

// Server wraps the MCP server with feed tools.
type Server struct {
	mcp  *server.MCPServer
	ctrl *feed.Controller
}

// New creates a new MCP server with all feed tools registered.
func New(ctrl *feed.Controller) *Server {
	s := &Server{ctrl: ctrl}

	s.mcp = server.NewMCPServer(
		"Laguz",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("get_feed",
		mcp.WithDescription("Return the current feed snapshot: status, featured note, "+
			"visible cards, facet options, and the load-more footer. Loads the "+
			"upstream table on first use."),
	), s.getFeed)

	s.mcp.AddTool(mcp.NewTool("refresh_feed",
		mcp.WithDescription("Re-trigger the feed load. A failed load stays retryable."),
	), s.refreshFeed)

	s.mcp.AddTool(mcp.NewTool("set_facets",
		mcp.WithDescription("Change the session's type and date-range facets and return "+
			"the resulting snapshot. Resets pagination to the first page."),
		mcp.WithString("type", mcp.Required(), mcp.Description(`Kind to keep, or "all"`)),
		mcp.WithString("date_range", mcp.Required(), mcp.Description(`One of "all", "month", "quarter", "year"`)),
	), s.setFacets)

	s.mcp.AddTool(mcp.NewTool("load_more",
		mcp.WithDescription("Reveal one more page of the active list and return the snapshot."),
	), s.loadMore)

	s.mcp.AddTool(mcp.NewTool("list_note_types",
		mcp.WithDescription("List the distinct note kinds observed in the cached feed."),
	), s.listNoteTypes)

	// Resource: upstream record contract.
	s.mcp.AddResource(
		mcp.NewResource("laguz://record-format", "Upstream Record Contract",
			mcp.WithResourceDescription("How raw table rows are normalized, filtered, and sorted."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readRecordFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// ensureLoaded triggers the load entry point when nothing has been
// fetched yet. Failures are not fatal here: the snapshot carries the
// retryable failed state.
func (s *Server) ensureLoaded(ctx context.Context) {
	if s.ctrl.Snapshot().Status == feed.StatusLoading {
		_ = s.ctrl.Load(ctx)
	}
}

func (s *Server) snapshotResult() (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(s.ctrl.Snapshot(), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getFeed(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.ensureLoaded(ctx)
	return s.snapshotResult()
}

func (s *Server) refreshFeed(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.ctrl.Load(ctx); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.snapshotResult()
}

func (s *Server) setFacets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, err := req.RequireString("type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	dateRange, err := req.RequireString("date_range")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.ensureLoaded(ctx)
	if err := s.ctrl.SetFacets(models.FacetState{Type: kind, DateRange: dateRange}); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.snapshotResult()
}

func (s *Server) loadMore(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.ensureLoaded(ctx)
	s.ctrl.LoadMore()
	return s.snapshotResult()
}

func (s *Server) listNoteTypes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.ensureLoaded(ctx)
	opts := s.ctrl.Snapshot().TypeOptions
	if len(opts) == 0 {
		return mcp.NewToolResultText("no note types observed"), nil
	}
	return mcp.NewToolResultText(strings.Join(opts, "\n")), nil
}

func (s *Server) readRecordFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "laguz://record-format",
			MIMEType: "text/markdown",
			Text:     RecordFormatContract,
		},
	}, nil
}
