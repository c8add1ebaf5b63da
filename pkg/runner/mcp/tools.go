package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListShelvesTool(srv, svc)
	registerVisibleShelvesTool(srv, svc)
	registerDocumentsForTool(srv, svc)
	registerStatusLegendTool(srv, svc)
	registerStatusReportTool(srv, svc)
}

func registerListShelvesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_shelves",
		mcp.WithDescription("List every bookshelf with its books, in catalog order."),
	)

	srv.AddTool(tool, func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		shelves, err := svc.ListShelves(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"count":   len(shelves),
			"shelves": shelves,
		})
	})
}

func registerVisibleShelvesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"visible_shelves",
		mcp.WithDescription("Filter bookshelves by owner name and year. Shelves left with no books are dropped."),
		mcp.WithString("search",
			mcp.Description("Case-insensitive substring of the owner name. Empty matches everyone."),
		),
		mcp.WithString("year",
			mcp.Description(`Shelf year such as "2024", or "all".`),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		search := request.GetString("search", "")
		year := request.GetString("year", "all")

		shelves, err := svc.VisibleShelves(ctx, search, year)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"search":  search,
			"year":    year,
			"count":   len(shelves),
			"shelves": shelves,
		})
	})
}

func registerDocumentsForTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"documents_for",
		mcp.WithDescription("List the stored documents of a book. Unknown books have no documents."),
		mcp.WithNumber("book_id",
			mcp.Required(),
			mcp.Description("Book identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireInt("book_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		docs, err := svc.DocumentsFor(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(docs)
	})
}

func registerStatusLegendTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"status_legend",
		mcp.WithDescription("Describe each archival status with its symbol and tone."),
	)

	srv.AddTool(tool, func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toJSONResult(map[string]any{
			"statuses": svc.StatusLegend(),
		})
	})
}

func registerStatusReportTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"status_report",
		mcp.WithDescription("Count books by status for every shelf and for the whole catalog."),
	)

	srv.AddTool(tool, func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		report, err := svc.Report(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(report)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
