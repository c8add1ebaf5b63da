package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	shelvesURI   = "archive://shelves"
	bookTemplate = "archive://books/{id}"
	bookPrefix   = "archive://books/"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerShelvesResource(srv, svc)
	registerBookTemplate(srv, svc)
}

func registerShelvesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		shelvesURI,
		"Bookshelves",
		mcp.WithResourceDescription("Every bookshelf with its books and their archival status."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		shelves, err := svc.ListShelves(ctx)
		if err != nil {
			return nil, err
		}
		payload := map[string]any{
			"shelves": shelves,
			"count":   len(shelves),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerBookTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		bookTemplate,
		"Digital Book",
		mcp.WithTemplateDescription("A book with the documents filed for it."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		payload, err := readBook(ctx, svc, request)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func readBook(ctx context.Context, svc *Service, request mcp.ReadResourceRequest) (map[string]any, error) {
	raw := templateArg(request, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("book id must be a number, got %q", raw)
	}
	book, err := svc.Book(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("book %d: %w", id, err)
	}
	docs, err := svc.DocumentsFor(ctx, id)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"book":      book,
		"count":     docs.Count,
		"documents": docs.Documents,
	}, nil
}

// templateArg reads a matched URI template variable, falling back to the
// last path segment of the request URI.
func templateArg(request mcp.ReadResourceRequest, name string) string {
	switch v := request.Params.Arguments[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return strings.TrimPrefix(request.Params.URI, bookPrefix)
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
