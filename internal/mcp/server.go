package mcp

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/uitdb-mcp/internal/uitdb"
)

const (
	ServerName    = "uitdb-mcp"
	ServerVersion = "1.0.0"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

func searchOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("q",
			mcp.Description("Free text search query (e.g., 'jazz', 'kindertheater')"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of items per page (default: 10)"),
		),
		mcp.WithNumber("page",
			mcp.Description("1-based page number (default: 1)"),
		),
		mcp.WithString("start",
			mcp.Description("Optional: ISO-8601 start date, sent as dateFrom (e.g., '2025-09-01')"),
		),
		mcp.WithString("end",
			mcp.Description("Optional: ISO-8601 end date, sent as dateTo"),
		),
		mcp.WithString("city",
			mcp.Description("Optional: filter by city, sent as addressLocality (e.g., 'Gent')"),
		),
		mcp.WithBoolean("embed",
			mcp.Description("Embed full documents instead of references (default: true)"),
		),
		mcp.WithObject("params",
			mcp.Description("Optional: extra UiTdatabank Search API query parameters passed through verbatim. Arrays become repeated parameters."),
		),
	}
}

func toolDefinitions() map[string]mcp.Tool {
	endpointTool := func(name string, ep uitdb.Endpoint) mcp.Tool {
		opts := append([]mcp.ToolOption{
			mcp.WithDescription("Search UiTdatabank " + string(ep) + " and return the upstream JSON response unmodified."),
			mcp.WithReadOnlyHintAnnotation(true),
		}, searchOptions()...)
		return mcp.NewTool(name, opts...)
	}

	endpoints := make([]string, 0, len(uitdb.Endpoints()))
	for _, ep := range uitdb.Endpoints() {
		endpoints = append(endpoints, string(ep))
	}
	summaryOpts := append([]mcp.ToolOption{
		mcp.WithDescription("Search the UiTdatabank (Belgian cultural events, places and organizers) and return a compact summary: endpoint, count, page, data and raw_meta. Events are reduced to id, name, dates, status, location and organizer."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("endpoint",
			mcp.Required(),
			mcp.Description("Collection to search"),
			mcp.Enum(endpoints...),
		),
	}, searchOptions()...)

	return map[string]mcp.Tool{
		"search_events":     endpointTool("search_events", uitdb.EndpointEvents),
		"search_places":     endpointTool("search_places", uitdb.EndpointPlaces),
		"search_organizers": endpointTool("search_organizers", uitdb.EndpointOrganizers),
		"search_uit":        mcp.NewTool("search_uit", summaryOpts...),
	}
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
	)

	definitions := toolDefinitions()
	for name, adapter := range cfg.ToolAdapters {
		tool, ok := definitions[name]
		if !ok {
			continue
		}
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
	}

	endpointPath := cfg.EndpointPath
	if endpointPath == "" {
		endpointPath = DefaultEndpointPath
	}
	opts := append([]server.StreamableHTTPOption{
		server.WithEndpointPath(endpointPath),
		server.WithStateLess(true),
	}, cfg.Options...)
	httpServer := server.NewStreamableHTTPServer(mcpServer, opts...)

	mux := http.NewServeMux()
	mux.Handle(endpointPath, httpServer)
	mux.HandleFunc("GET /{$}", healthHandler(endpointPath))

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: mux,
	}
}

func healthHandler(endpointPath string) http.HandlerFunc {
	body, _ := json.Marshal(map[string]any{
		"ok":           true,
		"service":      ServerName,
		"mcp_endpoint": endpointPath,
	})
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}
}
