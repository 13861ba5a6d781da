package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/uitdb-mcp/internal/logging"
	"github.com/roivaz/uitdb-mcp/internal/uitdb"
)

// SummaryHandler searches any endpoint and returns a compact summary instead
// of the full upstream payload.
type SummaryHandler struct {
	Service SearchService
	Log     logging.Logger
}

func (h *SummaryHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	name, err := stringArg(args, "endpoint")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if name == "" {
		return mcp.NewToolResultError("endpoint parameter is required"), nil
	}
	endpoint, err := uitdb.ParseEndpoint(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	params, err := parseParams(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	raw, err := search(ctx, h.Service, h.Log, req.Params.Name, endpoint, params)
	if err != nil {
		return toolError(err), nil
	}

	page := params.Page
	if page == 0 {
		page = uitdb.DefaultPage
	}
	summary, err := uitdb.Summarize(endpoint, page, raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(mustMarshal(summary))), nil
}
