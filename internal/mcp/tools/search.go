package tools

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/uitdb-mcp/internal/logging"
	"github.com/roivaz/uitdb-mcp/internal/uitdb"
)

type SearchService interface {
	Search(ctx context.Context, endpoint uitdb.Endpoint, query url.Values) (json.RawMessage, error)
}

// SearchHandler serves one endpoint and returns the upstream JSON as is.
type SearchHandler struct {
	Service  SearchService
	Endpoint uitdb.Endpoint
	Log      logging.Logger
}

func (h *SearchHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params, err := parseParams(req.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	raw, err := search(ctx, h.Service, h.Log, req.Params.Name, h.Endpoint, params)
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(string(raw)), nil
}

// search runs a single upstream call and logs its outcome.
func search(ctx context.Context, svc SearchService, log logging.Logger, tool string, endpoint uitdb.Endpoint, params uitdb.Params) (json.RawMessage, error) {
	log = log.WithValues("tool", tool, "endpoint", endpoint, "call_id", uuid.NewString())
	start := time.Now()
	raw, err := svc.Search(ctx, endpoint, params.Query())
	if err != nil {
		log.Error(err, "search failed", "elapsed", time.Since(start))
		return nil, err
	}
	log.Info("search completed", "bytes", len(raw), "elapsed", time.Since(start))
	return raw, nil
}
