package tools

import (
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/uitdb-mcp/internal/uitdb"
)

// toolError turns a search failure into an error result the client can read.
func toolError(err error) *mcp.CallToolResult {
	var upErr *uitdb.UpstreamError
	if errors.As(err, &upErr) {
		msg := fmt.Sprintf("upstream returned status %d", upErr.Status)
		if upErr.Unauthorized() {
			msg += " (check UITDB_CLIENT_ID)"
		}
		if len(upErr.Body) > 0 {
			msg += ": " + string(upErr.Body)
		}
		return mcp.NewToolResultError(msg)
	}
	var netErr *uitdb.NetworkError
	if errors.As(err, &netErr) {
		return mcp.NewToolResultError(fmt.Sprintf("upstream unavailable: %v", netErr.Err))
	}
	return mcp.NewToolResultError(err.Error())
}
