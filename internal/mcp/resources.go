// resources.go implements URI-based resource access for guide pages.
//
// Resources complement tools: MCP clients can attach a guide page to a
// conversation without a tool round-trip.

package mcp

import (
	"context"
	"strings"

	"github.com/jpl-au/sift/guide"
	"github.com/mark3labs/mcp-go/mcp"
)

// readGuidePage handles sift://guide/{topic} resource requests.
func (h *handlers) readGuidePage(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) { //nolint:revive // ctx for future use
	topic := strings.TrimPrefix(req.Params.URI, "sift://guide/")

	content, err := guide.Get(topic)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     content,
		},
	}, nil
}
