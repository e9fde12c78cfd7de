package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

const waitTimeFailure = "Error fetching wait time: "

type GetHumanWaitTimeHandler struct {
	Service BankingService
}

func (h *GetHumanWaitTimeHandler) ToolAdapter(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	body, err := h.Service.HumanWaitTime(ctx)
	return textResult(ctx, body, err, waitTimeFailure), nil
}
