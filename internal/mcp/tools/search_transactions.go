package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

const searchTransactionsFailure = "Error searching transactions: "

type SearchTransactionsHandler struct {
	Service BankingService
}

func (h *SearchTransactionsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	body, err := h.Service.SearchTransactions(ctx, query)
	return textResult(ctx, body, err, searchTransactionsFailure), nil
}
