package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

const transactionDetailFailure = "Error fetching transaction details: "

type GetTransactionDetailHandler struct {
	Service BankingService
}

func (h *GetTransactionDetailHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	transactionID, err := req.RequireString("transactionid")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	body, err := h.Service.TransactionDetail(ctx, transactionID)
	return textResult(ctx, body, err, transactionDetailFailure), nil
}
