package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

const customerNameFailure = "Error fetching customer name: "

type GetCustomerNameHandler struct {
	Service BankingService
}

func (h *GetCustomerNameHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	documentID, err := req.RequireString("customer_document_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	body, err := h.Service.CustomerName(ctx, documentID)
	return textResult(ctx, body, err, customerNameFailure), nil
}
