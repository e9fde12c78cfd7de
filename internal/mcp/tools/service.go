package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// BankingService is the backend surface the tools call into. Every method
// returns the raw response text.
type BankingService interface {
	CustomerName(ctx context.Context, documentID string) (string, error)
	HumanWaitTime(ctx context.Context) (string, error)
	SearchTransactions(ctx context.Context, query string) (string, error)
	TransactionDetail(ctx context.Context, transactionID string) (string, error)
}

// textResult turns a backend outcome into a tool result. Failures become
// plain text prefixed with failurePrefix and are never reported as errors;
// they are flagged on the call's Outcome instead.
func textResult(ctx context.Context, body string, err error, failurePrefix string) *mcp.CallToolResult {
	if err != nil {
		markBackendFailed(ctx)
		return mcp.NewToolResultText(failurePrefix + err.Error())
	}
	return mcp.NewToolResultText(body)
}
