package tools

import "github.com/mark3labs/mcp-go/mcp"

const (
	GetCustomerName      = "get_customer_name"
	GetHumanWaitTime     = "get_human_wait_time"
	SearchTransactions   = "search_transactions"
	GetTransactionDetail = "get_transaction_detail"
)

// Definitions returns the schema of every banking tool keyed by name.
func Definitions() map[string]mcp.Tool {
	return map[string]mcp.Tool{
		GetCustomerName: mcp.NewTool(GetCustomerName,
			mcp.WithDescription("Get the customer's name by their document ID"),
			mcp.WithString("customer_document_id",
				mcp.Required(),
				mcp.Description("The customer's document ID (e.g., x1234567y)"),
			),
		),
		GetHumanWaitTime: mcp.NewTool(GetHumanWaitTime,
			mcp.WithDescription("Get the current human agent wait time in the contact center"),
		),
		SearchTransactions: mcp.NewTool(SearchTransactions,
			mcp.WithDescription("Search for transactions using a natural language query"),
			mcp.WithString("query",
				mcp.Required(),
				mcp.Description("Natural language search query (e.g., '3 or four euros near the end of may')"),
			),
		),
		GetTransactionDetail: mcp.NewTool(GetTransactionDetail,
			mcp.WithDescription("Get detailed information for a specific transaction ID"),
			mcp.WithString("transactionid",
				mcp.Required(),
				mcp.Description("The exact transaction ID (e.g., 74512345678901234567890)"),
			),
		),
	}
}
