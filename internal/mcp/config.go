package mcp

import (
	"github.com/roivaz/bank-support-mcp/internal/backend"
	"github.com/roivaz/bank-support-mcp/internal/config"
	"github.com/roivaz/bank-support-mcp/internal/logging"
	"github.com/roivaz/bank-support-mcp/internal/mcp/tools"
	"github.com/roivaz/bank-support-mcp/internal/telemetry"
)

const Version = "1.0.0"

type Config struct {
	Name         string
	Version      string
	ToolAdapters map[string]ToolAdapter
	Logger       logging.Logger
	Observer     *telemetry.ToolObserver
}

// ToolAdapters binds every banking tool to the given service.
func ToolAdapters(svc tools.BankingService) map[string]ToolAdapter {
	return map[string]ToolAdapter{
		tools.GetCustomerName:      &tools.GetCustomerNameHandler{Service: svc},
		tools.GetHumanWaitTime:     &tools.GetHumanWaitTimeHandler{Service: svc},
		tools.SearchTransactions:   &tools.SearchTransactionsHandler{Service: svc},
		tools.GetTransactionDetail: &tools.GetTransactionDetailHandler{Service: svc},
	}
}

// DefaultConfig builds a Config from the process configuration, talking to
// the configured banking backend.
func DefaultConfig(name string, logger logging.Logger) (Config, error) {
	observer, err := telemetry.NewToolObserver(telemetry.Meter())
	if err != nil {
		return Config{}, err
	}

	client := backend.NewClient(config.BackendBaseURL(),
		backend.WithTimeout(config.BackendTimeout()),
		backend.WithTracer(telemetry.Tracer()),
	)

	return Config{
		Name:         name,
		Version:      Version,
		ToolAdapters: ToolAdapters(client),
		Logger:       logger,
		Observer:     observer,
	}, nil
}
