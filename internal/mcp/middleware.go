package mcp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/bank-support-mcp/internal/logging"
	"github.com/roivaz/bank-support-mcp/internal/mcp/tools"
	"github.com/roivaz/bank-support-mcp/internal/telemetry"
)

// instrument logs and meters every tool call.
func instrument(log logging.Logger, observer *telemetry.ToolObserver) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			callLog := log.WithValues("call_id", uuid.NewString(), "tool", req.Params.Name)
			if session := server.ClientSessionFromContext(ctx); session != nil {
				callLog = callLog.WithValues("session_id", session.SessionID())
			}
			callLog.Debug("tool call started")

			ctx, outcome := tools.WithOutcome(ctx)
			start := time.Now()
			res, err := next(ctx, req)
			elapsed := time.Since(start)

			isError := err != nil || (res != nil && res.IsError)
			backendFailed := outcome.BackendFailed()
			observer.ObserveInvoke(ctx, req.Params.Name, elapsed, isError, backendFailed)
			if err != nil {
				callLog.Error(err, "tool call failed", "duration", elapsed)
				return res, err
			}
			callLog.Info("tool call finished", "duration", elapsed, "is_error", isError, "backend_failed", backendFailed)
			return res, nil
		}
	}
}
