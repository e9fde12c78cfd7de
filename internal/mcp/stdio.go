package mcp

import (
	"bytes"
	"context"
	"io"
	stdlog "log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/bank-support-mcp/internal/logging"
)

// ServeStdio runs a single session over in/out until in is exhausted or ctx
// is cancelled.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.MCP)
	stdio.SetErrorLogger(stdlog.New(logWriter{log: s.log.WithName("stdio")}, "", 0))
	return stdio.Listen(ctx, in, out)
}

// logWriter forwards the stdio server's error log lines to the structured logger.
type logWriter struct {
	log logging.Logger
}

func (w logWriter) Write(p []byte) (int, error) {
	w.log.Info(string(bytes.TrimRight(p, "\n")))
	return len(p), nil
}
