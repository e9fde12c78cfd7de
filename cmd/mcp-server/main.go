package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/roivaz/bank-support-mcp/internal/config"
	"github.com/roivaz/bank-support-mcp/internal/logging"
	"github.com/roivaz/bank-support-mcp/internal/mcp"
	"github.com/roivaz/bank-support-mcp/internal/telemetry"
)

const (
	stdioServerName = "Bank Support API"
	httpServerName  = "Banking-HTTP-Server"
)

var rootCmd = &cobra.Command{
	Use:   "mcp-server",
	Short: "Banking support MCP server",
}

var stdioCmd = &cobra.Command{
	Use:   "stdio",
	Short: "Serve the banking tools over standard input/output",
	RunE:  runStdio,
}

var sseCmd = &cobra.Command{
	Use:   "sse",
	Short: "Serve the banking tools over HTTP with server-sent events",
	RunE:  runSSE,
}

func main() {
	rootCmd.PersistentFlags().String("backend-base-url", "", "Banking backend base URL")
	rootCmd.PersistentFlags().Duration("backend-timeout", 0, "Per-request backend timeout (0 disables)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("otlp-endpoint", "", "OTLP/HTTP trace collector URL")
	sseCmd.Flags().String("host", "", "HTTP host")
	sseCmd.Flags().Int("port", 0, "HTTP port")

	config.Init(rootCmd)
	config.BindFlags(sseCmd.Flags())
	rootCmd.AddCommand(stdioCmd)
	rootCmd.AddCommand(sseCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("mcp-server: %v", err)
	}
}

// setup builds the logger, telemetry and MCP server shared by both transports.
func setup(ctx context.Context, name string) (*mcp.Server, logging.Logger, telemetry.ShutdownFunc, error) {
	logger := logging.New(logging.LeveledLogger(config.LogLevel()))

	shutdown, err := telemetry.Setup(ctx, config.OTLPEndpoint(), name)
	if err != nil {
		return nil, logger, nil, err
	}

	cfg, err := mcp.DefaultConfig(name, logger)
	if err != nil {
		_ = shutdown(ctx)
		return nil, logger, nil, err
	}
	srv, err := mcp.New(cfg)
	if err != nil {
		_ = shutdown(ctx)
		return nil, logger, nil, err
	}
	return srv, logger, shutdown, nil
}

func runStdio(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, logger, shutdown, err := setup(ctx, stdioServerName)
	if err != nil {
		return err
	}
	defer flush(logger, shutdown)

	logger.Info("Bank Support MCP Server is running...", "backend", config.BackendBaseURL())
	err = srv.ServeStdio(ctx, os.Stdin, os.Stdout)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runSSE(cmd *cobra.Command, args []string) error {
	srv, logger, shutdown, err := setup(context.Background(), httpServerName)
	if err != nil {
		return err
	}
	defer flush(logger, shutdown)

	addr := net.JoinHostPort(config.Host(), strconv.Itoa(config.Port()))
	httpServer := srv.NewHTTPServer(addr)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("MCP HTTP Server running", "url", "http://localhost:"+strconv.Itoa(config.Port())+mcp.SSEPath)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func flush(logger logging.Logger, shutdown telemetry.ShutdownFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		logger.Error(err, "telemetry shutdown failed")
	}
}
