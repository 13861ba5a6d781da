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

	"github.com/roivaz/uitdb-mcp/internal/config"
	"github.com/roivaz/uitdb-mcp/internal/logging"
	"github.com/roivaz/uitdb-mcp/internal/mcp"
)

func main() {
	root := &cobra.Command{
		Use:          "mcp-server",
		Short:        "UiTdatabank search MCP server",
		SilenceUsage: true,
		RunE:         run,
	}

	root.PersistentFlags().String("uitdb-client-id", "", "UiTdatabank client id (sent as x-client-id and clientId)")
	root.PersistentFlags().String("uitdb-base-url", "", "UiTdatabank Search API base URL")
	root.PersistentFlags().String("uitdb-timeout", "", "Outbound request timeout (e.g. 20s)")
	root.PersistentFlags().Float64("uitdb-rate-limit", 0, "Maximum outbound requests per second (0 disables)")
	root.PersistentFlags().String("mcp-endpoint-path", "", "HTTP path serving MCP requests")
	root.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().Int("port", 8000, "HTTP port")
	root.PersistentFlags().String("host", "0.0.0.0", "HTTP host")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := logging.New(logging.NewLogger(config.LogLevel())).WithName("mcp-server")

	cfg, err := mcp.DefaultConfig(logger)
	if err != nil {
		return err
	}
	srv := mcp.New(cfg)

	addr := net.JoinHostPort(config.Host(), strconv.Itoa(config.Port()))
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("MCP server listening", "addr", addr, "endpoint", cfg.EndpointPath)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
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
