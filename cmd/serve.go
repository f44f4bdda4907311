package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/viant/mcp"
)

// ServeCmd launches an MCP server exposing the tally tools. Server options
// (port, transport, auth) come from the config file; metrics.addr (or
// TALLY_METRICS_ADDR) additionally serves Prometheus metrics on /metrics.
type ServeCmd struct{}

func (c *ServeCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	ctx := context.Background()
	logger := svc.Logger()
	if err = svc.Start(ctx); err != nil {
		return err
	}
	defer svc.Shutdown(ctx)

	cfg := svc.Config()
	mcpServer, err := mcp.NewServer(svc.NewHandler, cfg.Server)
	if err != nil {
		return err
	}

	httpSrv := mcpServer.HTTP(ctx, "")
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("mcp server failed", "error", err)
			os.Exit(1)
		}
	}()
	logger.Info("MCP server listening", "addr", httpSrv.Addr, "tools", len(svc.Tools()))

	var metricsSrv *http.Server
	if addr := cfg.Metrics.Addr; addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(svc.Registry(), promhttp.HandlerOpts{}))
		metricsSrv = &http.Server{Addr: addr, Handler: mux}
		go func() {
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", "error", err)
			}
		}()
		logger.Info("metrics listening", "addr", addr)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info("shutting down")
	if metricsSrv != nil {
		if err := metricsSrv.Close(); err != nil {
			logger.Warn("metrics server close", "error", err)
		}
	}
	if err := httpSrv.Close(); err != nil {
		return fmt.Errorf("close mcp server: %w", err)
	}
	return nil
}
