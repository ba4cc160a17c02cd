package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-mclib/mcserver/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start listening for connections",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file (defaults applied if omitted)")
	return cmd
}

func runServe(ctx context.Context, configPath string) error {
	log, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

	cfg := server.DefaultConfig()
	if configPath != "" {
		cfg, err = server.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	addr := net.JoinHostPort(cfg.ListenAddress, strconv.Itoa(int(cfg.ListenPort)))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	defer ln.Close()

	log.Info("listening",
		zap.String("address", addr),
		zap.Bool("online_mode", cfg.OnlineMode),
		zap.Int32("protocol_version", cfg.ProtocolVersion),
	)

	s := server.NewServer(cfg, log)

	if cfg.MetricsAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(s.Metrics.Registry, promhttp.HandlerOpts{}))
		metricsServer := &http.Server{Addr: cfg.MetricsAddress, Handler: mux}
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Warn("metrics server stopped", zap.Error(err))
			}
		}()
		go func() {
			<-ctx.Done()
			_ = metricsServer.Close()
		}()
		log.Info("serving metrics", zap.String("address", cfg.MetricsAddress))
	}

	return s.Serve(ctx, ln)
}
