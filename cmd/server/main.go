package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/janisto/budget-shop-api/internal/config"
	"github.com/janisto/budget-shop-api/internal/platform/logging"
	"github.com/janisto/budget-shop-api/internal/server"
)

func main() {
	if err := run(); err != nil {
		logging.Error(context.Background(), "server failed", err)
		_ = logging.Sync()
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.Load(os.Getenv(config.EnvConfigFile))
	if err != nil {
		return err
	}
	if err := logging.Init(logging.Options{Level: cfg.Logging.Level}); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() {
		if err := logging.Sync(); err != nil {
			logging.Error(context.Background(), "logger sync error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, server.NewHandler(cfg))
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	}
	return server.Serve(ctx, srv, ln)
}
