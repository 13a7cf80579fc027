package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	promadapter "github.com/bnema/fifochat/internal/adapters/metrics/prometheus"
	"github.com/bnema/fifochat/internal/application"
	"github.com/bnema/fifochat/internal/ports"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const metricsShutdownTimeout = 2 * time.Second

type serverOptions struct {
	configPath  string
	metricsAddr string
}

func runServer(cmd *cobra.Command, opts *serverOptions) (err error) {
	app, err := wireApp(opts.configPath, cmd.OutOrStdout(), zapcore.DebugLevel)
	if err != nil {
		return err
	}
	defer func() { _ = app.logger.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverPath := app.settings.Layout.ServerPath
	logger := app.logger.With(zap.String("path", serverPath))

	if err := app.channels.Create(serverPath); err != nil {
		return fmt.Errorf("create server channel: %w", err)
	}
	defer func() {
		if removeErr := app.channels.Remove(serverPath); removeErr != nil {
			err = errors.Join(err, removeErr)
		}
	}()

	inbox, err := app.channels.Listen(serverPath)
	if err != nil {
		return fmt.Errorf("listen on server channel: %w", err)
	}
	defer func() {
		if closeErr := inbox.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close server channel: %w", closeErr))
		}
	}()

	var metrics ports.ServerMetrics = ports.NopMetrics{}
	metricsAddr := opts.metricsAddr
	if metricsAddr == "" {
		metricsAddr = app.settings.MetricsAddr
	}
	if metricsAddr != "" {
		recorder := promadapter.NewRecorder()
		shutdown, err := serveMetrics(metricsAddr, recorder, logger)
		if err != nil {
			return err
		}
		defer shutdown()
		metrics = recorder
	}

	server := application.NewServer(application.ServerConfig{
		Layout:     app.settings.Layout,
		MaxClients: app.settings.MaxClients,
	}, app.channels, app.logger, metrics)

	logger.Info("server listening", zap.Int("max_clients", app.settings.MaxClients))
	if err := server.Serve(ctx, inbox); err != nil {
		return err
	}
	logger.Info("server shutting down", zap.Int("clients", len(server.Clients())))

	return nil
}

// serveMetrics binds addr before returning so a bad address fails startup.
func serveMetrics(addr string, recorder *promadapter.Recorder, logger *zap.Logger) (func(), error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen for metrics on %q: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", recorder.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics listener stopped", zap.Error(err))
		}
	}()
	logger.Info("serving metrics", zap.String("addr", listener.Addr().String()))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
