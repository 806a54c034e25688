package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/adminkit/adminkit/examples/demoapp"
	"github.com/adminkit/adminkit/internal/adapter"
	"github.com/adminkit/adminkit/internal/adapter/gormadapter"
	"github.com/adminkit/adminkit/internal/boot"
	"github.com/adminkit/adminkit/internal/config"
	"github.com/adminkit/adminkit/internal/router"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the admin interface server",
	Long: `Start the admin interface server.

Settings come from an optional YAML configuration file (--config); omitted
values fall back to defaults. The PostgreSQL connection string is taken
from --dsn or the ADMINKIT_DSN environment variable.`,
	RunE: runServe,
}

const (
	defaultGracefulTimeout = 30 * time.Second
	serverRequestTimeout   = 10 * time.Second
	serverReadTimeout      = 10 * time.Second
	serverWriteTimeout     = 15 * time.Second // Must be > serverRequestTimeout to let middleware handle timeout
	serverIdleTimeout      = 60 * time.Second
)

func init() {
	serveCmd.Flags().String("address", ":8080", "Address to listen on")
	serveCmd.Flags().String("config", "", "Path to configuration file (YAML format)")
	serveCmd.Flags().String("dsn", "", "PostgreSQL connection string")

	for _, flag := range []string{"address", "config", "dsn"} {
		if err := viper.BindPFlag(flag, serveCmd.Flags().Lookup(flag)); err != nil {
			slog.Error("Failed to bind flag", "flag", flag, "error", err)
			os.Exit(1)
		}
	}
	viper.SetEnvPrefix(config.EnvPrefix)
	_ = viper.BindEnv("dsn")
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	address := viper.GetString("address")

	slog.Info("Starting admin interface server", "address", address)

	var opts []config.Option
	if configPath := viper.GetString("config"); configPath != "" {
		opts = append(opts, config.WithConfigPath(configPath))
		slog.Info("Loading configuration", "path", configPath)
	}
	settings, err := config.Load(opts...)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if settings.DefaultAdapter == "" {
		settings.DefaultAdapter = gormadapter.AdapterName
	}

	store := config.NewStore(settings)
	rc := adapter.NewRuntimeContext(store)

	g := gormadapter.New(gormadapter.Options{DSN: viper.GetString("dsn")})
	rc.Adapters.Register(g)

	bm := boot.New(rc)
	demoapp.Install(bm, g)

	server := router.NewServer(router.WithMiddlewares(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Timeout(serverRequestTimeout),
	))

	if _, err := bm.Init(ctx, server, gormadapter.AdapterName, []string{demoapp.PackageRoot}); err != nil {
		return fmt.Errorf("boot failed: %w", err)
	}
	if err := server.RunStartupHooks(ctx); err != nil {
		return fmt.Errorf("startup hooks failed: %w", err)
	}

	httpServer := &http.Server{
		Addr:         address,
		Handler:      server.Handler(),
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		IdleTimeout:  serverIdleTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", address)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultGracefulTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		return err
	}
	server.RunShutdownHooks(shutdownCtx)

	slog.Info("Server shutdown complete")
	return nil
}
