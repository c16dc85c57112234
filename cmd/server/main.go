package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tarunm/keygate/config"
	"github.com/tarunm/keygate/internal/server"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "keygate",
		Short:         "Web service with an API-key guarded endpoint",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				log.Printf("[ERROR] %v", err)
				return err
			}

			if err := run(cfg); err != nil {
				log.Printf("[ERROR] %v", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().String("env-file", config.DefaultEnvFile, "dotenv file to load before reading the environment")
	cmd.Flags().String("port", "", "port to listen on (overrides PORT)")
	cmd.Flags().String("gin-mode", "", "gin mode: debug, release or test (overrides GIN_MODE)")

	return cmd
}

// resolveConfig loads the env file, reads the environment and applies flag
// overrides. An env file named explicitly on the command line must exist.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	envFile, _ := flags.GetString("env-file")
	if err := config.LoadEnvFile(envFile, flags.Changed("env-file")); err != nil {
		return nil, fmt.Errorf("load env file %s: %w", envFile, err)
	}

	cfg := config.LoadConfig()
	if flags.Changed("port") {
		cfg.Port, _ = flags.GetString("port")
	}
	if flags.Changed("gin-mode") {
		cfg.GinMode, _ = flags.GetString("gin-mode")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *config.Config) error {
	log.Println("[INFO] Starting keygate server...")
	log.Printf("[INFO] Configuration loaded: Port=%s, GinMode=%s, Metrics=%t",
		cfg.Port, cfg.GinMode, cfg.MetricsEnabled)

	router := server.NewRouter(cfg)
	srv := server.NewHTTPServer(cfg, router)

	errCh := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Printf("[INFO] Server listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for interrupt signal or listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}

	log.Println("[INFO] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("[INFO] Server shutdown complete")
	return nil
}
