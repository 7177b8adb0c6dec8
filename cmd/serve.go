package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/quickagent/quickagent/internal/caption"
	"github.com/quickagent/quickagent/internal/config"
	"github.com/quickagent/quickagent/internal/handlers"
	"github.com/quickagent/quickagent/internal/vision"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string
	var configFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the QuickAgent API server",
		Long: `Starts the QuickAgent backend on the specified port.

The server exposes the visual search and caption generation endpoints and
serves the web client from the public directory.`,
		Example: `  # Start server on default port 8080
  quickagent serve

  # Start server on custom port with a settings file
  quickagent serve --port 3000 --config quickagent.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}

			handler := handlers.New(vision.New(cfg.Vision), caption.New(cfg), cfg.PublicDir)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/scan", handler.HandleScan)
			mux.HandleFunc("/api/caption", handler.HandleCaption)
			mux.HandleFunc("/api/health", handler.HandleHealth)
			mux.HandleFunc("/", handler.HandleStatic)

			addr := ":" + cfg.Port
			server := &http.Server{
				Addr:    addr,
				Handler: cors.AllowAll().Handler(mux),
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("QuickAgent online", "addr", addr, "provider", cfg.Caption.Provider)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides PORT)")
	cmd.Flags().StringVar(&configFile, "config", "", "Path to a YAML settings file")

	return cmd
}
