// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/moment-search/internal/logger"
	"github.com/pdiddy/moment-search/internal/search"
	"github.com/pdiddy/moment-search/internal/webui"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the search page",
	Long: `Serve runs the search page. Each open tab gets its own live session over a
WebSocket; browsers without scripts fall back to a plain form post.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := search.NewClient(appConfig.Backend)
		srv := webui.NewServer(client, client.Endpoint, appConfig.Embed, appConfig.UI)

		httpSrv := &http.Server{
			Addr:              appConfig.UI.Addr,
			Handler:           srv.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("serving on %s, backend %s", appConfig.UI.Addr, client.Endpoint)
			errCh <- httpSrv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serving on %s: %w", appConfig.UI.Addr, err)
			}
			return nil
		case <-ctx.Done():
		}

		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :5173)")
	viper.BindPFlag("ui.addr", serveCmd.Flags().Lookup("addr"))

	rootCmd.AddCommand(serveCmd)
}
