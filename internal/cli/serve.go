package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpapi "github.com/ticketwise/backend/internal/http"
	"github.com/ticketwise/backend/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the assignment HTTP API",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		if err := cfg.Assignment().Validate(); err != nil {
			return err
		}

		router := httpapi.Router(cfg, store.New(), logger)

		srv := &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: router,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info().Str("port", cfg.Port).Msg("server started")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return err
		case <-quit:
		}

		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
		logger.Info().Msg("server stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
