package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/datashield/internal/logging"
	"github.com/aretw0/datashield/internal/presentation"
	httpAdapter "github.com/aretw0/datashield/pkg/adapters/http"
	redisAdapter "github.com/aretw0/datashield/pkg/adapters/redis"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the sanitization pipeline over HTTP",
	Long: `Starts an HTTP server exposing POST /v1/sanitize plus liveness and
prometheus metrics. With --redis set, run reports are persisted for
later inspection under /v1/runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		logger := logging.New(logging.ParseLevel(level))

		addr, _ := cmd.Flags().GetString("addr")
		redisAddr, _ := cmd.Flags().GetString("redis")
		redisTTL, _ := cmd.Flags().GetDuration("redis-ttl")

		var opts []httpAdapter.Option
		if redisAddr != "" {
			store := redisAdapter.New(redisAddr, "", 0, redisAdapter.WithTTL(redisTTL))
			opts = append(opts, httpAdapter.WithRunStore(store))
		}

		presentation.PrintBanner()

		server := &http.Server{
			Addr:    addr,
			Handler: httpAdapter.NewHandler(logger, opts...),
		}

		errs := make(chan error, 1)
		go func() {
			logger.Info("HTTP server listening", "address", addr)
			errs <- server.ListenAndServe()
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errs:
			return err
		case <-stop:
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			fmt.Println("\nShutdown signal received, shutting down server...")
			if err := server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("could not stop server gracefully: %w", err)
			}
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "Listen address")
	serveCmd.Flags().String("redis", "", "Redis address for run history (optional)")
	serveCmd.Flags().Duration("redis-ttl", 0, "TTL for stored run records (0 = keep forever)")
}
