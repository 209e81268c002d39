package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpLayer "rental-yield/http"
	"rental-yield/service"
)

func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the projection HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			cache, closeCache := newCache(cfg.Cache)
			defer closeCache()

			projections, err := newProjectionService(cmd, cfg, cache)
			if err != nil {
				return err
			}
			comparison := service.NewSchemeComparisonService(projections)
			handler := httpLayer.NewProjectionHandler(projections, comparison, cfg.Engine.DefaultTermYears, cfg.Report.SheetName)

			rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Refill)
			defer rateLimiter.Stop()

			server := &http.Server{
				Addr:         cfg.Server.Address,
				Handler:      httpLayer.NewRouter(handler, rateLimiter),
				ReadTimeout:  cfg.Server.ReadTimeout,
				WriteTimeout: cfg.Server.WriteTimeout,
				IdleTimeout:  cfg.Server.IdleTimeout,
			}

			serverErr := make(chan error, 1)
			go func() {
				log.Printf("API listening on %s (annuity fidelity %s)", cfg.Server.Address, projections.Fidelity())
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					serverErr <- err
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err
			case <-quit:
				log.Println("Shutting down server...")
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				log.Printf("Error during server shutdown: %v", err)
			}
			log.Println("Server exited")
			return nil
		},
	}

	cmd.Flags().String("fidelity", "", "annuity fidelity: exact or approximate")

	return cmd
}
