package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/ChaseHampton/headstones/internal/handlers"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var port int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the review API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("port") {
			port = cfg.Server.Port
		}

		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()

		app := fiber.New(fiber.Config{
			AppName:               "headstones",
			DisableStartupMessage: true,
		})
		app.Use(fiberlogger.New())
		handlers.Register(app, store, logger)

		go func() {
			<-cmd.Context().Done()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := app.ShutdownWithContext(ctx); err != nil {
				logger.Warn("server shutdown", zap.Error(err))
			}
		}()

		logger.Info("starting server", zap.Int("port", port), zap.Int("records", store.RecordCount()))
		if err := app.Listen(fmt.Sprintf(":%d", port)); err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&port, "port", "p", 8080, "Port to run the server on (SERVER_PORT)")
}
