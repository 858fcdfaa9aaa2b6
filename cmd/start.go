package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"service-locator/core/feature"
	"service-locator/core/logger"
	"service-locator/core/middleware/auth"
	"service-locator/core/middleware/rayid"
	"service-locator/feature/inspect"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the inspection server",
	Long:  `Starts the HTTP server exposing the loader registry and service definitions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(".")
		if err != nil {
			return err
		}
		logg := a.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		srv := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := feature.NewManager(logg)
		mgr.Register(inspect.NewFeature(a.locator, logg))

		// RayID must be first to trace everything
		srv.Use(rayid.New())
		srv.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})
		srv.Use(auth.New(auth.Config{ApiKey: a.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(srv); err != nil {
			return err
		}

		go func() {
			logg.Info("Starting server", zap.String("port", a.cfg.Server.Port))
			if err := srv.Listen(a.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return srv.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
