package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"follow-checker/core/loader"
	"follow-checker/core/logger"
	"follow-checker/core/middleware/rayid"

	"follow-checker/feature/integrity"
	"follow-checker/feature/relationships"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "follow-checker/docs/swagger"
)

// @title Follow Checker API
// @version 1.0
// @description API for finding Instagram accounts that do not follow you back.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the follow checker server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Configuration, logger and optional backends
		deps, err := loadDeps(context.Background(), cacheUse)
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		logg := deps.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             deps.cfg.Server.BodyLimitBytes(),
		})

		// 3. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(relationships.NewFeature(deps.relationshipsOptions()))
		mgr.Register(integrity.NewFeature(deps.client, deps.cfg.Storage, logg, deps.db))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			start := time.Now()
			err := c.Next()
			fields := []zap.Field{
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
				zap.Int("status", c.Response().StatusCode()),
				zap.Duration("duration", time.Since(start)),
			}
			if err != nil {
				l.Error("Request error", append(fields, zap.Error(err))...)
				return err
			}
			l.Info("Request completed", fields...)
			return nil
		})

		// 3. Swagger Documentation
		if deps.cfg.Server.Swagger {
			app.Get("/swagger/*", swagger.HandlerDefault)
		}

		// 4. Load Features
		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		// 5. Start Server
		go func() {
			logg.Info("Starting server", zap.String("address", deps.cfg.Server.Address()))
			if err := app.Listen(deps.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 6. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
