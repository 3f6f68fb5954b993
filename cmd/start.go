package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"flatacuties/core/config"
	"flatacuties/core/loader"
	"flatacuties/core/logger"
	"flatacuties/core/middleware/auth"
	"flatacuties/core/middleware/rayid"
	"flatacuties/feature/characters"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "flatacuties/docs/swagger"
)

// @title Flatacuties Session API
// @version 1.0
// @description Character vote session with optimistic updates synced to a characters API.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the session API server",
	Long:  `Loads the characters from the API base and serves the session over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := cfg.Server.Validate(); err != nil {
			return err
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		sess, err := newSession(cfg, logg)
		if err != nil {
			return err
		}
		// an unreachable API is reported and can be retried through /session/characters/refresh
		if err := sess.engine.Load(cmd.Context()); err != nil {
			logg.Warn("Initial load failed", zap.Error(err))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager(logg)
		mgr.Register(characters.NewFeature(sess.engine, sess.recorder, logg))

		app.Use(rayid.New())
		app.Use(requestLogger(logg))

		if cfg.Server.Swagger {
			app.Get("/swagger/*", swagger.HandlerDefault)
		}

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port), zap.String("api", sess.engine.Base()))
			errCh <- app.Listen(cfg.Server.Addr())
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-quit:
		}

		logg.Info("Shutting down server...")
		_ = app.Shutdown()
		sess.engine.Wait()
		return nil
	},
}

// requestLogger logs every request with its ray id.
func requestLogger(logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
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
	}
}

func init() {
	RootCmd.AddCommand(startCmd)
}
