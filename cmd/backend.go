package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"flatacuties/core/config"
	"flatacuties/core/database"
	"flatacuties/core/loader"
	"flatacuties/core/logger"
	"flatacuties/core/middleware/rayid"
	"flatacuties/core/storage"
	"flatacuties/feature/backend"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	backendReadOnly bool
	backendSeed     string
)

// backendCmd runs the development characters API
var backendCmd = &cobra.Command{
	Use:   "backend",
	Short: "Run a json-server compatible characters API",
	Long: `Serves /characters from the configured database, optionally seeded from a
json-server db.json file. With --read-only every write answers 403.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if cmd.Flags().Changed("read-only") {
			cfg.Backend.ReadOnly = backendReadOnly
		}
		if backendSeed != "" {
			cfg.Backend.SeedFile = backendSeed
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver), zap.String("name", cfg.Database.Name))

		var images storage.Client
		if cfg.Backend.ImagesEnabled {
			images, err = storage.NewClient(cfg.Storage)
			if err != nil {
				return err
			}
			if err := storage.EnsureBucket(cmd.Context(), images, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
				return err
			}
		}

		feature := backend.NewFeature(db, images, cfg.Storage.Bucket, cfg.Backend, logg)
		if err := feature.Service().Prepare(cmd.Context()); err != nil {
			return err
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})
		app.Use(rayid.New())
		app.Use(requestLogger(logg))

		mgr := loader.NewManager(logg)
		mgr.Register(feature)
		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting backend", zap.String("port", cfg.Backend.Port), zap.Bool("read_only", cfg.Backend.ReadOnly))
			errCh <- app.Listen(cfg.Backend.Addr())
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return fmt.Errorf("backend failed: %w", err)
		case <-quit:
		}

		logg.Info("Shutting down backend...")
		return app.Shutdown()
	},
}

func init() {
	backendCmd.Flags().BoolVar(&backendReadOnly, "read-only", false, "reject every write with 403")
	backendCmd.Flags().StringVar(&backendSeed, "seed", "", "json-server db.json used to fill an empty table")
	RootCmd.AddCommand(backendCmd)
}
