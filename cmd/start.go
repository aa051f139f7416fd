package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"ledger-manager/core/catalog"
	"ledger-manager/core/config"
	"ledger-manager/core/directory"
	"ledger-manager/core/ident"
	"ledger-manager/core/loader"
	"ledger-manager/core/logger"
	"ledger-manager/core/middleware/auth"
	"ledger-manager/core/middleware/rayid"
	"ledger-manager/core/reconcile"

	"ledger-manager/feature/integrity"
	"ledger-manager/feature/ledger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "ledger-manager/docs/swagger"
)

// @title Ledger Manager API
// @version 1.0
// @description API for recording received and shipped objects.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the ledger manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Catalog backends (Optional)
		b := connectCatalog(cfg, logg)

		// 4. Reconciliation core
		dir := directory.New()
		processor := reconcile.NewProcessor(dir)
		validator := ident.NewValidator(cfg.Identifier)
		resolver := catalog.NewResolver(b.source, logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 5. Feature Loader
		mgr := loader.NewManager()
		mgr.Register(ledger.NewFeature(validator, processor, resolver, logg))
		mgr.Register(integrity.NewFeature(b.source, b.db, b.client, cfg.Storage.Bucket, logg))

		// RayID first so every log line carries it
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
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

		// Swagger stays public
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Skip: []string{"/swagger"}}))

		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
