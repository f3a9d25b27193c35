package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"inventory-manager/core/loader"
	"inventory-manager/core/logger"
	"inventory-manager/core/middleware/auth"
	"inventory-manager/core/middleware/rayid"
	"inventory-manager/feature/audit"
	"inventory-manager/feature/inventory"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "inventory-manager/docs/swagger"
)

// @title Inventory Manager API
// @version 1.0
// @description API for managing inventory and sales.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the inventory manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg, err := bootstrap()
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// Connect to Database (Optional). Without it the audit feature
		// stays unloaded and snapshot saves are not mirrored.
		db := optionalDatabase(cfg, logg)
		if db != nil {
			logg.Info("Connected to audit database", zap.String("driver", cfg.Database.Driver))
		}

		archive := optionalStorage(cfg, logg)

		// Load the inventory snapshot
		inv, err := loadInventory(cfg, logg, db, archive)
		if err != nil {
			logg.Fatal("Failed to load inventory", zap.Error(err))
		}
		logg.Info("Inventory loaded", zap.Int("products", inv.Len()))

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Feature registration
		mgr := loader.NewManager()
		mgr.Register(inventory.NewFeature(inv))
		mgr.Register(audit.NewFeature(audit.NewService(cfg.Audit, db, logg, archive, cfg.Storage.Bucket)))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
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

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful Shutdown
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
