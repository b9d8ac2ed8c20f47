package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/stevetowers08/leadflow-sub006/core/config"
	"github.com/stevetowers08/leadflow-sub006/core/database"
	"github.com/stevetowers08/leadflow-sub006/core/loader"
	"github.com/stevetowers08/leadflow-sub006/core/logger"
	"github.com/stevetowers08/leadflow-sub006/core/middleware/auth"
	"github.com/stevetowers08/leadflow-sub006/core/middleware/rayid"
	"github.com/stevetowers08/leadflow-sub006/core/storage"

	"github.com/stevetowers08/leadflow-sub006/feature/leads"
	"github.com/stevetowers08/leadflow-sub006/feature/leads/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/stevetowers08/leadflow-sub006/docs/swagger"
)

// @title LeadFlow API
// @version 1.0
// @description API for bulk-importing CRM leads from delimited-text files.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the import server",
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

		// 3. Connect to Database. Unlike the archive this one is not
		// optional: imports have nowhere to land without it.
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := db.AutoMigrate(&models.Lead{}, &models.Company{}); err != nil {
			logg.Fatal("Failed to migrate schema", zap.Error(err))
		}
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

		// 4. Initialize Fiber App. The body limit sits above the import
		// ceiling so oversized uploads reach the handler and get a clean
		// JSON rejection instead of a dropped connection.
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimitBytes(),
		})

		// 5. Initialize Storage (optional upload archive)
		var store storage.Client
		if cfg.Storage.Enabled {
			store, err = storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			logg.Info("Upload archiving enabled", zap.String("bucket", cfg.Storage.Bucket))
		}

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(leads.NewFeature(db, store, cfg.Storage.Bucket, cfg.Server.ActorID, logg))

		// Middleware Registration
		// RayID first so every later log line carries it.
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

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
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
