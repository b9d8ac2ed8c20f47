package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stevetowers08/leadflow-sub006/core/config"
	"github.com/stevetowers08/leadflow-sub006/core/database"
	"github.com/stevetowers08/leadflow-sub006/core/identity"
	"github.com/stevetowers08/leadflow-sub006/core/logger"
	"github.com/stevetowers08/leadflow-sub006/core/storage"
	"github.com/stevetowers08/leadflow-sub006/feature/leads"
	"github.com/stevetowers08/leadflow-sub006/feature/leads/importer"
	"github.com/stevetowers08/leadflow-sub006/feature/leads/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the import command
	mappingFile    string
	batchSize      int
	keepDuplicates bool
	importActor    string
	archiveUpload  bool
)

// importCmd runs one import directly against the configured database,
// bypassing the HTTP surface. Useful for backfills and cron-driven ingestion.
var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import leads from a delimited-text file",
	Long: `Import leads from a .csv export without going through the HTTP API.

The file is validated, deduplicated and committed in batches exactly like an
uploaded file. The full per-row report is printed as JSON on stdout.

Examples:
  # Import with defaults
  leadflow import leads.csv

  # Custom column mapping and owner
  leadflow import leads.csv --mapping mapping.json --actor user-42

  # Import everything, duplicates included, in batches of 200
  leadflow import leads.csv --keep-duplicates --batch-size 200`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&mappingFile, "mapping", "", "JSON file with custom column mapping rules")
	importCmd.Flags().IntVar(&batchSize, "batch-size", importer.DefaultBatchSize, "Number of leads committed per batch")
	importCmd.Flags().BoolVar(&keepDuplicates, "keep-duplicates", false, "Import rows even when a matching lead already exists")
	importCmd.Flags().StringVar(&importActor, "actor", "", "Actor recorded as owner of created records (default: server.actor_id config)")
	importCmd.Flags().BoolVar(&archiveUpload, "archive", false, "Archive the file in object storage after the run")

	RootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&models.Lead{}, &models.Company{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	var client storage.Client
	if archiveUpload {
		if !cfg.Storage.Enabled {
			return fmt.Errorf("--archive requires storage to be configured and enabled")
		}
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
	}

	opts := importer.Options{
		BatchSize:      batchSize,
		KeepDuplicates: keepDuplicates,
		OnProgress: func(processed, total int) {
			if processed%500 == 0 || processed == total {
				l.Info("Import progress", zap.Int("processed", processed), zap.Int("total", total))
			}
		},
	}

	if mappingFile != "" {
		raw, err := os.ReadFile(mappingFile)
		if err != nil {
			return fmt.Errorf("failed to read mapping file: %w", err)
		}
		var table importer.Table
		if err := json.Unmarshal(raw, &table); err != nil {
			return fmt.Errorf("failed to parse mapping file: %w", err)
		}
		opts.Table = table
	}

	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	actor := importActor
	if actor == "" {
		actor = cfg.Server.ActorID
	}

	svc := leads.NewService(leads.NewStore(db), identity.Static(actor), client, cfg.Storage.Bucket, l)

	result, err := svc.Import(ctx, filepath.Base(path), content, opts)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(out))

	if !result.Success {
		return fmt.Errorf("import finished with failures: %s", result.Summary)
	}
	return nil
}
