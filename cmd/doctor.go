package cmd

import (
	"context"
	"log"
	"time"

	"menu-builder/core/config"
	"menu-builder/core/database"
	"menu-builder/core/logger"
	"menu-builder/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// doctorCmd checks the service's external dependencies.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check database and storage connectivity",
	Long:  `Verifies the database connection, the menu tables and the media bucket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		healthy := true

		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Error("Database unreachable", zap.Error(err))
			healthy = false
		} else {
			logg.Info("Database reachable", zap.String("name", cfg.Database.Name))
			for _, table := range []string{"restaurants", "categories", "dishes"} {
				if !database.HasTable(db, table) {
					logg.Warn("Table missing, run migrate", zap.String("table", table))
					healthy = false
					continue
				}
				cols, err := database.GetTableColumns(db, table)
				if err != nil {
					logg.Error("Column inspection failed", zap.String("table", table), zap.Error(err))
					healthy = false
					continue
				}
				logg.Info("Table present",
					zap.String("table", table),
					zap.Int("columns", len(cols)),
				)
			}
		}

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Error("Storage client creation failed", zap.Error(err))
			healthy = false
		} else {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			exists, err := store.BucketExists(ctx, cfg.Storage.Bucket)
			switch {
			case err != nil:
				logg.Error("Storage unreachable", zap.Error(err))
				healthy = false
			case !exists:
				logg.Warn("Media bucket missing, it is created on start",
					zap.String("bucket", cfg.Storage.Bucket))
			default:
				logg.Info("Media bucket present", zap.String("bucket", cfg.Storage.Bucket))
			}
		}

		if !healthy {
			logg.Warn("Doctor found problems")
		} else {
			logg.Info("All checks passed")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(doctorCmd)
}
