package cmd

import (
	"errors"
	"fmt"

	"inventory-manager/core/config"
	"inventory-manager/core/database"
	"inventory-manager/core/logger"
	"inventory-manager/core/storage"
	"inventory-manager/feature/inventory"
	"inventory-manager/feature/inventory/snapshot"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// bootstrap loads the configuration and builds the application logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logg, nil
}

// optionalDatabase connects to the configured database, logging a warning
// instead of failing when the connection cannot be established. The snapshot
// remains authoritative; the database only feeds the auditor.
func optionalDatabase(cfg *config.Config, logg *zap.Logger) *gorm.DB {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
		return nil
	}
	return db
}

// optionalStorage creates the archive storage client when archiving is enabled.
func optionalStorage(cfg *config.Config, logg *zap.Logger) storage.Client {
	if !cfg.Storage.Enabled {
		return nil
	}
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logg.Warn("Optional storage client creation failed", zap.Error(err))
		return nil
	}
	return client
}

// loadInventory builds the inventory service and loads the persisted
// snapshot. A corrupt snapshot is reported and the service starts empty; the
// damaged file stays on disk untouched until the next save.
func loadInventory(cfg *config.Config, logg *zap.Logger, db *gorm.DB, archive storage.Client) (*inventory.Service, error) {
	store := snapshot.NewStore(cfg.Inventory.SnapshotPath, cfg.Inventory.TransactionsPath)
	svc := inventory.NewService(cfg.Inventory, store, logg, db, archive, cfg.Storage.Bucket)

	if err := svc.Load(); err != nil {
		var cerr *snapshot.CorruptStateError
		if errors.As(err, &cerr) {
			logg.Warn("Inventory snapshot is corrupt, starting empty", zap.Error(err))
			svc.StartEmpty()
			return svc, nil
		}
		return nil, err
	}
	return svc, nil
}
