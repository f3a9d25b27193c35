package config_test

import (
	"testing"

	"inventory-manager/core/config"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "data/inventory.db", cfg.Database.Name)
	assert.Equal(t, "data/inventory.json", cfg.Inventory.SnapshotPath)
	assert.Equal(t, "receipts", cfg.Inventory.ReceiptsDir)
	assert.Equal(t, 5, cfg.Audit.Threshold)
	assert.Equal(t, "logs", cfg.Audit.LogDir)
	assert.Equal(t, "stock_audit.log", cfg.Audit.LogFile)
	assert.False(t, cfg.Storage.Enabled)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("AUDIT_THRESHOLD", "10")
	t.Setenv("DATABASE_DRIVER", "mysql")

	cfg, err := config.LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Audit.Threshold)
	assert.Equal(t, "mysql", cfg.Database.Driver)
}
