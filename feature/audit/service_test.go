package audit_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"inventory-manager/core/database"
	"inventory-manager/feature/audit"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func fixedClock() time.Time {
	return time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
}

func setupAuditDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)

	err = db.Exec(`CREATE TABLE productos (
		id TEXT PRIMARY KEY,
		nombre TEXT NOT NULL,
		precio REAL NOT NULL,
		stock INTEGER NOT NULL
	)`).Error
	assert.NoError(t, err)
	return db
}

func seed(t *testing.T, db *gorm.DB, id, nombre string, stock int) {
	t.Helper()
	err := db.Exec("INSERT INTO productos (id, nombre, precio, stock) VALUES (?, ?, ?, ?)",
		id, nombre, 1.0, stock).Error
	assert.NoError(t, err)
}

func newTestService(t *testing.T, db *gorm.DB) *audit.Service {
	dir := t.TempDir()
	cfg := audit.Config{
		Threshold: audit.DefaultThreshold,
		LogDir:    filepath.Join(dir, "logs"),
		LogFile:   "stock_audit.log",
	}
	return audit.NewService(cfg, db, zap.NewNop(), nil, "").WithClock(fixedClock)
}

func TestGenerateReport(t *testing.T) {
	t.Run("FiltersByThreshold", func(t *testing.T) {
		db := setupAuditDB(t)
		seed(t, db, "1", "A", 2)
		seed(t, db, "2", "B", 8)
		seed(t, db, "3", "C", 5)

		svc := newTestService(t, db)
		report, err := svc.GenerateReport(t.Context(), 5)
		assert.NoError(t, err)

		assert.Contains(t, report, "LOW STOCK ALERT")
		assert.Contains(t, report, "Timestamp: 2026-08-27T12:00:00Z")
		assert.Contains(t, report, "Threshold: 5")
		assert.Contains(t, report, "- A | stock: 2")
		assert.Contains(t, report, "- C | stock: 5")
		assert.NotContains(t, report, "- B |")

		// Ordered by id: A before C.
		assert.Less(t, strings.Index(report, "- A |"), strings.Index(report, "- C |"))
	})

	t.Run("NoMatches", func(t *testing.T) {
		db := setupAuditDB(t)
		seed(t, db, "1", "A", 100)

		svc := newTestService(t, db)
		report, err := svc.GenerateReport(t.Context(), 5)
		assert.NoError(t, err)
		assert.Contains(t, report, "No low-stock products.")
	})

	t.Run("NegativeStockAlwaysFlagged", func(t *testing.T) {
		db := setupAuditDB(t)
		seed(t, db, "1", "Broken", -3)

		svc := newTestService(t, db)
		report, err := svc.GenerateReport(t.Context(), 0)
		assert.NoError(t, err)
		assert.Contains(t, report, "- Broken | stock: -3")
	})

	t.Run("Deterministic", func(t *testing.T) {
		db := setupAuditDB(t)
		seed(t, db, "1", "A", 2)

		svc := newTestService(t, db)
		first, err := svc.GenerateReport(t.Context(), 5)
		assert.NoError(t, err)
		second, err := svc.GenerateReport(t.Context(), 5)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("SchemaDriftDetected", func(t *testing.T) {
		db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
		assert.NoError(t, err)
		err = db.Exec(`CREATE TABLE productos (id TEXT, name TEXT, qty INTEGER)`).Error
		assert.NoError(t, err)

		svc := newTestService(t, db)
		_, err = svc.GenerateReport(t.Context(), 5)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "schema contract")
	})

	t.Run("NoDatabase", func(t *testing.T) {
		svc := newTestService(t, nil)
		_, err := svc.GenerateReport(t.Context(), 5)
		assert.Error(t, err)
	})
}

func TestParseThreshold(t *testing.T) {
	svc := newTestService(t, nil)

	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"Empty", "", 5},
		{"Numeric", "3", 3},
		{"Zero", "0", 0},
		{"NonNumeric", "abc", 5},
		{"Whitespace", "  7 ", 7},
		{"Garbage", "5x", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.ParseThreshold(tt.raw))
		})
	}
}

func TestAppendReport(t *testing.T) {
	dir := t.TempDir()
	cfg := audit.Config{
		Threshold: 5,
		LogDir:    filepath.Join(dir, "logs"),
		LogFile:   "stock_audit.log",
	}
	svc := audit.NewService(cfg, nil, zap.NewNop(), nil, "")

	assert.NoError(t, svc.AppendReport("first report\n"))
	assert.NoError(t, svc.AppendReport("second report\n"))

	data, err := os.ReadFile(filepath.Join(cfg.LogDir, cfg.LogFile))
	assert.NoError(t, err)
	assert.Equal(t, "first report\nsecond report\n", string(data))
}

func TestRun_AppendsGeneratedReport(t *testing.T) {
	db := setupAuditDB(t)
	seed(t, db, "1", "A", 2)

	dir := t.TempDir()
	cfg := audit.Config{
		Threshold: 5,
		LogDir:    filepath.Join(dir, "logs"),
		LogFile:   "stock_audit.log",
	}
	svc := audit.NewService(cfg, db, zap.NewNop(), nil, "").WithClock(fixedClock)

	report, err := svc.Run(t.Context(), 5)
	assert.NoError(t, err)
	assert.Contains(t, report, "- A | stock: 2")

	data, err := os.ReadFile(filepath.Join(cfg.LogDir, cfg.LogFile))
	assert.NoError(t, err)
	assert.Equal(t, report, string(data))
}
