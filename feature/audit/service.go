package audit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"inventory-manager/core/database"
	"inventory-manager/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProductRow is the reader side of the persisted product table contract.
// The auditor never shares memory with the inventory manager; this schema
// (table "productos", columns nombre and stock) is their only coordination
// point, so it is declared independently here.
type ProductRow struct {
	ID     string `gorm:"column:id"`
	Nombre string `gorm:"column:nombre"`
	Stock  int    `gorm:"column:stock"`
}

func (ProductRow) TableName() string {
	return "productos"
}

// requiredColumns are the columns a report query depends on.
var requiredColumns = []string{"nombre", "stock"}

// Service generates low-stock reports from the persisted product table.
// It is read-only with respect to the table.
type Service struct {
	cfg     Config
	db      *gorm.DB
	logger  *zap.Logger
	archive storage.Client // optional report archive
	bucket  string

	now func() time.Time
}

// NewService creates a new audit service. archive may be nil.
func NewService(cfg Config, db *gorm.DB, logger *zap.Logger, archive storage.Client, bucket string) *Service {
	return &Service{
		cfg:     cfg,
		db:      db,
		logger:  logger,
		archive: archive,
		bucket:  bucket,
		now:     time.Now,
	}
}

// WithClock overrides the timestamp source for deterministic reports in tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// ParseThreshold interprets a raw threshold argument. Non-numeric input falls
// back to the configured default instead of aborting; the auditor is a batch
// tool and should always produce a report.
func (s *Service) ParseThreshold(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return s.cfg.Threshold
	}
	threshold, err := strconv.Atoi(raw)
	if err != nil {
		s.logger.Warn("invalid threshold, using default",
			zap.String("input", raw),
			zap.Int("default", s.cfg.Threshold),
		)
		return s.cfg.Threshold
	}
	return threshold
}

// GenerateReport renders a timestamped low-stock report for every product
// with stock at or below the threshold. Rows are ordered by id so the report
// is reproducible for a given table state. Negative stock always matches,
// which surfaces corrupted rows.
func (s *Service) GenerateReport(ctx context.Context, threshold int) (string, error) {
	if s.db == nil {
		return "", fmt.Errorf("no database connection configured")
	}

	missing, err := database.HasColumns(s.db, ProductRow{}.TableName(), requiredColumns)
	if err != nil {
		return "", fmt.Errorf("failed to inspect product table: %w", err)
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("product table is missing columns %v; the schema contract changed", missing)
	}

	var rows []ProductRow
	err = s.db.WithContext(ctx).
		Where("stock <= ?", threshold).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return "", fmt.Errorf("failed to query product table: %w", err)
	}

	var b strings.Builder
	b.WriteString("==============================\n")
	b.WriteString("LOW STOCK ALERT\n")
	fmt.Fprintf(&b, "Timestamp: %s\n", s.now().Format(time.RFC3339))
	fmt.Fprintf(&b, "Threshold: %d\n", threshold)
	b.WriteString("==============================\n")

	if len(rows) == 0 {
		b.WriteString("No low-stock products.\n")
	} else {
		for _, row := range rows {
			fmt.Fprintf(&b, "- %s | stock: %d\n", row.Nombre, row.Stock)
		}
	}
	b.WriteString("\n")
	return b.String(), nil
}

// AppendReport appends a rendered report to the audit log, creating the log
// directory if absent. Prior log content is never rewritten.
func (s *Service) AppendReport(body string) error {
	if err := os.MkdirAll(s.cfg.LogDir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory %q: %w", s.cfg.LogDir, err)
	}

	path := filepath.Join(s.cfg.LogDir, s.cfg.LogFile)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open audit log %q: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(body); err != nil {
		return fmt.Errorf("failed to append to audit log %q: %w", path, err)
	}
	return nil
}

// Run generates a report, appends it to the audit log and optionally archives
// it. It returns the report body for display.
func (s *Service) Run(ctx context.Context, threshold int) (string, error) {
	report, err := s.GenerateReport(ctx, threshold)
	if err != nil {
		return "", err
	}

	if err := s.AppendReport(report); err != nil {
		return "", err
	}

	if s.cfg.ArchiveReports && s.archive != nil {
		objectName := fmt.Sprintf("reports/stock_audit_%d.txt", s.now().Unix())
		if err := storage.Archive(ctx, s.archive, s.bucket, objectName, []byte(report)); err != nil {
			// The appended log entry is authoritative; archiving is best effort.
			s.logger.Warn("failed to archive audit report", zap.String("object", objectName), zap.Error(err))
		}
	}

	s.logger.Info("audit report generated", zap.Int("threshold", threshold))
	return report, nil
}
