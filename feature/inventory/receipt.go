package inventory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"inventory-manager/core/storage"
	"inventory-manager/feature/inventory/models"

	"go.uber.org/zap"
)

// GenerateReceipt renders a deterministic, human-readable summary of a
// transaction. It is a pure function of its input.
func GenerateReceipt(tx models.Transaction) string {
	kind := "SALES RECEIPT"
	if !tx.IsSale() {
		kind = "RESTOCK RECEIPT"
	}

	var b strings.Builder
	b.WriteString("==============================\n")
	fmt.Fprintf(&b, "     %s\n", kind)
	b.WriteString("==============================\n")
	fmt.Fprintf(&b, "Date        : %s\n", tx.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(&b, "Product ID  : %s\n", tx.ProductID)
	fmt.Fprintf(&b, "Name        : %s\n", tx.ProductName)
	fmt.Fprintf(&b, "Quantity    : %d\n", tx.Quantity())
	fmt.Fprintf(&b, "Unit Price  : %.2f\n", tx.UnitPrice)
	b.WriteString("------------------------------\n")
	fmt.Fprintf(&b, "TOTAL       : %.2f\n", tx.Total)
	b.WriteString("==============================\n")
	b.WriteString("Thank you for your purchase.\n")
	return b.String()
}

// writeReceipt renders the transaction receipt to a uniquely named file under
// the receipts directory and optionally archives it to object storage.
func (s *Service) writeReceipt(ctx context.Context, tx models.Transaction) (string, error) {
	if err := os.MkdirAll(s.cfg.ReceiptsDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create receipts directory: %w", err)
	}

	name := fmt.Sprintf("receipt_%s_%s.txt", tx.Timestamp.Format("20060102_150405"), tx.ID)
	path := filepath.Join(s.cfg.ReceiptsDir, name)

	body := GenerateReceipt(tx)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return "", fmt.Errorf("failed to write receipt %q: %w", path, err)
	}

	if s.cfg.ArchiveReceipts && s.archive != nil {
		objectName := "receipts/" + name
		if err := storage.Archive(ctx, s.archive, s.bucket, objectName, []byte(body)); err != nil {
			// Local copy is authoritative; archiving is best effort.
			s.logger.Warn("failed to archive receipt", zap.String("object", objectName), zap.Error(err))
		}
	}

	return path, nil
}
