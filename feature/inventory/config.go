package inventory

// DefaultAlertThreshold is the stock level at or below which a product shows
// up in the low-stock alerts when no threshold is supplied.
const DefaultAlertThreshold = 5

// Config holds configuration for the inventory feature.
type Config struct {
	// SnapshotPath is the JSON file holding the full product collection.
	SnapshotPath string `mapstructure:"snapshot_path" default:"data/inventory.json"`
	// TransactionsPath is the append-only transaction log.
	TransactionsPath string `mapstructure:"transactions_path" default:"data/transactions.log"`
	// ReceiptsDir is the directory receipt files are written to.
	ReceiptsDir string `mapstructure:"receipts_dir" default:"receipts"`
	// ArchiveReceipts uploads receipts to object storage when storage is enabled.
	ArchiveReceipts bool `mapstructure:"archive_receipts" default:"false"`
}
