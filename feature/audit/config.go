package audit

// DefaultThreshold is the stock level used when no threshold is supplied or
// the supplied value is not numeric.
const DefaultThreshold = 5

// Config holds configuration for the audit feature.
type Config struct {
	// Threshold is the default low-stock threshold.
	Threshold int `mapstructure:"threshold" default:"5"`
	// LogDir is the directory the audit log is written to.
	LogDir string `mapstructure:"log_dir" default:"logs"`
	// LogFile is the audit log file name inside LogDir.
	LogFile string `mapstructure:"log_file" default:"stock_audit.log"`
	// ArchiveReports uploads reports to object storage when storage is enabled.
	ArchiveReports bool `mapstructure:"archive_reports" default:"false"`
}
