// Package config provides configuration management for the Inventory Manager.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Log: Logging level and format
//   - Database: SQLite/MySQL connection details for the audit table
//   - Storage: S3/MinIO credentials for receipt and report archiving
//   - Inventory: snapshot, transaction log and receipt paths
//   - Audit: low-stock threshold and audit log location
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
