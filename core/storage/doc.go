// Package storage provides the object-storage client used for archiving.
//
// Receipts and audit reports are plain text artifacts written to the local
// filesystem first; when archiving is enabled they are additionally uploaded
// to an S3-compatible bucket (MinIO) for retention. The local copy is always
// authoritative, so archive failures are logged and never fail the operation
// that produced the artifact.
//
// # Client Interface
//
// The Client interface wraps the subset of the MinIO API the application uses
// (bucket checks and object put/get), which keeps services testable through
// the mocks subpackage.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err != nil {
//	    return err
//	}
//	err = storage.Archive(ctx, client, cfg.Storage.Bucket, "receipts/receipt_x.txt", body)
package storage
