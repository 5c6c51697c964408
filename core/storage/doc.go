// Package storage provides the object storage used to archive run reports.
//
// It wraps the MinIO Go client, which supports both AWS S3 and self-hosted
// MinIO instances. The archive is write-only history: reports are uploaded
// after a run and never read back by the reconciler.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easy to mock storage interactions in unit tests (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.Upload(ctx, client, cfg.Storage.Bucket, "reports/run.json", "application/json", data)
package storage
