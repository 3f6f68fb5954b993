// Package storage wraps the MinIO Go client for the backend's character images.
//
// The Client interface covers bucket checks, uploads, metadata lookups and
// streaming downloads, and is mocked in core/storage/mocks. It works against
// both AWS S3 and self-hosted MinIO.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
//	    return err
//	}
package storage
