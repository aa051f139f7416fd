// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so the catalog can read its name index from an
// S3-compatible bucket. Only read operations are exposed.
//
// # Client Interface
//
// The Client interface abstracts the underlying provider, making it easy to mock
// storage interactions in unit tests (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - GetObject: Retrieves content as a stream.
//   - StatObject: Reads object metadata (size, ETag) without downloading it.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
