// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so that relationship exports can be read from,
// and result lists published to, AWS S3 or a self-hosted MinIO instance.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Layout
//
//   - <exports_prefix>/: raw followers/following JSON exports.
//   - <results_prefix>/: published newline-separated result lists.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	data, err := storage.ReadObject(ctx, client, cfg.Storage.Bucket, "exports/followers_1.json")
package storage
