// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small interface so the leads feature
// can archive the raw bytes of every processed upload without caring whether
// the backend is AWS S3 or a self-hosted MinIO instance. Archiving is a
// best-effort audit trail: a storage outage never fails an import.
//
// # Client Interface
//
// The Client interface abstracts the underlying provider, making storage
// interactions easy to mock in unit tests (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: verifies access to the archive bucket.
//   - MakeBucket: creates the bucket on first use.
//   - PutObject: stores an uploaded file.
//   - GetObject: retrieves an archived file as a stream.
//   - ListObjects: lists archived files (supports prefix/recursive).
//   - RemoveObject: deletes an archived file.
package storage
