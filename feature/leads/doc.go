// Package leads exposes bulk lead import over HTTP.
//
// The feature accepts a delimited-text upload, runs it through the importer
// pipeline against the application database, optionally archives the raw
// file in object storage, and returns a per-row accounting of what was
// created, skipped and rejected.
package leads
