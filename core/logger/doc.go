// Package logger provides the structured logging facility, based on Zap.
//
// Import runs are long, chatty operations, so the logger is configured once
// at startup and handed down into services and the import pipeline. Row-level
// detail goes to Debug, run summaries to Info, and degraded-but-continuing
// paths (unresolved company references, failed archive uploads) to Warn.
//
// # Request correlation
//
// WithRayID attaches the per-request RayID set by the rayid middleware to a
// logger, so every log line produced while serving an upload can be tied back
// to the request that triggered it.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
package logger
