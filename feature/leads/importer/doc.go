// Package importer implements the bulk lead import pipeline.
//
// A run takes raw delimited-text bytes and drives each data row through four
// stages, strictly in order:
//
//  1. mapping: column values are matched to lead fields through a mapping
//     table and validated (see Table, DefaultTable)
//  2. company resolution: a named company is looked up case-insensitively or
//     created, memoized per run
//  3. duplicate filtering: email first, then name + company as a fallback key
//  4. batch commit: accepted leads are written in fixed-size batches; a
//     failed batch marks only its own rows as errors and later batches
//     still run
//
// The stage order is load-bearing: duplicate filtering compares against the
// resolved company id, so resolution must have happened first.
//
// Run is total. It never returns an error; admission failures, malformed
// input, per-row panics and store rejections all end up as entries in the
// returned Result, keyed by 1-based source row number (row 0 for run-level
// failures).
package importer
