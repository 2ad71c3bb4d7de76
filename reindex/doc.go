// Package reindex re-runs layout detection and structure assembly over
// every persisted document, refreshing stored structures after detector
// upgrades or threshold changes.
//
// The package supports progress tracking and retry logic with
// exponential backoff; documents whose source files have gone missing
// are skipped and counted rather than failing the run.
package reindex
