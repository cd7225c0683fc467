// Package storage archives finished tournament snapshots to an
// S3-compatible bucket. Archival is write-only and best-effort: the
// in-process tournament state never depends on it.
package storage

import "context"

// SnapshotArchiver stores the final JSON snapshot of a tournament and
// returns its public URL.
type SnapshotArchiver interface {
	ArchiveSnapshot(ctx context.Context, tournamentID string, snapshot []byte) (string, error)

	RemoveSnapshot(ctx context.Context, tournamentID string) error
}
