package integration

import "github.com/gfuzz-project/gfuzz/internal/gfuzz/diversity"

// QueueEntry is the per-seed sidecar spec.md §4.7 attaches to a corpus
// entry: the captured snapshot, whether capture happened, and the
// cached diversity score computed at capture time.
type QueueEntry struct {
	Snapshot  diversity.Snapshot
	Captured  bool
	Diversity float64
}
