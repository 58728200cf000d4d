package diversity

import "github.com/gfuzz-project/gfuzz/internal/gfuzz/config"

// History is the state-history ring buffer of spec.md §4.5: fixed
// capacity HISTORY_SIZE, plus running [min, max] coverage bounds seeded
// from config and updated on every admission.
type History struct {
	entries  []Snapshot
	head     int
	count    int
	min, max float64
	bounded  bool
}

// NewHistory allocates a History with capacity cfg.HistorySize. The
// running coverage bounds start at cfg.MinCoverage/MaxCoverage (the
// placeholder values reported while the history is empty — Evaluate's
// empty-history special case never reads them) and are replaced by the
// first admitted snapshot's own ratio, then widened by every admission
// after that.
func NewHistory(cfg config.Config) *History {
	return &History{
		entries: make([]Snapshot, cfg.HistorySize),
		min:     cfg.MinCoverage,
		max:     cfg.MaxCoverage,
	}
}

// Count returns the number of snapshots currently held, capped at capacity.
func (h *History) Count() int {
	return h.count
}

// Capacity returns HISTORY_SIZE.
func (h *History) Capacity() int {
	return len(h.entries)
}

// At returns the i'th admitted snapshot, 0 <= i < Count(). Order is
// insertion order only while below capacity; once full it is whatever
// order the ring happens to hold, which Evaluate does not depend on.
func (h *History) At(i int) Snapshot {
	return h.entries[i]
}

// Bounds returns the running [min, max] coverage-ratio bounds.
func (h *History) Bounds() (min, max float64) {
	return h.min, h.max
}

// Admit unconditionally inserts s into the ring buffer (spec.md §4.5
// admission policy: append while below capacity, else overwrite slot
// head and advance it modulo capacity) and updates the running coverage
// bounds with s's ratio: the first admission sets min = max = ratio
// exactly (so a single admitted snapshot collapses the bounds to one
// point, per spec.md §8 scenario 2); later admissions only ever widen
// them. Callers decide whether to admit based on
// DiversityAdmitThreshold; History itself enforces no threshold.
func (h *History) Admit(s Snapshot) {
	if h.count < len(h.entries) {
		h.entries[h.count] = s
		h.count++
	} else {
		h.entries[h.head] = s
		h.head = (h.head + 1) % len(h.entries)
	}
	ratio := s.Ratio()
	if !h.bounded {
		h.min, h.max = ratio, ratio
		h.bounded = true
		return
	}
	if ratio < h.min {
		h.min = ratio
	}
	if ratio > h.max {
		h.max = ratio
	}
}
