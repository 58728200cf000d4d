package diversity

import "github.com/gfuzz-project/gfuzz/internal/gfuzz/config"

// Evaluate computes the diversity Result for current against h, per
// spec.md §4.5. An empty history returns the special case: diversity
// 1.0 (the first seed is maximally diverse by fiat); similarity and
// coverage are also reported as 1.0 since neither component has a
// meaningful value yet and both otherwise default to the "fully novel"
// reading. Otherwise the weighted combination is clamped to [0, 1]: the
// string branch of the per-variable similarity can exceed 1, so the
// reported Similarity component is not bounded above.
func Evaluate(current Snapshot, h *History, cfg config.Config) Result {
	if h.Count() == 0 {
		return Result{Diversity: 1.0, Similarity: 1.0, Coverage: 1.0}
	}

	var sum float64
	var comparisons int
	for i, v := range current.States {
		if v == 0 {
			continue
		}
		for e := 0; e < h.Count(); e++ {
			entry := h.At(e)
			var hv uint32
			if i < len(entry.States) {
				hv = entry.States[i]
			}
			sum += similarity(v, hv, cfg)
			comparisons++
		}
	}
	sim := 0.0
	if comparisons > 0 {
		sim = sum / float64(comparisons)
	}

	ratio := current.Ratio()
	min, max := h.Bounds()
	coverage := clamp01((ratio - min) / (max - min + epsilon))

	diversity := clamp01(cfg.WeightSimilarity*sim + cfg.WeightCoverage*coverage)
	return Result{Diversity: diversity, Similarity: sim, Coverage: coverage}
}
