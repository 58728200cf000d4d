package scheduler

import "github.com/gfuzz-project/gfuzz/internal/gfuzz/config"

// Score computes the combined score s = w_t*traditional + w_s*state,
// spec.md §4.6.
func Score(w *Weights, traditional, stateDiversity float64) float64 {
	return w.Traditional()*traditional + w.State()*stateDiversity
}

// Energy computes the energy multiplier m = 1 + gamma*diversity
// (spec.md §4.6). A seed without a captured snapshot should be scored
// with diversity 0, which naturally yields m = 1 — that decision
// belongs to the caller (internal/gfuzz/integration), not here.
func Energy(cfg config.Config, diversity float64) float64 {
	return 1 + cfg.EnergyCoeff*diversity
}
