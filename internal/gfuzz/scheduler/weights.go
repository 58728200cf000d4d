// Package scheduler implements C6, the adaptive scheduling controller:
// a two-weight convex combination of traditional and state-diversity
// feedback, updated by periodic relative-gain reports from the host
// fuzzer (spec.md §4.6).
package scheduler

import (
	"sync"

	"github.com/gfuzz-project/gfuzz/internal/gfuzz/config"
)

const (
	minWeight = 0.1
	maxWeight = 0.9
)

// Weights holds the two adaptive weights and the learning rate, guarded
// by a mutex since report-gains may race per-seed score/energy reads in
// a host that deviates from the single-writer assumption of spec.md §5.
// Grounded on the teacher's issuesCollector: a small mutex-guarded
// struct with Lock/Unlock confined to each method body, no exported
// lock.
type Weights struct {
	mu           sync.RWMutex
	traditional  float64
	state        float64
	learningRate float64
}

// NewWeights constructs a Weights from cfg's initial values and learning rate.
func NewWeights(cfg config.Config) *Weights {
	return &Weights{
		traditional:  cfg.InitWeightTraditional,
		state:        cfg.InitWeightState,
		learningRate: cfg.LearningRate,
	}
}

// Traditional and State return the current weight values.
func (w *Weights) Traditional() float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.traditional
}

func (w *Weights) State() float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state
}

// ReportGains applies the weight-update rule of spec.md §4.6 given the
// relative coverage and state-history gains observed over the last
// reporting interval. Gains are the caller's responsibility to compute
// as (new - old) / max(old, 1) (spec.md §9 Design Notes resolve "gain
// semantics left to the host" this way, with the max(old,1) guard
// against dividing by an empty corpus).
//
// The update is deliberately computed in the source's own redundant
// shape rather than simplified algebraically: both weights are nudged
// independently by opposite signs of the same delta, summed and
// renormalized, then w_t is clamped and w_s is re-derived as 1 - w_t.
// This mirrors spec.md §4.6 step for step so numerical drift across many
// calls is bounded the same way the original is, rather than by an
// equivalent but differently-rounded formula.
func (w *Weights) ReportGains(deltaCov, deltaState float64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	delta := deltaCov - deltaState
	rawTraditional := w.traditional + w.learningRate*delta
	rawState := w.state + w.learningRate*(deltaState-deltaCov)

	sum := rawTraditional + rawState
	if sum > 0 {
		rawTraditional /= sum
		rawState /= sum
	}

	clamped := rawTraditional
	if clamped < minWeight {
		clamped = minWeight
	}
	if clamped > maxWeight {
		clamped = maxWeight
	}

	w.traditional = clamped
	w.state = 1 - clamped
}
