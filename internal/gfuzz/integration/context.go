// Package integration implements C7, the fuzzer integration surface:
// the operations a host fuzzer calls around each execution (spec.md
// §4.7). Every method is valid on a nil *Context and on a nil
// *QueueEntry, short-circuiting to identity/no-op behavior — this is
// the "neutrality-when-disabled" and "nil-context" laws of spec.md §8,
// so a host that never attaches the subsystem pays no more than a few
// nil checks per execution.
package integration

import (
	"fmt"

	"github.com/gfuzz-project/gfuzz/internal/gfuzz/config"
	"github.com/gfuzz-project/gfuzz/internal/gfuzz/diversity"
	"github.com/gfuzz-project/gfuzz/internal/gfuzz/runtime"
	"github.com/gfuzz-project/gfuzz/internal/gfuzz/scheduler"
)

// Context is the per-session state: the attached state map, the state
// history, and the adaptive weights. A nil *Context behaves as the
// disabled subsystem (spec.md §4.7: "if not attachable, continue in
// degraded mode").
type Context struct {
	cfg        config.Config
	states     runtime.StateMap
	numKeyVars int
	history    *diversity.History
	weights    *scheduler.Weights
}

// Init constructs a Context attached to states (spec.md §4.7
// init(num_key_vars)); numKeyVars is the snapshot's TotalVars for every
// subsequent coverage-ratio computation. A nil states argument is
// accepted and produces a Context that behaves exactly like a disabled
// one — this is the "not attachable -> degraded mode" path, modeled as
// a regular (non-nil) *Context so callers always have a Context to call
// methods on, while PostExec detects the nil map and no-ops.
func Init(cfg config.Config, states runtime.StateMap, numKeyVars int) *Context {
	return &Context{
		cfg:        cfg,
		states:     states,
		numKeyVars: numKeyVars,
		history:    diversity.NewHistory(cfg),
		weights:    scheduler.NewWeights(cfg),
	}
}

// Attached reports whether a live state map is available.
func (c *Context) Attached() bool {
	return c != nil && c.states != nil
}

// Teardown releases the attached state map (spec.md §4.7 teardown).
func (c *Context) Teardown() error {
	if c == nil || c.states == nil {
		return nil
	}
	if err := c.states.Close(); err != nil {
		return fmt.Errorf("integration: teardown: %w", err)
	}
	return nil
}

// OnNewQueueEntry allocates a per-seed sidecar for q (spec.md §4.7).
// Safe to call on a nil Context: it returns a usable, inert QueueEntry.
func (c *Context) OnNewQueueEntry() *QueueEntry {
	return &QueueEntry{}
}

// PostExec captures the attached state map into q's snapshot, evaluates
// diversity against the session history, and conditionally admits the
// snapshot (spec.md §4.7). A nil Context, nil QueueEntry, or unattached
// state map makes this a no-op, leaving q uncaptured.
func (c *Context) PostExec(q *QueueEntry) {
	if c == nil || q == nil || c.states == nil {
		return
	}
	dst := make([]uint32, c.states.Len())
	c.states.Snapshot(dst)
	snap := diversity.NewSnapshot(dst, c.numKeyVars)

	result := diversity.Evaluate(snap, c.history, c.cfg)
	q.Snapshot = snap
	q.Captured = true
	q.Diversity = result.Diversity

	if result.Diversity > diversity.DiversityAdmitThreshold {
		c.history.Admit(snap)
	}
}

// Score returns the combined score for q against traditional (spec.md
// §4.7 score(q, traditional)). With a nil Context, or a q that never
// captured a snapshot, this degrades to the identity: the subsystem
// contributes nothing, so the traditional score passes through
// unchanged (spec.md §8 neutrality-when-disabled law).
func (c *Context) Score(q *QueueEntry, traditional float64) float64 {
	if c == nil || q == nil || !q.Captured {
		return traditional
	}
	return scheduler.Score(c.weights, traditional, q.Diversity)
}

// Energy returns the energy multiplier for q (spec.md §4.7 energy(q)).
// A nil Context or an uncaptured q yields the neutral multiplier 1.0.
func (c *Context) Energy(q *QueueEntry) float64 {
	if c == nil || q == nil || !q.Captured {
		return 1.0
	}
	return scheduler.Energy(c.cfg, q.Diversity)
}

// ReportGains forwards a periodic gain report to the adaptive weights
// (spec.md §4.7 report-gains(Δcov, Δstate)). A no-op on a nil Context.
func (c *Context) ReportGains(deltaCov, deltaState float64) {
	if c == nil {
		return
	}
	c.weights.ReportGains(deltaCov, deltaState)
}
