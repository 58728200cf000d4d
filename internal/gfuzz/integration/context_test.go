package integration

import (
	"testing"

	"github.com/gfuzz-project/gfuzz/internal/gfuzz/config"
	"github.com/gfuzz-project/gfuzz/internal/gfuzz/runtime"
	"go.uber.org/mock/gomock"
)

// TestNilContext_IsNeutral is the nil-context law of spec.md §8: every
// operation on a nil *Context must behave like the subsystem is absent.
func TestNilContext_IsNeutral(t *testing.T) {
	var c *Context

	if err := c.Teardown(); err != nil {
		t.Errorf("Teardown on nil Context returned %v, want nil", err)
	}
	q := c.OnNewQueueEntry()
	if q == nil {
		t.Fatal("OnNewQueueEntry on nil Context returned nil, want a usable entry")
	}
	c.PostExec(q) // must not panic; q stays uncaptured
	if q.Captured {
		t.Error("PostExec on nil Context should leave q uncaptured")
	}
	if got := c.Score(q, 0.7); got != 0.7 {
		t.Errorf("Score on nil Context = %v, want pass-through 0.7", got)
	}
	if got := c.Energy(q); got != 1.0 {
		t.Errorf("Energy on nil Context = %v, want 1.0", got)
	}
	c.ReportGains(0.1, 0.2) // must not panic
}

// TestNeutralityWhenDisabled_UnattachedContext is the
// neutrality-when-disabled law of spec.md §8: an Init'd Context with no
// attached state map behaves the same as a nil one for scoring purposes.
func TestNeutralityWhenDisabled_UnattachedContext(t *testing.T) {
	cfg := config.Default()
	c := Init(cfg, nil, cfg.MaxKeyVars)
	if c.Attached() {
		t.Fatal("Context with nil state map reports Attached() == true")
	}

	q := c.OnNewQueueEntry()
	c.PostExec(q)
	if q.Captured {
		t.Error("PostExec with unattached state map should leave q uncaptured")
	}
	if got := c.Score(q, 0.42); got != 0.42 {
		t.Errorf("Score = %v, want pass-through 0.42", got)
	}
	if got := c.Energy(q); got != 1.0 {
		t.Errorf("Energy = %v, want neutral 1.0", got)
	}
}

// TestPostExec_CapturesAndScoresAttachedMap exercises the full capture
// path against a mocked StateMap (go.uber.org/mock), grounded on the
// teacher's mockgen-generated Specification mock idiom.
func TestPostExec_CapturesAndScoresAttachedMap(t *testing.T) {
	ctrl := gomock.NewController(t)
	states := runtime.NewMockStateMap(ctrl)
	states.EXPECT().Len().Return(4).AnyTimes()
	states.EXPECT().Snapshot(gomock.Any()).DoAndReturn(func(dst []uint32) int {
		copy(dst, []uint32{1, 0, 2, 0})
		return 4
	}).AnyTimes()

	cfg := config.Default()
	c := Init(cfg, states, 4)
	if !c.Attached() {
		t.Fatal("Context with a non-nil state map should report Attached()")
	}

	q := c.OnNewQueueEntry()
	c.PostExec(q)
	if !q.Captured {
		t.Fatal("PostExec should capture with an attached state map")
	}
	if q.Snapshot.ValidCount != 2 {
		t.Errorf("ValidCount = %d, want 2", q.Snapshot.ValidCount)
	}
	// First PostExec ever: history is empty, so diversity is 1.0 by fiat.
	if q.Diversity != 1.0 {
		t.Errorf("Diversity = %v, want 1.0 for first capture", q.Diversity)
	}
	if got := c.Score(q, 0.5); got == 0.5 {
		t.Error("Score with a captured snapshot should differ from the bare traditional pass-through")
	}
}
