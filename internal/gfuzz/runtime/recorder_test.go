package runtime

import "testing"

func newTestRecorder(t *testing.T, enabled bool) *Recorder {
	t.Helper()
	states, _, err := NewSharedStateMap(16, 0)
	if err != nil {
		t.Fatalf("NewSharedStateMap: %v", err)
	}
	t.Cleanup(func() { _ = states.Close() })
	return NewRecorder(states, 256, enabled)
}

func TestRecorder_DisabledIsNoOp(t *testing.T) {
	r := newTestRecorder(t, false)
	r.RecordNumeric(0, 42)
	dst := make([]uint32, 16)
	r.Snapshot(dst)
	for i, v := range dst {
		if v != 0 {
			t.Errorf("slot %d = %d, want 0 (disabled recorder is a no-op)", i, v)
		}
	}
}

func TestRecorder_OutOfRangeVarIDDropped(t *testing.T) {
	r := newTestRecorder(t, true)
	r.RecordNumeric(1000, 42) // Len is 16, so this is out of range.
	dst := make([]uint32, 16)
	r.Snapshot(dst)
	for i, v := range dst {
		if v != 0 {
			t.Errorf("slot %d = %d, want 0 (out-of-range write dropped)", i, v)
		}
	}
}

func TestRecorder_ResetZeroesMap(t *testing.T) {
	r := newTestRecorder(t, true)
	r.RecordNumeric(3, 99)
	r.Reset()
	dst := make([]uint32, 16)
	r.Snapshot(dst)
	for i, v := range dst {
		if v != 0 {
			t.Errorf("slot %d = %d after Reset, want 0", i, v)
		}
	}
}

func TestRecorder_NilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	if r.Enabled() {
		t.Error("nil Recorder should report Enabled() == false")
	}
	r.RecordNumeric(0, 1) // must not panic
	r.Reset()              // must not panic
	if got := r.Snapshot(make([]uint32, 4)); got != 0 {
		t.Errorf("nil Recorder Snapshot = %d, want 0", got)
	}
	if err := r.Close(); err != nil {
		t.Errorf("nil Recorder Close returned %v, want nil", err)
	}
}

func TestRecorder_RecordStringNilDropped(t *testing.T) {
	r := newTestRecorder(t, true)
	r.RecordString(0, nil)
	if got := r.Get(0); got != 0 {
		t.Errorf("RecordString(nil) wrote %d, want 0 (dropped)", got)
	}
}

func (r *Recorder) Get(id uint32) uint32 {
	dst := make([]uint32, r.Len())
	r.Snapshot(dst)
	if int(id) >= len(dst) {
		return 0
	}
	return dst[id]
}
