package runtime

import "testing"

// TestEncodeString_AB is end-to-end scenario 5 from spec.md §8: DJB2 of
// "ab" seeded at 5381 with length 2 in the top byte.
func TestEncodeString_AB(t *testing.T) {
	// DJB2 over "ab" seeded at 5381: h1 = 5381*33+'a' = 177670,
	// h2 = 177670*33+'b' = 5863208 = 0x597728. Stored word packs the
	// low-24-bit hash with the 2-byte length in the top byte.
	got := EncodeString([]byte("ab"), 256)
	want := uint32(0x02_597728)
	if got != want {
		t.Errorf("EncodeString(\"ab\") = 0x%08X, want 0x%08X", got, want)
	}
}

// TestEncodeString_EmptyIsSeedHash is the zero-length-string boundary case
// from spec.md §8: the stored word is 0x00001505 (nonzero) but length is 0,
// which the diversity evaluator's classifier treats as "not a string"
// (strings require length >= 1), so it is compared as numeric. Here we
// only check the recorder's own encoding, not the classifier.
func TestEncodeString_EmptyIsSeedHash(t *testing.T) {
	// The DJB2 seed alone (no characters walked), length 0 in the top
	// byte: (5381 & 0xFFFFFF) | (0 << 24) = 0x00001505.
	got := EncodeString(nil, 256)
	want := uint32(0x00001505)
	if got != want {
		t.Errorf("EncodeString(\"\") = 0x%08X, want 0x%08X", got, want)
	}
}

func TestEncodeChar_TwoRecordingsLastWriteWins(t *testing.T) {
	states := make([]uint32, 8)
	r := NewRecorder(&sliceStateMap{slots: states}, 256, true)
	r.RecordChar(7, 'A')
	r.RecordChar(7, 'B')
	if got := states[7]; got != 0x01000042 {
		t.Errorf("slot 7 = 0x%08X, want 0x01000042 (last write wins)", got)
	}
}

func TestEncodeNumeric_Unchanged(t *testing.T) {
	if got := EncodeNumeric(42); got != 42 {
		t.Errorf("EncodeNumeric(42) = %d, want 42", got)
	}
}

func TestEncodePointer_TruncatesToLow32(t *testing.T) {
	got := EncodePointer(0x00000001_DEADBEEF)
	if got != 0xDEADBEEF {
		t.Errorf("EncodePointer = 0x%08X, want 0xDEADBEEF", got)
	}
}

func TestEncodeString_ClampsLengthTo255(t *testing.T) {
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'x'
	}
	got := EncodeString(long, 256)
	length := (got >> 24) & 0xFF
	if length != 255 {
		t.Errorf("length byte = %d, want 255 (clamped)", length)
	}
}
