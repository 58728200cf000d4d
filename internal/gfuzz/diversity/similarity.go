package diversity

import (
	"math"
	"math/bits"

	"github.com/gfuzz-project/gfuzz/internal/gfuzz/config"
)

// charMarker is the tag byte (byte 3, the top byte) record-char writes
// (spec.md §4.4: slot <- v | 0x01000000).
const charMarker = 0x01

// hammingAsLevenshteinProxy computes the Hamming distance (popcount of
// XOR) between two 24-bit string hashes. This stands in for a true
// Levenshtein edit distance, which would require the original string
// bytes — something a single 32-bit slot cannot hold. Kept and labeled
// per spec.md §9 Design Notes rather than implemented "correctly".
func hammingAsLevenshteinProxy(hashA, hashB uint32) int {
	return bits.OnesCount32((hashA ^ hashB) & 0x00FFFFFF)
}

// similarity is the per-variable similarity contribution between two
// encoded 32-bit values (spec.md §4.5). The branch order matters: the
// char-marker check is strictly narrower (byte3 == 1) than the string
// check (byte3 in [1, 254]), so a char value compared against an actual
// string falls through to the string branch — the documented tagged-
// encoding ambiguity (spec.md §9), not a bug.
func similarity(a, b uint32, cfg config.Config) float64 {
	if a == 0 || b == 0 {
		return 0
	}
	byte3a := a >> 24
	byte3b := b >> 24

	switch {
	case byte3a == charMarker && byte3b == charMarker:
		diff := math.Abs(float64(int(a&0xFF)) - float64(int(b&0xFF)))
		return diff / 127 * cfg.WeightChar

	case byte3a >= 1 && byte3a <= 254 && byte3b >= 1 && byte3b <= 254:
		hashA := a & 0x00FFFFFF
		hashB := b & 0x00FFFFFF
		minLen := byte3a
		if byte3b < minLen {
			minLen = byte3b
		}
		var hashTerm float64
		if minLen != 0 {
			hashTerm = float64(hammingAsLevenshteinProxy(hashA, hashB)) / float64(minLen)
		}
		lenDiff := math.Abs(float64(int(byte3a)) - float64(int(byte3b)))
		return (hashTerm*cfg.StringLevAlpha + lenDiff/255*cfg.StringLenBeta) * cfg.WeightString

	default: // numeric or pointer
		if a == b {
			return 0
		}
		return cfg.WeightNumeric
	}
}
