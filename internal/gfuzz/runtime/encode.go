// Package runtime is C4, the runtime recorder: a small library linked
// into the fuzzing target that writes a compact 32-bit encoded state
// value per key variable into a shared live state map (spec.md §4.4).
//
// Encoding (spec.md §3): the upper byte of each 32-bit slot is an ad-hoc
// type discriminator. This repository keeps that 32-bit tagged encoding
// rather than widening to 64 bits with an explicit tag (the alternative
// spec.md §9's Design Notes offer) — the ambiguities it accepts are
// documented here, not silently "fixed":
//   - A numeric value that happens to be exactly zero is indistinguishable
//     from "slot never written".
//   - A numeric or pointer value whose top byte (bits 24-31) is nonzero
//     is read by the similarity evaluator as tagged: compared as a char
//     when the top byte is 0x01 on both sides, otherwise as a string when
//     both top bytes are in 0x01-0xFE.
// Both are accepted as lossy-but-cheap feedback noise, exactly as
// spec.md §9 allows.
package runtime

// djb2Seed is the DJB2 hash seed used by record-string (spec.md §4.4).
const djb2Seed uint32 = 5381

// charMarker is the bit pattern set in byte 3 of a char-tagged slot.
const charMarker uint32 = 0x01000000

// EncodeNumeric returns the slot value for a numeric recording: the
// value unchanged. The upper byte is not forced to zero.
func EncodeNumeric(v uint32) uint32 {
	return v
}

// EncodeChar returns the slot value for a char recording: the byte in
// bits 0-7, the char marker 0x01 in bits 24-31.
func EncodeChar(v uint8) uint32 {
	return uint32(v) | charMarker
}

// EncodePointer returns the slot value for a pointer recording: the low
// 32 bits of the address, upper byte not forced to zero (ambiguous with
// numeric, accepted per spec.md §3/§9).
func EncodePointer(addr uint64) uint32 {
	return uint32(addr)
}

// EncodeString walks up to maxLen bytes of s computing a DJB2 hash
// (seed 5381, h = (h<<5)+h+c) and returns the slot value: hash in bits
// 0-23, min(len(s), 255) in bits 24-31. For an empty string the loop
// walks zero bytes, so the hash term is just the seed: the result is
// 5381 (0x00001505), nonzero. Per spec.md §8's zero-length-string
// boundary case, the similarity classifier still treats this slot as
// numeric rather than string, because that classification is driven by
// the length byte (byte 3) being 0, not by the stored value being zero.
func EncodeString(s []byte, maxLen int) uint32 {
	walk := len(s)
	if maxLen > 0 && maxLen < walk {
		walk = maxLen
	}
	h := djb2Seed
	for i := 0; i < walk; i++ {
		h = (h << 5) + h + uint32(s[i])
	}
	length := len(s)
	if length > 255 {
		length = 255
	}
	return (h & 0x00FFFFFF) | (uint32(length) << 24)
}
