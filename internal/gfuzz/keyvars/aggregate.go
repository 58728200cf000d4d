package keyvars

import "github.com/holiman/uint256"

// AggregateSample captures the raw byte pattern of a candidate whose type
// was too wide or structured to track as a single 32-bit slot (spec.md
// Non-goals: "aggregates are reduced to a single 32-bit representative").
// It is never fed into the live state map — it exists so `identify
// --debug-dump` output can show, for each candidate strategy 3's semantic
// filter discarded, what width of information was thrown away, without
// implementing aggregate support end to end. See Identifier.DroppedAggregates.
type AggregateSample struct {
	Function string
	Name     string
	Value    uint256.Int
}

// NewAggregateSample packs up to 32 bytes (big-endian) of raw into a
// uint256 for inspection. Longer inputs are truncated to their lowest 32
// bytes. Callers without an observed runtime value for the dropped
// candidate (e.g. static analysis, which carries no such value) may pass
// any stand-in byte pattern that identifies the candidate.
func NewAggregateSample(function, name string, raw []byte) AggregateSample {
	if len(raw) > 32 {
		raw = raw[len(raw)-32:]
	}
	var v uint256.Int
	v.SetBytes(raw)
	return AggregateSample{Function: function, Name: name, Value: v}
}

// String renders the sample as "function::name = 0x...", matching the
// manifest's "function::name" identity rendering (spec.md §6.3).
func (a AggregateSample) String() string {
	return a.Function + "::" + a.Name + " = " + a.Value.Hex()
}
