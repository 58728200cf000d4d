// Package keyvars implements C2, the key-variable identifier: a static
// whole-program analysis that selects which program variables deserve
// runtime observation (spec.md §4.2).
package keyvars

import "github.com/gfuzz-project/gfuzz/internal/gfuzz/config"

// KeyVariable is a surviving candidate: a source-level storage location
// selected for runtime observation. Identity is the pair
// (Function, Name); VarID is assigned densely over the sorted,
// MaxKeyVars-capped set of survivors (spec.md §3).
type KeyVariable struct {
	VarID    int
	Function string
	Name     string
	Distance int
	Type     config.VarType

	// Semantic flags, spec.md §3.
	Parameter            bool
	Global               bool
	MemorySafetyAdjacent bool
}

// Identity returns the (Function, Name) pair that uniquely identifies
// this record, independent of VarID assignment.
func (k KeyVariable) Identity() (string, string) {
	return k.Function, k.Name
}
