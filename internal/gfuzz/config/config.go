// Package config holds the named constants and tunables shared by every
// other gfuzz component. Values mirror the parameters of the paper
// "Variable State Diversity-Guided Fuzzing Method" as carried by the
// original GFuzz instrumentation headers.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

// VarType categorizes a key variable's inferred type.
type VarType int

const (
	VarPointer VarType = iota
	VarInteger
	VarOther
)

func (t VarType) String() string {
	switch t {
	case VarPointer:
		return "ptr"
	case VarInteger:
		return "int"
	default:
		return "other"
	}
}

// ParseVarType parses the manifest's type tag ("ptr", "int", "other").
func ParseVarType(s string) (VarType, error) {
	switch s {
	case "ptr":
		return VarPointer, nil
	case "int":
		return VarInteger, nil
	case "other":
		return VarOther, nil
	default:
		return VarOther, fmt.Errorf("unknown type tag %q", s)
	}
}

// Config is the set of tunables consumed by every gfuzz component. The
// zero value is not meaningful; use Default() or Load().
type Config struct {
	// DistanceThreshold is h: functions farther than this from a target
	// in the reversed call graph are dropped by the key-variable
	// identifier.
	DistanceThreshold int

	// MaxKeyVars bounds the number of key variables tracked (N in
	// [0, MaxKeyVars)).
	MaxKeyVars int

	// Per-type weights used by the diversity evaluator's similarity
	// calculation.
	WeightNumeric float64
	WeightChar    float64
	WeightString  float64

	// String similarity mix (hash-distance term vs length-difference term).
	StringLevAlpha float64
	StringLenBeta  float64

	// Diversity combination mix (similarity term vs coverage term).
	WeightSimilarity float64
	WeightCoverage   float64

	// LearningRate is λ, the adaptive-weight learning rate.
	LearningRate float64

	// EnergyCoeff is γ, the energy-multiplier coefficient.
	EnergyCoeff float64

	// Initial adaptive weights.
	InitWeightTraditional float64
	InitWeightState       float64

	// VarMapSizePow2 determines VarMapSize = 1 << VarMapSizePow2, the
	// live state map's length; must stay a power of two.
	VarMapSizePow2 uint

	// MaxStringLen bounds how many bytes of a string are hashed.
	MaxStringLen int

	// HistorySize is the state-history ring buffer's capacity.
	HistorySize int

	// MinCoverage/MaxCoverage seed the history's running coverage bounds.
	MinCoverage float64
	MaxCoverage float64
}

// VarMapSize returns 1 << VarMapSizePow2.
func (c Config) VarMapSize() int {
	return 1 << c.VarMapSizePow2
}

// Default returns the tunables from spec.md §4.1, matching the original
// GFuzz configuration header's defaults.
func Default() Config {
	return Config{
		DistanceThreshold:     3,
		MaxKeyVars:            1024,
		WeightNumeric:         1.0,
		WeightChar:            0.8,
		WeightString:          1.2,
		StringLevAlpha:        0.6,
		StringLenBeta:         0.4,
		WeightSimilarity:      0.6,
		WeightCoverage:        0.4,
		LearningRate:          0.1,
		EnergyCoeff:           0.5,
		InitWeightTraditional: 0.5,
		InitWeightState:       0.5,
		VarMapSizePow2:        14,
		MaxStringLen:          256,
		HistorySize:           100,
		MinCoverage:           0.0,
		MaxCoverage:           1.0,
	}
}

// Load returns Default(), optionally overridden by a HuJSON document read
// from path. An empty path returns Default() unchanged. HuJSON (JSON with
// comments and trailing commas) is used so experiment tuning files can be
// annotated in place.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %q: %w", path, err)
	}
	std, err := hujson.Standardize(raw)
	if err != nil {
		return cfg, fmt.Errorf("parsing config %q: %w", path, err)
	}
	if err := json.Unmarshal(std, &cfg); err != nil {
		return cfg, fmt.Errorf("decoding config %q: %w", path, err)
	}
	return cfg, nil
}
