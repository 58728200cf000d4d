package keyvars

import (
	"fmt"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gfuzz-project/gfuzz/internal/gfuzz/callgraph"
	"github.com/gfuzz-project/gfuzz/internal/gfuzz/config"
	"github.com/gfuzz-project/gfuzz/internal/gfuzz/gfuzzlog"
)

// distanceCacheCapacity bounds the memoization cache below; repeated
// Identify calls against overlapping target sets (e.g. from a test
// harness that re-identifies per rule, or a long-lived analysis server)
// reuse a prior call-graph walk instead of re-running BFS from scratch.
// Mirrors the capacity-bounded cache idiom of
// go/interpreter/lfvm/converter.go's code cache.
const distanceCacheCapacity = 256

// Identifier runs the three-strategy static analysis of spec.md §4.2
// against a Program and a target-function list, producing the surviving,
// VarID-assigned key variables.
type Identifier struct {
	cfg config.Config
	// distances caches the result of Graph.Distances, keyed by the
	// graph's address plus the sorted, comma-joined target list, so
	// repeated Identify calls
	// against the same (graph, targets) pair skip the BFS.
	distances *lru.Cache[string, map[string]int]
	// dropped holds the candidates strategy 3 discarded on the most
	// recent Identify call (type neither pointer nor integer), kept
	// around only so DroppedAggregates can surface them for
	// --debug-dump; Identify itself never reads this field back.
	dropped []Candidate
}

// NewIdentifier constructs an Identifier using cfg's DistanceThreshold
// and MaxKeyVars.
func NewIdentifier(cfg config.Config) *Identifier {
	cache, err := lru.New[string, map[string]int](distanceCacheCapacity)
	if err != nil {
		// lru.New only fails for a non-positive size; distanceCacheCapacity
		// is a positive constant, so this is unreachable in practice.
		panic(err)
	}
	return &Identifier{cfg: cfg, distances: cache}
}

// Identify applies the distance filter, the memory-safety-adjacency
// hint, and the semantic filter, then assigns dense VarIDs in sorted
// (function, name) order, capped at MaxKeyVars (spec.md §4.2).
//
// An empty or nil targets list is not an error: per spec.md §4.2 and §7,
// a missing/empty targets file degrades to an empty manifest with a
// warning rather than failing.
func (id *Identifier) Identify(g *callgraph.Graph, prog *Program, targets []string) []KeyVariable {
	if len(targets) == 0 {
		gfuzzlog.Warn("keyvars: empty targets list, producing empty manifest")
		id.dropped = id.dropped[:0]
		return nil
	}

	distances := id.distancesFor(g, targets)

	// Strategy 1: distance filter.
	var candidates []KeyVariable
	for fnName, fn := range prog.Functions {
		dist, reachable := distances[fnName]
		if !reachable || dist > id.cfg.DistanceThreshold {
			continue
		}
		for _, c := range fn.Candidates {
			kv := KeyVariable{
				Function:  c.Function,
				Name:      c.Name,
				Distance:  dist,
				Type:      c.Type,
				Parameter: c.Parameter,
				Global:    c.Global,
			}
			// Strategy 2: memory-safety-adjacency hint — permissive,
			// informational only; matching candidates are flagged, not
			// removed (spec.md §4.2 strategy 2).
			kv.MemorySafetyAdjacent = isMemorySafetyAdjacent(c.Uses)
			candidates = append(candidates, kv)
		}
	}

	// Strategy 3: semantic filter — keep only pointer/integer candidates;
	// float/aggregate/opaque candidates are dropped here but retained on
	// the Identifier so DroppedAggregates can report what was discarded.
	kept := candidates[:0]
	id.dropped = id.dropped[:0]
	for _, kv := range candidates {
		if kv.Type == config.VarPointer || kv.Type == config.VarInteger {
			kept = append(kept, kv)
			continue
		}
		id.dropped = append(id.dropped, Candidate{
			Function: kv.Function,
			Name:     kv.Name,
			Type:     kv.Type,
		})
	}

	return id.assignVarIDs(kept)
}

// DroppedAggregates packs the candidates the most recent Identify call
// discarded in strategy 3 (spec.md §4.2: "floating-point, aggregate, and
// opaque-typed candidates are dropped") into AggregateSamples for
// --debug-dump inspection. Static analysis carries no runtime value for
// a dropped candidate, so the sample's byte pattern is derived from the
// candidate's own (function, name) identity rather than an observed
// value — enough to show a maintainer which variables the semantic
// filter removed and how wide their discarded representation would have
// been, without implementing aggregate support end to end.
func (id *Identifier) DroppedAggregates() []AggregateSample {
	samples := make([]AggregateSample, 0, len(id.dropped))
	for _, c := range id.dropped {
		samples = append(samples, NewAggregateSample(c.Function, c.Name, []byte(c.Function+"::"+c.Name)))
	}
	return samples
}

func (id *Identifier) distancesFor(g *callgraph.Graph, targets []string) map[string]int {
	key := fmt.Sprintf("%p|", g) + distanceCacheKey(targets)
	if d, ok := id.distances.Get(key); ok {
		return d
	}
	d := g.Distances(targets)
	id.distances.Add(key, d)
	return d
}

func distanceCacheKey(targets []string) string {
	sorted := append([]string(nil), targets...)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

// assignVarIDs sorts survivors by (Function, Name) for reproducibility
// (spec.md §4.2, §8 determinism law), biases memory-safety-adjacent
// variables ahead of the truncation cutoff (the "future policy" spec.md
// §9 invites), and assigns dense VarIDs over the capped, re-sorted set.
func (id *Identifier) assignVarIDs(vars []KeyVariable) []KeyVariable {
	sort.Slice(vars, func(i, j int) bool {
		a, b := vars[i], vars[j]
		if a.Function != b.Function {
			return a.Function < b.Function
		}
		return a.Name < b.Name
	})

	// Stable-partition memory-safety-adjacent variables ahead of the rest
	// while preserving (function, name) order within each group, so
	// truncation at MaxKeyVars keeps safety-relevant variables first.
	ordered := make([]KeyVariable, 0, len(vars))
	for _, kv := range vars {
		if kv.MemorySafetyAdjacent {
			ordered = append(ordered, kv)
		}
	}
	for _, kv := range vars {
		if !kv.MemorySafetyAdjacent {
			ordered = append(ordered, kv)
		}
	}

	if len(ordered) > id.cfg.MaxKeyVars {
		ordered = ordered[:id.cfg.MaxKeyVars]
	}

	// Re-sort the final, capped set by (function, name) so manifest
	// output and VarID order are deterministic regardless of the
	// safety-adjacency bias used to decide what got truncated.
	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Function != b.Function {
			return a.Function < b.Function
		}
		return a.Name < b.Name
	})
	for i := range ordered {
		ordered[i].VarID = i
	}
	return ordered
}

func isMemorySafetyAdjacent(uses []Use) bool {
	for _, u := range uses {
		switch u.Kind {
		case UseLoad, UseStore, UsePointerArith:
			return true
		case UseCallArg:
			if strings.HasPrefix(u.CalleeName, "__asan_") || strings.HasPrefix(u.CalleeName, "__ubsan_") {
				return true
			}
		}
	}
	return false
}
