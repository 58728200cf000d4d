package keyvars

import "github.com/gfuzz-project/gfuzz/internal/gfuzz/config"

// UseKind categorizes a single use of a candidate storage location,
// enough to drive the memory-safety-adjacency hint of spec.md §4.2
// strategy 2.
type UseKind int

const (
	// UseCallArg: the candidate flows into a call argument. CalleeName
	// records the callee; a name beginning with "__asan_" or "__ubsan_"
	// marks the use memory-safety-adjacent.
	UseCallArg UseKind = iota
	// UseLoad: the candidate is the address or value of a load.
	UseLoad
	// UseStore: the candidate is the address or value of a store.
	UseStore
	// UsePointerArith: the candidate is an operand of pointer arithmetic
	// (GEP-like indexing).
	UsePointerArith
	// UseOther: any use not otherwise memory-safety relevant.
	UseOther
)

// Use is a single syntactic use of a candidate variable.
type Use struct {
	Kind       UseKind
	CalleeName string // only meaningful for UseCallArg
}

// Candidate is a named storage location read or written within a
// function, discovered during the distance-filter pass (spec.md §4.2
// strategy 1: "every named storage location read or written by a
// load/store/GEP").
type Candidate struct {
	Function  string
	Name      string
	Type      config.VarType
	Parameter bool
	Global    bool
	Uses      []Use
}

// Function is one function of the whole-program representation: its
// name and the storage locations it reads or writes.
type Function struct {
	Name       string
	Candidates []Candidate
}

// Program is the Go-native stand-in for the whole-program representation
// spec.md §4.2 takes as an opaque static-analysis input: per function,
// the candidate variables found in its body. The call graph is held
// separately, in a callgraph.Graph.
type Program struct {
	Functions map[string]*Function
}

// NewProgram returns an empty Program.
func NewProgram() *Program {
	return &Program{Functions: map[string]*Function{}}
}

// AddCandidate records a candidate storage location in the named
// function, creating the function entry if needed.
func (p *Program) AddCandidate(c Candidate) {
	fn, ok := p.Functions[c.Function]
	if !ok {
		fn = &Function{Name: c.Function}
		p.Functions[c.Function] = fn
	}
	fn.Candidates = append(fn.Candidates, c)
}
