// Package instrument implements C3, the instrumentation-insertion
// planner. A real IR-rewriting pass and the target's compiler are
// out-of-scope external collaborators (spec.md §1), so this package does
// not own or rewrite any foreign IR: given a manifest and a Program's
// assignment sites, it computes the same per-site decisions a rewriting
// pass would apply — which recorder to call, and how to normalize the
// stored value — and emits them as an ordered, inspectable plan. This
// mirrors how the teacher's lfvm "converter" transforms one bytecode
// representation into another internal one without owning the original
// compiler front end.
package instrument

import (
	"sort"

	"github.com/gfuzz-project/gfuzz/internal/gfuzz/keyvars"
)

// ValueKind is the source-level type of the instrumented value, granular
// enough to drive the normalization table of spec.md §4.3 (the
// manifest's own config.VarType is coarser: ptr/int/other).
type ValueKind int

const (
	KindInt8 ValueKind = iota
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindPointerToInt8 // char* / *int8: the string case
	KindPointer
	KindOther
)

// Normalization is the zero-or-one-of normalization step spec.md §4.3
// requires before a value reaches a recorder.
type Normalization int

const (
	NormNone          Normalization = iota // already a 32-bit integer
	NormZeroExtend                         // width < 32
	NormTruncate                           // integer width > 32
	NormPtrToIntTrunc                      // pointer -> int64 -> low 32
	NormBitcast32                          // float32 -> its bit pattern
	NormBitcast64Trunc                     // float64 -> bits -> low 32
	NormConstantZero                       // anything else
)

// Recorder names the one of the four C4 entry points a site is wired to.
type Recorder int

const (
	RecorderNumeric Recorder = iota
	RecorderChar
	RecorderString
	RecorderPointer
)

func (r Recorder) String() string {
	switch r {
	case RecorderNumeric:
		return "numeric"
	case RecorderChar:
		return "char"
	case RecorderString:
		return "string"
	case RecorderPointer:
		return "pointer"
	default:
		return "unknown"
	}
}

// Site is a single assignment site the planner considers: an
// instruction writing to a named storage location, the Go-native
// stand-in for "a store instruction whose destination operand's name
// matches a manifest entry" (spec.md §4.3).
type Site struct {
	Function string
	Variable string
	Value    ValueKind
}

// Insertion is the planner's output for one instrumented site: a real
// IR pass would apply this immediately after the original instruction,
// never altering control flow or removing it (spec.md §4.3).
type Insertion struct {
	Site     Site
	VarID    int
	Recorder Recorder
	Norm     Normalization
}

// normalize returns the normalization step for a source value kind,
// per spec.md §4.3's table.
func normalize(k ValueKind) Normalization {
	switch k {
	case KindInt32:
		return NormNone
	case KindInt8, KindInt16:
		return NormZeroExtend
	case KindInt64:
		return NormTruncate
	case KindPointerToInt8, KindPointer:
		return NormPtrToIntTrunc
	case KindFloat32:
		return NormBitcast32
	case KindFloat64:
		return NormBitcast64Trunc
	default:
		return NormConstantZero
	}
}

// selectRecorder implements spec.md §4.3's recorder-selection rule:
// string if *int8, else pointer if pointer, else char if int8
// (truncating wider to 8 — handled by the char recorder itself taking a
// uint8), else numeric.
func selectRecorder(k ValueKind) Recorder {
	switch k {
	case KindPointerToInt8:
		return RecorderString
	case KindPointer:
		return RecorderPointer
	case KindInt8:
		return RecorderChar
	default:
		return RecorderNumeric
	}
}

// Plan computes the ordered list of Insertions for every site whose
// (Function, Variable) matches a manifest entry, in the dense VarID
// order of the manifest. Sites with no matching manifest entry are
// silently excluded — C3 only instruments what C2 selected.
func Plan(sites []Site, manifest []keyvars.KeyVariable) []Insertion {
	varID := make(map[[2]string]int, len(manifest))
	for _, v := range manifest {
		varID[[2]string{v.Function, v.Name}] = v.VarID
	}

	insertions := make([]Insertion, 0, len(sites))
	for _, s := range sites {
		id, ok := varID[[2]string{s.Function, s.Variable}]
		if !ok {
			continue
		}
		insertions = append(insertions, Insertion{
			Site:     s,
			VarID:    id,
			Recorder: selectRecorder(s.Value),
			Norm:     normalize(s.Value),
		})
	}

	sort.Slice(insertions, func(i, j int) bool {
		return insertions[i].VarID < insertions[j].VarID
	})
	return insertions
}
