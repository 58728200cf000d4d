package instrument

import (
	"bytes"
	"fmt"
	"text/template"
)

// recorderCall names the runtime.Recorder method and the Go conversion
// from a site value to that method's argument type. The conversion is
// chosen by recorder alone and does not apply the Insertion's Norm: a
// float value is converted numerically, not bit-cast. This
// is the "closest idiomatic analogue" of a foreign-linker weak symbol
// call spec.md §6.2 describes: an ordinary Go function call generated
// against internal/gfuzz/runtime's exported API.
var recorderCall = map[Recorder]struct {
	method string
	cast   string
}{
	RecorderNumeric: {"RecordNumeric", "uint32(%s)"},
	RecorderChar:    {"RecordChar", "uint8(%s)"},
	RecorderString:  {"RecordString", "[]byte(%s)"},
	RecorderPointer: {"RecordPointer", "uint64(%s)"},
}

var stubTmpl = template.Must(template.New("stub").Parse(
	`// Code generated by gfuzzctl plan --emit-stub. DO NOT EDIT.

package instrumented

import gfuzzruntime "github.com/gfuzz-project/gfuzz/internal/gfuzz/runtime"

{{range .}}
// {{.Site.Function}}: {{.Site.Variable}} (var_id {{.VarID}})
func Record{{.VarID}}(rec *gfuzzruntime.Recorder, v {{.GoType}}) {
	rec.{{.Method}}({{.VarID}}, {{.CastExpr}})
}
{{end}}`))

type stubSite struct {
	Insertion
	GoType   string
	Method   string
	CastExpr string
}

func goType(k ValueKind) string {
	switch k {
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindPointerToInt8:
		return "[]byte"
	case KindPointer:
		return "uintptr"
	default:
		return "any"
	}
}

// EmitStub renders the plan as generated Go source calling into
// runtime.Recorder, one function per instrumented site. This is purely
// a debug/test aid (spec.md §6.2): there is no foreign IR for this
// reimplementation to actually rewrite.
func EmitStub(plan []Insertion) ([]byte, error) {
	sites := make([]stubSite, 0, len(plan))
	for _, ins := range plan {
		call := recorderCall[ins.Recorder]
		gt := goType(ins.Site.Value)
		sites = append(sites, stubSite{
			Insertion: ins,
			GoType:    gt,
			Method:    call.method,
			CastExpr:  fmt.Sprintf(call.cast, "v"),
		})
	}
	var buf bytes.Buffer
	if err := stubTmpl.Execute(&buf, sites); err != nil {
		return nil, fmt.Errorf("instrument: rendering stub: %w", err)
	}
	return buf.Bytes(), nil
}
