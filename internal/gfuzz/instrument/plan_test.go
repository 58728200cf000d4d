package instrument

import (
	"strings"
	"testing"

	"github.com/gfuzz-project/gfuzz/internal/gfuzz/config"
	"github.com/gfuzz-project/gfuzz/internal/gfuzz/keyvars"
)

func sampleManifest() []keyvars.KeyVariable {
	return []keyvars.KeyVariable{
		{VarID: 0, Function: "parse", Name: "cursor", Type: config.VarInteger},
		{VarID: 1, Function: "parse", Name: "label", Type: config.VarPointer},
		{VarID: 2, Function: "parse", Name: "buf", Type: config.VarPointer},
	}
}

func TestPlan_OnlyMatchesManifestEntries(t *testing.T) {
	sites := []Site{
		{Function: "parse", Variable: "cursor", Value: KindInt32},
		{Function: "parse", Variable: "unrelated", Value: KindInt32},
	}
	got := Plan(sites, sampleManifest())
	if len(got) != 1 {
		t.Fatalf("Plan returned %d insertions, want 1", len(got))
	}
	if got[0].VarID != 0 {
		t.Errorf("VarID = %d, want 0", got[0].VarID)
	}
}

func TestPlan_OrderedByVarID(t *testing.T) {
	sites := []Site{
		{Function: "parse", Variable: "buf", Value: KindPointerToInt8},
		{Function: "parse", Variable: "cursor", Value: KindInt32},
		{Function: "parse", Variable: "label", Value: KindPointer},
	}
	got := Plan(sites, sampleManifest())
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, ins := range got {
		if ins.VarID != i {
			t.Errorf("insertion %d has VarID %d, want %d", i, ins.VarID, i)
		}
	}
}

func TestNormalize_Table(t *testing.T) {
	cases := []struct {
		kind ValueKind
		want Normalization
	}{
		{KindInt32, NormNone},
		{KindInt8, NormZeroExtend},
		{KindInt16, NormZeroExtend},
		{KindInt64, NormTruncate},
		{KindPointer, NormPtrToIntTrunc},
		{KindPointerToInt8, NormPtrToIntTrunc},
		{KindFloat32, NormBitcast32},
		{KindFloat64, NormBitcast64Trunc},
		{KindOther, NormConstantZero},
	}
	for _, c := range cases {
		if got := normalize(c.kind); got != c.want {
			t.Errorf("normalize(%v) = %v, want %v", c.kind, got, c.want)
		}
	}
}

func TestSelectRecorder_StringBeatsPointer(t *testing.T) {
	if got := selectRecorder(KindPointerToInt8); got != RecorderString {
		t.Errorf("selectRecorder(*int8) = %v, want string", got)
	}
}

func TestSelectRecorder_PlainPointer(t *testing.T) {
	if got := selectRecorder(KindPointer); got != RecorderPointer {
		t.Errorf("selectRecorder(pointer) = %v, want pointer", got)
	}
}

func TestSelectRecorder_Int8IsChar(t *testing.T) {
	if got := selectRecorder(KindInt8); got != RecorderChar {
		t.Errorf("selectRecorder(int8) = %v, want char", got)
	}
}

func TestSelectRecorder_DefaultIsNumeric(t *testing.T) {
	for _, k := range []ValueKind{KindInt16, KindInt32, KindInt64, KindFloat32, KindFloat64, KindOther} {
		if got := selectRecorder(k); got != RecorderNumeric {
			t.Errorf("selectRecorder(%v) = %v, want numeric", k, got)
		}
	}
}

func TestPlan_ExcludesUnmatchedSites(t *testing.T) {
	sites := []Site{{Function: "other", Variable: "x", Value: KindInt32}}
	got := Plan(sites, sampleManifest())
	if len(got) != 0 {
		t.Errorf("Plan returned %d insertions, want 0 for no manifest match", len(got))
	}
}

func TestEmitStub_GeneratesOneFunctionPerSite(t *testing.T) {
	sites := []Site{{Function: "parse", Variable: "cursor", Value: KindInt32}}
	plan := Plan(sites, sampleManifest())
	src, err := EmitStub(plan)
	if err != nil {
		t.Fatalf("EmitStub: %v", err)
	}
	out := string(src)
	if !strings.Contains(out, "func Record0(") {
		t.Errorf("stub missing Record0, got:\n%s", out)
	}
	if !strings.Contains(out, "rec.RecordNumeric(0,") {
		t.Errorf("stub missing numeric recorder call, got:\n%s", out)
	}
}

func TestEmitStub_StringSite(t *testing.T) {
	sites := []Site{{Function: "parse", Variable: "buf", Value: KindPointerToInt8}}
	plan := Plan(sites, sampleManifest())
	src, err := EmitStub(plan)
	if err != nil {
		t.Fatalf("EmitStub: %v", err)
	}
	if !strings.Contains(string(src), "rec.RecordString(2,") {
		t.Errorf("stub missing string recorder call, got:\n%s", src)
	}
}

func TestEmitStub_EmptyPlanProducesValidHeader(t *testing.T) {
	src, err := EmitStub(nil)
	if err != nil {
		t.Fatalf("EmitStub(nil): %v", err)
	}
	if !strings.Contains(string(src), "package instrumented") {
		t.Errorf("empty stub missing package clause, got:\n%s", src)
	}
}
