package callgraph

import (
	"strings"
	"testing"
)

func TestDistances_TargetsAreZero(t *testing.T) {
	g := New()
	g.AddEdge("main", "parseInput")
	g.AddEdge("parseInput", "target")

	d := g.Distances([]string{"target"})
	if d["target"] != 0 {
		t.Errorf("target distance = %d, want 0", d["target"])
	}
	if d["parseInput"] != 1 {
		t.Errorf("parseInput distance = %d, want 1", d["parseInput"])
	}
	if d["main"] != 2 {
		t.Errorf("main distance = %d, want 2", d["main"])
	}
}

func TestDistances_UnreachableOmitted(t *testing.T) {
	g := New()
	g.AddEdge("main", "target")
	g.AddEdge("unrelated", "helper")

	d := g.Distances([]string{"target"})
	if _, ok := d["unrelated"]; ok {
		t.Error("unrelated should not be reachable from target on the reversed graph")
	}
}

func TestDistances_MultipleTargetsTakeMin(t *testing.T) {
	g := New()
	g.AddEdge("a", "t1")
	g.AddEdge("a", "mid")
	g.AddEdge("mid", "t2")

	d := g.Distances([]string{"t1", "t2"})
	if d["a"] != 1 {
		t.Errorf("a distance = %d, want 1 (via t1)", d["a"])
	}
}

func TestParse(t *testing.T) {
	src := "# comment\nmain parseInput\n\nparseInput target\n"
	g, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := g.Edges["main"]; len(got) != 1 || got[0] != "parseInput" {
		t.Errorf("Edges[main] = %v, want [parseInput]", got)
	}
}

func TestParse_MalformedLine(t *testing.T) {
	_, err := Parse(strings.NewReader("onlyonefield\n"))
	if err == nil {
		t.Error("expected error for malformed line")
	}
}

func TestFunctions_Sorted(t *testing.T) {
	g := New()
	g.AddEdge("zeta", "alpha")
	g.AddEdge("beta", "zeta")
	got := g.Functions()
	want := []string{"alpha", "beta", "zeta"}
	if len(got) != len(want) {
		t.Fatalf("Functions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Functions()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
