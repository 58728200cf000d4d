// Package callgraph models the whole-program call graph used by the
// key-variable identifier's distance filter (spec.md §4.2, strategy 1).
//
// The static analysis this spec is built on assumes an LLVM-level
// whole-program representation; this reimplementation targets a
// stand-alone Go tool rather than an LLVM pass, so the call graph is an
// explicit, small in-memory structure built by the caller (programmatically,
// or via Parse for the CLI) instead of being derived from a foreign
// compiler's IR.
package callgraph

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Graph is a directed call graph: Edges[f] lists the functions f calls.
type Graph struct {
	Edges map[string][]string
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{Edges: map[string][]string{}}
}

// AddEdge records that caller calls callee. Both endpoints are implicitly
// added as nodes even if they have no other edges.
func (g *Graph) AddEdge(caller, callee string) {
	if _, ok := g.Edges[caller]; !ok {
		g.Edges[caller] = nil
	}
	if _, ok := g.Edges[callee]; !ok {
		g.Edges[callee] = nil
	}
	g.Edges[caller] = append(g.Edges[caller], callee)
}

// Functions returns every known function name, sorted, so callers get a
// deterministic iteration order (feeding spec.md §4.2's requirement that
// VarIDs be assigned in stable sorted order).
func (g *Graph) Functions() []string {
	names := make([]string, 0, len(g.Edges))
	for f := range g.Edges {
		names = append(names, f)
	}
	sort.Strings(names)
	return names
}

// Distances computes, for every function, the hop distance to the
// nearest target on the *reversed* call graph via a multi-source BFS:
// targets are distance 0, a function that calls a target directly has
// distance 1, a function that calls a distance-1 function has distance
// 2, and so on (the minimum over all targets). Functions unreachable from any target are
// omitted from the result.
func (g *Graph) Distances(targets []string) map[string]int {
	reverse := map[string][]string{}
	for caller, callees := range g.Edges {
		for _, callee := range callees {
			reverse[callee] = append(reverse[callee], caller)
		}
	}

	dist := map[string]int{}
	queue := make([]string, 0, len(targets))
	for _, t := range targets {
		if _, seen := dist[t]; seen {
			continue
		}
		dist[t] = 0
		queue = append(queue, t)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, caller := range reverse[cur] {
			if _, seen := dist[caller]; seen {
				continue
			}
			dist[caller] = dist[cur] + 1
			queue = append(queue, caller)
		}
	}
	return dist
}

// Parse reads a simple textual call-graph description: one "caller callee"
// pair per line, whitespace-separated; blank lines and lines starting
// with '#' are ignored. This is the Go-native stand-in for the
// whole-program IR spec.md treats as an opaque static-analysis input.
func Parse(r io.Reader) (*Graph, error) {
	g := New()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("callgraph:%d: expected \"caller callee\", got %q", lineNo, line)
		}
		g.AddEdge(fields[0], fields[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading call graph: %w", err)
	}
	return g, nil
}
