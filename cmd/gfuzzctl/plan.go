package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/gfuzz-project/gfuzz/internal/gfuzz/config"
	"github.com/gfuzz-project/gfuzz/internal/gfuzz/instrument"
	"github.com/gfuzz-project/gfuzz/internal/gfuzz/keyvars"
	"github.com/gfuzz-project/gfuzz/internal/gfuzz/manifestio"
)

var planCmd = cli.Command{
	Action: doPlan,
	Name:   "plan",
	Usage:  "Compute the instrumentation-insertion plan (C3) for a manifest against a program description",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "manifest", Required: true, Usage: "path to a key-variable manifest produced by identify"},
		&cli.StringFlag{Name: "program", Required: true, Usage: "path to the candidate-variable program description"},
		&cli.BoolFlag{Name: "emit-stub", Usage: "also render a Go source stub calling into the runtime recorders"},
		&cli.StringFlag{Name: "stub-out", Usage: "output path for the generated stub (required with --emit-stub)"},
	},
}

func doPlan(c *cli.Context) error {
	manifest, err := readManifestFile(c.String("manifest"))
	if err != nil {
		return err
	}
	prog, err := readProgram(c.String("program"))
	if err != nil {
		return err
	}

	sites := sitesFromProgram(prog)
	plan := instrument.Plan(sites, manifest)

	fmt.Printf("planned %d insertions from %d candidate sites\n", len(plan), len(sites))
	for _, ins := range plan {
		fmt.Printf("  var_id=%d %s.%s recorder=%s norm=%d\n",
			ins.VarID, ins.Site.Function, ins.Site.Variable, ins.Recorder, ins.Norm)
	}

	if c.Bool("emit-stub") {
		outPath := c.String("stub-out")
		if outPath == "" {
			return fmt.Errorf("plan: --stub-out is required with --emit-stub")
		}
		src, err := instrument.EmitStub(plan)
		if err != nil {
			return err
		}
		if err := os.WriteFile(outPath, src, 0o644); err != nil {
			return fmt.Errorf("writing stub %q: %w", outPath, err)
		}
	}
	return nil
}

func readManifestFile(path string) ([]keyvars.KeyVariable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest %q: %w", path, err)
	}
	defer f.Close()
	return manifestio.ReadManifest(f)
}

// sitesFromProgram turns the candidate-variable table into instrument
// sites. The textual program description only carries the manifest's
// coarse config.VarType (ptr/int/other), not the finer width
// distinctions (int8 vs int64, pointer-to-int8 for strings) a real IR
// input would expose, so this maps pointer/other through unchanged and
// treats every integer candidate as a plain 32-bit integer — a
// simplification of the CLI's textual stand-in input, not of the
// planner itself, which does implement the full normalization table.
func sitesFromProgram(prog *keyvars.Program) []instrument.Site {
	var sites []instrument.Site
	for _, fn := range prog.Functions {
		for _, c := range fn.Candidates {
			sites = append(sites, instrument.Site{
				Function: c.Function,
				Variable: c.Name,
				Value:    valueKindFor(c.Type),
			})
		}
	}
	return sites
}

func valueKindFor(t config.VarType) instrument.ValueKind {
	switch t {
	case config.VarPointer:
		return instrument.KindPointer
	case config.VarInteger:
		return instrument.KindInt32
	default:
		return instrument.KindOther
	}
}
