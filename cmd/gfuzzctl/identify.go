package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/gfuzz-project/gfuzz/internal/gfuzz/callgraph"
	"github.com/gfuzz-project/gfuzz/internal/gfuzz/config"
	"github.com/gfuzz-project/gfuzz/internal/gfuzz/gfuzzlog"
	"github.com/gfuzz-project/gfuzz/internal/gfuzz/keyvars"
	"github.com/gfuzz-project/gfuzz/internal/gfuzz/manifestio"
)

var identifyCmd = cli.Command{
	Action: doIdentify,
	Name:   "identify",
	Usage:  "Run the key-variable identifier (C2) over a call graph and program description",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "callgraph", Required: true, Usage: "path to the call-graph file (caller callee pairs)"},
		&cli.StringFlag{Name: "program", Required: true, Usage: "path to the candidate-variable program description"},
		&cli.StringFlag{Name: "targets", Required: true, Usage: "path to the targets file (one function per line)"},
		&cli.StringFlag{Name: "manifest", Required: true, Usage: "output path for the key-variable manifest"},
		&cli.StringFlag{Name: "var-id-mapping", Usage: "optional output path for the id,function::name debug mapping"},
		&cli.StringFlag{Name: "debug-dump", Usage: "optional output path listing candidates strategy 3 dropped as aggregates"},
		&cli.StringFlag{Name: "config", Usage: "optional GFUZZ_CONFIG HuJSON override file"},
	},
}

func doIdentify(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	g, err := readCallGraph(c.String("callgraph"))
	if err != nil {
		return err
	}
	prog, err := readProgram(c.String("program"))
	if err != nil {
		return err
	}
	targets, err := readTargets(c.String("targets"))
	if err != nil {
		return err
	}

	identifier := keyvars.NewIdentifier(cfg)
	vars := identifier.Identify(g, prog, targets)

	if err := writeManifest(c.String("manifest"), vars); err != nil {
		return err
	}
	if mappingPath := c.String("var-id-mapping"); mappingPath != "" {
		if err := writeVarIDMapping(mappingPath, vars); err != nil {
			return err
		}
	}
	if dumpPath := c.String("debug-dump"); dumpPath != "" {
		if err := writeDebugDump(dumpPath, identifier.DroppedAggregates()); err != nil {
			return err
		}
	}

	gfuzzlog.Info("identify: done", "key_vars", len(vars), "targets", len(targets))
	fmt.Printf("identified %d key variables from %d targets\n", len(vars), len(targets))
	return nil
}

func readCallGraph(path string) (*callgraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening call graph %q: %w", path, err)
	}
	defer f.Close()
	return callgraph.Parse(f)
}

func readProgram(path string) (*keyvars.Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening program %q: %w", path, err)
	}
	defer f.Close()
	return keyvars.ParseProgram(f)
}

func readTargets(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening targets %q: %w", path, err)
	}
	defer f.Close()
	return manifestio.ReadTargets(f)
}

func writeManifest(path string, vars []keyvars.KeyVariable) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating manifest %q: %w", path, err)
	}
	defer f.Close()
	return manifestio.WriteManifest(f, vars)
}

func writeVarIDMapping(path string, vars []keyvars.KeyVariable) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating var-id mapping %q: %w", path, err)
	}
	defer f.Close()
	return manifestio.WriteVarIDMapping(f, vars)
}

// writeDebugDump renders the strategy-3-dropped aggregate candidates
// collected during Identify, one AggregateSample.String() per line, so a
// maintainer can see what width of information the semantic filter threw
// away (spec.md §4.2 strategy 3).
func writeDebugDump(path string, samples []keyvars.AggregateSample) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating debug dump %q: %w", path, err)
	}
	defer f.Close()
	for _, s := range samples {
		if _, err := fmt.Fprintln(f, s.String()); err != nil {
			return fmt.Errorf("writing debug dump %q: %w", path, err)
		}
	}
	return nil
}
