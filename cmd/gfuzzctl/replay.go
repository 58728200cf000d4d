package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dsnet/golib/unitconv"
	"github.com/urfave/cli/v2"

	"github.com/gfuzz-project/gfuzz/internal/gfuzz/config"
	"github.com/gfuzz-project/gfuzz/internal/gfuzz/gfuzzlog"
	"github.com/gfuzz-project/gfuzz/internal/gfuzz/integration"
	"github.com/gfuzz-project/gfuzz/internal/gfuzz/scheduler"
)

const sidecarSuffix = ".gfuzz-state"

var replayCmd = cli.Command{
	Action: doReplay,
	Name:   "replay",
	Usage:  "Recompute scheduling scores (C6/C7) for every seed's recorded diversity sidecar",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "seeds-dir", Required: true, Usage: "directory of seed files with .gfuzz-state sidecars"},
		&cli.IntFlag{Name: "jobs", Usage: "number of worker goroutines", Value: runtime.NumCPU()},
		&cli.Float64Flag{Name: "traditional-score", Usage: "traditional (non-diversity) score assigned to every seed", Value: 1.0},
		&cli.StringFlag{Name: "config", Usage: "optional GFUZZ_CONFIG HuJSON override file"},
	},
}

type replayResult struct {
	seedPath  string
	diversity float64
	score     float64
	energy    float64
	captured  bool
}

// doReplay mirrors the teacher's three-stage enumeration pipeline
// (producer -> worker pool -> ticker-driven progress printer), scoped
// to replaying already-captured sidecars against a single in-process
// scheduler.Weights rather than generating new executions.
func doReplay(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	seedsDir := c.String("seeds-dir")
	seedPaths, err := listSeedFiles(seedsDir)
	if err != nil {
		return err
	}

	jobCount := c.Int("jobs")
	if jobCount <= 0 {
		jobCount = runtime.NumCPU()
	}
	traditional := c.Float64("traditional-score")
	weights := scheduler.NewWeights(cfg)

	var processed atomic.Int64
	var capturedCount atomic.Int64

	resultChannel := make(chan replayResult, 10*jobCount)
	pathChannel := make(chan string, 10*jobCount)

	done := make(chan struct{})
	printerDone := make(chan struct{})
	go func() {
		defer close(printerDone)
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		start := time.Now()
		last := start
		var lastCount int64
		report := func(now time.Time) {
			cur := processed.Load()
			rate := float64(cur-lastCount) / now.Sub(last).Seconds()
			last = now
			lastCount = cur
			elapsed := now.Sub(start)
			fmt.Printf("[t=%4d:%02d] replaying ~%s seeds/sec, total %d, captured %d\n",
				int(elapsed.Seconds())/60, int(elapsed.Seconds())%60,
				unitconv.FormatPrefix(rate, unitconv.SI, 0), cur, capturedCount.Load())
		}
		for {
			select {
			case <-done:
				report(time.Now())
				return
			case now := <-ticker.C:
				report(now)
			}
		}
	}()

	var workers sync.WaitGroup
	workers.Add(jobCount)
	for i := 0; i < jobCount; i++ {
		go func() {
			defer workers.Done()
			for path := range pathChannel {
				q, err := integration.ReadSidecar(integration.SidecarPath(path))
				if err != nil {
					gfuzzlog.Warn("replay: reading sidecar failed", "seed", path, "error", err)
					processed.Add(1)
					continue
				}
				score := weights.Traditional()*traditional + weights.State()*q.Diversity
				energy := scheduler.Energy(cfg, q.Diversity)
				resultChannel <- replayResult{
					seedPath:  path,
					diversity: q.Diversity,
					score:     score,
					energy:    energy,
					captured:  q.Captured,
				}
				if q.Captured {
					capturedCount.Add(1)
				}
				processed.Add(1)
			}
		}()
	}

	var collectorDone sync.WaitGroup
	var results []replayResult
	collectorDone.Add(1)
	go func() {
		defer collectorDone.Done()
		for r := range resultChannel {
			results = append(results, r)
		}
	}()

	for _, p := range seedPaths {
		pathChannel <- p
	}
	close(pathChannel)
	workers.Wait()
	close(resultChannel)
	collectorDone.Wait()

	close(done)
	<-printerDone

	for _, r := range results {
		fmt.Printf("%s captured=%t diversity=%.4f score=%.4f energy=%.4f\n",
			r.seedPath, r.captured, r.diversity, r.score, r.energy)
	}
	return nil
}

func listSeedFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading seeds dir %q: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || strings.HasSuffix(e.Name(), sidecarSuffix) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}
