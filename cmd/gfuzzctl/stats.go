package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli/v2"
	"golang.org/x/exp/maps"

	"github.com/gfuzz-project/gfuzz/internal/gfuzz/integration"
)

var statsCmd = cli.Command{
	Action: doStats,
	Name:   "stats",
	Usage:  "Summarize recorded diversity sidecars for a seed corpus",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "seeds-dir", Required: true, Usage: "directory of seed files with .gfuzz-state sidecars"},
	},
}

func doStats(c *cli.Context) error {
	seedsDir := c.String("seeds-dir")
	seedPaths, err := listSeedFiles(seedsDir)
	if err != nil {
		return err
	}

	var (
		total, captured int
		minD, maxD      float64
		sumD            float64
		buckets         = map[int]int{}
	)
	minD, maxD = 1.0, 0.0

	for _, p := range seedPaths {
		total++
		q, err := integration.ReadSidecar(integration.SidecarPath(p))
		if err != nil {
			fmt.Fprintf(os.Stderr, "stats: skipping %s: %v\n", p, err)
			continue
		}
		if !q.Captured {
			continue
		}
		captured++
		sumD += q.Diversity
		if q.Diversity < minD {
			minD = q.Diversity
		}
		if q.Diversity > maxD {
			maxD = q.Diversity
		}
		buckets[diversityDecile(q.Diversity)]++
	}

	fmt.Printf("seeds: %d total, %d with a captured diversity sidecar\n", total, captured)
	if captured == 0 {
		fmt.Println("no captured sidecars to summarize")
		return nil
	}
	fmt.Printf("diversity: min=%.4f max=%.4f mean=%.4f\n", minD, maxD, sumD/float64(captured))

	fmt.Println("distribution (decile -> count):")
	for _, decile := range sortedKeys(buckets) {
		fmt.Printf("  [%.1f, %.1f) %d\n", float64(decile)/10, float64(decile+1)/10, buckets[decile])
	}
	return nil
}

// diversityDecile buckets a [0,1] diversity score into one of ten
// deciles, clamping a diversity of exactly 1.0 into the last bucket.
func diversityDecile(d float64) int {
	dec := int(d * 10)
	if dec > 9 {
		dec = 9
	}
	if dec < 0 {
		dec = 0
	}
	return dec
}

func sortedKeys(m map[int]int) []int {
	keys := maps.Keys(m)
	sort.Ints(keys)
	return keys
}
