package integration

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/gfuzz-project/gfuzz/internal/gfuzz/diversity"
)

// sidecarMagic tags the fixed-size binary sidecar format so a truncated
// or foreign file is rejected outright rather than silently
// misinterpreted.
const sidecarMagic = 0x67667A31 // "gfz1"

// SidecarPath returns the sidecar file path for a seed file, per
// spec.md §9's resolved Open Question (option (a): "serialize snapshots
// beside seeds"): `<seed>.gfuzz-state`.
func SidecarPath(seedPath string) string {
	return seedPath + ".gfuzz-state"
}

// WriteSidecar serializes q's snapshot to path, following the same
// "write a debug/restore artifact beside the thing it describes"
// pattern the teacher uses for ExportStateJSON, but as a fixed binary
// layout (uint32 magic, ValidCount, TotalVars and slot count, float64
// Diversity, then one uint32 per slot; all little-endian, and only
// captured entries are written) rather than JSON, since the payload is already a
// flat numeric array and no human ever edits it by hand.
func WriteSidecar(path string, q *QueueEntry) error {
	if q == nil || !q.Captured {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("integration: creating sidecar %q: %w", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	header := []uint32{
		sidecarMagic,
		uint32(q.Snapshot.ValidCount),
		uint32(q.Snapshot.TotalVars),
		uint32(len(q.Snapshot.States)),
	}
	for _, v := range header {
		if err := binary.Write(bw, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("integration: writing sidecar header %q: %w", path, err)
		}
	}
	if err := binary.Write(bw, binary.LittleEndian, q.Diversity); err != nil {
		return fmt.Errorf("integration: writing sidecar diversity %q: %w", path, err)
	}
	if err := binary.Write(bw, binary.LittleEndian, q.Snapshot.States); err != nil {
		return fmt.Errorf("integration: writing sidecar states %q: %w", path, err)
	}
	return bw.Flush()
}

// ReadSidecar restores a QueueEntry from a file written by WriteSidecar.
// A missing sidecar is not an error: it means the entry was never
// captured (or predates this format), and the caller gets an
// uncaptured, inert QueueEntry to treat like any fresh one.
func ReadSidecar(path string) (*QueueEntry, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return &QueueEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("integration: opening sidecar %q: %w", path, err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	var header [4]uint32
	for i := range header {
		if err := binary.Read(br, binary.LittleEndian, &header[i]); err != nil {
			return nil, fmt.Errorf("integration: reading sidecar header %q: %w", path, err)
		}
	}
	if header[0] != sidecarMagic {
		return nil, fmt.Errorf("integration: sidecar %q has wrong magic 0x%08X", path, header[0])
	}

	var diversityScore float64
	if err := binary.Read(br, binary.LittleEndian, &diversityScore); err != nil {
		return nil, fmt.Errorf("integration: reading sidecar diversity %q: %w", path, err)
	}

	states := make([]uint32, header[3])
	if err := binary.Read(br, binary.LittleEndian, states); err != nil {
		return nil, fmt.Errorf("integration: reading sidecar states %q: %w", path, err)
	}

	return &QueueEntry{
		Snapshot: diversity.Snapshot{
			States:     states,
			ValidCount: int(header[1]),
			TotalVars:  int(header[2]),
		},
		Captured:  true,
		Diversity: diversityScore,
	}, nil
}
