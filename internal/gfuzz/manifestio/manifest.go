package manifestio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gfuzz-project/gfuzz/internal/gfuzz/config"
	"github.com/gfuzz-project/gfuzz/internal/gfuzz/gfuzzlog"
	"github.com/gfuzz-project/gfuzz/internal/gfuzz/keyvars"
)

// WriteManifest writes the key-variable manifest: one entry per line,
// "function,variable,distance,type" (spec.md §6.3). VarIDs are not part
// of the on-disk format — they are the record's position when the
// manifest is re-read by ReadManifest, matching the teacher's and
// spec.md's convention that VarID assignment is a property of load order,
// not a stored field.
func WriteManifest(w io.Writer, vars []keyvars.KeyVariable) error {
	bw := bufio.NewWriter(w)
	for _, v := range vars {
		line := fmt.Sprintf("%s,%s,%d,%s\n", v.Function, v.Name, v.Distance, v.Type)
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadManifest parses a key-variable manifest. A malformed line is
// skipped with a warning rather than failing the whole read (spec.md §7,
// error kind 5); VarIDs are assigned densely in file order, since the
// manifest is expected to already be VarID-sorted by the identifier that
// produced it.
func ReadManifest(r io.Reader) ([]keyvars.KeyVariable, error) {
	var vars []keyvars.KeyVariable
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 4 {
			gfuzzlog.Warn("manifestio: malformed manifest line, skipping", "line", lineNo, "text", line)
			continue
		}
		distance, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil {
			gfuzzlog.Warn("manifestio: malformed distance, skipping", "line", lineNo, "text", line)
			continue
		}
		varType, err := config.ParseVarType(strings.TrimSpace(fields[3]))
		if err != nil {
			gfuzzlog.Warn("manifestio: malformed type tag, skipping", "line", lineNo, "text", line)
			continue
		}
		vars = append(vars, keyvars.KeyVariable{
			VarID:    len(vars),
			Function: strings.TrimSpace(fields[0]),
			Name:     strings.TrimSpace(fields[1]),
			Distance: distance,
			Type:     varType,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return vars, nil
}

// WriteVarIDMapping writes the optional "id,function::name" debug file
// (spec.md §6.3) for post-mortem debugging of an instrumented binary.
func WriteVarIDMapping(w io.Writer, vars []keyvars.KeyVariable) error {
	bw := bufio.NewWriter(w)
	for _, v := range vars {
		line := fmt.Sprintf("%d,%s::%s\n", v.VarID, v.Function, v.Name)
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
