package keyvars

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gfuzz-project/gfuzz/internal/gfuzz/config"
)

// ParseProgram reads the Go-native stand-in for the "whole-program
// representation" spec.md §4.2 takes as an opaque static-analysis
// input: one candidate storage location per line, comma-separated:
//
//	function,name,type,parameter,global,uses
//
// where type is ptr/int/other, parameter/global are true/false, and
// uses is a semicolon-separated list of load/store/ptrarith/other or
// callarg:<callee>. Blank lines and lines starting with '#' are
// ignored, matching callgraph.Parse's convention.
func ParseProgram(r io.Reader) (*Program, error) {
	prog := NewProgram()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 6 {
			return nil, fmt.Errorf("keyvars:%d: expected 6 comma-separated fields, got %d in %q", lineNo, len(fields), line)
		}
		varType, err := config.ParseVarType(strings.TrimSpace(fields[2]))
		if err != nil {
			return nil, fmt.Errorf("keyvars:%d: %w", lineNo, err)
		}
		uses, err := parseUses(fields[5])
		if err != nil {
			return nil, fmt.Errorf("keyvars:%d: %w", lineNo, err)
		}
		prog.AddCandidate(Candidate{
			Function:  strings.TrimSpace(fields[0]),
			Name:      strings.TrimSpace(fields[1]),
			Type:      varType,
			Parameter: strings.TrimSpace(fields[3]) == "true",
			Global:    strings.TrimSpace(fields[4]) == "true",
			Uses:      uses,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}
	return prog, nil
}

func parseUses(field string) ([]Use, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return nil, nil
	}
	var uses []Use
	for _, tok := range strings.Split(field, ";") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if callee, ok := strings.CutPrefix(tok, "callarg:"); ok {
			uses = append(uses, Use{Kind: UseCallArg, CalleeName: callee})
			continue
		}
		switch tok {
		case "load":
			uses = append(uses, Use{Kind: UseLoad})
		case "store":
			uses = append(uses, Use{Kind: UseStore})
		case "ptrarith":
			uses = append(uses, Use{Kind: UsePointerArith})
		case "other":
			uses = append(uses, Use{Kind: UseOther})
		default:
			return nil, fmt.Errorf("unknown use kind %q", tok)
		}
	}
	return uses, nil
}
