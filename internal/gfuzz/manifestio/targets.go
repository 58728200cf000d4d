// Package manifestio reads and writes the three text files exchanged
// between build time and run time (spec.md §6.3): the targets file, the
// key-variable manifest, and the optional variable-ID mapping debug file.
package manifestio

import (
	"bufio"
	"io"
	"strings"
)

// ReadTargets parses the targets file: UTF-8, one fully qualified
// function name per line, blank lines ignored (spec.md §6.3).
func ReadTargets(r io.Reader) ([]string, error) {
	var targets []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		targets = append(targets, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return targets, nil
}

// WriteTargets writes the targets file format, one name per line.
func WriteTargets(w io.Writer, targets []string) error {
	bw := bufio.NewWriter(w)
	for _, t := range targets {
		if _, err := bw.WriteString(t + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
