package rnasequence

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadFasta reads the first FASTA record from r into a Sequence, the
// minimal single-record reader cmd/intarnago needs to turn a "-q"/"-t"
// file flag into a Sequence the way poly/commands.go's fileParser turns a
// file flag into a poly.Sequence.
func ReadFasta(r io.Reader) (Sequence, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var id string
	var seq strings.Builder
	seenHeader := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if seenHeader {
				break
			}
			id = strings.TrimSpace(strings.TrimPrefix(line, ">"))
			seenHeader = true
			continue
		}
		seq.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return Sequence{}, fmt.Errorf("%w: reading FASTA: %v", ErrBadInput, err)
	}
	if !seenHeader {
		return Sequence{}, fmt.Errorf("%w: no FASTA record found (missing '>' header)", ErrBadInput)
	}
	return NewSequence(id, seq.String())
}
