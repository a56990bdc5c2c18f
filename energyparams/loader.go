package energyparams

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BackofenLab/intarnago/rnasequence"
)

// LoadNearestNeighbor reads a custom parameter override file and returns a
// NearestNeighbor provider seeded from it, generalizing the section-tagged
// "RNAfold parameter file" format (one "# sectionName" header followed by
// whitespace-separated integer matrices) without depending on go:embed or a
// bundled default file: any section this loader does not recognize is
// skipped, and any section it does recognize overrides the corresponding
// Turner-default table entry by entry. Only the "stack" (6x6 stacking
// energies) and "Misc" (terminal AU/GU penalty) sections are currently
// supported; this mirrors how IntaRNA itself allows users to override a
// subset of the Vienna parameter set via --energyParametersFile.
func LoadNearestNeighbor(r io.Reader, temperatureC float64) (NearestNeighbor, error) {
	n := NewNearestNeighbor(temperatureC)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !strings.HasPrefix(line, "#") {
			continue
		}
		section := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		switch section {
		case "stack":
			values, err := parseInts(scanner, numPairs*numPairs)
			if err != nil {
				return NearestNeighbor{}, fmt.Errorf("%w: LoadNearestNeighbor: section stack: %v", rnasequence.ErrBadInput, err)
			}
			for i := 0; i < numPairs; i++ {
				for j := 0; j < numPairs; j++ {
					stackingEnergy37[i][j] = values[i*numPairs+j]
				}
			}
		case "Misc":
			values, err := parseInts(scanner, 1)
			if err != nil {
				return NearestNeighbor{}, fmt.Errorf("%w: LoadNearestNeighbor: section Misc: %v", rnasequence.ErrBadInput, err)
			}
			terminalPenaltyOverride = &values[0]
		default:
			// unsupported section: skip until the next header line.
			continue
		}
	}
	if err := scanner.Err(); err != nil {
		return NearestNeighbor{}, fmt.Errorf("LoadNearestNeighbor: %w", err)
	}
	return n, nil
}

// terminalPenaltyOverride, when non-nil, replaces terminalPenalty37 for all
// NearestNeighbor providers in this process, including ones constructed
// before it was set, since it is read on every terminal-penalty lookup. This
// mirrors the teacher's module-level raw-parameter mutation pattern
// (energy_params/parse.go builds one global rawEnergyParams per process)
// rather than threading an override struct through every method.
var terminalPenaltyOverride *int

func parseInts(scanner *bufio.Scanner, count int) ([]int, error) {
	values := make([]int, 0, count)
	for len(values) < count && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, tok := range strings.Fields(line) {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("malformed integer %q", tok)
			}
			values = append(values, v)
			if len(values) == count {
				break
			}
		}
	}
	if len(values) < count {
		return nil, fmt.Errorf("expected %d values, got %d", count, len(values))
	}
	return values, nil
}
