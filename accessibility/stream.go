package accessibility

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/BackofenLab/intarnago/rnasequence"
)

// StreamFormat selects how FromStream interprets the numeric matrix that
// follows the RNAplfold-style header, ported from AccessibilityFromStream's
// InStreamType.
type StreamFormat int

const (
	// FormatUnpairedProbabilities reads RNAplfold's "unpaired probability"
	// matrix and converts p -> ED = -RT*ln(p) per cell.
	FormatUnpairedProbabilities StreamFormat = iota
	// FormatAccessibilityEnergies reads values already expressed in
	// kcal/mol and uses them as ED directly.
	FormatAccessibilityEnergies
)

var (
	commentHeaderRe = regexp.MustCompile(`^#[\w\s]*$`)
	lengthHeaderRe  = regexp.MustCompile(`^\s*#i.\s+l=1(\s+\d+)*\s*$`)
)

// FromStream reads a precomputed ED table from r, in the two-line-header
// RNAplfold matrix format IntaRNA's --accAccessibility option accepts:
//
//	#unpaired probabilities
//	 #i$	l=1	2	3	...
//	j	p(j,j)	p(j-1,j)	p(j-2,j)	...
//
// Row j (1-based, the window's right end) lists values for windows ending
// at j with decreasing left end, NA once the window would extend before
// position 1. If r's first two bytes are a gzip magic number the stream is
// transparently decompressed first, mirroring IntaRNA's own use of a gzip
// filter over accessibility streams.
func FromStream(r io.Reader, seq rnasequence.Sequence, maxLength int, format StreamFormat, rt float64) (*FromTable, error) {
	br := bufio.NewReader(r)
	peek, err := br.Peek(2)
	if err == nil && len(peek) == 2 && peek[0] == 0x1f && peek[1] == 0x8b {
		gz, gzErr := gzip.NewReader(br)
		if gzErr != nil {
			return nil, fmt.Errorf("%w: FromStream: gzip header: %v", rnasequence.ErrBadInput, gzErr)
		}
		defer gz.Close()
		br = bufio.NewReader(gz)
	}

	scanner := bufio.NewScanner(br)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: FromStream: nothing readable", rnasequence.ErrBadInput)
	}
	if !commentHeaderRe.MatchString(scanner.Text()) {
		return nil, fmt.Errorf("%w: FromStream: first line is not a '#'-prefixed header", rnasequence.ErrBadInput)
	}

	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: FromStream: length header (2nd line) not found", rnasequence.ErrBadInput)
	}
	lengthLine := scanner.Text()
	if !lengthHeaderRe.MatchString(lengthLine) {
		return nil, fmt.Errorf("%w: FromStream: second line is no proper lengths header", rnasequence.ErrBadInput)
	}
	fields := strings.Fields(lengthLine)
	maxAvail, err := strconv.Atoi(strings.TrimSuffix(fields[len(fields)-1], "\t"))
	if err != nil {
		return nil, fmt.Errorf("%w: FromStream: malformed lengths header %q", rnasequence.ErrBadInput, lengthLine)
	}
	if maxAvail < maxLength {
		maxLength = maxAvail
	}

	n := seq.Len()
	table := NewTable(n, maxLength)

	lastJ := 0
	for scanner.Scan() {
		row := strings.Fields(scanner.Text())
		if len(row) == 0 {
			continue
		}
		j, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("%w: FromStream: expected integer row index, got %q", rnasequence.ErrBadInput, row[0])
		}
		if j != lastJ+1 {
			return nil, fmt.Errorf("%w: FromStream: non-consecutive line j=%d follows %d", rnasequence.ErrBadInput, j, lastJ)
		}
		if j > n {
			break
		}
		minI := j - minInt(j, maxLength)
		values := row[1:]
		idx := 0
		for i := j; i > minI; i-- {
			if idx >= len(values) {
				return nil, fmt.Errorf("%w: FromStream: line j=%d: missing value for i=%d", rnasequence.ErrBadInput, j, i)
			}
			tok := values[idx]
			idx++
			if tok == "NA" {
				table.Set(i-1, j-1, UpperBound)
				continue
			}
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: FromStream: line j=%d: malformed value %q", rnasequence.ErrBadInput, j, tok)
			}
			var ed int
			switch format {
			case FormatUnpairedProbabilities:
				if v < 0.0 || v > 1.0 {
					return nil, fmt.Errorf("%w: FromStream: line j=%d: %v is not a probability in [0,1]", rnasequence.ErrBadInput, j, v)
				}
				if v > 0 {
					ed = minInt(UpperBound, int(math.Round(-rt*math.Log(v)*100)))
				} else {
					ed = UpperBound
				}
			case FormatAccessibilityEnergies:
				if v < 0.0 {
					return nil, fmt.Errorf("%w: FromStream: line j=%d: %v is not a valid ED value >= 0", rnasequence.ErrBadInput, j, v)
				}
				ed = minInt(UpperBound, int(v*100))
			}
			table.Set(i-1, j-1, ed)
		}
		lastJ = j
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("FromStream: %w", err)
	}
	if lastJ < n {
		return nil, fmt.Errorf("%w: FromStream: only %d of %d expected lines parsed", rnasequence.ErrBadInput, lastJ, n)
	}

	return NewFromTable(seq, table, NewConstraint(n, 0)), nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
