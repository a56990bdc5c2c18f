// Package accessibility computes and stores ED(i,j), the energetic cost of
// keeping a sub-range of a molecule unpaired within itself, via several
// interchangeable strategies, plus the per-position structural constraints
// that feed into it.
package accessibility

import (
	"fmt"
	"strings"

	"github.com/BackofenLab/intarnago/rnasequence"
)

// Dot-bracket-like markers for per-position constraints, ported from
// AccessibilityConstraint's dotBracket_* constants.
const (
	MarkerUnconstrained byte = '.'
	MarkerBlocked       byte = 'b'
	MarkerAccessible    byte = 'x'
	MarkerPaired        byte = 'p'
)

// Constraint holds the three disjoint per-position region lists that can be
// attached to a sequence: positions blocked from taking part in an
// interaction (Blocked), positions forced open (Accessible), and positions
// already known to be paired within the molecule (Paired). A position not
// covered by any of the three is unconstrained.
type Constraint struct {
	Length     int
	MaxBpSpan  int
	Blocked    rnasequence.IndexRangeList
	Accessible rnasequence.IndexRangeList
	Paired     rnasequence.IndexRangeList
}

// NewConstraint builds an empty constraint over a sequence of the given
// length. maxBpSpan of 0 defaults to length, matching the C++ constructor.
func NewConstraint(length, maxBpSpan int) Constraint {
	if maxBpSpan <= 0 || maxBpSpan > length {
		maxBpSpan = length
	}
	return Constraint{Length: length, MaxBpSpan: maxBpSpan}
}

// IsBlocked reports whether position i is marked blocked.
func (c Constraint) IsBlocked(i int) bool { return c.Blocked.Covers(i) }

// IsAccessible reports whether position i is explicitly marked accessible.
func (c Constraint) IsAccessible(i int) bool { return c.Accessible.Covers(i) }

// IsPaired reports whether position i is marked as already paired.
func (c Constraint) IsPaired(i int) bool { return c.Paired.Covers(i) }

// IsUnconstrained reports that none of the three lists cover i.
func (c Constraint) IsUnconstrained(i int) bool {
	return !c.IsBlocked(i) && !c.IsAccessible(i) && !c.IsPaired(i)
}

// IsEmpty reports that no constraint has been set at all.
func (c Constraint) IsEmpty() bool {
	return c.Blocked.Len() == 0 && c.Accessible.Len() == 0 && c.Paired.Len() == 0
}

// ParseDotBracket parses a length-N string over {. b x p} into a
// Constraint, ported from AccessibilityConstraint's screenDotBracket scan.
func ParseDotBracket(dotBracket string, maxBpSpan int) (Constraint, error) {
	n := len(dotBracket)
	c := NewConstraint(n, maxBpSpan)
	for _, pair := range []struct {
		marker  byte
		storage *rnasequence.IndexRangeList
	}{
		{MarkerBlocked, &c.Blocked},
		{MarkerAccessible, &c.Accessible},
		{MarkerPaired, &c.Paired},
	} {
		if err := screenDotBracket(dotBracket, pair.marker, pair.storage); err != nil {
			return Constraint{}, err
		}
	}
	return c, nil
}

func screenDotBracket(s string, marker byte, storage *rnasequence.IndexRangeList) error {
	start := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case marker:
			if start == -1 {
				start = i
			}
		case MarkerUnconstrained, MarkerBlocked, MarkerAccessible, MarkerPaired:
			if start != -1 {
				if err := storage.Insert(rnasequence.IndexRange{From: start, To: i - 1}); err != nil {
					return err
				}
				start = -1
			}
		default:
			return fmt.Errorf("%w: ParseDotBracket: unexpected symbol %q at position %d", rnasequence.ErrBadInput, s[i], i)
		}
	}
	if start != -1 {
		if err := storage.Insert(rnasequence.IndexRange{From: start, To: len(s) - 1}); err != nil {
			return err
		}
	}
	return nil
}

// ParseRegionList parses a comma-separated region-list encoding
// "m:from-to,from-to,...;m:from-to,..." where m is one of {b,x,p} and
// boundaries are 1-based inclusive, ported from AccessibilityConstraint's
// region-encoding branch. length is the sequence length (needed to shift
// 1-based input indices down to 0-based internal ones).
func ParseRegionList(s string, length, maxBpSpan int) (Constraint, error) {
	c := NewConstraint(length, maxBpSpan)
	if strings.TrimSpace(s) == "" {
		return c, nil
	}
	for _, segment := range strings.Split(s, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		colon := strings.IndexByte(segment, ':')
		if colon != 1 {
			return Constraint{}, fmt.Errorf("%w: ParseRegionList: segment %q does not start with m:", rnasequence.ErrBadInput, segment)
		}
		marker := segment[0]
		ranges, err := rnasequence.FromString(segment[colon+1:])
		if err != nil {
			return Constraint{}, err
		}
		if ranges.Len() > 0 && ranges.At(0).From == 0 {
			return Constraint{}, fmt.Errorf("%w: ParseRegionList: lowest allowed index in region encoding is 1", rnasequence.ErrBadInput)
		}
		shifted := ranges.Shift(-1, length-1)
		var target *rnasequence.IndexRangeList
		switch marker {
		case MarkerAccessible:
			target = &c.Accessible
		case MarkerBlocked:
			target = &c.Blocked
		case MarkerPaired:
			target = &c.Paired
		default:
			return Constraint{}, fmt.Errorf("%w: ParseRegionList: unexpected constraint marker %q", rnasequence.ErrBadInput, marker)
		}
		for _, r := range shifted.All() {
			if err := target.Insert(r); err != nil {
				return Constraint{}, err
			}
		}
	}
	return c, nil
}
