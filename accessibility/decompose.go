package accessibility

import "github.com/BackofenLab/intarnago/rnasequence"

// DecomposeByMaxED splits the full sequence range of acc into consecutive,
// non-overlapping sub-ranges no longer than maxRangeLength, by repeatedly
// locating the winSize-wide window of highest ED within an over-long range
// and cutting there, discarding whichever side of the cut is shorter than
// minRangeLength. Ported from Accessibility::decomposeByMaxED(maxRangeLength,
// winSize, minRangeLength) in Accessibility.cpp.
//
// Open question resolved: when the highest-ED window sits flush with the
// range's start, the *leading* window is pruned away (the range's From
// advances past it) rather than the trailing one — this matches the
// source exactly and is asymmetric under reversal of the input range; callers
// that need symmetry should decompose both a range and its reverse and take
// the tighter result.
func DecomposeByMaxED(acc Accessibility, maxRangeLength, winSize, minRangeLength int) []rnasequence.IndexRange {
	n := acc.Sequence().Len()
	if n == 0 {
		return nil
	}
	ranges := []rnasequence.IndexRange{{From: 0, To: n - 1}}

	for rIdx := 0; rIdx < len(ranges); {
		cur := ranges[rIdx]

		if cur.To-cur.From+1 < minRangeLength {
			ranges = append(ranges[:rIdx], ranges[rIdx+1:]...)
			continue
		}

		if cur.To-cur.From < maxRangeLength {
			rIdx++
			continue
		}

		minIdx := cur.From
		maxIdx := cur.To - winSize + 1
		maxEdIdx := cur.From
		maxEd := acc.ED(maxEdIdx, maxEdIdx+winSize-1)
		for i := minIdx; i <= maxIdx; i++ {
			if ed := acc.ED(i, i+winSize-1); ed > maxEd {
				maxEdIdx = i
				maxEd = ed
			}
		}

		switch {
		case maxEdIdx == cur.From:
			cur.From = minInt(maxEdIdx+winSize, cur.To)
			ranges[rIdx] = cur
		case maxEdIdx >= maxIdx:
			cur.To = maxInt(maxEdIdx-1, cur.From)
			ranges[rIdx] = cur
		case maxEdIdx-cur.From < minRangeLength:
			cur.From = minInt(maxEdIdx+winSize, cur.To)
			ranges[rIdx] = cur
		default:
			newRange := rnasequence.IndexRange{From: minInt(maxEdIdx+winSize, cur.To), To: cur.To}
			cur.To = maxInt(maxEdIdx-1, cur.From)
			ranges[rIdx] = cur
			if newRange.To-newRange.From+1 >= minRangeLength {
				ranges = insertSorted(ranges, newRange)
			}
		}
	}

	return ranges
}

// insertSorted inserts r into the ascending, non-overlapping slice ranges,
// keeping it sorted by From.
func insertSorted(ranges []rnasequence.IndexRange, r rnasequence.IndexRange) []rnasequence.IndexRange {
	pos := len(ranges)
	for i, existing := range ranges {
		if r.From < existing.From {
			pos = i
			break
		}
	}
	ranges = append(ranges, rnasequence.IndexRange{})
	copy(ranges[pos+1:], ranges[pos:])
	ranges[pos] = r
	return ranges
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// DecomposeByMaxEDThreshold narrows each range in ranges down to the
// maximal sub-ranges whose ED stays at or below maxED, dropping any
// position (or whole range) whose own ED(i,i) already exceeds the
// threshold. Ported from Accessibility::decomposeByMaxED(ranges, maxED). If
// maxED is at or above UpperBound the input is returned unchanged, since an
// unconstrained ED ceiling selects everything anyway.
func DecomposeByMaxEDThreshold(acc Accessibility, ranges []rnasequence.IndexRange, maxED int) []rnasequence.IndexRange {
	if maxED >= UpperBound {
		return ranges
	}

	var out []rnasequence.IndexRange
	for _, r := range ranges {
		lastStart := r.To + 1
		for i := r.From; i <= r.To; i++ {
			ed := acc.ED(i, i)
			if ed >= UpperBound || ed > maxED {
				if lastStart < i {
					out = append(out, rnasequence.IndexRange{From: lastStart, To: i - 1})
				}
				lastStart = r.To + 1
			} else if lastStart > i {
				lastStart = i
			}
		}
		if lastStart <= r.To {
			out = append(out, rnasequence.IndexRange{From: lastStart, To: r.To})
		}
	}
	return out
}
