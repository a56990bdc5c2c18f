package accessibility

// UpperBound is the "infinite" ED sentinel: a value well above any
// plausible sum of realistic accessibility energies, expressed as a scaled
// integer (dcal, i.e. kcal/mol * 100) so that saturated addition never
// silently wraps. Ported from IntaRNA's ED_UPPER_BOUND convention.
const UpperBound int = 1 << 29

// addSaturated adds two energies, clamping to UpperBound instead of
// overflowing or producing a misleadingly finite sum once either operand is
// already "infinite" (§9 "Infinity sentinel"). Nothing in this module calls
// it at present; the predictors add loop and ED energies with plain +.
func addSaturated(values ...int) int {
	sum := 0
	for _, v := range values {
		if v >= UpperBound {
			return UpperBound
		}
		sum += v
		if sum >= UpperBound {
			return UpperBound
		}
	}
	return sum
}

// Table is a banded upper-triangular store for ED(i,j), 0<=i<=j<N,
// j-i+1<=maxLength. Memory is proportional to N*maxLength rather than N^2,
// per §9 "Banded ED storage". Cells outside the band are UpperBound.
type Table struct {
	n         int
	maxLength int
	// cells[i][w] holds ED(i, i+w) for w in [0, maxLength-1], provided
	// i+w < n. This lays the inner (most rapidly varying, per §9
	// "Hot-path layout") dimension out as the window width rather than the
	// absolute end index, so a fixed-width query is a single slice index.
	cells [][]int
}

// NewTable allocates a Table for a sequence of length n with the given
// band width. All in-band cells start at 0 (the caller fills them).
func NewTable(n, maxLength int) *Table {
	if maxLength > n {
		maxLength = n
	}
	if maxLength < 0 {
		maxLength = 0
	}
	cells := make([][]int, n)
	for i := range cells {
		width := maxLength
		if i+width > n {
			width = n - i
		}
		cells[i] = make([]int, width)
	}
	return &Table{n: n, maxLength: maxLength, cells: cells}
}

// MaxLength returns the band width this table was constructed (or,
// for a stream-loaded table narrower than requested, silently lowered) to.
func (t *Table) MaxLength() int { return t.maxLength }

// Len returns the sequence length N this table was sized for.
func (t *Table) Len() int { return t.n }

// Get returns ED(i,j), or UpperBound if the span exceeds maxLength.
func (t *Table) Get(i, j int) int {
	if i < 0 || j >= t.n || i > j {
		return UpperBound
	}
	w := j - i
	if w >= t.maxLength {
		return UpperBound
	}
	return t.cells[i][w]
}

// Set stores ED(i,j); it is the caller's responsibility to only set cells
// within the band (0<=j-i<maxLength).
func (t *Table) Set(i, j, value int) {
	w := j - i
	if i < 0 || j >= t.n || w < 0 || w >= t.maxLength {
		return
	}
	t.cells[i][w] = value
}
