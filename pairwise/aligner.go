package pairwise

import (
	"github.com/go-bio/bioalign/align"
)

// DefaultAlignerCapacity is the (m, n) size a PairwiseAligner is
// pre-sized to when NewAligner is called without explicit capacity
// hints.
const DefaultAlignerCapacity = 200

// trace tags the predecessor a DP cell was reached from. The same small
// tag set is reused across the M, I and D bands; which tags are legal
// for a given band is fixed by the recurrence (see fill).
type trace byte

const (
	tbStop   trace = iota // boundary cell, no predecessor: traceback ends here
	tbDiagM               // M's predecessor diagonal cell was also M
	tbDiagI               // M's predecessor diagonal cell was I
	tbDiagD               // M's predecessor diagonal cell was D
	tbOpen                // I/D: predecessor is M one row/column back
	tbExtend              // I/D: predecessor is the same band one row/column back
	tbBandI               // M at a boundary cell holds the I band's value: switch bands in place
	tbBandD               // M at a boundary cell holds the D band's value: switch bands in place
	tbXclip               // M at column 0: reached by clipping i symbols of x
	tbYclip               // M at row 0: reached by clipping j symbols of y
)

// PairwiseAligner owns the three DP score bands and their traceback
// tables, sized lazily to (m+1)x(n+1) and reused across calls. It is not
// safe for concurrent use; callers wanting parallelism build one
// PairwiseAligner per worker goroutine.
type PairwiseAligner struct {
	scoring *align.Scoring

	rows, cols int // current buffer capacity, in cells (>= m+1, n+1)

	scoreM, scoreI, scoreD    [][]int
	traceMt, traceIt, traceDt [][]trace
}

// NewAligner builds a PairwiseAligner for scoring, pre-sizing its DP
// buffers to capacity[0] x capacity[1] rows/columns (1-based sequence
// lengths, so an x,y pair up to that length needs no reallocation).
// With no capacity given, DefaultAlignerCapacity is used for both axes.
func NewAligner(scoring *align.Scoring, capacity ...int) *PairwiseAligner {
	m, n := DefaultAlignerCapacity, DefaultAlignerCapacity
	if len(capacity) > 0 {
		m = capacity[0]
	}
	if len(capacity) > 1 {
		n = capacity[1]
	}
	a := &PairwiseAligner{scoring: scoring}
	a.ensure(m, n)
	return a
}

func alloc(rows, cols int) [][]int {
	buf := make([][]int, rows)
	for i := range buf {
		buf[i] = make([]int, cols)
	}
	return buf
}

func allocTrace(rows, cols int) [][]trace {
	buf := make([][]trace, rows)
	for i := range buf {
		buf[i] = make([]trace, cols)
	}
	return buf
}

// ensure grows the DP buffers so they can hold an (m+1)x(n+1) table,
// retaining previously allocated capacity: buffers grow monotonically
// and are never shrunk within an instance.
func (a *PairwiseAligner) ensure(m, n int) {
	rows, cols := m+1, n+1
	if rows <= a.rows && cols <= a.cols {
		return
	}
	if rows < a.rows {
		rows = a.rows
	}
	if cols < a.cols {
		cols = a.cols
	}
	a.rows, a.cols = rows, cols
	a.scoreM, a.scoreI, a.scoreD = alloc(rows, cols), alloc(rows, cols), alloc(rows, cols)
	a.traceMt, a.traceIt, a.traceDt = allocTrace(rows, cols), allocTrace(rows, cols), allocTrace(rows, cols)
}

// boundaryMode selects how the first row/column of the DP table is
// initialized and how the terminal cell is chosen.
type boundaryMode int

const (
	bGlobal boundaryMode = iota
	bSemiglobal
	bLocal
	bCustom
)

// terminalCell names where traceback begins: which band (M, I or D) and
// cell, the band's score there, and (custom mode only) a trailing
// Xclip/Yclip run to record before walking the interior path.
type terminalCell struct {
	i, j  int
	band  trace // tbDiagM, tbDiagI or tbDiagD: which band to start in
	score int
	clipX int
	clipY int
}

// fill runs the shared Gotoh recurrence over x, y for the given
// boundary rule, populating a's score and traceback bands.
func (a *PairwiseAligner) fill(x, y []byte, mode boundaryMode) {
	m, n := len(x), len(y)
	a.ensure(m, n)
	s := a.scoring
	sub := s.Substitution

	M, I, D := a.scoreM, a.scoreI, a.scoreD
	tM, tI, tD := a.traceMt, a.traceIt, a.traceDt

	negInf := align.MinScore

	M[0][0] = 0
	tM[0][0] = tbStop
	I[0][0] = negInf
	D[0][0] = negInf

	// Column 0: an I run of length i (or, in custom mode, an x-prefix
	// clip). The M band at (i,0) mirrors whichever entry is better so
	// the diagonal recurrence at (i+1,1) sees it; tbBandI/tbXclip record
	// which it was.
	for i := 1; i <= m; i++ {
		affine := s.GapOpen + i*s.GapExtend
		if i == 1 {
			tI[i][0] = tbOpen
		} else {
			tI[i][0] = tbExtend
		}
		switch mode {
		case bGlobal, bSemiglobal:
			M[i][0], I[i][0] = affine, affine
			tM[i][0] = tbBandI
		case bLocal:
			M[i][0], I[i][0] = 0, 0
			tM[i][0], tI[i][0] = tbStop, tbStop
		case bCustom:
			I[i][0] = affine
			if s.XclipPrefix > affine {
				M[i][0], tM[i][0] = s.XclipPrefix, tbXclip
			} else {
				M[i][0], tM[i][0] = affine, tbBandI
			}
		}
		D[i][0] = negInf
	}

	// Row 0: a D run of length j, free in semiglobal/local mode, or a
	// y-prefix clip in custom mode.
	for j := 1; j <= n; j++ {
		affine := s.GapOpen + j*s.GapExtend
		if j == 1 {
			tD[0][j] = tbOpen
		} else {
			tD[0][j] = tbExtend
		}
		switch mode {
		case bGlobal:
			M[0][j], D[0][j] = affine, affine
			tM[0][j] = tbBandD
		case bSemiglobal, bLocal:
			M[0][j], D[0][j] = 0, negInf
			tM[0][j], tD[0][j] = tbStop, tbStop
		case bCustom:
			D[0][j] = affine
			if s.YclipPrefix > affine {
				M[0][j], tM[0][j] = s.YclipPrefix, tbYclip
			} else {
				M[0][j], tM[0][j] = affine, tbBandD
			}
		}
		I[0][j] = negInf
	}

	floor := mode == bLocal

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			// Ties between opening a fresh gap and extending the current
			// one prefer extend, keeping a single gap run contiguous.
			openI := M[i-1][j] + s.GapOpen + s.GapExtend
			extI := I[i-1][j] + s.GapExtend
			if extI >= openI {
				I[i][j], tI[i][j] = extI, tbExtend
			} else {
				I[i][j], tI[i][j] = openI, tbOpen
			}
			if floor && I[i][j] < 0 {
				I[i][j], tI[i][j] = 0, tbStop
			}

			openD := M[i][j-1] + s.GapOpen + s.GapExtend
			extD := D[i][j-1] + s.GapExtend
			if extD >= openD {
				D[i][j], tD[i][j] = extD, tbExtend
			} else {
				D[i][j], tD[i][j] = openD, tbOpen
			}
			if floor && D[i][j] < 0 {
				D[i][j], tD[i][j] = 0, tbStop
			}

			// Three-way tie-break for which band M continues from:
			// Match/Subst run (diagM) first, then Del (diagD), then Ins
			// (diagI). Checking gaps strictly-greater is what left-aligns
			// equal-scoring indel runs.
			best, bestTb := M[i-1][j-1], tbDiagM
			if D[i-1][j-1] > best {
				best, bestTb = D[i-1][j-1], tbDiagD
			}
			if I[i-1][j-1] > best {
				best, bestTb = I[i-1][j-1], tbDiagI
			}
			score := best + sub(x[i-1], y[j-1])
			if floor && score < 0 {
				M[i][j], tM[i][j] = 0, tbStop
			} else {
				M[i][j], tM[i][j] = score, bestTb
			}
		}
	}
}

// bestBand compares the three band scores at one cell, tie-breaking
// M over D over I (Match/Subst over gaps, Del before Ins).
func bestBand(m, i, d int) (int, trace) {
	best, band := m, tbDiagM
	if d > best {
		best, band = d, tbDiagD
	}
	if i > best {
		best, band = i, tbDiagI
	}
	return best, band
}

// terminal picks the mode-specific terminal cell and band to begin
// traceback from, after fill has populated the DP bands.
func (a *PairwiseAligner) terminal(x, y []byte, mode boundaryMode) terminalCell {
	m, n := len(x), len(y)
	s := a.scoring

	switch mode {
	case bGlobal:
		score, band := bestBand(a.scoreM[m][n], a.scoreI[m][n], a.scoreD[m][n])
		return terminalCell{i: m, j: n, band: band, score: score}

	case bSemiglobal:
		// Argmax over the last row. The D band is excluded: a path
		// ending in Del is never better than stopping at the earlier
		// column and leaving the y suffix free.
		best := terminalCell{i: m, j: 0, band: tbDiagM, score: a.scoreM[m][0]}
		for j := 0; j <= n; j++ {
			if v := a.scoreM[m][j]; v > best.score {
				best = terminalCell{i: m, j: j, band: tbDiagM, score: v}
			}
			if v := a.scoreI[m][j]; v > best.score {
				best = terminalCell{i: m, j: j, band: tbDiagI, score: v}
			}
		}
		return best

	case bLocal:
		best := terminalCell{i: 0, j: 0, band: tbDiagM, score: 0}
		for i := 0; i <= m; i++ {
			for j := 0; j <= n; j++ {
				if v := a.scoreM[i][j]; v > best.score {
					best = terminalCell{i: i, j: j, band: tbDiagM, score: v}
				}
				if v := a.scoreD[i][j]; v > best.score {
					best = terminalCell{i: i, j: j, band: tbDiagD, score: v}
				}
				if v := a.scoreI[i][j]; v > best.score {
					best = terminalCell{i: i, j: j, band: tbDiagI, score: v}
				}
			}
		}
		return best

	default: // bCustom
		// Candidate exits: the plain terminal cell, a y-suffix clip
		// from anywhere on the last row, an x-suffix clip from
		// anywhere on the last column, or both suffix clips from an
		// interior cell. Ties keep the earlier candidate, so fewer
		// clip operations win.
		score, band := bestBand(a.scoreM[m][n], a.scoreI[m][n], a.scoreD[m][n])
		best := terminalCell{i: m, j: n, band: band, score: score}
		for j := 0; j < n; j++ {
			if v := a.scoreM[m][j] + s.YclipSuffix; v > best.score {
				best = terminalCell{i: m, j: j, band: tbDiagM, score: v, clipY: n - j}
			}
		}
		for i := 0; i < m; i++ {
			if v := a.scoreM[i][n] + s.XclipSuffix; v > best.score {
				best = terminalCell{i: i, j: n, band: tbDiagM, score: v, clipX: m - i}
			}
		}
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				if v := a.scoreM[i][j] + s.XclipSuffix + s.YclipSuffix; v > best.score {
					best = terminalCell{i: i, j: j, band: tbDiagM, score: v, clipX: m - i, clipY: n - j}
				}
			}
		}
		return best
	}
}

// traceback walks predecessors from term back to a tbStop/clip cell,
// emitting operations in reverse order, then reverses them into
// forward order.
func (a *PairwiseAligner) traceback(x, y []byte, term terminalCell) align.Alignment {
	var ops []align.Operation
	if term.clipX > 0 {
		ops = append(ops, align.Xclip(term.clipX))
	}
	if term.clipY > 0 {
		ops = append(ops, align.Yclip(term.clipY))
	}

	xEnd, yEnd := term.i, term.j
	i, j, state := term.i, term.j, term.band

walk:
	for {
		switch state {
		case tbDiagM:
			switch t := a.traceMt[i][j]; t {
			case tbStop, tbXclip, tbYclip:
				break walk
			case tbBandI:
				state = tbDiagI
			case tbBandD:
				state = tbDiagD
			default: // tbDiagM, tbDiagI, tbDiagD
				if x[i-1] == y[j-1] {
					ops = append(ops, align.Match())
				} else {
					ops = append(ops, align.Subst())
				}
				i, j = i-1, j-1
				state = t
			}

		case tbDiagI:
			pred := a.traceIt[i][j]
			if pred == tbStop {
				break walk
			}
			ops = append(ops, align.Ins())
			i--
			if pred == tbOpen {
				state = tbDiagM
			}

		case tbDiagD:
			pred := a.traceDt[i][j]
			if pred == tbStop {
				break walk
			}
			ops = append(ops, align.Del())
			j--
			if pred == tbOpen {
				state = tbDiagM
			}
		}
	}

	// A leading clip covers exactly the unconsumed prefix, so the
	// consuming portion still starts at (i, j): a leading Xclip(n)
	// satisfies n == XStart.
	xStart, yStart := i, j
	leadClipX, leadClipY := 0, 0
	switch a.traceMt[i][j] {
	case tbXclip:
		leadClipX = i
	case tbYclip:
		leadClipY = j
	}

	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}
	if leadClipX > 0 {
		ops = append([]align.Operation{align.Xclip(leadClipX)}, ops...)
	}
	if leadClipY > 0 {
		ops = append([]align.Operation{align.Yclip(leadClipY)}, ops...)
	}

	return align.Alignment{
		Score:      term.score,
		XStart:     xStart,
		YStart:     yStart,
		XEnd:       xEnd,
		YEnd:       yEnd,
		XLen:       len(x),
		YLen:       len(y),
		Operations: ops,
	}
}

func (a *PairwiseAligner) run(x, y []byte, mode boundaryMode) align.Alignment {
	a.fill(x, y, mode)
	term := a.terminal(x, y, mode)
	al := a.traceback(x, y, term)
	switch mode {
	case bGlobal:
		al.Mode = align.ModeGlobal
	case bSemiglobal:
		al.Mode = align.ModeSemiglobal
	case bLocal:
		al.Mode = align.ModeLocal
	case bCustom:
		al.Mode = align.ModeCustom
	}
	return al
}

// Global computes a Needleman-Wunsch global alignment: the full x
// aligned to the full y, no clipping.
func (a *PairwiseAligner) Global(x, y []byte) align.Alignment {
	return a.run(x, y, bGlobal)
}

// Semiglobal computes an alignment with free end-gaps on y only: the
// full x is aligned somewhere inside y, with the unaligned y prefix and
// suffix reported via YStart/YEnd rather than as Del operations.
func (a *PairwiseAligner) Semiglobal(x, y []byte) align.Alignment {
	return a.run(x, y, bSemiglobal)
}

// Local computes a Smith-Waterman best-scoring local alignment.
func (a *PairwiseAligner) Local(x, y []byte) align.Alignment {
	return a.run(x, y, bLocal)
}

// Custom computes a full Gotoh alignment honouring all four of the
// scoring's clip penalties; clips that are taken appear explicitly as
// Xclip/Yclip operations in the result.
func (a *PairwiseAligner) Custom(x, y []byte) align.Alignment {
	return a.run(x, y, bCustom)
}
