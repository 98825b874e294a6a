package realign

import (
	"errors"
	"fmt"
)

// ErrBounds is returned when a scorer index falls outside the allocated
// matrix. It means the caller mixed up sequence lengths, so the whole
// alignment call is abandoned rather than clamped.
var ErrBounds = errors.New("cell index outside score matrix")

// scoreMatrix is an (m+1)x(n+1) local-alignment grid kept in one flat
// buffer, indexed row*cols+col. The extra row and column stay zero so an
// alignment can begin anywhere without penalty.
type scoreMatrix struct {
	rows int
	cols int
	cell []int
}

func newScoreMatrix(rows, cols int) *scoreMatrix {
	return &scoreMatrix{
		rows: rows,
		cols: cols,
		cell: make([]int, rows*cols),
	}
}

// at is the bounds-checked accessor into the flat buffer.
func (m *scoreMatrix) at(i, j int) (int, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrBounds, i, j, m.rows, m.cols)
	}
	return m.cell[i*m.cols+j], nil
}

// fillCell scores cell (i, j) from its diagonal, up, and left neighbors.
// A match or mismatch extends the diagonal, a gap extends up or left, and
// the score is floored at zero so no cell ever goes negative.
func (m *scoreMatrix) fillCell(i, j int, seq1, seq2 string, s Scoring) error {
	if i < 1 || i >= m.rows || j < 1 || j >= m.cols {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrBounds, i, j, m.rows, m.cols)
	}

	similarity := s.Mismatch
	if seq1[i-1] == seq2[j-1] {
		similarity = s.Match
	}

	best := 0
	if diag := m.cell[(i-1)*m.cols+j-1] + similarity; diag > best {
		best = diag
	}
	if up := m.cell[(i-1)*m.cols+j] + s.Gap; up > best {
		best = up
	}
	if left := m.cell[i*m.cols+j-1] + s.Gap; left > best {
		best = left
	}
	m.cell[i*m.cols+j] = best
	return nil
}

// build fills the interior of the grid in row-major order, which visits every
// cell after its three neighbors, and tracks the first-seen maximal cell.
// A grid with no positive cell reports row -1 and score 0: the sequences
// share no alignable substring, a normal result rather than an error.
func (m *scoreMatrix) build(seq1, seq2 string, s Scoring) (maxRow, maxScore int, err error) {
	maxRow = -1
	for i := 1; i < m.rows; i++ {
		for j := 1; j < m.cols; j++ {
			if err = m.fillCell(i, j, seq1, seq2, s); err != nil {
				return 0, 0, err
			}
			if v := m.cell[i*m.cols+j]; v > maxScore {
				maxScore = v
				maxRow = i
			}
		}
	}
	return maxRow, maxScore, nil
}
