package realign

import (
	"errors"
	"testing"
)

var testScoring = Scoring{
	Match:     3,
	Mismatch:  -1,
	Gap:       -3,
	MatchFrac: 0.8,
}

func Test_fillCell_bounds(t *testing.T) {
	m := newScoreMatrix(5, 4)

	type args struct {
		i int
		j int
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{"interior cell", args{1, 1}, false},
		{"last cell", args{4, 3}, false},
		{"zero row is boundary", args{0, 1}, true},
		{"zero col is boundary", args{1, 0}, true},
		{"row past end", args{5, 1}, true},
		{"col past end", args{1, 4}, true},
		{"negative row", args{-1, 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := m.fillCell(tt.args.i, tt.args.j, "ACGT", "ACG", testScoring)
			if (err != nil) != tt.wantErr {
				t.Errorf("fillCell(%d, %d) error = %v, wantErr %v", tt.args.i, tt.args.j, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrBounds) {
				t.Errorf("fillCell(%d, %d) error = %v, want ErrBounds", tt.args.i, tt.args.j, err)
			}
		})
	}
}

func Test_at_bounds(t *testing.T) {
	m := newScoreMatrix(3, 3)

	if _, err := m.at(2, 2); err != nil {
		t.Errorf("at(2, 2) error = %v, want nil", err)
	}
	if _, err := m.at(3, 0); !errors.Is(err, ErrBounds) {
		t.Errorf("at(3, 0) error = %v, want ErrBounds", err)
	}
}

// every cell must stay at or above zero: a local alignment abandons any
// path whose running score goes negative
func Test_build_floor(t *testing.T) {
	tests := []struct {
		name string
		seq1 string
		seq2 string
	}{
		{"identical", "ACGTACGT", "ACGTACGT"},
		{"disjoint", "AAAA", "TTTT"},
		{"partial overlap", "AAAACACACATTTT", "CACACA"},
		{"single base", "A", "A"},
		{"gappy", "ACGTTTTACGT", "ACGTACGT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newScoreMatrix(len(tt.seq1)+1, len(tt.seq2)+1)
			if _, _, err := m.build(tt.seq1, tt.seq2, testScoring); err != nil {
				t.Fatalf("build() error = %v", err)
			}
			for i, v := range m.cell {
				if v < 0 {
					t.Errorf("cell (%d,%d) = %d, want >= 0", i/m.cols, i%m.cols, v)
				}
			}
		})
	}
}

func Test_build_noAlignment(t *testing.T) {
	// no shared bases, so no cell ever rises above zero
	m := newScoreMatrix(5, 5)
	maxRow, maxScore, err := m.build("AAAA", "TTTT", testScoring)
	if err != nil {
		t.Fatalf("build() error = %v", err)
	}
	if maxRow != -1 {
		t.Errorf("build() maxRow = %d, want sentinel -1", maxRow)
	}
	if maxScore != 0 {
		t.Errorf("build() maxScore = %d, want 0", maxScore)
	}
}

// ties keep the first-seen maximum in row-major order
func Test_build_firstSeenMax(t *testing.T) {
	// "AC" matches at rows 1-2 and 3-4 with equal score; row 2 wins
	m := newScoreMatrix(5, 3)
	maxRow, maxScore, err := m.build("ACAC", "AC", testScoring)
	if err != nil {
		t.Fatalf("build() error = %v", err)
	}
	if maxScore != 2*testScoring.Match {
		t.Errorf("build() maxScore = %d, want %d", maxScore, 2*testScoring.Match)
	}
	if maxRow != 2 {
		t.Errorf("build() maxRow = %d, want first-seen row 2", maxRow)
	}
}
