// Package realign estimates how many copies of a repeat motif a sequencing
// read supports, and where the read sits relative to the repeat span.
//
// For a read overlapping a candidate short tandem repeat, the realigner
// builds one hypothesis sequence per trial copy number k, each of the form
// preFlank + motif repeated k times + postFlank, local-aligns the read
// against every hypothesis, and keeps the best-scoring one. Only the best
// score and its end position are tracked, never a traceback path:
// classification needs interval membership, not the aligned bases, and a
// traceback would double the memory of every trial.
package realign

import (
	"errors"
	"strings"
)

// Scoring holds the alignment constants injected by the caller. Match is
// positive, Mismatch and Gap are negative.
type Scoring struct {
	Match    int
	Mismatch int
	Gap      int

	// MatchFrac is the fraction of a read's maximum possible score that a
	// realignment must reach before the read counts as evidence.
	MatchFrac float64
}

// Result is the winning hypothesis of an expansion-aware realignment.
type Result struct {
	// NCopy is the motif copy count of the winning hypothesis.
	NCopy int

	// Pos is the offset at which the read starts in hypothesis
	// coordinates, where position zero is the first base of the upstream
	// flank. It may be negative for alignments hanging off the front.
	Pos int

	// Score of the winning local alignment.
	Score int
}

// smithWaterman local-aligns read against hypothesis and returns the offset
// at which the read begins in hypothesis coordinates, with its score. The
// offset is the matrix row of the best cell minus the read length: the row
// where the local alignment ends, converted to where the read would start if
// laid flush against the matched suffix. Classification depends on exactly
// this convention, since repeat-span coordinates are also measured from the
// start of the upstream flank.
func smithWaterman(hypothesis, read string, s Scoring) (pos, score int, err error) {
	m := newScoreMatrix(len(hypothesis)+1, len(read)+1)
	maxRow, maxScore, err := m.build(hypothesis, read, s)
	if err != nil {
		return 0, 0, err
	}
	return maxRow - len(read), maxScore, nil
}

// Realign searches for the motif copy number that best explains read.
// Trial copy counts run from zero through len(read)/period + 2; the two
// trials past the length-derived estimate absorb rounding and let the
// repeat run slightly longer than a whole-period guess. The search stops
// early once a hypothesis matches the read base for base, since no larger
// copy count can score higher.
//
// Every value here is call-scoped, so concurrent calls are safe as long as
// each receives its own input strings.
func Realign(read, preFlank, postFlank, motif string, s Scoring) (Result, error) {
	period := len(motif)
	if period == 0 {
		return Result{}, errors.New("empty motif")
	}

	perfect := len(read) * s.Match
	maxCopies := len(read)/period + 2

	var best Result
	var hyp strings.Builder
	for k := 0; k <= maxCopies; k++ {
		hyp.Reset()
		hyp.Grow(len(preFlank) + k*period + len(postFlank))
		hyp.WriteString(preFlank)
		for i := 0; i < k; i++ {
			hyp.WriteString(motif)
		}
		hyp.WriteString(postFlank)

		pos, score, err := smithWaterman(hyp.String(), read, s)
		if err != nil {
			return Result{}, err
		}
		if score > best.Score {
			best = Result{NCopy: k, Pos: pos, Score: score}
		}
		if score == perfect {
			break
		}
	}
	return best, nil
}
