package realign

import (
	"errors"
	"fmt"
)

// ReadType is a read's structural relationship to the repeat span.
type ReadType int

const (
	// Unknown marks reads whose best realignment scored below threshold,
	// or whose winning hypothesis had zero motif copies.
	Unknown ReadType = iota

	// InRepeat reads lie entirely within the repeat span plus slack.
	InRepeat

	// PreFlank reads start in the upstream flank and end inside the
	// repeat.
	PreFlank

	// PostFlank reads start inside the repeat and run into the
	// downstream flank.
	PostFlank

	// Enclosing reads span the whole repeat plus parts of both flanks.
	Enclosing
)

func (t ReadType) String() string {
	switch t {
	case InRepeat:
		return "IRR"
	case PreFlank:
		return "PREFLANK"
	case PostFlank:
		return "POSTFLANK"
	case Enclosing:
		return "ENCLOSING"
	}
	return "UNKNOWN"
}

// ErrUnclassifiable flags winning geometry that matches none of the read
// classes, such as an alignment window lying entirely outside the repeat on
// one side. The caller decides whether to drop the read or abort the locus;
// it is never folded into Unknown.
var ErrUnclassifiable = errors.New("read geometry matches no class")

// Classify maps a realignment result onto a ReadType. prefixLen is the
// repeat-span start in hypothesis coordinates, normally the length of the
// upstream flank. The slack margin of 4*period-1 bases tolerates positional
// wobble at the repeat edges; it is derived here, per call, so concurrent
// classifications never share state.
func Classify(readLen int, motif string, res Result, prefixLen int, s Scoring) (ReadType, error) {
	period := len(motif)
	margin := 4*period - 1

	endPos := res.Pos + readLen - 1
	startSTR := prefixLen
	endSTR := prefixLen + res.NCopy*period

	startIn := res.Pos >= startSTR-margin && res.Pos <= endSTR+margin
	endIn := endPos >= startSTR-margin && endPos <= endSTR+margin

	threshold := int(s.MatchFrac * float64(readLen) * float64(s.Match))

	switch {
	case res.Score < threshold || res.NCopy == 0:
		return Unknown, nil
	case startIn && endIn:
		return InRepeat, nil
	case startIn && !endIn:
		return PostFlank, nil
	case !startIn && endIn:
		return PreFlank, nil
	case res.Pos < startSTR && endPos > endSTR:
		return Enclosing, nil
	}
	return Unknown, fmt.Errorf("%w: read [%d,%d] vs repeat [%d,%d]",
		ErrUnclassifiable, res.Pos, endPos, startSTR, endSTR)
}
