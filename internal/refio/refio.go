// Package refio looks up the reference sequence context around a repeat
// span: the two flanks the realigner builds its hypotheses from, and the
// repeat sequence itself for the VCF reference allele.
package refio

import (
	"fmt"

	"github.com/radygenomics/GangSTR/internal/locus"
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/fasta"
)

// Context is the reference sequence surrounding one repeat span.
type Context struct {
	PreFlank  string
	PostFlank string

	// RefRepeat is the repeat span as written in the reference.
	RefRepeat string

	// PrefixLen is the repeat-span start in hypothesis coordinates. It
	// equals len(PreFlank), which falls short of the requested flank
	// length when the locus sits near the chromosome start.
	PrefixLen int
}

// Fetch returns the flanks and repeat sequence for one locus, each
// uppercased. flank is the number of bases requested on either side.
func Fetch(seeker *fasta.Seeker, l locus.Locus, flank int) (Context, error) {
	lo := l.Start - flank
	if lo < 0 {
		lo = 0
	}

	pre, err := fasta.SeekByName(seeker, l.Chrom, lo, l.Start)
	if err != nil {
		return Context{}, fmt.Errorf("pre flank %s:%d-%d: %v", l.Chrom, lo, l.Start, err)
	}
	rep, err := fasta.SeekByName(seeker, l.Chrom, l.Start, l.End)
	if err != nil {
		return Context{}, fmt.Errorf("repeat span %s: %v", l, err)
	}
	post, err := fasta.SeekByName(seeker, l.Chrom, l.End, l.End+flank)
	if err != nil {
		return Context{}, fmt.Errorf("post flank %s:%d-%d: %v", l.Chrom, l.End, l.End+flank, err)
	}

	dna.AllToUpper(pre)
	dna.AllToUpper(rep)
	dna.AllToUpper(post)

	return Context{
		PreFlank:  dna.BasesToString(pre),
		PostFlank: dna.BasesToString(post),
		RefRepeat: dna.BasesToString(rep),
		PrefixLen: len(pre),
	}, nil
}
