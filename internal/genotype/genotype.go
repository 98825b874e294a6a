// Package genotype turns per-read realignment evidence into per-locus
// short tandem repeat genotype calls.
package genotype

import (
	"errors"
	"log"
	"sort"

	"github.com/radygenomics/GangSTR/internal/locus"
	"github.com/radygenomics/GangSTR/internal/realign"
	"github.com/radygenomics/GangSTR/internal/refio"
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/sam"
)

// Counts tallies the read classes observed at one locus.
type Counts struct {
	Enclosing int
	InRepeat  int
	PreFlank  int
	PostFlank int
	Unknown   int

	// Dropped counts reads whose winning alignment geometry matched no
	// class; their evidence is discarded without aborting the locus.
	Dropped int
}

// Call is the aggregate genotype evidence for one locus.
type Call struct {
	Locus locus.Locus

	// Alleles holds the two called copy numbers, smaller first; empty
	// means no-call.
	Alleles []int

	// Depth is the number of reads realigned at the locus.
	Depth int

	Counts Counts
}

// Genotyper realigns reads at candidate repeat sites and calls copy-number
// genotypes from the spanning-read evidence.
type Genotyper struct {
	Scoring realign.Scoring

	// MinReads is the number of enclosing reads required before calling.
	MinReads int
}

// ProcessLocus realigns every read against the locus, classifies each, and
// aggregates the evidence. Only enclosing reads vote on copy number: they
// are the only class whose alignment pins down both repeat boundaries.
func (g *Genotyper) ProcessLocus(l locus.Locus, ctx refio.Context, rs []sam.Sam) Call {
	call := Call{Locus: l, Depth: len(rs)}

	support := make(map[int]int)
	for i := range rs {
		dna.AllToUpper(rs[i].Seq)
		seq := dna.BasesToString(rs[i].Seq)

		res, err := realign.Realign(seq, ctx.PreFlank, ctx.PostFlank, l.Motif, g.Scoring)
		if err != nil {
			log.Printf("warning: %s: read %s: %v", l, rs[i].QName, err)
			call.Counts.Dropped++
			continue
		}

		class, err := realign.Classify(len(seq), l.Motif, res, ctx.PrefixLen, g.Scoring)
		if errors.Is(err, realign.ErrUnclassifiable) {
			call.Counts.Dropped++
			continue
		}

		switch class {
		case realign.Enclosing:
			call.Counts.Enclosing++
			support[res.NCopy]++
		case realign.InRepeat:
			call.Counts.InRepeat++
		case realign.PreFlank:
			call.Counts.PreFlank++
		case realign.PostFlank:
			call.Counts.PostFlank++
		default:
			call.Counts.Unknown++
		}
	}

	if call.Counts.Enclosing >= g.MinReads {
		call.Alleles = callAlleles(support)
	}
	return call
}

// callAlleles picks the two best-supported copy numbers as a diploid call.
// A copy number backed by more than twice the support of the runner-up is
// reported homozygous. Support ties break toward the smaller copy number so
// calls are deterministic.
func callAlleles(support map[int]int) []int {
	if len(support) == 0 {
		return nil
	}

	type bin struct {
		copies int
		n      int
	}
	bins := make([]bin, 0, len(support))
	for c, n := range support {
		bins = append(bins, bin{c, n})
	}
	sort.Slice(bins, func(i, j int) bool {
		if bins[i].n != bins[j].n {
			return bins[i].n > bins[j].n
		}
		return bins[i].copies < bins[j].copies
	})

	if len(bins) == 1 || bins[0].n > 2*bins[1].n {
		return []int{bins[0].copies, bins[0].copies}
	}

	a, b := bins[0].copies, bins[1].copies
	if b < a {
		a, b = b, a
	}
	return []int{a, b}
}
