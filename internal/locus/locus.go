// Package locus models candidate short tandem repeat sites and loads them
// from BED files.
package locus

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vertgenlab/gonomics/bed"
)

// Locus is one candidate short tandem repeat site on the reference.
type Locus struct {
	Chrom string
	Start int // 0-based, inclusive
	End   int // 0-based, exclusive

	// Motif is the repeat unit, uppercased
	Motif string

	// RefCopies is the motif copy count of the reference allele
	RefCopies int
}

// Period is the motif length in bases.
func (l Locus) Period() int {
	return len(l.Motif)
}

func (l Locus) String() string {
	return fmt.Sprintf("%s:%d-%d", l.Chrom, l.Start, l.End)
}

// Load reads candidate repeat sites from a BED file. The name column holds
// the repeat unit, either bare ("CA") or prefixed with the reference copy
// count ("10xCA").
func Load(path string) ([]Locus, error) {
	regions := bed.Read(path)

	loci := make([]Locus, 0, len(regions))
	for _, r := range regions {
		l, err := FromBed(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %s:%d-%d: %v", path, r.Chrom, r.ChromStart, r.ChromEnd, err)
		}
		loci = append(loci, l)
	}
	return loci, nil
}

// FromBed converts one BED region into a Locus.
func FromBed(r bed.Bed) (Locus, error) {
	if r.ChromEnd <= r.ChromStart {
		return Locus{}, fmt.Errorf("empty repeat span")
	}
	motif, copies, err := parseName(r.Name, r.ChromEnd-r.ChromStart)
	if err != nil {
		return Locus{}, err
	}
	return Locus{
		Chrom:     r.Chrom,
		Start:     r.ChromStart,
		End:       r.ChromEnd,
		Motif:     motif,
		RefCopies: copies,
	}, nil
}

// parseName pulls the repeat unit, and the reference copy count when
// present, out of a BED name like "10xCA" or "CA". A bare motif derives its
// copy count from the span length.
func parseName(name string, span int) (motif string, copies int, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", 0, fmt.Errorf("missing repeat unit in name column")
	}

	if i := strings.Index(name, "x"); i >= 0 {
		copies, err = strconv.Atoi(name[:i])
		if err != nil || copies < 1 {
			return "", 0, fmt.Errorf("bad copy count in %q", name)
		}
		name = name[i+1:]
	}

	motif = strings.ToUpper(name)
	if motif == "" {
		return "", 0, fmt.Errorf("missing repeat unit in name column")
	}
	for _, b := range motif {
		switch b {
		case 'A', 'C', 'G', 'T', 'N':
		default:
			return "", 0, fmt.Errorf("repeat unit %q has a non-DNA base", motif)
		}
	}

	if copies == 0 {
		copies = span / len(motif)
	}
	return motif, copies, nil
}
