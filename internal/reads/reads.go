// Package reads fetches and filters the mapped reads around a repeat locus.
package reads

import (
	"github.com/vertgenlab/gonomics/sam"
)

// duplicate flag (0x400) per the SAM spec
const dupFlag = 0x400

// Filter holds the acceptance rules for candidate reads.
type Filter struct {
	// MinMapQ drops reads mapped below this quality; -1 disables the
	// check
	MinMapQ int

	// RemoveDups drops reads sharing a start position and length with
	// the read before them
	RemoveDups bool
}

// Fetch returns the filtered reads overlapping the window
// [start-pad, end+pad) on chrom. Padding pulls in reads whose initial
// mapping put them just outside the repeat; realignment decides whether
// they actually cover it.
func Fetch(br *sam.BamReader, bai sam.Bai, chrom string, start, end, pad int, f Filter) []sam.Sam {
	lo := start - pad
	if lo < 0 {
		lo = 0
	}
	found := sam.SeekBamRegion(br, bai, chrom, uint32(lo), uint32(end+pad))

	kept := found[:0]
	for i := range found {
		if Keep(found[i], f) {
			kept = append(kept, found[i])
		}
	}
	if f.RemoveDups {
		kept = Dedup(kept)
	}
	return kept
}

// Keep reports whether one read passes the filter.
func Keep(r sam.Sam, f Filter) bool {
	if sam.IsUnmapped(r) {
		return false
	}
	if r.Flag&dupFlag != 0 {
		return false
	}
	if f.MinMapQ >= 0 && int(r.MapQ) < f.MinMapQ {
		return false
	}
	return true
}

// Dedup drops reads that share a start position and length with the read
// before them. The input must be position sorted, which a BAM region fetch
// guarantees.
func Dedup(rs []sam.Sam) []sam.Sam {
	if len(rs) < 2 {
		return rs
	}
	out := rs[:1]
	for i := 1; i < len(rs); i++ {
		prev := out[len(out)-1]
		if rs[i].Pos == prev.Pos && len(rs[i].Seq) == len(prev.Seq) {
			continue
		}
		out = append(out, rs[i])
	}
	return out
}
