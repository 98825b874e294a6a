package genotype

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/radygenomics/GangSTR/internal/refio"
	"github.com/vertgenlab/gonomics/vcf"
)

// ToVcf renders one locus call as a VCF record. The reference allele is the
// repeat span as written in the reference; each called copy number that
// differs from the reference copy count becomes an alternate allele.
func ToVcf(call Call, ctx refio.Context) vcf.Vcf {
	var v vcf.Vcf
	v.Chr = call.Locus.Chrom
	v.Pos = call.Locus.Start + 1
	v.Id = "."
	v.Ref = call.Locus.Motif
	if ctx.RefRepeat != "" {
		v.Ref = ctx.RefRepeat
	}
	v.Filter = "."
	v.Info = fmt.Sprintf("RU=%s;REF=%d", call.Locus.Motif, call.Locus.RefCopies)
	v.Format = []string{"GT", "DP", "ENCL", "IRR", "FLNK", "REPCN"}

	var alts []string
	var alleles []int16
	var repcn []string
	for _, copies := range call.Alleles {
		repcn = append(repcn, strconv.Itoa(copies))
		if copies == call.Locus.RefCopies {
			alleles = append(alleles, 0)
			continue
		}
		alt := strings.Repeat(call.Locus.Motif, copies)
		if alt == "" {
			alt = "<DEL>"
		}
		idx := -1
		for i := range alts {
			if alts[i] == alt {
				idx = i
			}
		}
		if idx == -1 {
			alts = append(alts, alt)
			idx = len(alts) - 1
		}
		alleles = append(alleles, int16(idx+1))
	}
	if len(alts) == 0 {
		alts = []string{"."}
	}
	v.Alt = alts

	if len(repcn) == 0 {
		repcn = []string{"."}
	}

	c := call.Counts
	v.Samples = make([]vcf.Sample, 1)
	if len(alleles) == 2 {
		// the writer renders GT itself: the first allele, then one
		// "/"-separated allele per Phase entry. A no-call leaves both
		// nil so it prints "."
		v.Samples[0].Alleles = alleles
		v.Samples[0].Phase = []bool{false, false}
	}
	v.Samples[0].FormatData = []string{
		"", // GT comes from Alleles and Phase
		strconv.Itoa(call.Depth),
		strconv.Itoa(c.Enclosing),
		strconv.Itoa(c.InRepeat),
		strconv.Itoa(c.PreFlank + c.PostFlank),
		strings.Join(repcn, ","),
	}
	return v
}

// Header builds the VCF header for one genotyping run. The sample column is
// named after the BAM file.
func Header(bamPath, refPath string) vcf.Header {
	var header vcf.Header
	header.Text = append(header.Text, "##fileformat=VCFv4.2")
	header.Text = append(header.Text, fmt.Sprintf("##reference=%s", refPath))
	header.Text = append(header.Text, "##INFO=<ID=RU,Number=1,Type=String,Description=\"Repeat unit\">")
	header.Text = append(header.Text, "##INFO=<ID=REF,Number=1,Type=Integer,Description=\"Reference repeat unit copy count\">")
	header.Text = append(header.Text, "##FORMAT=<ID=GT,Number=1,Type=String,Description=\"Genotype\">")
	header.Text = append(header.Text, "##FORMAT=<ID=DP,Number=1,Type=Integer,Description=\"Reads realigned at the locus\">")
	header.Text = append(header.Text, "##FORMAT=<ID=ENCL,Number=1,Type=Integer,Description=\"Reads enclosing the repeat\">")
	header.Text = append(header.Text, "##FORMAT=<ID=IRR,Number=1,Type=Integer,Description=\"In-repeat reads\">")
	header.Text = append(header.Text, "##FORMAT=<ID=FLNK,Number=1,Type=Integer,Description=\"Flank-overlapping reads\">")
	header.Text = append(header.Text, "##FORMAT=<ID=REPCN,Number=1,Type=String,Description=\"Called repeat unit copy counts\">")

	sample := strings.TrimSuffix(filepath.Base(bamPath), ".bam")
	header.Text = append(header.Text, fmt.Sprintf("#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\tFORMAT\t%s", sample))
	return header
}
