package genotype

import (
	"log"
	"sync"

	"github.com/radygenomics/GangSTR/internal/locus"
	"github.com/radygenomics/GangSTR/internal/reads"
	"github.com/radygenomics/GangSTR/internal/realign"
	"github.com/radygenomics/GangSTR/internal/refio"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fasta"
	"github.com/vertgenlab/gonomics/fileio"
	"github.com/vertgenlab/gonomics/sam"
	"github.com/vertgenlab/gonomics/vcf"
)

// Inputs are the file paths and knobs for one genotyping run.
type Inputs struct {
	Bam     string // indexed BAM of mapped reads; Bam + ".bai" must exist
	Ref     string // reference genome FASTA
	Regions string // BED of candidate repeat sites
	Out     string // output VCF path

	Flank     int // reference bases fetched on either side of the repeat
	WindowPad int // extra bases around the locus when fetching reads
	Threads   int
	MinReads  int

	Filter  reads.Filter
	Scoring realign.Scoring
}

type locusResult struct {
	call Call
	ctx  refio.Context
}

// Run genotypes every locus in the regions file and writes one VCF record
// per locus, in input order.
//
// Loci fan out over Threads workers. Seekable file handles are not safe to
// share, so each worker opens its own BAM reader and FASTA seeker; the
// realignment itself carries no shared state at all.
func Run(in Inputs) error {
	loci, err := locus.Load(in.Regions)
	if err != nil {
		return err
	}
	log.Printf("genotyping %d loci from %s", len(loci), in.Regions)

	if in.Threads < 1 {
		in.Threads = 1
	}

	results := make([]locusResult, len(loci))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < in.Threads; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			g := &Genotyper{Scoring: in.Scoring, MinReads: in.MinReads}
			br, _ := sam.OpenBam(in.Bam)
			bai := sam.ReadBai(in.Bam + ".bai")
			seeker := fasta.NewSeeker(in.Ref, "")
			defer func() {
				exception.PanicOnErr(br.Close())
				exception.PanicOnErr(seeker.Close())
			}()

			for i := range jobs {
				l := loci[i]
				ctx, err := refio.Fetch(seeker, l, in.Flank)
				if err != nil {
					log.Printf("warning: skipping %s: %v", l, err)
					results[i] = locusResult{call: Call{Locus: l}}
					continue
				}
				rs := reads.Fetch(br, bai, l.Chrom, l.Start, l.End, in.WindowPad, in.Filter)
				results[i] = locusResult{call: g.ProcessLocus(l, ctx, rs), ctx: ctx}
			}
		}()
	}
	for i := range loci {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	records := make([]vcf.Vcf, 0, len(results))
	for i := range results {
		records = append(records, ToVcf(results[i].call, results[i].ctx))
	}

	out := fileio.EasyCreate(in.Out)
	vcf.NewWriteHeader(out, Header(in.Bam, in.Ref))
	vcf.WriteVcfToFileHandle(out, records)
	return out.Close()
}
