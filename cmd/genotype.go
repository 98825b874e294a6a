package cmd

import (
	"log"

	"github.com/radygenomics/GangSTR/config"
	"github.com/radygenomics/GangSTR/internal/genotype"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// genotypeCmd realigns the reads around every candidate repeat site and
// calls copy-number genotypes
var genotypeCmd = &cobra.Command{
	Use:   "genotype",
	Short: "Genotype the repeats in a BED file of candidate sites",
	Long: `Genotype short tandem repeats against a BAM of mapped reads.

For every site in the regions BED file, "gangstr genotype" fetches the
reads mapped nearby, realigns each against a family of reference
reconstructions carrying different repeat copy counts, classifies the read's
placement relative to the repeat, and aggregates the evidence into a
diploid copy-number call written to the output VCF.

The BED name column carries the repeat unit, either bare ("CA") or with the
reference copy count ("10xCA").`,
	Example: "  gangstr genotype -b sample.bam -r hg38.fa -g repeats.bed -o sample.vcf",
	Run:     runGenotype,
}

// runGenotype is the Run function of genotypeCmd
func runGenotype(cmd *cobra.Command, args []string) {
	c := config.New()

	in := genotype.Inputs{
		Bam:       c.Bam,
		Ref:       c.Ref,
		Regions:   c.Regions,
		Out:       c.Out,
		Flank:     c.Flank,
		WindowPad: c.WindowPad,
		Threads:   c.Threads,
		MinReads:  c.MinReads,
		Filter:    c.Filter(),
		Scoring:   c.Scoring(),
	}
	if err := genotype.Run(in); err != nil {
		log.Fatalf("genotype: %v", err)
	}
}

// set flags
func init() {
	rootCmd.AddCommand(genotypeCmd)

	genotypeCmd.Flags().StringP("bam", "b", "", "indexed BAM file of mapped reads")
	genotypeCmd.Flags().StringP("ref", "r", "", "reference genome FASTA")
	genotypeCmd.Flags().StringP("regions", "g", "", "BED file of candidate repeat sites")
	genotypeCmd.Flags().StringP("out", "o", "stdout", "output VCF path")
	genotypeCmd.Flags().Int("flank", 150, "reference bases to fetch on either side of each repeat")
	genotypeCmd.Flags().Int("window-pad", 50, "extra bases around each locus when fetching reads")
	genotypeCmd.Flags().Int("min-mapq", 10, "minimum mapping quality to realign a read (-1 for no filter)")
	genotypeCmd.Flags().Bool("keep-dups", false, "keep duplicate reads when genotyping")
	genotypeCmd.Flags().Int("min-reads", 2, "enclosing reads required before calling a genotype")
	genotypeCmd.Flags().IntP("threads", "t", 1, "number of loci to process concurrently")
	genotypeCmd.Flags().Int("match-score", 3, "realignment score for a matching base")
	genotypeCmd.Flags().Int("mismatch-score", -1, "realignment score for a mismatching base")
	genotypeCmd.Flags().Int("gap-score", -3, "realignment score for a gap")
	genotypeCmd.Flags().Float64("match-frac", 0.8, "fraction of a read's maximum score a realignment must reach")

	genotypeCmd.MarkFlagRequired("bam")
	genotypeCmd.MarkFlagRequired("ref")
	genotypeCmd.MarkFlagRequired("regions")

	// Bind the parameters to viper
	for _, flag := range []string{
		"bam", "ref", "regions", "out",
		"flank", "window-pad", "min-mapq", "keep-dups", "min-reads", "threads",
		"match-score", "mismatch-score", "gap-score", "match-frac",
	} {
		viper.BindPFlag(flag, genotypeCmd.Flags().Lookup(flag))
	}
}
