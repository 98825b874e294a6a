// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/radygenomics/GangSTR/internal/reads"
	"github.com/radygenomics/GangSTR/internal/realign"
	"github.com/spf13/viper"
)

// Config is the root-level settings struct and is a mix of settings
// available in settings.yaml and those bound from command line flags
type Config struct {
	// path to the indexed BAM of mapped reads
	Bam string `mapstructure:"bam"`

	// path to the reference genome FASTA
	Ref string `mapstructure:"ref"`

	// path to the BED file of candidate repeat sites
	Regions string `mapstructure:"regions"`

	// path to the output VCF
	Out string `mapstructure:"out"`

	// reference bases fetched on either side of each repeat span
	Flank int `mapstructure:"flank"`

	// extra bases around each locus when fetching reads
	WindowPad int `mapstructure:"window-pad"`

	// minimum mapping quality for a read to be realigned; -1 disables
	MinMapQ int `mapstructure:"min-mapq"`

	// keep reads flagged or positioned as duplicates
	KeepDups bool `mapstructure:"keep-dups"`

	// enclosing reads required before a genotype is called
	MinReads int `mapstructure:"min-reads"`

	// worker count for processing loci
	Threads int `mapstructure:"threads"`

	// alignment score for a matching base
	MatchScore int `mapstructure:"match-score"`

	// alignment score for a mismatching base
	MismatchScore int `mapstructure:"mismatch-score"`

	// alignment score for opening or extending a gap
	GapScore int `mapstructure:"gap-score"`

	// fraction of a read's maximum score a realignment must reach
	MatchFrac float64 `mapstructure:"match-frac"`
}

// New returns a new Config struct populated by Viper settings (either from
// the local settings.yaml) and/or command line arguments
func New() Config {
	setDefaults()

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings: %v", err)
	}
	return c
}

// Scoring returns the alignment constants the realigner is built with.
func (c Config) Scoring() realign.Scoring {
	return realign.Scoring{
		Match:     c.MatchScore,
		Mismatch:  c.MismatchScore,
		Gap:       c.GapScore,
		MatchFrac: c.MatchFrac,
	}
}

// Filter returns the read acceptance rules.
func (c Config) Filter() reads.Filter {
	return reads.Filter{
		MinMapQ:    c.MinMapQ,
		RemoveDups: !c.KeepDups,
	}
}

func setDefaults() {
	viper.SetDefault("out", "stdout")
	viper.SetDefault("flank", 150)
	viper.SetDefault("window-pad", 50)
	viper.SetDefault("min-mapq", 10)
	viper.SetDefault("min-reads", 2)
	viper.SetDefault("threads", 1)
	viper.SetDefault("match-score", 3)
	viper.SetDefault("mismatch-score", -1)
	viper.SetDefault("gap-score", -3)
	viper.SetDefault("match-frac", 0.8)
}
