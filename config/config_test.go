// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestNew_defaults(t *testing.T) {
	viper.Reset()

	c := New()

	if c.Flank != 150 {
		t.Errorf("New() Flank = %d, want default 150", c.Flank)
	}
	if c.MinReads != 2 {
		t.Errorf("New() MinReads = %d, want default 2", c.MinReads)
	}
	if c.MatchScore != 3 || c.MismatchScore != -1 || c.GapScore != -3 {
		t.Errorf("New() scores = %d/%d/%d, want 3/-1/-3", c.MatchScore, c.MismatchScore, c.GapScore)
	}
	if c.MatchFrac != 0.8 {
		t.Errorf("New() MatchFrac = %v, want default 0.8", c.MatchFrac)
	}
}

func TestNew_overrides(t *testing.T) {
	viper.Reset()
	viper.Set("bam", "sample.bam")
	viper.Set("match-score", 5)
	viper.Set("min-mapq", 30)
	viper.Set("keep-dups", true)

	c := New()

	if c.Bam != "sample.bam" {
		t.Errorf("New() Bam = %q, want sample.bam", c.Bam)
	}
	if c.MatchScore != 5 {
		t.Errorf("New() MatchScore = %d, want 5", c.MatchScore)
	}

	s := c.Scoring()
	if s.Match != 5 || s.Mismatch != -1 {
		t.Errorf("Scoring() = %+v, want Match 5, Mismatch -1", s)
	}

	f := c.Filter()
	if f.MinMapQ != 30 {
		t.Errorf("Filter() MinMapQ = %d, want 30", f.MinMapQ)
	}
	if f.RemoveDups {
		t.Error("Filter() RemoveDups = true, want false with keep-dups set")
	}
}
