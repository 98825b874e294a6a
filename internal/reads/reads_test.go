package reads

import (
	"testing"

	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/sam"
)

// unmapped flag (0x4) per the SAM spec
const unmappedFlag = 0x4

func TestKeep(t *testing.T) {
	f := Filter{MinMapQ: 10}

	tests := []struct {
		name string
		read sam.Sam
		want bool
	}{
		{"mapped high quality", sam.Sam{MapQ: 60}, true},
		{"at quality floor", sam.Sam{MapQ: 10}, true},
		{"below quality floor", sam.Sam{MapQ: 9}, false},
		{"unmapped", sam.Sam{Flag: unmappedFlag, MapQ: 60}, false},
		{"duplicate", sam.Sam{Flag: dupFlag, MapQ: 60}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Keep(tt.read, f); got != tt.want {
				t.Errorf("Keep() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("quality check disabled", func(t *testing.T) {
		if !Keep(sam.Sam{MapQ: 0}, Filter{MinMapQ: -1}) {
			t.Error("Keep() with MinMapQ -1 dropped a zero-quality read")
		}
	})
}

func TestDedup(t *testing.T) {
	seq := dna.StringToBases("ACGTACGT")
	short := dna.StringToBases("ACGT")

	rs := []sam.Sam{
		{QName: "a", Pos: 100, Seq: seq},
		{QName: "b", Pos: 100, Seq: seq},   // duplicate of a
		{QName: "c", Pos: 100, Seq: short}, // same start, different length
		{QName: "d", Pos: 120, Seq: seq},
		{QName: "e", Pos: 120, Seq: seq}, // duplicate of d
	}

	got := Dedup(rs)
	want := []string{"a", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("Dedup() kept %d reads, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].QName != want[i] {
			t.Errorf("Dedup()[%d] = %s, want %s", i, got[i].QName, want[i])
		}
	}
}
