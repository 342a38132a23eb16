package segment_test

import (
	"testing"

	"github.com/downfa11-org/aostore/pkg/segment"
	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	lim := segment.DefaultLimits()

	for slot := 1; slot < lim.MaxConcurrency; slot++ {
		for column := 0; column <= lim.MaxColumns; column++ {
			n := lim.Encode(slot, column)
			gotSlot, gotColumn := lim.Decode(n)
			if gotSlot != slot || gotColumn != column {
				t.Fatalf("Decode(Encode(%d, %d)) = (%d, %d)", slot, column, gotSlot, gotColumn)
			}
		}
	}
}

func TestEncodeKnownValues(t *testing.T) {
	lim := segment.DefaultLimits()

	tests := []struct {
		slot   int
		column int
		want   segment.FileNumber
	}{
		{1, 0, 1},
		{127, 0, 127},
		{1, 1, 129},
		{5, 2, 261},
		{1, 1599, 1599*128 + 1},
	}

	for _, tt := range tests {
		if got := lim.Encode(tt.slot, tt.column); got != tt.want {
			t.Errorf("Encode(%d, %d) = %d; want %d", tt.slot, tt.column, got, tt.want)
		}
	}
}

func TestEncodeRespectsConfiguredMultiplier(t *testing.T) {
	lim := segment.Limits{MaxConcurrency: 8, MaxColumns: 3}

	assert.Equal(t, 8, lim.Multiplier())
	assert.Equal(t, segment.FileNumber(25), lim.Encode(1, 3))

	slot, column := lim.Decode(25)
	assert.Equal(t, 1, slot)
	assert.Equal(t, 3, column)
}

func TestFilePath(t *testing.T) {
	tests := []struct {
		n    segment.FileNumber
		want string
	}{
		{0, "/data/base/16384/1234"},
		{1, "/data/base/16384/1234.1"},
		{129, "/data/base/16384/1234.129"},
	}

	for _, tt := range tests {
		if got := segment.FilePath("/data/base/16384/1234", tt.n); got != tt.want {
			t.Errorf("FilePath(%d) = %q; want %q", tt.n, got, tt.want)
		}
	}
}
