package gchist_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/gccontent/pkg/gchist"
)

// With 1001 bins, the first percent point is bins 0..10, then
// every ten bins make a point.
func TestPercentDefault(t *testing.T) {
	freq := make([]float64, gchist.DfltWindowSize)
	for i := range freq {
		freq[i] = 1
	}
	pct := gchist.Percent(freq)
	require.Len(t, pct, gchist.NPercent)
	require.Equal(t, 11.0, pct[0])
	for _, v := range pct[1:] {
		require.Equal(t, 10.0, v)
	}
}

func TestPercentBins(t *testing.T) {
	tests := []struct {
		bin, pct int
	}{
		{0, 1}, {10, 1}, {11, 2}, {20, 2}, {21, 3}, {500, 50}, {501, 51}, {1000, 100},
	}
	for _, tt := range tests {
		freq := make([]float64, gchist.DfltWindowSize)
		freq[tt.bin] = 1
		pct := gchist.Percent(freq)
		require.Equal(t, 1.0, pct[tt.pct-1], "bin %d", tt.bin)
	}
	require.Nil(t, gchist.Percent([]float64{1}))
}

// Small windows spread out over the percent bins.
func TestPercentSmall(t *testing.T) {
	pct := gchist.Percent([]float64{0.25, 0.5, 0.25}) // 0, 50 and 100 %
	require.Equal(t, 0.25, pct[0])
	require.Equal(t, 0.5, pct[49])
	require.Equal(t, 0.25, pct[99])
}

func TestContigs(t *testing.T) {
	src := gchist.Records(
		rec("chrA", "GGGGAAAACCCC"), // 100 %, 0 %, 100 %
		rec("chrB", "NNN"),          // no windows, so not in the table
		rec("chrC", "GCATGC"),       // 50 %, left over dropped
	)
	h, err := gchist.Build(src, 5, gchist.WithContigs())
	require.NoError(t, err)
	ct := h.Contigs()
	require.NotNil(t, ct)
	require.Equal(t, []string{"chrA", "chrC"}, ct.Names)
	require.Equal(t, []int64{3, 1}, ct.NWindow)
	require.InDelta(t, 200.0/3, ct.MeanGC[0], 1e-9)
	require.InDelta(t, 50.0, ct.MeanGC[1], 1e-9)
	nr, nc := ct.Frac.Size()
	require.Equal(t, 2, nr)
	require.Equal(t, gchist.NPercent, nc)
	require.InDelta(t, 2.0/3, ct.Frac.Mat[0][99], 1e-6)
	require.InDelta(t, 1.0/3, ct.Frac.Mat[0][0], 1e-6)
	require.InDelta(t, 1.0, ct.Frac.Mat[1][49], 1e-6)

	var buf bytes.Buffer
	require.NoError(t, ct.WriteCSV(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], `"contig","windows","mean gc","1","2"`))
	require.True(t, strings.HasPrefix(lines[2], `"chrC",1,50.00,0.0000`))
	require.Len(t, strings.Split(lines[1], ","), 3+gchist.NPercent)
}

func TestNoContigs(t *testing.T) {
	h, err := build(t, 5, "ACGT")
	require.NoError(t, err)
	require.Nil(t, h.Contigs())
}
