package gchist_test

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/gccontent/pkg/fasta"
	"github.com/andrew-torda/gccontent/pkg/gchist"
)

func rec(name, seq string) *fasta.Record {
	return &fasta.Record{Cmmt: name, Seq: []byte(seq)}
}

func build(t *testing.T, windowSize int, seqs ...string) (*gchist.Histogram, error) {
	t.Helper()
	recs := make([]*fasta.Record, len(seqs))
	for i, s := range seqs {
		recs[i] = rec(fmt.Sprint("s", i), s)
	}
	return gchist.Build(gchist.Records(recs...), windowSize)
}

// randSeq makes a sequence of ACGT with about gcFrac G and C.
func randSeq(rnd *rand.Rand, n int, gcFrac float64) []byte {
	s := make([]byte, n)
	for i := range s {
		if rnd.Float64() < gcFrac {
			s[i] = "GC"[rnd.Intn(2)]
		} else {
			s[i] = "AT"[rnd.Intn(2)]
		}
	}
	return s
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name     string
		seqs     []string
		nSegment int64
		bin      int
	}{
		{"one window, remainder dropped", []string{"GCGCAT"}, 1, 4},
		{"leading N", []string{"NNNNGCAT"}, 1, 2},
		{"N in the middle", []string{"GNNNCNNAT"}, 1, 2},
		{"all AT", []string{"ATATATAT"}, 2, 0},
		{"lower case", []string{"gcgcat"}, 1, 4},
		{"ambiguity codes are not GC", []string{"RYSW"}, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := build(t, 5, tt.seqs...)
			require.NoError(t, err)
			require.Equal(t, tt.nSegment, h.NSegment)
			require.Len(t, h.Counts, 5)
			require.Equal(t, tt.nSegment, h.Counts[tt.bin])
			require.Equal(t, h.NSegment, h.Sum())
		})
	}
}

func TestEmptyInput(t *testing.T) {
	_, err := build(t, 5)
	require.ErrorIs(t, err, gchist.ErrEmptyInput)
}

func TestDegenerate(t *testing.T) {
	_, err := build(t, gchist.DfltWindowSize, strings.Repeat("ACGT", 12)+"AC")
	require.ErrorIs(t, err, gchist.ErrDegenerate)
	var dErr *gchist.DegenerateError
	require.True(t, errors.As(err, &dErr))
	require.Equal(t, 1, dErr.NRecord)
	require.Equal(t, gchist.DfltWindowSize, dErr.WindowSize)

	_, err = build(t, 5, strings.Repeat("N", 100), "", "ACG") // all N, empty, short
	require.ErrorIs(t, err, gchist.ErrDegenerate)
}

func TestWindowSize(t *testing.T) {
	for _, w := range []int{-1, 0, 1} {
		_, err := gchist.NewBuilder(w)
		require.ErrorIs(t, err, gchist.ErrWindowSize)
	}
	h, err := build(t, 2, "GATC") // one symbol windows
	require.NoError(t, err)
	require.Equal(t, []int64{2, 2}, h.Counts)
}

// Windows do not carry over from one record to the next.
func TestRecordBoundary(t *testing.T) {
	h, err := build(t, 5, "GGG", "CCC", "GGGG")
	require.NoError(t, err)
	require.Equal(t, int64(1), h.NSegment)
	require.Equal(t, 3, h.NRecord)
}

// A record can be fed in pieces and windows run across the pieces.
func TestAddInPieces(t *testing.T) {
	b, err := gchist.NewBuilder(5)
	require.NoError(t, err)
	b.Begin("x")
	for _, p := range []string{"G", "CN", "", "nGA", "TTT", "Tc"} {
		b.Add([]byte(p))
	}
	b.Begin("y") // ends x
	b.Add([]byte("CCCC"))
	h, err := b.Histogram()
	require.NoError(t, err)
	require.Equal(t, []int64{1, 0, 0, 1, 1}, h.Counts)
}

func TestSourceError(t *testing.T) {
	boom := errors.New("boom")
	_, err := gchist.Build(&failSource{n: 2, err: boom}, 5)
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "sequence 3")
}

type failSource struct {
	n   int
	err error
}

func (f *failSource) Next() (*fasta.Record, error) {
	if f.n == 0 {
		return nil, f.err
	}
	f.n--
	return rec("ok", "ACGTACGT"), nil
}

func TestProgress(t *testing.T) {
	var got []string
	p := func(name string, n int64) { got = append(got, fmt.Sprint(name, ":", n)) }
	src := fasta.NewReader(strings.NewReader(">chr1 x\nACGTACGTAC\n>chr2\nNN\n>chr3\nACGT\n"))
	defer src.Close()
	_, err := gchist.Build(src, 5, gchist.WithProgress(p))
	require.NoError(t, err)
	require.Equal(t, []string{"chr1:2", "chr2:0", "chr3:1"}, got)
}

// Every window lands in exactly one bin and numSegments counts
// the complete windows of each record.
func TestConservationAndWindowing(t *testing.T) {
	rnd := rand.New(rand.NewSource(1637))
	const windowSize = 101
	var seqs []string
	var wantSeg int64
	for i := 0; i < 20; i++ {
		k, r := rnd.Intn(5), rnd.Intn(windowSize-1)
		seqs = append(seqs, string(randSeq(rnd, k*(windowSize-1)+r, rnd.Float64())))
		wantSeg += int64(k)
	}
	seqs = append(seqs, string(randSeq(rnd, windowSize-1, 0.5))) // at least one
	wantSeg++
	h, err := build(t, windowSize, seqs...)
	require.NoError(t, err)
	require.Equal(t, wantSeg, h.NSegment)
	require.Equal(t, h.NSegment, h.Sum())

	freq, err := h.Normalize()
	require.NoError(t, err)
	var sum float64
	for _, f := range freq {
		require.GreaterOrEqual(t, f, 0.0)
		sum += f
	}
	require.InDelta(t, 1.0, sum, 1e-9*float64(h.NSegment))
}

// Sprinkling N's about, or changing case, changes nothing.
func TestNAndCaseInvariance(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	const windowSize = 51
	plain := randSeq(rnd, 2000, 0.4)
	var withN, lower []byte
	for _, c := range plain {
		for rnd.Intn(4) == 0 {
			withN = append(withN, "Nn"[rnd.Intn(2)])
		}
		withN = append(withN, c)
		lower = append(lower, c|0x20)
	}
	withN = append(withN, "NNNNNNNN"...)
	h0, err := build(t, windowSize, string(plain))
	require.NoError(t, err)
	h1, err := build(t, windowSize, string(withN))
	require.NoError(t, err)
	h2, err := build(t, windowSize, string(lower))
	require.NoError(t, err)
	require.Equal(t, h0.Counts, h1.Counts)
	require.Equal(t, h0.Counts, h2.Counts)
	require.Equal(t, h0.NSegment, h1.NSegment)
}

func TestNormalize(t *testing.T) {
	h := &gchist.Histogram{WindowSize: 3, NSegment: 4, Counts: []int64{1, 0, 3}}
	freq, err := h.Normalize()
	require.NoError(t, err)
	require.Equal(t, []float64{0.25, 0, 0.75}, freq)
	require.Equal(t, []int64{1, 0, 3}, h.Counts, "input must not change")

	h = &gchist.Histogram{WindowSize: 3, Counts: make([]int64, 3)}
	_, err = h.Normalize()
	require.ErrorIs(t, err, gchist.ErrDegenerate)
	for _, f := range freq {
		require.False(t, math.IsNaN(f))
	}
}
