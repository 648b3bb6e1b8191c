// 18 Oct 2026

// Package gchist builds a histogram of GC-content over fixed size
// windows of a reference genome.
//
// A window is a run of windowSize - 1 counted symbols. N's are skipped
// completely, so they neither count nor close a window. Each complete
// window adds one to the bin given by its number of G's and C's.
// Windows never span two records and whatever is left at the end of a
// record is thrown away. The normalized histogram is the expected
// GC-content distribution which read GC-content is later compared
// against.
package gchist

// DfltWindowSize gives windows of 1000 counted symbols and bins 0..1000.
const DfltWindowSize = 1001

// Histogram is the result of scanning a genome.
type Histogram struct {
	WindowSize int     // number of bins, one more than symbols per window
	NSegment   int64   // number of complete windows
	NRecord    int     // number of records scanned
	Counts     []int64 // Counts[i] is the number of windows with i G or C
	contigs    []contigRow
}

// Sum adds up the counts. After a scan, it is always NSegment.
func (h *Histogram) Sum() int64 {
	var n int64
	for _, c := range h.Counts {
		n += c
	}
	return n
}

// Normalize returns each count divided by the number of windows.
// The histogram is not touched. With no windows, there is nothing to
// divide by and we return ErrDegenerate.
func (h *Histogram) Normalize() ([]float64, error) {
	if h.NSegment == 0 {
		return nil, &DegenerateError{NRecord: h.NRecord, WindowSize: h.WindowSize}
	}
	freq := make([]float64, len(h.Counts))
	n := float64(h.NSegment)
	for i, c := range h.Counts {
		freq[i] = float64(c) / n
	}
	return freq, nil
}
