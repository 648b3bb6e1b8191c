package gchist

import (
	"bufio"
	"fmt"
	"io"

	"github.com/andrew-torda/matrix"
)

type contigRow struct {
	name    string
	nWindow int64
	gcSum   int64
	pct     []int64
}

// ContigTable breaks the histogram down by record. Only records with
// at least one complete window are in it.
type ContigTable struct {
	Names   []string
	NWindow []int64
	MeanGC  []float64         // mean GC-content of the windows, in percent
	Frac    *matrix.FMatrix2d // Frac.Mat[contig][p-1], fraction of windows with p % GC
}

// Contigs returns the per-record breakdown, or nil if the histogram
// was not built WithContigs.
func (h *Histogram) Contigs() *ContigTable {
	if h.contigs == nil {
		return nil
	}
	nCount := float64(h.WindowSize - 1)
	n := len(h.contigs)
	ct := &ContigTable{
		Names:   make([]string, n),
		NWindow: make([]int64, n),
		MeanGC:  make([]float64, n),
		Frac:    matrix.NewFMatrix2d(n, NPercent),
	}
	for i, row := range h.contigs {
		nw := float64(row.nWindow)
		ct.Names[i] = row.name
		ct.NWindow[i] = row.nWindow
		ct.MeanGC[i] = 100 * float64(row.gcSum) / (nw * nCount)
		for j, c := range row.pct {
			ct.Frac.Mat[i][j] = float32(float64(c) / nw)
		}
	}
	return ct
}

// WriteCSV writes one line per contig with a header line which
// spreadsheets like. R's read.csv() knows about the header.
func (ct *ContigTable) WriteCSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, `"contig","windows","mean gc"`)
	for p := 1; p <= NPercent; p++ {
		fmt.Fprintf(bw, `,"%d"`, p)
	}
	fmt.Fprintln(bw)
	for i, name := range ct.Names {
		fmt.Fprintf(bw, "%q,%d,%.2f", name, ct.NWindow[i], ct.MeanGC[i])
		for _, f := range ct.Frac.Mat[i] {
			fmt.Fprintf(bw, ",%.4f", f)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}
