package gchist

// NPercent is the number of bins after folding into percent GC.
const NPercent = 100

// percentNdx says which percent bin a window with gcCount G's and C's
// out of nCount goes to. Percent p lives at index p-1 and 0 % is put
// in with 1 %.
func percentNdx(gcCount, nCount int) int {
	p := (NPercent*gcCount + nCount - 1) / nCount // ceiling
	if p < 1 {
		p = 1
	}
	return p - 1
}

// Percent folds a normalized histogram into NPercent bins. Element i
// is the fraction of windows with GC-content of i+1 %, rounded up, so
// for the default window size, the first element is bins 0 to 10 and
// after that every ten bins make one element. This is how the
// histogram is drawn next to read GC-content.
// A histogram with fewer than two bins gives nil.
func Percent(freq []float64) []float64 {
	if len(freq) < 2 {
		return nil
	}
	nCount := len(freq) - 1
	pct := make([]float64, NPercent)
	for i, f := range freq {
		pct[percentNdx(i, nCount)] += f
	}
	return pct
}
