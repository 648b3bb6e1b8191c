package gchist

import (
	"fmt"
	"io"

	"github.com/andrew-torda/gccontent/pkg/fasta"
)

// Symbol classes. Anything that is not N, G or C counts towards the
// window, but not towards the GC count.
const (
	skip byte = iota
	other
	gc
)

var symClass = func() (t [256]byte) {
	for i := range t {
		t[i] = other
	}
	t['N'], t['n'] = skip, skip
	t['G'], t['g'] = gc, gc
	t['C'], t['c'] = gc, gc
	return
}()

// Progress is told about each record once it has been scanned.
type Progress func(name string, nWindow int64)

// Option changes how a Builder works.
type Option func(*Builder)

// WithProgress sets a function to be called after each record.
func WithProgress(p Progress) Option { return func(b *Builder) { b.progress = p } }

// WithContigs asks for a per-contig breakdown. See Histogram.Contigs.
func WithContigs() Option { return func(b *Builder) { b.keepContigs = true } }

// Builder is the accumulator. It is fed one record at a time, in
// order, with Begin, Add and End.
type Builder struct {
	windowSize int
	nCount     int // symbols per window
	counts     []int64
	nSegment   int64
	nRecord    int

	open     bool // between Begin and End
	name     string
	counted  int // symbols in the current window
	gcCount  int // G and C in the current window
	nWindow  int64
	gcSum    int64 // G and C in complete windows of this record
	pctCount []int64

	progress    Progress
	keepContigs bool
	contigs     []contigRow
}

// NewBuilder returns an empty accumulator with windowSize bins.
func NewBuilder(windowSize int, opts ...Option) (*Builder, error) {
	if windowSize < 2 {
		return nil, fmt.Errorf("%w, got %d", ErrWindowSize, windowSize)
	}
	b := &Builder{
		windowSize: windowSize,
		nCount:     windowSize - 1,
		counts:     make([]int64, windowSize),
	}
	for _, o := range opts {
		o(b)
	}
	if b.keepContigs {
		b.pctCount = make([]int64, NPercent)
	}
	return b, nil
}

// Begin starts a new record. If the last one was not ended, it is
// ended now.
func (b *Builder) Begin(name string) {
	if b.open {
		b.End()
	}
	b.open = true
	b.name = name
	b.counted, b.gcCount = 0, 0
	b.nWindow, b.gcSum = 0, 0
	for i := range b.pctCount {
		b.pctCount[i] = 0
	}
	b.nRecord++
}

// Add scans some symbols of the current record. A record can be
// given in as many pieces as one likes.
func (b *Builder) Add(p []byte) {
	counted, gcCount := b.counted, b.gcCount
	for _, c := range p {
		switch symClass[c] {
		case skip:
			continue
		case gc:
			gcCount++
		}
		if counted++; counted == b.nCount {
			b.closeWindow(gcCount)
			counted, gcCount = 0, 0
		}
	}
	b.counted, b.gcCount = counted, gcCount
}

func (b *Builder) closeWindow(gcCount int) {
	b.counts[gcCount]++
	b.nSegment++
	b.nWindow++
	b.gcSum += int64(gcCount)
	if b.pctCount != nil {
		b.pctCount[percentNdx(gcCount, b.nCount)]++
	}
}

// End finishes the current record. A partial window is dropped.
func (b *Builder) End() {
	if !b.open {
		return
	}
	b.open = false
	b.counted, b.gcCount = 0, 0
	if b.keepContigs && b.nWindow > 0 {
		row := contigRow{name: b.name, nWindow: b.nWindow, gcSum: b.gcSum}
		row.pct = append([]int64(nil), b.pctCount...)
		b.contigs = append(b.contigs, row)
	}
	if b.progress != nil {
		b.progress(b.name, b.nWindow)
	}
}

// NRecord is the number of records begun so far.
func (b *Builder) NRecord() int { return b.nRecord }

// Histogram ends any open record and returns the result. It is an
// error if there were no records or there was no complete window.
// The Builder should not be used afterwards.
func (b *Builder) Histogram() (*Histogram, error) {
	b.End()
	if b.nRecord == 0 {
		return nil, ErrEmptyInput
	}
	if b.nSegment == 0 {
		return nil, &DegenerateError{NRecord: b.nRecord, WindowSize: b.windowSize}
	}
	return &Histogram{
		WindowSize: b.windowSize,
		NSegment:   b.nSegment,
		NRecord:    b.nRecord,
		Counts:     b.counts,
		contigs:    b.contigs,
	}, nil
}

// RecordSource hands out records until it returns io.EOF.
// *fasta.Reader is one.
type RecordSource interface {
	Next() (*fasta.Record, error)
}

// Build scans every record from src, in order, and returns the
// histogram.
func Build(src RecordSource, windowSize int, opts ...Option) (*Histogram, error) {
	b, err := NewBuilder(windowSize, opts...)
	if err != nil {
		return nil, err
	}
	for {
		rec, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading sequence %d: %w", b.NRecord()+1, err)
		}
		b.Begin(rec.Name())
		b.Add(rec.Seq)
		b.End()
	}
	return b.Histogram()
}

// sliceSource is a RecordSource over records already in memory.
type sliceSource struct {
	recs []*fasta.Record
}

func (s *sliceSource) Next() (*fasta.Record, error) {
	if len(s.recs) == 0 {
		return nil, io.EOF
	}
	r := s.recs[0]
	s.recs = s.recs[1:]
	return r, nil
}

// Records makes a RecordSource from records in memory.
func Records(recs ...*fasta.Record) RecordSource { return &sliceSource{recs: recs} }
