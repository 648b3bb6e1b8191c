package gchist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	headTag      = "#GC_CONTENT_HISTOGRAM"
	windowTag    = "WINDOW_SIZE="
	nSegmentTag  = "NUM_SEGMENTS="
	headFmt      = headTag + " " + windowTag + "%d " + nSegmentTag + "%d\n"
	binFmt       = "%d : %.6f\n"
	binSeparator = ":"
)

// Write writes the normalized histogram in the text format read by
// the BAM QC GC-content plot:
//
//	#GC_CONTENT_HISTOGRAM WINDOW_SIZE=1001 NUM_SEGMENTS=2897310
//	0 : 0.000012
//	1 : 0.000000
//
// with one line for every bin, zeros included.
// Nothing is written if there is nothing to normalize.
func Write(w io.Writer, h *Histogram) error {
	freq, err := h.Normalize()
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, headFmt, h.WindowSize, h.NSegment)
	for i, f := range freq {
		fmt.Fprintf(bw, binFmt, i, f)
	}
	return bw.Flush()
}

// Profile is a histogram read back from a file. Only the
// normalized values survive the trip.
type Profile struct {
	WindowSize int
	NSegment   int64
	Freq       []float64
}

// Percent folds the profile into percent GC bins.
func (p *Profile) Percent() []float64 { return Percent(p.Freq) }

func formatErr(lineNum int, format string, a ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrFormat, lineNum, fmt.Sprintf(format, a...))
}

// parseHead picks the window size and number of segments out of the
// header line.
func (p *Profile) parseHead(line string, lineNum int) error {
	var gotW, gotN bool
	for _, f := range strings.Fields(line)[1:] {
		var err error
		switch {
		case strings.HasPrefix(f, windowTag):
			p.WindowSize, err = strconv.Atoi(f[len(windowTag):])
			gotW = true
		case strings.HasPrefix(f, nSegmentTag):
			p.NSegment, err = strconv.ParseInt(f[len(nSegmentTag):], 10, 64)
			gotN = true
		}
		if err != nil {
			return formatErr(lineNum, "%v", err)
		}
	}
	if !gotW || !gotN {
		return formatErr(lineNum, "header needs %s and %s", windowTag, nSegmentTag)
	}
	if p.WindowSize < 2 {
		return formatErr(lineNum, "%v", ErrWindowSize)
	}
	return nil
}

// Read reads a histogram written by Write. Blank lines and comment
// lines starting with "#" are skipped, but the header has to come
// before the first bin and bins have to be in order.
func Read(r io.Reader) (*Profile, error) {
	var p Profile
	var haveHead bool
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, headTag):
			if haveHead {
				return nil, formatErr(lineNum, "second header")
			}
			if err := p.parseHead(line, lineNum); err != nil {
				return nil, err
			}
			haveHead = true
			continue
		case strings.HasPrefix(line, "#"):
			continue
		}
		if !haveHead {
			return nil, formatErr(lineNum, "bin before %s header", headTag)
		}
		sBin, sVal, ok := strings.Cut(line, binSeparator)
		if !ok {
			return nil, formatErr(lineNum, "no %q in %q", binSeparator, line)
		}
		bin, err := strconv.Atoi(strings.TrimSpace(sBin))
		if err != nil {
			return nil, formatErr(lineNum, "%v", err)
		}
		if bin != len(p.Freq) {
			return nil, formatErr(lineNum, "bin %d, expected %d", bin, len(p.Freq))
		}
		val, err := strconv.ParseFloat(strings.TrimSpace(sVal), 64)
		if err != nil {
			return nil, formatErr(lineNum, "%v", err)
		}
		p.Freq = append(p.Freq, val)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !haveHead {
		return nil, fmt.Errorf("%w: no %s header", ErrFormat, headTag)
	}
	if len(p.Freq) != p.WindowSize {
		return nil, fmt.Errorf("%w: %d bins, but %s%d",
			ErrFormat, len(p.Freq), windowTag, p.WindowSize)
	}
	return &p, nil
}
