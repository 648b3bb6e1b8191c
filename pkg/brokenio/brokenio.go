// Package brokenio is a wrapper around an io.ReadCloser which breaks
// on request. Typical use: you have a file pointer or a reader from a
// compressed source. You write
//    reader = brokenio.NewReader(reader)
// to wrap the old reader. Everything then functions as before, but
// with artificial errors.
// A failure on the first read returns io.EOF with no data. This is
// what one often sees on a zero length file.
package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrBroken is returned once the reader has decided to fail.
var ErrBroken = errors.New("brokenio: artificial read failure")

// BrknRdrClsr is modelled on the various Readers in the standard
// library, but with settings controlling when it breaks.
type BrknRdrClsr struct {
	rdrOrig      io.ReadCloser // Wrapped reader
	failAfter    int           // fail once this many bytes have been read, -1 never
	probZeroFile float32       // Probability of returning a zero length file
	rnd          *rand.Rand
	nCalled      int
	nByte        int
	verbose      bool
}

// NewReader returns a new Reader - a wrapper around the old one.
// Until told otherwise, it does not break.
func NewReader(rIn io.ReadCloser) *BrknRdrClsr {
	return &BrknRdrClsr{
		rdrOrig:   rIn,
		failAfter: -1,
		rnd:       rand.New(rand.NewSource(1637)),
	}
}

// SetVerbose sets the verbosity flag to true or false
func (r *BrknRdrClsr) SetVerbose(newV bool) { r.verbose = newV }

// SetFailAfter says to return ErrBroken once n bytes have gone
// through. A negative n means never.
func (r *BrknRdrClsr) SetFailAfter(n int) { r.failAfter = n }

// SetProbZeroFile sets the rate at which we simply return 0 bytes on the
// first read. It must be a value from 0 to 1. We do not check if the
// argument is valid.
func (r *BrknRdrClsr) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetSeed fixes the random number generator used for SetProbZeroFile.
func (r *BrknRdrClsr) SetSeed(seed int64) { r.rnd = rand.New(rand.NewSource(seed)) }

// NByte is the number of bytes handed out so far.
func (r *BrknRdrClsr) NByte() int { return r.nByte }

// Read wraps the original reader and sums up the amount of data that
// has gone through. Reads are cut short so we never go past the
// failure point, then every read after that fails.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 {
		if r.rnd.Float32() < r.probZeroFile {
			r.nCalled++
			return 0, io.EOF
		}
	}
	r.nCalled++
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, ErrBroken
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	n, err = r.rdrOrig.Read(p)
	r.nByte += n
	return n, err
}

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error {
	if r.verbose {
		fmt.Println("Closing", r.nCalled, "calls and", r.nByte, "bytes")
	}
	return r.rdrOrig.Close()
}
