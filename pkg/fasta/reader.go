// Reader for fasta format files.

package fasta

import (
	"bytes"
	"io"

	"github.com/andrew-torda/gccontent/pkg/white"
)

// An item is terminated by a newline if we are in a comment or a comment
// character ">" if we are in a sequence.
const (
	NL = '\n'
)

const defaultReadSize = 64 * 1024

type item struct {
	data     []byte
	complete bool  // data was ended by the terminator
	eof      bool  // last item from the lexer
	err      error // a real read error, not io.EOF
}

// lexer runs in its own goroutine, reading the input in chunks and
// cutting them at whatever terminator the reading side is waiting on.
type lexer struct {
	rdr    io.Reader
	rdsize int
	input  []byte
	ichan  chan *item
	done   chan struct{}
	term   byte
}

// send puts an item on the channel, unless the reader has gone away.
func (l *lexer) send(it *item) bool {
	select {
	case l.ichan <- it:
		return true
	case <-l.done:
		return false
	}
}

// next reads from the input and sends items to channel, ichan.
// An item is terminated by l.term, or the end of the buffer or
// end of input. After a terminator, we swap terminators, since a
// comment is always followed by a sequence and the other way round.
func (l *lexer) next() {
	defer close(l.ichan)
	for {
		if len(l.input) == 0 {
			buf := make([]byte, l.rdsize) // Fresh buffer, since the
			n, err := l.rdr.Read(buf)     // last one is still in use.
			l.input = buf[:n]
			if n == 0 && err != nil {
				it := &item{eof: true}
				if err != io.EOF {
					it.err = err
				}
				l.send(it)
				return
			}
			if n == 0 {
				continue
			}
		}
		it := new(item)
		if ndx := bytes.IndexByte(l.input, l.term); ndx == -1 {
			it.data = l.input // no terminator found, so just send
			l.input = nil     // back whatever we have in the buffer.
		} else { //                   We did find a terminator
			it.data = l.input[:ndx]
			it.complete = true
			l.input = l.input[ndx+1:]
			if l.term == NL {
				l.term = cmmtChar
			} else {
				l.term = NL
			}
		}
		if !l.send(it) {
			return
		}
	}
}

// Reader hands out records from a fasta stream. It must be closed if
// it is abandoned before io.EOF, so the lexer goroutine can finish.
type Reader struct {
	l     lexer
	state stateFn
	cmmt  []byte  // partial comment
	seq   []byte  // partial sequence
	out   *Record // finished record, waiting to be collected
	err   error
	nrec  int
}

type stateFn func(*Reader) stateFn

// NewReader returns a Reader with the default read size.
func NewReader(rdr io.Reader) *Reader { return NewReaderSize(rdr, defaultReadSize) }

// NewReaderSize lets one choose how much is read at a time. Tests
// use tiny sizes to make records break across reads.
func NewReaderSize(rdr io.Reader, rdsize int) *Reader {
	if rdsize < 1 {
		rdsize = defaultReadSize
	}
	r := &Reader{state: gstart}
	r.l = lexer{
		rdr:    rdr,
		rdsize: rdsize,
		ichan:  make(chan *item, 2),
		done:   make(chan struct{}),
		term:   cmmtChar, // Anything before the first ">" is ignored
	}
	go r.l.next()
	return r
}

// emit finishes the record being built.
func (r *Reader) emit() {
	r.out = &Record{Cmmt: string(r.cmmt), Seq: r.seq}
	r.cmmt = nil
	r.seq = nil
	r.nrec++
}

// receive gets the next item. If it carries an error, that is kept
// and the caller should stop.
func (r *Reader) receive() (*item, bool) {
	it, ok := <-r.l.ichan
	if !ok {
		return nil, false
	}
	if it.err != nil {
		r.err = it.err
		return nil, false
	}
	return it, true
}

// gstart throws away anything before the first comment.
func gstart(r *Reader) stateFn {
	it, ok := r.receive()
	if !ok || it.eof {
		return nil
	}
	if it.complete {
		return gcmmt
	}
	return gstart
}

// We are reading a comment
func gcmmt(r *Reader) stateFn {
	it, ok := r.receive()
	if !ok {
		return nil
	}
	if it.eof { // Comment at the very end with no sequence
		r.emit()
		return nil
	}
	r.cmmt = append(r.cmmt, it.data...)
	if it.complete {
		if n := len(r.cmmt); n > 0 && r.cmmt[n-1] == '\r' {
			r.cmmt = r.cmmt[:n-1]
		}
		return gseq
	}
	return gcmmt
}

// We are reading a sequence
func gseq(r *Reader) stateFn {
	it, ok := r.receive()
	if !ok {
		return nil
	}
	white.Remove(&it.data)
	r.seq = append(r.seq, it.data...)
	if it.eof {
		r.emit()
		return nil
	}
	if it.complete {
		r.emit()
		return gcmmt
	}
	return gseq
}

// Next returns the next record. After the last one, it returns
// io.EOF. A read error from the underlying reader is returned as is.
func (r *Reader) Next() (*Record, error) {
	for r.out == nil && r.state != nil && r.err == nil {
		r.state = r.state(r)
	}
	if r.err != nil {
		return nil, r.err
	}
	if rec := r.out; rec != nil {
		r.out = nil
		return rec, nil
	}
	return nil, io.EOF
}

// NRecord is the number of records handed out so far.
func (r *Reader) NRecord() int { return r.nrec }

// Close stops the lexer. It does not close the underlying reader.
func (r *Reader) Close() error {
	select {
	case <-r.l.done:
	default:
		close(r.l.done)
	}
	r.state = nil
	return nil
}
