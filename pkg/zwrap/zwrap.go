// Package zwrap takes a file pointer and optionally wraps it so reads
// come through a gzip decompressor. Upon calling Close, the
// decompressor will be closed, followed by the underlying file.
// Reference genomes are very often shipped as .fa.gz, so the input
// side of the programs goes through here.

package zwrap

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"io"
)

var gzMagic = []byte{0x1f, 0x8b}

// IsGzip says if the start of some data looks like a gzip stream.
func IsGzip(b []byte) bool { return bytes.HasPrefix(b, gzMagic) }

// FpGzip is what we return. If zrdr is nil, the data was not
// compressed and reads go straight to rdr.
type FpGzip struct {
	fp   io.ReadCloser // what we close at the end
	rdr  io.Reader     // what we read from if not compressed
	zrdr *gzip.Reader
}

// Close closes the decompressor, then the underlying backing readCloser.
func (fc *FpGzip) Close() error {
	if fc.zrdr == nil {
		return fc.fp.Close()
	}
	return errors.Join(fc.zrdr.Close(), fc.fp.Close())
}

// Read makes sure we read from the compressed stream and
// not the underlying file stream.
func (fc *FpGzip) Read(p []byte) (int, error) {
	if fc.zrdr != nil {
		return fc.zrdr.Read(p)
	}
	return fc.rdr.Read(p)
}

// Compressed says if we are decompressing.
func (fc *FpGzip) Compressed() bool { return fc.zrdr != nil }

// Wrap takes a source like a file pointer and wraps it in a
// decompressor. It fails if the source is not gzipped.
func Wrap(fp io.ReadCloser) (*FpGzip, error) {
	zrdr, err := gzip.NewReader(fp)
	if err != nil {
		return nil, err
	}
	return &FpGzip{fp: fp, rdr: fp, zrdr: zrdr}, nil
}

// WrapMaybe will decide if the underlying stream is compressed
// and wrap it if necessary. It only peeks at the first bytes, so
// it is happy with standard input and pipes which cannot seek.
func WrapMaybe(fp io.ReadCloser) (*FpGzip, error) {
	br := bufio.NewReader(fp)
	magic, err := br.Peek(len(gzMagic))
	if err != nil && err != io.EOF { // a short or empty file is not
		return nil, err //              an error here, just not gzip
	}
	if !IsGzip(magic) {
		return &FpGzip{fp: fp, rdr: br}, nil
	}
	zrdr, err := gzip.NewReader(br)
	if err != nil {
		return nil, err
	}
	return &FpGzip{fp: fp, rdr: br, zrdr: zrdr}, nil
}
