package fasta

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/gccontent/pkg/common"
	"github.com/andrew-torda/gccontent/pkg/zwrap"
)

// mapped is a read-only memory mapping of a whole file, read through
// a bytes.Reader.
type mapped struct {
	*bytes.Reader
	mm mmap.MMap
	fp *os.File
}

// Close unmaps, then closes the file.
func (m *mapped) Close() error {
	return errors.Join(m.mm.Unmap(), m.fp.Close())
}

// Open gives us something to read a fasta file from.
// An empty name or "-" means standard input. Compressed input is
// recognised and decompressed. A plain, regular file is mapped
// read-only into memory, so the kernel does the buffering and
// pages can be dropped once we are past them.
func Open(fname string) (io.ReadCloser, error) {
	if fname == "" || fname == common.StdinName {
		return zwrap.WrapMaybe(io.NopCloser(os.Stdin))
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	fi, err := fp.Stat()
	if err != nil {
		fp.Close()
		return nil, err
	}
	if fi.IsDir() {
		fp.Close()
		return nil, &os.PathError{Op: "open", Path: fname, Err: errors.New("is a directory")}
	}
	if !fi.Mode().IsRegular() || fi.Size() < 2 { // pipes, fifos and files
		return wrapOrClose(fp) //                  too small to map or be gzip
	}

	var magic [2]byte
	if _, err := fp.ReadAt(magic[:], 0); err != nil {
		fp.Close()
		return nil, err
	}
	if zwrap.IsGzip(magic[:]) {
		return wrapOrClose(fp)
	}

	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil { // Some filesystems will not map. Just read.
		return wrapOrClose(fp)
	}
	return &mapped{Reader: bytes.NewReader(mm), mm: mm, fp: fp}, nil
}

func wrapOrClose(fp *os.File) (io.ReadCloser, error) {
	zr, err := zwrap.WrapMaybe(fp)
	if err != nil {
		fp.Close()
		return nil, err
	}
	return zr, nil
}
