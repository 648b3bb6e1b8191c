// 18 Oct 2026
package gccontent

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/andrew-torda/gccontent/pkg/common"
	"github.com/andrew-torda/gccontent/pkg/fasta"
	"github.com/andrew-torda/gccontent/pkg/gchist"
	"github.com/andrew-torda/gccontent/pkg/gcplot"
)

// CmdFlag holds the choices from the command line.
type CmdFlag struct {
	WindowSize  int         // bins in the histogram, one more than symbols per window
	PlotFname   string      // if set, draw the percent histogram here
	ContigFname string      // if set, write the per contig table here
	Quiet       bool        // no progress messages
	Time        bool        // do we want to print out run time ?
	Logger      *log.Logger // nil means standard error
}

func (flags *CmdFlag) logger() *log.Logger {
	switch {
	case flags.Quiet:
		return log.New(io.Discard, "", 0)
	case flags.Logger != nil:
		return flags.Logger
	}
	return log.New(os.Stderr, "", 0)
}

// outMode is the mode for new output files.
const outMode os.FileMode = 0o644

// staged is an output which has been completely written to a
// temporary file next to fname, but not yet put in place.
// Standard output ("-") is kept in memory until commit.
type staged struct {
	fname   string
	tmpName string
	stdout  *bytes.Buffer
}

// stage calls wrt to fill a temporary file for fname. The temporary
// file gets the mode of an old fname, if there is one, or outMode.
func stage(logger *log.Logger, fname string, wrt func(io.Writer) error) (*staged, error) {
	if fname == common.StdinName {
		var buf bytes.Buffer
		if err := wrt(&buf); err != nil {
			return nil, err
		}
		return &staged{fname: fname, stdout: &buf}, nil
	}
	mode := outMode
	if fi, err := os.Stat(fname); err == nil {
		logger.Println("Warning, trashing old version of", fname)
		mode = fi.Mode().Perm()
	}
	fp, err := os.CreateTemp(filepath.Dir(fname), "."+filepath.Base(fname)+".tmp")
	if err != nil {
		return nil, fmt.Errorf("output file %v: %w", fname, err)
	}
	s := &staged{fname: fname, tmpName: fp.Name()}
	if err = wrt(fp); err != nil {
		fp.Close()
		s.discard()
		return nil, err
	}
	if err = fp.Chmod(mode); err != nil {
		fp.Close()
		s.discard()
		return nil, fmt.Errorf("output file %v: %w", fname, err)
	}
	if err = fp.Close(); err != nil {
		s.discard()
		return nil, fmt.Errorf("output file %v: %w", fname, err)
	}
	return s, nil
}

func (s *staged) discard() {
	if s.tmpName != "" {
		os.Remove(s.tmpName)
	}
}

// commit puts the output in place.
func (s *staged) commit() error {
	if s.stdout != nil {
		_, err := s.stdout.WriteTo(os.Stdout)
		return err
	}
	if err := os.Rename(s.tmpName, s.fname); err != nil {
		s.discard()
		return fmt.Errorf("output file %v: %w", s.fname, err)
	}
	return nil
}

// scan reads the genome and builds the histogram.
func scan(flags *CmdFlag, infile string, logger *log.Logger) (*gchist.Histogram, error) {
	rc, err := fasta.Open(infile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", gchist.ErrInputNotFound, err)
	}
	defer rc.Close()
	rdr := fasta.NewReader(rc)
	defer rdr.Close()

	opts := []gchist.Option{
		gchist.WithProgress(func(name string, nWindow int64) {
			logger.Printf("Chromosome %s is analyzed, %d windows", name, nWindow)
		}),
	}
	if flags.ContigFname != "" {
		opts = append(opts, gchist.WithContigs())
	}
	h, err := gchist.Build(rdr, flags.WindowSize, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", infile, err)
	}
	return h, nil
}

// Mymain reads a fasta file, builds the GC-content histogram and
// writes it to outfile. The plot and contig table are only written
// if asked for. Every output is written to a temporary file first and
// they are only renamed into place once all of them have been
// written, so an error while scanning or writing leaves no output.
func Mymain(flags *CmdFlag, infile, outfile string) (err error) {
	logger := flags.logger()
	if flags.Time {
		startTime := time.Now()
		end := func() { // Wrapping in a closure is helpful. Gives the right time.
			logger.Println("finished after", time.Since(startTime).Milliseconds(), "ms")
		}
		defer end()
	}
	if flags.WindowSize == 0 {
		flags.WindowSize = gchist.DfltWindowSize
	}
	if infile == "" {
		return errors.New("no input fasta file given")
	}
	if outfile == "" {
		outfile = common.DfltOutFname
	}

	h, err := scan(flags, infile, logger)
	if err != nil {
		return err
	}
	logger.Println("Analysis is finished, normalizing and reporting results...")

	var outs []*staged
	defer func() {
		if err != nil {
			for _, s := range outs {
				s.discard()
			}
		}
	}()
	add := func(fname string, wrt func(io.Writer) error) error {
		s, err := stage(logger, fname, wrt)
		if err == nil {
			outs = append(outs, s)
		}
		return err
	}

	if err = add(outfile, func(w io.Writer) error { return gchist.Write(w, h) }); err != nil {
		return err
	}
	if flags.PlotFname != "" {
		freq, err := h.Normalize()
		if err != nil {
			return err
		}
		opts := &gcplot.Options{Title: "GC content " + filepath.Base(infile)}
		err = add(flags.PlotFname, func(w io.Writer) error {
			return gcplot.Render(w, gchist.Percent(freq), opts)
		})
		if err != nil {
			return err
		}
	}
	if flags.ContigFname != "" {
		ct := h.Contigs()
		if err = add(flags.ContigFname, ct.WriteCSV); err != nil {
			return err
		}
	}
	for _, s := range outs {
		if err = s.commit(); err != nil {
			return err
		}
	}
	logger.Printf("%d sequences, %d windows of %d. Done.", h.NRecord, h.NSegment, h.WindowSize-1)
	return nil
}
