// 18 Oct 2026
// Build a GC-content histogram of a reference genome.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/gccontent/pkg/common"
	"github.com/andrew-torda/gccontent/pkg/gccontent"
	"github.com/andrew-torda/gccontent/pkg/gchist"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "-i fastafile [-o outfile] [flags]")
	long := `Read a reference genome and write a histogram of GC-content over
windows of fixed size. The histogram is normalized to the number of windows.`
	fmt.Fprintln(os.Stderr, long)
	flag.PrintDefaults()
}

func main() {
	var flags gccontent.CmdFlag
	var infile, outfile string

	flag.StringVar(&infile, "i", "", "input genome sequence (fasta, may be gzipped), required")
	flag.StringVar(&outfile, "o", common.DfltOutFname, "output file")
	flag.IntVar(&flags.WindowSize, "w", gchist.DfltWindowSize, "window size, one more than bases per window")
	flag.StringVar(&flags.PlotFname, "p", "", "filename for a PNG plot of the histogram")
	flag.StringVar(&flags.ContigFname, "c", "", "filename for a csv table per chromosome")
	flag.BoolVar(&flags.Quiet, "q", false, "quiet, no progress messages")
	flag.BoolVar(&flags.Time, "t", false, "print out timing information")
	flag.Usage = usage
	flag.Parse()

	if infile == "" || flag.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "An input file with -i is required")
		usage()
		os.Exit(common.ExitUsageError)
	}
	if err := gccontent.Mymain(&flags, infile, outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(common.ExitFailure)
	}
	os.Exit(common.ExitSuccess)
}
