// 31 July 2020
// Random genomes for testing. Chromosomes have a chosen GC-content,
// runs of N like the gaps in real assemblies, some soft-masked (lower
// case) bases and lines of fixed width.

package randseq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"
)

const dfltLineLen = 60

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed     int64     // random number seed
	Wrtr      io.Writer // where we write to
	Cmmt      string    // sequences are called Cmmt1, Cmmt2, ...
	Nseq      int       // number of sequences
	Len       int       // Length of sequences, including N's
	GCFrac    float64   // fraction of G and C among the bases which are not N
	NRunProb  float64   // chance of a run of N's starting at any position
	NRunLen   int       // length of a run of N's
	LowerFrac float64   // fraction of bases written in lower case
	LineLen   int       // sequence line width, 0 for the default of 60
}

// Seq returns a byte slice with a random sequence in it.
func Seq(args *RandSeqArgs, rnd *rand.Rand) []byte {
	ret := make([]byte, 0, args.Len)
	for len(ret) < args.Len {
		if args.NRunProb > 0 && rnd.Float64() < args.NRunProb {
			for j := 0; j < args.NRunLen && len(ret) < args.Len; j++ {
				ret = append(ret, 'N')
			}
			continue
		}
		var c byte
		if rnd.Float64() < args.GCFrac {
			c = "GC"[rnd.Intn(2)]
		} else {
			c = "AT"[rnd.Intn(2)]
		}
		if args.LowerFrac > 0 && rnd.Float64() < args.LowerFrac {
			c |= 0x20
		}
		ret = append(ret, c)
	}
	return ret
}

// writeseq takes byte slices which are our sequences. It adds a comment
// and writes them out in lines of fixed width. n is the number of the
// sequence, so the output has comment lines ">chr1", ">chr2", ...
func writeseq(sChan <-chan []byte, args *RandSeqArgs, wg *sync.WaitGroup, errp *error) {
	defer wg.Done()
	lineLen := args.LineLen
	if lineLen <= 0 {
		lineLen = dfltLineLen
	}
	bw := bufio.NewWriter(args.Wrtr)
	var i int
	for s := range sChan {
		if *errp != nil {
			continue // drain the channel so the sender is not stuck
		}
		i++
		fmt.Fprintf(bw, ">%s%d\n", args.Cmmt, i)
		for ; len(s) > lineLen; s = s[lineLen:] {
			bw.Write(s[:lineLen])
			bw.WriteByte('\n')
		}
		bw.Write(s)
		if _, err := bw.WriteString("\n"); err != nil {
			*errp = err
		}
	}
	if err := bw.Flush(); err != nil && *errp == nil {
		*errp = err
	}
}

// RandSeqMain writes random sequences to an io.Writer.
func RandSeqMain(args *RandSeqArgs) error {
	if args.Wrtr == nil {
		return errors.New("randseq: no writer")
	}
	if args.GCFrac < 0 || args.GCFrac > 1 || args.LowerFrac < 0 || args.LowerFrac > 1 ||
		args.NRunProb < 0 || args.NRunProb > 1 {
		return errors.New("randseq: fractions and probabilities must be from 0 to 1")
	}
	var wg sync.WaitGroup
	var werr error
	rnd := rand.New(rand.NewSource(args.Iseed))
	sChan := make(chan []byte)
	wg.Add(1)
	go writeseq(sChan, args, &wg, &werr)
	for i := 0; i < args.Nseq; i++ {
		sChan <- Seq(args, rnd)
	}
	close(sChan)
	wg.Wait()
	return werr
}
