/*
Randseq writes a random genome in fasta format, for testing
gccontent.

Usage:
	randseq [flags] outfile nseq length

An outfile of "-" means standard output. Sequences are called chr1,
chr2, ... and each has length bases, including runs of N.

The flags are:
	-gc fraction
		Fraction of G and C among the bases that are not N. Default 0.41
	-n probability
		Chance of a run of N starting at any position. Default 0
	-nlen length
		Length of a run of N. Default 1000
	-lower fraction
		Fraction of bases written in lower case. Default 0
	-w width
		Line width. Default 60
	-r seed
		Random number seed
*/
package main
