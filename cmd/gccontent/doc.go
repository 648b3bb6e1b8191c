// 18 Oct 2026

/*
Gccontent makes a pre-calculated GC-content histogram from a FASTA
reference genome. The histogram is used by BAM QC in the plot
"GC content distribution" when comparing reads against a known
GC distribution.

Each chromosome is cut into windows of 1000 bases, not counting N's.
Windows do not cross from one chromosome to the next and the left over
piece at the end of a chromosome is ignored. For each window, the number
of G's and C's is counted. The output has one line per possible count,
giving the fraction of windows with that count:

	#GC_CONTENT_HISTOGRAM WINDOW_SIZE=1001 NUM_SEGMENTS=2897310
	0 : 0.000012
	1 : 0.000000
	...
	1000 : 0.000003

Input may be gzipped. "-" reads from standard input.

Usage:
	gccontent -i genome.fa [flags]

The flags are:
	-i input
		FASTA file, required
	-o outfile
		Output file, default GC_content.txt. "-" for standard output
	-w windowsize
		Number of bins, one more than the bases in a window. Default 1001
	-p plot.png
		Also draw the histogram, folded into percent GC, as a PNG
	-c contigs.csv
		Also write a table with the GC distribution of every chromosome
	-q
		Do not print progress
	-t
		Print out timing information
*/
package main
