// 18 Oct 2026

// Package fasta reads fasta formatted files one record at a time.
// A reference genome is read as a stream, so only the record being
// handed out has to sit in memory.
//
// A ">" anywhere in the sequence, not only at the start of a line,
// starts a new record, so "AC>b\nGG" is read as a record ending in
// AC followed by a record b with sequence GG.
package fasta

import (
	"strings"
)

const cmmtChar byte = '>' // and this introduces comments in fasta format

// Record is one chromosome or contig.
type Record struct {
	Cmmt string // everything after the ">" on the comment line
	Seq  []byte // sequence with white space removed, case as in the file
}

// Name returns the identifier for a record. Of course it does not
// really know that. It just returns the first word in the comment,
// which is what everyone uses as the chromosome name.
func (r *Record) Name() string {
	f := strings.Fields(r.Cmmt)
	if len(f) == 0 {
		return ""
	}
	return f[0]
}

// Len is the number of symbols, including any N's.
func (r *Record) Len() int { return len(r.Seq) }

// String returns the record as it would look in a file, without
// breaking up long lines.
func (r *Record) String() string {
	return string(cmmtChar) + r.Cmmt + "\n" + string(r.Seq)
}
