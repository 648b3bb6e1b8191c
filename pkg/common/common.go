// 18 Oct 2026

// Package common holds the exit codes and defaults shared by the
// commands, and a helper for writing test input.
package common

import (
	"fmt"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

const (
	DfltOutFname = "GC_content.txt" // where the histogram goes if -o is not given
	StdinName    = "-"
)

// WrtTemp writes a string to a temporary file and returns
// the filename. The tests use it to make fasta input.
func WrtTemp(s string) (string, error) {
	return WrtTempBytes([]byte(s))
}

// WrtTempBytes is WrtTemp for data which might not be text, like
// gzipped input.
func WrtTempBytes(b []byte) (string, error) {
	fTmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}
	defer fTmp.Close()
	if _, err := fTmp.Write(b); err != nil {
		return "", fmt.Errorf("writing to temp file %v: %w", fTmp.Name(), err)
	}
	return fTmp.Name(), nil
}

