// Package white removes white space from sequence lines.

package white

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// IsWhite reports whether c is ascii white space.
func IsWhite(c byte) bool { return asciiSpace[c] }

// Remove acts on a byte slice in place and removes all the white
// space. The length is adjusted, the capacity and backing array are
// unchanged, so nothing is allocated.
func Remove(s *[]byte) {
	in := *s
	n := 0
	for _, c := range in {
		if !asciiSpace[c] {
			in[n] = c
			n++
		}
	}
	*s = in[:n]
}
