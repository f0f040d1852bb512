package field

import (
	"strings"
	"unicode/utf8"
)

// sanitize replaces malformed UTF-8 sequences with a single replacement
// codepoint so arbitrary host-supplied bytes never reach the buffer raw.
func sanitize(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, string(utf8.RuneError))
}

// Count returns the number of codepoints in s.
func Count(s string) int {
	return utf8.RuneCountInString(s)
}

// ByteOffset converts a codepoint index into a byte offset in s. The index
// is clamped to [0, Count(s)], so the result is always a valid split point.
func ByteOffset(s string, index int) int {
	if index <= 0 {
		return 0
	}
	n := 0
	for i := range s {
		if n == index {
			return i
		}
		n++
	}
	return len(s)
}
