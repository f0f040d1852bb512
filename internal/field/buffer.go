package field

import "strings"

// Buffer holds the field content as a codepoint slice. All offsets are
// codepoint indices; conversion from byte offsets happens at the boundary
// (see runes.go). A single-line buffer never contains a newline.
type Buffer struct {
	runes      []rune
	singleLine bool
}

func newBuffer(text string, singleLine bool) *Buffer {
	b := &Buffer{singleLine: singleLine}
	b.runes = b.filter(text)
	return b
}

func (b *Buffer) Len() int {
	return len(b.runes)
}

func (b *Buffer) String() string {
	return string(b.runes)
}

func (b *Buffer) Runes() []rune {
	return b.runes
}

// Slice returns the text in [start, end). Both bounds are clamped.
func (b *Buffer) Slice(start, end int) string {
	start, end = b.clampRange(start, end)
	return string(b.runes[start:end])
}

// Insert places text at the given codepoint index and returns the number of
// codepoints actually inserted (after sanitizing and newline stripping).
func (b *Buffer) Insert(at int, text string) int {
	return b.ReplaceRange(at, at, text)
}

// DeleteRange removes the codepoints in [start, end).
func (b *Buffer) DeleteRange(start, end int) {
	b.ReplaceRange(start, end, "")
}

// ReplaceRange substitutes the codepoints in [start, end) with text and
// returns the number of codepoints inserted.
func (b *Buffer) ReplaceRange(start, end int, text string) int {
	start, end = b.clampRange(start, end)
	ins := b.filter(text)
	out := make([]rune, 0, len(b.runes)-(end-start)+len(ins))
	out = append(out, b.runes[:start]...)
	out = append(out, ins...)
	out = append(out, b.runes[end:]...)
	b.runes = out
	return len(ins)
}

// filter sanitizes host-supplied text and strips newlines when the buffer is
// single-line. Carriage returns are normalized away in both modes.
func (b *Buffer) filter(text string) []rune {
	text = sanitize(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if b.singleLine {
		text = strings.ReplaceAll(text, "\n", "")
	}
	return []rune(text)
}

func (b *Buffer) clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i > len(b.runes) {
		return len(b.runes)
	}
	return i
}

func (b *Buffer) clampRange(start, end int) (int, int) {
	start = b.clampIndex(start)
	end = b.clampIndex(end)
	if start > end {
		start, end = end, start
	}
	return start, end
}
