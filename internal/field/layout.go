package field

import "unicode"

// VisualLine is one rendered row: the codepoint range [Start, End) of the
// buffer plus a display-only indent prefix. The layout is always rebuilt
// wholesale after a content or width change, never patched in place.
type VisualLine struct {
	Start  int
	End    int
	Indent string
}

// wrapRunes runs the greedy word-wrap over the whole buffer. Explicit
// newlines force a break and the following line carries NewLineIndent;
// wrapped breaks carry WrapIndent. The indent width counts against the
// line's budget. A single word wider than the field is kept whole on its
// own line rather than split.
func wrapRunes(runes []rune, opts Options) []VisualLine {
	lines := make([]VisualLine, 0, 4)
	start := 0
	indent := ""
	width := 0.0
	lastBreak := -1
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\n' {
			lines = append(lines, VisualLine{Start: start, End: i, Indent: indent})
			start = i + 1
			indent = opts.NewLineIndent
			width = opts.measureString(indent)
			lastBreak = -1
			continue
		}
		if width+opts.Measure(r) > opts.Width && i > start && lastBreak > start {
			lines = append(lines, VisualLine{Start: start, End: lastBreak, Indent: indent})
			start = lastBreak
			indent = opts.WrapIndent
			width = opts.measureString(indent)
			lastBreak = -1
			i = start - 1
			continue
		}
		width += opts.Measure(r)
		if isWrapSpace(r) {
			lastBreak = i + 1
		}
	}
	lines = append(lines, VisualLine{Start: start, End: len(runes), Indent: indent})
	return lines
}

func isWrapSpace(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}

// lineColumn maps a codepoint offset to its (visual line, column). The
// column counts codepoints from the line start; the indent is geometry
// only and never part of the column. An offset sitting exactly on a wrap
// boundary belongs to the start of the continuation line.
func (f *Field) lineColumn(offset int) (line, col int) {
	if offset < 0 {
		offset = 0
	}
	if offset > f.buf.Len() {
		offset = f.buf.Len()
	}
	for i, vl := range f.lines {
		if i+1 < len(f.lines) && offset >= f.lines[i+1].Start {
			continue
		}
		col = offset - vl.Start
		if col > vl.End-vl.Start {
			col = vl.End - vl.Start
		}
		if col < 0 {
			col = 0
		}
		return i, col
	}
	return 0, 0
}

// offsetAt is the inverse of lineColumn, clamped on both axes so any
// (line, col) pair from the host resolves to a valid offset.
func (f *Field) offsetAt(line, col int) int {
	if len(f.lines) == 0 {
		return 0
	}
	if line < 0 {
		line = 0
	}
	if line >= len(f.lines) {
		line = len(f.lines) - 1
	}
	vl := f.lines[line]
	if col < 0 {
		col = 0
	}
	if col > vl.End-vl.Start {
		col = vl.End - vl.Start
	}
	return vl.Start + col
}

// nearestOffset finds the codepoint offset closest to pixel x on the given
// visual line. Clicks left of the indent land on the first codepoint;
// clicks past the line end land after the last one.
func (f *Field) nearestOffset(line int, x float64) int {
	if len(f.lines) == 0 {
		return 0
	}
	if line < 0 {
		line = 0
	}
	if line >= len(f.lines) {
		line = len(f.lines) - 1
	}
	vl := f.lines[line]
	acc := f.opts.measureString(vl.Indent)
	runes := f.buf.Runes()
	for i := vl.Start; i < vl.End; i++ {
		w := f.opts.Measure(runes[i])
		if x < acc+w/2 {
			return i
		}
		acc += w
	}
	return vl.End
}

// ColumnX returns the pixel x of the caret placed before the given column
// on a visual line, including the indent width.
func (f *Field) ColumnX(line, col int) float64 {
	if line < 0 || line >= len(f.lines) {
		return 0
	}
	vl := f.lines[line]
	if col < 0 {
		col = 0
	}
	if col > vl.End-vl.Start {
		col = vl.End - vl.Start
	}
	x := f.opts.measureString(vl.Indent)
	runes := f.buf.Runes()
	for i := vl.Start; i < vl.Start+col; i++ {
		x += f.opts.Measure(runes[i])
	}
	return x
}
