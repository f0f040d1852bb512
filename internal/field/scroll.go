package field

// VisibleLines returns how many visual lines the field shows: the line count
// clamped between MinLines and MaxLines.
func (f *Field) VisibleLines() int {
	v := len(f.lines)
	if v < f.opts.MinLines {
		v = f.opts.MinLines
	}
	if f.opts.MaxLines > 0 && v > f.opts.MaxLines {
		v = f.opts.MaxLines
	}
	return v
}

// ScrollOffset returns the index of the first visible visual line.
func (f *Field) ScrollOffset() int {
	return f.scroll
}

// ensureCursorVisible moves the scroll window the minimal distance that
// brings the cursor's visual line back in view, then clamps the window to
// the layout. It runs after every operation that can move the cursor or
// change the layout.
func (f *Field) ensureCursorVisible() {
	vis := f.VisibleLines()
	line, _ := f.lineColumn(f.cursor)
	if line < f.scroll {
		f.scroll = line
	}
	if line >= f.scroll+vis {
		f.scroll = line - vis + 1
	}
	maxScroll := len(f.lines) - vis
	if maxScroll < 0 {
		maxScroll = 0
	}
	if f.scroll > maxScroll {
		f.scroll = maxScroll
	}
	if f.scroll < 0 {
		f.scroll = 0
	}
}
