package field

// selection returns the normalized range. A zero-length selection is treated
// as none so edits never observe an empty delete.
func (f *Field) selection() (start, end int, ok bool) {
	if !f.selActive || f.selAnchor == f.cursor {
		return 0, 0, false
	}
	start, end = f.selAnchor, f.cursor
	if start > end {
		start, end = end, start
	}
	return start, end, true
}

func (f *Field) clearSelection() {
	f.selActive = false
	f.selAnchor = f.cursor
}

// beginExtend arms the selection anchor before a shift-modified move.
func (f *Field) beginExtend() {
	if !f.selActive {
		f.selAnchor = f.cursor
		f.selActive = true
	}
}

func (f *Field) moveLeft(extend bool) {
	if !extend {
		if start, _, ok := f.selection(); ok {
			f.cursor = start
			f.clearSelection()
			f.refresh(false)
			return
		}
	} else {
		f.beginExtend()
	}
	if f.cursor > 0 {
		f.cursor--
	}
	if !extend {
		f.clearSelection()
	}
	f.refresh(false)
}

func (f *Field) moveRight(extend bool) {
	if !extend {
		if _, end, ok := f.selection(); ok {
			f.cursor = end
			f.clearSelection()
			f.refresh(false)
			return
		}
	} else {
		f.beginExtend()
	}
	if f.cursor < f.buf.Len() {
		f.cursor++
	}
	if !extend {
		f.clearSelection()
	}
	f.refresh(false)
}

// moveVertical goes to the same column in the visual line delta rows away,
// clamping to the target line's length.
func (f *Field) moveVertical(delta int, extend bool) {
	if extend {
		f.beginExtend()
	}
	line, col := f.lineColumn(f.cursor)
	f.cursor = f.offsetAt(line+delta, col)
	if !extend {
		f.clearSelection()
	}
	f.refresh(false)
}

// moveLineStart goes to the start of the current visual line, which for a
// wrapped line is the wrap point, not the buffer line start.
func (f *Field) moveLineStart(extend bool) {
	if extend {
		f.beginExtend()
	}
	line, _ := f.lineColumn(f.cursor)
	f.cursor = f.lines[line].Start
	if !extend {
		f.clearSelection()
	}
	f.refresh(false)
}

func (f *Field) moveLineEnd(extend bool) {
	if extend {
		f.beginExtend()
	}
	line, _ := f.lineColumn(f.cursor)
	f.cursor = f.lines[line].End
	if !extend {
		f.clearSelection()
	}
	f.refresh(false)
}

// SelectAll selects the whole buffer and places the cursor at the end.
func (f *Field) SelectAll() {
	f.selAnchor = 0
	f.cursor = f.buf.Len()
	f.selActive = true
	f.refresh(false)
}

func (f *Field) backspace() {
	if start, end, ok := f.selection(); ok {
		f.replaceRange(start, end, "")
		return
	}
	if f.cursor == 0 {
		return
	}
	f.replaceRange(f.cursor-1, f.cursor, "")
}

func (f *Field) deleteForward() {
	if start, end, ok := f.selection(); ok {
		f.replaceRange(start, end, "")
		return
	}
	if f.cursor >= f.buf.Len() {
		return
	}
	f.replaceRange(f.cursor, f.cursor+1, "")
}
