package field

// pointerOffset maps local field coordinates to the nearest codepoint
// offset. The y axis picks a visible line relative to the scroll window;
// both axes clamp, so out-of-range input cannot fail.
func (f *Field) pointerOffset(x, y float64) int {
	row := 0
	if f.opts.LineHeight > 0 && y > 0 {
		row = int(y / f.opts.LineHeight)
	}
	line := f.scroll + row
	if line >= len(f.lines) {
		line = len(f.lines) - 1
	}
	if line < 0 {
		line = 0
	}
	return f.nearestOffset(line, x)
}

// HandlePointerDown places the cursor at the click point and arms a drag
// selection from there.
func (f *Field) HandlePointerDown(x, y float64) {
	off := f.pointerOffset(x, y)
	f.cursor = off
	f.selAnchor = off
	f.selActive = true
	f.dragging = true
	f.refresh(false)
}

// HandlePointerMove extends the drag selection. A move without a preceding
// down is a no-op for selection purposes.
func (f *Field) HandlePointerMove(x, y float64) {
	if !f.dragging {
		return
	}
	f.cursor = f.pointerOffset(x, y)
	f.refresh(false)
}

// HandlePointerUp finishes the drag. A click with no movement collapses to
// a plain cursor placement.
func (f *Field) HandlePointerUp(x, y float64) {
	if !f.dragging {
		return
	}
	f.cursor = f.pointerOffset(x, y)
	f.dragging = false
	if f.selAnchor == f.cursor {
		f.clearSelection()
	}
	f.refresh(false)
}
