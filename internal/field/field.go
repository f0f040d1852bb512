package field

// Binding is the external cell a field is bound to. The engine reads it when
// syncing on focus gain and writes it on every edit (plain fields) or on
// commit (numeric fields). An empty string means the cell holds no value.
type Binding interface {
	Get() string
	Set(value string)
}

// Field is a self-contained text-editing engine: buffer, cursor/selection,
// word-wrap layout, scroll window and numeric validation. It performs no
// rendering and no I/O; the host feeds it events and paints from the query
// surface. A Field must only be used from one goroutine.
type Field struct {
	opts Options
	buf  *Buffer

	cursor    int
	selAnchor int
	selActive bool

	lines  []VisualLine
	scroll int

	active   bool
	hovered  bool
	caretOn  bool
	blink    float64
	hintTime float64

	value    float64
	hasValue bool

	dragging  bool
	binding   Binding
	listeners []func(Event)
}

// New creates a field with the given options and initial text.
func New(opts Options, text string) *Field {
	f := &Field{
		opts:    opts.withDefaults(),
		caretOn: true,
	}
	f.buf = newBuffer(text, f.opts.SingleLine)
	f.cursor = f.buf.Len()
	f.lines = wrapRunes(f.buf.Runes(), f.opts)
	f.ensureCursorVisible()
	return f
}

// SetBinding attaches the external value cell. The buffer is synced from the
// cell immediately so field and cell never disagree at rest.
func (f *Field) SetBinding(b Binding) {
	f.binding = b
	if b != nil {
		f.setText(b.Get())
	}
}

// RefreshFromBinding picks up an external change to the bound cell while the
// field is inactive. Active fields keep their in-progress edit.
func (f *Field) RefreshFromBinding() {
	if f.binding == nil || f.active {
		return
	}
	if v := f.binding.Get(); v != f.buf.String() {
		f.setText(v)
	}
}

// SetActive drives the focus transition: commit-on-blur for numeric fields,
// sync-from-binding on focus gain.
func (f *Field) SetActive(active bool) {
	if active == f.active {
		return
	}
	if active {
		if f.opts.Numeric && f.binding != nil {
			if v := f.binding.Get(); v != f.buf.String() {
				f.setText(v)
			}
		}
		f.active = true
		f.cursor = f.buf.Len()
		f.clearSelection()
		f.resetBlink()
		f.refresh(false)
		f.emit(Event{Kind: FocusGained, Text: f.buf.String()})
		return
	}
	f.active = false
	f.dragging = false
	f.clearSelection()
	if f.opts.Numeric {
		f.commitNumeric()
	}
	f.emit(Event{Kind: FocusLost, Text: f.buf.String()})
}

// Active reports whether the field has focus.
func (f *Field) Active() bool {
	return f.active
}

// SetHovered tracks pointer presence for the hint timer.
func (f *Field) SetHovered(h bool) {
	if h != f.hovered {
		f.hovered = h
		f.hintTime = 0
	}
}

// Tick advances the blink and hint clocks. It never mutates text.
func (f *Field) Tick(dt float64) {
	if dt < 0 {
		return
	}
	if f.active {
		f.blink += dt
		for f.blink >= f.opts.BlinkRate {
			f.blink -= f.opts.BlinkRate
			f.caretOn = !f.caretOn
		}
	}
	if f.hovered {
		f.hintTime += dt
	}
}

// CaretVisible reports the current blink phase. Only meaningful while the
// field is active.
func (f *Field) CaretVisible() bool {
	return f.active && f.caretOn
}

// HintDue reports whether the pointer has hovered long enough for the host
// to show a hint tooltip. Display policy stays with the host.
func (f *Field) HintDue() bool {
	return f.hovered && f.hintTime >= f.opts.HintDelay
}

// InsertText applies an insertion at the cursor, replacing any active
// selection first.
func (f *Field) InsertText(text string) {
	start, end, ok := f.selection()
	if !ok {
		start, end = f.cursor, f.cursor
	}
	f.replaceRange(start, end, text)
}

// SetText replaces the whole content programmatically, bypassing the
// numeric keystroke gate (the host is trusted; commit still canonicalizes).
func (f *Field) SetText(text string) {
	f.setText(text)
	if !f.opts.Numeric && f.binding != nil {
		f.binding.Set(f.buf.String())
	}
}

func (f *Field) setText(text string) {
	f.buf.ReplaceRange(0, f.buf.Len(), text)
	f.cursor = f.buf.Len()
	f.clearSelection()
	f.refresh(true)
}

// replaceRange is the single transactional edit path: numeric gate on the
// candidate text, buffer splice, cursor relocation, then layout rebuild and
// scroll adjustment in the same operation.
func (f *Field) replaceRange(start, end int, text string) {
	start, end = f.buf.clampRange(start, end)
	ins := f.buf.filter(text)
	if start == end && len(ins) == 0 {
		return
	}
	if f.opts.Numeric {
		ins = translateDecimal(ins)
		if !acceptPartial(f.candidate(start, end, ins), f.opts.Integer) {
			return
		}
	}
	f.buf.ReplaceRange(start, end, string(ins))
	f.cursor = start + len(ins)
	f.clearSelection()
	f.refresh(true)
}

// refresh re-derives everything downstream of the buffer. Every mutating
// operation ends here so the layout can never go stale.
func (f *Field) refresh(contentChanged bool) {
	f.lines = wrapRunes(f.buf.Runes(), f.opts)
	f.ensureCursorVisible()
	f.resetBlink()
	if !contentChanged {
		return
	}
	f.emit(Event{Kind: TextChanged, Text: f.buf.String()})
	if !f.opts.Numeric && f.binding != nil {
		f.binding.Set(f.buf.String())
	}
}

func (f *Field) resetBlink() {
	f.blink = 0
	f.caretOn = true
}

// Text returns the buffer content.
func (f *Field) Text() string {
	return f.buf.String()
}

// Cursor returns the caret's codepoint offset.
func (f *Field) Cursor() int {
	return f.cursor
}

// CursorLineColumn returns the caret's visual position.
func (f *Field) CursorLineColumn() (line, col int) {
	return f.lineColumn(f.cursor)
}

// Selection returns the normalized selection range. ok is false when no
// selection exists or it is empty.
func (f *Field) Selection() (start, end int, ok bool) {
	return f.selection()
}

// Value returns the last committed numeric value. ok is false when the field
// never committed or committed as absent.
func (f *Field) Value() (v float64, ok bool) {
	return f.value, f.hasValue
}

// LineCount returns the number of visual lines.
func (f *Field) LineCount() int {
	return len(f.lines)
}

// Lines returns the visual-line layout for painting.
func (f *Field) Lines() []VisualLine {
	return f.lines
}

// LineText returns the display text of one visual line, indent included.
func (f *Field) LineText(i int) string {
	if i < 0 || i >= len(f.lines) {
		return ""
	}
	vl := f.lines[i]
	return vl.Indent + f.buf.Slice(vl.Start, vl.End)
}
