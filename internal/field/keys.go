package field

// Key is the host-neutral key enum. The host translates its own event type
// (tcell, GLFW, ...) into these before calling HandleKey.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyTab
	KeySelectAll
)

// Modifiers carries the modifier state alongside a key. Shift extends the
// selection on navigation keys.
type Modifiers struct {
	Shift bool
	Ctrl  bool
}

// HandleKey dispatches one key press. Unknown keys are ignored; every path
// is a total function, so no input can fault the engine.
func (f *Field) HandleKey(key Key, mods Modifiers) {
	switch key {
	case KeyLeft:
		f.moveLeft(mods.Shift)
	case KeyRight:
		f.moveRight(mods.Shift)
	case KeyUp:
		f.moveVertical(-1, mods.Shift)
	case KeyDown:
		f.moveVertical(1, mods.Shift)
	case KeyHome:
		f.moveLineStart(mods.Shift)
	case KeyEnd:
		f.moveLineEnd(mods.Shift)
	case KeyBackspace:
		f.backspace()
	case KeyDelete:
		f.deleteForward()
	case KeyEnter:
		if !f.opts.SingleLine {
			f.InsertText("\n")
		}
	case KeyTab:
		f.InsertText("\t")
	case KeySelectAll:
		f.SelectAll()
	}
}
