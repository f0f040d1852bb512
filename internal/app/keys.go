package app

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// keyString names a tcell key event the way the keymap config spells it,
// e.g. "shift+left" or "ctrl+a". Unmapped events return "".
func keyString(ev *tcell.EventKey) string {
	shift := ev.Modifiers()&tcell.ModShift != 0
	name := ""
	switch ev.Key() {
	case tcell.KeyLeft:
		name = "left"
	case tcell.KeyRight:
		name = "right"
	case tcell.KeyUp:
		name = "up"
	case tcell.KeyDown:
		name = "down"
	case tcell.KeyHome:
		name = "home"
	case tcell.KeyEnd:
		name = "end"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		name = "backspace"
	case tcell.KeyDelete:
		name = "del"
	case tcell.KeyEnter:
		name = "enter"
	case tcell.KeyTab:
		name = "tab"
	case tcell.KeyBacktab:
		return "shift+tab"
	case tcell.KeyEscape:
		return "esc"
	}
	if name != "" {
		if shift {
			return "shift+" + name
		}
		return name
	}
	if ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 {
		return "ctrl+" + strings.ToLower(string(ev.Rune()))
	}
	// Control letters arrive as dedicated keys; tab, enter and backspace
	// already matched above.
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := rune('a' + int(k) - int(tcell.KeyCtrlA))
		switch r {
		case 'h', 'i', 'm':
			return ""
		}
		return "ctrl+" + string(r)
	}
	return ""
}
