package app

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyString(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want string
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), "left"},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift), "shift+left"},
		{tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModShift), "shift+home"},
		{tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), "backspace"},
		{tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), "del"},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "enter"},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), "tab"},
		{tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModShift), "shift+tab"},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "esc"},
		{tcell.NewEventKey(tcell.KeyCtrlA, 0, tcell.ModCtrl), "ctrl+a"},
		{tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), "ctrl+q"},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ""},
	}
	for _, tc := range cases {
		if got := keyString(tc.ev); got != tc.want {
			t.Fatalf("keyString(%v) = %q, want %q", tc.ev.Key(), got, tc.want)
		}
	}
}
