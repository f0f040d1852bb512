package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

func parseColor(name string, fallback tcell.Color) tcell.Color {
	if name == "" {
		return fallback
	}
	return tcell.GetColor(name)
}

type styles struct {
	main      tcell.Style
	label     tcell.Style
	focus     tcell.Style
	selection tcell.Style
	border    tcell.Style
	hint      tcell.Style
}

func (a *App) styles() styles {
	th := a.cfg.Theme
	fg := parseColor(th.Foreground, tcell.ColorWhite)
	bg := parseColor(th.Background, tcell.ColorBlack)
	return styles{
		main:      tcell.StyleDefault.Foreground(fg).Background(bg),
		label:     tcell.StyleDefault.Foreground(parseColor(th.LabelForeground, fg)).Background(bg),
		focus:     tcell.StyleDefault.Foreground(parseColor(th.FocusForeground, fg)).Background(bg),
		selection: tcell.StyleDefault.Foreground(parseColor(th.SelectionForeground, fg)).Background(parseColor(th.SelectionBackground, bg)),
		border:    tcell.StyleDefault.Foreground(parseColor(th.BorderForeground, fg)).Background(bg),
		hint:      tcell.StyleDefault.Foreground(parseColor(th.HintForeground, bg)).Background(parseColor(th.HintBackground, fg)),
	}
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, st)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func (a *App) render(s tcell.Screen) {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}
	st := a.styles()

	s.SetStyle(st.main)
	s.Clear()

	drawText(s, 2, 1, "textfield demo | tab cycles fields, ctrl+q quits", st.border)

	caretShown := false
	for i, ff := range a.fields {
		focused := i == a.focus
		labelStyle := st.label
		if focused {
			labelStyle = st.focus
		}
		drawText(s, ff.x, ff.y-1, ff.label, labelStyle)

		fld := ff.f
		lines := fld.Lines()
		scroll := fld.ScrollOffset()
		selStart, selEnd, hasSel := fld.Selection()
		runes := []rune(fld.Text())
		vis := fld.VisibleLines()
		for row := 0; row < vis; row++ {
			y := ff.y + row
			for cx := ff.x; cx < ff.x+fieldWidth; cx++ {
				s.SetContent(cx, y, ' ', nil, st.main)
			}
			li := scroll + row
			if li >= len(lines) {
				continue
			}
			vl := lines[li]
			x := ff.x
			for _, r := range vl.Indent {
				s.SetContent(x, y, r, nil, st.main)
				x += runewidth.RuneWidth(r)
			}
			for ci := vl.Start; ci < vl.End && x < ff.x+fieldWidth; ci++ {
				cs := st.main
				if hasSel && ci >= selStart && ci < selEnd {
					cs = st.selection
				}
				s.SetContent(x, y, runes[ci], nil, cs)
				x += runewidth.RuneWidth(runes[ci])
			}
		}

		if focused && fld.CaretVisible() {
			line, col := fld.CursorLineColumn()
			if line >= scroll && line < scroll+vis {
				s.ShowCursor(ff.x+int(fld.ColumnX(line, col)), ff.y+line-scroll)
				caretShown = true
			}
		}
		if fld.HintDue() {
			drawText(s, ff.x+fieldWidth+2, ff.y, " "+ff.hint+" ", st.hint)
		}
	}
	if !caretShown {
		s.HideCursor()
	}

	a.renderStatus(s, w, h-1, st)
	s.Show()
}

// renderStatus summarizes the committed numeric values along the bottom row.
func (a *App) renderStatus(s tcell.Screen, w, y int, st styles) {
	for x := 0; x < w; x++ {
		s.SetContent(x, y, ' ', nil, st.border)
	}
	status := ""
	for _, ff := range a.fields {
		if v, ok := ff.f.Value(); ok {
			status += fmt.Sprintf(" %s=%g ", ff.name, v)
		}
	}
	ff := a.fields[a.focus]
	line, col := ff.f.CursorLineColumn()
	status += fmt.Sprintf("| %s %d:%d", ff.name, line+1, col+1)
	drawText(s, 1, y, status, st.border)
}
