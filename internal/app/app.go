package app

import (
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/textfield/internal/config"
	"github.com/kobzarvs/textfield/internal/field"
	"github.com/kobzarvs/textfield/internal/logger"
	"github.com/kobzarvs/textfield/internal/session"
)

const fieldWidth = 44

// formField is one labeled engine instance placed on the screen. The engine
// works in local field coordinates; x/y anchor its text area.
type formField struct {
	name  string
	label string
	hint  string
	f     *field.Field
	x, y  int
}

// App is the demo host: it owns the screen, translates tcell events into
// engine calls and paints from the engine's query surface.
type App struct {
	args      []string
	cfg       config.Config
	fields    []*formField
	focus     int
	mouseDown bool
	clip      string
}

func New(args []string) *App {
	return &App{args: args}
}

func (a *App) Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	if err := logger.Init(os.Getenv("TEXTFIELD_DEBUG") != ""); err != nil {
		return err
	}
	defer logger.Close()

	sm, err := session.NewManager()
	if err != nil {
		return err
	}
	defer sm.Stop()

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	s.EnableMouse()
	defer s.Fini()

	a.buildForm(cfg, sm)
	a.fields[a.focus].f.SetActive(true)

	// The engine has no clock of its own; a coarse ticker drives blink and
	// hint timers through Tick.
	stopTick := make(chan struct{})
	defer close(stopTick)
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stopTick:
				return
			case <-ticker.C:
				_ = s.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	}()

	last := time.Now()
	a.render(s)
	for {
		ev := s.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if a.handleKey(ev) {
				return nil
			}
		case *tcell.EventMouse:
			a.handleMouse(ev)
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventInterrupt:
			now := time.Now()
			dt := now.Sub(last).Seconds()
			last = now
			for _, ff := range a.fields {
				ff.f.Tick(dt)
				ff.f.RefreshFromBinding()
			}
		}
		a.render(s)
	}
}

// sessionBinding adapts the session store to the engine's Binding
// capability, so committed values survive restarts.
type sessionBinding struct {
	sm   *session.Manager
	name string
}

func (b sessionBinding) Get() string {
	v, _ := b.sm.Get(b.name)
	return v.Value
}

func (b sessionBinding) Set(value string) {
	b.sm.Set(b.name, session.FieldValue{Value: value, Present: value != ""})
}

func (a *App) buildForm(cfg config.Config, sm *session.Manager) {
	zero := 0.0
	maxAge := 130.0
	base := field.Options{
		Width:         fieldWidth,
		LineHeight:    1,
		WrapIndent:    cfg.Field.WrapIndent,
		NewLineIndent: cfg.Field.NewLineIndent,
		BlinkRate:     cfg.Field.BlinkRate,
		HintDelay:     cfg.Field.HintDelay,
	}

	notes := base
	notes.MinLines = 4
	notes.MaxLines = 4

	age := base
	age.Numeric = true
	age.Integer = true
	age.Min = &zero
	age.Max = &maxAge
	age.EmptyPolicy = field.EmptyAbsent

	price := base
	price.Numeric = true
	price.Min = &zero

	a.fields = []*formField{
		{name: "notes", label: "Notes", hint: "free text, wraps at the box edge", f: field.New(notes, ""), x: 2, y: 4},
		{name: "age", label: "Age", hint: "whole number between 0 and 130", f: field.New(age, ""), x: 2, y: 10},
		{name: "price", label: "Price", hint: "amount, decimals allowed", f: field.New(price, ""), x: 2, y: 13},
	}
	for _, ff := range a.fields {
		ff.f.SetBinding(sessionBinding{sm: sm, name: ff.name})
		name := ff.name
		ff.f.Subscribe(func(ev field.Event) {
			switch ev.Kind {
			case field.ValueCommitted:
				logger.Debug("value committed", "field", name, "text", ev.Text, "value", ev.Value, "present", ev.HasValue)
			case field.FocusGained:
				logger.Debug("focus gained", "field", name)
			case field.FocusLost:
				logger.Debug("focus lost", "field", name)
			}
		})
	}
}

func (a *App) focused() *field.Field {
	return a.fields[a.focus].f
}

func (a *App) setFocus(i int) {
	if i == a.focus || i < 0 || i >= len(a.fields) {
		return
	}
	a.fields[a.focus].f.SetActive(false)
	a.focus = i
	a.fields[a.focus].f.SetActive(true)
}

func (a *App) moveFocus(delta int) {
	n := len(a.fields)
	a.setFocus(((a.focus+delta)%n + n) % n)
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	key := keyString(ev)
	if action, ok := a.cfg.Keymap[key]; ok {
		return a.execAction(action)
	}
	if ev.Key() == tcell.KeyRune && ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) == 0 {
		a.focused().InsertText(string(ev.Rune()))
	}
	return false
}

func (a *App) execAction(action string) bool {
	fld := a.focused()
	switch action {
	case "move_left":
		fld.HandleKey(field.KeyLeft, field.Modifiers{})
	case "move_right":
		fld.HandleKey(field.KeyRight, field.Modifiers{})
	case "move_up":
		fld.HandleKey(field.KeyUp, field.Modifiers{})
	case "move_down":
		fld.HandleKey(field.KeyDown, field.Modifiers{})
	case "select_left":
		fld.HandleKey(field.KeyLeft, field.Modifiers{Shift: true})
	case "select_right":
		fld.HandleKey(field.KeyRight, field.Modifiers{Shift: true})
	case "select_up":
		fld.HandleKey(field.KeyUp, field.Modifiers{Shift: true})
	case "select_down":
		fld.HandleKey(field.KeyDown, field.Modifiers{Shift: true})
	case "line_start":
		fld.HandleKey(field.KeyHome, field.Modifiers{})
	case "line_end":
		fld.HandleKey(field.KeyEnd, field.Modifiers{})
	case "select_line_start":
		fld.HandleKey(field.KeyHome, field.Modifiers{Shift: true})
	case "select_line_end":
		fld.HandleKey(field.KeyEnd, field.Modifiers{Shift: true})
	case "backspace":
		fld.HandleKey(field.KeyBackspace, field.Modifiers{})
	case "delete_char":
		fld.HandleKey(field.KeyDelete, field.Modifiers{})
	case "newline":
		fld.HandleKey(field.KeyEnter, field.Modifiers{})
	case "insert_tab":
		fld.HandleKey(field.KeyTab, field.Modifiers{})
	case "select_all":
		fld.HandleKey(field.KeySelectAll, field.Modifiers{Ctrl: true})
	case "copy":
		if text := fld.CopySelection(); text != "" {
			a.clipboardWrite(text)
		}
	case "cut":
		if text := fld.Cut(); text != "" {
			a.clipboardWrite(text)
		}
	case "paste":
		if text := a.clipboardRead(); text != "" {
			fld.Paste(text)
		}
	case "focus_next":
		a.moveFocus(1)
	case "focus_prev":
		a.moveFocus(-1)
	case "quit":
		return true
	}
	return false
}

// fieldAt returns the index of the field whose text area contains the given
// screen cell, or -1.
func (a *App) fieldAt(x, y int) int {
	for i, ff := range a.fields {
		if x >= ff.x && x < ff.x+fieldWidth && y >= ff.y && y < ff.y+ff.f.VisibleLines() {
			return i
		}
	}
	return -1
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	idx := a.fieldAt(x, y)
	for i, ff := range a.fields {
		ff.f.SetHovered(i == idx)
	}
	pressed := ev.Buttons()&tcell.Button1 != 0
	switch {
	case pressed && !a.mouseDown:
		a.mouseDown = true
		if idx >= 0 {
			a.setFocus(idx)
			ff := a.fields[idx]
			ff.f.HandlePointerDown(float64(x-ff.x), float64(y-ff.y))
		}
	case pressed && a.mouseDown:
		// Dragging may leave the box; the engine clamps.
		ff := a.fields[a.focus]
		ff.f.HandlePointerMove(float64(x-ff.x), float64(y-ff.y))
	case !pressed && a.mouseDown:
		a.mouseDown = false
		ff := a.fields[a.focus]
		ff.f.HandlePointerUp(float64(x-ff.x), float64(y-ff.y))
	}
}
