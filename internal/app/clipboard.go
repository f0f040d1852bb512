package app

import (
	"os/exec"
	"strings"
)

// The engine only hands plain strings across its clipboard bridge; the host
// is responsible for the OS transfer. Try the usual tools per platform and
// fall back to an in-process register when none is available.

var clipboardWriters = [][]string{
	{"pbcopy"},
	{"wl-copy"},
	{"xclip", "-selection", "clipboard"},
}

var clipboardReaders = [][]string{
	{"pbpaste"},
	{"wl-paste", "--no-newline"},
	{"xclip", "-selection", "clipboard", "-o"},
}

func (a *App) clipboardWrite(text string) {
	a.clip = text
	for _, c := range clipboardWriters {
		cmd := exec.Command(c[0], c[1:]...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err == nil {
			return
		}
	}
}

func (a *App) clipboardRead() string {
	for _, c := range clipboardReaders {
		out, err := exec.Command(c[0], c[1:]...).Output()
		if err == nil && len(out) > 0 {
			return string(out)
		}
	}
	return a.clip
}
