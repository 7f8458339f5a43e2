package remote

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// DefaultTerm is used when the client sends no TERM or one not in
// AllowedTerms.
const DefaultTerm = "xterm-256color"

// AllowedTerms lists the terminal types accepted from clients. TERM selects
// a terminfo entry, so arbitrary client values are not trusted.
var AllowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

// ErrNoPty is returned for sessions opened without a terminal.
var ErrNoPty = errors.New("session has no pty")

// termMu guards the process-wide TERM variable read by tcell.
var termMu sync.Mutex

// Term picks the terminal type: the pty request's TERM first, then the
// session environment.
func Term(ptyTerm string, environ []string) string {
	if AllowedTerms[ptyTerm] {
		return ptyTerm
	}
	for _, env := range environ {
		if v, ok := strings.CutPrefix(env, "TERM="); ok {
			if AllowedTerms[v] {
				return v
			}
			break
		}
	}
	return DefaultTerm
}

// NewScreen creates and initializes a tcell screen drawing to s.
func NewScreen(s gossh.Session) (tcell.Screen, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPty
	}
	tty := NewTty(s, pty, winCh)

	termMu.Lock()
	_ = os.Setenv("TERM", Term(pty.Term, s.Environ()))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("terminal setup: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return screen, nil
}
