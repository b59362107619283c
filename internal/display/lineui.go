package display

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/chzyer/readline"
)

// LineUI is a plain line-oriented front end over readline, with a
// persistent history file.
type LineUI struct {
	rl        *readline.Instance
	inputCh   chan string
	readyCh   chan struct{}
	quitCh    chan struct{}
	closeOnce sync.Once
}

var _ Terminal = (*LineUI)(nil)

// NewLineUI opens readline. historyFile may be empty.
func NewLineUI(historyFile string) (*LineUI, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          Prompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, fmt.Errorf("display: init readline: %w", err)
	}
	return &LineUI{
		rl:      rl,
		inputCh: make(chan string, 16),
		readyCh: make(chan struct{}),
		quitCh:  make(chan struct{}),
	}, nil
}

// Printf prints formatted text on its own line without breaking the
// prompt. Thread-safe.
func (u *LineUI) Printf(format string, a ...interface{}) {
	fmt.Fprintf(u.rl.Stdout(), format+"\n", a...)
}

// InputChan returns completed user-input lines. It is closed when Run
// returns.
func (u *LineUI) InputChan() <-chan string { return u.inputCh }

// WaitReady blocks until Run has started.
func (u *LineUI) WaitReady() { <-u.readyCh }

// Quit stops Run.
func (u *LineUI) Quit() {
	u.closeOnce.Do(func() {
		close(u.quitCh)
		u.rl.Close()
	})
}

// Run reads lines until EOF or Quit.
func (u *LineUI) Run() error {
	close(u.readyCh)
	defer close(u.inputCh)
	defer u.Quit()

	for {
		line, err := u.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				u.Printf("%s", secondaryStyle.Render("  Use 'quit' to exit."))
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			select {
			case <-u.quitCh:
				return nil
			default:
				return fmt.Errorf("display: readline: %w", err)
			}
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		select {
		case u.inputCh <- line:
		case <-u.quitCh:
			return nil
		}
	}
}
