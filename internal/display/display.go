// Package display provides the terminal surfaces of the recipe browser.
//
// [View] renders controller updates as styled lines. [UI] is the
// interactive Bubble Tea front end with a status bar and an input
// prompt; all output is printed above the rendered area via
// Program.Println / Printf so concurrent writes never garble the
// display. [LineUI] is the plain readline front end used when stdin is
// not a terminal.
package display

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Prompt is the input prompt of both front ends.
const Prompt = "forkify> "

// ── Styles ───────────────────────────────────────────────────────

var (
	barBg = lipgloss.NewStyle().
		Background(lipgloss.Color("#27272a")).
		Foreground(lipgloss.Color("#a1a1aa"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	sepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// BannerStyle is the muted slate of the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	chatStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fdba74")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fdba74"))

	likeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f9a8d4"))

	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	urgentOutputStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fca5a5"))

	userInputEchoStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a1a1aa"))
)

// Status is what the status bar shows.
type Status struct {
	Query    string
	Page     int
	Pages    int
	Recipe   string
	Servings int
	Likes    int
	Items    int
	Loading  string // empty when idle
}

// StatusFunc returns the current status. It is polled by the UI.
type StatusFunc func() Status

// Terminal is a front end the application loop can drive.
type Terminal interface {
	Printf(format string, a ...interface{})
	InputChan() <-chan string
	WaitReady()
	Run() error
	Quit()
}

// ── UI ───────────────────────────────────────────────────────────

// UI manages the terminal through Bubble Tea.
//
// Call [NewUI] then [UI.Run] (blocking). Other goroutines may safely
// call [UI.Println], [UI.Printf], and read from [UI.InputChan] at any
// time after [UI.WaitReady] returns.
type UI struct {
	program  *tea.Program
	inputCh  chan string
	readyCh  chan struct{}
	statusFn StatusFunc
	done     atomic.Bool
}

var _ Terminal = (*UI)(nil)

// NewUI creates the display. statusFn may be nil. Call Run() to start.
func NewUI(statusFn StatusFunc) *UI {
	if statusFn == nil {
		statusFn = func() Status { return Status{} }
	}
	return &UI{
		statusFn: statusFn,
		inputCh:  make(chan string, 16),
		readyCh:  make(chan struct{}),
	}
}

// Println prints a line above the prompt. Thread-safe. If the program
// hasn't started yet, falls back to fmt.Println.
func (u *UI) Println(a ...interface{}) {
	if u.program != nil && !u.done.Load() {
		u.program.Println(a...)
	} else {
		fmt.Println(a...)
	}
}

// Printf prints formatted text above the prompt on its own line.
// Thread-safe.
func (u *UI) Printf(format string, a ...interface{}) {
	if u.program != nil && !u.done.Load() {
		u.program.Printf(format, a...)
	} else {
		fmt.Printf(format+"\n", a...)
	}
}

// InputChan returns completed user-input lines.
func (u *UI) InputChan() <-chan string { return u.inputCh }

// PrintUserInput echoes the user's typed command into the scrollback.
func (u *UI) PrintUserInput(text string) {
	u.Println(promptStyle.Render("forkify") + secondaryStyle.Render("> ") + userInputEchoStyle.Render(text))
}

// WaitReady blocks until the Bubble Tea event loop is running.
func (u *UI) WaitReady() { <-u.readyCh }

// Quit tells Bubble Tea to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}

// Run starts the Bubble Tea event loop. Blocks until quit.
func (u *UI) Run() error {
	ti := textinput.New()
	// A plain-text prompt keeps the textinput width math correct; styled
	// prompts add ANSI bytes that break its offset calculations.
	ti.Prompt = Prompt
	ti.PromptStyle = promptStyle
	ti.TextStyle = userInputEchoStyle
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	ti.Placeholder = "search pizza"
	ti.Focus()
	ti.CharLimit = 300
	ti.Width = 60 // updated on first WindowSizeMsg

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = valueStyle

	m := model{
		input:    ti,
		spinner:  sp,
		statusFn: u.statusFn,
		inputCh:  u.inputCh,
		readyCh:  u.readyCh,
		echoFn:   u.PrintUserInput,
	}

	u.program = tea.NewProgram(m)
	_, err := u.program.Run()
	u.done.Store(true)
	close(u.inputCh)
	return err
}

// ── Bubble Tea model ─────────────────────────────────────────────

type model struct {
	input    textinput.Model
	spinner  spinner.Model
	statusFn StatusFunc
	status   Status
	inputCh  chan<- string
	readyCh  chan struct{}
	echoFn   func(string)
	width    int
}

type tickMsg time.Time

const refreshInterval = 250 * time.Millisecond

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		tickCmd(),
		signalReady(m.readyCh),
	)
}

func signalReady(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		close(ch)
		return nil
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			v := m.input.Value()
			m.input.Reset()
			if strings.TrimSpace(v) != "" {
				m.inputCh <- v
				// Echo from a Cmd so Println runs outside Update.
				echoFn := m.echoFn
				return m, func() tea.Msg {
					echoFn(v)
					return nil
				}
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > len(Prompt) {
			m.input.Width = msg.Width - len(Prompt)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		m.status = m.statusFn()
		title := "forkify"
		if m.status.Recipe != "" {
			title += " · " + m.status.Recipe
		}
		return m, tea.Batch(tickCmd(), tea.SetWindowTitle(title))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.renderBar())
	b.WriteByte('\n')
	b.WriteString(m.input.View())
	return b.String()
}

func (m model) renderBar() string {
	s := m.status
	parts := []string{
		labelStyle.Render("likes ") + valueStyle.Render(fmt.Sprint(s.Likes)),
		labelStyle.Render("list ") + valueStyle.Render(fmt.Sprint(s.Items)),
	}
	if s.Query != "" {
		parts = append(parts, labelStyle.Render(fmt.Sprintf("%q ", s.Query))+
			valueStyle.Render(fmt.Sprintf("%d/%d", s.Page, s.Pages)))
	}
	if s.Recipe != "" {
		parts = append(parts, valueStyle.Render(s.Recipe)+
			labelStyle.Render(fmt.Sprintf(" · %s", servingsLabel(s.Servings))))
	}
	if s.Loading != "" {
		parts = append(parts, m.spinner.View()+labelStyle.Render(" "+s.Loading))
	}

	content := " " + strings.Join(parts, sepStyle.Render("  │  ")) + " "

	w := m.width
	if w <= 0 {
		w = 80
	}
	return barBg.Width(w).Render(content)
}
