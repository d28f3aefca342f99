package tui

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"

	"github.com/muurk/cdterm/internal/logging"
	"github.com/muurk/cdterm/internal/nav"
	"github.com/muurk/cdterm/internal/terminal"
)

// Screen represents the current active screen in the application
type Screen string

const (
	ScreenIntro    Screen = "intro"
	ScreenTerminal Screen = "terminal"
	ScreenLeaving  Screen = "leaving"
)

// Messages driving the introduction
type introFadeMsg struct{}
type introDoneMsg struct{}

// Options configures the terminal UI
type Options struct {
	Intro      bool          // Play the introduction log before the prompt
	IntroDelay time.Duration // Introduction log fully visible
	FadeDelay  time.Duration // Fade-out before the prompt appears
	IntroLines []string      // Lines of the introduction log
	BaseURL    string        // Joined with the page location on navigation
}

// terminalKeyMap defines key bindings for the terminal screen
type terminalKeyMap struct {
	Enter key.Binding
	Tab   key.Binding
	Up    key.Binding
	Down  key.Binding
	Quit  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k terminalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Tab, k.Up, k.Down, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k terminalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Enter, k.Tab},
		{k.Up, k.Down, k.Quit},
	}
}

func newTerminalKeyMap() terminalKeyMap {
	return terminalKeyMap{
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// pageLocation records the page the controller navigated to. The model is
// copied on every update, so it is shared by pointer.
type pageLocation struct {
	href string
}

func (l *pageLocation) Assign(href string) {
	l.href = href
}

// AppModel is the Bubble Tea model of the terminal
type AppModel struct {
	CurrentScreen Screen

	// Terminal state
	ctrl     *terminal.Controller
	location *pageLocation
	input    textinput.Model
	hint     string
	showHint bool

	// Introduction
	options Options
	fading  bool

	// Click zones of the choice entries
	zones *zone.Manager

	// UI state
	Width  int
	Height int

	// Help
	Help help.Model
	Keys terminalKeyMap
}

// NewAppModel creates the terminal UI. Without an introduction the yes/no
// question is asked right away.
func NewAppModel(opts Options) AppModel {
	ti := textinput.New()
	ti.Prompt = PromptStyle.Render("$ ")
	ti.Placeholder = "type here"
	ti.CharLimit = 256
	ti.Focus()

	loc := &pageLocation{}
	m := AppModel{
		CurrentScreen: ScreenIntro,
		ctrl:          terminal.New(nav.New(loc)),
		location:      loc,
		input:         ti,
		options:       opts,
		zones:         zone.New(),
		Help:          help.New(),
		Keys:          newTerminalKeyMap(),
	}

	if !opts.Intro {
		m.CurrentScreen = ScreenTerminal
		m.ctrl.Boot()
	}
	return m
}

// Init starts the introduction timer and the cursor blink
func (m AppModel) Init() tea.Cmd {
	if m.CurrentScreen != ScreenIntro {
		return textinput.Blink
	}
	return tea.Tick(m.options.IntroDelay, func(time.Time) tea.Msg {
		return introFadeMsg{}
	})
}

// Update handles all messages and routes them to the current screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.Keys.Quit) {
			return m, tea.Quit
		}

	case introFadeMsg:
		m.fading = true
		return m, tea.Tick(m.options.FadeDelay, func(time.Time) tea.Msg {
			return introDoneMsg{}
		})

	case introDoneMsg:
		if m.CurrentScreen != ScreenIntro {
			return m, nil
		}
		m.CurrentScreen = ScreenTerminal
		m.fading = false
		updated, cmd := m.apply(m.ctrl.Boot())
		return updated, tea.Batch(cmd, textinput.Blink)
	}

	switch m.CurrentScreen {
	case ScreenTerminal:
		return m.updateTerminal(msg)
	default:
		return m, nil
	}
}

// updateTerminal forwards keys and clicks to the controller
func (m AppModel) updateTerminal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Enter):
			return m.handle(terminal.KeyEnter)
		case key.Matches(msg, m.Keys.Tab):
			return m.handle(terminal.KeyTab)
		case key.Matches(msg, m.Keys.Up):
			return m.handle(terminal.KeyUp)
		case key.Matches(msg, m.Keys.Down):
			return m.handle(terminal.KeyDown)
		}

	case tea.MouseMsg:
		if index, ok := m.clickedChoice(msg); ok {
			return m.apply(m.ctrl.Select(index))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m AppModel) handle(k terminal.Key) (tea.Model, tea.Cmd) {
	return m.apply(m.ctrl.Handle(terminal.Event{Key: k, Input: m.input.Value()}))
}

// apply reflects an outcome in the UI and quits once a page was chosen
func (m AppModel) apply(out terminal.Outcome) (tea.Model, tea.Cmd) {
	if !out.Handled {
		return m, nil
	}

	if out.Input != m.input.Value() {
		m.input.SetValue(out.Input)
		m.input.CursorEnd()
	}
	if out.ShowHint {
		m.hint = out.Hint
		m.showHint = true
	}

	if m.location.href != "" {
		logging.Info("Leaving terminal", zap.String("location", m.Destination()))
		m.CurrentScreen = ScreenLeaving
		m.input.Blur()
		return m, tea.Quit
	}
	return m, nil
}

// clickedChoice returns the choice under a left click
func (m AppModel) clickedChoice(msg tea.MouseMsg) (int, bool) {
	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionRelease {
		return 0, false
	}

	for i := range m.ctrl.Choices() {
		z := m.zones.Get(choiceZoneID(i))
		if z != nil && z.InBounds(msg) {
			return i, true
		}
	}
	return 0, false
}

func choiceZoneID(i int) string {
	return fmt.Sprintf("choice-%d", i)
}

// Destination returns the page chosen by the user joined with the base URL,
// or "" if the user quit without choosing one.
func (m AppModel) Destination() string {
	href := m.location.href
	if href == "" || m.options.BaseURL == "" {
		return href
	}
	joined, err := url.JoinPath(m.options.BaseURL, href)
	if err != nil {
		logging.Warn("Invalid base URL", zap.String("base_url", m.options.BaseURL), zap.Error(err))
		return href
	}
	return joined
}

// Controller exposes the terminal state machine
func (m AppModel) Controller() *terminal.Controller {
	return m.ctrl
}

// Input returns the current input field contents
func (m AppModel) Input() string {
	return m.input.Value()
}

// View renders the current screen
func (m AppModel) View() string {
	var content string
	switch m.CurrentScreen {
	case ScreenIntro:
		content = m.renderIntro()
	case ScreenTerminal:
		content = m.renderTerminal()
	case ScreenLeaving:
		content = m.renderLeaving()
	default:
		content = "Unknown screen"
	}

	return m.zones.Scan(RenderApplicationContainer(content, m.Help.View(m.Keys), m.Width, m.Height))
}

func (m AppModel) renderIntro() string {
	style := IntroStyle
	if m.fading {
		style = FadedStyle
	}

	lines := make([]string, len(m.options.IntroLines))
	for i, line := range m.options.IntroLines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}

func (m AppModel) renderTranscript(b *strings.Builder) {
	for _, line := range m.ctrl.Transcript() {
		b.WriteString(LineStyle.Render(terminal.PromptPrefix + line))
		b.WriteString("\n")
	}
}

func (m AppModel) renderTerminal() string {
	var b strings.Builder
	m.renderTranscript(&b)

	highlight := m.ctrl.Highlight()
	for i, choice := range m.ctrl.Choices() {
		entry := RenderChoice(terminal.PromptPrefix+choice.Label(), i == highlight)
		b.WriteString(m.zones.Mark(choiceZoneID(i), entry))
		b.WriteString("\n")
	}

	if m.showHint {
		b.WriteString(HintStyle.Render(m.hint))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	return b.String()
}

func (m AppModel) renderLeaving() string {
	var b strings.Builder
	m.renderTranscript(&b)
	b.WriteString("\n")
	b.WriteString(LeavingStyle.Render("→ " + m.Destination()))
	return b.String()
}
