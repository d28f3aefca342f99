package server

import (
	"github.com/muurk/cdterm/internal/terminal"
)

// Frame types exchanged over /terminal
const (
	FrameHello    = "hello"    // client: page loaded
	FrameKey      = "key"      // client: key pressed in the input field
	FrameSelect   = "select"   // client: choice entry clicked
	FrameState    = "state"    // server: controller state after an event
	FrameIntro    = "intro"    // server: introduction log phase
	FrameNavigate = "navigate" // server: leave the page
)

// Intro phases
const (
	IntroFade   = "fade"
	IntroHidden = "hidden"
)

// ClientFrame is any frame sent by the page.
type ClientFrame struct {
	Type  string `json:"type"`
	Intro bool   `json:"intro,omitempty"` // hello: the page has an introduction log
	Key   string `json:"key,omitempty"`   // key: "Enter", "Tab", "ArrowUp", "ArrowDown"
	Input string `json:"input,omitempty"` // key: input field contents
	Index int    `json:"index,omitempty"` // select: clicked choice index
}

// StateFrame tells the page what to display after an event.
type StateFrame struct {
	Type           string   `json:"type"`
	Mode           string   `json:"mode"`
	Lines          []string `json:"lines"`
	Input          string   `json:"input"`
	Hint           string   `json:"hint,omitempty"`
	ShowHint       bool     `json:"show_hint"`
	PreventDefault bool     `json:"prevent_default"`
	Choices        []string `json:"choices,omitempty"`
	Highlight      int      `json:"highlight"`
}

// IntroFrame drives the introduction log fade.
type IntroFrame struct {
	Type  string `json:"type"`
	Phase string `json:"phase"`
}

// NavigateFrame asks the page to assign location.href.
type NavigateFrame struct {
	Type     string `json:"type"`
	Location string `json:"location"`
}

// newStateFrame builds a state frame from the controller and the outcome of
// the last event. Transcript lines are sent already prefixed.
func newStateFrame(c *terminal.Controller, out terminal.Outcome) StateFrame {
	lines := make([]string, len(out.Lines))
	for i, line := range out.Lines {
		lines[i] = terminal.PromptPrefix + line
	}

	var choices []string
	for _, choice := range c.Choices() {
		choices = append(choices, terminal.PromptPrefix+choice.Label())
	}

	return StateFrame{
		Type:           FrameState,
		Mode:           c.Mode().String(),
		Lines:          lines,
		Input:          out.Input,
		Hint:           out.Hint,
		ShowHint:       out.ShowHint,
		PreventDefault: out.PreventDefault,
		Choices:        choices,
		Highlight:      c.Highlight(),
	}
}
