package terminal

import (
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/cdterm/internal/logging"
)

// Resolver is the navigation API the controller depends on.
// *nav.Resolver implements it.
type Resolver interface {
	Names() []string
	Resolve(raw string) (string, bool)
	Navigate(name string)
}

// Key is an input key the controller reacts to.
type Key int

const (
	KeyEnter Key = iota
	KeyTab
	KeyUp
	KeyDown
)

// String returns the key name as browsers report it
func (k Key) String() string {
	switch k {
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyUp:
		return "ArrowUp"
	case KeyDown:
		return "ArrowDown"
	default:
		return "Unknown"
	}
}

// ParseKey maps a browser key name to a Key.
func ParseKey(name string) (Key, bool) {
	switch name {
	case "Enter":
		return KeyEnter, true
	case "Tab":
		return KeyTab, true
	case "ArrowUp":
		return KeyUp, true
	case "ArrowDown":
		return KeyDown, true
	default:
		return 0, false
	}
}

// Event is a key press together with the input field contents at that moment.
type Event struct {
	Key   Key
	Input string
}

// Outcome describes what a handled event changed.
type Outcome struct {
	// Handled is false when the event was rejected in the current state.
	Handled bool

	// Input is the input field contents after the event.
	Input string

	// Lines are the transcript lines appended by the event.
	Lines []string

	// Hint is the hint region contents; only meaningful when ShowHint is set.
	Hint     string
	ShowHint bool

	// PreventDefault asks the front end to suppress the key's default
	// behaviour (Tab moving focus).
	PreventDefault bool
}

// Controller is the terminal state machine. It is not safe for concurrent
// use; each front end drives it from a single goroutine.
type Controller struct {
	resolver   Resolver
	names      []string
	state      State
	transcript []string
	hint       string
}

// New creates a controller in the init state.
func New(resolver Resolver) *Controller {
	return &Controller{
		resolver: resolver,
		names:    resolver.Names(),
		state:    InitState{},
	}
}

// State returns the current state value.
func (c *Controller) State() State {
	return c.state
}

// Mode returns the tag of the current state.
func (c *Controller) Mode() Mode {
	return c.state.Mode()
}

// Choices returns the choice list, or nil outside choice mode.
func (c *Controller) Choices() []Choice {
	if s, ok := c.state.(ChoiceState); ok {
		out := make([]Choice, len(s.Choices))
		copy(out, s.Choices)
		return out
	}
	return nil
}

// Highlight returns the highlighted choice index, or -1 outside choice mode.
func (c *Controller) Highlight() int {
	if s, ok := c.state.(ChoiceState); ok {
		return s.Index
	}
	return -1
}

// Transcript returns a copy of every line printed so far.
func (c *Controller) Transcript() []string {
	out := make([]string, len(c.transcript))
	copy(out, c.transcript)
	return out
}

// Hint returns the last hint shown, or "" if none has been.
func (c *Controller) Hint() string {
	return c.hint
}

// Boot ends the introduction and asks the yes/no question.
func (c *Controller) Boot() Outcome {
	var out Outcome
	if _, ok := c.state.(InitState); !ok {
		c.reject("boot", "")
		return out
	}

	out.Handled = true
	c.transition(YesNoState{})
	c.print(&out, MsgQuestion)
	return out
}

// Handle applies a key event to the current state.
func (c *Controller) Handle(ev Event) Outcome {
	out := Outcome{Input: ev.Input}

	switch ev.Key {
	case KeyEnter:
		c.enter(&out, ev.Input)
	case KeyTab:
		c.tab(&out, ev.Input)
	case KeyUp:
		c.arrow(&out, -1)
	case KeyDown:
		c.arrow(&out, 1)
	default:
		c.reject(ev.Key.String(), ev.Input)
	}

	return out
}

// Select highlights the choice at index and confirms it, as a click on a
// choice entry does.
func (c *Controller) Select(index int) Outcome {
	var out Outcome
	s, ok := c.state.(ChoiceState)
	if !ok || index < 0 || index >= len(s.Choices) {
		c.reject("select", "")
		return out
	}

	out.Handled = true
	s.Index = index
	c.state = s
	c.confirm(s)
	return out
}

func (c *Controller) enter(out *Outcome, input string) {
	out.Handled = true
	out.Input = ""
	line := strings.TrimSpace(input)

	switch s := c.state.(type) {
	case YesNoState:
		c.answer(out, line)
	case ChoiceState:
		if line == "" {
			c.confirm(s)
			return
		}
		c.dispatch(out, line)
	case ManualState, InitState:
		c.dispatch(out, line)
	default:
		logging.Error("Unhandled terminal state", zap.String("mode", c.state.Mode().String()))
	}
}

func (c *Controller) answer(out *Outcome, line string) {
	switch strings.ToLower(line) {
	case "yes", "y":
		c.print(out, MsgShowChoices)
		c.transition(newChoiceState(c.names))
	case "no", "n":
		c.print(out, MsgManualMode)
		c.transition(ManualState{})
	default:
		c.print(out, MsgReprompt)
	}
}

func (c *Controller) arrow(out *Outcome, delta int) {
	s, ok := c.state.(ChoiceState)
	if !ok || len(s.Choices) == 0 {
		c.reject("arrow", out.Input)
		return
	}

	out.Handled = true
	c.state = s.move(delta)
}

func (c *Controller) confirm(s ChoiceState) {
	if len(s.Choices) == 0 {
		return
	}
	c.resolver.Navigate(s.Selected().Name)
}

// dispatch runs a trimmed command line.
func (c *Controller) dispatch(out *Outcome, line string) {
	switch {
	case line == "":
		return
	case strings.HasPrefix(line, "cd "):
		dest := strings.TrimSpace(line[3:])
		name, ok := c.resolver.Resolve(dest)
		if !ok {
			c.print(out, msgCommandNotFound(dest))
			return
		}
		c.print(out, msgChangingDirectory(name))
		c.resolver.Navigate(name)
	case line == "help":
		c.print(out, msgHelp(c.names))
	default:
		c.print(out, msgCommandNotFound(line))
	}
}

func (c *Controller) tab(out *Outcome, input string) {
	if _, ok := c.state.(ManualState); !ok {
		return
	}

	out.Handled = true
	out.PreventDefault = true
	if completed, ok := Complete(input, c.names); ok {
		out.Input = completed
	}
	c.showHint(out)
}

func (c *Controller) showHint(out *Outcome) {
	if len(c.names) == 0 {
		return
	}
	c.hint = HintLine(c.names)
	out.Hint = c.hint
	out.ShowHint = true
}

func (c *Controller) print(out *Outcome, line string) {
	c.transcript = append(c.transcript, line)
	out.Lines = append(out.Lines, line)
}

func (c *Controller) transition(to State) {
	logging.LogTransition(c.state.Mode().String(), to.Mode().String())
	c.state = to
}

func (c *Controller) reject(what, input string) {
	logging.Debug("Rejected terminal event",
		zap.String("event", what),
		zap.String("mode", c.state.Mode().String()),
		zap.String("input", input),
	)
}
