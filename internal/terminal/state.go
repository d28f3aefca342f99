package terminal

// Mode identifies which State variant is active.
type Mode int

const (
	ModeInit Mode = iota
	ModeYesNo
	ModeChoice
	ModeManual
)

// String returns the mode name used in logs and wire frames
func (m Mode) String() string {
	switch m {
	case ModeInit:
		return "init"
	case ModeYesNo:
		return "yesno"
	case ModeChoice:
		return "choice"
	case ModeManual:
		return "manual"
	default:
		return "unknown"
	}
}

// State is the controller state. The set of variants is closed: InitState,
// YesNoState, ChoiceState and ManualState.
type State interface {
	Mode() Mode
	sealed()
}

// InitState is active until the introduction has finished and Boot is called.
type InitState struct{}

// YesNoState waits for an answer to the "move to another page?" question.
type YesNoState struct{}

// ChoiceState presents the destination list with one highlighted entry.
// Index is always within [0, len(Choices)).
type ChoiceState struct {
	Choices []Choice
	Index   int
}

// ManualState accepts free-form cd/help commands and Tab completion.
type ManualState struct{}

func (InitState) Mode() Mode   { return ModeInit }
func (YesNoState) Mode() Mode  { return ModeYesNo }
func (ChoiceState) Mode() Mode { return ModeChoice }
func (ManualState) Mode() Mode { return ModeManual }

func (InitState) sealed()   {}
func (YesNoState) sealed()  {}
func (ChoiceState) sealed() {}
func (ManualState) sealed() {}

// Choice is one selectable entry of the choice list.
type Choice struct {
	Name string // Destination name the entry navigates to
}

// Label returns the command the entry stands for, e.g. "cd works".
func (c Choice) Label() string {
	return "cd " + c.Name
}

// Selected returns the highlighted choice.
func (s ChoiceState) Selected() Choice {
	return s.Choices[s.Index]
}

// move returns the state with the highlight moved by delta, wrapping around.
func (s ChoiceState) move(delta int) ChoiceState {
	n := len(s.Choices)
	s.Index = ((s.Index+delta)%n + n) % n
	return s
}

func newChoiceState(names []string) ChoiceState {
	choices := make([]Choice, len(names))
	for i, name := range names {
		choices[i] = Choice{Name: name}
	}
	return ChoiceState{Choices: choices, Index: 0}
}
