package terminal

import (
	"fmt"
	"strings"
)

// PromptPrefix is prepended to every transcript line and choice entry when rendered.
const PromptPrefix = ">>> "

// Transcript messages
const (
	MsgQuestion    = "Move to another page? [yes/no]"
	MsgShowChoices = "showing cd shortcuts..."
	MsgManualMode  = "manual mode: use cd <page>. press Tab to list folders."
	MsgReprompt    = "please answer yes or no."
)

// hintSeparator separates names in the Tab hint line
const hintSeparator = "   "

func msgChangingDirectory(name string) string {
	return fmt.Sprintf("changing directory to %s/", name)
}

func msgCommandNotFound(input string) string {
	return fmt.Sprintf("command not found: %s", input)
}

func msgHelp(names []string) string {
	return fmt.Sprintf("available: cd <%s>, help", strings.Join(names, "|"))
}

// HintLine formats the destination names as folders, e.g.
// "works/   profile/   research/   contact/".
func HintLine(names []string) string {
	folders := make([]string, len(names))
	for i, name := range names {
		folders[i] = name + "/"
	}
	return strings.Join(folders, hintSeparator)
}
