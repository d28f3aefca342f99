package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Field is one key/value line of a header or result box. Fields keep the
// order they are given in.
type Field struct {
	Key   string
	Value string
}

// Header is a command banner with title, command line and parameters.
type Header struct {
	Title   string  // e.g., "Terminal server"
	Command string  // e.g., "cdterm serve"
	Params  []Field // e.g., {"Address", "0.0.0.0:8080"}
	Width   int     // Terminal width for responsive rendering
}

// NewHeader creates a new header sized to the terminal
func NewHeader(title, command string, params ...Field) *Header {
	return &Header{
		Title:   title,
		Command: command,
		Params:  params,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (h *Header) SetWidth(width int) *Header {
	h.Width = clampWidth(width)
	return h
}

// Render returns the styled header as a string
func (h *Header) Render() string {
	titleLine := HeaderTitleStyle.Render(strings.ToUpper(h.Title))
	commandLine := HeaderCommandStyle.Render(h.Command)
	content := lipgloss.JoinVertical(lipgloss.Left, titleLine, commandLine)

	if len(h.Params) > 0 {
		dividerWidth := h.Width - 6 // Account for border and padding
		if dividerWidth < 10 {
			dividerWidth = 10
		}
		content = lipgloss.JoinVertical(lipgloss.Left,
			content,
			RenderHorizontalDivider(dividerWidth, "─"),
			renderFields(h.Params),
		)
	}

	return BoxStyle(h.Width, lipgloss.RoundedBorder(), PrimaryColor).Render(content)
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}

func renderFields(fields []Field) string {
	lines := make([]string, len(fields))
	for i, f := range fields {
		lines[i] = FieldKeyStyle.Render(f.Key+":") + " " + FieldValueStyle.Render(f.Value)
	}
	return strings.Join(lines, "\n")
}
