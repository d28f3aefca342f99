package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/cdterm/internal/version"
)

// Application branding constants
const (
	AppName   = "CDTERM"
	GitHubURL = "github.com/muurk/cdterm"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 40 // Below this the container is dropped
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	FadedColor     = lipgloss.Color("#3A3A3A") // Dark gray, intro fade-out
	BorderColor    = lipgloss.Color("#7D56F4") // Purple (same as primary)
	HighlightColor = lipgloss.Color("#43BF6D") // Green (same as secondary)
)

var (
	// Transcript line
	LineStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// Introduction log, fully visible
	IntroStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Introduction log while fading out
	FadedStyle = lipgloss.NewStyle().
			Foreground(FadedColor).
			Italic(true)

	// Choice entry (not highlighted)
	ChoiceStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(TextColor)

	// Highlighted choice entry
	SelectedChoiceStyle = lipgloss.NewStyle().
				PaddingLeft(0).
				Foreground(HighlightColor).
				Bold(true)

	// Tab hint line
	HintStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			PaddingLeft(2)

	// Prompt in front of the input field
	PromptStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// Leaving screen
	LeavingStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)
)

// RenderChoice renders a choice entry with the selection indicator
func RenderChoice(text string, selected bool) string {
	if selected {
		return SelectedChoiceStyle.Render("→ " + text)
	}
	return ChoiceStyle.Render(text)
}

// BuildHeaderContent creates header content with app name and GitHub URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// BuildFooterContent creates footer content with help text
func BuildFooterContent(helpText string) string {
	return lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(helpText)
}

// RenderApplicationContainer wraps a screen in the bordered full-screen panel
// with the application header and a help footer. When the terminal size is
// not known yet, or is too narrow for the panel, content and footer are
// returned stacked without decoration.
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	footer := BuildFooterContent(footerText)

	if terminalWidth < MinTerminalWidth || terminalHeight < 6 {
		return lipgloss.JoinVertical(lipgloss.Left, content, "", footer)
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4). // Leave room for outer border
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth-4).
		Padding(1, 1)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent()),
		contentStyle.Render(content),
		footerStyle.Render(footer),
	)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		borderStyle.Render(innerContent),
	)
}
