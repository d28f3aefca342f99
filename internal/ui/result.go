package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultWarning
)

// Result represents a result box (success, failure, or warning)
type Result struct {
	Type            ResultType
	Title           string   // e.g., "Configuration written"
	Details         []Field  // Key-value details to display
	Error           error    // Error (for failure results)
	Troubleshooting []string // Troubleshooting tips (for failure and warning results)
	Width           int      // Terminal width
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details ...Field) *Result {
	return &Result{Type: ResultSuccess, Title: title, Details: details, Width: GetTerminalWidth()}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error, troubleshooting []string) *Result {
	return &Result{
		Type:            ResultFailure,
		Title:           title,
		Error:           err,
		Troubleshooting: troubleshooting,
		Width:           GetTerminalWidth(),
	}
}

// NewWarningResult creates a warning result box
func NewWarningResult(title string, troubleshooting []string) *Result {
	return &Result{Type: ResultWarning, Title: title, Troubleshooting: troubleshooting, Width: GetTerminalWidth()}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = clampWidth(width)
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	var (
		title lipgloss.Style
		color lipgloss.Color
		label string
	)
	switch r.Type {
	case ResultFailure:
		title, color, label = ErrorTitleStyle, ErrorColor, FailureMarker+"  FAILED"
	case ResultWarning:
		title, color, label = WarningTitleStyle, WarningColor, WarningMarker+"  WARNING"
	default:
		title, color, label = SuccessTitleStyle, SuccessColor, SuccessMarker+"  SUCCESS"
	}

	lines := []string{"", title.Render(fmt.Sprintf(" %s  ─  %s", label, r.Title)), ""}

	if len(r.Details) > 0 {
		lines = append(lines, renderFields(r.Details), "")
	}
	if r.Error != nil {
		lines = append(lines, ErrorMessageStyle.Render(" Error: "+r.Error.Error()), "")
	}
	if len(r.Troubleshooting) > 0 {
		lines = append(lines, r.renderTroubleshooting(), "")
	}

	return BoxStyle(r.Width, lipgloss.DoubleBorder(), color).Render(strings.Join(lines, "\n"))
}

// renderTroubleshooting renders the bullet list of tips
func (r *Result) renderTroubleshooting() string {
	lines := []string{TroubleshootingTitleStyle.Render(" Troubleshooting:")}
	for _, tip := range r.Troubleshooting {
		lines = append(lines, TroubleshootingItemStyle.Render("   • "+tip))
	}
	return strings.Join(lines, "\n")
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
