// Package ui renders the run summary for the terminal.
package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/imamik/fwupgrade/internal/orchestration"
)

var (
	colorGreen = lipgloss.Color("#22c55e")
	colorRed   = lipgloss.Color("#ef4444")
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	okStyle = lipgloss.NewStyle().
		Foreground(colorGreen)

	failStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// IsTerminal reports whether stdout is a terminal.
func IsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// RenderSummary produces the per-step outcome summary. Styling is applied
// only when styled is true (stdout is a terminal).
func RenderSummary(outcomes []orchestration.StepOutcome, styled bool) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(render(titleStyle, "  upgrade summary", styled))
	b.WriteString("\n")
	b.WriteString(render(dimStyle, "  "+strings.Repeat("─", 48), styled))
	b.WriteString("\n")

	for i, o := range outcomes {
		line := fmt.Sprintf("  %2d. %-28s %s", i+1, o.Name, statusLabel(o))
		switch {
		case !o.Ran:
			b.WriteString(render(dimStyle, line, styled))
		case o.Succeeded:
			b.WriteString(render(okStyle, line, styled))
		default:
			b.WriteString(render(failStyle, line, styled))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func statusLabel(o orchestration.StepOutcome) string {
	switch {
	case !o.Ran:
		return "skipped"
	case o.Succeeded:
		return "ok (" + o.Duration.Round(time.Millisecond).String() + ")"
	default:
		return "failed: " + o.Err.Error()
	}
}

func render(style lipgloss.Style, s string, styled bool) string {
	if !styled {
		return s
	}
	return style.Render(s)
}
