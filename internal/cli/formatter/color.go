package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmallek/compass/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusPill returns a colored indicator for the shared lifecycle status
// used by goals, milestones and tasks.
func StatusPill(status domain.Status) string {
	switch status {
	case domain.StatusNotStarted:
		return StyleDim.Render("○ Not started")
	case domain.StatusInProgress:
		return StyleGreen.Render("● In progress")
	case domain.StatusCompleted:
		return StyleDim.Render("✔ Completed")
	case domain.StatusAtRisk:
		return StyleYellow.Render("▲ At risk")
	case domain.StatusDelayed:
		return StyleRed.Render("▼ Delayed")
	default:
		return StyleDim.Render(string(status))
	}
}

// UserStatusPill returns a colored indicator for an account's approval state.
func UserStatusPill(status domain.UserStatus) string {
	switch status {
	case domain.UserApproved:
		return StyleGreen.Render("● Approved")
	case domain.UserPending:
		return StyleYellow.Render("○ Pending")
	case domain.UserRejected:
		return StyleRed.Render("✖ Rejected")
	default:
		return StyleDim.Render(string(status))
	}
}

// ExposureStyle colors a risk exposure value: red for high, yellow for
// moderate, green for low. Exposure is probability × impact on a 1-10
// impact scale, so 10 is the theoretical maximum.
func ExposureStyle(exposure float64) lipgloss.Style {
	switch {
	case exposure >= 5:
		return StyleRed
	case exposure >= 2:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
