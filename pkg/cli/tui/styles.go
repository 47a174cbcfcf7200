package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Define a consistent color palette
var (
	// Colors
	colorPrimary   = lipgloss.Color("62")  // Purple/blue
	colorSecondary = lipgloss.Color("244") // Gray
	colorSuccess   = lipgloss.Color("42")  // Green
	colorError     = lipgloss.Color("196") // Red
	colorWarning   = lipgloss.Color("214") // Orange/Yellow
	colorInfo      = lipgloss.Color("39")  // Cyan
	colorMuted     = lipgloss.Color("240") // Dark gray
	colorBorder    = lipgloss.Color("238") // Border gray
)

// Reusable style definitions
var (
	// Title/Header styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	// Text styles
	boldStyle = lipgloss.NewStyle().Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Status styles
	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorInfo)

	// Resource styles
	resourceTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Bold(true)

	resourceURLStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Italic(true)

	tagStyle = lipgloss.NewStyle().
			Foreground(colorInfo)

	idStyle = lipgloss.NewStyle().
		Foreground(colorSecondary).
		Bold(true)

	// Grid cards
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	selectedCardStyle = cardStyle.
				BorderForeground(colorPrimary)

	// Field label styles
	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			MarginRight(2)

	// List/item styles
	selectedStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	selectedMarkerStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	// Divider
	dividerStyle = lipgloss.NewStyle().
			Foreground(colorBorder)

	// Help text
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	// Alert modal
	alertStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorError).
			Padding(1, 2)
)

// Helper functions for common formatting patterns
func renderTitle(title string) string {
	return "\n" + titleStyle.Render(title) + "\n"
}

func renderSuccess(msg string) string {
	return successStyle.Render("✓ " + msg)
}

func renderError(msg string) string {
	return errorStyle.Render("❌ " + msg)
}

func renderWarning(msg string) string {
	return warningStyle.Render("⚠️  " + msg)
}

func renderDivider(length int) string {
	return dividerStyle.Render(strings.Repeat("─", length))
}

// categorySwatch renders a colored square for a category color.
// Colors are "#RRGGBB", which lipgloss accepts as-is.
func categorySwatch(color string) string {
	if color == "" {
		return mutedStyle.Render("■")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("■")
}
