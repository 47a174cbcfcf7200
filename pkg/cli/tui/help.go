package tui

import (
	"fmt"
	"strings"
)

// HelpItem represents a single keyboard shortcut and its description
type HelpItem struct {
	Key         string
	Description string
}

// RootMenuHelpContent returns help for root menu
func RootMenuHelpContent() string {
	items := []HelpItem{
		{"1-4", "Select menu option"},
		{"r", "Reload the catalog"},
		{"q / Ctrl+C", "Quit"},
		{"?", "Show this help"},
	}
	return renderHelpItems(items)
}

// BrowseHelpContent returns help for the browse flow
func BrowseHelpContent() string {
	items := []HelpItem{
		{"↑ / ↓ / j / k", "Navigate resources"},
		{"← / → / h / l", "Move between cards (grid view)"},
		{"Enter", "Select resource"},
		{"/", "Search title, description and tags"},
		{"c / C", "Next / previous category filter"},
		{"x", "Clear search and category filter"},
		{"v", "Toggle grid / list view"},
		{"a", "Add resource (editor only)"},
		{"e / d", "Edit / delete selected (editor only)"},
		{"Esc / b", "Go back"},
		{"m", "Return to menu"},
		{"q", "Quit"},
		{"?", "Show this help"},
	}
	return renderHelpItems(items)
}

// ResourceFormHelpContent returns help for the resource form
func ResourceFormHelpContent() string {
	items := []HelpItem{
		{"Tab / Shift+Tab", "Next / previous field"},
		{"← / →", "Change type or category"},
		{"Enter", "Add tag (tags field) / stage file (file field) / next field"},
		{"Backspace", "Remove last tag (empty tags field)"},
		{"Ctrl+S", "Save"},
		{"Esc", "Cancel"},
	}
	return renderHelpItems(items)
}

// CategoriesHelpContent returns help for the categories flow
func CategoriesHelpContent() string {
	items := []HelpItem{
		{"↑ / ↓ / j / k", "Navigate categories"},
		{"Enter / f", "Filter resources by category"},
		{"a", "Add category (editor only)"},
		{"e / d", "Edit / delete selected (editor only)"},
		{"m", "Return to menu"},
		{"q", "Quit"},
		{"?", "Show this help"},
	}
	return renderHelpItems(items)
}

// renderHelpItems formats help items into a readable string
func renderHelpItems(items []HelpItem) string {
	var b strings.Builder
	for _, item := range items {
		keyStyle := boldStyle.Foreground(colorPrimary)
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			keyStyle.Render(item.Key),
			item.Description))
	}
	return b.String()
}
