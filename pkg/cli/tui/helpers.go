package tui

import (
	"fmt"
	"strings"

	"resource-catalog/pkg/catalog"
	"resource-catalog/pkg/cli/format"
	"resource-catalog/pkg/models"

	"github.com/google/uuid"
)

// renderEmptyState renders a standard empty state message
func renderEmptyState(message string) string {
	return "\n" + mutedStyle.Render(message) + "\n"
}

// renderLoadingState renders a standard loading message
func renderLoadingState(message string) string {
	return "\n" + infoStyle.Render(message) + "\n"
}

// renderInlineError renders an error message inline (without full error view formatting)
func renderInlineError(err error) string {
	if err == nil {
		return ""
	}
	return renderError(err.Error())
}

// categoryLabel renders the swatch and name of a category, or a marker for a stale id
func categoryLabel(categories []models.Category, id uuid.UUID) string {
	c, ok := catalog.CategoryByID(categories, id)
	if !ok {
		return mutedStyle.Render("(deleted category)")
	}
	return categorySwatch(c.Color) + " " + c.Name
}

// renderTags renders tags as "#a #b", or nothing
func renderTags(tags []string, maxLen int) string {
	if len(tags) == 0 {
		return ""
	}
	return tagStyle.Render(format.Truncate(format.Tags(tags), maxLen))
}

// renderResourceItem renders one list-view entry (ListItemHeight lines)
func renderResourceItem(r models.Resource, categories []models.Category, selected bool, width int) string {
	marker := " "
	style := resourceTitleStyle
	if selected {
		marker = selectedMarkerStyle.Render("→")
		style = selectedStyle
	}

	maxLen := width - 6
	if maxLen < 20 {
		maxLen = 20
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s %s\n", marker, catalog.TypeIcon(r.Type), style.Render(format.Truncate(r.Title, maxLen))))
	b.WriteString(fmt.Sprintf("    %s  %s\n", categoryLabel(categories, r.CategoryID), renderTags(r.Tags, maxLen/2)))
	b.WriteString(fmt.Sprintf("    %s\n", resourceURLStyle.Render(format.Truncate(format.URL(r), maxLen))))
	return b.String()
}

// renderResourceCard renders one grid card of the given outer width
func renderResourceCard(r models.Resource, categories []models.Category, selected bool, width int) string {
	inner := width - 4 // border + padding
	if inner < 10 {
		inner = 10
	}

	header := catalog.TypeIcon(r.Type) + " " + format.Truncate(r.Title, inner-3)
	if catalog.IsVideo(r) {
		header = "▶ " + format.Truncate(r.Title, inner-2)
	}
	desc := r.Description
	if desc == "" {
		desc = format.URL(r)
	}

	lines := []string{
		resourceTitleStyle.Render(header),
		categoryLabel(categories, r.CategoryID),
		mutedStyle.Render(format.Truncate(strings.ReplaceAll(desc, "\n", " "), inner)),
		renderTags(r.Tags, inner),
		mutedStyle.Render(format.FormatDate(r.CreatedAt)),
	}

	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// renderResourceDetails renders every field of a resource
func renderResourceDetails(r models.Resource, categories []models.Category, width int) string {
	var b strings.Builder

	b.WriteString(fieldLabelStyle.Render("ID:"))
	b.WriteString(fmt.Sprintf(" %s\n", idStyle.Render(format.ShortenID(r.ID))))

	b.WriteString(fieldLabelStyle.Render("Title:"))
	b.WriteString(fmt.Sprintf(" %s %s\n", catalog.TypeIcon(r.Type), r.Title))

	b.WriteString(fieldLabelStyle.Render("Type:"))
	b.WriteString(fmt.Sprintf(" %s\n", r.Type))

	b.WriteString(fieldLabelStyle.Render("Category:"))
	b.WriteString(fmt.Sprintf(" %s\n", categoryLabel(categories, r.CategoryID)))

	b.WriteString(fieldLabelStyle.Render("URL:"))
	b.WriteString(fmt.Sprintf(" %s\n", format.URL(r)))

	if catalog.IsVideo(r) {
		b.WriteString(fieldLabelStyle.Render("Embed:"))
		b.WriteString(fmt.Sprintf(" %s\n", catalog.EmbedURL(*r.URL)))
		if thumb := catalog.VideoThumbnail(*r.URL); thumb != "" {
			b.WriteString(fieldLabelStyle.Render("Thumbnail:"))
			b.WriteString(fmt.Sprintf(" %s\n", thumb))
		}
	}

	if r.FileName != nil {
		b.WriteString(fieldLabelStyle.Render("File:"))
		b.WriteString(fmt.Sprintf(" %s (%s)\n", *r.FileName, format.FileSize(r.FileSize)))
	}

	b.WriteString(fieldLabelStyle.Render("Description:"))
	if r.Description != "" {
		b.WriteString(wrapText(r.Description, width-4, " "))
	} else {
		b.WriteString(" " + mutedStyle.Render("(not set)") + "\n")
	}

	b.WriteString(fieldLabelStyle.Render("Tags:"))
	if len(r.Tags) > 0 {
		b.WriteString(" " + tagStyle.Render(format.Tags(r.Tags)) + "\n")
	} else {
		b.WriteString(" " + mutedStyle.Render("(none)") + "\n")
	}

	b.WriteString(fieldLabelStyle.Render("Created:"))
	b.WriteString(fmt.Sprintf(" %s\n", format.FormatDate(r.CreatedAt)))
	b.WriteString(fieldLabelStyle.Render("Updated:"))
	b.WriteString(fmt.Sprintf(" %s\n", format.FormatDate(r.UpdatedAt)))

	return b.String()
}

// wrapText wraps text to a specified width, breaking at word boundaries
func wrapText(text string, width int, indent string) string {
	if width < 20 {
		width = 20
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return indent + "\n"
	}

	var b strings.Builder
	line := ""
	for _, word := range words {
		if len(line)+len(word)+1 > width {
			b.WriteString(fmt.Sprintf("%s%s\n", indent, line))
			line = word
		} else {
			if line != "" {
				line += " "
			}
			line += word
		}
	}
	if line != "" {
		b.WriteString(fmt.Sprintf("%s%s\n", indent, line))
	}
	return b.String()
}

// handleListNavigation handles common navigation keys for list views (up/down/j/k)
// Returns the new selected index and whether navigation occurred
func handleListNavigation(key string, selected int, total int) (newSelected int, handled bool) {
	switch key {
	case "up", "k":
		if selected > 0 {
			return selected - 1, true
		}
		return selected, true
	case "down", "j":
		if selected < total-1 {
			return selected + 1, true
		}
		return selected, true
	}
	return selected, false
}

// handleGridNavigation moves through cards laid out in rows of columns.
// up/down jump a row, left/right move one card.
func handleGridNavigation(key string, selected int, total int, columns int) (newSelected int, handled bool) {
	switch key {
	case "left", "h":
		if selected > 0 {
			return selected - 1, true
		}
		return selected, true
	case "right", "l":
		if selected < total-1 {
			return selected + 1, true
		}
		return selected, true
	case "up", "k":
		if selected-columns >= 0 {
			return selected - columns, true
		}
		return selected, true
	case "down", "j":
		if selected+columns < total {
			return selected + columns, true
		}
		return selected, true
	}
	return selected, false
}

// handleQuitKeys checks if a key should quit the current view
func handleQuitKeys(key string) bool {
	switch key {
	case "ctrl+c", "q":
		return true
	}
	return false
}

// clampIndex keeps a selection inside [0, total)
func clampIndex(selected, total int) int {
	if selected >= total {
		selected = total - 1
	}
	if selected < 0 {
		selected = 0
	}
	return selected
}
