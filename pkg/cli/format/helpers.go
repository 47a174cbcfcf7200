package format

import (
	"strconv"
	"strings"
	"time"

	"resource-catalog/pkg/catalog"
	"resource-catalog/pkg/models"

	"github.com/google/uuid"
)

// Truncate shortens s to maxLen runes, ending with "..."
func Truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// ShortenID returns a shortened version of a UUID (first 8 characters + "...")
func ShortenID(id uuid.UUID) string {
	return id.String()[:8] + "..."
}

// FormatDate formats a time as a readable date string
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

// URL returns the resource URL or "-"
func URL(r models.Resource) string {
	if r.URL == nil || *r.URL == "" {
		return "-"
	}
	return *r.URL
}

// CategoryName resolves a category id, marking ids that no longer exist
func CategoryName(categories []models.Category, id uuid.UUID) string {
	if c, ok := catalog.CategoryByID(categories, id); ok {
		return c.Name
	}
	return "(deleted)"
}

// Tags renders tags as "#a #b"
func Tags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return "#" + strings.Join(tags, " #")
}

// FileSize renders a byte count in KB/MB
func FileSize(size *int64) string {
	if size == nil {
		return ""
	}
	switch n := float64(*size); {
	case n >= 1<<20:
		return trimFloat(n/(1<<20)) + " MB"
	case n >= 1<<10:
		return trimFloat(n/(1<<10)) + " KB"
	default:
		return trimFloat(n) + " B"
	}
}

func trimFloat(f float64) string {
	s := strings.TrimRight(strings.TrimRight(strconv.FormatFloat(f, 'f', 1, 64), "0"), ".")
	if s == "" {
		return "0"
	}
	return s
}
