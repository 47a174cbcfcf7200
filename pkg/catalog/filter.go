package catalog

import (
	"fmt"
	"strings"

	"resource-catalog/pkg/models"

	"github.com/google/uuid"
)

// Visible returns the resources matching term and selected, in their original order.
// term is a case-insensitive substring of the title, description or any tag.
// selected == uuid.Nil matches every category.
func Visible(resources []models.Resource, term string, selected uuid.UUID) []models.Resource {
	term = strings.ToLower(term)
	out := make([]models.Resource, 0, len(resources))
	for _, r := range resources {
		if selected != uuid.Nil && r.CategoryID != selected {
			continue
		}
		if !matches(r, term) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matches(r models.Resource, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Title), term) ||
		strings.Contains(strings.ToLower(r.Description), term) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// CategoryGroup is a heading and the categories under it
type CategoryGroup struct {
	Type       models.CategoryType
	Categories []models.Category
}

// GroupCategories groups by the stored resource type, in heading order.
// Empty groups are omitted.
func GroupCategories(categories []models.Category) []CategoryGroup {
	var groups []CategoryGroup
	for _, t := range models.CategoryTypes {
		var members []models.Category
		for _, c := range categories {
			if c.ResourceType == t || (t == models.CategoryTypeOther && !c.ResourceType.Valid()) {
				members = append(members, c)
			}
		}
		if len(members) > 0 {
			groups = append(groups, CategoryGroup{Type: t, Categories: members})
		}
	}
	return groups
}

// CategoryByID finds a category in the list
func CategoryByID(categories []models.Category, id uuid.UUID) (models.Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

// CountByCategory returns how many resources reference each category id
func CountByCategory(resources []models.Resource) map[uuid.UUID]int {
	counts := make(map[uuid.UUID]int)
	for _, r := range resources {
		counts[r.CategoryID]++
	}
	return counts
}

// Summary describes a result count, e.g. "3 resources found"
func Summary(count int, searching bool) string {
	noun := "resources"
	if count == 1 {
		noun = "resource"
	}
	s := fmt.Sprintf("%d %s", count, noun)
	if searching {
		s += " found"
	}
	return s
}
