package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"resource-catalog/pkg/catalog"
	"resource-catalog/pkg/models"
)

// ResourceTable formats resources as a table for CLI output
func ResourceTable(resources []models.Resource, categories []models.Category, searching bool) string {
	if len(resources) == 0 {
		return "No resources found.\n"
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tType\tTitle\tCategory\tURL\tTags")
	fmt.Fprintln(w, strings.Repeat("─", 11)+"\t"+strings.Repeat("─", 8)+"\t"+strings.Repeat("─", 30)+"\t"+
		strings.Repeat("─", 20)+"\t"+strings.Repeat("─", 40)+"\t"+strings.Repeat("─", 20))

	for _, r := range resources {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			ShortenID(r.ID),
			r.Type,
			Truncate(r.Title, 30),
			Truncate(CategoryName(categories, r.CategoryID), 20),
			Truncate(URL(r), 40),
			Truncate(Tags(r.Tags), 20),
		)
	}

	w.Flush()
	b.WriteString("\n")
	b.WriteString(catalog.Summary(len(resources), searching))
	b.WriteString("\n")
	return b.String()
}

// ResourceDetail formats a single resource
func ResourceDetail(r models.Resource, categories []models.Category) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("  Title:       %s\n", r.Title))
	b.WriteString(fmt.Sprintf("  Type:        %s\n", r.Type))
	b.WriteString(fmt.Sprintf("  Category:    %s\n", CategoryName(categories, r.CategoryID)))
	b.WriteString(fmt.Sprintf("  URL:         %s\n", URL(r)))
	if r.FileName != nil {
		b.WriteString(fmt.Sprintf("  File:        %s (%s)\n", *r.FileName, FileSize(r.FileSize)))
	}
	if r.Description != "" {
		b.WriteString(fmt.Sprintf("  Description: %s\n", r.Description))
	}
	if len(r.Tags) > 0 {
		b.WriteString(fmt.Sprintf("  Tags:        %s\n", Tags(r.Tags)))
	}
	b.WriteString(fmt.Sprintf("  Created:     %s\n", FormatDate(r.CreatedAt)))
	b.WriteString(fmt.Sprintf("  Updated:     %s\n", FormatDate(r.UpdatedAt)))
	return b.String()
}

// CategoryTable formats categories under their type headings with resource counts
func CategoryTable(categories []models.Category, resources []models.Resource) string {
	if len(categories) == 0 {
		return "No categories found.\n"
	}

	counts := catalog.CountByCategory(resources)
	var b strings.Builder
	for _, group := range catalog.GroupCategories(categories) {
		b.WriteString(group.Type.Label())
		b.WriteString("\n")
		w := tabwriter.NewWriter(&b, 0, 0, 3, ' ', 0)
		for _, c := range group.Categories {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%d\t%s\n", ShortenID(c.ID), c.Color, c.Name, counts[c.ID], Truncate(c.Description, 40))
		}
		w.Flush()
	}
	return b.String()
}

// WriteJSON writes v as indented JSON
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// FormatErrorMessage formats an error message consistently
func FormatErrorMessage(err error) string {
	return fmt.Sprintf("❌ Error: %v\n", err)
}
