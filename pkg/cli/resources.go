package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"resource-catalog/pkg/catalog"
	"resource-catalog/pkg/cli/client"
	"resource-catalog/pkg/cli/format"
	"resource-catalog/pkg/models"

	"github.com/google/uuid"
)

// ListOptions narrows the non-interactive resource listing
type ListOptions struct {
	Search   string
	Category string // name or id prefix
	JSON     bool
}

// loadStore creates a store and fills it from the gateway
func (a *App) loadStore(ctx context.Context) (*catalog.Store, error) {
	store, err := a.newStore()
	if err != nil {
		return nil, err
	}
	if err := store.LoadAll(ctx); err != nil {
		if client.IsUnauthorized(err) {
			return nil, fmt.Errorf("gateway rejected the API key (run 'register <email>' to get a new one): %w", err)
		}
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return store, nil
}

// ListResources prints the resources matching opts
func (a *App) ListResources(ctx context.Context, w io.Writer, opts ListOptions) error {
	store, err := a.loadStore(ctx)
	if err != nil {
		return err
	}
	state := store.State()

	if opts.Category != "" {
		category, err := findCategory(state.Categories, opts.Category)
		if err != nil {
			return err
		}
		store.SetSelectedCategory(category.ID)
	}
	store.SetSearchTerm(opts.Search)

	visible := store.Visible()
	if opts.JSON {
		return format.WriteJSON(w, visible)
	}
	_, err = io.WriteString(w, format.ResourceTable(visible, state.Categories, opts.Search != ""))
	return err
}

// ShowResource prints one resource found by id prefix
func (a *App) ShowResource(ctx context.Context, w io.Writer, idPrefix string, asJSON bool) error {
	store, err := a.loadStore(ctx)
	if err != nil {
		return err
	}
	state := store.State()

	var matches []models.Resource
	for _, r := range state.Resources {
		if strings.HasPrefix(r.ID.String(), strings.ToLower(idPrefix)) {
			matches = append(matches, r)
		}
	}
	switch len(matches) {
	case 0:
		return fmt.Errorf("resource %q not found", idPrefix)
	case 1:
	default:
		return fmt.Errorf("id prefix %q matches %d resources", idPrefix, len(matches))
	}

	if asJSON {
		return format.WriteJSON(w, matches[0])
	}
	_, err = io.WriteString(w, format.ResourceDetail(matches[0], state.Categories))
	return err
}

// ListCategories prints categories grouped by type with resource counts
func (a *App) ListCategories(ctx context.Context, w io.Writer, asJSON bool) error {
	store, err := a.loadStore(ctx)
	if err != nil {
		return err
	}
	state := store.State()

	if asJSON {
		return format.WriteJSON(w, state.Categories)
	}
	_, err = io.WriteString(w, format.CategoryTable(state.Categories, state.Resources))
	return err
}

// findCategory matches a full id, an id prefix or a case-insensitive name
func findCategory(categories []models.Category, query string) (models.Category, error) {
	if id, err := uuid.Parse(query); err == nil {
		if c, ok := catalog.CategoryByID(categories, id); ok {
			return c, nil
		}
		return models.Category{}, fmt.Errorf("category %q not found", query)
	}

	var matches []models.Category
	for _, c := range categories {
		if strings.EqualFold(c.Name, query) {
			return c, nil
		}
		if strings.HasPrefix(c.ID.String(), strings.ToLower(query)) {
			matches = append(matches, c)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) > 1 {
		return models.Category{}, fmt.Errorf("category prefix %q is ambiguous", query)
	}
	return models.Category{}, fmt.Errorf("category %q not found", query)
}
