package catalog

import (
	"fmt"

	"resource-catalog/pkg/models"

	"github.com/google/uuid"
)

// ViewMode is how the resource list is laid out
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// ParseViewMode accepts "grid" or "list"
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ViewGrid, ViewList:
		return ViewMode(s), nil
	}
	return "", fmt.Errorf("unknown view mode %q (expected grid or list)", s)
}

// State is a snapshot of the catalog
type State struct {
	IsAuthenticated  bool
	Resources        []models.Resource
	Categories       []models.Category
	SearchTerm       string
	SelectedCategory uuid.UUID // uuid.Nil means no filter
	View             ViewMode
	Loading          bool
}

// clone copies the slices so callers can't alias store internals
func (s State) clone() State {
	s.Resources = append([]models.Resource(nil), s.Resources...)
	for i := range s.Resources {
		s.Resources[i].Tags = append([]string(nil), s.Resources[i].Tags...)
	}
	s.Categories = append([]models.Category(nil), s.Categories...)
	return s
}

// Action is a single local state transition
type Action interface {
	action()
}

type (
	// Loaded replaces both lists after a full fetch
	Loaded struct {
		Categories []models.Category
		Resources  []models.Resource
	}
	// ResourceAdded prepends a gateway-assigned resource
	ResourceAdded struct{ Resource models.Resource }
	// ResourcePatched replaces a resource with its locally merged version
	ResourcePatched struct{ Resource models.Resource }
	ResourceRemoved struct{ ID uuid.UUID }
	// CategoryAdded appends a gateway-assigned category
	CategoryAdded    struct{ Category models.Category }
	CategoryPatched  struct{ Category models.Category }
	CategoryRemoved  struct{ ID uuid.UUID }
	SearchTermSet    struct{ Term string }
	CategorySelected struct{ ID uuid.UUID }
	ViewSet          struct{ View ViewMode }
	AuthSet          struct{ Authenticated bool }
	LoadingSet       struct{ Loading bool }
)

func (Loaded) action()           {}
func (ResourceAdded) action()    {}
func (ResourcePatched) action()  {}
func (ResourceRemoved) action()  {}
func (CategoryAdded) action()    {}
func (CategoryPatched) action()  {}
func (CategoryRemoved) action()  {}
func (SearchTermSet) action()    {}
func (CategorySelected) action() {}
func (ViewSet) action()          {}
func (AuthSet) action()          {}
func (LoadingSet) action()       {}

// Reduce returns the state that results from applying a to s.
// It never mutates the slices held by s.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Loaded:
		s.Categories = append([]models.Category{}, a.Categories...)
		s.Resources = append([]models.Resource{}, a.Resources...)
	case ResourceAdded:
		s.Resources = append([]models.Resource{a.Resource}, s.Resources...)
	case ResourcePatched:
		s.Resources = replaceResource(s.Resources, a.Resource)
	case ResourceRemoved:
		s.Resources = removeResource(s.Resources, a.ID)
	case CategoryAdded:
		categories := make([]models.Category, 0, len(s.Categories)+1)
		s.Categories = append(append(categories, s.Categories...), a.Category)
	case CategoryPatched:
		s.Categories = replaceCategory(s.Categories, a.Category)
	case CategoryRemoved:
		s.Categories = removeCategory(s.Categories, a.ID)
	case SearchTermSet:
		s.SearchTerm = a.Term
	case CategorySelected:
		s.SelectedCategory = a.ID
	case ViewSet:
		s.View = a.View
	case AuthSet:
		s.IsAuthenticated = a.Authenticated
	case LoadingSet:
		s.Loading = a.Loading
	}
	return s
}

func replaceResource(list []models.Resource, r models.Resource) []models.Resource {
	out := make([]models.Resource, len(list))
	for i, existing := range list {
		if existing.ID == r.ID {
			out[i] = r
		} else {
			out[i] = existing
		}
	}
	return out
}

func removeResource(list []models.Resource, id uuid.UUID) []models.Resource {
	out := make([]models.Resource, 0, len(list))
	for _, r := range list {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}

func replaceCategory(list []models.Category, c models.Category) []models.Category {
	out := make([]models.Category, len(list))
	for i, existing := range list {
		if existing.ID == c.ID {
			out[i] = c
		} else {
			out[i] = existing
		}
	}
	return out
}

func removeCategory(list []models.Category, id uuid.UUID) []models.Category {
	out := make([]models.Category, 0, len(list))
	for _, c := range list {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}
