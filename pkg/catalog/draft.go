package catalog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"resource-catalog/pkg/models"
	"resource-catalog/pkg/utils"

	"github.com/google/uuid"
)

// StagedFile is a local file picked for upload
type StagedFile struct {
	Name string
	Size int64
	Open func() (io.ReadCloser, error)
}

// StageLocalFile stages the file at path
func StageLocalFile(path string) (*StagedFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	return &StagedFile{
		Name: filepath.Base(path),
		Size: info.Size(),
		Open: func() (io.ReadCloser, error) { return os.Open(path) },
	}, nil
}

// ResourceDraft is the state of the resource form
type ResourceDraft struct {
	Title       string
	Type        models.ResourceType
	URL         string
	Description string
	CategoryID  uuid.UUID
	Tags        []string
	File        *StagedFile
}

// NewResourceDraft returns an empty form, defaulting to a link
func NewResourceDraft() ResourceDraft {
	return ResourceDraft{Type: models.ResourceTypeLink}
}

// DraftFromResource fills the form from an existing resource
func DraftFromResource(r models.Resource) ResourceDraft {
	d := ResourceDraft{
		Title:       r.Title,
		Type:        r.Type,
		Description: r.Description,
		CategoryID:  r.CategoryID,
		Tags:        append([]string(nil), r.Tags...),
	}
	if r.URL != nil {
		d.URL = *r.URL
	}
	return d
}

// AddTag appends a trimmed tag. Blank and already present tags are refused.
func (d *ResourceDraft) AddTag(input string) bool {
	tag := strings.TrimSpace(input)
	if tag == "" || slices.Contains(d.Tags, tag) {
		return false
	}
	d.Tags = append(d.Tags, tag)
	return true
}

// RemoveTag drops every occurrence of tag
func (d *ResourceDraft) RemoveTag(tag string) {
	d.Tags = slices.DeleteFunc(d.Tags, func(t string) bool { return t == tag })
}

// StageFile attaches f and uses its name as the title when none was typed
func (d *ResourceDraft) StageFile(f *StagedFile) {
	d.File = f
	if f != nil && strings.TrimSpace(d.Title) == "" {
		d.Title = f.Name
	}
}

// ParseTags splits comma separated input. Blank entries are dropped.
func ParseTags(input string) []string {
	return utils.CleanTags(strings.Split(input, ","))
}

// Patch returns the fields of d that differ from the original resource.
// Upload types never send a typed URL; a staged file replaces it instead.
func (d ResourceDraft) Patch(original models.Resource) ResourcePatch {
	var p ResourcePatch

	if title := strings.TrimSpace(d.Title); title != original.Title {
		p.Title = &title
	}
	if d.Type != original.Type {
		t := d.Type
		p.Type = &t
	}
	if d.Description != original.Description {
		desc := d.Description
		p.Description = &desc
	}
	if d.CategoryID != original.CategoryID {
		id := d.CategoryID
		p.CategoryID = &id
	}
	if tags := utils.CleanTags(d.Tags); !slices.Equal(tags, original.Tags) {
		p.Tags = &tags
	}
	if d.Type == models.ResourceTypeLink {
		url := strings.TrimSpace(d.URL)
		if original.URL == nil || *original.URL != url {
			p.URL = &url
		}
	} else if d.File != nil {
		p.File = d.File
	}

	return p
}

// ResourcePatch is a partial resource update plus an optional replacement file
type ResourcePatch struct {
	models.ResourceUpdate
	File *StagedFile
}

// IsEmpty reports whether the patch changes nothing
func (p ResourcePatch) IsEmpty() bool {
	return p.ResourceUpdate.IsEmpty() && p.File == nil
}

// CategoryDraft is the state of the category form
type CategoryDraft struct {
	Name         string
	Color        string
	Description  string
	Icon         string
	ResourceType models.CategoryType
}

// NewCategoryDraft returns an empty form with the default color, icon and type
func NewCategoryDraft() CategoryDraft {
	return CategoryDraft{
		Color:        models.DefaultCategoryColor,
		Icon:         models.DefaultCategoryIcon,
		ResourceType: models.DefaultCategoryType,
	}
}

// DraftFromCategory fills the form from an existing category
func DraftFromCategory(c models.Category) CategoryDraft {
	return CategoryDraft{
		Name:         c.Name,
		Color:        c.Color,
		Description:  c.Description,
		Icon:         c.Icon,
		ResourceType: c.ResourceType,
	}
}

// Create converts the form into an insert payload with defaults applied
func (d CategoryDraft) Create() models.CategoryCreate {
	return models.CategoryCreate{
		Name:         strings.TrimSpace(d.Name),
		Color:        strings.TrimSpace(d.Color),
		Description:  d.Description,
		Icon:         d.Icon,
		ResourceType: d.ResourceType,
	}.WithDefaults()
}

// Patch returns the fields of d that differ from the original category
func (d CategoryDraft) Patch(original models.Category) models.CategoryUpdate {
	var u models.CategoryUpdate
	if name := strings.TrimSpace(d.Name); name != original.Name {
		u.Name = &name
	}
	if color := strings.TrimSpace(d.Color); color != original.Color {
		u.Color = &color
	}
	if d.Description != original.Description {
		desc := d.Description
		u.Description = &desc
	}
	if d.Icon != original.Icon {
		icon := d.Icon
		u.Icon = &icon
	}
	if d.ResourceType != original.ResourceType {
		t := d.ResourceType
		u.ResourceType = &t
	}
	return u
}
