package models

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType groups categories under a heading.
type CategoryType string

const (
	CategoryTypeDocuments CategoryType = "documents"
	CategoryTypeLinks     CategoryType = "links"
	CategoryTypeMedia     CategoryType = "media"
	CategoryTypeOther     CategoryType = "other"
)

// CategoryTypes lists the category types in display order.
var CategoryTypes = []CategoryType{
	CategoryTypeDocuments,
	CategoryTypeLinks,
	CategoryTypeMedia,
	CategoryTypeOther,
}

// Valid reports whether t is a known category type
func (t CategoryType) Valid() bool {
	switch t {
	case CategoryTypeDocuments, CategoryTypeLinks, CategoryTypeMedia, CategoryTypeOther:
		return true
	}
	return false
}

// Label returns the heading shown above a group of categories
func (t CategoryType) Label() string {
	switch t {
	case CategoryTypeDocuments:
		return "Documents"
	case CategoryTypeLinks:
		return "Links"
	case CategoryTypeMedia:
		return "Media"
	default:
		return "Other"
	}
}

const (
	DefaultCategoryColor = "#3B82F6"
	DefaultCategoryIcon  = "folder"
	DefaultCategoryType  = CategoryTypeDocuments
)

// CategoryColors is the palette offered by the category form.
var CategoryColors = []string{
	"#3B82F6", // blue
	"#10B981", // emerald
	"#F59E0B", // amber
	"#EF4444", // red
	"#8B5CF6", // violet
	"#06B6D4", // cyan
	"#84CC16", // lime
	"#F97316", // orange
	"#EC4899", // pink
	"#6366F1", // indigo
}

type Category struct {
	ID           uuid.UUID    `db:"id" json:"id"`
	Name         string       `db:"name" json:"name"`
	Color        string       `db:"color" json:"color"`
	Description  string       `db:"description" json:"description"`
	Icon         string       `db:"icon" json:"icon"`
	ResourceType CategoryType `db:"resource_type" json:"resource_type"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
}

// CategoryCreate represents data for creating a new category
type CategoryCreate struct {
	Name         string       `json:"name" binding:"required"`
	Color        string       `json:"color" binding:"omitempty,hexcolor,len=7"`
	Description  string       `json:"description"`
	Icon         string       `json:"icon"`
	ResourceType CategoryType `json:"resource_type" binding:"omitempty,oneof=documents links media other"`
}

// WithDefaults fills empty color, icon and type with the form defaults
func (c CategoryCreate) WithDefaults() CategoryCreate {
	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}
	if c.Icon == "" {
		c.Icon = DefaultCategoryIcon
	}
	if c.ResourceType == "" {
		c.ResourceType = DefaultCategoryType
	}
	return c
}

// CategoryUpdate represents data for updating a category.
// Nil fields are left untouched.
type CategoryUpdate struct {
	Name         *string       `json:"name,omitempty" binding:"omitempty,min=1"`
	Color        *string       `json:"color,omitempty" binding:"omitempty,hexcolor,len=7"`
	Description  *string       `json:"description,omitempty"`
	Icon         *string       `json:"icon,omitempty"`
	ResourceType *CategoryType `json:"resource_type,omitempty" binding:"omitempty,oneof=documents links media other"`
}

// IsEmpty reports whether the update carries no fields
func (u CategoryUpdate) IsEmpty() bool {
	return u.Name == nil && u.Color == nil && u.Description == nil && u.Icon == nil && u.ResourceType == nil
}

// Apply returns a copy of c with the update's fields merged in
func (u CategoryUpdate) Apply(c Category) Category {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Color != nil {
		c.Color = *u.Color
	}
	if u.Description != nil {
		c.Description = *u.Description
	}
	if u.Icon != nil {
		c.Icon = *u.Icon
	}
	if u.ResourceType != nil {
		c.ResourceType = *u.ResourceType
	}
	return c
}
