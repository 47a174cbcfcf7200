package models

import (
	"time"

	"github.com/google/uuid"
)

// ResourceType is the kind of catalog entry.
type ResourceType string

const (
	ResourceTypeLink     ResourceType = "link"
	ResourceTypeDocument ResourceType = "document"
	ResourceTypeFile     ResourceType = "file"
)

// ResourceTypes lists the resource kinds in form order.
var ResourceTypes = []ResourceType{ResourceTypeLink, ResourceTypeDocument, ResourceTypeFile}

// Valid reports whether t is a known resource type
func (t ResourceType) Valid() bool {
	switch t {
	case ResourceTypeLink, ResourceTypeDocument, ResourceTypeFile:
		return true
	}
	return false
}

// HasUpload reports whether resources of this type carry an uploaded blob
// instead of a typed URL.
func (t ResourceType) HasUpload() bool {
	return t == ResourceTypeDocument || t == ResourceTypeFile
}

type Resource struct {
	ID          uuid.UUID    `db:"id" json:"id"`
	Title       string       `db:"title" json:"title"`
	Type        ResourceType `db:"type" json:"type"`
	URL         *string      `db:"url" json:"url,omitempty"`
	Description string       `db:"description" json:"description"`
	CategoryID  uuid.UUID    `db:"category_id" json:"category_id"`
	Tags        []string     `db:"tags" json:"tags"`
	FileName    *string      `db:"file_name" json:"file_name,omitempty"`
	FileSize    *int64       `db:"file_size" json:"file_size,omitempty"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at" json:"updated_at"`
}

// ResourceCreate represents data for creating a new resource
type ResourceCreate struct {
	Title       string       `json:"title" binding:"required"`
	Type        ResourceType `json:"type" binding:"required,oneof=link document file"`
	URL         *string      `json:"url,omitempty"`
	Description string       `json:"description"`
	CategoryID  uuid.UUID    `json:"category_id" binding:"required"`
	Tags        []string     `json:"tags"`
	FileName    *string      `json:"file_name,omitempty"`
	FileSize    *int64       `json:"file_size,omitempty" binding:"omitempty,gte=0"`
}

// ResourceUpdate represents data for updating a resource.
// Nil fields are left untouched.
type ResourceUpdate struct {
	Title       *string       `json:"title,omitempty" binding:"omitempty,min=1"`
	Type        *ResourceType `json:"type,omitempty" binding:"omitempty,oneof=link document file"`
	URL         *string       `json:"url,omitempty"`
	Description *string       `json:"description,omitempty"`
	CategoryID  *uuid.UUID    `json:"category_id,omitempty"`
	Tags        *[]string     `json:"tags,omitempty"`
	FileName    *string       `json:"file_name,omitempty"`
	FileSize    *int64        `json:"file_size,omitempty" binding:"omitempty,gte=0"`
}

// IsEmpty reports whether the update carries no fields
func (u ResourceUpdate) IsEmpty() bool {
	return u.Title == nil && u.Type == nil && u.URL == nil && u.Description == nil &&
		u.CategoryID == nil && u.Tags == nil && u.FileName == nil && u.FileSize == nil
}

// Apply returns a copy of r with the update's fields merged in.
// Timestamps are left to the caller.
func (u ResourceUpdate) Apply(r Resource) Resource {
	if u.Title != nil {
		r.Title = *u.Title
	}
	if u.Type != nil {
		r.Type = *u.Type
	}
	if u.URL != nil {
		url := *u.URL
		r.URL = &url
	}
	if u.Description != nil {
		r.Description = *u.Description
	}
	if u.CategoryID != nil {
		r.CategoryID = *u.CategoryID
	}
	if u.Tags != nil {
		r.Tags = append([]string(nil), (*u.Tags)...)
	}
	if u.FileName != nil {
		name := *u.FileName
		r.FileName = &name
	}
	if u.FileSize != nil {
		size := *u.FileSize
		r.FileSize = &size
	}
	return r
}
