package catalog

import (
	"strings"
	"sync"

	"resource-catalog/pkg/models"
	"resource-catalog/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// validateResource checks a resource in form order: title, category, url, file.
// editing relaxes the staged file requirement for upload types.
// known, when set, must accept the category id.
func validateResource(r models.Resource, file *StagedFile, editing bool, known func(uuid.UUID) bool) error {
	if strings.TrimSpace(r.Title) == "" {
		return invalid("title", "title is required")
	}
	if r.CategoryID == uuid.Nil {
		return invalid("category", "a category must be selected")
	}
	if known != nil && !known(r.CategoryID) {
		return invalid("category", "the selected category does not exist")
	}
	if !r.Type.Valid() {
		return invalid("type", "unknown resource type "+string(r.Type))
	}
	if r.Type == models.ResourceTypeLink {
		url := ""
		if r.URL != nil {
			url = *r.URL
		}
		if _, err := utils.ValidateURL(url); err != nil {
			return invalid("url", err.Error())
		}
	}
	if r.Type.HasUpload() && file == nil && !editing {
		return invalid("file", "a file must be selected")
	}
	return nil
}

// validateCategory checks name, color and resource type
func validateCategory(c models.Category) error {
	if strings.TrimSpace(c.Name) == "" {
		return invalid("name", "name is required")
	}
	if err := validatorInstance().Var(c.Color, "required,hexcolor,len=7"); err != nil {
		return invalid("color", "color must look like #RRGGBB")
	}
	if err := validatorInstance().Var(string(c.ResourceType), "oneof=documents links media other"); err != nil {
		return invalid("resource_type", "unknown resource type "+string(c.ResourceType))
	}
	return nil
}
