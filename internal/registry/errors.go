package registry

import (
	"github.com/weftlang/weft/internal/types"
)

// NewTemplateNotFoundError creates an error for a missing template ID.
func NewTemplateNotFoundError(id string) error {
	return types.Newf(types.TEMPLATE_NOT_FOUND, "template not found: %s", id)
}

// NewTemplateAlreadyExistsError creates an error for a duplicate template ID.
func NewTemplateAlreadyExistsError(id string) error {
	return types.Newf(types.TEMPLATE_ALREADY_EXISTS, "template already exists: %s", id)
}

// NewInvalidTemplateError creates an error for an invalid template definition.
func NewInvalidTemplateError(reason string) error {
	return types.Newf(types.TEMPLATE_INVALID, "invalid template: %s", reason)
}

// NewYAMLError creates an error for a template file that failed to load.
func NewYAMLError(path string, cause error) error {
	return types.Wrap(types.TEMPLATE_YAML_FAILED, cause, "failed to load template file: %s", path)
}
