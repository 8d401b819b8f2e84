package config

import (
	"github.com/go-playground/validator/v10"

	"github.com/weftlang/weft/internal/types"
)

// ConfigValidator validates a loaded configuration.
type ConfigValidator interface {
	Validate(cfg *Config) error
}

// structValidator implements ConfigValidator with struct-tag validation.
type structValidator struct {
	validate *validator.Validate
}

// NewConfigValidator creates a ConfigValidator backed by struct tags.
func NewConfigValidator() ConfigValidator {
	return &structValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks the configuration against its declared constraints.
func (v *structValidator) Validate(cfg *Config) error {
	if cfg == nil {
		return types.Newf(types.CONFIG_VALIDATION_FAILED, "config cannot be nil")
	}
	if err := v.validate.Struct(cfg); err != nil {
		return types.Wrap(types.CONFIG_VALIDATION_FAILED, err, "configuration validation failed")
	}
	return nil
}
