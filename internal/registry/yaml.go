package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// TemplateFile represents a YAML file containing templates. Two formats
// are accepted: a list of entries under the "templates" key, or a single
// entry as a direct YAML mapping.
type TemplateFile struct {
	Templates []Template `yaml:"templates"`
}

// LoadTemplatesFromFile loads and validates templates from a YAML file.
func LoadTemplatesFromFile(path string) ([]Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewYAMLError(path, fmt.Errorf("failed to read file: %w", err))
	}

	var file TemplateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, NewYAMLError(path, err)
	}

	templates := file.Templates
	if len(templates) == 0 {
		var single Template
		if err := yaml.Unmarshal(data, &single); err != nil {
			return nil, NewYAMLError(path, err)
		}
		templates = []Template{single}
	}

	for i := range templates {
		if err := templates[i].Validate(); err != nil {
			return nil, NewYAMLError(path, fmt.Errorf("entry at index %d: %w", i, err))
		}
	}

	return templates, nil
}

// RegisterFromYAML loads templates from a YAML file into the registry.
func (r *DefaultTemplateRegistry) RegisterFromYAML(path string) error {
	templates, err := LoadTemplatesFromFile(path)
	if err != nil {
		return err
	}
	for _, tmpl := range templates {
		if err := r.Register(tmpl); err != nil {
			return err
		}
	}
	return nil
}

// RegisterFromDirectory loads every .yaml/.yml file from a directory.
// Files are loaded in lexical order so duplicate-ID failures are
// deterministic.
func (r *DefaultTemplateRegistry) RegisterFromDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return NewYAMLError(dir, fmt.Errorf("failed to read directory: %w", err))
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		if err := r.RegisterFromYAML(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}
