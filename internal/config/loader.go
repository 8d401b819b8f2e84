package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/viper"

	"github.com/weftlang/weft/internal/types"
)

// ConfigLoader handles loading configuration from files.
type ConfigLoader interface {
	Load(path string) (*Config, error)
	LoadWithDefaults(path string) (*Config, error)
}

// viperConfigLoader implements ConfigLoader using Viper.
type viperConfigLoader struct {
	validator ConfigValidator
}

// NewConfigLoader creates a new ConfigLoader instance.
func NewConfigLoader(validator ConfigValidator) ConfigLoader {
	return &viperConfigLoader{validator: validator}
}

// envVarPattern matches ${VAR} references in config values.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnv replaces ${VAR} references with the environment value.
// Unset variables expand to the empty string.
func expandEnv(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := match[2 : len(match)-1]
		return os.Getenv(name)
	})
}

// expandDir normalizes a configured directory: ${VAR} references expand
// from the environment, a leading ~ resolves to the user home directory,
// and the result is cleaned. An empty or fully-unset value stays empty.
func expandDir(dir string) (string, error) {
	dir = expandEnv(dir)
	if dir == "" {
		return "", nil
	}
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, dir[1:])
	}
	return filepath.Clean(dir), nil
}

// Load loads configuration from the specified file path. String values
// support ${VAR} environment interpolation, and the templates directory
// additionally supports ~ home expansion.
func (l *viperConfigLoader) Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, types.Wrap(types.CONFIG_LOAD_FAILED, err, "failed to read config file")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, types.Wrap(types.CONFIG_PARSE_FAILED, err, "failed to unmarshal config")
	}

	cfg.Log.Level = expandEnv(cfg.Log.Level)
	cfg.Log.Format = expandEnv(cfg.Log.Format)

	dir, err := expandDir(cfg.Templates.Dir)
	if err != nil {
		return nil, types.Wrap(types.CONFIG_PARSE_FAILED, err, "failed to expand templates dir")
	}
	cfg.Templates.Dir = dir

	if err := l.validator.Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadWithDefaults loads configuration from the specified file path,
// returning the default configuration when the file does not exist.
func (l *viperConfigLoader) LoadWithDefaults(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := l.validator.Validate(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return l.Load(path)
}
