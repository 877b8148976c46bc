package loader

import (
	"os"
	"strconv"
	"strings"
)

// DefaultEnvPrefix is the environment variable prefix, including the
// trailing underscore.
const DefaultEnvPrefix = "TEXTMORPH_"

// EnvLoader loads configuration from environment variables. Variable
// names map to flat config keys: TEXTMORPH_WRAP_COLUMN becomes
// "wrap_column".
type EnvLoader struct {
	prefix string
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore.
func NewEnvLoader(prefix string) *EnvLoader {
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}
	return &EnvLoader{prefix: prefix}
}

// Load reads environment variables and returns a configuration map.
// Note: Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, l.prefix) {
			continue
		}

		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.ToLower(strings.TrimPrefix(parts[0], l.prefix))
		if key == "" {
			continue
		}
		config[key] = parseValue(parts[1])
	}

	return config, nil
}

// parseValue converts an environment variable string to a typed value.
func parseValue(s string) any {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
