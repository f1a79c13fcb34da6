package params

import (
	"encoding/json"
	"os"
)

// LoadOverrideFile reads a JSON object of name -> integer value from
// path. An empty path is not an error: it simply yields no overrides.
// A file that can't be opened or parsed yields a *ConfigError rather
// than a fatal error: the caller warns and treats it as contributing
// no overrides.
func LoadOverrideFile(path string) (map[string]float64, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Kind: "unreadable-override", File: path, Err: err}
	}

	var raw map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ConfigError{Kind: "unreadable-override", File: path, Err: err}
	}

	return raw, nil
}
