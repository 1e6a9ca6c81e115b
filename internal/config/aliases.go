package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadAliases reads an alias table from a JSON file mapping raw author
// names to canonical identities, e.g. {"jdoe": "Jane Doe"}. An empty
// path yields an empty table. Duplicate keys in the file follow JSON
// decoding rules: the last occurrence wins.
func LoadAliases(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading alias file: %w", err)
	}

	aliases := map[string]string{}
	if err := json.Unmarshal(data, &aliases); err != nil {
		return nil, fmt.Errorf("error parsing alias file %s: %w", path, err)
	}
	return aliases, nil
}
