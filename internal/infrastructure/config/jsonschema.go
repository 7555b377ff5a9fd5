package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

const schemaID = "https://github.com/bnema/dumbhint/config.schema.json"

// GenerateSchema returns the JSON schema of the config file.
func GenerateSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	r.FieldNameTag = "toml"
	schema := r.Reflect(&Config{})
	schema.ID = jsonschema.ID(schemaID)
	schema.Title = "dumbhint configuration"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteSchema writes the JSON schema next to the config file in dir.
func WriteSchema(dir string) (string, error) {
	data, err := GenerateSchema()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	path := filepath.Join(dir, schemaFileName)
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema: %w", err)
	}
	return path, nil
}
