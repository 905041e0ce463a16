// Package jsonfile implements the backlog collaborators on top of plain JSON files.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// readJSON decodes path into dst after validating it against schema.
// A missing or empty file leaves dst untouched and reports found=false.
func readJSON(path string, schema *jsonschema.Schema, dst any) (found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	if len(data) == 0 {
		return false, nil
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return true, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := schema.Validate(doc); err != nil {
		return true, fmt.Errorf("validate %s: %w", path, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return true, fmt.Errorf("decode %s: %w", path, err)
	}

	return true, nil
}

// writeJSON writes v to path atomically, creating parent directories.
func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return nil
}
