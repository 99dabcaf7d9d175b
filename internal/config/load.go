package config

import (
	"fmt"
	"os"

	"twobar/internal/spec"
)

// Load reads, parses, normalizes, and validates a session file.
func Load(path string) (spec.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return spec.File{}, fmt.Errorf("read session file: %w", err)
	}
	file, err := spec.Parse(data, path)
	if err != nil {
		return spec.File{}, err
	}
	Normalize(&file)
	if err := Validate(&file); err != nil {
		return spec.File{}, err
	}
	return file, nil
}
