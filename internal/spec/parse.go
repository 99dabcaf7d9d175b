package spec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a session file strictly, choosing JSON or YAML by the path's
// extension. Unknown fields and multiple documents are rejected.
func Parse(data []byte, path string) (File, error) {
	if isJSONPath(path) {
		return parseJSON(data)
	}
	return parseYAML(data)
}

func parseYAML(data []byte) (File, error) {
	var file File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return File{}, fmt.Errorf("parse session yaml: %w", err)
	}
	// A second decode must hit EOF. It targets a yaml.Node because strict
	// field checking would otherwise reject the extra document's content
	// before the document count is known.
	var extra yaml.Node
	if err := decoder.Decode(&extra); err != io.EOF {
		if err == nil {
			return File{}, fmt.Errorf("parse session yaml: multiple documents are not supported")
		}
		return File{}, fmt.Errorf("parse session yaml: %w", err)
	}
	return file, nil
}

func parseJSON(data []byte) (File, error) {
	var file File
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return File{}, fmt.Errorf("parse session json: %w", err)
	}
	var extra json.RawMessage
	if err := decoder.Decode(&extra); err != io.EOF {
		if err == nil {
			return File{}, fmt.Errorf("parse session json: multiple documents are not supported")
		}
		return File{}, fmt.Errorf("parse session json: %w", err)
	}
	return file, nil
}

func isJSONPath(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".json"
}
