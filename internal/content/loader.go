package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDocument reads a content document from disk and returns it as JSON
// bytes. YAML documents are converted to JSON so the mapper works from a
// single input form.
func LoadDocument(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{Message: fmt.Sprintf("document not found: %s", path), Cause: err}
		}
		return nil, &LoadError{Message: fmt.Sprintf("failed to read document: %s", path), Cause: err}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlToJSON(data)
	default:
		return data, nil
	}
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Message: "failed to parse YAML document", Cause: err}
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, &LoadError{Message: "failed to convert YAML document to JSON", Cause: err}
	}
	return out, nil
}
