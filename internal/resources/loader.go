package resources

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// catalogSchema validates JSON catalog files before decoding. YAML files
// skip schema validation (the decoder's field types are the contract there).
const catalogSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["subject", "title", "url"],
    "properties": {
      "subject": {"type": "string", "minLength": 1},
      "title": {"type": "string", "minLength": 1},
      "url": {"type": "string", "minLength": 1},
      "description": {"type": "string"}
    }
  }
}`

// LoadCatalog walks rootDir and collects resources from every .yaml/.yml and
// .json file. Invalid files are skipped with a warning rather than failing
// the whole load, matching how partial catalogs are treated everywhere else.
func LoadCatalog(rootDir string) ([]Resource, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(catalogSchema))
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}

	var catalog []Resource
	err = filepath.Walk(rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		switch {
		case strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml"):
			entries, err := loadYAML(path)
			if err != nil {
				slog.Warn("skipping invalid catalog YAML", "path", path, "error", err)
				return nil
			}
			catalog = append(catalog, entries...)
		case strings.HasSuffix(path, ".json"):
			entries, err := loadJSON(path, schema)
			if err != nil {
				slog.Warn("skipping invalid catalog JSON", "path", path, "error", err)
				return nil
			}
			catalog = append(catalog, entries...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk catalog dir: %w", err)
	}

	slog.Info("resource catalog loaded", "dir", rootDir, "resources", len(catalog))
	return catalog, nil
}

func loadYAML(path string) ([]Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []Resource
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func loadJSON(path string, schema *gojsonschema.Schema) ([]Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, err
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("schema violations: %s", strings.Join(msgs, "; "))
	}

	var entries []Resource
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
