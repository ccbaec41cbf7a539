// pkg/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

// Parse validates raw catalog JSON against the schema and decodes it.
func Parse(data []byte) (*ActivityCatalog, error) {
	schemaLoader := gojsonschema.NewStringLoader(catalogSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("catalog validation error: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return nil, fmt.Errorf("catalog validation failed: %v", errs)
	}

	var cat ActivityCatalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("catalog decode failed: %w", err)
	}

	// Name uniqueness is a cross-entry constraint the schema can't express.
	seen := make(map[string]struct{}, len(cat.Activities))
	for _, activity := range cat.Activities {
		if _, dup := seen[activity.Name]; dup {
			return nil, fmt.Errorf("catalog validation failed: duplicate activity name %q", activity.Name)
		}
		seen[activity.Name] = struct{}{}
	}

	return &cat, nil
}

// Load reads and parses a catalog file from disk.
func Load(path string) (*ActivityCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}
