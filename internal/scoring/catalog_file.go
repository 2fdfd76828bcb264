package scoring

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadCatalogFile reads a custom role → level → profile table from a YAML
// (or JSON) file and validates it like the built-in catalog.
func LoadCatalogFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return ParseCatalog(raw)
}

// ParseCatalog decodes and validates a catalog document.
func ParseCatalog(raw []byte) (*Catalog, error) {
	var specs map[string]map[string]ProfileSpec
	if err := yaml.Unmarshal(raw, &specs); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("decode catalog: no roles defined")
	}
	return NewCatalog(specs)
}
