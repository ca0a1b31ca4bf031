package economy

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/0xAozora/cs2-inspect-link/types"
	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// document is the layout shared by every catalog file format.
type document struct {
	Items []types.CatalogItem `json:"items" yaml:"items" toml:"items"`
}

// Load reads a catalog file. The format is chosen by extension: .json and
// .jsonc (comments and trailing commas allowed), .yaml and .yml, .toml.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog load failed (%s): %w", path, err)
	}

	var c *Catalog
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json", ".jsonc":
		c, err = ParseJSON(data)
	case ".yaml", ".yml":
		c, err = ParseYAML(data)
	case ".toml":
		c, err = ParseTOML(data)
	default:
		return nil, fmt.Errorf("catalog load failed (%s): unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog parse failed (%s): %w", path, err)
	}
	return c, nil
}

func ParseJSON(data []byte) (*Catalog, error) {
	var doc document
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return nil, err
	}
	return New(doc.Items)
}

func ParseYAML(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return New(doc.Items)
}

func ParseTOML(data []byte) (*Catalog, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return New(doc.Items)
}
