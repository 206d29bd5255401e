package preprocess

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// filterSpec is a named regex loaded from YAML. This package's masking
// convention is the regex's own named capture, not a separate
// placeholder string.
type filterSpec struct {
	Name        string `yaml:"name"`
	Regex       string `yaml:"regex"`
	Description string `yaml:"description"`
}

type filtersFile struct {
	Filters []filterSpec `yaml:"filters"`
}

// LoadFilters reads an ordered filter-pattern list from a YAML file,
// compiling each entry's regex. The file order becomes the match
// order: the first filter that matches a token wins.
func LoadFilters(path string) ([]Filter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preprocess: reading filters file: %w", err)
	}

	var doc filtersFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("preprocess: parsing filters YAML: %w", err)
	}

	filters := make([]Filter, 0, len(doc.Filters))
	for _, spec := range doc.Filters {
		re, err := regexp.Compile(spec.Regex)
		if err != nil {
			return nil, fmt.Errorf("preprocess: compiling filter %q: %w", spec.Name, err)
		}
		filters = append(filters, Filter{Name: spec.Name, Pattern: re})
	}
	return filters, nil
}

// DefaultFilters returns a small built-in set covering the most common
// variable substrings, for callers that don't ship their own YAML file.
// Each uses a single named capture so the masked token becomes that
// capture's name.
func DefaultFilters() []Filter {
	return []Filter{
		{
			Name:    "ip",
			Pattern: regexp.MustCompile(`^(?P<ip>\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})$`),
		},
		{
			Name:    "uuid",
			Pattern: regexp.MustCompile(`^(?P<uuid>[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12})$`),
		},
		{
			Name:    "hex",
			Pattern: regexp.MustCompile(`^(?P<hex>0[xX][0-9a-fA-F]+)$`),
		},
	}
}
