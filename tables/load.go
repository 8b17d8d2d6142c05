package tables

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/docoutline/model"
)

// Load reads a table-region file (YAML or JSON)
func Load(path string) (Regions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table regions: %w", err)
	}
	regions, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return regions, nil
}

// Parse decodes table regions from YAML or JSON. Keys are 0-based page
// indices; values are lists of [x0, y0, x1, y1] boxes.
func Parse(data []byte) (Regions, error) {
	var raw map[string][][]float64
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse table regions: %w", err)
	}

	regions := make(Regions, len(raw))
	for key, boxes := range raw {
		page, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil || page < 0 {
			return nil, fmt.Errorf("invalid page index %q", key)
		}
		for i, b := range boxes {
			if len(b) != 4 {
				return nil, fmt.Errorf("page %d box %d: expected 4 coordinates, got %d", page, i, len(b))
			}
			regions[page] = append(regions[page], model.NewRect(b[0], b[1], b[2], b[3]))
		}
	}
	return regions, nil
}
