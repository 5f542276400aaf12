// Package achievements loads user-supplied achievement entries from a YAML
// file for the achievements widget.
package achievements

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vukan322/devwidgets/internal/core"
)

// knownIcons are the icon kinds the renderer draws; anything else falls back
// to the trophy.
var knownIcons = map[string]bool{
	"trophy":    true,
	"medal":     true,
	"star":      true,
	"hackathon": true,
}

// Load reads a YAML list of achievements from path. Entries without a title
// are rejected; unknown icons are normalized to "trophy".
func Load(path string) ([]core.Achievement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read achievements file: %w", err)
	}

	var entries []core.Achievement
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse achievements file: %w", err)
	}

	for i := range entries {
		if strings.TrimSpace(entries[i].Title) == "" {
			return nil, fmt.Errorf("achievement %d: missing title", i+1)
		}
		if !knownIcons[entries[i].Icon] {
			entries[i].Icon = "trophy"
		}
	}
	return entries, nil
}
