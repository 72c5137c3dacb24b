package signmap

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
)

type implMapper struct {
	entries  map[string]Entry
	spaceKey string
}

// New creates a Mapper over entries. spaceKey names the entry shown between
// words; no space gestures are emitted when it is missing.
func New(entries map[string]Entry, spaceKey string) Mapper {
	return &implMapper{
		entries:  maps.Clone(entries),
		spaceKey: spaceKey,
	}
}

// Load reads a gesture mapping JSON file.
func Load(path, spaceKey string) (Mapper, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read gesture mapping: %w", err)
	}

	var entries map[string]Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse gesture mapping %s: %w", path, err)
	}
	for key, e := range entries {
		if e.ImagePath == "" {
			return nil, fmt.Errorf("gesture mapping %s: entry %q has no image_path", path, key)
		}
	}

	return New(entries, spaceKey), nil
}
