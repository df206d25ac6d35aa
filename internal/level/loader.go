package level

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a level from raw bytes, routing by file extension.
// Shipped levels are compact JSON; YAML is accepted for hand-authored
// levels. The result is normalized and validated.
func Parse(data []byte, ext string) (Level, error) {
	var lvl Level

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &lvl); err != nil {
			return Level{}, fmt.Errorf("decoding json level: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &lvl); err != nil {
			return Level{}, fmt.Errorf("decoding yaml level: %w", err)
		}
	default:
		return Level{}, fmt.Errorf("unsupported level extension: %s", ext)
	}

	lvl.Normalize()
	if err := lvl.Validate(); err != nil {
		return Level{}, err
	}
	return lvl, nil
}

// SupportedExtensions lists the file extensions Parse accepts.
func SupportedExtensions() []string {
	return []string{".json", ".yaml", ".yml"}
}

// LoadFile loads and validates a single level file.
func LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading level %s: %w", path, err)
	}
	lvl, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return Level{}, fmt.Errorf("level %s: %w", path, err)
	}
	return lvl, nil
}

// Loader loads every level of a world directory.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at a world directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll scans the root recursively and loads all level files.
// Returns levels sorted by name then ID for deterministic ordering.
// Files that fail to parse are returned as an error; a world with a
// broken level should not be half-validated.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}
		lvl, err := LoadFile(path)
		if err != nil {
			return err
		}
		levels = append(levels, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		if levels[i].Name != levels[j].Name {
			return levels[i].Name < levels[j].Name
		}
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range SupportedExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
