package roster

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the on-disk roster document, in JSON or YAML.
type File struct {
	Players []Player `json:"players" yaml:"players"`
}

// LoadFile reads a roster from a .json, .yaml or .yml file.
func LoadFile(path string) (*Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	var doc File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &doc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("unsupported roster format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode roster %s: %w", path, err)
	}

	for i, p := range doc.Players {
		if strings.TrimSpace(p.FullName) == "" {
			return nil, fmt.Errorf("player %d (id %d): full_name is required", i, p.ID)
		}
	}
	return NewMemory(doc.Players)
}

// WriteFile writes players to path, choosing the encoding from its extension.
func WriteFile(path string, players []Player) error {
	doc := File{Players: players}

	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err = json.MarshalIndent(doc, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(doc)
	default:
		return fmt.Errorf("unsupported roster format %q", ext)
	}
	if err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
