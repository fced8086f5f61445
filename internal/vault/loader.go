package vault

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"vaultsearch/internal/domain"
)

// fixtureFile is the plaintext TOML layout used to seed demo archives
type fixtureFile struct {
	Archives []fixtureArchive `toml:"archives"`
}

type fixtureArchive struct {
	ID      string         `toml:"id"`
	Name    string         `toml:"name"`
	Groups  []fixtureGroup `toml:"groups"`
	Entries []fixtureEntry `toml:"entries"`
}

type fixtureGroup struct {
	ID     string `toml:"id"`
	Title  string `toml:"title"`
	Parent string `toml:"parent"`
}

type fixtureEntry struct {
	ID         string            `toml:"id"`
	Group      string            `toml:"group"`
	Icon       string            `toml:"icon"`
	IconColor  string            `toml:"icon_color"`
	Properties map[string]string `toml:"properties"`
}

// LoadFile reads archives from a TOML fixture file
func LoadFile(path string) ([]*Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vault file: %w", err)
	}
	defer f.Close()

	archives, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return archives, nil
}

// Decode parses a TOML fixture. Groups must be listed after their parent.
func Decode(r io.Reader) ([]*Archive, error) {
	var file fixtureFile
	if err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse vault: %w", err)
	}

	archives := make([]*Archive, 0, len(file.Archives))
	seen := make(map[string]bool)
	for _, fa := range file.Archives {
		if fa.ID == "" {
			return nil, fmt.Errorf("archive %q has no id", fa.Name)
		}
		if seen[fa.ID] {
			return nil, fmt.Errorf("archive %s: %w", fa.ID, ErrDuplicateID)
		}
		seen[fa.ID] = true

		name := fa.Name
		if name == "" {
			name = fa.ID
		}
		a := NewArchive(fa.ID, name)
		for _, g := range fa.Groups {
			if _, err := a.AddGroup(g.ID, g.Title, g.Parent); err != nil {
				return nil, fmt.Errorf("archive %s: %w", fa.ID, err)
			}
		}
		for _, e := range fa.Entries {
			icon := domain.Icon{Glyph: e.Icon, Color: e.IconColor}
			if _, err := a.AddEntry(e.ID, e.Group, e.Properties, icon); err != nil {
				return nil, fmt.Errorf("archive %s: %w", fa.ID, err)
			}
		}
		archives = append(archives, a)
	}
	return archives, nil
}
