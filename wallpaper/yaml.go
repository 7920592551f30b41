package wallpaper

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cryspack/cell"
)

// groupYAML is the on-disk form of a custom group definition.
type groupYAML struct {
	Name    string   `yaml:"name"`
	Family  string   `yaml:"family"`
	Wyckoff []string `yaml:"wyckoff"`
}

// LoadGroups reads custom wallpaper group definitions from YAML.
//
// The document is a list of groups:
//
//	- name: p2
//	  family: Monoclinic
//	  wyckoff: ["x,y", "-x,-y"]
//
// Every definition is validated: the family must name one of the four
// crystal families and each symmetry operation must parse.
func LoadGroups(r io.Reader) ([]Group, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("wallpaper: read definitions: %w", err)
	}

	var raw []groupYAML
	if err = yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("wallpaper: parse definitions: %w", err)
	}

	out := make([]Group, 0, len(raw))
	for _, def := range raw {
		family, err := cell.FamilyFromName(def.Family)
		if err != nil {
			return nil, fmt.Errorf("wallpaper: group %q: %w", def.Name, err)
		}

		g := Group{Name: def.Name, Family: family, WyckoffOps: def.Wyckoff}
		if _, err = g.Site(); err != nil {
			return nil, err
		}
		out = append(out, g)
	}

	return out, nil
}

// LoadGroupsFile reads custom group definitions from a YAML file.
func LoadGroupsFile(path string) ([]Group, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wallpaper: open definitions: %w", err)
	}
	defer f.Close()

	return LoadGroups(f)
}
