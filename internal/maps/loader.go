package maps

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed banks/*.yaml
var defaultBanks embed.FS

// yamlBank represents the YAML structure for a bank file.
type yamlBank struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	Order  int         `yaml:"order"`
	Stages []yamlStage `yaml:"stages"`
}

type yamlStage struct {
	Name   string `yaml:"name"`
	Layout string `yaml:"layout"`
}

// ParseBank parses a YAML bank file.
func ParseBank(data []byte) (Bank, error) {
	var yb yamlBank
	if err := yaml.Unmarshal(data, &yb); err != nil {
		return Bank{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	name := yb.Name
	if name == "" {
		name = yb.ID
	}

	bank := Bank{ID: yb.ID, Name: name, Order: yb.Order}
	for i, s := range yb.Stages {
		g, err := ParseLayout(s.Layout)
		if err != nil {
			return Bank{}, fmt.Errorf("stage %d: %w", i+1, err)
		}
		bank.Stages = append(bank.Stages, Stage{Name: s.Name, Grid: g})
	}
	return bank, nil
}

// LoadDefault loads the banks compiled into the binary.
func LoadDefault() (*Library, error) {
	return loadFS(defaultBanks, "banks")
}

// LoadDir loads every .yaml/.yml bank under dir.
func LoadDir(dir string) (*Library, error) {
	return loadFS(os.DirFS(dir), ".")
}

// Load loads banks from dir, or the built-in banks when dir is empty.
func Load(dir string) (*Library, error) {
	if dir == "" {
		return LoadDefault()
	}
	return LoadDir(dir)
}

func loadFS(fsys fs.FS, root string) (*Library, error) {
	var banks []Bank

	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading file %s: %w", path, err)
		}
		bank, err := ParseBank(data)
		if err != nil {
			return fmt.Errorf("parsing file %s: %w", path, err)
		}
		banks = append(banks, bank)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("maps: loading banks: %w", err)
	}

	return NewLibrary(banks...)
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
