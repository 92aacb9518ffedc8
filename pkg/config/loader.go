package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-collections/pkg/registry"
)

// LoadFS walks the filesystem and parses every collection definition file it
// finds. Parse failures do not stop the walk: errors accumulate per file and
// are returned together with whatever loaded cleanly.
func LoadFS(fsys fs.FS) ([]registry.Config, error) {
	if fsys == nil {
		return nil, nil
	}

	var (
		configs []registry.Config
		errs    *multierror.Error
	)
	walkErr := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("config: read %s: %w", path, err))
			return nil
		}
		loaded, err := Parse(data)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("config: parse %s: %w", path, err))
			return nil
		}
		configs = append(configs, loaded...)
		return nil
	})
	if walkErr != nil {
		errs = multierror.Append(errs, walkErr)
	}
	return configs, errs.ErrorOrNil()
}

// LoadFile parses a single collection definition file.
func LoadFile(path string) ([]registry.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	configs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return configs, nil
}

// Parse decodes a collection definition document. YAML is a superset of
// JSON, so both formats go through the same decoder.
func Parse(data []byte) ([]registry.Config, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	var (
		configs []registry.Config
		errs    *multierror.Error
	)
	for _, cc := range doc.Collections {
		cfg, err := cc.registryConfig()
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		configs = append(configs, cfg)
	}
	return configs, errs.ErrorOrNil()
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml", ".json":
		return true
	default:
		return false
	}
}
