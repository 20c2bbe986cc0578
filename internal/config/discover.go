package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/logging"
)

// serviceMarker is the content of a forage-service.toml file. Both fields are
// optional; the name defaults to the directory name.
type serviceMarker struct {
	Name    string `toml:"name"`
	Command string `toml:"command"`
}

// DiscoverServices lists the subdirectories of root/subdir that hold a
// service marker file, in directory name order. Paths are resolved inside
// root, so symlinks cannot point discovery outside the workspace.
func DiscoverServices(root, subdir string) ([]Service, error) {
	base, err := securejoin.SecureJoin(root, subdir)
	if err != nil {
		return nil, fmt.Errorf("invalid discover directory %q: %w", subdir, err)
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("failed to read discover directory: %w", err)
	}

	var services []Service
	for _, entry := range entries {
		rel := filepath.Join(subdir, entry.Name())

		dir, err := securejoin.SecureJoin(root, rel)
		if err != nil {
			logging.Debug("skipping unresolvable entry", "path", rel, "error", err)
			continue
		}
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}

		markerPath, err := securejoin.SecureJoin(root, filepath.Join(rel, ServiceMarker))
		if err != nil {
			continue
		}
		data, err := os.ReadFile(markerPath)
		if err != nil {
			if !os.IsNotExist(err) {
				logging.Debug("skipping unreadable marker", "path", markerPath, "error", err)
			}
			continue
		}

		var marker serviceMarker
		if err := toml.Unmarshal(data, &marker); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", markerPath, err)
		}

		name := marker.Name
		if name == "" {
			name = entry.Name()
		}

		relDir, err := filepath.Rel(root, dir)
		if err != nil {
			relDir = rel
		}

		services = append(services, Service{
			Name:       name,
			Dir:        relDir,
			Command:    marker.Command,
			Discovered: true,
		})
		logging.Debug("discovered service", "name", name, "dir", relDir)
	}

	return services, nil
}
