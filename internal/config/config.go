package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/port"
)

// serviceNameRegex validates service names.
// Names must start with a letter or digit, followed by letters, digits, dots, underscores, or hyphens.
// Maximum length is 63 characters.
var serviceNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]{0,62}$`)

// ValidateServiceName checks if a service name is valid.
func ValidateServiceName(name string) error {
	if name == "" {
		return fmt.Errorf("service name cannot be empty")
	}

	if !serviceNameRegex.MatchString(name) {
		return fmt.Errorf("invalid service name %q: must start with a letter or digit, contain only letters, digits, dots, underscores, or hyphens, and be at most 63 characters", name)
	}

	return nil
}

const (
	// EnvConfigPath overrides workspace file discovery.
	EnvConfigPath = "FORAGE_PORTS_CONFIG"

	// ServiceMarker marks a discoverable service directory.
	ServiceMarker = "forage-service.toml"
)

// DefaultFileNames are the workspace file names searched for, in order.
var DefaultFileNames = []string{"forage-ports.toml", "forage-ports.yaml", "forage-ports.yml"}

// PortsConfig is the [ports] table of a workspace file.
type PortsConfig struct {
	Min    int  `toml:"min" yaml:"min"`
	Max    int  `toml:"max" yaml:"max"`
	Secure bool `toml:"secure" yaml:"secure"`
}

// Range returns the configured port range, falling back to port.DefaultRange
// when neither bound is set.
func (p PortsConfig) Range() port.Range {
	if p.Min == 0 && p.Max == 0 {
		return port.DefaultRange
	}
	return port.Range{Min: p.Min, Max: p.Max}
}

// Service is a single service of the workspace.
type Service struct {
	Name    string `toml:"name" yaml:"name"`
	Dir     string `toml:"dir,omitempty" yaml:"dir,omitempty"`
	Command string `toml:"command,omitempty" yaml:"command,omitempty"`

	// Discovered is set for services found through a marker file.
	Discovered bool `toml:"-" yaml:"-"`
}

// Validate checks that the Service is valid.
func (s *Service) Validate() error {
	if err := ValidateServiceName(s.Name); err != nil {
		return err
	}
	if s.Dir != "" && filepath.IsAbs(s.Dir) {
		return fmt.Errorf("service %s: dir must be relative to the workspace (got %q)", s.Name, s.Dir)
	}
	return nil
}

// Workspace is the parsed workspace file
type Workspace struct {
	Ports    PortsConfig `toml:"ports" yaml:"ports"`
	Discover string      `toml:"discover,omitempty" yaml:"discover,omitempty"`
	Services []Service   `toml:"services" yaml:"services"`

	// Path is the file the workspace was loaded from.
	Path string `toml:"-" yaml:"-"`
	// Root is the directory holding the workspace file.
	Root string `toml:"-" yaml:"-"`
}

// Validate checks that the Workspace is valid.
func (w *Workspace) Validate() error {
	if err := w.Ports.Range().Validate(); err != nil {
		return fmt.Errorf("ports: %w", err)
	}

	seen := make(map[string]bool, len(w.Services))
	for i := range w.Services {
		svc := &w.Services[i]
		if err := svc.Validate(); err != nil {
			return err
		}
		if seen[svc.Name] {
			return fmt.Errorf("service %s is declared more than once", svc.Name)
		}
		seen[svc.Name] = true
	}

	return nil
}

// Range returns the workspace's port range.
func (w *Workspace) Range() port.Range {
	return w.Ports.Range()
}

// Projects returns the allocator input in declaration order.
func (w *Workspace) Projects() []port.Identifier {
	ids := make([]port.Identifier, len(w.Services))
	for i, svc := range w.Services {
		ids[i] = port.Identifier(svc.Name)
	}
	return ids
}

// Service looks up a service by name.
func (w *Workspace) Service(name string) (*Service, bool) {
	for i := range w.Services {
		if w.Services[i].Name == name {
			return &w.Services[i], true
		}
	}
	return nil, false
}

// Decode parses workspace data in the format implied by the file name.
func Decode(name string, data []byte) (*Workspace, error) {
	var ws Workspace

	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&ws)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("failed to parse %s: unknown key %s", name, undecoded[0])
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&ws); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("unsupported workspace file %s: expected .toml, .yaml or .yml", name)
	}

	return &ws, nil
}

// Load reads, discovers and validates a workspace file.
func Load(path string) (*Workspace, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid workspace path: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read workspace file: %w", err)
	}

	ws, err := Decode(absPath, data)
	if err != nil {
		return nil, err
	}
	ws.Path = absPath
	ws.Root = filepath.Dir(absPath)

	if ws.Discover != "" {
		discovered, err := DiscoverServices(ws.Root, ws.Discover)
		if err != nil {
			return nil, err
		}
		ws.merge(discovered)
	}

	if err := ws.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workspace %s: %w", absPath, err)
	}

	return ws, nil
}

// merge appends discovered services that are not already declared.
func (w *Workspace) merge(discovered []Service) {
	for _, svc := range discovered {
		if _, ok := w.Service(svc.Name); ok {
			continue
		}
		w.Services = append(w.Services, svc)
	}
}

// Find walks up from startDir looking for a workspace file.
func Find(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("invalid directory: %w", err)
	}

	for {
		for _, name := range DefaultFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found in %s or any parent directory", DefaultFileNames[0], startDir)
		}
		dir = parent
	}
}

// Resolve picks the workspace file: an explicit path wins, then
// $FORAGE_PORTS_CONFIG, then the nearest file above startDir.
func Resolve(explicit, startDir string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env, nil
	}
	return Find(startDir)
}
