package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/port"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

const sampleTOML = `
[ports]
min = 9000
max = 9099
secure = true

[[services]]
name = "users"
dir = "users"
command = "go run ./cmd/users --http {port}"

[[services]]
name = "orders"
`

func TestValidateServiceName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"users", false},
		{"AaAa", false},
		{"web.v2", false},
		{"a_b-c", false},
		{"", true},
		{"-leading", true},
		{"has space", true},
		{"../escape", true},
		{strings.Repeat("a", 64), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateServiceName(tt.name)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateServiceName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
		})
	}
}

func TestPortsConfig_Range(t *testing.T) {
	if got := (PortsConfig{}).Range(); got != port.DefaultRange {
		t.Errorf("Range() = %v, want default %v", got, port.DefaultRange)
	}

	p := PortsConfig{Min: 7, Max: 14}
	if got := p.Range(); got != (port.Range{Min: 7, Max: 14}) {
		t.Errorf("Range() = %v, want 7-14", got)
	}
}

func TestLoad_TOML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "forage-ports.toml")
	writeFile(t, path, sampleTOML)

	ws, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if ws.Range() != (port.Range{Min: 9000, Max: 9099}) {
		t.Errorf("Range() = %v, want 9000-9099", ws.Range())
	}
	if !ws.Ports.Secure {
		t.Error("Secure should be true")
	}
	if ws.Root != tmpDir {
		t.Errorf("Root = %q, want %q", ws.Root, tmpDir)
	}

	want := []port.Identifier{"users", "orders"}
	if got := ws.Projects(); !reflect.DeepEqual(got, want) {
		t.Errorf("Projects() = %v, want %v", got, want)
	}

	svc, ok := ws.Service("users")
	if !ok {
		t.Fatal("Service(users) not found")
	}
	if svc.Command != "go run ./cmd/users --http {port}" {
		t.Errorf("Command = %q", svc.Command)
	}
}

func TestLoad_YAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "forage-ports.yaml")
	writeFile(t, path, `
ports:
  min: 7
  max: 14
services:
  - name: AaAa
  - name: dad
`)

	ws, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if ws.Ports.Secure {
		t.Error("Secure should default to false")
	}
	want := []port.Identifier{"AaAa", "dad"}
	if got := ws.Projects(); !reflect.DeepEqual(got, want) {
		t.Errorf("Projects() = %v, want %v", got, want)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"invalid toml", "forage-ports.toml", "not = [valid"},
		{"unknown toml key", "forage-ports.toml", "[ports]\nminimum = 1\n"},
		{"unknown yaml key", "forage-ports.yaml", "portz:\n  min: 1\n"},
		{"unsupported extension", "forage-ports.json", "{}"},
		{"inverted range", "forage-ports.toml", "[ports]\nmin = 20\nmax = 10\n"},
		{"duplicate service", "forage-ports.toml", "[[services]]\nname = \"a\"\n[[services]]\nname = \"a\"\n"},
		{"bad service name", "forage-ports.toml", "[[services]]\nname = \"a b\"\n"},
		{"absolute dir", "forage-ports.toml", "[[services]]\nname = \"a\"\ndir = \"/etc\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			writeFile(t, path, tt.content)

			if _, err := Load(path); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load("/nonexistent/forage-ports.toml")
	if err == nil {
		t.Error("Expected error for nonexistent workspace, got nil")
	}
}

func TestLoad_WithDiscovery(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "forage-ports.toml"), `
discover = "services"

[[services]]
name = "gateway"

[[services]]
name = "billing"
dir = "legacy/billing"
`)
	writeFile(t, filepath.Join(tmpDir, "services", "search", ServiceMarker), "")
	writeFile(t, filepath.Join(tmpDir, "services", "billing", ServiceMarker), "")
	writeFile(t, filepath.Join(tmpDir, "services", "auth", ServiceMarker), `command = "make run PORT={port}"`)

	ws, err := Load(filepath.Join(tmpDir, "forage-ports.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := []port.Identifier{"gateway", "billing", "auth", "search"}
	if got := ws.Projects(); !reflect.DeepEqual(got, want) {
		t.Errorf("Projects() = %v, want %v", got, want)
	}

	billing, _ := ws.Service("billing")
	if billing.Discovered {
		t.Error("declared billing should win over the discovered one")
	}

	auth, _ := ws.Service("auth")
	if auth.Command != "make run PORT={port}" {
		t.Errorf("auth Command = %q", auth.Command)
	}
}

func TestFind(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "forage-ports.toml")
	writeFile(t, path, sampleTOML)

	nested := filepath.Join(tmpDir, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("Failed to create nested dir: %v", err)
	}

	got, err := Find(nested)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if got != path {
		t.Errorf("Find() = %q, want %q", got, path)
	}
}

func TestFind_PrefersTOML(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "forage-ports.yaml"), "services: []\n")
	writeFile(t, filepath.Join(tmpDir, "forage-ports.toml"), "")

	got, err := Find(tmpDir)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if filepath.Base(got) != "forage-ports.toml" {
		t.Errorf("Find() = %q, want forage-ports.toml", got)
	}
}

func TestResolve(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "forage-ports.toml")
	writeFile(t, path, sampleTOML)

	t.Run("explicit wins", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "/from/env.toml")
		got, err := Resolve("/explicit.toml", tmpDir)
		if err != nil || got != "/explicit.toml" {
			t.Errorf("Resolve() = %q, %v, want /explicit.toml", got, err)
		}
	})

	t.Run("env before search", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "/from/env.toml")
		got, err := Resolve("", tmpDir)
		if err != nil || got != "/from/env.toml" {
			t.Errorf("Resolve() = %q, %v, want /from/env.toml", got, err)
		}
	})

	t.Run("search", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		got, err := Resolve("", tmpDir)
		if err != nil || got != path {
			t.Errorf("Resolve() = %q, %v, want %q", got, err, path)
		}
	})
}
