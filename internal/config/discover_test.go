package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiscoverServices(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "svc", "web", ServiceMarker), "")
	writeFile(t, filepath.Join(root, "svc", "api", ServiceMarker), `name = "public-api"`)
	writeFile(t, filepath.Join(root, "svc", "docs", "README.md"), "no marker")
	writeFile(t, filepath.Join(root, "svc", "notes.txt"), "not a dir")

	services, err := DiscoverServices(root, "svc")
	if err != nil {
		t.Fatalf("DiscoverServices failed: %v", err)
	}

	if len(services) != 2 {
		t.Fatalf("len(services) = %d, want 2: %+v", len(services), services)
	}

	if services[0].Name != "public-api" || services[0].Dir != filepath.Join("svc", "api") {
		t.Errorf("services[0] = %+v, want public-api in svc/api", services[0])
	}
	if services[1].Name != "web" || services[1].Dir != filepath.Join("svc", "web") {
		t.Errorf("services[1] = %+v, want web in svc/web", services[1])
	}
	for _, svc := range services {
		if !svc.Discovered {
			t.Errorf("%s should be marked discovered", svc.Name)
		}
	}
}

func TestDiscoverServices_SymlinkStaysInRoot(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	writeFile(t, filepath.Join(outside, "evil", ServiceMarker), "")
	writeFile(t, filepath.Join(root, "svc", "ok", ServiceMarker), "")

	if err := os.Symlink(filepath.Join(outside, "evil"), filepath.Join(root, "svc", "evil")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	services, err := DiscoverServices(root, "svc")
	if err != nil {
		t.Fatalf("DiscoverServices failed: %v", err)
	}

	for _, svc := range services {
		if svc.Name == "evil" {
			t.Errorf("discovery followed a symlink outside the workspace: %+v", svc)
		}
	}
}

func TestDiscoverServices_InvalidMarker(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "svc", "bad", ServiceMarker), "name = [")

	if _, err := DiscoverServices(root, "svc"); err == nil {
		t.Error("Expected error for invalid marker, got nil")
	}
}

func TestDiscoverServices_MissingDir(t *testing.T) {
	if _, err := DiscoverServices(t.TempDir(), "nope"); err == nil {
		t.Error("Expected error for missing discover directory, got nil")
	}
}
