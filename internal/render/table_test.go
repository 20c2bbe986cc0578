package render

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/port"
)

func TestRows(t *testing.T) {
	a := mustAssign(t, port.Range{Min: 7, Max: 14}, true, "AaAa", "BBBB", "dad")
	ws := &config.Workspace{
		Services: []config.Service{{Name: "AaAa", Dir: "a"}, {Name: "BBBB"}, {Name: "dad", Dir: "d"}},
	}

	got := Rows(a, ws)
	want := []Row{
		{Service: "AaAa", Port: 7, TLSPort: 14, Dir: "a", Contested: true},
		{Service: "BBBB", Port: 8, TLSPort: 9, Contested: true},
		{Service: "dad", Port: 10, TLSPort: 13, Dir: "d"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rows() = %+v, want %+v", got, want)
	}
}

func TestTable(t *testing.T) {
	a := mustAssign(t, port.Range{Min: 7, Max: 14}, true, "AaAa", "dad")

	var buf bytes.Buffer
	if err := Table(&buf, Rows(a, nil), true); err != nil {
		t.Fatalf("Table() error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), buf.String())
	}

	wantRows := [][]string{
		{"SERVICE", "PORT", "TLS", "PORT", "DIR"},
		{"-------", "----", "--------", "---"},
		{"AaAa", "7", "14", "-"},
		{"dad", "10", "13", "-"},
	}
	for i, want := range wantRows {
		if got := strings.Fields(lines[i]); !reflect.DeepEqual(got, want) {
			t.Errorf("line %d = %q, want fields %q", i, lines[i], want)
		}
	}
}

func TestTable_Insecure(t *testing.T) {
	a := mustAssign(t, port.Range{Min: 7, Max: 14}, false, "dad")

	var buf bytes.Buffer
	if err := Table(&buf, Rows(a, nil), false); err != nil {
		t.Fatalf("Table() error: %v", err)
	}

	if strings.Contains(buf.String(), "TLS") {
		t.Errorf("insecure table should not have a TLS column:\n%s", buf.String())
	}
}

func TestJSON(t *testing.T) {
	a := mustAssign(t, port.Range{Min: 7, Max: 14}, true, "AaAa", "dad")

	var buf bytes.Buffer
	if err := JSON(&buf, a, Rows(a, nil)); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var listing Listing
	if err := json.Unmarshal(buf.Bytes(), &listing); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if listing.Range != "7-14" {
		t.Errorf("Range = %q, want 7-14", listing.Range)
	}
	if !listing.Secure {
		t.Error("Secure should be true")
	}
	if listing.Fingerprint != a.Fingerprint() {
		t.Errorf("Fingerprint = %q, want %q", listing.Fingerprint, a.Fingerprint())
	}
	if len(listing.Services) != 2 || listing.Services[1].TLSPort != 13 {
		t.Errorf("Services = %+v", listing.Services)
	}
}

func TestExplain(t *testing.T) {
	r := port.Range{Min: 7, Max: 14}
	placements, err := port.Explain(r, []port.Identifier{"auth", "orders", "api"}, false)
	if err != nil {
		t.Fatalf("port.Explain failed: %v", err)
	}

	var buf bytes.Buffer
	if err := Explain(&buf, r, placements); err != nil {
		t.Fatalf("Explain() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"auth", "orders", "contested, probed +1", "solo"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPlacementStatus(t *testing.T) {
	r := port.Range{Min: 7, Max: 14}

	tests := []struct {
		pl   port.Placement
		want string
	}{
		{port.Placement{Preferred: 8, Port: 8}, "solo"},
		{port.Placement{Preferred: 8, Port: 8, Contested: true}, "contested"},
		{port.Placement{Preferred: 8, Port: 10, Contested: true}, "contested, probed +2"},
		{port.Placement{Preferred: 14, Port: 7, Contested: true}, "contested, probed +1"},
	}

	for _, tt := range tests {
		if got := PlacementStatus(r, tt.pl); got != tt.want {
			t.Errorf("PlacementStatus(%+v) = %q, want %q", tt.pl, got, tt.want)
		}
	}
}
