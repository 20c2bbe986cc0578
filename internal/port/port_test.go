package port

import (
	"reflect"
	"testing"
)

func TestRange_Size(t *testing.T) {
	tests := []struct {
		r    Range
		want int
	}{
		{Range{Min: 1, Max: 1}, 1},
		{Range{Min: 7, Max: 14}, 8},
		{DefaultRange, 16384},
	}

	for _, tt := range tests {
		if got := tt.r.Size(); got != tt.want {
			t.Errorf("%s.Size() = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestRange_Contains(t *testing.T) {
	r := Range{Min: 7, Max: 14}

	for _, p := range []int{7, 10, 14} {
		if !r.Contains(p) {
			t.Errorf("Contains(%d) = false, want true", p)
		}
	}
	for _, p := range []int{6, 15, 0, -1} {
		if r.Contains(p) {
			t.Errorf("Contains(%d) = true, want false", p)
		}
	}
}

func TestRange_Validate(t *testing.T) {
	tests := []struct {
		name    string
		r       Range
		wantErr bool
	}{
		{"single port", Range{Min: 1, Max: 1}, false},
		{"default", DefaultRange, false},
		{"zero minimum", Range{Min: 0, Max: 10}, true},
		{"above tcp range", Range{Min: 60000, Max: 70000}, true},
		{"inverted", Range{Min: 20, Max: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		in      string
		want    Range
		wantErr bool
	}{
		{"9000-9010", Range{Min: 9000, Max: 9010}, false},
		{" 7 - 14 ", Range{Min: 7, Max: 14}, false},
		{"8080", Range{Min: 8080, Max: 8080}, false},
		{"", Range{}, true},
		{"abc-10", Range{}, true},
		{"10-abc", Range{}, true},
		{"10-5", Range{}, true},
		{"0-5", Range{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRange(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRange(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseRange(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestKey_HashInput(t *testing.T) {
	if got := Identifier("users").Plain().HashInput(); got != "users" {
		t.Errorf("Plain().HashInput() = %q, want %q", got, "users")
	}
	if got := Identifier("users").TLS().HashInput(); got != "users-tls" {
		t.Errorf("TLS().HashInput() = %q, want %q", got, "users-tls")
	}
}

func TestKey_TLSVariantIsDistinct(t *testing.T) {
	// A service literally named "users-tls" shares hash input with the TLS
	// key of "users" but is a different key.
	literal := Identifier("users-tls").Plain()
	variant := Identifier("users").TLS()

	if literal == variant {
		t.Error("plain key of users-tls should not equal TLS key of users")
	}
	if literal.HashInput() != variant.HashInput() {
		t.Error("expected identical hash inputs")
	}
}

func TestExpandKeys(t *testing.T) {
	projects := []Identifier{"b", "a", "c"}

	t.Run("plain only", func(t *testing.T) {
		got := ExpandKeys(projects, false)
		want := []Key{{Project: "b"}, {Project: "a"}, {Project: "c"}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ExpandKeys() = %v, want %v", got, want)
		}
	})

	t.Run("with tls", func(t *testing.T) {
		got := ExpandKeys(projects, true)
		want := []Key{
			{Project: "b"}, {Project: "b", TLS: true},
			{Project: "a"}, {Project: "a", TLS: true},
			{Project: "c"}, {Project: "c", TLS: true},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ExpandKeys() = %v, want %v", got, want)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if got := ExpandKeys(nil, true); len(got) != 0 {
			t.Errorf("ExpandKeys(nil) = %v, want empty", got)
		}
	})
}

func TestKeyCount(t *testing.T) {
	if got := KeyCount(3, false); got != 3 {
		t.Errorf("KeyCount(3, false) = %d, want 3", got)
	}
	if got := KeyCount(3, true); got != 6 {
		t.Errorf("KeyCount(3, true) = %d, want 6", got)
	}
}
