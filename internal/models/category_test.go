package models

import (
	"encoding/json"
	"testing"
)

func TestCategory_ZeroValueIsGeneral(t *testing.T) {
	var c Category
	if c != General {
		t.Errorf("zero Category = %v, want %v", c, General)
	}
	if c.String() != "general" {
		t.Errorf("zero Category String() = %q, want %q", c.String(), "general")
	}
}

func TestCategories_IndexesAreDistinctAndInRange(t *testing.T) {
	seen := make(map[int]bool)
	for _, c := range Categories() {
		idx := c.Index()
		if idx < 0 || idx >= NumCategories {
			t.Errorf("%v.Index() = %d, out of range", c, idx)
		}
		if seen[idx] {
			t.Errorf("duplicate index %d for %v", idx, c)
		}
		seen[idx] = true
	}
	if len(seen) != NumCategories {
		t.Errorf("Categories() returned %d distinct values, want %d", len(seen), NumCategories)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		slug   string
		want   Category
		wantOK bool
	}{
		{"general", General, true},
		{"optimization", Optimization, true},
		{"search", Search, true},
		{"simulation", Simulation, true},
		{"cryptography", Cryptography, true},
		{"Optimization", General, false},
		{"", General, false},
		{"quantum", General, false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			got, ok := ParseCategory(tt.slug)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseCategory(%q) = (%v, %v), want (%v, %v)", tt.slug, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCategory_JSON(t *testing.T) {
	data, err := json.Marshal(TranslationResult{Category: Cryptography})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"classical":"","quantum":"","speedup":"","category":"cryptography"}`
	if string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}

	var c Category
	if err := json.Unmarshal([]byte(`"search"`), &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if c != Search {
		t.Errorf("unmarshal = %v, want %v", c, Search)
	}

	if err := json.Unmarshal([]byte(`"unknown"`), &c); err == nil {
		t.Error("expected error for unknown slug")
	}
}
