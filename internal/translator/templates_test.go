package translator

import (
	"strings"
	"testing"

	"quantumtranslator/internal/models"
)

func TestLookup_Total(t *testing.T) {
	for _, c := range models.Categories() {
		tmpl := Lookup(c)
		if tmpl.Classical == "" || tmpl.Quantum == "" || tmpl.Speedup == "" {
			t.Errorf("Lookup(%v) has an empty field: %+v", c, tmpl)
		}
	}
}

func TestLookup_SpeedupDescriptors(t *testing.T) {
	tests := []struct {
		category models.Category
		factor   string
	}{
		{models.Optimization, "10-100x"},
		{models.Search, "2-10x (quadratic speedup)"},
		{models.Simulation, "100-1000x"},
		{models.Cryptography, "Exponential (breaks RSA)"},
		{models.General, "2-4x"},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			if got := Lookup(tt.category).Speedup; !strings.Contains(got, tt.factor) {
				t.Errorf("Lookup(%v).Speedup = %q, want it to contain %q", tt.category, got, tt.factor)
			}
		})
	}
}

func TestAssemble(t *testing.T) {
	tmpl := Template{Classical: "c", Quantum: "q", Speedup: "s"}
	got := Assemble(models.Simulation, tmpl)
	want := models.TranslationResult{Classical: "c", Quantum: "q", Speedup: "s", Category: models.Simulation}
	if got != want {
		t.Errorf("Assemble() = %+v, want %+v", got, want)
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		problem  string
		category models.Category
		speedup  string
	}{
		{"How can I minimize the cost of this supply chain?", models.Optimization, "10-100x"},
		{"encrypt my data with a secure cipher", models.Cryptography, "Exponential"},
		{"Tell me a joke", models.General, "2-4x"},
	}

	for _, tt := range tests {
		t.Run(tt.problem, func(t *testing.T) {
			got := Translate(tt.problem)
			if got.Category != tt.category {
				t.Errorf("Category = %v, want %v", got.Category, tt.category)
			}
			if !strings.Contains(got.Speedup, tt.speedup) {
				t.Errorf("Speedup = %q, want it to contain %q", got.Speedup, tt.speedup)
			}
		})
	}
}

func TestTranslate_Idempotent(t *testing.T) {
	problem := "discover patterns in the data"
	first := Translate(problem)
	for i := 0; i < 10; i++ {
		if got := Translate(problem); got != first {
			t.Fatalf("Translate run %d = %+v, want %+v", i, got, first)
		}
	}
}
