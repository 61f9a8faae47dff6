package translator

import (
	"testing"

	"quantumtranslator/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.Category
	}{
		{"optimization keyword", "How can I minimize the cost of this supply chain?", models.Optimization},
		{"optimization beats search", "optimize the search for the best path", models.Optimization},
		{"search", "find the shortest route in a maze", models.Search},
		{"search beats simulation", "locate a model that fits", models.Search},
		{"simulation", "simulate protein folding", models.Simulation},
		{"simulation beats cryptography", "predict which key opens the lock", models.Simulation},
		{"cryptography", "encrypt my data with a secure cipher", models.Cryptography},
		{"substring match", "what about encryption at rest", models.Cryptography},
		{"substring inside word", "a monkey on a typewriter", models.Cryptography},
		{"uppercase", "OPTIMIZE this", models.Optimization},
		{"mixed case", "DeCrYpT this message", models.Cryptography},
		{"no keyword", "What is the weather like today?", models.General},
		{"empty", "", models.General},
		{"whitespace", "   \t\n", models.General},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	inputs := []string{"optimize this", "OPTIMIZE this", "Optimize This"}
	want := Classify(inputs[0])
	for _, in := range inputs[1:] {
		if got := Classify(in); got != want {
			t.Errorf("Classify(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestClassify_EveryKeywordSelectsItsCategory(t *testing.T) {
	for _, c := range Priority() {
		for _, kw := range Keywords(c) {
			if got := Classify("xx " + kw + " xx"); got != c {
				t.Errorf("Classify(%q) = %v, want %v", kw, got, c)
			}
		}
	}
}

func TestPriority(t *testing.T) {
	want := []models.Category{
		models.Optimization,
		models.Search,
		models.Simulation,
		models.Cryptography,
		models.General,
	}
	got := Priority()
	if len(got) != len(want) {
		t.Fatalf("Priority() has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Priority()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestKeywords(t *testing.T) {
	if kws := Keywords(models.General); kws != nil {
		t.Errorf("Keywords(General) = %v, want nil", kws)
	}

	kws := Keywords(models.Search)
	if len(kws) != 4 {
		t.Fatalf("Keywords(Search) = %v, want 4 entries", kws)
	}
	kws[0] = "mutated"
	if Keywords(models.Search)[0] != "search" {
		t.Error("Keywords returned a slice aliasing the keyword table")
	}
}
