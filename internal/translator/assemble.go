package translator

import "quantumtranslator/internal/models"

// Assemble copies a template into a result for the given category.
func Assemble(c models.Category, t Template) models.TranslationResult {
	return models.TranslationResult{
		Classical: t.Classical,
		Quantum:   t.Quantum,
		Speedup:   t.Speedup,
		Category:  c,
	}
}

// Translate classifies problem and returns the matching templated answer.
// Callers validate problem first.
func Translate(problem string) models.TranslationResult {
	category := Classify(problem)
	return Assemble(category, Lookup(category))
}
