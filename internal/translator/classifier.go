// Package translator classifies problem descriptions and builds the
// rule-based classical/quantum explanation for them.
package translator

import (
	"strings"

	"quantumtranslator/internal/models"
)

type keywordSet struct {
	category models.Category
	keywords []string
}

// keywordSets is checked top to bottom; the first set with a hit wins.
// General has no keywords and is the fallback.
var keywordSets = []keywordSet{
	{models.Optimization, []string{"optimize", "minimize", "maximize", "best", "optimal"}},
	{models.Search, []string{"search", "find", "locate", "discover"}},
	{models.Simulation, []string{"simulate", "model", "predict", "behavior"}},
	{models.Cryptography, []string{"encrypt", "decrypt", "secure", "key", "cipher"}},
}

// Classify returns the category of text. Matching is case-insensitive
// substring containment, so "encryption" matches "encrypt".
func Classify(text string) models.Category {
	lower := strings.ToLower(text)
	for _, set := range keywordSets {
		for _, kw := range set.keywords {
			if strings.Contains(lower, kw) {
				return set.category
			}
		}
	}
	return models.General
}

// Priority returns the categories in the order Classify tests them,
// followed by the General fallback.
func Priority() []models.Category {
	order := make([]models.Category, 0, len(keywordSets)+1)
	for _, set := range keywordSets {
		order = append(order, set.category)
	}
	return append(order, models.General)
}

// Keywords returns a copy of the keyword list for a category.
// General has none.
func Keywords(c models.Category) []string {
	for _, set := range keywordSets {
		if set.category == c {
			return append([]string(nil), set.keywords...)
		}
	}
	return nil
}
